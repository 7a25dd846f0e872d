package layout

import (
	"math"
	"strconv"

	"github.com/matzehuels/pinout/pkg/component"
	"github.com/matzehuels/pinout/pkg/config"
	"github.com/matzehuels/pinout/pkg/errors"
	"github.com/matzehuels/pinout/pkg/render/ic/scene"
	"github.com/matzehuels/pinout/pkg/render/ic/styles"
)

// Layout is a fully placed package drawing.
type Layout struct {
	Kind  component.Kind
	Name  string
	Frame Frame     // nominal drawing size derived from the package paddings
	Body  scene.Box // package body rectangle
	scene.Scene
	Pins []PlacedPin // every pin slot in draw order, SKIP slots included
}

// Frame is the nominal drawing size of a layout. The scene may extend past
// it when labels are long; [scene.Scene.Bounds] is the exact extent.
type Frame struct {
	W, H float64
}

// PlacedPin records where a pin slot was put.
type PlacedPin struct {
	Position int     // physical pin number
	Label    string  // text shown in the pin box
	Name     string  // pin name
	Side     Side    // body edge
	X, Y     float64 // pin box origin before rotation
	Visible  bool    // false for SKIP slots
}

// Notch radius, independent of package size.
const notchRadius = 20

type strategy func(b *builder)

var strategies = map[component.Kind]strategy{
	component.DIP:  layoutDIP,
	component.Edge: layoutEdge,
	component.PLCC: layoutPLCC,
	component.QFP:  layoutQFP,
	component.SIP:  layoutSIP,
}

// Build lays out desc using cfg.
//
// The descriptor is validated first: an unknown package kind fails with
// UNSUPPORTED_PACKAGE and a broken pin mapping with MALFORMED_DESCRIPTOR.
// A configuration with non-drawable geometry fails with INVALID_CONFIG.
// Nothing is drawn for invalid input.
func Build(desc component.Descriptor, cfg config.Config) (Layout, error) {
	if err := desc.Validate(); err != nil {
		return Layout{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Layout{}, err
	}
	fn, ok := strategies[desc.Info.Package]
	if !ok {
		return Layout{}, errors.New(errors.ErrCodeUnsupportedPackage, "package %q has no layout", desc.Info.Package)
	}

	b := &builder{desc: desc, cfg: cfg}
	fn(b)

	return Layout{
		Kind:  desc.Info.Package,
		Name:  desc.Info.Name,
		Frame: b.frame,
		Body:  b.body,
		Scene: scene.New(b.prims...),
		Pins:  b.pins,
	}, nil
}

// builder collects the primitives of one layout in draw order.
type builder struct {
	desc  component.Descriptor
	cfg   config.Config
	frame Frame
	body  scene.Box
	prims []scene.Primitive
	pins  []PlacedPin
}

// sideLength is the body extent along a side holding k pins.
func (b *builder) sideLength(k int) float64 {
	s := b.cfg.Pin.Spacing
	return s*float64(k) + (s - b.cfg.Pin.Height)
}

func (b *builder) drawBody(x, y, w, h float64) {
	b.body = scene.BoxOf(x, y, w, h)
	b.prims = append(b.prims, scene.Rect{
		X: x, Y: y, W: w, H: h,
		Fill:        styles.White,
		Stroke:      styles.Black,
		StrokeWidth: 1,
	})
}

// drawName centers the component name on (cx, cy), turned a quarter
// clockwise when upright is false.
func (b *builder) drawName(cx, cy float64, font styles.Font, upright bool) {
	t := scene.Text{
		X: cx, Y: cy,
		Content:  b.desc.Info.Name,
		Anchor:   scene.AnchorMiddle,
		Baseline: scene.BaselineMiddle,
		Font:     font,
		Fill:     styles.Gray,
	}
	if !upright {
		t.Rotate = scene.Rotate(90, cx, cy)
	}
	b.prims = append(b.prims, t)
}

// drawNotch cuts a semicircle into the body below the top edge at y = top.
func (b *builder) drawNotch(cx, top float64) {
	b.prims = append(b.prims, scene.Path{
		Cmds: []scene.PathCmd{
			scene.MoveTo(cx-notchRadius, top),
			scene.ArcTo(cx, top, notchRadius, math.Pi, 0),
			scene.LineTo(cx-notchRadius, top),
		},
		Fill:        styles.White,
		Stroke:      styles.Black,
		StrokeWidth: 1,
	})
}

// drawPin places pin n with its box origin at (x, y).
func (b *builder) drawPin(x, y float64, side Side, n int) {
	pin, _ := b.desc.Pin(n)
	label := strconv.Itoa(n)
	if pin.Num != "" {
		label = string(pin.Num)
	}
	b.prims = append(b.prims, RenderPin(x, y, side, strconv.Itoa(n), pin, b.cfg.Pin))
	b.pins = append(b.pins, PlacedPin{
		Position: n,
		Label:    label,
		Name:     pin.Name,
		Side:     side,
		X:        x,
		Y:        y,
		Visible:  !pin.Skip(),
	})
}

package layout

import (
	"github.com/matzehuels/pinout/pkg/component"
	"github.com/matzehuels/pinout/pkg/config"
	"github.com/matzehuels/pinout/pkg/render/ic/scene"
	"github.com/matzehuels/pinout/pkg/render/ic/styles"
)

// Side is the edge of the body a pin sits on.
type Side int

const (
	Left Side = iota
	Right
	Top
	Bottom
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	}
	return "unknown"
}

// outward reports whether labels grow toward negative x before rotation.
func (s Side) outward() bool { return s == Left || s == Bottom }

// Name label offsets from the pin box, with and without an arrow lane.
const (
	nameGap      = 8
	nameGapArrow = 20
)

// RenderPin draws one pin with its box origin at (x, y). label is the
// number shown in the box unless the pin overrides it.
//
// A SKIP pin yields an empty group.
func RenderPin(x, y float64, side Side, label string, pin component.Pin, cfg config.Pin) scene.Group {
	var g scene.Group
	if pin.Skip() {
		return g
	}

	w, h, wd := cfg.Width, cfg.Height, cfg.WidthDirection
	color := func(c string) string { return styles.ResolveColor(c, cfg.Colors, bool(cfg.ColorEnabled)) }
	out := side.outward()
	dir := pin.Direction()
	textY := y + 2 + h/2

	g.Children = append(g.Children, scene.Rect{
		X: x, Y: y, W: w, H: h,
		Fill:        color(pin.Color),
		Stroke:      styles.Black,
		StrokeWidth: 1,
	})

	numFill := styles.Black
	if pin.ColorNum != "" {
		numFill = color(pin.ColorNum)
	}
	if pin.Num != "" {
		label = string(pin.Num)
	}
	g.Children = append(g.Children, scene.Text{
		X: x + w/2, Y: textY,
		Content:  label,
		Anchor:   scene.AnchorMiddle,
		Baseline: scene.BaselineMiddle,
		Font:     styles.PinFont,
		Fill:     numFill,
	})

	// Only an explicit NONE narrows the gap.
	gap := float64(nameGap)
	if pin.Dir != component.None {
		gap = nameGapArrow
	}
	nameX, anchor := x+w+gap, scene.AnchorStart
	if out {
		nameX, anchor = x-gap, scene.AnchorEnd
	}
	g.Children = append(g.Children, scene.Text{
		X: nameX, Y: textY,
		Content:  pin.Name,
		Anchor:   anchor,
		Baseline: scene.BaselineMiddle,
		Font:     styles.PinFont,
		Fill:     styles.Black,
	})

	nameW := styles.TextWidth(pin.Name, styles.PinFont.Size)

	if pin.Has(component.AudioProbe) {
		apX := nameX + nameW
		if out {
			apX = nameX - nameW
		}
		g.Children = append(g.Children, scene.Text{
			X: apX, Y: y + 8,
			Content:  "AP",
			Anchor:   anchor,
			Baseline: scene.BaselineMiddle,
			Font:     styles.ProbeFont,
			Fill:     styles.Black,
		})
	}

	if pin.Has(component.ActiveLow) {
		length := nameW
		if pin.Has(component.ActiveLowLastChar) {
			length = styles.LastCharWidth(pin.Name, styles.PinFont.Size)
		}
		end := nameX + nameW
		if out {
			end = nameX
		}
		g.Children = append(g.Children, scene.Path{
			Cmds:        []scene.PathCmd{scene.MoveTo(end-length, y+4), scene.LineTo(end, y+4)},
			Fill:        styles.Black,
			Stroke:      styles.Black,
			StrokeWidth: 2,
		})
	}

	// Arrows live in the lane between the box and the name.
	edge, lane := x+w, x+w+wd
	if out {
		edge, lane = x, x-wd
	}
	if dir == component.In || dir == component.InOut {
		g.Children = append(g.Children, scene.Polygon{
			Points: []scene.Point{{X: lane, Y: y}, {X: lane, Y: y + h}, {X: edge, Y: y + h/2}},
			Fill:   styles.Black,
		})
	}
	if dir == component.Out || dir == component.InOut {
		g.Children = append(g.Children, scene.Polygon{
			Points: []scene.Point{{X: edge, Y: y}, {X: edge, Y: y + h}, {X: lane, Y: y + h/2}},
			Fill:   styles.Black,
		})
	}

	if side == Top || side == Bottom {
		g.Rotate = scene.Rotate(-90, x+w/2, y+h/2)
	}
	return g
}

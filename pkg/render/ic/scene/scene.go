package scene

import (
	"github.com/matzehuels/pinout/pkg/render/ic/styles"
)

// Primitive is one drawable element.
type Primitive interface {
	// Bounds returns the area the primitive covers, stroke excluded.
	Bounds() Box
}

// Scene is an ordered primitive list with its bounding box.
type Scene struct {
	Primitives []Primitive
	Bounds     Box
}

// New assembles prims into a scene in the given order.
func New(prims ...Primitive) Scene {
	b := EmptyBox()
	for _, p := range prims {
		b = b.Union(p.Bounds())
	}
	return Scene{Primitives: prims, Bounds: b}
}

// Rect is a rectangle.
type Rect struct {
	X, Y, W, H  float64
	Fill        string
	Stroke      string
	StrokeWidth float64
}

func (r Rect) Bounds() Box { return BoxOf(r.X, r.Y, r.W, r.H) }

// Anchor is the horizontal alignment of text relative to its position.
type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// Baseline is the vertical alignment of text relative to its position.
type Baseline string

const (
	BaselineMiddle     Baseline = "middle"
	BaselineAlphabetic Baseline = "alphabetic"
)

// Text is a single-line label. Rotate turns it about a point, usually its
// own position.
type Text struct {
	X, Y     float64
	Content  string
	Anchor   Anchor
	Baseline Baseline
	Font     styles.Font
	Fill     string
	Rotate   Rotation
}

// Bounds estimates the extent from monospace metrics.
func (t Text) Bounds() Box {
	if t.Content == "" {
		return EmptyBox()
	}
	w := styles.TextWidth(t.Content, t.Font.Size)
	x := t.X
	switch t.Anchor {
	case AnchorMiddle:
		x -= w / 2
	case AnchorEnd:
		x -= w
	}
	size := t.Font.Size
	y := t.Y - size/2
	if t.Baseline == BaselineAlphabetic {
		y = t.Y - size*0.8
	}
	return BoxOf(x, y, w, size).Transform(t.Rotate)
}

// Polygon is a closed filled shape.
type Polygon struct {
	Points []Point
	Fill   string
	Stroke string
}

func (p Polygon) Bounds() Box {
	b := EmptyBox()
	for _, pt := range p.Points {
		b = b.Extend(pt.X, pt.Y)
	}
	return b
}

// Circle is a circle centered on (CX, CY).
type Circle struct {
	CX, CY, R   float64
	Fill        string
	Stroke      string
	StrokeWidth float64
}

func (c Circle) Bounds() Box { return BoxOf(c.CX-c.R, c.CY-c.R, 2*c.R, 2*c.R) }

// Group holds children drawn together, optionally rotated as a unit.
// An empty group draws nothing and has an empty box.
type Group struct {
	Children []Primitive
	Rotate   Rotation
}

func (g Group) Bounds() Box {
	b := EmptyBox()
	for _, c := range g.Children {
		b = b.Union(c.Bounds())
	}
	return b.Transform(g.Rotate)
}

package scene

import "math"

// Box is an axis-aligned bounding box.
type Box struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// EmptyBox returns the box that contains nothing. It is the identity of
// [Box.Union].
func EmptyBox() Box {
	return Box{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
}

// BoxOf returns the box spanning x, y, w, h.
func BoxOf(x, y, w, h float64) Box {
	return Box{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
}

func (b Box) Empty() bool      { return b.MinX > b.MaxX || b.MinY > b.MaxY }
func (b Box) Width() float64   { return b.MaxX - b.MinX }
func (b Box) Height() float64  { return b.MaxY - b.MinY }
func (b Box) CenterX() float64 { return (b.MinX + b.MaxX) / 2 }
func (b Box) CenterY() float64 { return (b.MinY + b.MaxY) / 2 }

// Extend returns b grown to contain the point (x, y).
func (b Box) Extend(x, y float64) Box {
	b.MinX = min(b.MinX, x)
	b.MinY = min(b.MinY, y)
	b.MaxX = max(b.MaxX, x)
	b.MaxY = max(b.MaxY, y)
	return b
}

// Union returns the smallest box containing b and o.
func (b Box) Union(o Box) Box {
	if o.Empty() {
		return b
	}
	if b.Empty() {
		return o
	}
	return b.Extend(o.MinX, o.MinY).Extend(o.MaxX, o.MaxY)
}

// Transform returns the bounding box of b after rotation r. The result is
// exact for quarter turns and a conservative bound otherwise.
func (b Box) Transform(r Rotation) Box {
	if b.Empty() || r.IsZero() {
		return b
	}
	out := EmptyBox()
	for _, p := range [4]Point{{b.MinX, b.MinY}, {b.MaxX, b.MinY}, {b.MaxX, b.MaxY}, {b.MinX, b.MaxY}} {
		q := r.Apply(p)
		out = out.Extend(q.X, q.Y)
	}
	return out
}

// Point is a position in scene coordinates.
type Point struct {
	X, Y float64
}

// Rotation turns content by Angle degrees about (CX, CY). Positive angles
// turn clockwise on screen.
type Rotation struct {
	Angle  float64
	CX, CY float64
}

// Rotate returns the rotation by angle degrees about (cx, cy).
func Rotate(angle, cx, cy float64) Rotation {
	return Rotation{Angle: angle, CX: cx, CY: cy}
}

func (r Rotation) IsZero() bool { return math.Mod(r.Angle, 360) == 0 }

// Apply rotates p. Quarter turns are computed without trigonometry so that
// integer coordinates stay integral.
func (r Rotation) Apply(p Point) Point {
	dx, dy := p.X-r.CX, p.Y-r.CY
	var sin, cos float64
	switch math.Mod(math.Mod(r.Angle, 360)+360, 360) {
	case 0:
		sin, cos = 0, 1
	case 90:
		sin, cos = 1, 0
	case 180:
		sin, cos = 0, -1
	case 270:
		sin, cos = -1, 0
	default:
		rad := r.Angle * math.Pi / 180
		sin, cos = math.Sin(rad), math.Cos(rad)
	}
	return Point{
		X: r.CX + dx*cos - dy*sin,
		Y: r.CY + dx*sin + dy*cos,
	}
}

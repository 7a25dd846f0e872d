package scene

import (
	"math"
	"testing"

	"github.com/matzehuels/pinout/pkg/render/ic/styles"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func boxNear(a, b Box) bool {
	return near(a.MinX, b.MinX) && near(a.MinY, b.MinY) && near(a.MaxX, b.MaxX) && near(a.MaxY, b.MaxY)
}

func TestBoxUnion(t *testing.T) {
	a := BoxOf(0, 0, 10, 10)
	b := BoxOf(5, -5, 10, 10)

	if got, want := a.Union(b), (Box{0, -5, 15, 10}); got != want {
		t.Errorf("Union() = %+v, want %+v", got, want)
	}
	if got := a.Union(EmptyBox()); got != a {
		t.Errorf("Union(empty) = %+v, want %+v", got, a)
	}
	if got := EmptyBox().Union(a); got != a {
		t.Errorf("empty.Union() = %+v, want %+v", got, a)
	}
	if !EmptyBox().Empty() {
		t.Error("EmptyBox().Empty() = false")
	}
}

func TestRotationApply(t *testing.T) {
	tests := []struct {
		name string
		rot  Rotation
		in   Point
		want Point
	}{
		{"quarter clockwise", Rotate(90, 0, 0), Point{1, 0}, Point{0, 1}},
		{"quarter counterclockwise", Rotate(-90, 0, 0), Point{1, 0}, Point{0, -1}},
		{"half", Rotate(180, 10, 10), Point{20, 10}, Point{0, 10}},
		{"about center", Rotate(-90, 20, 10), Point{0, 0}, Point{10, 30}},
		{"full turn", Rotate(360, 3, 3), Point{7, 1}, Point{7, 1}},
		{"diagonal", Rotate(45, 0, 0), Point{1, 0}, Point{math.Sqrt2 / 2, math.Sqrt2 / 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rot.Apply(tt.in)
			if !near(got.X, tt.want.X) || !near(got.Y, tt.want.Y) {
				t.Errorf("Apply(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestGroupBoundsRotated(t *testing.T) {
	// A 40x20 box rotated a quarter turn about its center becomes 20x40.
	g := Group{
		Children: []Primitive{Rect{X: 0, Y: 0, W: 40, H: 20}},
		Rotate:   Rotate(-90, 20, 10),
	}
	if got, want := g.Bounds(), (Box{10, -10, 30, 30}); got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}

	if !(Group{}).Bounds().Empty() {
		t.Error("empty group should have an empty box")
	}
}

func TestTextBounds(t *testing.T) {
	font := styles.PinFont // 22px, 13 per column
	tests := []struct {
		name string
		text Text
		want Box
	}{
		{
			name: "start",
			text: Text{X: 100, Y: 50, Content: "VCC", Anchor: AnchorStart, Baseline: BaselineMiddle, Font: font},
			want: Box{100, 39, 139, 61},
		},
		{
			name: "end",
			text: Text{X: 100, Y: 50, Content: "VCC", Anchor: AnchorEnd, Baseline: BaselineMiddle, Font: font},
			want: Box{61, 39, 100, 61},
		},
		{
			name: "middle",
			text: Text{X: 100, Y: 50, Content: "AB", Anchor: AnchorMiddle, Baseline: BaselineMiddle, Font: font},
			want: Box{87, 39, 113, 61},
		},
		{
			name: "rotated about position",
			text: Text{X: 100, Y: 50, Content: "AB", Anchor: AnchorMiddle, Baseline: BaselineMiddle, Font: font, Rotate: Rotate(90, 100, 50)},
			want: Box{89, 37, 111, 63},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.text.Bounds(); !boxNear(got, tt.want) {
				t.Errorf("Bounds() = %+v, want %+v", got, tt.want)
			}
		})
	}

	if !(Text{X: 5, Y: 5, Font: font}).Bounds().Empty() {
		t.Error("empty text should have an empty box")
	}
}

func TestPathNotch(t *testing.T) {
	// Semicircle hanging below y=50, from the left end to the right end.
	p := Path{Cmds: []PathCmd{
		MoveTo(180, 50),
		ArcTo(200, 50, 20, math.Pi, 0),
		LineTo(180, 50),
	}}

	if got, want := p.D(), "M 180 50 A 20 20 0 0 0 220 50 L 180 50"; got != want {
		t.Errorf("D() = %q, want %q", got, want)
	}
	if got, want := p.Bounds(), (Box{180, 50, 220, 70}); !boxNear(got, want) {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
}

func TestPathArcFlags(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		want       string
	}{
		{"clockwise half", 0, math.Pi, "M 10 0 A 10 10 0 0 1 -10 0"},
		{"counterclockwise three quarters", 0, -1.5 * math.Pi, "M 10 0 A 10 10 0 1 0 0 10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Path{Cmds: []PathCmd{MoveTo(10, 0), ArcTo(0, 0, 10, tt.start, tt.end)}}
			if got := p.D(); got != tt.want {
				t.Errorf("D() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	s := New(
		Rect{X: 10, Y: 10, W: 100, H: 50},
		Circle{CX: 0, CY: 0, R: 5},
		Group{},
		Polygon{Points: []Point{{200, 20}, {210, 30}}},
	)
	if len(s.Primitives) != 4 {
		t.Errorf("len(Primitives) = %d, want 4", len(s.Primitives))
	}
	if got, want := s.Bounds, (Box{-5, -5, 210, 60}); got != want {
		t.Errorf("Bounds = %+v, want %+v", got, want)
	}
}

func TestNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{-0.0001, "0"},
		{12, "12"},
		{12.5, "12.5"},
		{1.23456, "1.235"},
		{50 + 1e-13, "50"},
	}
	for _, tt := range tests {
		if got := Num(tt.in); got != tt.want {
			t.Errorf("Num(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

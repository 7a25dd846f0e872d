package scene

import (
	"math"
	"strconv"
	"strings"
)

// PathOp is a path command.
type PathOp byte

const (
	MoveOp PathOp = 'M'
	LineOp PathOp = 'L'
	ArcOp  PathOp = 'A'
)

// PathCmd is one path command. Move and Line carry the target point in X,
// Y. Arc is given by its center (X, Y), radius R and the sweep from Start to
// End in radians; it starts at the current point, which must lie on the
// circle at Start.
type PathCmd struct {
	Op         PathOp
	X, Y       float64
	R          float64
	Start, End float64
}

func MoveTo(x, y float64) PathCmd { return PathCmd{Op: MoveOp, X: x, Y: y} }
func LineTo(x, y float64) PathCmd { return PathCmd{Op: LineOp, X: x, Y: y} }

// ArcTo sweeps an arc of radius r about (cx, cy) from angle start to end.
// Angles follow screen orientation: 0 points right, π/2 points down.
func ArcTo(cx, cy, r, start, end float64) PathCmd {
	return PathCmd{Op: ArcOp, X: cx, Y: cy, R: r, Start: start, End: end}
}

// EndPoint returns where the command leaves the pen.
func (c PathCmd) EndPoint() Point {
	if c.Op == ArcOp {
		return c.at(c.End)
	}
	return Point{c.X, c.Y}
}

func (c PathCmd) at(angle float64) Point {
	return Point{X: c.X + c.R*math.Cos(angle), Y: c.Y + c.R*math.Sin(angle)}
}

// Path is an open or closed outline.
type Path struct {
	Cmds        []PathCmd
	Fill        string
	Stroke      string
	StrokeWidth float64
}

// Bounds covers every vertex and the extreme points of every arc.
func (p Path) Bounds() Box {
	b := EmptyBox()
	for _, c := range p.Cmds {
		if c.Op != ArcOp {
			b = b.Extend(c.X, c.Y)
			continue
		}
		for _, a := range [2]float64{c.Start, c.End} {
			pt := c.at(a)
			b = b.Extend(pt.X, pt.Y)
		}
		lo, hi := min(c.Start, c.End), max(c.Start, c.End)
		for k := math.Ceil(lo / (math.Pi / 2)); k*math.Pi/2 <= hi; k++ {
			pt := c.at(k * math.Pi / 2)
			b = b.Extend(pt.X, pt.Y)
		}
	}
	return b
}

// D returns the path as SVG path data.
func (p Path) D() string {
	var sb strings.Builder
	for i, c := range p.Cmds {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch c.Op {
		case ArcOp:
			end := c.EndPoint()
			large, sweep := 0, 0
			if math.Abs(c.End-c.Start) > math.Pi {
				large = 1
			}
			if c.End > c.Start {
				sweep = 1
			}
			sb.WriteString("A " + Num(c.R) + " " + Num(c.R) + " 0 " +
				strconv.Itoa(large) + " " + strconv.Itoa(sweep) + " " + Num(end.X) + " " + Num(end.Y))
		default:
			sb.WriteString(string(rune(c.Op)) + " " + Num(c.X) + " " + Num(c.Y))
		}
	}
	return sb.String()
}

// Num formats a coordinate with at most three decimals.
func Num(v float64) string {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		return "0"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

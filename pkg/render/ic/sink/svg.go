package sink

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/pinout/pkg/render/ic/layout"
	"github.com/matzehuels/pinout/pkg/render/ic/scene"
	"github.com/matzehuels/pinout/pkg/render/ic/styles"
)

// DefaultMargin is added to the width and height of the bounding box.
const DefaultMargin = 1

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	margin    float64
	scale     float64
	maxHeight float64
	title     string
}

func WithMargin(m float64) SVGOption    { return func(r *svgRenderer) { r.margin = m } }
func WithScale(s float64) SVGOption     { return func(r *svgRenderer) { r.scale = s } }
func WithMaxHeight(h float64) SVGOption { return func(r *svgRenderer) { r.maxHeight = h } }
func WithTitle(t string) SVGOption      { return func(r *svgRenderer) { r.title = t } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{margin: DefaultMargin, scale: 1}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		r.scale = 1
	}
	return r
}

// viewport is the visible region of a drawing and its displayed size.
type viewport struct {
	X, Y, W, H    float64 // viewBox
	Width, Height float64 // displayed size
}

func (r svgRenderer) viewport(b scene.Box) viewport {
	v := viewport{W: r.margin, H: r.margin}
	if !b.Empty() {
		v = viewport{X: b.MinX, Y: b.MinY, W: b.Width() + r.margin, H: b.Height() + r.margin}
	}
	v.Width, v.Height = v.W*r.scale, v.H*r.scale
	if r.maxHeight > 0 && v.Height > r.maxHeight {
		v.Width *= r.maxHeight / v.Height
		v.Height = r.maxHeight
	}
	return v
}

// RenderSVG renders the layout as a standalone SVG document.
func RenderSVG(l layout.Layout, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	v := r.viewport(l.Bounds)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s" width="%s" height="%s">`+"\n",
		scene.Num(v.X), scene.Num(v.Y), scene.Num(v.W), scene.Num(v.H), scene.Num(v.Width), scene.Num(v.Height))
	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", styles.EscapeXML(r.title))
	}
	for _, p := range l.Primitives {
		writePrimitive(&buf, p, "  ")
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func writePrimitive(buf *bytes.Buffer, p scene.Primitive, indent string) {
	switch p := p.(type) {
	case scene.Rect:
		fmt.Fprintf(buf, `%s<rect x="%s" y="%s" width="%s" height="%s"%s/>`+"\n",
			indent, scene.Num(p.X), scene.Num(p.Y), scene.Num(p.W), scene.Num(p.H), paint(p.Fill, p.Stroke, p.StrokeWidth))
	case scene.Circle:
		fmt.Fprintf(buf, `%s<circle cx="%s" cy="%s" r="%s"%s/>`+"\n",
			indent, scene.Num(p.CX), scene.Num(p.CY), scene.Num(p.R), paint(p.Fill, p.Stroke, p.StrokeWidth))
	case scene.Polygon:
		pts := make([]string, len(p.Points))
		for i, pt := range p.Points {
			pts[i] = scene.Num(pt.X) + "," + scene.Num(pt.Y)
		}
		fmt.Fprintf(buf, `%s<polygon points="%s"%s/>`+"\n", indent, strings.Join(pts, " "), paint(p.Fill, p.Stroke, 0))
	case scene.Path:
		fmt.Fprintf(buf, `%s<path d="%s"%s/>`+"\n", indent, p.D(), paint(p.Fill, p.Stroke, p.StrokeWidth))
	case scene.Text:
		if p.Content == "" {
			return
		}
		fmt.Fprintf(buf, `%s<text x="%s" y="%s" text-anchor="%s" dominant-baseline="%s" font-family="%s" font-size="%spx" font-weight="%d"%s%s>%s</text>`+"\n",
			indent, scene.Num(p.X), scene.Num(p.Y), p.Anchor, p.Baseline,
			styles.EscapeXML(p.Font.Family), scene.Num(p.Font.Size), p.Font.Weight,
			paint(p.Fill, "", 0), transform(p.Rotate), styles.EscapeXML(p.Content))
	case scene.Group:
		if len(p.Children) == 0 {
			return
		}
		fmt.Fprintf(buf, "%s<g%s>\n", indent, transform(p.Rotate))
		for _, c := range p.Children {
			writePrimitive(buf, c, indent+"  ")
		}
		fmt.Fprintf(buf, "%s</g>\n", indent)
	}
}

func paint(fill, stroke string, width float64) string {
	var sb strings.Builder
	if fill != "" {
		fmt.Fprintf(&sb, ` fill="%s"`, styles.EscapeXML(fill))
	}
	if stroke != "" {
		fmt.Fprintf(&sb, ` stroke="%s"`, styles.EscapeXML(stroke))
		if width > 0 {
			fmt.Fprintf(&sb, ` stroke-width="%s"`, scene.Num(width))
		}
	}
	return sb.String()
}

func transform(r scene.Rotation) string {
	if r.IsZero() {
		return ""
	}
	return fmt.Sprintf(` transform="rotate(%s, %s, %s)"`, scene.Num(r.Angle), scene.Num(r.CX), scene.Num(r.CY))
}

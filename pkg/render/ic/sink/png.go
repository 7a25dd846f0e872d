package sink

import (
	"bytes"
	"image/color"
	"math"
	"strings"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/matzehuels/pinout/pkg/render/ic/layout"
	"github.com/matzehuels/pinout/pkg/render/ic/scene"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale      float64
	margin     float64
	background string
	faces      map[float64]font.Face
}

// WithPNGScale sets the pixel density (default 2.0 for 2x resolution).
func WithPNGScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithPNGMargin sets the space added to the bounding box (default 1).
func WithPNGMargin(m float64) PNGOption {
	return func(r *pngRenderer) { r.margin = m }
}

// WithBackground sets the canvas color. An empty string leaves the canvas
// transparent. The default is white.
func WithBackground(c string) PNGOption {
	return func(r *pngRenderer) { r.background = c }
}

var monoFont = sync.OnceValues(func() (*truetype.Font, error) {
	return truetype.Parse(gomono.TTF)
})

// RenderPNG paints the layout into a PNG image. Text is set in the embedded
// Go Mono face, so no system fonts or external tools are needed.
func RenderPNG(l layout.Layout, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2, margin: DefaultMargin, background: "white", faces: map[float64]font.Face{}}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		r.scale = 1
	}
	f, err := monoFont()
	if err != nil {
		return nil, err
	}

	v := svgRenderer{margin: r.margin, scale: r.scale}.viewport(l.Bounds)
	w, h := int(math.Ceil(v.Width)), int(math.Ceil(v.Height))
	dc := gg.NewContext(max(w, 1), max(h, 1))

	if c, ok := parseColor(r.background); ok {
		dc.SetColor(c)
		dc.Clear()
	}
	dc.Scale(r.scale, r.scale)
	dc.Translate(-v.X, -v.Y)

	for _, p := range l.Primitives {
		r.paint(dc, f, p)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *pngRenderer) face(f *truetype.Font, size float64) font.Face {
	if fc, ok := r.faces[size]; ok {
		return fc
	}
	fc := truetype.NewFace(f, &truetype.Options{Size: size, Hinting: font.HintingNone})
	r.faces[size] = fc
	return fc
}

func (r *pngRenderer) paint(dc *gg.Context, f *truetype.Font, p scene.Primitive) {
	switch p := p.(type) {
	case scene.Rect:
		dc.DrawRectangle(p.X, p.Y, p.W, p.H)
		r.fillStroke(dc, p.Fill, p.Stroke, p.StrokeWidth)
	case scene.Circle:
		dc.DrawCircle(p.CX, p.CY, p.R)
		r.fillStroke(dc, p.Fill, p.Stroke, p.StrokeWidth)
	case scene.Polygon:
		for i, pt := range p.Points {
			if i == 0 {
				dc.MoveTo(pt.X, pt.Y)
			} else {
				dc.LineTo(pt.X, pt.Y)
			}
		}
		dc.ClosePath()
		r.fillStroke(dc, p.Fill, p.Stroke, 1)
	case scene.Path:
		for _, c := range p.Cmds {
			switch c.Op {
			case scene.MoveOp:
				dc.MoveTo(c.X, c.Y)
			case scene.LineOp:
				dc.LineTo(c.X, c.Y)
			case scene.ArcOp:
				dc.DrawArc(c.X, c.Y, c.R, c.Start, c.End)
			}
		}
		r.fillStroke(dc, p.Fill, p.Stroke, p.StrokeWidth)
	case scene.Text:
		if p.Content == "" {
			return
		}
		c, ok := parseColor(p.Fill)
		if !ok {
			c = color.Black
		}
		dc.Push()
		if !p.Rotate.IsZero() {
			dc.RotateAbout(gg.Radians(p.Rotate.Angle), p.Rotate.CX, p.Rotate.CY)
		}
		dc.SetFontFace(r.face(f, p.Font.Size))
		dc.SetColor(c)
		dc.DrawStringAnchored(p.Content, p.X, p.Y, anchorX(p.Anchor), anchorY(p.Baseline))
		dc.Pop()
	case scene.Group:
		dc.Push()
		if !p.Rotate.IsZero() {
			dc.RotateAbout(gg.Radians(p.Rotate.Angle), p.Rotate.CX, p.Rotate.CY)
		}
		for _, c := range p.Children {
			r.paint(dc, f, c)
		}
		dc.Pop()
	}
}

func (r *pngRenderer) fillStroke(dc *gg.Context, fill, stroke string, width float64) {
	if c, ok := parseColor(fill); ok {
		dc.SetColor(c)
		dc.FillPreserve()
	}
	if c, ok := parseColor(stroke); ok && width > 0 {
		dc.SetColor(c)
		dc.SetLineWidth(width * r.scale)
		dc.StrokePreserve()
	}
	dc.ClearPath()
}

func anchorX(a scene.Anchor) float64 {
	switch a {
	case scene.AnchorMiddle:
		return 0.5
	case scene.AnchorEnd:
		return 1
	}
	return 0
}

func anchorY(b scene.Baseline) float64 {
	if b == scene.BaselineMiddle {
		return 0.5
	}
	return 0
}

var namedColors = map[string]colorful.Color{
	"black": {R: 0, G: 0, B: 0},
	"white": {R: 1, G: 1, B: 1},
	"gray":  {R: 128.0 / 255, G: 128.0 / 255, B: 128.0 / 255},
	"grey":  {R: 128.0 / 255, G: 128.0 / 255, B: 128.0 / 255},
	"red":   {R: 1, G: 0, B: 0},
	"green": {R: 0, G: 128.0 / 255, B: 0},
	"blue":  {R: 0, G: 0, B: 1},
}

// parseColor understands #rgb, #rrggbb (trailing characters ignored) and a
// few color names. Anything else, including "none", is not painted.
func parseColor(s string) (color.Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, true
	}
	if !strings.HasPrefix(s, "#") {
		return nil, false
	}
	if len(s) > 7 {
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, false
	}
	return c, true
}

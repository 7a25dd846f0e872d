package sink

import (
	"encoding/json"

	"github.com/matzehuels/pinout/pkg/component"
	"github.com/matzehuels/pinout/pkg/render/ic/layout"
	"github.com/matzehuels/pinout/pkg/render/ic/scene"
	"github.com/matzehuels/pinout/pkg/render/ic/styles"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	info   *component.Info
	indent bool
}

// WithJSONDescriptor includes the component's info table in the output.
func WithJSONDescriptor(d component.Descriptor) JSONOption {
	return func(r *jsonRenderer) { r.info = &d.Info }
}

// WithJSONIndent pretty-prints the output.
func WithJSONIndent() JSONOption { return func(r *jsonRenderer) { r.indent = true } }

type jsonOutput struct {
	Kind       component.Kind  `json:"kind"`
	Name       string          `json:"name"`
	Frame      jsonSize        `json:"frame"`
	Body       jsonBox         `json:"body"`
	Bounds     jsonBox         `json:"bounds"`
	Info       *component.Info `json:"info,omitempty"`
	Pins       []jsonPin       `json:"pins"`
	Primitives []jsonPrimitive `json:"primitives"`
}

type jsonSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type jsonBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type jsonPin struct {
	Position int     `json:"position"`
	Label    string  `json:"label"`
	Name     string  `json:"name"`
	Side     string  `json:"side"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Visible  bool    `json:"visible"`
}

type jsonPrimitive struct {
	Type        string          `json:"type"`
	X           float64         `json:"x,omitempty"`
	Y           float64         `json:"y,omitempty"`
	Width       float64         `json:"width,omitempty"`
	Height      float64         `json:"height,omitempty"`
	CX          float64         `json:"cx,omitempty"`
	CY          float64         `json:"cy,omitempty"`
	R           float64         `json:"r,omitempty"`
	Points      [][2]float64    `json:"points,omitempty"`
	D           string          `json:"d,omitempty"`
	Content     string          `json:"content,omitempty"`
	Anchor      string          `json:"anchor,omitempty"`
	Baseline    string          `json:"baseline,omitempty"`
	Font        *styles.Font    `json:"font,omitempty"`
	Fill        string          `json:"fill,omitempty"`
	Stroke      string          `json:"stroke,omitempty"`
	StrokeWidth float64         `json:"stroke_width,omitempty"`
	Rotate      *jsonRotation   `json:"rotate,omitempty"`
	Children    []jsonPrimitive `json:"children,omitempty"`
}

type jsonRotation struct {
	Angle float64 `json:"angle"`
	CX    float64 `json:"cx"`
	CY    float64 `json:"cy"`
}

// RenderJSON exports the layout: frame, body, bounds, pin placement and the
// full primitive tree.
func RenderJSON(l layout.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Kind:       l.Kind,
		Name:       l.Name,
		Frame:      jsonSize{Width: l.Frame.W, Height: l.Frame.H},
		Body:       toJSONBox(l.Body),
		Bounds:     toJSONBox(l.Bounds),
		Info:       r.info,
		Pins:       make([]jsonPin, len(l.Pins)),
		Primitives: toJSONPrimitives(l.Primitives),
	}
	for i, p := range l.Pins {
		out.Pins[i] = jsonPin{
			Position: p.Position,
			Label:    p.Label,
			Name:     p.Name,
			Side:     p.Side.String(),
			X:        p.X,
			Y:        p.Y,
			Visible:  p.Visible,
		}
	}

	if r.indent {
		return json.MarshalIndent(out, "", "  ")
	}
	return json.Marshal(out)
}

func toJSONBox(b scene.Box) jsonBox {
	if b.Empty() {
		return jsonBox{}
	}
	return jsonBox{X: b.MinX, Y: b.MinY, Width: b.Width(), Height: b.Height()}
}

func toJSONPrimitives(prims []scene.Primitive) []jsonPrimitive {
	out := make([]jsonPrimitive, 0, len(prims))
	for _, p := range prims {
		out = append(out, toJSONPrimitive(p))
	}
	return out
}

func toJSONPrimitive(p scene.Primitive) jsonPrimitive {
	switch p := p.(type) {
	case scene.Rect:
		return jsonPrimitive{Type: "rect", X: p.X, Y: p.Y, Width: p.W, Height: p.H,
			Fill: p.Fill, Stroke: p.Stroke, StrokeWidth: p.StrokeWidth}
	case scene.Circle:
		return jsonPrimitive{Type: "circle", CX: p.CX, CY: p.CY, R: p.R,
			Fill: p.Fill, Stroke: p.Stroke, StrokeWidth: p.StrokeWidth}
	case scene.Polygon:
		pts := make([][2]float64, len(p.Points))
		for i, pt := range p.Points {
			pts[i] = [2]float64{pt.X, pt.Y}
		}
		return jsonPrimitive{Type: "polygon", Points: pts, Fill: p.Fill, Stroke: p.Stroke}
	case scene.Path:
		return jsonPrimitive{Type: "path", D: p.D(), Fill: p.Fill, Stroke: p.Stroke, StrokeWidth: p.StrokeWidth}
	case scene.Text:
		font := p.Font
		return jsonPrimitive{Type: "text", X: p.X, Y: p.Y, Content: p.Content,
			Anchor: string(p.Anchor), Baseline: string(p.Baseline), Font: &font, Fill: p.Fill,
			Rotate: toJSONRotation(p.Rotate)}
	case scene.Group:
		return jsonPrimitive{Type: "group", Children: toJSONPrimitives(p.Children), Rotate: toJSONRotation(p.Rotate)}
	}
	return jsonPrimitive{Type: "unknown"}
}

func toJSONRotation(r scene.Rotation) *jsonRotation {
	if r.IsZero() {
		return nil
	}
	return &jsonRotation{Angle: r.Angle, CX: r.CX, CY: r.CY}
}

package sink

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"image/png"
	"strings"
	"testing"

	"github.com/matzehuels/pinout/pkg/component"
	"github.com/matzehuels/pinout/pkg/config"
	"github.com/matzehuels/pinout/pkg/render/ic/layout"
)

// dip8 has single-letter names so its bounds are easy to derive:
// x 139..561, y 50..180.
func dip8(t *testing.T, skip ...int) (component.Descriptor, layout.Layout) {
	t.Helper()
	d := component.Descriptor{
		Info: component.Info{Name: "X", Package: component.DIP, NumPins: 8},
		Pins: map[int]component.Pin{},
	}
	for i := 1; i <= 8; i++ {
		d.Pins[i] = component.Pin{Name: "A", Dir: component.None}
	}
	for _, s := range skip {
		d.Pins[s] = component.Pin{Name: component.SkipName}
	}
	l, err := layout.Build(d, config.Default())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return d, l
}

type svgDoc struct {
	ViewBox string `xml:"viewBox,attr"`
	Width   string `xml:"width,attr"`
	Height  string `xml:"height,attr"`
	Title   string `xml:"title"`
	Groups  []struct {
		Transform string `xml:"transform,attr"`
	} `xml:"g"`
}

func parseSVG(t *testing.T, data []byte) svgDoc {
	t.Helper()
	var doc svgDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("invalid SVG: %v\n%s", err, data)
	}
	return doc
}

func TestRenderSVGViewport(t *testing.T) {
	_, l := dip8(t)

	tests := []struct {
		name       string
		opts       []SVGOption
		wantView   string
		wantWidth  string
		wantHeight string
	}{
		{"default margin", nil, "139 50 423 131", "423", "131"},
		{"no margin", []SVGOption{WithMargin(0)}, "139 50 422 130", "422", "130"},
		{"scaled", []SVGOption{WithScale(2)}, "139 50 423 131", "846", "262"},
		{"clamped", []SVGOption{WithMaxHeight(65.5)}, "139 50 423 131", "211.5", "65.5"},
		{"clamp not needed", []SVGOption{WithMaxHeight(500)}, "139 50 423 131", "423", "131"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parseSVG(t, RenderSVG(l, tt.opts...))
			if doc.ViewBox != tt.wantView {
				t.Errorf("viewBox = %q, want %q", doc.ViewBox, tt.wantView)
			}
			if doc.Width != tt.wantWidth || doc.Height != tt.wantHeight {
				t.Errorf("size = %sx%s, want %sx%s", doc.Width, doc.Height, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestRenderSVGContent(t *testing.T) {
	_, l := dip8(t, 2, 7)
	svg := RenderSVG(l, WithTitle(`74HC<00> & co`))
	doc := parseSVG(t, svg)

	if doc.Title != "74HC<00> & co" {
		t.Errorf("title = %q", doc.Title)
	}
	if len(doc.Groups) != 6 {
		t.Errorf("pin groups = %d, want 6 (SKIP pins omitted)", len(doc.Groups))
	}

	s := string(svg)
	for _, want := range []string{
		`<rect x="200" y="50" width="300" height="130" fill="white" stroke="black" stroke-width="1"/>`,
		`<path d="M 330 50 A 20 20 0 0 0 370 50 L 330 50" fill="white" stroke="black" stroke-width="1"/>`,
		`transform="rotate(90, 350, 115)"`,
		`font-family="Roboto Mono" font-size="64px" font-weight="500" fill="gray"`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("SVG missing %s", want)
		}
	}
}

func TestRenderSVGRotatedPins(t *testing.T) {
	d := component.Descriptor{
		Info: component.Info{Name: "S", Package: component.SIP, NumPins: 2},
		Pins: map[int]component.Pin{1: {Name: "A"}, 2: {Name: "B"}},
	}
	l, err := layout.Build(d, config.Default())
	if err != nil {
		t.Fatal(err)
	}
	doc := parseSVG(t, RenderSVG(l))
	if len(doc.Groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(doc.Groups))
	}
	// First pin box at (0, 210), 40x20.
	if got := doc.Groups[0].Transform; got != "rotate(-90, 20, 220)" {
		t.Errorf("transform = %q", got)
	}
}

func TestRenderPNG(t *testing.T) {
	_, l := dip8(t, 3)

	tests := []struct {
		name  string
		opts  []PNGOption
		wantW int
		wantH int
	}{
		{"default 2x", nil, 846, 262},
		{"1x", []PNGOption{WithPNGScale(1)}, 423, 131},
		{"no margin", []PNGOption{WithPNGScale(1), WithPNGMargin(0)}, 422, 130},
		{"transparent", []PNGOption{WithPNGScale(0.5), WithBackground("")}, 212, 66},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := RenderPNG(l, tt.opts...)
			if err != nil {
				t.Fatalf("RenderPNG() error = %v", err)
			}
			img, err := png.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("png.Decode() error = %v", err)
			}
			b := img.Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestRenderPNGPaintsFill(t *testing.T) {
	d, _ := dip8(t)
	d.Pins[1] = component.Pin{Name: "A", Color: "#ff0000"}
	l, err := layout.Build(d, config.Default())
	if err != nil {
		t.Fatal(err)
	}
	data, err := RenderPNG(l, WithPNGScale(1))
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}

	// Pin 1 spans (160,60)-(200,80); the canvas starts at (139,50).
	r, g, b, _ := img.At(165-139, 65-50).RGBA()
	if r != 0xffff || g != 0 || b != 0 {
		t.Errorf("pin 1 fill = %x %x %x, want red", r, g, b)
	}
	// Nothing is drawn in the top-left corner.
	r, g, b, _ = img.At(0, 0).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff {
		t.Errorf("corner pixel = %x %x %x, want white", r, g, b)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"black", true},
		{"Gray", true},
		{"#ff9999", true},
		{"#ff9999cc", true},
		{"#abc", true},
		{"", false},
		{"none", false},
		{"#zzzzzz", false},
		{"ff9999", false},
	}
	for _, tt := range tests {
		if _, ok := parseColor(tt.in); ok != tt.ok {
			t.Errorf("parseColor(%q) ok = %v, want %v", tt.in, ok, tt.ok)
		}
	}
}

func TestRenderJSON(t *testing.T) {
	d, l := dip8(t, 5)
	data, err := RenderJSON(l, WithJSONDescriptor(d), WithJSONIndent())
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}

	if out.Kind != component.DIP || out.Name != "X" {
		t.Errorf("kind/name = %s/%s", out.Kind, out.Name)
	}
	if out.Frame != (jsonSize{Width: 700, Height: 230}) {
		t.Errorf("Frame = %+v", out.Frame)
	}
	if out.Body != (jsonBox{X: 200, Y: 50, Width: 300, Height: 130}) {
		t.Errorf("Body = %+v", out.Body)
	}
	if out.Bounds != (jsonBox{X: 139, Y: 50, Width: 422, Height: 130}) {
		t.Errorf("Bounds = %+v", out.Bounds)
	}
	if out.Info == nil || out.Info.NumPins != 8 {
		t.Errorf("Info = %+v", out.Info)
	}
	if len(out.Pins) != 8 {
		t.Fatalf("Pins = %d, want 8", len(out.Pins))
	}
	for _, p := range out.Pins {
		if p.Visible != (p.Position != 5) {
			t.Errorf("pin %d visible = %v", p.Position, p.Visible)
		}
	}
	if p := out.Pins[4]; p.Label != "8" || p.Side != "right" {
		t.Errorf("first right pin = %+v", p)
	}

	var types []string
	for _, p := range out.Primitives {
		types = append(types, p.Type)
	}
	if got := strings.Join(types, ","); got != "rect,text,path,"+strings.Repeat("group,", 7)+"group" {
		t.Errorf("primitive types = %s", got)
	}
	if txt := out.Primitives[1]; txt.Font == nil || txt.Font.Size != 64 || txt.Rotate == nil || txt.Rotate.Angle != 90 {
		t.Errorf("name primitive = %+v", txt)
	}

	empty := 0
	for _, p := range out.Primitives[3:] {
		if len(p.Children) == 0 {
			empty++
		}
	}
	if empty != 1 {
		t.Errorf("empty pin groups = %d, want 1", empty)
	}
}

func TestRenderJSONCompact(t *testing.T) {
	_, l := dip8(t)
	data, err := RenderJSON(l)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(data, []byte("\n")) {
		t.Error("compact output contains newlines")
	}
	if bytes.Contains(data, []byte(`"info"`)) {
		t.Error("info present without WithJSONDescriptor")
	}
	if !json.Valid(data) {
		t.Error("invalid JSON")
	}
	if !strings.Contains(string(data), `"side":"left"`) {
		t.Error("pin sides not exported")
	}
}

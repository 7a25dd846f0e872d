package layout

import (
	"github.com/matzehuels/pinout/pkg/render/ic/scene"
	"github.com/matzehuels/pinout/pkg/render/ic/styles"
)

// Edge connector body width.
const edgeWidth = 100

// Horizontal distance of the headings from the body.
const headingGap = 20

// layoutEdge draws a card edge connector. Unlike DIP, both columns are read
// top to bottom: 1..N/2 on the right, N/2+1..N on the left.
func layoutEdge(b *builder) {
	info := b.desc.Info
	pad := b.cfg.Package.Edge
	pw, ph, s := b.cfg.Pin.Width, b.cfg.Pin.Height, b.cfg.Pin.Spacing
	n := info.NumPins

	w := float64(edgeWidth)
	h := b.sideLength(n / 2)
	b.frame = Frame{W: pad.SidePad*2 + w, H: pad.TopPad*2 + h}

	b.drawBody(pad.SidePad, pad.TopPad, w, h)
	b.drawName(pad.SidePad+w/2, pad.TopPad+h/2, styles.EdgeFont, false)
	b.drawHeading(info.HeadingRight, pad.SidePad+w+headingGap, scene.AnchorStart)
	b.drawHeading(info.HeadingLeft, pad.SidePad-headingGap, scene.AnchorEnd)

	leftX := pad.SidePad - pw
	rightX := pad.SidePad + w
	top := pad.TopPad + (s - ph)

	for i := range n / 2 {
		b.drawPin(rightX, top+float64(i)*s, Right, i+1)
	}
	for i := range n / 2 {
		b.drawPin(leftX, top+float64(i)*s, Left, n/2+i+1)
	}
}

// drawHeading labels a column on the top line of the drawing.
func (b *builder) drawHeading(text string, x float64, anchor scene.Anchor) {
	if text == "" {
		return
	}
	b.prims = append(b.prims, scene.Text{
		X: x, Y: 0,
		Content:  text,
		Anchor:   anchor,
		Baseline: scene.BaselineMiddle,
		Font:     styles.HeadingFont,
		Fill:     styles.Black,
	})
}

package layout

import "github.com/matzehuels/pinout/pkg/render/ic/styles"

// layoutDIP draws a dual in-line package. Rows are shared by both columns:
// pin i on the left faces pin N+1-i on the right.
func layoutDIP(b *builder) {
	info := b.desc.Info
	pad := b.cfg.Package.DIP
	pw, ph, s := b.cfg.Pin.Width, b.cfg.Pin.Height, b.cfg.Pin.Spacing
	n := info.NumPins

	w := info.Width.Value
	if w <= 0 {
		w = b.cfg.DIPWidth(info.Width.Preset)
	}
	h := b.sideLength(n / 2)
	b.frame = Frame{W: pad.SidePad*2 + w, H: pad.TopPad*2 + h}

	b.drawBody(pad.SidePad, pad.TopPad, w, h)
	cx, cy := pad.SidePad+w/2, pad.TopPad+h/2
	b.drawName(cx, cy, styles.BodyFont, false)
	b.drawNotch(cx, pad.TopPad)

	leftX := pad.SidePad - pw
	rightX := pad.SidePad + w
	top := pad.TopPad + (s - ph)

	for i := range n / 2 {
		b.drawPin(leftX, top+float64(i)*s, Left, i+1)
	}
	for i := range n / 2 {
		b.drawPin(rightX, top+float64(i)*s, Right, n-i)
	}
}

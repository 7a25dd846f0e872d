package layout

import (
	"github.com/matzehuels/pinout/pkg/render/ic/scene"
	"github.com/matzehuels/pinout/pkg/render/ic/styles"
)

// SIP body height and orientation dot geometry.
const (
	sipHeight    = 200
	sipDotRadius = 15
	sipDotInset  = 30
)

// layoutSIP draws a single in-line package with its pins along the bottom.
// Reversed packages count from the right and move the orientation dot to
// the right corner.
func layoutSIP(b *builder) {
	info := b.desc.Info
	pw, ph, s := b.cfg.Pin.Width, b.cfg.Pin.Height, b.cfg.Pin.Spacing
	n := info.NumPins

	w := s*float64(n) + (s - ph)
	h := float64(sipHeight)
	b.frame = Frame{W: w, H: h + b.cfg.Package.SIP.BottomPad}

	b.drawBody(0, 0, w, h)
	b.drawName(w/2, h/2, styles.BodyFont, true)

	dotX := float64(sipDotInset)
	if info.Reversed {
		dotX = w - sipDotInset
	}
	b.prims = append(b.prims, scene.Circle{
		CX: dotX, CY: h - sipDotInset, R: sipDotRadius,
		Fill:        styles.White,
		Stroke:      styles.Black,
		StrokeWidth: 1,
	})

	y := h + (pw-ph)/2
	if info.Reversed {
		start := w - s - (pw-ph)/2
		for i := range n {
			b.drawPin(start-float64(i)*s, y, Bottom, i+1)
		}
		return
	}
	for i := range n {
		b.drawPin(float64(i)*s, y, Bottom, i+1)
	}
}

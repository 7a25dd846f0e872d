package layout

import (
	"math"

	"github.com/matzehuels/pinout/pkg/render/ic/styles"
)

// layoutPLCC draws a square leaded chip carrier with N/4 pins per side.
//
// Pin 1 sits at the middle of the top edge. The top side holds the first
// ⌈N/8⌉ pins, counting down to 1 from the left, followed by the highest
// numbers counting down toward the right corner. The remaining sides run
// counter-clockwise: left top to bottom, bottom left to right, right
// bottom to top.
func layoutPLCC(b *builder) {
	pad := b.cfg.Package.PLCC.SidePad
	pw, ph, s := b.cfg.Pin.Width, b.cfg.Pin.Height, b.cfg.Pin.Spacing
	n := b.desc.Info.NumPins
	k := n / 4

	w := b.sideLength(k)
	h := w
	b.frame = Frame{W: pad*2 + w, H: pad*2 + h}

	b.drawBody(pad, pad, w, h)
	cx := pad + w/2
	b.drawName(cx, pad+h/2, styles.BodyFont, true)
	b.drawNotch(cx, pad)

	// Top, from the middle outward to the left, then from the right corner.
	head := int(math.Ceil(float64(n) / 8))
	y := pad - ph - (pw-ph)/2
	x := pad
	for p := head; p >= 1; p-- {
		b.drawPin(x, y, Top, p)
		x += s
	}
	for p := n; p > n-(k-head); p-- {
		b.drawPin(x, y, Top, p)
		x += s
	}

	next := head + 1

	// Left, top to bottom.
	x, y = pad-pw, pad-(s-pw)
	for i := range k {
		b.drawPin(x, y+float64(i)*s, Left, next+i)
	}
	next += k

	// Bottom, left to right.
	x, y = pad, pad+h+math.Abs(s-pw)
	for i := range k {
		b.drawPin(x+float64(i)*s, y, Bottom, next+i)
	}
	next += k

	// Right, bottom to top.
	x, y = pad+w, pad-(s-pw)+float64(k-1)*s
	for i := range k {
		b.drawPin(x, y-float64(i)*s, Right, next+i)
	}
}

package layout

import "github.com/matzehuels/pinout/pkg/render/ic/styles"

// layoutQFP draws a quad flat package. Pin 1 is at the left end of the
// bottom side and numbering runs counter-clockwise. The bottom and top
// sides hold num_pins_base pins when the descriptor sets it; the left and
// right sides take the rest.
func layoutQFP(b *builder) {
	info := b.desc.Info
	pad := b.cfg.Package.QFP.SidePad
	pw, ph, s := b.cfg.Pin.Width, b.cfg.Pin.Height, b.cfg.Pin.Spacing
	n := info.NumPins

	base, side := n/4, n/4
	if info.NumPinsBase > 0 {
		base = info.NumPinsBase
		side = n/2 - base
	}

	w := b.sideLength(base)
	h := b.sideLength(side)
	b.frame = Frame{W: pad*2 + w, H: pad*2 + h}

	b.drawBody(pad, pad, w, h)
	cx := pad + w/2
	b.drawName(cx, pad+h/2, styles.BodyFont, true)
	b.drawNotch(cx, pad)

	next := 1

	// Bottom, left to right.
	x, y := pad, pad+h+(pw-ph)/2
	for i := range base {
		b.drawPin(x+float64(i)*s, y, Bottom, next+i)
	}
	next += base

	// Right, bottom to top.
	x, y = pad+w, pad-(s-pw)+float64(side-1)*s
	for i := range side {
		b.drawPin(x, y-float64(i)*s, Right, next+i)
	}
	next += side

	// Top, right to left.
	x, y = pad+float64(base-1)*s, pad-ph-(pw-ph)/2
	for i := range base {
		b.drawPin(x-float64(i)*s, y, Top, next+i)
	}
	next += base

	// Left, top to bottom.
	x, y = pad-pw, pad+(pw-ph)/2
	for i := range side {
		b.drawPin(x, y+float64(i)*s, Left, next+i)
	}
}

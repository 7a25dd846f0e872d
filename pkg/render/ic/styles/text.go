package styles

import (
	"bytes"
	"encoding/xml"

	"github.com/mattn/go-runewidth"
)

// Font describes how a label is set.
type Font struct {
	Family string  `json:"family"`
	Size   float64 `json:"size"`
	Weight int     `json:"weight"`
}

const fontFamily = "Roboto Mono"

var (
	PinFont     = Font{Family: fontFamily, Size: 22, Weight: 500} // pin numbers and names
	ProbeFont   = Font{Family: fontFamily, Size: 12, Weight: 500} // "AP" tag
	BodyFont    = Font{Family: fontFamily, Size: 64, Weight: 500} // component name
	EdgeFont    = Font{Family: fontFamily, Size: 32, Weight: 500} // edge connector name
	HeadingFont = Font{Family: fontFamily, Size: 32, Weight: 500} // edge connector headings
)

// One display column is 13 units wide at 22px.
const (
	columnWidth = 13
	columnSize  = 22
)

// CharWidth is the width of one display column at size.
func CharWidth(size float64) float64 { return size * columnWidth / columnSize }

// TextWidth is the rendered width of s at size. East Asian wide runes take
// two columns.
func TextWidth(s string, size float64) float64 {
	return float64(runewidth.StringWidth(s)) * CharWidth(size)
}

// LastCharWidth is the width of the final rune of s, or zero for "".
func LastCharWidth(s string, size float64) float64 {
	r := []rune(s)
	if len(r) == 0 {
		return 0
	}
	return float64(runewidth.RuneWidth(r[len(r)-1])) * CharWidth(size)
}

func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

package styles

import (
	"regexp"

	"github.com/matzehuels/pinout/pkg/config"
)

// Fixed colors of the drawing.
const (
	Black = "black"
	White = "white"
	Gray  = "gray"
)

var hexColor = regexp.MustCompile(`^#[a-fA-F0-9]{6}.*$`)

// ResolveColor maps a requested pin color to a drawable color.
//
// With colors disabled, or nothing requested, the palette default is used.
// A literal starting with #RRGGBB passes through verbatim, trailing
// characters included. Anything else is a palette name; unknown names fall
// back to the default. ResolveColor never fails.
func ResolveColor(requested string, palette map[string]string, enabled bool) string {
	fallback := palette[config.DefaultColor]
	if !enabled || requested == "" {
		return fallback
	}
	if hexColor.MatchString(requested) {
		return requested
	}
	if c, ok := palette[requested]; ok {
		return c
	}
	return fallback
}

// Package styles holds the visual vocabulary shared by the pinout layout
// engine and its sinks: the fonts, the fixed stroke colors, pin color
// resolution and the monospace text metrics used to size labels.
//
// Layouts never measure glyphs. Every label is set in a monospace face, so
// the width of a string is its display column count times a fixed advance
// per column (see [TextWidth]).
package styles

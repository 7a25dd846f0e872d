// Package render holds the rendering code for pinout diagrams.
//
// The layout engine and its output sinks live in subpackages:
//   - [ic/layout]: package strategies and the pin renderer
//   - [ic/scene]: backend-neutral primitives and bounding boxes
//   - [ic/sink]: SVG, PNG, PDF and JSON output
//   - [ic/styles]: fonts, colors and text metrics
//
// This package provides format conversion for SVG documents. [ToPDF] shells
// out to rsvg-convert from librsvg:
//
//	svg := sink.RenderSVG(l)
//	pdf, err := render.ToPDF(ctx, svg)
//
// [ic/layout]: github.com/matzehuels/pinout/pkg/render/ic/layout
// [ic/scene]: github.com/matzehuels/pinout/pkg/render/ic/scene
// [ic/sink]: github.com/matzehuels/pinout/pkg/render/ic/sink
// [ic/styles]: github.com/matzehuels/pinout/pkg/render/ic/styles
package render

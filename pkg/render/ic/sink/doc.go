// Package sink paints pinout layouts into output formats.
//
// # Overview
//
// A "sink" transforms a computed [layout.Layout] into a final output format.
// This package provides renderers for:
//
//   - SVG: the reference vector output
//   - PNG: native raster output painted with gg, no external tools
//   - PDF: print-ready output (SVG piped through rsvg-convert)
//   - JSON: the scene and pin placement for external tools
//
// The layout engine only reports the tight bounding box of a drawing. Sinks
// own the presentation policy on top of it: a margin added to the right and
// bottom of the box (one unit by default, so the last row and column of
// pixels are not clipped), an optional scale, and an optional clamp on the
// output height.
//
// # SVG Options
//
//   - [WithMargin]: space added to the bounding box (default 1)
//   - [WithScale]: multiplier for the width and height attributes (default 1)
//   - [WithMaxHeight]: clamp the displayed height, keeping the aspect ratio
//   - [WithTitle]: document title
//
// # Usage
//
//	l, err := layout.Build(desc, cfg)
//	if err != nil {
//	    return err
//	}
//	svg := sink.RenderSVG(l, sink.WithTitle(desc.Info.Name))
//	png, err := sink.RenderPNG(l, sink.WithPNGScale(2))
package sink

// Package pkg provides the core libraries for pinout diagrams.
//
// # Overview
//
// Pinout turns a TOML description of an integrated circuit into a labeled
// drawing of its package: a body rectangle with one colored box per pin,
// placed along the edges the way the physical part is built. DIP, card
// edge (EDGE), PLCC, QFP and SIP packages are supported.
//
// # Architecture
//
// The typical data flow:
//
//	component TOML
//	     ↓
//	[component] (decode + validate)
//	     ↓
//	[render/ic/layout] (package strategy + pin renderer)
//	     ↓
//	[render/ic/scene] (primitives + bounds)
//	     ↓
//	[render/ic/sink] (SVG, PNG, PDF, JSON)
//
// # Quick Start
//
//	desc, err := component.Load("ne555.toml")
//	if err != nil {
//	    return err
//	}
//	l, err := layout.Build(desc, config.Default())
//	if err != nil {
//	    return err
//	}
//	svg := sink.RenderSVG(l)
//
// # Main Packages
//
// [component] - Component descriptors: package kind, pin count, per-pin
// name, direction, flags and color. Validation reports
// UNSUPPORTED_PACKAGE and MALFORMED_DESCRIPTOR.
//
// [config] - Drawing parameters (pin geometry, palette, package paddings)
// loaded from TOML and merged over the defaults.
//
// [render/ic/layout] - One layout strategy per package kind and the pin
// renderer shared by all of them.
//
// [render/ic/sink] - Output backends for a finished layout.
//
// [pipeline] - Load, layout and render with an artifact cache.
//
// [catalog] - Browsable component collections indexed by types.toml.
//
// [pintable] - Pin tables as rows or XLSX workbooks.
//
// [cache] - Content-addressed artifact cache.
//
// [errors] - Coded errors shared by every package.
//
// [component]: github.com/matzehuels/pinout/pkg/component
// [config]: github.com/matzehuels/pinout/pkg/config
// [render/ic/layout]: github.com/matzehuels/pinout/pkg/render/ic/layout
// [render/ic/scene]: github.com/matzehuels/pinout/pkg/render/ic/scene
// [render/ic/sink]: github.com/matzehuels/pinout/pkg/render/ic/sink
// [pipeline]: github.com/matzehuels/pinout/pkg/pipeline
// [catalog]: github.com/matzehuels/pinout/pkg/catalog
// [pintable]: github.com/matzehuels/pinout/pkg/pintable
// [cache]: github.com/matzehuels/pinout/pkg/cache
// [errors]: github.com/matzehuels/pinout/pkg/errors
package pkg

// Package layout places the pins and body of an integrated circuit package.
//
// # Overview
//
// [Build] turns a validated [component.Descriptor] and a [config.Config]
// into a [Layout]: one ordered scene of primitives, its tight bounding box,
// the body rectangle, the nominal frame size and the list of placed pin
// slots. Build is a pure function. It performs no I/O, keeps no state and
// does not modify its inputs, so it may be called concurrently.
//
// # Package Kinds
//
// Each kind has its own strategy:
//
//   - DIP: two columns. Pins 1..N/2 run down the left side; the right side
//     counts back up from N/2+1 at the bottom to N at the top.
//   - EDGE: two columns, both read top to bottom. Pins 1..N/2 on the right,
//     N/2+1..N on the left. Optional headings sit above each column.
//   - PLCC: four sides of N/4. Pin 1 is at the middle of the top edge;
//     numbering runs counter-clockwise around the body.
//   - QFP: pin 1 at the bottom-left corner, counter-clockwise. The
//     horizontal sides hold num_pins_base pins when set, N/4 otherwise.
//   - SIP: one row under the body, optionally mirrored.
//
// # Pin Drawing
//
// Strategies author every pin as if it sat on the left or right side of the
// body and call [RenderPin]. Pins on the top and bottom are the same drawing
// rotated a quarter turn counter-clockwise about the pin box center.
//
// # Geometry
//
// A side of K pins is K·spacing + (spacing − pin height) long, so the first
// and last pins keep the same clearance from the body corners. The
// orientation notch is a semicircle of radius 20 regardless of package size.
package layout

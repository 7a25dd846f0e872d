// Package scene is the backend-neutral drawing model produced by the
// pinout layout engine.
//
// A scene is an ordered list of [Primitive] values: rectangles, text,
// polygons, paths, circles and groups. Later primitives paint over earlier
// ones. Every primitive reports its axis-aligned [Box], and [New] folds them
// into the tight bounding box of the whole drawing.
//
// Coordinates follow the screen convention used by SVG: x grows to the
// right, y grows downward, and rotation angles are in degrees with positive
// values turning clockwise on screen. Sinks in pkg/render/ic/sink paint
// scenes as SVG, PNG, PDF or JSON.
package scene

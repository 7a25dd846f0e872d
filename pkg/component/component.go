// Package component models an integrated circuit as described in a
// component file: its package kind, pin count and the metadata of every pin.
//
// A [Descriptor] is plain data. It is decoded from TOML by [Read] or
// [Load], checked by [Descriptor.Validate], and handed unchanged to the
// layout engine in pkg/render/ic/layout.
//
// # File Format
//
//	[info]
//	name = "NE555"
//	package = "DIP"
//	num_pins = 8
//	description = "Precision timer"
//
//	[pins]
//	1 = { name = "GND", color = "ground" }
//	2 = { name = "TRIG", dir = "IN", flags = ["activeLow"] }
//	3 = { name = "OUT", dir = "OUT" }
//	4 = { name = "RESET", dir = "IN", flags = ["activeLow"] }
//	5 = { name = "CTRL", dir = "IN" }
//	6 = { name = "THR", dir = "IN" }
//	7 = { name = "DIS", dir = "OUT" }
//	8 = { name = "VCC", color = "power" }
//
// Pin tables are keyed by the physical pin position. A pin named "SKIP"
// holds its slot in the drawing but is not drawn.
package component

import (
	"fmt"
	"slices"
	"strconv"
)

// Kind is a physical package topology.
type Kind string

const (
	DIP  Kind = "DIP"  // dual in-line
	Edge Kind = "EDGE" // card edge connector
	PLCC Kind = "PLCC" // plastic leaded chip carrier
	QFP  Kind = "QFP"  // quad flat package
	SIP  Kind = "SIP"  // single in-line
)

// Kinds returns every supported package kind.
func Kinds() []Kind { return []Kind{DIP, Edge, PLCC, QFP, SIP} }

// Supported reports whether k has a layout.
func (k Kind) Supported() bool { return slices.Contains(Kinds(), k) }

// Direction is the signal direction of a pin.
type Direction string

const (
	None  Direction = "NONE"
	In    Direction = "IN"
	Out   Direction = "OUT"
	InOut Direction = "INOUT"
)

// Valid reports whether d is a known direction. The empty direction is
// valid and means [None].
func (d Direction) Valid() bool {
	switch d {
	case "", None, In, Out, InOut:
		return true
	}
	return false
}

// Flag is an optional pin decoration.
type Flag string

const (
	AudioProbe        Flag = "audioProbe"        // "AP" tag after the name
	ActiveLow         Flag = "activeLow"         // overscore over the name
	ActiveLowLastChar Flag = "activeLowLastChar" // shorten the overscore to the last character
)

// Valid reports whether f is a known flag.
func (f Flag) Valid() bool {
	switch f {
	case AudioProbe, ActiveLow, ActiveLowLastChar:
		return true
	}
	return false
}

// SkipName marks a pin position that is not drawn.
const SkipName = "SKIP"

// Pin is the metadata of one physical pin.
type Pin struct {
	Name     string    `toml:"name" json:"name"`
	Num      Label     `toml:"num" json:"num,omitempty"`             // shown instead of the position when set
	Dir      Direction `toml:"dir" json:"dir,omitempty"`             // empty: no arrows, wide name gap
	Color    string    `toml:"color" json:"color,omitempty"`         // palette name or #RRGGBB
	ColorNum string    `toml:"color_num" json:"color_num,omitempty"` // color of the number label
	Flags    []Flag    `toml:"flags" json:"flags,omitempty"`
}

// Skip reports whether the pin position is left undrawn.
func (p Pin) Skip() bool { return p.Name == SkipName }

// Has reports whether the pin carries flag f.
func (p Pin) Has(f Flag) bool { return slices.Contains(p.Flags, f) }

// Direction returns the pin direction with the empty value mapped to [None].
// The name gap still distinguishes an absent dir from an explicit NONE.
func (p Pin) Direction() Direction {
	if p.Dir == "" {
		return None
	}
	return p.Dir
}

// Label is a pin number override. Component files write it either as a
// string or as an integer.
type Label string

// UnmarshalTOML implements toml.Unmarshaler.
func (l *Label) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case string:
		*l = Label(v)
	case int64:
		*l = Label(strconv.FormatInt(v, 10))
	case float64:
		*l = Label(strconv.FormatFloat(v, 'f', -1, 64))
	default:
		return fmt.Errorf("num: want string or number, got %T", v)
	}
	return nil
}

// Width is a DIP body width: either an explicit number of units or the
// name of a preset from the configuration.
type Width struct {
	Value  float64 `json:"value,omitempty"`
	Preset string  `json:"preset,omitempty"`
}

// IsZero reports whether no width was given.
func (w Width) IsZero() bool { return w.Value == 0 && w.Preset == "" }

// UnmarshalTOML implements toml.Unmarshaler.
func (w *Width) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case string:
		*w = Width{Preset: v}
	case int64:
		*w = Width{Value: float64(v)}
	case float64:
		*w = Width{Value: v}
	default:
		return fmt.Errorf("width: want number or preset name, got %T", v)
	}
	return nil
}

func (w Width) String() string {
	if w.Preset != "" {
		return w.Preset
	}
	if w.Value == 0 {
		return "default"
	}
	return strconv.FormatFloat(w.Value, 'f', -1, 64)
}

// Info is the [info] table of a component file.
type Info struct {
	Name         string `toml:"name" json:"name"`
	Package      Kind   `toml:"package" json:"package"`
	NumPins      int    `toml:"num_pins" json:"num_pins"`
	NumPinsBase  int    `toml:"num_pins_base" json:"num_pins_base,omitempty"` // QFP pins per horizontal side
	Width        Width  `toml:"width" json:"width,omitzero"`                  // DIP only
	Reversed     bool   `toml:"reversed" json:"reversed,omitempty"`           // SIP only
	HeadingLeft  string `toml:"heading_left" json:"heading_left,omitempty"`   // EDGE only
	HeadingRight string `toml:"heading_right" json:"heading_right,omitempty"` // EDGE only
	Description  string `toml:"description" json:"description,omitempty"`
}

// Details is free text shown next to the drawing. It is carried through
// verbatim.
type Details struct {
	Markdown string `toml:"markdown" json:"markdown,omitempty"`
}

// Descriptor is a complete component description.
type Descriptor struct {
	Info    Info
	Pins    map[int]Pin // keyed by pin position, 1..NumPins
	Details Details
}

// Pin returns the pin at position n.
func (d Descriptor) Pin(n int) (Pin, bool) {
	p, ok := d.Pins[n]
	return p, ok
}

// Visible returns the number of pins that are drawn.
func (d Descriptor) Visible() int {
	n := 0
	for _, p := range d.Pins {
		if !p.Skip() {
			n++
		}
	}
	return n
}

// Package config defines the rendering configuration for pinout diagrams.
//
// A [Config] is an immutable value passed explicitly into every layout call.
// It carries the pin geometry (box size, pitch, arrow length), the color
// palette and the per-package paddings. There is no process-wide
// configuration: callers load one with [Load] or start from [Default].
//
// # File Format
//
// Configuration files are TOML:
//
//	[pin]
//	width = 40
//	height = 20
//	spacing = 30
//	width_direction = 12
//	color_enabled = true
//
//	[pin.colors]
//	default = "#ffffff"
//	power = "#ff9999"
//
//	[package.dip]
//	side_pad = 200
//	top_pad = 50
//	[package.dip.width]
//	default = 300
//	wide = 600
//
// Values read from a file are layered on top of [Default], so a file only
// needs to name what it changes.
package config

import (
	"fmt"
	"maps"
)

// DefaultColor is the palette key every configuration must define.
const DefaultColor = "default"

// DefaultWidth is the DIP width preset used when a descriptor names none.
const DefaultWidth = "default"

// Config is the complete rendering configuration.
type Config struct {
	Pin     Pin      `toml:"pin"`
	Package Packages `toml:"package"`
}

// Pin holds pin box geometry and the color palette.
type Pin struct {
	Width          float64           `toml:"width"`           // pin box width
	Height         float64           `toml:"height"`          // pin box height
	Spacing        float64           `toml:"spacing"`         // center-to-center pitch along a side
	WidthDirection float64           `toml:"width_direction"` // direction arrow length
	ColorEnabled   Switch            `toml:"color_enabled"`
	Colors         map[string]string `toml:"colors"` // name -> literal color
}

// Packages holds the per-kind package settings.
type Packages struct {
	DIP  DIP  `toml:"dip"`
	Edge Edge `toml:"edge"`
	PLCC Quad `toml:"plcc"`
	QFP  Quad `toml:"qfp"`
	SIP  SIP  `toml:"sip"`
}

// DIP configures dual in-line packages.
type DIP struct {
	SidePad float64            `toml:"side_pad"`
	TopPad  float64            `toml:"top_pad"`
	Width   map[string]float64 `toml:"width"` // named body width presets
}

// Edge configures edge connectors.
type Edge struct {
	SidePad float64 `toml:"side_pad"`
	TopPad  float64 `toml:"top_pad"`
}

// Quad configures four-sided packages (PLCC, QFP).
type Quad struct {
	SidePad float64 `toml:"side_pad"`
}

// SIP configures single in-line packages.
type SIP struct {
	BottomPad float64 `toml:"bottom_pad"`
}

// Switch is a boolean that also accepts the integer form used by older
// configuration files, where 1 means enabled and any other number disabled.
type Switch bool

// UnmarshalTOML implements toml.Unmarshaler.
func (s *Switch) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case bool:
		*s = Switch(v)
	case int64:
		*s = v == 1
	case float64:
		*s = v == 1
	default:
		return fmt.Errorf("color_enabled: want bool or integer, got %T", v)
	}
	return nil
}

// Default returns the built-in configuration. Every call returns fresh maps,
// so callers may modify the result without affecting other callers.
func Default() Config {
	return Config{
		Pin: Pin{
			Width:          40,
			Height:         20,
			Spacing:        30,
			WidthDirection: 12,
			ColorEnabled:   true,
			Colors: map[string]string{
				DefaultColor: "#ffffff",
				"power":      "#ff9999",
				"ground":     "#b0b0b0",
				"clock":      "#ffd280",
				"address":    "#a8d8ff",
				"data":       "#b6f2b6",
				"control":    "#e0c0ff",
				"nc":         "#eeeeee",
			},
		},
		Package: Packages{
			DIP: DIP{
				SidePad: 200,
				TopPad:  50,
				Width: map[string]float64{
					DefaultWidth: 300,
					"narrow":     300,
					"wide":       600,
				},
			},
			Edge: Edge{SidePad: 200, TopPad: 50},
			PLCC: Quad{SidePad: 200},
			QFP:  Quad{SidePad: 200},
			SIP:  SIP{BottomPad: 200},
		},
	}
}

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
	out := c
	out.Pin.Colors = maps.Clone(c.Pin.Colors)
	out.Package.DIP.Width = maps.Clone(c.Package.DIP.Width)
	return out
}

// DIPWidth returns the body width for a named DIP preset, falling back to
// the default preset when the name is unknown.
func (c Config) DIPWidth(preset string) float64 {
	if w, ok := c.Package.DIP.Width[preset]; ok {
		return w
	}
	return c.Package.DIP.Width[DefaultWidth]
}

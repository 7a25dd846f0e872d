package config

import (
	"io"
	"maps"
	"math"
	"os"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/pinout/pkg/errors"
)

// Read decodes a TOML configuration from r on top of [Default] and
// validates the result.
func Read(r io.Reader) (Config, error) {
	cfg := Default()
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode configuration")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the TOML configuration file at path. See [Read].
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "configuration %s", path)
	}
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	return Read(f)
}

// Encode writes cfg as TOML.
func Encode(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// Validate checks that the geometry is drawable and that the fallbacks the
// layout engine relies on are present. NaN and infinite values are never
// drawable.
func (c Config) Validate() error {
	p := c.Pin
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"pin.width", p.Width},
		{"pin.height", p.Height},
		{"pin.spacing", p.Spacing},
	} {
		if !finite(f.value) || f.value <= 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must be positive, got %v", f.name, f.value)
		}
	}

	pk := c.Package
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"pin.width_direction", p.WidthDirection},
		{"package.dip.side_pad", pk.DIP.SidePad},
		{"package.dip.top_pad", pk.DIP.TopPad},
		{"package.edge.side_pad", pk.Edge.SidePad},
		{"package.edge.top_pad", pk.Edge.TopPad},
		{"package.plcc.side_pad", pk.PLCC.SidePad},
		{"package.qfp.side_pad", pk.QFP.SidePad},
		{"package.sip.bottom_pad", pk.SIP.BottomPad},
	} {
		if !finite(f.value) || f.value < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "%s cannot be negative, got %v", f.name, f.value)
		}
	}

	if _, ok := p.Colors[DefaultColor]; !ok {
		return errors.New(errors.ErrCodeInvalidConfig, "pin.colors must define %q", DefaultColor)
	}
	if _, ok := pk.DIP.Width[DefaultWidth]; !ok {
		return errors.New(errors.ErrCodeInvalidConfig, "package.dip.width must define a positive %q preset", DefaultWidth)
	}
	for _, name := range slices.Sorted(maps.Keys(pk.DIP.Width)) {
		if w := pk.DIP.Width[name]; !finite(w) || w <= 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "package.dip.width.%s must be positive, got %v", name, w)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

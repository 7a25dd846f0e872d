// Package pipeline runs the load → layout → render sequence shared by
// every pinout command.
//
// # Stages
//
//  1. Load: decode and validate a component file (pkg/component)
//  2. Layout: place the package body and pins (pkg/render/ic/layout)
//  3. Render: serialize the scene in each requested format (pkg/render/ic/sink)
//
// # Usage
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), logger)
//	res, err := runner.Execute(ctx, "ne555.toml", config.Default(), pipeline.Options{
//	    Formats: []string{pipeline.FormatSVG, pipeline.FormatPNG},
//	})
//	if err != nil {
//	    return err
//	}
//	svg := res.Artifacts[pipeline.FormatSVG]
package pipeline

import (
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pinout/pkg/errors"
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

const (
	// DefaultScale is the display scale of SVG and PDF output.
	DefaultScale = 1.0

	// PNGDensity is the number of raster pixels per drawing unit at scale 1.
	PNGDensity = 2.0
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ValidateFormat checks that format is supported. Formats are case-sensitive.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks every entry of formats.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated format list. An empty list means
// SVG only.
func ParseFormats(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return []string{FormatSVG}, nil
	}
	var formats []string
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if err := ValidateFormat(f); err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}
	return formats, nil
}

// Options controls one pipeline run.
type Options struct {
	Formats   []string `json:"formats,omitempty"`
	Scale     float64  `json:"scale,omitempty"`      // SVG/PDF display scale; PNG uses Scale*PNGDensity
	MaxHeight float64  `json:"max_height,omitempty"` // clamp of the SVG display height, 0 for none
	NoColor   bool     `json:"no_color,omitempty"`   // paint every pin with the default color
	Title     string   `json:"title,omitempty"`      // SVG <title>, defaults to the component name
	Refresh   bool     `json:"-"`                    // ignore cached artifacts

	Logger *log.Logger `json:"-"`

	validated bool
}

// ValidateAndSetDefaults checks the options and fills in defaults. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if math.IsNaN(o.Scale) || math.IsInf(o.Scale, 0) || o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be a finite non-negative number, got %v", o.Scale)
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if math.IsNaN(o.MaxHeight) || math.IsInf(o.MaxHeight, 0) || o.MaxHeight < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max height must be a finite non-negative number, got %v", o.MaxHeight)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// cacheKey is the subset of Options that changes rendered bytes.
func (o *Options) cacheKey() any {
	return struct {
		Scale     float64
		MaxHeight float64
		Title     string
	}{o.Scale, o.MaxHeight, o.Title}
}

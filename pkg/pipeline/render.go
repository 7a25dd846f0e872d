package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/pinout/pkg/component"
	"github.com/matzehuels/pinout/pkg/config"
	"github.com/matzehuels/pinout/pkg/errors"
	"github.com/matzehuels/pinout/pkg/render/ic/layout"
	"github.com/matzehuels/pinout/pkg/render/ic/sink"
)

// EffectiveConfig returns cfg with the option overrides applied. cfg is
// not modified.
func EffectiveConfig(cfg config.Config, opts Options) config.Config {
	if !opts.NoColor {
		return cfg
	}
	cfg = cfg.Clone()
	cfg.Pin.ColorEnabled = false
	return cfg
}

// Layout places desc with the effective configuration.
func Layout(desc component.Descriptor, cfg config.Config, opts Options) (layout.Layout, error) {
	return layout.Build(desc, EffectiveConfig(cfg, opts))
}

// Render serializes l in a single format.
func Render(ctx context.Context, l layout.Layout, desc component.Descriptor, format string, opts Options) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatSVG:
		data = sink.RenderSVG(l, svgOptions(desc, opts)...)
	case FormatPNG:
		data, err = sink.RenderPNG(l, sink.WithPNGScale(scale(opts)*PNGDensity))
	case FormatPDF:
		data, err = sink.RenderPDF(ctx, l, sink.WithPDFSVGOptions(svgOptions(desc, opts)...))
	case FormatJSON:
		data, err = sink.RenderJSON(l, sink.WithJSONDescriptor(desc), sink.WithJSONIndent())
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return data, nil
}

func svgOptions(desc component.Descriptor, opts Options) []sink.SVGOption {
	title := opts.Title
	if title == "" {
		title = desc.Info.Name
	}
	return []sink.SVGOption{
		sink.WithScale(scale(opts)),
		sink.WithMaxHeight(opts.MaxHeight),
		sink.WithTitle(title),
	}
}

func scale(opts Options) float64 {
	if opts.Scale <= 0 {
		return DefaultScale
	}
	return opts.Scale
}

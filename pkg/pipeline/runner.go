package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pinout/pkg/cache"
	"github.com/matzehuels/pinout/pkg/component"
	"github.com/matzehuels/pinout/pkg/config"
	"github.com/matzehuels/pinout/pkg/observability"
	"github.com/matzehuels/pinout/pkg/render/ic/layout"
)

// Runner executes the pipeline with an artifact cache.
//
// A Runner holds no per-run state; one Runner may serve concurrent runs
// with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching and a nil
// logger uses the default logger.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Result holds the outputs of a pipeline run.
type Result struct {
	Descriptor component.Descriptor
	Layout     layout.Layout
	Artifacts  map[string][]byte // keyed by format
	Stats      Stats
	CacheHits  int // formats served from the cache
}

// Stats holds timing and size information of a run.
type Stats struct {
	Pins       int
	Visible    int
	LoadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// Execute loads the component file at path and runs the remaining stages.
func (r *Runner) Execute(ctx context.Context, path string, cfg config.Config, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, path)
	start := time.Now()
	desc, err := component.Load(path)
	loadTime := time.Since(start)
	hooks.OnLoadComplete(ctx, path, desc.Info.NumPins, loadTime, err)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	opts.Logger.Debug("loaded component",
		"path", path,
		"name", desc.Info.Name,
		"duration", loadTime)

	res, err := r.Run(ctx, desc, cfg, opts)
	if err != nil {
		return nil, err
	}
	res.Stats.LoadTime = loadTime
	return res, nil
}

// Run lays out and renders an already loaded descriptor.
func (r *Runner) Run(ctx context.Context, desc component.Descriptor, cfg config.Config, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	cfg = EffectiveConfig(cfg, opts)

	res := &Result{
		Descriptor: desc,
		Artifacts:  make(map[string][]byte, len(opts.Formats)),
	}

	hooks := observability.Pipeline()
	kind := string(desc.Info.Package)
	hooks.OnLayoutStart(ctx, kind, desc.Info.NumPins)
	start := time.Now()
	l, err := layout.Build(desc, cfg)
	res.Stats.LayoutTime = time.Since(start)
	hooks.OnLayoutComplete(ctx, kind, res.Stats.LayoutTime, err)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	res.Layout = l
	res.Stats.Pins = desc.Info.NumPins
	res.Stats.Visible = desc.Visible()

	opts.Logger.Info("computed layout",
		"kind", l.Kind,
		"pins", res.Stats.Pins,
		"visible", res.Stats.Visible,
		"duration", res.Stats.LayoutTime)

	hooks.OnRenderStart(ctx, opts.Formats)
	start = time.Now()
	err = r.renderAll(ctx, res, cfg, opts)
	res.Stats.RenderTime = time.Since(start)
	hooks.OnRenderComplete(ctx, opts.Formats, res.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", res.CacheHits,
		"duration", res.Stats.RenderTime)

	return res, nil
}

func (r *Runner) renderAll(ctx context.Context, res *Result, cfg config.Config, opts Options) error {
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return err
		}
		data, hit, err := r.render(ctx, res.Layout, res.Descriptor, cfg, format, opts)
		if err != nil {
			return err
		}
		if hit {
			res.CacheHits++
		}
		res.Artifacts[format] = data
	}
	return nil
}

// render produces one format, consulting the cache first. Inputs that
// cannot be hashed bypass the cache.
func (r *Runner) render(ctx context.Context, l layout.Layout, desc component.Descriptor, cfg config.Config, format string, opts Options) ([]byte, bool, error) {
	key, err := cache.ArtifactKey(format, desc, cfg, opts.cacheKey())
	if err != nil {
		opts.Logger.Warn("cache disabled for this render", "format", format, "error", err)
		data, err := Render(ctx, l, desc, format, opts)
		return data, false, err
	}
	hooks := observability.Cache()

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			opts.Logger.Debug("cache hit", "format", format)
			hooks.OnCacheHit(ctx, format)
			return data, true, nil
		}
		hooks.OnCacheMiss(ctx, format)
	}

	data, err := Render(ctx, l, desc, format, opts)
	if err != nil {
		return nil, false, err
	}
	if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
		opts.Logger.Warn("cache write failed", "format", format, "error", err)
	} else {
		hooks.OnCacheSet(ctx, format, len(data))
	}
	return data, false, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

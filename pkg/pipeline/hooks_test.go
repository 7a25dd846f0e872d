package pipeline

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/pinout/pkg/cache"
	"github.com/matzehuels/pinout/pkg/component"
	"github.com/matzehuels/pinout/pkg/config"
	"github.com/matzehuels/pinout/pkg/observability"
)

type recordingHooks struct {
	observability.NoopPipelineHooks
	observability.NoopCacheHooks
	events []string
}

func (h *recordingHooks) OnLayoutStart(_ context.Context, kind string, pins int) {
	h.events = append(h.events, "layout:"+kind)
}

func (h *recordingHooks) OnRenderComplete(_ context.Context, formats []string, _ time.Duration, err error) {
	if err == nil {
		h.events = append(h.events, "render:"+strings.Join(formats, ","))
	}
}

func (h *recordingHooks) OnCacheHit(_ context.Context, format string) {
	h.events = append(h.events, "hit:"+format)
}

func (h *recordingHooks) OnCacheMiss(_ context.Context, format string) {
	h.events = append(h.events, "miss:"+format)
}

func (h *recordingHooks) OnCacheSet(_ context.Context, format string, size int) {
	if size > 0 {
		h.events = append(h.events, "set:"+format)
	}
}

func TestRunHooks(t *testing.T) {
	h := &recordingHooks{}
	observability.SetPipelineHooks(h)
	observability.SetCacheHooks(h)
	t.Cleanup(observability.Reset)

	desc, err := component.Read(strings.NewReader(ne555))
	if err != nil {
		t.Fatal(err)
	}
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(fc, nil)
	defer r.Close()

	opts := Options{Formats: []string{FormatSVG}}
	for i := 0; i < 2; i++ {
		if _, err := r.Run(context.Background(), desc, config.Default(), opts); err != nil {
			t.Fatal(err)
		}
	}

	want := []string{
		"layout:DIP", "miss:svg", "set:svg", "render:svg",
		"layout:DIP", "hit:svg", "render:svg",
	}
	if strings.Join(h.events, " ") != strings.Join(want, " ") {
		t.Errorf("events = %v, want %v", h.events, want)
	}
}

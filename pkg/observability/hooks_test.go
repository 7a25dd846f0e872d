package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnLoadStart(ctx, "ne555.toml")
	p.OnLoadComplete(ctx, "ne555.toml", 8, time.Millisecond, nil)
	p.OnLayoutStart(ctx, "DIP", 8)
	p.OnLayoutComplete(ctx, "DIP", time.Millisecond, nil)
	p.OnRenderStart(ctx, []string{"svg"})
	p.OnRenderComplete(ctx, []string{"svg"}, time.Millisecond, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "svg")
	c.OnCacheMiss(ctx, "png")
	c.OnCacheSet(ctx, "pdf", 1024)
}

type testPipelineHooks struct {
	NoopPipelineHooks
	layouts int
}

func (h *testPipelineHooks) OnLayoutStart(context.Context, string, int) {
	h.layouts++
}

type testCacheHooks struct {
	NoopCacheHooks
	hits int
}

func (h *testCacheHooks) OnCacheHit(context.Context, string) {
	h.hits++
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	ph := &testPipelineHooks{}
	ch := &testCacheHooks{}
	SetPipelineHooks(ph)
	SetCacheHooks(ch)

	Pipeline().OnLayoutStart(context.Background(), "QFP", 32)
	Cache().OnCacheHit(context.Background(), "svg")
	if ph.layouts != 1 {
		t.Errorf("layouts = %d, want 1", ph.layouts)
	}
	if ch.hits != 1 {
		t.Errorf("hits = %d, want 1", ch.hits)
	}

	SetPipelineHooks(nil)
	if Pipeline() != PipelineHooks(ph) {
		t.Error("SetPipelineHooks(nil) should keep the registered hooks")
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
}

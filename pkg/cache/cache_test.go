package cache

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/pinout/pkg/buildinfo"
	"github.com/matzehuels/pinout/pkg/errors"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set() error = %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil || hit || data != nil {
		t.Errorf("Get() = %q, %v, %v; want miss", data, hit, err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete() error = %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(filepath.Join(t.TempDir(), "artifacts"))
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}

	if _, hit, _ := c.Get(ctx, "svg"); hit {
		t.Error("Get() on empty cache hit")
	}

	if err := c.Set(ctx, "svg", []byte("<svg/>"), time.Hour); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	data, hit, err := c.Get(ctx, "svg")
	if err != nil || !hit || string(data) != "<svg/>" {
		t.Errorf("Get() = %q, %v, %v; want <svg/>", data, hit, err)
	}

	if err := c.Delete(ctx, "svg"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, hit, _ := c.Get(ctx, "svg"); hit {
		t.Error("Get() after Delete() hit")
	}
	if err := c.Delete(ctx, "svg"); err != nil {
		t.Errorf("Delete(missing) error = %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Set(ctx, "old", []byte("x"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(time.Millisecond)
	if _, hit, _ := c.Get(ctx, "old"); hit {
		t.Error("expired entry hit")
	}
	if _, err := os.Stat(c.path("old")); !os.IsNotExist(err) {
		t.Errorf("expired entry not removed: %v", err)
	}

	if err := c.Set(ctx, "forever", []byte("x"), 0); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, "forever"); !hit {
		t.Error("entry without ttl missed")
	}
}

func TestFileCacheCorrupt(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	p := c.path("bad")
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(ctx, "bad"); hit || err != nil {
		t.Errorf("Get(corrupt) = %v, %v; want silent miss", hit, err)
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(k), 0); err != nil {
			t.Fatal(err)
		}
	}
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	entries, _ := os.ReadDir(c.Dir())
	if len(entries) != 0 {
		t.Errorf("Clear() left %d entries", len(entries))
	}
}

func TestHash(t *testing.T) {
	if Hash([]byte("hello")) != Hash([]byte("hello")) {
		t.Error("Hash() is not deterministic")
	}
	if Hash([]byte("hello")) == Hash([]byte("world")) {
		t.Error("Hash() collides on different input")
	}
	if got := len(Hash([]byte("hello"))); got != 64 {
		t.Errorf("len(Hash()) = %d, want 64", got)
	}
}

func artifactKey(t *testing.T, format string, inputs ...any) string {
	t.Helper()
	key, err := ArtifactKey(format, inputs...)
	if err != nil {
		t.Fatalf("ArtifactKey() error = %v", err)
	}
	return key
}

func TestArtifactKey(t *testing.T) {
	type opts struct{ Scale float64 }

	base := artifactKey(t, "svg", "desc", opts{Scale: 1})
	tests := []struct {
		name string
		key  string
		same bool
	}{
		{"identical", artifactKey(t, "svg", "desc", opts{Scale: 1}), true},
		{"format", artifactKey(t, "png", "desc", opts{Scale: 1}), false},
		{"input", artifactKey(t, "svg", "other", opts{Scale: 1}), false},
		{"option", artifactKey(t, "svg", "desc", opts{Scale: 2}), false},
	}
	for _, tt := range tests {
		if got := tt.key == base; got != tt.same {
			t.Errorf("%s: key equal = %v, want %v", tt.name, got, tt.same)
		}
	}
}

func TestArtifactKeyVersion(t *testing.T) {
	old := buildinfo.Version
	t.Cleanup(func() { buildinfo.Version = old })

	buildinfo.Version = "v1.0.0"
	before := artifactKey(t, "svg", "desc")
	buildinfo.Version = "v1.1.0"
	after := artifactKey(t, "svg", "desc")
	if before == after {
		t.Error("ArtifactKey() did not change with the build version")
	}
}

func TestArtifactKeyUnencodable(t *testing.T) {
	type geometry struct{ Spacing float64 }

	tests := []struct {
		name  string
		value float64
	}{
		{"nan", math.NaN()},
		{"inf", math.Inf(1)},
		{"negative inf", math.Inf(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, errA := ArtifactKey("svg", "NE555", geometry{tt.value})
			b, errB := ArtifactKey("svg", "Z80", geometry{tt.value})
			if errA == nil || errB == nil {
				t.Fatalf("ArtifactKey() errors = %v, %v, want both non-nil", errA, errB)
			}
			if !errors.Is(errA, errors.ErrCodeInvalidInput) {
				t.Errorf("ArtifactKey() error = %v, want code %s", errA, errors.ErrCodeInvalidInput)
			}
			if a != "" || b != "" {
				t.Errorf("ArtifactKey() keys = %q, %q, want empty", a, b)
			}
		})
	}
}

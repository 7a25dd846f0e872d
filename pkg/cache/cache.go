// Package cache stores rendered artifacts between CLI runs.
//
// Rendering is deterministic: the same component, configuration and render
// options always produce the same bytes. [ArtifactKey] hashes all three
// together with the build version, so an entry never has to be invalidated
// when its inputs change; a changed input or an upgraded binary simply
// yields a different key.
//
// Two implementations are provided: [FileCache] for the CLI and [NullCache]
// when caching is turned off.
package cache

import (
	"context"
	"time"

	"github.com/matzehuels/pinout/pkg/buildinfo"
)

// TTLArtifact is how long a rendered artifact is kept.
const TTLArtifact = 7 * 24 * time.Hour

// Cache is a byte store keyed by string.
type Cache interface {
	// Get returns the value for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// ArtifactKey returns the cache key of one rendered format. inputs are the
// values that determine the output (descriptor, configuration, options).
// An input that cannot be JSON-encoded, such as a NaN float, is an error;
// callers then render without the cache.
func ArtifactKey(format string, inputs ...any) (string, error) {
	return hashKey("artifact:"+format, append([]any{buildinfo.Version}, inputs...)...)
}

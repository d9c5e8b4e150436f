// Package cache stores rendered diagrams between runs.
//
// Graphviz rendering starts a WebAssembly runtime and is slow compared to the
// rest of an export, so the CLI keeps rendered diagrams keyed by their DOT
// source. [FileCache] keeps one file per artifact under a directory;
// [NullCache] disables caching.
//
//	c, _ := cache.NewFileCache(dir)
//	key := cache.ArtifactKey("svg", []byte(dot), scale, buildinfo.Version)
//	if data, ok, _ := c.Get(ctx, key); ok {
//	    return data, nil
//	}
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"time"
)

// DefaultTTL is how long rendered artifacts stay valid.
const DefaultTTL = 7 * 24 * time.Hour

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value for key and whether it was present and fresh.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}

// keyRe matches the keys built by ArtifactKey: a format directory and a hex
// digest.
var keyRe = regexp.MustCompile(`^([a-z0-9]+)/([0-9a-f]{64})$`)

// ArtifactKey returns the key of a diagram rendered in format from a DOT
// source. Render parameters that change the output, such as the PNG scale or
// the build version, go into parts.
func ArtifactKey(format string, dot []byte, parts ...any) string {
	h := sha256.New()
	h.Write(dot)
	for _, p := range parts {
		fmt.Fprintf(h, "\x00%v", p)
	}
	return format + "/" + hex.EncodeToString(h.Sum(nil))
}

// splitKey returns the format and digest of a key built by ArtifactKey.
func splitKey(key string) (format, digest string, err error) {
	m := keyRe.FindStringSubmatch(key)
	if m == nil {
		return "", "", fmt.Errorf("cache: malformed key %q", key)
	}
	return m[1], m[2], nil
}

// NullCache misses on every Get and discards every Set.
type NullCache struct{}

// NewNullCache returns a cache that stores nothing.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error { return nil }
func (NullCache) Close() error { return nil }

var _ Cache = NullCache{}

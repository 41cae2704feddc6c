// Package cache stores rendered artifacts so repeated requests for the same
// snapshot or export skip the layout and render work.
//
// Keys are derived from a hash of the dataset plus the render options, so a
// different dataset or option set never hits a stale entry. Three backends
// are provided: [MemoryCache] for a running server, [FileCache] for reuse
// across runs, and [NullCache] to disable caching.
package cache

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/matzehuels/depview/pkg/errors"
	"github.com/matzehuels/depview/pkg/graph"
)

// Cache is a byte store with optional per-entry expiry.
type Cache interface {
	// Get returns the value and whether it was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Backend names accepted by [Open].
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendNone   = "none"
)

// Backends lists the accepted backend names.
var Backends = []string{BackendMemory, BackendFile, BackendNone}

// DefaultMaxEntries bounds the memory backend opened by [Open].
const DefaultMaxEntries = 128

// Open returns the backend named by kind. An empty dir for the file backend
// selects depview under the user cache directory.
func Open(kind, dir string) (Cache, error) {
	switch kind {
	case BackendMemory, "":
		return NewMemoryCache(DefaultMaxEntries), nil
	case BackendFile:
		if dir == "" {
			base, err := os.UserCacheDir()
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "locate user cache directory")
			}
			dir = filepath.Join(base, "depview")
		}
		c, err := NewFileCache(dir)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "open cache directory %s", dir)
		}
		return c, nil
	case BackendNone:
		return NewNullCache(), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q", kind)
}

// ArtifactKeyOpts are the render settings that distinguish artifacts of the
// same dataset.
type ArtifactKeyOpts struct {
	Kind   string `json:"kind"` // snapshot, export
	Format string `json:"format"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Extra  string `json:"extra,omitempty"`
}

// ArtifactKey returns the key for an artifact of the dataset with hash graphHash.
func ArtifactKey(graphHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", graphHash, opts)
}

// GraphHash fingerprints g by its canonical JSON encoding.
func GraphHash(g graph.Graph) string {
	data, err := graph.Marshal(g)
	if err != nil {
		return ""
	}
	return Hash(data)
}

// Fetch returns the cached value for key, or calls render and stores its
// result for ttl. Cache errors degrade to a miss; render errors are returned
// and nothing is stored.
func Fetch(ctx context.Context, c Cache, key string, ttl time.Duration, render func() ([]byte, error)) (data []byte, hit bool, err error) {
	if data, ok, err := c.Get(ctx, key); err == nil && ok {
		return data, true, nil
	}
	data, err = render()
	if err != nil {
		return nil, false, err
	}
	_ = c.Set(ctx, key, data, ttl)
	return data, false, nil
}

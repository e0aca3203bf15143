// Package cache provides byte-level caching for expensive artifacts such as
// rendered graph images. Three backends are available: a file-based cache
// for CLI usage, a Redis-backed cache for shared setups, and a null cache
// that disables caching entirely.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key-value store with optional expiration.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the
	// key was present; a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

package cache

import (
	"context"
	"time"
)

// NullCache misses every read and discards every write. It backs the "none"
// cache setting so callers never branch on caching being disabled.
type NullCache struct{}

// NewNullCache creates a cache that stores nothing.
func NewNullCache() *NullCache {
	return &NullCache{}
}

func (*NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

func (*NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

func (*NullCache) Delete(ctx context.Context, key string) error {
	return nil
}

func (*NullCache) Close() error {
	return nil
}

var _ Cache = (*NullCache)(nil)

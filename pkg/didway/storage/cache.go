package storage

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CachedKV wraps an inner KV with an expiring LRU read cache. Reads are
// served from the cache when possible; writes go through to the inner
// store and update the cache. Failed reads are not cached.
type CachedKV struct {
	inner KV
	cache *expirable.LRU[string, string]
}

// Compile-time interface check.
var _ KV = (*CachedKV)(nil)

// NewCachedKV wraps inner with a read cache.
// Capacity of zero means unlimited size. Similarly, ttl of zero means
// unlimited duration.
func NewCachedKV(inner KV, capacity int, ttl time.Duration) *CachedKV {
	return &CachedKV{
		inner: inner,
		cache: expirable.NewLRU[string, string](capacity, nil, ttl),
	}
}

// Get serves the value from the cache, falling back to the inner store.
func (c *CachedKV) Get(ctx context.Context, key string) (string, error) {
	if value, ok := c.cache.Get(key); ok {
		return value, nil
	}

	value, err := c.inner.Get(ctx, key)
	if err != nil {
		return "", err
	}
	c.cache.Add(key, value)
	return value, nil
}

// Set writes through to the inner store and refreshes the cache entry.
func (c *CachedKV) Set(ctx context.Context, key, value string) error {
	if err := c.inner.Set(ctx, key, value); err != nil {
		return err
	}
	c.cache.Add(key, value)
	return nil
}

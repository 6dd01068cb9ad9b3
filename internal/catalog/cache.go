package catalog

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// CacheConfig configures the catalog caches
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// DefaultCacheConfig returns the cache settings used when none are configured
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{Size: 2048, TTL: 10 * time.Minute}
}

// CacheStats reports cache effectiveness
type CacheStats struct {
	Hits   int64
	Misses int64
	Size   int
}

// cachedEntry wraps a catalog row with version metadata for cache invalidation
type cachedEntry[T any] struct {
	Version  string
	Value    T
	CachedAt time.Time
}

// idCache is an in-memory LRU of catalog rows keyed by id, with time-based
// expiration. Catalog rows only change through the fixture import.
type idCache[T any] struct {
	lru    *expirable.LRU[int64, *cachedEntry[T]]
	hits   atomic.Int64
	misses atomic.Int64
}

func newIDCache[T any](cfg CacheConfig) *idCache[T] {
	if cfg.Size <= 0 {
		cfg = DefaultCacheConfig()
	}
	return &idCache[T]{
		lru: expirable.NewLRU[int64, *cachedEntry[T]](cfg.Size, nil, cfg.TTL),
	}
}

// Get returns (value, true) if found and the version matches
func (c *idCache[T]) Get(id int64) (T, bool) {
	entry, found := c.lru.Get(id)
	if !found || entry.Version != CacheSchemaVersion {
		if found {
			c.lru.Remove(id)
		}
		c.misses.Add(1)
		var zero T
		return zero, false
	}
	c.hits.Add(1)
	return entry.Value, true
}

// Set stores the value with the current schema version
func (c *idCache[T]) Set(id int64, value T) {
	c.lru.Add(id, &cachedEntry[T]{
		Version:  CacheSchemaVersion,
		Value:    value,
		CachedAt: time.Now(),
	})
}

// Invalidate removes one entry
func (c *idCache[T]) Invalidate(id int64) {
	c.lru.Remove(id)
}

// Clear removes all entries from the cache.
func (c *idCache[T]) Clear() {
	c.lru.Purge()
}

// GetStats returns hit/miss counters and the current size
func (c *idCache[T]) GetStats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}

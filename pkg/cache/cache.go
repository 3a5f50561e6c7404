// Package cache provides the in-memory and multi-level caching used by the
// CMS read paths. Two eviction policies (LRU, FIFO) sit behind one interface,
// selected by configuration, both with per-entry TTL and background cleanup.
package cache

import (
	"time"

	"github.com/wanderlustbites/content-service/config"
)

// Cache is the common contract of the in-memory cache implementations.
type Cache interface {
	// Get retrieves an item by key. For LRU caches this also refreshes the
	// access order. Expired entries read as absent.
	Get(key string) (any, bool)

	// Set adds a key-value pair with the default TTL.
	Set(key string, value any)

	// SetWithTTL adds a key-value pair with a custom TTL in seconds.
	SetWithTTL(key string, value any, ttlSeconds int)

	// Delete removes a key, whether or not it exists.
	Delete(key string)

	// Size returns the current number of entries, including expired ones
	// the cleanup goroutine has not collected yet.
	Size() int

	// MaxSize returns the capacity at which eviction starts.
	MaxSize() int

	// Clear removes all entries.
	Clear()

	// Stop shuts down the background cleanup goroutine.
	Stop()
}

// entry is a cached value with its expiration timestamp.
type entry struct {
	value   any
	timeout time.Time
}

// NewCache builds a cache for the configured eviction policy. Unknown types
// fall back to LRU.
func NewCache(cfg config.CacheConfig) Cache {
	switch cfg.Type {
	case "FIFO":
		return NewFIFOCache(cfg.Capacity, cfg.DefaultTTL)
	default:
		return NewLRUCache(cfg.Capacity, cfg.DefaultTTL)
	}
}

package search

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/guttosm/checkin-service/internal/metrics"
)

const (
	// DefaultCacheCapacity bounds the number of live cache entries.
	DefaultCacheCapacity = 200

	// evictFraction is the share of entries removed, oldest first, when a
	// cleanup pass leaves the cache at or over capacity.
	evictFraction = 0.2
)

// cacheEntry holds a cached value with its creation time and expiry.
// Entries never leave the cache; callers only see values.
type cacheEntry[V any] struct {
	value     V
	createdAt time.Time
	ttl       time.Duration
}

func (e cacheEntry[V]) expired(now time.Time) bool {
	return now.Sub(e.createdAt) > e.ttl
}

// Cache is a bounded key-value store with per-entry TTL expiry.
//
// Eviction is insertion-order based, not LRU: reads do not refresh an
// entry's position, and when a cleanup pass still finds the cache at or
// over capacity after dropping expired entries, the oldest entries by
// creation time are removed. After any Set the size is at most the
// capacity. All operations are safe for concurrent use.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	entries  map[K]cacheEntry[V]

	// now is swappable in tests to control expiry.
	now func() time.Time
}

// NewCache creates a cache bounded to capacity entries.
func NewCache[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &Cache[K, V]{
		capacity: capacity,
		entries:  make(map[K]cacheEntry[V], capacity),
		now:      time.Now,
	}
}

// Set inserts or overwrites a value with the given TTL. When the cache is
// at or over capacity, a cleanup pass runs first: expired entries are
// removed, then the oldest 20% if still over capacity.
func (c *Cache[K, V]) Set(key K, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.capacity {
		c.cleanupLocked()
	}

	c.entries[key] = cacheEntry[V]{
		value:     value,
		createdAt: c.now(),
		ttl:       ttl,
	}
	metrics.RecordCacheOperation("set", "success")
	metrics.UpdateCacheMetrics(len(c.entries), c.capacity)
}

// Get returns the value for key, lazily deleting it when expired. Reads do
// not refresh recency.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	entry, ok := c.entries[key]
	if !ok {
		metrics.RecordCacheOperation("get", "miss")
		return zero, false
	}
	if entry.expired(c.now()) {
		delete(c.entries, key)
		metrics.RecordCacheOperation("get", "expired")
		return zero, false
	}

	metrics.RecordCacheOperation("get", "hit")
	return entry.value, true
}

// Delete removes a single key.
func (c *Cache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Clear removes every entry.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[K]cacheEntry[V], c.capacity)
	metrics.RecordCacheOperation("clear", "success")
}

// Len returns the current number of entries, expired ones included.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Capacity returns the configured entry ceiling.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

// StartSweeper runs a periodic cleanup pass in a background goroutine until
// ctx is cancelled. Eviction remains invocation-triggered; the sweeper only
// keeps memory bounded during idle periods.
func (c *Cache[K, V]) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				c.mu.Lock()
				c.removeExpiredLocked()
				c.mu.Unlock()
			case <-ctx.Done():
				return
			}
		}
	}()
}

// cleanupLocked removes expired entries, then the oldest entries by creation
// time while the cache is still at or over capacity. Caller must hold mu.
func (c *Cache[K, V]) cleanupLocked() {
	c.removeExpiredLocked()

	if len(c.entries) < c.capacity {
		return
	}

	type aged struct {
		key       K
		createdAt time.Time
	}
	oldest := make([]aged, 0, len(c.entries))
	for key, entry := range c.entries {
		oldest = append(oldest, aged{key: key, createdAt: entry.createdAt})
	}
	sort.Slice(oldest, func(i, j int) bool {
		return oldest[i].createdAt.Before(oldest[j].createdAt)
	})

	evict := int(float64(len(oldest)) * evictFraction)
	if evict < 1 {
		evict = 1
	}
	for _, candidate := range oldest[:evict] {
		delete(c.entries, candidate.key)
		metrics.RecordCacheOperation("evict", "capacity")
	}
}

// removeExpiredLocked drops every expired entry. Caller must hold mu.
func (c *Cache[K, V]) removeExpiredLocked() {
	now := c.now()
	for key, entry := range c.entries {
		if entry.expired(now) {
			delete(c.entries, key)
			metrics.RecordCacheOperation("evict", "expired")
		}
	}
}

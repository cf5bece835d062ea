package cache

import (
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/simplelru"
	"github.com/parths19/Admin-Dashboard/internal/core/domain"
)

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// TTL is a thread-safe keyed cache whose entries are valid while
// now - storedAt < ttl. Absent and expired entries are both reported as a miss.
type TTL[K comparable, V any] struct {
	ttl   time.Duration
	clock func() time.Time

	mu      sync.Mutex
	entries *simplelru.LRU[K, entry[V]]
	stats   domain.CacheStats
}

// NewTTL creates a TTL cache.
func NewTTL[K comparable, V any](cfg Config) (*TTL[K, V], error) {
	cfg = cfg.withDefaults()

	entries, err := simplelru.NewLRU[K, entry[V]](cfg.Capacity, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create lru: %w", err)
	}

	return &TTL[K, V]{
		ttl:     cfg.TTL,
		clock:   cfg.Clock,
		entries: entries,
	}, nil
}

// Get returns the payload stored under key if it is still fresh.
func (c *TTL[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V

	e, ok := c.entries.Get(key)
	if !ok {
		c.stats.Misses++

		return zero, false
	}

	if c.clock().Sub(e.storedAt) >= c.ttl {
		c.entries.Remove(key)
		c.stats.Expirations++
		c.stats.Misses++

		return zero, false
	}

	c.stats.Hits++

	return e.value, true
}

// Put stores value under key with the current time, replacing any previous entry.
func (c *TTL[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	storedAt := c.clock()
	// storedAt never moves backwards for a key, even if the clock does.
	if prev, ok := c.entries.Peek(key); ok && prev.storedAt.After(storedAt) {
		storedAt = prev.storedAt
	}

	if evicted := c.entries.Add(key, entry[V]{value: value, storedAt: storedAt}); evicted {
		c.stats.Evictions++
	}
}

// InvalidateAll drops every entry.
func (c *TTL[K, V]) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries.Purge()
}

// Len reports the number of stored entries, fresh or not.
func (c *TTL[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.entries.Len()
}

// Stats returns a snapshot of the cache counters.
func (c *TTL[K, V]) Stats() domain.CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.stats
	s.Entries = c.entries.Len()

	return s
}

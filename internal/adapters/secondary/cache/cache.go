// Package cache provides the bounded, time-limited response cache used by the stores.
package cache

import "time"

const defaultCapacity = 256

// Config configures a TTL cache.
type Config struct {
	// TTL is how long an entry stays fresh after it is stored.
	TTL time.Duration
	// Capacity caps the number of entries; the least recently used entry is
	// evicted when a new key would exceed it. Non-positive means 256.
	Capacity int
	// Clock returns the current time. Defaults to time.Now.
	Clock func() time.Time
}

func (c Config) withDefaults() Config {
	if c.Capacity <= 0 {
		c.Capacity = defaultCapacity
	}
	if c.Clock == nil {
		c.Clock = time.Now
	}

	return c
}

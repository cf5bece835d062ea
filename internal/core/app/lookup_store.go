package app

import (
	"context"
	"sync"

	"github.com/parths19/Admin-Dashboard/internal/core/domain"
	"github.com/rs/zerolog"
)

// LookupStore holds non-critical metadata fetched without parameters under a
// single well-known key. Failures are logged and never surfaced to callers.
type LookupStore[V any] struct {
	key    domain.CacheKey
	load   func(ctx context.Context) (V, error)
	cache  Cache[V]
	logger zerolog.Logger

	mu         sync.Mutex
	generation uint64
	value      V
}

// NewLookupStore creates a lookup store that caches load's result under key.
func NewLookupStore[V any](
	key domain.CacheKey,
	load func(ctx context.Context) (V, error),
	cache Cache[V],
	logger zerolog.Logger,
) *LookupStore[V] {
	return &LookupStore[V]{
		key:    key,
		load:   load,
		cache:  cache,
		logger: logger,
	}
}

// Fetch refreshes the value from cache or remote.
func (s *LookupStore[V]) Fetch(ctx context.Context) {
	if v, ok := s.cache.Get(s.key); ok {
		s.mu.Lock()
		s.generation++
		s.value = v
		s.mu.Unlock()

		return
	}

	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	v, err := s.load(ctx)
	if err != nil {
		s.logger.Warn().
			Err(domain.NewError(domain.ErrAuxiliaryFetchFailed, "Error fetching "+s.key.Name, err)).
			Str("key", s.key.String()).
			Msg("lookup fetch failed")

		return
	}

	s.cache.Put(s.key, v)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen == s.generation {
		s.value = v
	}
}

// Value returns the last loaded value.
func (s *LookupStore[V]) Value() V {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.value
}

// ClearCache drops the cached value; the last loaded value stays visible.
func (s *LookupStore[V]) ClearCache() {
	s.cache.InvalidateAll()
}

func (s *LookupStore[V]) CacheStats() domain.CacheStats {
	return s.cache.Stats()
}

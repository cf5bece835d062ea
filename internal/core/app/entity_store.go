package app

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/parths19/Admin-Dashboard/internal/core/domain"
	"github.com/rs/zerolog"
)

// FetchState tracks the request lifecycle of a store.
type FetchState struct {
	Loading bool
	Err     error
}

// Message returns the user-visible error message, or "" when there is none.
func (f FetchState) Message() string {
	return domain.Message(f.Err)
}

// EntityState is a snapshot of an EntityStore.
type EntityState[T any] struct {
	Items   []T
	Total   int
	Current *T
	FetchState
}

// EntityStore serves collection and single-item queries for one resource
// kind, backed by response caches, with observable loading and error state.
//
// Collection and single-item fetches are fenced independently. Every fetch
// takes a new generation number on its own fence, and a remote response is
// applied only if no later fetch of the same kind was issued while it was in
// flight, so a slow stale page never overwrites a newer one.
type EntityStore[T any] struct {
	kind   domain.Kind
	source Source[T]
	pages  Cache[*domain.Page[T]]
	items  Cache[*T]
	logger zerolog.Logger

	mu    sync.Mutex
	list  fence
	item  fence
	state EntityState[T]
}

// fence tracks the latest issued request of one kind.
type fence struct {
	generation uint64
	loading    bool
}

// NewEntityStore creates a store for kind.
func NewEntityStore[T any](
	kind domain.Kind,
	source Source[T],
	pages Cache[*domain.Page[T]],
	items Cache[*T],
	logger zerolog.Logger,
) *EntityStore[T] {
	return &EntityStore[T]{
		kind:   kind,
		source: source,
		pages:  pages,
		items:  items,
		logger: logger.With().Str("component", string(kind)).Logger(),
	}
}

// Kind returns the resource kind served by the store.
func (s *EntityStore[T]) Kind() domain.Kind {
	return s.kind
}

// State returns a snapshot of the store. Items is a copy; Current points at
// the cached record and must not be modified.
func (s *EntityStore[T]) State() EntityState[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	st.Items = slices.Clone(s.state.Items)
	st.Loading = s.list.loading || s.item.loading

	return st
}

// FetchCollection loads one page of the collection and returns it. A set
// filter takes precedence over the free-text query; only one endpoint is
// called. On failure the previous items and total are kept and the error is
// recorded. The returned page is shared with the cache and is read-only.
//
// The page is returned even when a newer collection fetch has since replaced
// it in the store state.
func (s *EntityStore[T]) FetchCollection(ctx context.Context, limit, skip int, query, filter string) (*domain.Page[T], error) {
	key := domain.ListKey(s.kind, limit, skip, query, filter)

	if page, ok := s.pages.Get(key); ok {
		s.mu.Lock()
		s.list.generation++
		s.list.loading = false
		s.state.Items = page.Items
		s.state.Total = page.Total
		s.mu.Unlock()

		s.logger.Debug().Str("key", key.String()).Msg("cache hit")

		return page, nil
	}

	gen := s.begin(&s.list)

	page, err := s.fetchPage(ctx, limit, skip, query, filter)
	if err != nil {
		storeErr := domain.NewError(domain.ErrFetchFailed, fmt.Sprintf("Failed to fetch %s", s.kind), err)
		s.logger.Error().Err(err).Str("key", key.String()).Msg("fetch collection failed")
		s.finish(&s.list, gen, func(st *EntityState[T]) {
			st.Err = storeErr
		})

		return nil, storeErr
	}

	if page.Items == nil {
		page.Items = []T{}
	}

	s.pages.Put(key, page)
	s.finish(&s.list, gen, func(st *EntityState[T]) {
		st.Items = page.Items
		st.Total = page.Total
	})

	return page, nil
}

func (s *EntityStore[T]) fetchPage(ctx context.Context, limit, skip int, query, filter string) (*domain.Page[T], error) {
	switch {
	case filter != "":
		return s.source.Filter(ctx, filter, limit, skip)
	case query != "":
		return s.source.Search(ctx, query, limit, skip)
	default:
		return s.source.List(ctx, limit, skip)
	}
}

// FetchSingle loads one record by id into Current and returns it. On failure
// Current is kept. The returned record is shared with the cache and is
// read-only.
func (s *EntityStore[T]) FetchSingle(ctx context.Context, id int) (*T, error) {
	key := domain.ItemKey(s.kind, id)

	if item, ok := s.items.Get(key); ok {
		s.mu.Lock()
		s.item.generation++
		s.item.loading = false
		s.state.Current = item
		s.mu.Unlock()

		s.logger.Debug().Str("key", key.String()).Msg("cache hit")

		return item, nil
	}

	gen := s.begin(&s.item)

	item, err := s.source.Get(ctx, id)
	if err != nil {
		storeErr := s.singleError(err)
		s.logger.Error().Err(err).Int("id", id).Msg("fetch single failed")
		s.finish(&s.item, gen, func(st *EntityState[T]) {
			st.Err = storeErr
		})

		return nil, storeErr
	}

	s.items.Put(key, item)
	s.finish(&s.item, gen, func(st *EntityState[T]) {
		st.Current = item
	})

	return item, nil
}

func (s *EntityStore[T]) singleError(err error) *domain.Error {
	var sc statusCoder
	if errors.As(err, &sc) {
		return domain.NewError(domain.ErrNotFound, s.kind.Singular()+" not found", err)
	}

	return domain.NewError(domain.ErrFetchFailed, "Failed to fetch "+strings.ToLower(s.kind.Singular()), err)
}

// ClearCache drops every cached response of the store.
func (s *EntityStore[T]) ClearCache() {
	s.pages.InvalidateAll()
	s.items.InvalidateAll()
}

// ClearError resets the error without touching other state.
func (s *EntityStore[T]) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Err = nil
}

// CacheStats sums the counters of the store's caches.
func (s *EntityStore[T]) CacheStats() domain.CacheStats {
	return s.pages.Stats().Add(s.items.Stats())
}

func (s *EntityStore[T]) begin(f *fence) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	f.generation++
	f.loading = true
	s.state.Err = nil

	return f.generation
}

// finish applies a response if gen is still the latest generation of f.
func (s *EntityStore[T]) finish(f *fence, gen uint64, apply func(*EntityState[T])) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != f.generation {
		s.logger.Debug().Uint64("generation", gen).Uint64("latest", f.generation).Msg("discarding stale response")

		return false
	}

	f.loading = false
	apply(&s.state)

	return true
}

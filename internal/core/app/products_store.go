package app

import (
	"context"

	"github.com/parths19/Admin-Dashboard/internal/core/domain"
)

const categoriesLookup = "categories"

// ProductsStore is the product EntityStore plus the category lookup.
type ProductsStore struct {
	*EntityStore[domain.Product]
	categories *LookupStore[[]domain.Category]
}

// NewProductsStore composes the product store with a category lookup backed by its own cache.
func NewProductsStore(
	entities *EntityStore[domain.Product],
	source CategorySource,
	categoryCache Cache[[]domain.Category],
) *ProductsStore {
	return &ProductsStore{
		EntityStore: entities,
		categories: NewLookupStore(
			domain.LookupKey(domain.KindProducts, categoriesLookup),
			source.Categories,
			categoryCache,
			entities.logger,
		),
	}
}

// FetchCategories loads the category list. Failures are only logged.
func (s *ProductsStore) FetchCategories(ctx context.Context) {
	s.categories.Fetch(ctx)
}

// Categories returns the last loaded category list.
func (s *ProductsStore) Categories() []domain.Category {
	return s.categories.Value()
}

// ClearCache drops product and category cache entries.
func (s *ProductsStore) ClearCache() {
	s.EntityStore.ClearCache()
	s.categories.ClearCache()
}

func (s *ProductsStore) CacheStats() domain.CacheStats {
	return s.EntityStore.CacheStats().Add(s.categories.CacheStats())
}

package app

import (
	"context"
	"fmt"

	"github.com/parths19/Admin-Dashboard/internal/config"
	"github.com/parths19/Admin-Dashboard/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

// App groups the stores handed to the presentation layer.
type App struct {
	Users    *EntityStore[domain.User]
	Products *ProductsStore
	Session  *SessionStore

	usersPageSize    int
	productsPageSize int
}

// NewApp creates a new application instance.
func NewApp(cfg *config.Config, users *EntityStore[domain.User], products *ProductsStore, session *SessionStore) *App {
	return &App{
		Users:            users,
		Products:         products,
		Session:          session,
		usersPageSize:    cfg.UsersPageSize,
		productsPageSize: cfg.ProductsPageSize,
	}
}

// UsersPageSize is the default page size for user listings.
func (a *App) UsersPageSize() int {
	return a.usersPageSize
}

// ProductsPageSize is the default page size for product listings.
func (a *App) ProductsPageSize() int {
	return a.productsPageSize
}

// RequireAuth returns domain.ErrUnauthenticated unless a session is established.
func (a *App) RequireAuth() error {
	if !a.Session.IsAuthenticated() {
		return domain.ErrUnauthenticated
	}

	return nil
}

// Preload warms the first page of users and products and the category list concurrently.
func (a *App) Preload(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		_, err := a.Users.FetchCollection(ctx, a.usersPageSize, 0, "", "")

		return err
	})
	g.Go(func() error {
		_, err := a.Products.FetchCollection(ctx, a.productsPageSize, 0, "", "")

		return err
	})
	g.Go(func() error {
		a.Products.FetchCategories(ctx)

		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to preload: %w", err)
	}

	return nil
}

// ClearCaches drops every cached response in every store.
func (a *App) ClearCaches() {
	a.Users.ClearCache()
	a.Products.ClearCache()
}

// CacheStats returns cache counters per resource kind.
func (a *App) CacheStats() map[domain.Kind]domain.CacheStats {
	return map[domain.Kind]domain.CacheStats{
		domain.KindUsers:    a.Users.CacheStats(),
		domain.KindProducts: a.Products.CacheStats(),
	}
}

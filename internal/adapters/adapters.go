package adapters

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/parths19/Admin-Dashboard/internal/adapters/primary/cli"
	httpadapter "github.com/parths19/Admin-Dashboard/internal/adapters/primary/http"
	"github.com/parths19/Admin-Dashboard/internal/adapters/secondary/cache"
	"github.com/parths19/Admin-Dashboard/internal/adapters/secondary/dummyjson"
	"github.com/parths19/Admin-Dashboard/internal/adapters/secondary/persistence"
	"github.com/parths19/Admin-Dashboard/internal/config"
	"github.com/parths19/Admin-Dashboard/internal/core/app"
	"github.com/parths19/Admin-Dashboard/internal/core/domain"
	"github.com/parths19/Admin-Dashboard/internal/log"
	"github.com/rs/zerolog"
	do "github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

var PrimaryPackage = do.Package(
	do.Lazy[*cobra.Command](cli.Command),
	do.Lazy[*httpadapter.Server](NewHTTPServer),
)

var SecondaryPackage = do.Package(
	do.Lazy[zerolog.Logger](NewLogger),
	do.Lazy[*dummyjson.Client](NewDummyJSONClient),
	do.Lazy[app.Source[domain.User]](NewUserSource),
	do.Lazy[*dummyjson.ProductSource](NewProductSource),
	do.Lazy[app.Authenticator](NewAuthenticator),
	do.Lazy[persistence.Storage](NewSessionStorage),
	do.Lazy[*app.EntityStore[domain.User]](NewUsersStore),
	do.Lazy[*app.ProductsStore](NewProductsStore),
	do.Lazy[*app.SessionStore](NewSessionStore),
)

// NewLogger creates the application logger writing to stderr.
func NewLogger(i do.Injector) (zerolog.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	return log.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
}

// NewDummyJSONClient creates the API client. The bearer token is read from
// the session store on every request.
func NewDummyJSONClient(i do.Injector) (*dummyjson.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)

	token := func() string {
		session, err := do.Invoke[*app.SessionStore](i)
		if err != nil {
			return ""
		}

		return session.Token()
	}

	return dummyjson.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, dummyjson.WithTokenSource(token)), nil
}

func NewUserSource(i do.Injector) (app.Source[domain.User], error) {
	return dummyjson.NewUserSource(do.MustInvoke[*dummyjson.Client](i)), nil
}

func NewProductSource(i do.Injector) (*dummyjson.ProductSource, error) {
	return dummyjson.NewProductSource(do.MustInvoke[*dummyjson.Client](i)), nil
}

func NewAuthenticator(i do.Injector) (app.Authenticator, error) {
	return dummyjson.NewAuthenticator(do.MustInvoke[*dummyjson.Client](i)), nil
}

// NewSessionStorage opens the configured session backend.
func NewSessionStorage(i do.Injector) (persistence.Storage, error) {
	cfg := do.MustInvoke[*config.Config](i)

	storage, err := persistence.Open(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s session storage: %w", cfg.SessionBackend, err)
	}

	return storage, nil
}

func newCache[V any](cfg *config.Config, ttl time.Duration) (*cache.TTL[domain.CacheKey, V], error) {
	return cache.NewTTL[domain.CacheKey, V](cache.Config{TTL: ttl, Capacity: cfg.CacheCapacity})
}

// NewUsersStore creates the users store with its page and item caches.
func NewUsersStore(i do.Injector) (*app.EntityStore[domain.User], error) {
	cfg := do.MustInvoke[*config.Config](i)

	pages, err := newCache[*domain.Page[domain.User]](cfg, cfg.CacheTTL)
	if err != nil {
		return nil, err
	}

	items, err := newCache[*domain.User](cfg, cfg.CacheTTL)
	if err != nil {
		return nil, err
	}

	return app.NewEntityStore[domain.User](
		domain.KindUsers,
		do.MustInvoke[app.Source[domain.User]](i),
		pages,
		items,
		do.MustInvoke[zerolog.Logger](i),
	), nil
}

// NewProductsStore creates the products store and its category lookup.
func NewProductsStore(i do.Injector) (*app.ProductsStore, error) {
	cfg := do.MustInvoke[*config.Config](i)
	source := do.MustInvoke[*dummyjson.ProductSource](i)

	pages, err := newCache[*domain.Page[domain.Product]](cfg, cfg.CacheTTL)
	if err != nil {
		return nil, err
	}

	items, err := newCache[*domain.Product](cfg, cfg.CacheTTL)
	if err != nil {
		return nil, err
	}

	categories, err := newCache[[]domain.Category](cfg, cfg.CategoriesTTL)
	if err != nil {
		return nil, err
	}

	entities := app.NewEntityStore[domain.Product](
		domain.KindProducts,
		source,
		pages,
		items,
		do.MustInvoke[zerolog.Logger](i),
	)

	return app.NewProductsStore(entities, source, categories), nil
}

// NewSessionStore creates the session store, rehydrated from storage.
func NewSessionStore(i do.Injector) (*app.SessionStore, error) {
	cfg := do.MustInvoke[*config.Config](i)

	storage, err := do.Invoke[persistence.Storage](i)
	if err != nil {
		return nil, err
	}

	return app.NewSessionStore(
		context.Background(),
		do.MustInvoke[app.Authenticator](i),
		storage,
		app.SessionOptions{
			StorageKey:             cfg.SessionKey,
			SessionLifetimeMinutes: cfg.SessionLifetimeMinutes(),
			Logger:                 do.MustInvoke[zerolog.Logger](i),
		},
	)
}

// NewHTTPServer creates a new HTTP server.
func NewHTTPServer(i do.Injector) (*httpadapter.Server, error) {
	appInstance, err := do.Invoke[*app.App](i)
	if err != nil {
		return nil, err
	}
	cfg := do.MustInvoke[*config.Config](i)

	return httpadapter.NewServer(cfg.HTTPAddress, appInstance, do.MustInvoke[zerolog.Logger](i)), nil
}

package app

import (
	"context"

	"github.com/parths19/Admin-Dashboard/internal/core/domain"
)

// Source reads one resource kind from the remote API (port).
type Source[T any] interface {
	List(ctx context.Context, limit, skip int) (*domain.Page[T], error)
	Search(ctx context.Context, query string, limit, skip int) (*domain.Page[T], error)
	Filter(ctx context.Context, filter string, limit, skip int) (*domain.Page[T], error)
	Get(ctx context.Context, id int) (*T, error)
}

// CategorySource lists product categories (port).
type CategorySource interface {
	Categories(ctx context.Context) ([]domain.Category, error)
}

// Authenticator exchanges credentials for a profile and token (port).
type Authenticator interface {
	Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResult, error)
}

// SessionStorage is the durable key/value backend for the persisted session (port).
// Get returns nil data and no error when the key is absent.
type SessionStorage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Cache is the per-store response cache (port).
type Cache[V any] interface {
	Get(key domain.CacheKey) (V, bool)
	Put(key domain.CacheKey, value V)
	InvalidateAll()
	Stats() domain.CacheStats
}

// statusCoder is implemented by remote errors that carry an HTTP status.
type statusCoder interface {
	HTTPStatus() int
}

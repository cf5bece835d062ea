// Package persistence stores the durable session record in a file, a local
// SQLite database or Redis.
package persistence

import (
	"context"
	"fmt"

	"github.com/parths19/Admin-Dashboard/internal/config"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/afero"
)

// Storage is a key/value store for small records. Get returns (nil, nil)
// for a missing key.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// Open creates the backend selected by cfg.SessionBackend.
func Open(ctx context.Context, cfg *config.Config) (Storage, error) {
	switch cfg.SessionBackend {
	case config.BackendFile:
		return NewFileStorage(afero.NewOsFs(), cfg.SessionDir), nil
	case config.BackendSQLite:
		return OpenSQLite(ctx, cfg.SQLitePath)
	case config.BackendRedis:
		return NewRedisStorage(ctx, redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}), redisKeyPrefix)
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.SessionBackend)
	}
}

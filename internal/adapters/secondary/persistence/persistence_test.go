package persistence

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/parths19/Admin-Dashboard/internal/config"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStorage(t *testing.T) (*RedisStorage, *miniredis.Miniredis) {
	t.Helper()

	mini := miniredis.RunT(t)

	s, err := NewRedisStorage(context.Background(), redis.NewClient(&redis.Options{Addr: mini.Addr()}), redisKeyPrefix)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s, mini
}

func newSQLiteStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	s, err := OpenSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func backends(t *testing.T) map[string]Storage {
	t.Helper()

	redisStorage, _ := newRedisStorage(t)

	return map[string]Storage{
		"file":   NewFileStorage(afero.NewMemMapFs(), "/home/admin/.admin-console"),
		"sqlite": newSQLiteStorage(t),
		"redis":  redisStorage,
	}
}

func TestStorage_Contract(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			got, err := s.Get(ctx, "auth-storage")
			require.NoError(t, err)
			assert.Nil(t, got, "missing key reads as nil")

			require.NoError(t, s.Set(ctx, "auth-storage", []byte(`{"user":null,"token":"","isAuthenticated":false}`)))
			require.NoError(t, s.Set(ctx, "auth-storage", []byte(`{"user":{"id":1},"token":"t","isAuthenticated":true}`)))

			got, err = s.Get(ctx, "auth-storage")
			require.NoError(t, err)
			assert.JSONEq(t, `{"user":{"id":1},"token":"t","isAuthenticated":true}`, string(got))

			other, err := s.Get(ctx, "other")
			require.NoError(t, err)
			assert.Nil(t, other)
		})
	}
}

func TestFileStorage_Layout(t *testing.T) {
	fsys := afero.NewMemMapFs()
	s := NewFileStorage(fsys, "/data")

	require.NoError(t, s.Set(context.Background(), "auth-storage", []byte("{}")))

	exists, err := afero.Exists(fsys, "/data/auth-storage.json")
	require.NoError(t, err)
	assert.True(t, exists)

	tmp, err := afero.Exists(fsys, "/data/auth-storage.json.tmp")
	require.NoError(t, err)
	assert.False(t, tmp, "temporary file is renamed away")
}

func TestFileStorage_EscapesKey(t *testing.T) {
	fsys := afero.NewMemMapFs()
	s := NewFileStorage(fsys, "/data")

	require.NoError(t, s.Set(context.Background(), "../escape", []byte("{}")))

	exists, err := afero.Exists(fsys, "/data/..%2Fescape.json")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestFileStorage_ReadOnly(t *testing.T) {
	s := NewFileStorage(afero.NewReadOnlyFs(afero.NewMemMapFs()), "/data")

	assert.Error(t, s.Set(context.Background(), "auth-storage", []byte("{}")))
}

func TestSQLiteStorage_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "console.db")

	first, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "auth-storage", []byte("v1")))
	require.NoError(t, first.Close())

	// Migrations already applied must not fail on reopen.
	second, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	got, err := second.Get(ctx, "auth-storage")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), got)
}

func TestRedisStorage_KeyPrefix(t *testing.T) {
	s, mini := newRedisStorage(t)

	require.NoError(t, s.Set(context.Background(), "auth-storage", []byte("v")))

	got, err := mini.Get("admin-console:auth-storage")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestRedisStorage_Unreachable(t *testing.T) {
	mini := miniredis.RunT(t)
	addr := mini.Addr()
	mini.Close()

	_, err := NewRedisStorage(context.Background(), redis.NewClient(&redis.Options{Addr: addr, MaxRetries: -1}), redisKeyPrefix)
	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	mini := miniredis.RunT(t)
	dir := t.TempDir()

	tests := []struct {
		name        string
		cfg         *config.Config
		want        any
		expectError bool
	}{
		{
			name: "file",
			cfg:  &config.Config{SessionBackend: config.BackendFile, SessionDir: dir},
			want: &FileStorage{},
		},
		{
			name: "sqlite",
			cfg:  &config.Config{SessionBackend: config.BackendSQLite, SQLitePath: filepath.Join(dir, "console.db")},
			want: &SQLiteStorage{},
		},
		{
			name: "redis",
			cfg:  &config.Config{SessionBackend: config.BackendRedis, RedisAddr: mini.Addr()},
			want: &RedisStorage{},
		},
		{
			name:        "unknown",
			cfg:         &config.Config{SessionBackend: "etcd"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Open(context.Background(), tt.cfg)
			if tt.expectError {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			t.Cleanup(func() { _ = s.Close() })
			assert.IsType(t, tt.want, s)
		})
	}
}

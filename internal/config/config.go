package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	do "github.com/samber/do/v2"
	"github.com/spf13/viper"
)

var Package = do.Package(
	do.Lazy[*Config](NewConfig),
)

const envPrefix = "ADMIN"

// Session storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Config holds the application configuration.
type Config struct {
	APIBaseURL     string
	HTTPAddress    string
	RequestTimeout time.Duration

	SessionLifetime time.Duration
	SessionBackend  string
	SessionDir      string
	SessionKey      string
	SQLitePath      string
	RedisAddr       string

	CacheCapacity int
	CacheTTL      time.Duration
	CategoriesTTL time.Duration

	UsersPageSize    int
	ProductsPageSize int

	LogLevel  string
	LogFormat string
}

// SessionLifetimeMinutes is the lifetime requested from the login endpoint.
func (c *Config) SessionLifetimeMinutes() int {
	return int(c.SessionLifetime / time.Minute)
}

// NewConfig creates a new configuration from environment variables (for DI).
func NewConfig(_ do.Injector) (*Config, error) {
	return New()
}

// New creates a new configuration from environment variables, reading a
// .env file in the working directory first when one exists.
func New() (*Config, error) {
	return Load(".env")
}

// Load reads envFile (if present) into the environment and builds the
// configuration from ADMIN_ variables. Variables already set win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	sessionDir := v.GetString("session_dir")

	sqlitePath := v.GetString("sqlite_path")
	if sqlitePath == "" {
		sqlitePath = filepath.Join(sessionDir, "console.db")
	}

	cfg := &Config{
		APIBaseURL:       strings.TrimRight(v.GetString("api_base_url"), "/"),
		HTTPAddress:      v.GetString("http_address"),
		RequestTimeout:   v.GetDuration("request_timeout"),
		SessionLifetime:  v.GetDuration("session_lifetime"),
		SessionBackend:   strings.ToLower(v.GetString("session_backend")),
		SessionDir:       sessionDir,
		SessionKey:       v.GetString("session_key"),
		SQLitePath:       sqlitePath,
		RedisAddr:        v.GetString("redis_addr"),
		CacheCapacity:    v.GetInt("cache_capacity"),
		CacheTTL:         v.GetDuration("cache_ttl"),
		CategoriesTTL:    v.GetDuration("categories_ttl"),
		UsersPageSize:    v.GetInt("users_page_size"),
		ProductsPageSize: v.GetInt("products_page_size"),
		LogLevel:         v.GetString("log_level"),
		LogFormat:        v.GetString("log_format"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api_base_url", "https://dummyjson.com")
	v.SetDefault("http_address", ":8080")
	v.SetDefault("request_timeout", 30*time.Second)
	v.SetDefault("session_lifetime", 60*time.Minute)
	v.SetDefault("session_backend", BackendFile)
	v.SetDefault("session_dir", defaultSessionDir())
	v.SetDefault("session_key", "auth-storage")
	v.SetDefault("sqlite_path", "")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("cache_capacity", 256)
	v.SetDefault("cache_ttl", 5*time.Minute)
	v.SetDefault("categories_ttl", 10*time.Minute)
	v.SetDefault("users_page_size", 10)
	v.SetDefault("products_page_size", 12)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
}

func defaultSessionDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".admin-console"
	}

	return filepath.Join(home, ".admin-console")
}

func (c *Config) validate() error {
	if c.APIBaseURL == "" {
		return errors.New("ADMIN_API_BASE_URL must not be empty")
	}

	switch c.SessionBackend {
	case BackendFile, BackendSQLite, BackendRedis:
	default:
		return fmt.Errorf("unknown ADMIN_SESSION_BACKEND %q", c.SessionBackend)
	}

	if c.SessionKey == "" {
		return errors.New("ADMIN_SESSION_KEY must not be empty")
	}

	if c.CacheCapacity <= 0 {
		return fmt.Errorf("ADMIN_CACHE_CAPACITY must be positive, got %d", c.CacheCapacity)
	}

	if c.UsersPageSize <= 0 || c.ProductsPageSize <= 0 {
		return errors.New("page sizes must be positive")
	}

	if c.RequestTimeout < 0 {
		return errors.New("ADMIN_REQUEST_TIMEOUT must not be negative")
	}

	return nil
}

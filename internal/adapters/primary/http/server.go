package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/parths19/Admin-Dashboard/internal/core/app"
	"github.com/rs/zerolog"
)

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 60 * time.Second
	idleTimeout  = 120 * time.Second
)

// Server represents an HTTP server.
type Server struct {
	server *http.Server
	app    *app.App
	logger zerolog.Logger
}

// NewServer creates a new HTTP server.
func NewServer(addr string, appInstance *app.App, logger zerolog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		app:    appInstance,
		logger: logger.With().Str("component", "http").Logger(),
	}

	mux.HandleFunc("POST /api/login", s.handleLogin)
	mux.HandleFunc("POST /api/logout", s.requireAuth(s.handleLogout))
	mux.HandleFunc("GET /api/session", s.handleSession)

	mux.HandleFunc("GET /api/users", s.requireAuth(s.handleListUsers))
	mux.HandleFunc("GET /api/users/{id}", s.requireAuth(s.handleGetUser))
	mux.HandleFunc("GET /api/products", s.requireAuth(s.handleListProducts))
	mux.HandleFunc("GET /api/products/{id}", s.requireAuth(s.handleGetProduct))
	mux.HandleFunc("GET /api/categories", s.requireAuth(s.handleCategories))

	mux.HandleFunc("POST /api/cache/clear", s.requireAuth(s.handleClearCache))
	mux.HandleFunc("GET /api/cache/stats", s.handleCacheStats)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.logRequests(mux),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return s
}

// Handler returns the root handler with middleware applied.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server and blocks until it stops. A graceful
// Shutdown is not reported as an error.
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.server.Addr).Msg("starting server")

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}

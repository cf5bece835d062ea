package http

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"
)

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// logRequests logs method, path, status and duration of every request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		event := s.logger.Info()
		switch {
		case sw.status >= http.StatusInternalServerError:
			event = s.logger.Error()
		case sw.status >= http.StatusBadRequest:
			event = s.logger.Warn()
		}

		event.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", sw.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

// authorized reports whether the request carries the bearer token of the
// established session.
func (s *Server) authorized(r *http.Request) bool {
	if s.app.RequireAuth() != nil {
		return false
	}

	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || token == "" {
		return false
	}

	current := s.app.Session.Token()

	return current != "" && subtle.ConstantTimeCompare([]byte(token), []byte(current)) == 1
}

// requireAuth rejects requests without the session's bearer token.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.authorized(r) {
			writeError(w, http.StatusUnauthorized, "Not authenticated")

			return
		}

		next(w, r)
	}
}

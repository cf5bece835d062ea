package http

import (
	"encoding/json"
	"net/http"

	"github.com/parths19/Admin-Dashboard/internal/core/domain"
)

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionResponse describes the current session.
type SessionResponse struct {
	User            *domain.Profile `json:"user"`
	IsAuthenticated bool            `json:"isAuthenticated"`
	Status          string          `json:"status"`
	Error           string          `json:"error,omitempty"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")

		return
	}

	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Username and password are required")

		return
	}

	res := s.app.Session.Login(r.Context(), req.Username, req.Password)
	if !res.Success {
		writeJSON(w, http.StatusUnauthorized, res)

		return
	}

	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.app.Session.Logout(r.Context())

	w.WriteHeader(http.StatusNoContent)
}

// handleSession describes the session. Callers without the session token see
// it as anonymous.
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	st := s.app.Session.State()

	if !s.authorized(r) {
		writeJSON(w, http.StatusOK, SessionResponse{
			Status: domain.StatusAnonymous.String(),
			Error:  st.Message(),
		})

		return
	}

	writeJSON(w, http.StatusOK, SessionResponse{
		User:            st.User,
		IsAuthenticated: st.IsAuthenticated,
		Status:          s.app.Session.Status().String(),
		Error:           st.Message(),
	})
}

func (s *Server) handleClearCache(w http.ResponseWriter, _ *http.Request) {
	s.app.ClearCaches()

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCacheStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.app.CacheStats())
}

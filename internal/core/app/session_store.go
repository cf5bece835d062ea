package app

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/parths19/Admin-Dashboard/internal/core/domain"
	"github.com/rs/zerolog"
)

const (
	invalidCredentialsMessage = "Invalid credentials"
	supersededMessage         = "Login superseded by a newer request"
)

// LoginResult is the outcome of one login attempt. Token is the bearer token
// of the new session when Success is set.
type LoginResult struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SessionState is a snapshot of the SessionStore.
type SessionState struct {
	domain.Session
	FetchState
}

// SessionStore owns the authentication state and keeps its persisted subset
// (user, token, isAuthenticated) in durable storage. Every mutation ends with
// a write of that subset.
type SessionStore struct {
	auth                   Authenticator
	storage                SessionStorage
	key                    string
	sessionLifetimeMinutes int
	logger                 zerolog.Logger

	mu         sync.Mutex
	generation uint64
	session    domain.Session
	fetch      FetchState
}

// SessionOptions configures a SessionStore.
type SessionOptions struct {
	// StorageKey is the durable key holding the persisted session.
	StorageKey string
	// SessionLifetimeMinutes is requested from the login endpoint.
	SessionLifetimeMinutes int
	Logger                 zerolog.Logger
}

// NewSessionStore creates the store and rehydrates it from storage before
// returning it. A missing or unreadable record yields an anonymous session.
func NewSessionStore(
	ctx context.Context,
	auth Authenticator,
	storage SessionStorage,
	opts SessionOptions,
) (*SessionStore, error) {
	s := &SessionStore{
		auth:                   auth,
		storage:                storage,
		key:                    opts.StorageKey,
		sessionLifetimeMinutes: opts.SessionLifetimeMinutes,
		logger:                 opts.Logger.With().Str("component", "session").Logger(),
	}

	if err := s.rehydrate(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *SessionStore) rehydrate(ctx context.Context) error {
	data, err := s.storage.Get(ctx, s.key)
	if err != nil {
		return fmt.Errorf("failed to read session %q: %w", s.key, err)
	}

	if len(data) == 0 {
		return nil
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		s.logger.Warn().Err(err).Str("key", s.key).Msg("ignoring unreadable persisted session")

		return nil
	}

	s.session = session

	return nil
}

// Login exchanges credentials for a session. Double submission is not
// guarded; if attempts overlap, only the latest one updates the state. An
// attempt overtaken by a later Login or Logout reports failure.
func (s *SessionStore) Login(ctx context.Context, username, password string) LoginResult {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.fetch = FetchState{Loading: true}
	s.persistLocked(ctx)
	s.mu.Unlock()

	result, err := s.auth.Login(ctx, domain.Credentials{
		Username:               username,
		Password:               password,
		SessionLifetimeMinutes: s.sessionLifetimeMinutes,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		storeErr := domain.NewError(domain.ErrInvalidCredentials, invalidCredentialsMessage, err)
		s.logger.Info().Err(err).Str("username", username).Msg("login rejected")

		if gen == s.generation {
			s.session = domain.Session{}
			s.fetch = FetchState{Err: storeErr}
			s.persistLocked(ctx)
		}

		return LoginResult{Success: false, Error: storeErr.Message}
	}

	if gen != s.generation {
		s.logger.Info().Str("username", username).Msg("login superseded")

		return LoginResult{Success: false, Error: supersededMessage}
	}

	profile := result.Profile
	s.session = domain.Session{User: &profile, Token: result.Token, IsAuthenticated: true}
	s.fetch = FetchState{}
	s.persistLocked(ctx)

	s.logger.Info().Str("username", username).Msg("logged in")

	return LoginResult{Success: true, Token: result.Token}
}

// Logout clears the session. Calling it again is a no-op on the state.
func (s *SessionStore) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.session = domain.Session{}
	s.fetch = FetchState{}
	s.persistLocked(ctx)
}

// ClearError resets the error.
func (s *SessionStore) ClearError(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fetch.Err = nil
	s.persistLocked(ctx)
}

// State returns a snapshot of the store.
func (s *SessionStore) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := SessionState{Session: s.session, FetchState: s.fetch}
	if s.session.User != nil {
		profile := *s.session.User
		st.User = &profile
	}

	return st
}

// Status reports where the store is in the login state machine.
func (s *SessionStore) Status() domain.SessionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.fetch.Loading:
		return domain.StatusAuthenticating
	case s.session.IsAuthenticated:
		return domain.StatusAuthenticated
	default:
		return domain.StatusAnonymous
	}
}

// IsAuthenticated reports whether a session is established.
func (s *SessionStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.session.IsAuthenticated
}

// Token returns the bearer token for outgoing requests, or "".
func (s *SessionStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.session.Token
}

// persistLocked writes the persisted subset. A failed write is logged; the
// in-memory state stays authoritative.
func (s *SessionStore) persistLocked(ctx context.Context) {
	data, err := json.Marshal(s.session)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to encode session")

		return
	}

	if err := s.storage.Set(ctx, s.key, data); err != nil {
		s.logger.Error().Err(err).Str("key", s.key).Msg("failed to persist session")
	}
}

package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/parths19/Admin-Dashboard/internal/adapters/secondary/repository/mocks"
	"github.com/parths19/Admin-Dashboard/internal/core/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSessionKey = "auth-storage"

func emilyResult() *domain.AuthResult {
	return &domain.AuthResult{
		Profile: domain.Profile{
			ID:        1,
			Username:  "emilys",
			Email:     "emily.johnson@x.dummyjson.com",
			FirstName: "Emily",
			LastName:  "Johnson",
			Gender:    "female",
			Image:     "https://dummyjson.com/icon/emilys/128",
		},
		Token: "eyJhbGciOiJIUzI1NiJ9.test",
	}
}

func newTestSession(t *testing.T, auth Authenticator, storage SessionStorage) *SessionStore {
	t.Helper()

	s, err := NewSessionStore(context.Background(), auth, storage, SessionOptions{
		StorageKey:             testSessionKey,
		SessionLifetimeMinutes: 60,
		Logger:                 zerolog.Nop(),
	})
	require.NoError(t, err)

	return s
}

func persisted(t *testing.T, storage *mocks.MemoryStorage) domain.Session {
	t.Helper()

	data, err := storage.Get(context.Background(), testSessionKey)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	var s domain.Session
	require.NoError(t, json.Unmarshal(data, &s))

	return s
}

func TestSessionStore_Login(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*mocks.MockAuthenticator)
		want      LoginResult
		wantAuth  bool
		wantToken string
	}{
		{
			name: "valid credentials",
			setupMock: func(m *mocks.MockAuthenticator) {
				m.On("Login", mock.Anything, domain.Credentials{
					Username:               "emilys",
					Password:               "emilyspass",
					SessionLifetimeMinutes: 60,
				}).Return(emilyResult(), nil).Once()
			},
			want:      LoginResult{Success: true, Token: "eyJhbGciOiJIUzI1NiJ9.test"},
			wantAuth:  true,
			wantToken: "eyJhbGciOiJIUzI1NiJ9.test",
		},
		{
			name: "rejected credentials",
			setupMock: func(m *mocks.MockAuthenticator) {
				m.On("Login", mock.Anything, mock.Anything).Return(nil, statusErr{code: 400}).Once()
			},
			want: LoginResult{Success: false, Error: "Invalid credentials"},
		},
		{
			name: "transport failure",
			setupMock: func(m *mocks.MockAuthenticator) {
				m.On("Login", mock.Anything, mock.Anything).Return(nil, errors.New("no such host")).Once()
			},
			want: LoginResult{Success: false, Error: "Invalid credentials"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mocks.MockAuthenticator{}
			tt.setupMock(auth)
			storage := mocks.NewMemoryStorage()
			store := newTestSession(t, auth, storage)

			got := store.Login(context.Background(), "emilys", "emilyspass")

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantAuth, store.IsAuthenticated())
			assert.Equal(t, tt.wantToken, store.Token())
			assert.False(t, store.State().Loading)

			saved := persisted(t, storage)
			assert.Equal(t, tt.wantAuth, saved.IsAuthenticated)
			assert.Equal(t, tt.wantToken, saved.Token)

			auth.AssertExpectations(t)
		})
	}
}

func TestSessionStore_FailedLoginResetsSession(t *testing.T) {
	ctx := context.Background()
	auth := &mocks.MockAuthenticator{}
	storage := mocks.NewMemoryStorage()
	store := newTestSession(t, auth, storage)

	auth.On("Login", mock.Anything, mock.MatchedBy(func(c domain.Credentials) bool {
		return c.Password == "emilyspass"
	})).Return(emilyResult(), nil).Once()
	auth.On("Login", mock.Anything, mock.MatchedBy(func(c domain.Credentials) bool {
		return c.Password == "wrong"
	})).Return(nil, statusErr{code: 400}).Once()

	require.True(t, store.Login(ctx, "emilys", "emilyspass").Success)
	res := store.Login(ctx, "emilys", "wrong")

	assert.False(t, res.Success)
	st := store.State()
	assert.False(t, st.IsAuthenticated)
	assert.Nil(t, st.User)
	assert.Empty(t, st.Token)
	assert.ErrorIs(t, st.Err, domain.ErrInvalidCredentials)
	assert.Equal(t, "Invalid credentials", st.Message())
	assert.Equal(t, domain.StatusAnonymous, store.Status())
}

func TestSessionStore_AuthenticatingWhileInFlight(t *testing.T) {
	auth := &mocks.MockAuthenticator{}
	storage := mocks.NewMemoryStorage()
	store := newTestSession(t, auth, storage)

	var during domain.SessionStatus
	auth.On("Login", mock.Anything, mock.Anything).
		Run(func(_ mock.Arguments) { during = store.Status() }).
		Return(emilyResult(), nil).Once()

	store.Login(context.Background(), "emilys", "emilyspass")

	assert.Equal(t, domain.StatusAuthenticating, during)
	assert.Equal(t, domain.StatusAuthenticated, store.Status())
}

func TestSessionStore_LoginOvertakenByLogout(t *testing.T) {
	ctx := context.Background()
	auth := &mocks.MockAuthenticator{}
	storage := mocks.NewMemoryStorage()
	store := newTestSession(t, auth, storage)

	started := make(chan struct{})
	release := make(chan struct{})
	auth.On("Login", mock.Anything, mock.Anything).
		Run(func(_ mock.Arguments) {
			close(started)
			<-release
		}).
		Return(emilyResult(), nil).Once()

	done := make(chan LoginResult, 1)
	go func() {
		done <- store.Login(ctx, "emilys", "emilyspass")
	}()

	<-started
	store.Logout(ctx)
	close(release)
	res := <-done

	assert.False(t, res.Success, "a login that was not applied is not reported as a success")
	assert.Empty(t, res.Token)
	assert.Equal(t, "Login superseded by a newer request", res.Error)
	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.Token())
	assert.Equal(t, domain.Session{}, persisted(t, storage))
}

func TestSessionStore_LogoutIsIdempotent(t *testing.T) {
	ctx := context.Background()
	auth := &mocks.MockAuthenticator{}
	auth.On("Login", mock.Anything, mock.Anything).Return(emilyResult(), nil).Once()
	storage := mocks.NewMemoryStorage()
	store := newTestSession(t, auth, storage)

	require.True(t, store.Login(ctx, "emilys", "emilyspass").Success)

	store.Logout(ctx)
	first := store.State()
	store.Logout(ctx)
	second := store.State()

	assert.Equal(t, first, second)
	assert.False(t, second.IsAuthenticated)
	assert.Nil(t, second.User)
	assert.Empty(t, second.Token)
	assert.NoError(t, second.Err)

	saved := persisted(t, storage)
	assert.Equal(t, domain.Session{}, saved)
}

func TestSessionStore_Rehydrate(t *testing.T) {
	ctx := context.Background()
	auth := &mocks.MockAuthenticator{}
	auth.On("Login", mock.Anything, mock.Anything).Return(emilyResult(), nil).Once()
	storage := mocks.NewMemoryStorage()

	first := newTestSession(t, auth, storage)
	require.True(t, first.Login(ctx, "emilys", "emilyspass").Success)

	// A new store over the same storage is what a restart looks like.
	second := newTestSession(t, &mocks.MockAuthenticator{}, storage)

	st := second.State()
	assert.True(t, st.IsAuthenticated)
	assert.Equal(t, "eyJhbGciOiJIUzI1NiJ9.test", st.Token)
	require.NotNil(t, st.User)
	assert.Equal(t, "emilys", st.User.Username)
	assert.False(t, st.Loading)
	assert.NoError(t, st.Err)
}

func TestSessionStore_PersistedShape(t *testing.T) {
	auth := &mocks.MockAuthenticator{}
	auth.On("Login", mock.Anything, mock.Anything).Return(emilyResult(), nil).Once()
	storage := mocks.NewMemoryStorage()
	store := newTestSession(t, auth, storage)

	store.Login(context.Background(), "emilys", "emilyspass")

	data, err := storage.Get(context.Background(), testSessionKey)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Len(t, raw, 3)
	assert.Contains(t, raw, "user")
	assert.Contains(t, raw, "token")
	assert.Contains(t, raw, "isAuthenticated")
}

func TestSessionStore_CorruptStorage(t *testing.T) {
	ctx := context.Background()
	storage := mocks.NewMemoryStorage()
	require.NoError(t, storage.Set(ctx, testSessionKey, []byte("{not json")))

	var buf bytes.Buffer
	store, err := NewSessionStore(ctx, &mocks.MockAuthenticator{}, storage, SessionOptions{
		StorageKey: testSessionKey,
		Logger:     zerolog.New(&buf),
	})
	require.NoError(t, err)

	assert.False(t, store.IsAuthenticated())
	assert.Equal(t, domain.StatusAnonymous, store.Status())
	assert.Contains(t, buf.String(), "ignoring unreadable persisted session")
}

func TestSessionStore_StorageReadError(t *testing.T) {
	storage := mocks.NewMemoryStorage()
	storage.Err = errors.New("disk on fire")

	_, err := NewSessionStore(context.Background(), &mocks.MockAuthenticator{}, storage, SessionOptions{
		StorageKey: testSessionKey,
		Logger:     zerolog.Nop(),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestSessionStore_PersistFailureKeepsMemoryState(t *testing.T) {
	auth := &mocks.MockAuthenticator{}
	auth.On("Login", mock.Anything, mock.Anything).Return(emilyResult(), nil).Once()
	storage := mocks.NewMemoryStorage()
	store := newTestSession(t, auth, storage)

	storage.Err = errors.New("read-only filesystem")

	res := store.Login(context.Background(), "emilys", "emilyspass")

	assert.True(t, res.Success)
	assert.True(t, store.IsAuthenticated())
}

func TestSessionStore_EveryMutationPersists(t *testing.T) {
	ctx := context.Background()
	auth := &mocks.MockAuthenticator{}
	auth.On("Login", mock.Anything, mock.Anything).Return(nil, errors.New("bad")).Once()
	storage := mocks.NewMemoryStorage()
	store := newTestSession(t, auth, storage)

	store.Login(ctx, "emilys", "nope")
	afterLogin := storage.Writes
	store.ClearError(ctx)
	store.Logout(ctx)

	assert.Equal(t, 2, afterLogin, "loading and result are both written")
	assert.Equal(t, 4, storage.Writes)
	assert.NoError(t, store.State().Err)
}

func TestSessionStore_StateReturnsCopy(t *testing.T) {
	auth := &mocks.MockAuthenticator{}
	auth.On("Login", mock.Anything, mock.Anything).Return(emilyResult(), nil).Once()
	store := newTestSession(t, auth, mocks.NewMemoryStorage())

	store.Login(context.Background(), "emilys", "emilyspass")

	st := store.State()
	st.User.Username = "mutated"

	assert.Equal(t, "emilys", store.State().User.Username)
}

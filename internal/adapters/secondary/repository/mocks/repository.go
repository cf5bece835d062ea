package mocks

import (
	"context"
	"sync"

	"github.com/parths19/Admin-Dashboard/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockSource is a mock implementation of app.Source.
type MockSource[T any] struct {
	mock.Mock
}

// List mocks the List method.
func (m *MockSource[T]) List(ctx context.Context, limit, skip int) (*domain.Page[T], error) {
	args := m.Called(ctx, limit, skip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Page[T]), args.Error(1)
}

// Search mocks the Search method.
func (m *MockSource[T]) Search(ctx context.Context, query string, limit, skip int) (*domain.Page[T], error) {
	args := m.Called(ctx, query, limit, skip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Page[T]), args.Error(1)
}

// Filter mocks the Filter method.
func (m *MockSource[T]) Filter(ctx context.Context, filter string, limit, skip int) (*domain.Page[T], error) {
	args := m.Called(ctx, filter, limit, skip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Page[T]), args.Error(1)
}

// Get mocks the Get method.
func (m *MockSource[T]) Get(ctx context.Context, id int) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*T), args.Error(1)
}

// MockCategorySource is a mock implementation of app.CategorySource.
type MockCategorySource struct {
	mock.Mock
}

// Categories mocks the Categories method.
func (m *MockCategorySource) Categories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Category), args.Error(1)
}

// MockAuthenticator is a mock implementation of app.Authenticator.
type MockAuthenticator struct {
	mock.Mock
}

// Login mocks the Login method.
func (m *MockAuthenticator) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResult, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.AuthResult), args.Error(1)
}

// MemoryStorage is an in-memory app.SessionStorage that records writes.
type MemoryStorage struct {
	mu     sync.Mutex
	data   map[string][]byte
	Writes int
	// Err, when set, is returned by Get and Set.
	Err error
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string][]byte)}
}

func (s *MemoryStorage) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}

	return s.data[key], nil
}

func (s *MemoryStorage) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}

	s.Writes++
	s.data[key] = append([]byte(nil), value...)

	return nil
}

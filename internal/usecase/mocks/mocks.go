package mocks

import (
	"context"
	"strconv"
	"sync"

	"github.com/Aarifshaik/ganga-calc/internal/domain"
)

// MockStateRepository is an in-memory StateRepository.
type MockStateRepository struct {
	mu        sync.Mutex
	state     *domain.AppState
	recovered bool
	saves     int

	LoadFunc func(ctx context.Context) (*domain.AppState, bool, error)
	SaveFunc func(ctx context.Context, state *domain.AppState) error
}

func NewMockStateRepository() *MockStateRepository {
	return &MockStateRepository{}
}

// SetStored seeds the repository with a state to hydrate from.
func (m *MockStateRepository) SetStored(state *domain.AppState, recovered bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = state
	m.recovered = recovered
}

// Saves reports how many times Save was called.
func (m *MockStateRepository) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// LastSaved returns the most recently saved state.
func (m *MockStateRepository) LastSaved() *domain.AppState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *MockStateRepository) Load(ctx context.Context) (*domain.AppState, bool, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state, m.recovered, nil
}

func (m *MockStateRepository) Save(ctx context.Context, state *domain.AppState) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, state)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = state
	m.saves++
	return nil
}

// MockIDGenerator yields deterministic sequential IDs.
type MockIDGenerator struct {
	mu   sync.Mutex
	next int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	return "id-" + strconv.Itoa(m.next)
}

// MockPinVerifier accepts a single configured PIN/hash pair.
type MockPinVerifier struct {
	VerifyFunc func(pin, storedHash string) bool
}

func NewMockPinVerifier() *MockPinVerifier {
	return &MockPinVerifier{}
}

func (m *MockPinVerifier) Verify(pin, storedHash string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(pin, storedHash)
	}
	return pin != "" && storedHash == "hash:"+pin
}

// MockTokenIssuer mints predictable tokens.
type MockTokenIssuer struct {
	GenerateFunc func(user *domain.User) (string, error)
}

func NewMockTokenIssuer() *MockTokenIssuer {
	return &MockTokenIssuer{}
}

func (m *MockTokenIssuer) Generate(user *domain.User) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(user)
	}
	return "token-" + user.ID, nil
}

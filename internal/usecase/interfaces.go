package usecase

import (
	"context"

	"github.com/Aarifshaik/ganga-calc/internal/domain"
)

// StateRepository persists the whole application state as one document.
type StateRepository interface {
	// Load returns the stored state, or nil when none exists. The bool
	// reports whether a corrupt payload was archived and cleared during
	// the load.
	Load(ctx context.Context) (*domain.AppState, bool, error)
	Save(ctx context.Context, state *domain.AppState) error
}

// IDGenerator generates unique entry IDs.
type IDGenerator interface {
	Generate() string
}

// PinVerifier checks a PIN against a stored one-way hash.
type PinVerifier interface {
	Verify(pin, storedHash string) bool
}

// TokenIssuer mints API tokens for authenticated operators.
type TokenIssuer interface {
	Generate(user *domain.User) (string, error)
}

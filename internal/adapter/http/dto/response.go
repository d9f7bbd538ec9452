package dto

import (
	"time"

	"github.com/Aarifshaik/ganga-calc/internal/domain"
)

// ErrorResponse is the error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// MutationResponse reports a boolean mutation outcome. Gating failures
// are expected and user-correctable, so they travel in the body rather
// than as transport errors.
type MutationResponse struct {
	Updated bool `json:"updated"`
}

// SessionResponse represents the active login session.
type SessionResponse struct {
	UserID     string    `json:"user_id"`
	LoggedInAt time.Time `json:"logged_in_at"`
}

// SessionFromDomain converts a domain session to a response.
func SessionFromDomain(s *domain.Session) *SessionResponse {
	if s == nil {
		return nil
	}
	return &SessionResponse{
		UserID:     s.UserID,
		LoggedInAt: s.LoggedInAt,
	}
}

// LoginResponse carries the issued token (when API auth is enabled)
// and the opened session.
type LoginResponse struct {
	Token   string          `json:"token,omitempty"`
	Session SessionResponse `json:"session"`
}

// UserResponse lists an operator without credentials.
type UserResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UsersFromDomain converts operators to responses.
func UsersFromDomain(users []domain.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = UserResponse{ID: u.ID, Name: u.Name}
	}
	return out
}

// DayResponse is the full view of one day: the raw ledger, the derived
// totals, the current reconciliation verdict and the mutability flags.
type DayResponse struct {
	Ledger         *domain.DayLedger `json:"ledger"`
	Totals         domain.Totals     `json:"totals"`
	Reconciliation domain.Verdict    `json:"reconciliation"`
	Editable       bool              `json:"editable"`
	CanUseModules  bool              `json:"can_use_modules"`
}

// StateResponse surfaces storage-level notices.
type StateResponse struct {
	StorageRecovered bool `json:"storage_recovered"`
}

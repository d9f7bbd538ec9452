package usecase

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/Aarifshaik/ganga-calc/internal/domain"
)

// SessionStore records the active session; implemented by the ledger
// store since the session is part of the persisted state.
type SessionStore interface {
	Session() *domain.Session
	SetSession(session domain.Session)
	ClearSession()
}

// AuthUseCase gates access to the ledger with a PIN login. Failures are
// indistinguishable between unknown user and wrong PIN.
type AuthUseCase struct {
	users    []domain.User
	pins     PinVerifier
	tokens   TokenIssuer
	sessions SessionStore
	now      func() time.Time
	logger   zerolog.Logger
}

// NewAuthUseCase creates an AuthUseCase. tokens may be nil when API
// authentication is disabled; logins then succeed without a token.
func NewAuthUseCase(users []domain.User, pins PinVerifier, tokens TokenIssuer, sessions SessionStore, logger zerolog.Logger) *AuthUseCase {
	return &AuthUseCase{
		users:    users,
		pins:     pins,
		tokens:   tokens,
		sessions: sessions,
		now:      time.Now,
		logger:   logger,
	}
}

// LoginResult carries the session and, when auth is enabled, the token.
type LoginResult struct {
	Token   string
	Session domain.Session
}

// Login verifies the PIN and opens a session. The boolean is false for
// any failure; no reason is exposed.
func (uc *AuthUseCase) Login(userID, pin string) (LoginResult, bool) {
	var user *domain.User
	for i := range uc.users {
		if uc.users[i].ID == userID {
			user = &uc.users[i]
			break
		}
	}
	if user == nil {
		return LoginResult{}, false
	}

	if !uc.pins.Verify(pin, user.PinHash) {
		uc.logger.Warn().Str("user_id", userID).Msg("failed login attempt")
		return LoginResult{}, false
	}

	session := domain.Session{
		UserID:     user.ID,
		LoggedInAt: uc.now().UTC(),
	}

	var token string
	if uc.tokens != nil {
		t, err := uc.tokens.Generate(user)
		if err != nil {
			uc.logger.Error().Err(err).Msg("failed to issue token")
			return LoginResult{}, false
		}
		token = t
	}

	uc.sessions.SetSession(session)
	return LoginResult{Token: token, Session: session}, true
}

// Logout clears the active session.
func (uc *AuthUseCase) Logout() {
	uc.sessions.ClearSession()
}

// Session returns the active session, if any.
func (uc *AuthUseCase) Session() *domain.Session {
	return uc.sessions.Session()
}

// Users lists the operators with PIN hashes stripped.
func (uc *AuthUseCase) Users() []domain.User {
	out := make([]domain.User, len(uc.users))
	for i, u := range uc.users {
		u.PinHash = ""
		out[i] = u
	}
	return out
}

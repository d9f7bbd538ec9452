package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Aarifshaik/ganga-calc/internal/adapter/http/dto"
	"github.com/Aarifshaik/ganga-calc/internal/infrastructure/metrics"
	"github.com/Aarifshaik/ganga-calc/internal/usecase"
)

// AuthHandler handles PIN login, logout and session inspection.
type AuthHandler struct {
	authUC  *usecase.AuthUseCase
	metrics *metrics.Metrics
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authUC *usecase.AuthUseCase, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{authUC: authUC, metrics: m}
}

// Login verifies a user PIN and opens a session. All failures return the
// same 401 so a caller cannot probe for valid user IDs.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, ok := h.authUC.Login(req.UserID, req.Pin)
	if h.metrics != nil {
		label := "success"
		if !ok {
			label = "failure"
		}
		h.metrics.LoginAttempts.WithLabelValues(label).Inc()
	}
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid credentials", "")
		return
	}

	writeJSON(w, http.StatusOK, dto.LoginResponse{
		Token:   result.Token,
		Session: *dto.SessionFromDomain(&result.Session),
	})
}

// Logout clears the active session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authUC.Logout()
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Session returns the active session, or null when nobody is logged in.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]*dto.SessionResponse{
		"session": dto.SessionFromDomain(h.authUC.Session()),
	})
}

// ListUsers lists the operators available on the login screen.
func (h *AuthHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.UsersFromDomain(h.authUC.Users()))
}

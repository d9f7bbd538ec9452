package handler

import (
	"net/http"

	"github.com/Aarifshaik/ganga-calc/internal/adapter/http/dto"
)

// StateService surfaces storage-level notices from the ledger store.
type StateService interface {
	StorageRecovered() bool
	DismissStorageRecovered()
}

// StateHandler exposes storage recovery status to clients.
type StateHandler struct {
	ledgerUC StateService
}

// NewStateHandler creates a new StateHandler.
func NewStateHandler(ledgerUC StateService) *StateHandler {
	return &StateHandler{ledgerUC: ledgerUC}
}

// Get reports whether the service started from a fresh state after
// discarding corrupt storage.
func (h *StateHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.StateResponse{
		StorageRecovered: h.ledgerUC.StorageRecovered(),
	})
}

// DismissRecovery acknowledges the recovery notice.
func (h *StateHandler) DismissRecovery(w http.ResponseWriter, r *http.Request) {
	h.ledgerUC.DismissStorageRecovered()
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Aarifshaik/ganga-calc/internal/adapter/http/dto"
	"github.com/Aarifshaik/ganga-calc/internal/domain"
	"github.com/Aarifshaik/ganga-calc/internal/infrastructure/metrics"
	"github.com/Aarifshaik/ganga-calc/internal/usecase"
)

// EntryService defines the entry mutations needed by EntryHandler.
type EntryService interface {
	UpsertProfit(input usecase.ProfitInput) bool
	DeleteProfit(id string) bool
	UpsertExpense(input usecase.ExpenseInput) bool
	DeleteExpense(id string) bool
	UpsertAdvance(input usecase.AdvanceInput) bool
	DeleteAdvance(id string) bool
	UpsertDue(input usecase.DueInput) bool
	DeleteDue(id string) bool
	UpsertMoneyEntry(input usecase.MoneyInput) bool
	DeleteMoneyEntry(id string) bool
}

// EntryHandler handles upsert and delete for all five entry kinds.
type EntryHandler struct {
	ledgerUC EntryService
	metrics  *metrics.Metrics
}

// NewEntryHandler creates a new EntryHandler.
func NewEntryHandler(ledgerUC EntryService, m *metrics.Metrics) *EntryHandler {
	return &EntryHandler{ledgerUC: ledgerUC, metrics: m}
}

func (h *EntryHandler) recordUpsert(kind domain.EntryKind, updated bool) {
	if h.metrics == nil {
		return
	}
	if updated {
		h.metrics.EntriesUpserted.WithLabelValues(string(kind)).Inc()
	} else {
		h.metrics.GatingFailures.Inc()
	}
}

func (h *EntryHandler) recordDelete(kind domain.EntryKind, updated bool) {
	if h.metrics == nil {
		return
	}
	if updated {
		h.metrics.EntriesDeleted.WithLabelValues(string(kind)).Inc()
	}
}

// UpsertProfit creates or updates a profit entry.
func (h *EntryHandler) UpsertProfit(w http.ResponseWriter, r *http.Request) {
	var req dto.ProfitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	updated := h.ledgerUC.UpsertProfit(req.ToUseCaseInput())
	h.recordUpsert(domain.EntryKindProfit, updated)
	writeMutation(w, updated)
}

// DeleteProfit removes a profit entry.
func (h *EntryHandler) DeleteProfit(w http.ResponseWriter, r *http.Request) {
	updated := h.ledgerUC.DeleteProfit(chi.URLParam(r, "id"))
	h.recordDelete(domain.EntryKindProfit, updated)
	writeMutation(w, updated)
}

// UpsertExpense creates or updates an expense entry.
func (h *EntryHandler) UpsertExpense(w http.ResponseWriter, r *http.Request) {
	var req dto.ExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	updated := h.ledgerUC.UpsertExpense(req.ToUseCaseInput())
	h.recordUpsert(domain.EntryKindExpense, updated)
	writeMutation(w, updated)
}

// DeleteExpense removes an expense entry.
func (h *EntryHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	updated := h.ledgerUC.DeleteExpense(chi.URLParam(r, "id"))
	h.recordDelete(domain.EntryKindExpense, updated)
	writeMutation(w, updated)
}

// UpsertAdvance creates or updates an advance entry.
func (h *EntryHandler) UpsertAdvance(w http.ResponseWriter, r *http.Request) {
	var req dto.AdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	updated := h.ledgerUC.UpsertAdvance(req.ToUseCaseInput())
	h.recordUpsert(domain.EntryKindAdvance, updated)
	writeMutation(w, updated)
}

// DeleteAdvance removes an advance entry.
func (h *EntryHandler) DeleteAdvance(w http.ResponseWriter, r *http.Request) {
	updated := h.ledgerUC.DeleteAdvance(chi.URLParam(r, "id"))
	h.recordDelete(domain.EntryKindAdvance, updated)
	writeMutation(w, updated)
}

// UpsertDue creates or updates a due entry.
func (h *EntryHandler) UpsertDue(w http.ResponseWriter, r *http.Request) {
	var req dto.DueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	updated := h.ledgerUC.UpsertDue(req.ToUseCaseInput())
	h.recordUpsert(domain.EntryKindDue, updated)
	writeMutation(w, updated)
}

// DeleteDue removes a due entry.
func (h *EntryHandler) DeleteDue(w http.ResponseWriter, r *http.Request) {
	updated := h.ledgerUC.DeleteDue(chi.URLParam(r, "id"))
	h.recordDelete(domain.EntryKindDue, updated)
	writeMutation(w, updated)
}

// UpsertMoneyEntry creates or updates a cash-location entry.
func (h *EntryHandler) UpsertMoneyEntry(w http.ResponseWriter, r *http.Request) {
	var req dto.MoneyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	updated := h.ledgerUC.UpsertMoneyEntry(req.ToUseCaseInput())
	h.recordUpsert(domain.EntryKindMoney, updated)
	writeMutation(w, updated)
}

// DeleteMoneyEntry removes a cash-location entry.
func (h *EntryHandler) DeleteMoneyEntry(w http.ResponseWriter, r *http.Request) {
	updated := h.ledgerUC.DeleteMoneyEntry(chi.URLParam(r, "id"))
	h.recordDelete(domain.EntryKindMoney, updated)
	writeMutation(w, updated)
}

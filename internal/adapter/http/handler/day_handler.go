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

// DayService defines the day-level behavior needed by DayHandler.
type DayService interface {
	SelectDay(day domain.DayKey) domain.DayKey
	SelectedDayView() usecase.DayView
	Day(day domain.DayKey) (*domain.DayLedger, bool)
	SetOpeningBalance(value float64) bool
	FinalizeDay() usecase.FinalizeResult
}

// DayHandler handles day selection, opening balance and finalize.
type DayHandler struct {
	ledgerUC DayService
	metrics  *metrics.Metrics
}

// NewDayHandler creates a new DayHandler.
func NewDayHandler(ledgerUC DayService, m *metrics.Metrics) *DayHandler {
	return &DayHandler{ledgerUC: ledgerUC, metrics: m}
}

// Get returns the selected day's ledger, totals and mutability flags.
// The figures come from one atomic snapshot of the store, so they always
// describe the same state even under concurrent mutation.
func (h *DayHandler) Get(w http.ResponseWriter, r *http.Request) {
	view := h.ledgerUC.SelectedDayView()

	writeJSON(w, http.StatusOK, dto.DayResponse{
		Ledger:         view.Ledger,
		Totals:         view.Totals,
		Reconciliation: domain.ReconcileTotals(view.Totals),
		Editable:       view.Editable,
		CanUseModules:  view.CanUseModules,
	})
}

// Select changes the working day. Future dates clamp to today rather
// than failing.
func (h *DayHandler) Select(w http.ResponseWriter, r *http.Request) {
	var req dto.SelectDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	day, err := domain.ParseDayKey(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date", err.Error())
		return
	}

	chosen := h.ledgerUC.SelectDay(day)
	writeJSON(w, http.StatusOK, map[string]string{"selected_day": chosen.String()})
}

// GetByDate returns a read-only view of any recorded day.
func (h *DayHandler) GetByDate(w http.ResponseWriter, r *http.Request) {
	day, err := domain.ParseDayKey(chi.URLParam(r, "date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date", err.Error())
		return
	}

	ledger, ok := h.ledgerUC.Day(day)
	if !ok {
		writeError(w, http.StatusNotFound, "day not recorded", domain.ErrDayNotFound.Error())
		return
	}

	totals := domain.ComputeTotals(ledger)
	writeJSON(w, http.StatusOK, dto.DayResponse{
		Ledger:         ledger,
		Totals:         totals,
		Reconciliation: domain.ReconcileTotals(totals),
	})
}

// SetOpeningBalance sets the opening cash balance for the selected day.
func (h *DayHandler) SetOpeningBalance(w http.ResponseWriter, r *http.Request) {
	var req dto.OpeningBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	updated := h.ledgerUC.SetOpeningBalance(req.Value)
	if !updated && h.metrics != nil {
		h.metrics.GatingFailures.Inc()
	}
	writeMutation(w, updated)
}

// Finalize attempts to close the selected day. Failures are expected
// outcomes and return 200 with the discriminated result.
func (h *DayHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	result := h.ledgerUC.FinalizeDay()

	if h.metrics != nil {
		label := "ok"
		if !result.OK {
			label = result.Reason
		}
		h.metrics.FinalizeAttempts.WithLabelValues(label).Inc()
		if result.OK {
			h.metrics.DaysFinalized.Inc()
		}
	}

	writeJSON(w, http.StatusOK, result)
}

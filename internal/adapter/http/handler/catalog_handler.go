package handler

import (
	"net/http"

	"github.com/Aarifshaik/ganga-calc/internal/domain"
)

// CatalogService exposes the autocomplete catalogs.
type CatalogService interface {
	Catalogs() domain.Catalogs
}

// CatalogHandler serves autocomplete catalogs and the vehicle roster.
type CatalogHandler struct {
	ledgerUC CatalogService
	vehicles []domain.Vehicle
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(ledgerUC CatalogService, vehicles []domain.Vehicle) *CatalogHandler {
	return &CatalogHandler{ledgerUC: ledgerUC, vehicles: vehicles}
}

// Get returns the accumulated autocomplete catalogs.
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.ledgerUC.Catalogs())
}

// Vehicles returns the fixed vehicle roster.
func (h *CatalogHandler) Vehicles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.vehicles)
}

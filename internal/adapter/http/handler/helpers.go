package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Aarifshaik/ganga-calc/internal/adapter/http/dto"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// writeMutation maps a boolean mutation outcome: gating failures come
// back as 409 so clients can tell them from transport problems, but the
// body shape is identical either way.
func writeMutation(w http.ResponseWriter, updated bool) {
	status := http.StatusOK
	if !updated {
		status = http.StatusConflict
	}
	writeJSON(w, status, dto.MutationResponse{Updated: updated})
}

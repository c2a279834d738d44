package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/neuroclinic/lead-intake/internal/usecase"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps the use case error taxonomy onto HTTP. Callers only ever
// see "not authenticated", "not found", "bad input" or a generic failure.
func writeError(w http.ResponseWriter, err error) {
	if domainErr, ok := err.(*usecase.DomainError); ok {
		switch domainErr.Code {
		case "UNAUTHENTICATED":
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: domainErr.Message})
		case "LEAD_NOT_FOUND":
			writeJSON(w, http.StatusNotFound, errorResponse{Error: domainErr.Message})
		case "VALIDATION_ERROR":
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: domainErr.Message})
		default:
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: domainErr.Message})
		}
		return
	}

	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "operation failed"})
}

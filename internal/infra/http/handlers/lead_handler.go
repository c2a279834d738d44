package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	appmiddleware "github.com/neuroclinic/lead-intake/internal/infra/http/middleware"
	"github.com/neuroclinic/lead-intake/internal/usecase"
)

type LeadHandler struct {
	CreateUC *usecase.CreateLeadUseCase
	UpdateUC *usecase.UpdateLeadUseCase
	DeleteUC *usecase.DeleteLeadUseCase
	QueryUC  *usecase.LeadQueryUseCase
}

func NewLeadHandler(
	createUC *usecase.CreateLeadUseCase,
	updateUC *usecase.UpdateLeadUseCase,
	deleteUC *usecase.DeleteLeadUseCase,
	queryUC *usecase.LeadQueryUseCase,
) *LeadHandler {
	return &LeadHandler{
		CreateUC: createUC,
		UpdateUC: updateUC,
		DeleteUC: deleteUC,
		QueryUC:  queryUC,
	}
}

// POST /api/leads
func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}

	principalID := appmiddleware.GetPrincipalID(r.Context())

	output, err := h.CreateUC.Execute(r.Context(), principalID, input)
	if err != nil {
		writeError(w, err)
		return
	}

	appmiddleware.RecordLeadCreated()
	writeJSON(w, http.StatusCreated, output)
}

// GET /api/leads
func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	principalID := appmiddleware.GetPrincipalID(r.Context())

	leads, err := h.QueryUC.List(r.Context(), principalID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, leads)
}

// GET /api/leads/{id}
func (h *LeadHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	principalID := appmiddleware.GetPrincipalID(r.Context())

	lead, err := h.QueryUC.GetByID(r.Context(), principalID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	if lead == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "lead not found: " + id})
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

// PATCH /api/leads/{id}
func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input usecase.UpdateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}

	principalID := appmiddleware.GetPrincipalID(r.Context())

	lead, err := h.UpdateUC.Execute(r.Context(), principalID, id, input)
	if err != nil {
		writeError(w, err)
		return
	}

	if input.Status != nil {
		appmiddleware.RecordStatusChange(*input.Status)
	}
	writeJSON(w, http.StatusOK, lead)
}

// DELETE /api/leads/{id}
func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	principalID := appmiddleware.GetPrincipalID(r.Context())

	if err := h.DeleteUC.Execute(r.Context(), principalID, id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package handlers

import (
	"net/http"

	appmiddleware "github.com/neuroclinic/lead-intake/internal/infra/http/middleware"
	"github.com/neuroclinic/lead-intake/internal/usecase"
)

type StatsHandler struct {
	QueryUC *usecase.LeadQueryUseCase
}

func NewStatsHandler(queryUC *usecase.LeadQueryUseCase) *StatsHandler {
	return &StatsHandler{QueryUC: queryUC}
}

// GET /api/stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	principalID := appmiddleware.GetPrincipalID(r.Context())

	stats, err := h.QueryUC.GetStats(r.Context(), principalID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

package handlers

import (
	"net/http"

	"github.com/neuroclinic/lead-intake/internal/entity"
)

type MetadataHandler struct{}

func NewMetadataHandler() *MetadataHandler {
	return &MetadataHandler{}
}

type MetadataResponse struct {
	Statuses       []string `json:"statuses"`
	TreatmentTypes []string `json:"treatment_types"`
	Sources        []string `json:"sources"`
}

// GET /api/metadata
// The intake form populates its dropdowns from here. These lists describe
// the intended domain; none of them is enforced on write.
func (h *MetadataHandler) Handle(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MetadataResponse{
		Statuses:       entity.KnownStatuses,
		TreatmentTypes: entity.TreatmentTypes,
		Sources:        entity.LeadSources,
	})
}

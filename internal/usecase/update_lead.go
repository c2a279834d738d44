package usecase

import (
	"context"
	"log"

	"github.com/neuroclinic/lead-intake/internal/entity"
	"github.com/neuroclinic/lead-intake/internal/infra/queue"
)

type UpdateLeadUseCase struct {
	Repo     LeadRepositoryInterface
	Producer EventProducerInterface
}

func NewUpdateLeadUseCase(repo LeadRepositoryInterface, producer EventProducerInterface) *UpdateLeadUseCase {
	return &UpdateLeadUseCase{
		Repo:     repo,
		Producer: producer,
	}
}

// Execute applies only the fields present in the input. Status is a free
// string on purpose: any value, any transition (flagged with product, kept
// as-is until the pipeline rules are settled).
func (uc *UpdateLeadUseCase) Execute(ctx context.Context, principalID, id string, input UpdateLeadInput) (*entity.Lead, error) {
	if principalID == "" {
		return nil, ErrNotAuthenticated()
	}

	patch := entity.LeadPatch{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		Phone:          input.Phone,
		Country:        input.Country,
		TreatmentType:  input.TreatmentType,
		Budget:         input.Budget,
		Status:         input.Status,
		Source:         input.Source,
		Notes:          input.Notes,
		PreferredDate:  input.PreferredDate,
		MedicalHistory: input.MedicalHistory,
	}

	lead, err := uc.Repo.Patch(ctx, id, patch)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to update lead: " + err.Error(),
		}
	}
	if lead == nil {
		return nil, ErrLeadNotFound(id)
	}

	if input.Status != nil && uc.Producer != nil {
		err := uc.Producer.PublishLeadEvent(ctx, queue.LeadEventPayload{
			Event:         queue.EventStatusChanged,
			LeadID:        lead.ID,
			FirstName:     lead.FirstName,
			LastName:      lead.LastName,
			Email:         lead.Email,
			TreatmentType: lead.TreatmentType,
			Source:        lead.Source,
			Status:        lead.Status,
			AssignedTo:    lead.AssignedTo,
		})
		if err != nil {
			log.Printf("failed to publish lead.status_changed for %s: %v", lead.ID, err)
		}
	}

	return lead, nil
}

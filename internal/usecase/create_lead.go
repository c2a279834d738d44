package usecase

import (
	"context"
	"log"

	"github.com/neuroclinic/lead-intake/internal/entity"
	"github.com/neuroclinic/lead-intake/internal/infra/queue"
)

type CreateLeadUseCase struct {
	Repo     LeadRepositoryInterface
	Producer EventProducerInterface
}

func NewCreateLeadUseCase(repo LeadRepositoryInterface, producer EventProducerInterface) *CreateLeadUseCase {
	return &CreateLeadUseCase{
		Repo:     repo,
		Producer: producer,
	}
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, principalID string, input CreateLeadInput) (*CreateLeadOutput, error) {
	if principalID == "" {
		return nil, ErrNotAuthenticated()
	}

	validationErrors := ValidateCreateLeadInput(input)
	if len(validationErrors) > 0 {
		errMsg := "validation failed: "
		for _, e := range validationErrors {
			errMsg += e.Field + " (" + e.Message + "), "
		}
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: errMsg,
		}
	}

	// The factory forces status="new", assignedTo=principal and files=[];
	// whatever the caller sent for those is ignored.
	lead, err := entity.NewLead(
		input.FirstName,
		input.LastName,
		input.Email,
		input.Phone,
		input.Country,
		input.TreatmentType,
		input.Source,
		principalID,
	)
	if err != nil {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: err.Error(),
		}
	}

	lead.Budget = input.Budget
	lead.Notes = input.Notes
	lead.PreferredDate = input.PreferredDate
	lead.MedicalHistory = input.MedicalHistory

	if err := uc.Repo.Create(ctx, lead); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist lead: " + err.Error(),
		}
	}

	// Fire-and-forget: the lead is committed, a lost event only costs a
	// notification.
	if uc.Producer != nil {
		err := uc.Producer.PublishLeadEvent(ctx, queue.LeadEventPayload{
			Event:         queue.EventLeadCreated,
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
			log.Printf("failed to publish lead.created for %s: %v", lead.ID, err)
		}
	}

	return &CreateLeadOutput{
		ID:     lead.ID,
		Status: lead.Status,
	}, nil
}

package usecase

import (
	"context"

	"github.com/neuroclinic/lead-intake/internal/entity"
)

// LeadQueryUseCase covers the read-only side: list, point lookup and the
// pipeline stats. All three are snapshots, recomputed on every call.
type LeadQueryUseCase struct {
	Repo LeadRepositoryInterface
}

func NewLeadQueryUseCase(repo LeadRepositoryInterface) *LeadQueryUseCase {
	return &LeadQueryUseCase{Repo: repo}
}

// List returns every lead, newest first. The ordering is part of the API
// contract, not a presentation detail.
func (uc *LeadQueryUseCase) List(ctx context.Context, principalID string) ([]*entity.Lead, error) {
	if principalID == "" {
		return nil, ErrNotAuthenticated()
	}

	leads, err := uc.Repo.FindAll(ctx)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to list leads: " + err.Error(),
		}
	}

	return leads, nil
}

// GetByID returns (nil, nil) when the lead is absent.
func (uc *LeadQueryUseCase) GetByID(ctx context.Context, principalID, id string) (*entity.Lead, error) {
	if principalID == "" {
		return nil, ErrNotAuthenticated()
	}

	lead, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to load lead: " + err.Error(),
		}
	}

	return lead, nil
}

// GetStats scans the full lead set. Leads with a status outside the five
// known values count toward the total but land in no bucket.
func (uc *LeadQueryUseCase) GetStats(ctx context.Context, principalID string) (*StatsOutput, error) {
	if principalID == "" {
		return nil, ErrNotAuthenticated()
	}

	leads, err := uc.Repo.FindAll(ctx)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to load leads: " + err.Error(),
		}
	}

	stats := &StatsOutput{Total: len(leads)}
	for _, l := range leads {
		switch l.Status {
		case entity.StatusNew:
			stats.New++
		case entity.StatusContacted:
			stats.Contacted++
		case entity.StatusQualified:
			stats.Qualified++
		case entity.StatusConverted:
			stats.Converted++
		case entity.StatusLost:
			stats.Lost++
		}
	}

	return stats, nil
}

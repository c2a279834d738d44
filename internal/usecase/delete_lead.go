package usecase

import (
	"context"
	"log"
)

type DeleteLeadUseCase struct {
	Repo    LeadRepositoryInterface
	Storage FileStorageInterface
}

func NewDeleteLeadUseCase(repo LeadRepositoryInterface, storage FileStorageInterface) *DeleteLeadUseCase {
	return &DeleteLeadUseCase{
		Repo:    repo,
		Storage: storage,
	}
}

// Execute removes a lead and cascades over its attachments. There is no
// transaction spanning Postgres and the object store: every stored object
// is deleted best-effort first, then the row goes last. A failed object
// deletion is logged and never blocks the record deletion, so an orphaned
// object in the bucket is possible; nothing reconciles those today.
func (uc *DeleteLeadUseCase) Execute(ctx context.Context, principalID, id string) error {
	if principalID == "" {
		return ErrNotAuthenticated()
	}

	lead, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to load lead: " + err.Error(),
		}
	}
	if lead == nil {
		// Already gone. No-op, and no file deletions are attempted.
		return nil
	}

	for _, file := range lead.Files {
		if err := uc.Storage.Remove(ctx, file.FileID); err != nil {
			log.Printf("failed to delete stored object %s for lead %s: %v", file.FileID, id, err)
		}
	}

	if err := uc.Repo.Delete(ctx, id); err != nil {
		return &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to delete lead: " + err.Error(),
		}
	}

	return nil
}

package usecase

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/neuroclinic/lead-intake/internal/entity"
)

// LeadFileUseCase groups the attachment lifecycle: upload-slot issuance,
// attach, detach-with-deletion and URL resolution.
type LeadFileUseCase struct {
	Repo    LeadRepositoryInterface
	Storage FileStorageInterface
}

func NewLeadFileUseCase(repo LeadRepositoryInterface, storage FileStorageInterface) *LeadFileUseCase {
	return &LeadFileUseCase{
		Repo:    repo,
		Storage: storage,
	}
}

// AddFile appends an attachment to the lead. The binary itself was already
// uploaded out-of-band through the slot from GenerateUploadURL; here we only
// record the reference. The timestamp is set server-side.
func (uc *LeadFileUseCase) AddFile(ctx context.Context, principalID, leadID string, input AddFileInput) (*entity.Lead, error) {
	if principalID == "" {
		return nil, ErrNotAuthenticated()
	}

	lead, err := uc.Repo.FindByID(ctx, leadID)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to load lead: " + err.Error(),
		}
	}
	if lead == nil {
		return nil, ErrLeadNotFound(leadID)
	}

	attachment := entity.FileAttachment{
		FileID:     input.FileID,
		FileName:   input.FileName,
		FileType:   input.FileType,
		UploadedAt: time.Now(),
	}

	// Append keeps upload order; the sequence is replaced in one write.
	files := append(lead.Files, attachment)

	updated, err := uc.Repo.UpdateFiles(ctx, leadID, files)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist attachment: " + err.Error(),
		}
	}
	if updated == nil {
		return nil, ErrLeadNotFound(leadID)
	}

	return updated, nil
}

// RemoveFile drops every attachment entry matching fileID (at most one in
// practice), commits the row, then deletes the stored object. The object
// deletion is best-effort: if it fails the record change stands and the
// orphan is only logged.
func (uc *LeadFileUseCase) RemoveFile(ctx context.Context, principalID, leadID, fileID string) error {
	if principalID == "" {
		return ErrNotAuthenticated()
	}

	lead, err := uc.Repo.FindByID(ctx, leadID)
	if err != nil {
		return &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to load lead: " + err.Error(),
		}
	}
	if lead == nil {
		return ErrLeadNotFound(leadID)
	}

	files := make([]entity.FileAttachment, 0, len(lead.Files))
	for _, f := range lead.Files {
		if f.FileID != fileID {
			files = append(files, f)
		}
	}

	if _, err := uc.Repo.UpdateFiles(ctx, leadID, files); err != nil {
		return &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist attachment removal: " + err.Error(),
		}
	}

	if err := uc.Storage.Remove(ctx, fileID); err != nil {
		log.Printf("failed to delete stored object %s for lead %s: %v", fileID, leadID, err)
	}

	return nil
}

// GenerateUploadURL issues a fresh time-boxed upload slot. No lead is
// touched; the caller uploads out-of-band and then calls AddFile.
func (uc *LeadFileUseCase) GenerateUploadURL(ctx context.Context, principalID string) (*UploadSlotOutput, error) {
	if principalID == "" {
		return nil, ErrNotAuthenticated()
	}

	fileID := uuid.New().String()

	uploadURL, err := uc.Storage.CreateSignedUploadURL(ctx, fileID)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "STORAGE_ERROR",
			Message: "failed to create upload URL: " + err.Error(),
		}
	}

	return &UploadSlotOutput{
		UploadURL: uploadURL,
		FileID:    fileID,
	}, nil
}

// GetFileURL resolves a stored object to a retrievable address. A missing
// object yields an empty URL, not an error.
func (uc *LeadFileUseCase) GetFileURL(ctx context.Context, principalID, fileID string) (*FileURLOutput, error) {
	if principalID == "" {
		return nil, ErrNotAuthenticated()
	}

	url, err := uc.Storage.GetSignedURL(ctx, fileID)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "STORAGE_ERROR",
			Message: "failed to resolve file URL: " + err.Error(),
		}
	}

	return &FileURLOutput{URL: url}, nil
}

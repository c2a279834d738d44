package usecase

import (
	"context"

	"github.com/neuroclinic/lead-intake/internal/entity"
	"github.com/neuroclinic/lead-intake/internal/infra/queue"
)

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *entity.Lead) error

	// FindByID returns (nil, nil) when no lead exists at id.
	FindByID(ctx context.Context, id string) (*entity.Lead, error)

	// FindAll returns every lead ordered by creation time, newest first.
	FindAll(ctx context.Context) ([]*entity.Lead, error)

	// Patch applies the non-nil fields atomically and returns the refreshed
	// record, or (nil, nil) when no lead exists at id.
	Patch(ctx context.Context, id string, patch entity.LeadPatch) (*entity.Lead, error)

	// UpdateFiles replaces the attachment sequence in a single write and
	// returns the refreshed record, or (nil, nil) when no lead exists at id.
	UpdateFiles(ctx context.Context, id string, files []entity.FileAttachment) (*entity.Lead, error)

	// Delete is a no-op when the lead is already gone.
	Delete(ctx context.Context, id string) error
}

// FileStorageInterface is the contract against the binary-object store
// (Supabase Storage in production). The core only needs three primitives.
type FileStorageInterface interface {
	// CreateSignedUploadURL issues a time-boxed upload slot for objectKey.
	CreateSignedUploadURL(ctx context.Context, objectKey string) (string, error)

	// GetSignedURL resolves objectKey to a retrievable address, or "" when
	// the object no longer exists.
	GetSignedURL(ctx context.Context, objectKey string) (string, error)

	// Remove deletes the object. Best-effort from the caller's point of
	// view: cascade paths log the error and move on.
	Remove(ctx context.Context, objectKey string) error
}

type EventProducerInterface interface {
	PublishLeadEvent(ctx context.Context, payload queue.LeadEventPayload) error
}

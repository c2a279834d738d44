package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/neuroclinic/lead-intake/internal/entity"
)

func TestAddFile_AppendsPreservingOrder(t *testing.T) {
	repo := new(MockLeadRepository)
	storage := new(MockFileStorage)
	uc := NewLeadFileUseCase(repo, storage)

	existing := leadWithFiles("lead-1", "obj1")
	repo.On("FindByID", mock.Anything, "lead-1").Return(existing, nil)

	var persisted []entity.FileAttachment
	repo.On("UpdateFiles", mock.Anything, "lead-1", mock.Anything).
		Run(func(args mock.Arguments) {
			persisted = args.Get(2).([]entity.FileAttachment)
		}).
		Return(existing, nil)

	before := time.Now()
	_, err := uc.AddFile(context.Background(), "user-1", "lead-1", AddFileInput{
		FileID:   "obj2",
		FileName: "scan.pdf",
		FileType: "application/pdf",
	})

	assert.NoError(t, err)
	assert.Len(t, persisted, 2)
	assert.Equal(t, "obj1", persisted[0].FileID)
	assert.Equal(t, "obj2", persisted[1].FileID)
	assert.Equal(t, "scan.pdf", persisted[1].FileName)
	// Timestamp comes from the server, never from the caller.
	assert.False(t, persisted[1].UploadedAt.Before(before))
}

func TestAddFile_LeadNotFound(t *testing.T) {
	repo := new(MockLeadRepository)
	uc := NewLeadFileUseCase(repo, new(MockFileStorage))

	repo.On("FindByID", mock.Anything, "ghost").Return(nil, nil)

	lead, err := uc.AddFile(context.Background(), "user-1", "ghost", AddFileInput{FileID: "obj1"})

	assert.Nil(t, lead)
	assert.Equal(t, "LEAD_NOT_FOUND", err.(*DomainError).Code)
	repo.AssertNotCalled(t, "UpdateFiles", mock.Anything, mock.Anything, mock.Anything)
}

func TestRemoveFile_FiltersEntryThenDeletesObject(t *testing.T) {
	repo := new(MockLeadRepository)
	storage := new(MockFileStorage)
	uc := NewLeadFileUseCase(repo, storage)

	lead := leadWithFiles("lead-1", "obj1", "obj2")
	repo.On("FindByID", mock.Anything, "lead-1").Return(lead, nil)

	var persisted []entity.FileAttachment
	repo.On("UpdateFiles", mock.Anything, "lead-1", mock.Anything).
		Run(func(args mock.Arguments) {
			persisted = args.Get(2).([]entity.FileAttachment)
		}).
		Return(lead, nil)
	storage.On("Remove", mock.Anything, "obj1").Return(nil)

	err := uc.RemoveFile(context.Background(), "user-1", "lead-1", "obj1")

	assert.NoError(t, err)
	assert.Len(t, persisted, 1)
	assert.Equal(t, "obj2", persisted[0].FileID)
	storage.AssertCalled(t, "Remove", mock.Anything, "obj1")
}

func TestRemoveFile_ObjectDeletionFailureIsSwallowed(t *testing.T) {
	repo := new(MockLeadRepository)
	storage := new(MockFileStorage)
	uc := NewLeadFileUseCase(repo, storage)

	lead := leadWithFiles("lead-1", "obj1")
	repo.On("FindByID", mock.Anything, "lead-1").Return(lead, nil)
	repo.On("UpdateFiles", mock.Anything, "lead-1", mock.Anything).Return(lead, nil)
	storage.On("Remove", mock.Anything, "obj1").Return(errors.New("bucket unreachable"))

	// The record-level removal committed; the physical delete failing is
	// logged, not rolled back.
	err := uc.RemoveFile(context.Background(), "user-1", "lead-1", "obj1")

	assert.NoError(t, err)
}

func TestRemoveFile_LeadNotFound(t *testing.T) {
	repo := new(MockLeadRepository)
	storage := new(MockFileStorage)
	uc := NewLeadFileUseCase(repo, storage)

	repo.On("FindByID", mock.Anything, "ghost").Return(nil, nil)

	err := uc.RemoveFile(context.Background(), "user-1", "ghost", "obj1")

	assert.Equal(t, "LEAD_NOT_FOUND", err.(*DomainError).Code)
	storage.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}

func TestGenerateUploadURL_ReturnsSlot(t *testing.T) {
	storage := new(MockFileStorage)
	uc := NewLeadFileUseCase(new(MockLeadRepository), storage)

	storage.On("CreateSignedUploadURL", mock.Anything, mock.AnythingOfType("string")).
		Return("https://storage.example/upload?token=abc", nil)

	slot, err := uc.GenerateUploadURL(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Equal(t, "https://storage.example/upload?token=abc", slot.UploadURL)
	assert.NotEmpty(t, slot.FileID)
}

func TestGenerateUploadURL_StorageFailureAborts(t *testing.T) {
	storage := new(MockFileStorage)
	uc := NewLeadFileUseCase(new(MockLeadRepository), storage)

	storage.On("CreateSignedUploadURL", mock.Anything, mock.Anything).
		Return("", errors.New("storage down"))

	slot, err := uc.GenerateUploadURL(context.Background(), "user-1")

	assert.Nil(t, slot)
	assert.True(t, IsTechnicalError(err))
	assert.Equal(t, "STORAGE_ERROR", err.(*TechnicalError).Code)
}

func TestGetFileURL_AbsentIsEmptyNotError(t *testing.T) {
	storage := new(MockFileStorage)
	uc := NewLeadFileUseCase(new(MockLeadRepository), storage)

	storage.On("GetSignedURL", mock.Anything, "gone").Return("", nil)

	output, err := uc.GetFileURL(context.Background(), "user-1", "gone")

	assert.NoError(t, err)
	assert.Empty(t, output.URL)
}

func TestFileOps_Unauthenticated(t *testing.T) {
	repo := new(MockLeadRepository)
	storage := new(MockFileStorage)
	uc := NewLeadFileUseCase(repo, storage)

	_, err := uc.AddFile(context.Background(), "", "lead-1", AddFileInput{})
	assert.Equal(t, "UNAUTHENTICATED", err.(*DomainError).Code)

	err = uc.RemoveFile(context.Background(), "", "lead-1", "obj1")
	assert.Equal(t, "UNAUTHENTICATED", err.(*DomainError).Code)

	_, err = uc.GenerateUploadURL(context.Background(), "")
	assert.Equal(t, "UNAUTHENTICATED", err.(*DomainError).Code)

	_, err = uc.GetFileURL(context.Background(), "", "obj1")
	assert.Equal(t, "UNAUTHENTICATED", err.(*DomainError).Code)

	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	storage.AssertNotCalled(t, "CreateSignedUploadURL", mock.Anything, mock.Anything)
}

package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/neuroclinic/lead-intake/internal/entity"
)

func TestGetStats_BucketsPerStatus(t *testing.T) {
	repo := new(MockLeadRepository)
	uc := NewLeadQueryUseCase(repo)

	leads := []*entity.Lead{
		{ID: "1", Status: entity.StatusNew},
		{ID: "2", Status: entity.StatusNew},
		{ID: "3", Status: entity.StatusContacted},
		{ID: "4", Status: entity.StatusQualified},
		{ID: "5", Status: entity.StatusConverted},
		{ID: "6", Status: entity.StatusLost},
	}
	repo.On("FindAll", mock.Anything).Return(leads, nil)

	stats, err := uc.GetStats(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, 2, stats.New)
	assert.Equal(t, 1, stats.Contacted)
	assert.Equal(t, 1, stats.Qualified)
	assert.Equal(t, 1, stats.Converted)
	assert.Equal(t, 1, stats.Lost)
}

func TestGetStats_UnknownStatusCountsInTotalOnly(t *testing.T) {
	repo := new(MockLeadRepository)
	uc := NewLeadQueryUseCase(repo)

	leads := []*entity.Lead{
		{ID: "1", Status: entity.StatusNew},
		{ID: "2", Status: "on-hold"}, // outside the five known values
	}
	repo.On("FindAll", mock.Anything).Return(leads, nil)

	stats, err := uc.GetStats(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	sum := stats.New + stats.Contacted + stats.Qualified + stats.Converted + stats.Lost
	assert.Equal(t, 1, sum)
}

func TestList_PassesThroughRepositoryOrder(t *testing.T) {
	repo := new(MockLeadRepository)
	uc := NewLeadQueryUseCase(repo)

	leads := []*entity.Lead{{ID: "newest"}, {ID: "older"}, {ID: "oldest"}}
	repo.On("FindAll", mock.Anything).Return(leads, nil)

	got, err := uc.List(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Equal(t, "newest", got[0].ID)
	assert.Equal(t, "oldest", got[2].ID)
}

func TestGetByID_AbsentIsNilNotError(t *testing.T) {
	repo := new(MockLeadRepository)
	uc := NewLeadQueryUseCase(repo)

	repo.On("FindByID", mock.Anything, "ghost").Return(nil, nil)

	lead, err := uc.GetByID(context.Background(), "user-1", "ghost")

	assert.NoError(t, err)
	assert.Nil(t, lead)
}

func TestQueries_Unauthenticated(t *testing.T) {
	repo := new(MockLeadRepository)
	uc := NewLeadQueryUseCase(repo)

	_, err := uc.List(context.Background(), "")
	assert.Equal(t, "UNAUTHENTICATED", err.(*DomainError).Code)

	_, err = uc.GetByID(context.Background(), "", "lead-1")
	assert.Equal(t, "UNAUTHENTICATED", err.(*DomainError).Code)

	_, err = uc.GetStats(context.Background(), "")
	assert.Equal(t, "UNAUTHENTICATED", err.(*DomainError).Code)

	repo.AssertNotCalled(t, "FindAll", mock.Anything)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

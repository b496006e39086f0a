package impl

import (
	"context"
	"testing"

	"givebox/internal/domain/entity"
	domainerrors "givebox/internal/domain/errors"
	"givebox/internal/domain/repository"
	mockRepo "givebox/internal/mocks/repository"
	"givebox/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCharityService(t *testing.T, charityRepo *mockRepo.MockCharityRepository) usecase.CharityUsecase {
	t.Helper()

	return NewCharityService(CharityServiceParams{
		CharityRepo: charityRepo,
		Logger:      newDiscardLogger(),
	})
}

func TestCharityService_CreateProgram_DefaultsToActive(t *testing.T) {
	charityRepo := mockRepo.NewMockCharityRepository(t)
	service := newCharityService(t, charityRepo)

	ctx := context.Background()
	charityRepo.On("CreateProgram", ctx, mock.MatchedBy(func(p *entity.CharityProgram) bool {
		return p.Status == entity.ProgramActive
	})).Return(nil)

	program, err := service.CreateProgram(ctx, usecase.ProgramInput{
		Name:         "Warm Winter Meals",
		TargetAmount: decimal.NewFromInt(50000000),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ProgramActive, program.Status)
}

func TestCharityService_DeleteProgram_StillReferenced(t *testing.T) {
	charityRepo := mockRepo.NewMockCharityRepository(t)
	service := newCharityService(t, charityRepo)

	ctx := context.Background()
	id := uuid.New()
	charityRepo.On("DeleteProgram", ctx, id).Return(repository.ErrProgramInUse)

	err := service.DeleteProgram(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrProgramInUse)
}

func TestCharityService_DeleteProgram_NotFound(t *testing.T) {
	charityRepo := mockRepo.NewMockCharityRepository(t)
	service := newCharityService(t, charityRepo)

	ctx := context.Background()
	id := uuid.New()
	charityRepo.On("DeleteProgram", ctx, id).Return(repository.ErrProgramNotFound)

	err := service.DeleteProgram(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrProgramNotFound)
}

func TestCharityService_RecordDonation_InvalidType(t *testing.T) {
	charityRepo := mockRepo.NewMockCharityRepository(t)
	service := newCharityService(t, charityRepo)

	_, err := service.RecordDonation(context.Background(), usecase.DonationInput{
		Amount:       decimal.NewFromInt(10000),
		DonationType: entity.DonationType("FROM_THIN_AIR"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	charityRepo.AssertNotCalled(t, "CreateDonation", mock.Anything, mock.Anything)
}

func TestCharityService_RecordDonation_FromProduct(t *testing.T) {
	charityRepo := mockRepo.NewMockCharityRepository(t)
	service := newCharityService(t, charityRepo)

	ctx := context.Background()
	programID := uuid.New()
	charityRepo.On("CreateDonation", ctx, mock.MatchedBy(func(d *entity.DonationHistory) bool {
		return d.DonationType == entity.DonationFromProduct && d.ProgramID == programID
	})).Return(nil)

	donation, err := service.RecordDonation(ctx, usecase.DonationInput{
		ProgramID:    programID,
		Amount:       decimal.NewFromInt(67500),
		DonationType: entity.DonationFromProduct,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DonationFromProduct, donation.DonationType)
}

func TestCharityService_GetDisbursement_NotFound(t *testing.T) {
	charityRepo := mockRepo.NewMockCharityRepository(t)
	service := newCharityService(t, charityRepo)

	ctx := context.Background()
	id := uuid.New()
	charityRepo.On("FindDisbursementByID", ctx, id).Return(nil, repository.ErrDisbursementNotFound)

	_, err := service.GetDisbursement(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrDisbursementNotFound)
}

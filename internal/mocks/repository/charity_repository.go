package repository

import (
	"context"

	"givebox/internal/domain/entity"
	"givebox/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCharityRepository mocks repository.CharityRepository.
type MockCharityRepository struct {
	mock.Mock
}

func NewMockCharityRepository(t testingT) *MockCharityRepository {
	m := &MockCharityRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCharityRepository) FindProgramByID(ctx context.Context, id uuid.UUID) (*entity.CharityProgram, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.CharityProgram), args.Error(1)
}

func (m *MockCharityRepository) ListPrograms(ctx context.Context, query repository.ListProgramsQuery) ([]*entity.CharityProgram, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}

	return args.Get(0).([]*entity.CharityProgram), args.Get(1).(int64), args.Error(2)
}

func (m *MockCharityRepository) CreateProgram(ctx context.Context, program *entity.CharityProgram) error {
	return m.Called(ctx, program).Error(0)
}

func (m *MockCharityRepository) UpdateProgram(ctx context.Context, program *entity.CharityProgram) error {
	return m.Called(ctx, program).Error(0)
}

func (m *MockCharityRepository) DeleteProgram(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCharityRepository) CreateDonation(ctx context.Context, donation *entity.DonationHistory) error {
	return m.Called(ctx, donation).Error(0)
}

func (m *MockCharityRepository) FindDonationByID(ctx context.Context, id uuid.UUID) (*entity.DonationHistory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.DonationHistory), args.Error(1)
}

func (m *MockCharityRepository) ListDonations(ctx context.Context, query repository.ListDonationsQuery) ([]*entity.DonationHistory, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}

	return args.Get(0).([]*entity.DonationHistory), args.Get(1).(int64), args.Error(2)
}

func (m *MockCharityRepository) DeleteDonation(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCharityRepository) CreateDisbursement(ctx context.Context, d *entity.Disbursement) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockCharityRepository) FindDisbursementByID(ctx context.Context, id uuid.UUID) (*entity.Disbursement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Disbursement), args.Error(1)
}

func (m *MockCharityRepository) ListDisbursements(ctx context.Context, search string, programID *uuid.UUID, page repository.Page) ([]*entity.Disbursement, int64, error) {
	args := m.Called(ctx, search, programID, page)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}

	return args.Get(0).([]*entity.Disbursement), args.Get(1).(int64), args.Error(2)
}

func (m *MockCharityRepository) UpdateDisbursement(ctx context.Context, d *entity.Disbursement) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockCharityRepository) DeleteDisbursement(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

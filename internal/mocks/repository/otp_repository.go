package repository

import (
	"context"

	"givebox/internal/domain/entity"
	"givebox/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockOTPRepository mocks repository.OTPRepository.
type MockOTPRepository struct {
	mock.Mock
}

func NewMockOTPRepository(t testingT) *MockOTPRepository {
	m := &MockOTPRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOTPRepository) Create(ctx context.Context, otp *entity.OTPVerification) error {
	return m.Called(ctx, otp).Error(0)
}

func (m *MockOTPRepository) FindLatestByEmail(ctx context.Context, email string) (*entity.OTPVerification, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.OTPVerification), args.Error(1)
}

func (m *MockOTPRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockOTPRepository) List(ctx context.Context, search string, isUsed *bool, page repository.Page) ([]*entity.OTPVerification, int64, error) {
	args := m.Called(ctx, search, isUsed, page)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}

	return args.Get(0).([]*entity.OTPVerification), args.Get(1).(int64), args.Error(2)
}

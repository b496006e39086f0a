package repository

import (
	"context"

	"givebox/internal/domain/entity"
	"givebox/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockLoyaltyRepository mocks repository.LoyaltyRepository.
type MockLoyaltyRepository struct {
	mock.Mock
}

func NewMockLoyaltyRepository(t testingT) *MockLoyaltyRepository {
	m := &MockLoyaltyRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockLoyaltyRepository) FindBalance(ctx context.Context, userID uuid.UUID) (*entity.LovePointBalance, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.LovePointBalance), args.Error(1)
}

func (m *MockLoyaltyRepository) ListBalances(ctx context.Context, page repository.Page) ([]*entity.LovePointBalance, int64, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}

	return args.Get(0).([]*entity.LovePointBalance), args.Get(1).(int64), args.Error(2)
}

func (m *MockLoyaltyRepository) UpsertBalance(ctx context.Context, balance *entity.LovePointBalance) error {
	return m.Called(ctx, balance).Error(0)
}

func (m *MockLoyaltyRepository) AdjustBalance(ctx context.Context, userID uuid.UUID, delta int) error {
	return m.Called(ctx, userID, delta).Error(0)
}

func (m *MockLoyaltyRepository) AppendHistory(ctx context.Context, h *entity.LovePointHistory) error {
	return m.Called(ctx, h).Error(0)
}

func (m *MockLoyaltyRepository) ListHistory(ctx context.Context, query repository.ListPointHistoryQuery) ([]*entity.LovePointHistory, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}

	return args.Get(0).([]*entity.LovePointHistory), args.Get(1).(int64), args.Error(2)
}

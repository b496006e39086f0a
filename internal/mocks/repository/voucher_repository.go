package repository

import (
	"context"

	"givebox/internal/domain/entity"
	"givebox/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockVoucherRepository mocks repository.VoucherRepository.
type MockVoucherRepository struct {
	mock.Mock
}

func NewMockVoucherRepository(t testingT) *MockVoucherRepository {
	m := &MockVoucherRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockVoucherRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Voucher, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) List(ctx context.Context, query repository.ListVouchersQuery) ([]*entity.Voucher, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}

	return args.Get(0).([]*entity.Voucher), args.Get(1).(int64), args.Error(2)
}

func (m *MockVoucherRepository) Create(ctx context.Context, voucher *entity.Voucher) error {
	return m.Called(ctx, voucher).Error(0)
}

func (m *MockVoucherRepository) Update(ctx context.Context, voucher *entity.Voucher) error {
	return m.Called(ctx, voucher).Error(0)
}

func (m *MockVoucherRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockVoucherRepository) CreateRedeemedOffer(ctx context.Context, offer *entity.RedeemedOffer) error {
	return m.Called(ctx, offer).Error(0)
}

func (m *MockVoucherRepository) FindRedeemedOfferByID(ctx context.Context, id uuid.UUID) (*entity.RedeemedOffer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.RedeemedOffer), args.Error(1)
}

func (m *MockVoucherRepository) FindRedeemedOfferByCode(ctx context.Context, code string) (*entity.RedeemedOffer, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.RedeemedOffer), args.Error(1)
}

func (m *MockVoucherRepository) ListRedeemedOffers(ctx context.Context, query repository.ListRedeemedOffersQuery) ([]*entity.RedeemedOffer, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}

	return args.Get(0).([]*entity.RedeemedOffer), args.Get(1).(int64), args.Error(2)
}

func (m *MockVoucherRepository) SetUsageStatus(ctx context.Context, id uuid.UUID, status entity.RedeemedStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockVoucherRepository) DeleteRedeemedOffer(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

package repository

import (
	"context"

	"givebox/internal/domain/entity"
	"givebox/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository mocks repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func NewMockProductRepository(t testingT) *MockProductRepository {
	m := &MockProductRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context, query repository.ListProductsQuery) ([]*entity.Product, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}

	return args.Get(0).([]*entity.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProductRepository) SetPrice(ctx context.Context, id uuid.UUID, price decimal.Decimal) error {
	return m.Called(ctx, id, price).Error(0)
}

func (m *MockProductRepository) SetStatus(ctx context.Context, id uuid.UUID, status entity.ProductStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

// MockReviewRepository mocks repository.ReviewRepository.
type MockReviewRepository struct {
	mock.Mock
}

func NewMockReviewRepository(t testingT) *MockReviewRepository {
	m := &MockReviewRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *MockReviewRepository) List(ctx context.Context, query repository.ListReviewsQuery) ([]*entity.Review, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}

	return args.Get(0).([]*entity.Review), args.Get(1).(int64), args.Error(2)
}

func (m *MockReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *MockReviewRepository) Update(ctx context.Context, review *entity.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockReviewRepository) SetDisplayStatus(ctx context.Context, id uuid.UUID, status entity.ReviewStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

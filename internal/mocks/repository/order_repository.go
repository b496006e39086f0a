package repository

import (
	"context"

	"givebox/internal/domain/entity"
	"givebox/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository mocks repository.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func NewMockOrderRepository(t testingT) *MockOrderRepository {
	m := &MockOrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByCode(ctx context.Context, code string) (*entity.Order, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, query repository.ListOrdersQuery) ([]*entity.Order, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}

	return args.Get(0).([]*entity.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, order *entity.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockOrderRepository) SetStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockOrderRepository) CreateDetail(ctx context.Context, detail *entity.OrderDetail) error {
	return m.Called(ctx, detail).Error(0)
}

func (m *MockOrderRepository) DeleteDetail(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockOrderRepository) AppendStatusHistory(ctx context.Context, h *entity.OrderStatusHistory) error {
	return m.Called(ctx, h).Error(0)
}

func (m *MockOrderRepository) ListStatusHistory(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderStatusHistory, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.OrderStatusHistory), args.Error(1)
}

// MockCartRepository mocks repository.CartRepository.
type MockCartRepository struct {
	mock.Mock
}

func NewMockCartRepository(t testingT) *MockCartRepository {
	m := &MockCartRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCartRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ShoppingCart, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.ShoppingCart), args.Error(1)
}

func (m *MockCartRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ShoppingCart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.ShoppingCart), args.Error(1)
}

func (m *MockCartRepository) List(ctx context.Context, search string, page repository.Page) ([]*entity.ShoppingCart, int64, error) {
	args := m.Called(ctx, search, page)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}

	return args.Get(0).([]*entity.ShoppingCart), args.Get(1).(int64), args.Error(2)
}

func (m *MockCartRepository) Create(ctx context.Context, item *entity.ShoppingCart) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockCartRepository) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	return m.Called(ctx, id, quantity).Error(0)
}

func (m *MockCartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

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

func newOrderService(t *testing.T, orderRepo *mockRepo.MockOrderRepository, cartRepo *mockRepo.MockCartRepository, userRepo *mockRepo.MockUserRepository) usecase.OrderUsecase {
	t.Helper()

	return NewOrderService(OrderServiceParams{
		TxManager: &mockRepo.StubTransactionManager{
			Factory: &mockRepo.StubRepositoryFactory{Orders: orderRepo, Carts: cartRepo, Users: userRepo},
		},
		OrderRepo: orderRepo,
		CartRepo:  cartRepo,
		UserRepo:  userRepo,
		Logger:    newDiscardLogger(),
	})
}

func TestOrderService_CreateOrder_DefaultsStatusToNew(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newOrderService(t, orderRepo, cartRepo, userRepo)

	ctx := context.Background()
	productID := uuid.New()

	orderRepo.On("Create", ctx, mock.MatchedBy(func(o *entity.Order) bool {
		return o.OrderStatus == entity.OrderNew && len(o.Details) == 1
	})).Return(nil)

	order, err := service.CreateOrder(ctx, usecase.CreateOrderInput{
		OrderCode:     "GB-2026-0001",
		TotalAmount:   decimal.NewFromInt(350000),
		PaymentMethod: entity.PaymentCOD,
		Details: []usecase.OrderDetailInput{
			{ProductID: &productID, Quantity: 1, PriceAtPurchase: decimal.NewFromInt(350000)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderNew, order.OrderStatus)
}

func TestOrderService_ChangeOrderStatus_AdminWritesAuditTrail(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newOrderService(t, orderRepo, cartRepo, userRepo)

	ctx := context.Background()
	orderID := uuid.New()
	admin := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin, IsStaff: true, IsActive: true}

	userRepo.On("FindByID", ctx, admin.ID).Return(admin, nil)
	orderRepo.On("SetStatus", ctx, orderID, entity.OrderShipping).Return(nil)
	orderRepo.On("AppendStatusHistory", ctx, mock.MatchedBy(func(h *entity.OrderStatusHistory) bool {
		return h.OrderID == orderID && h.NewStatus == entity.OrderShipping && h.UpdatedBy != nil && *h.UpdatedBy == admin.ID
	})).Return(nil)

	err := service.ChangeOrderStatus(ctx, orderID, entity.OrderShipping, admin.ID)
	require.NoError(t, err)
}

func TestOrderService_ChangeOrderStatus_RejectsNonAdmin(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newOrderService(t, orderRepo, cartRepo, userRepo)

	ctx := context.Background()
	customer := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer, IsActive: true}

	userRepo.On("FindByID", ctx, customer.ID).Return(customer, nil)

	err := service.ChangeOrderStatus(ctx, uuid.New(), entity.OrderDelivered, customer.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	orderRepo.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
	orderRepo.AssertNotCalled(t, "AppendStatusHistory", mock.Anything, mock.Anything)
}

func TestOrderService_ChangeOrderStatus_RejectsInvalidStatus(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newOrderService(t, orderRepo, cartRepo, userRepo)

	err := service.ChangeOrderStatus(context.Background(), uuid.New(), entity.OrderStatus("TELEPORTED"), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newOrderService(t, orderRepo, cartRepo, userRepo)

	ctx := context.Background()
	id := uuid.New()
	orderRepo.On("FindByID", ctx, id).Return(nil, repository.ErrOrderNotFound)

	_, err := service.GetOrder(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_AddCartItem_RejectsNonPositiveQuantity(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newOrderService(t, orderRepo, cartRepo, userRepo)

	_, err := service.AddCartItem(context.Background(), usecase.CartItemInput{
		UserID:    uuid.New(),
		ProductID: uuid.New(),
		Quantity:  0,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValueOutOfRange)
	cartRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_UpdateCartQuantity_NotFound(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newOrderService(t, orderRepo, cartRepo, userRepo)

	ctx := context.Background()
	id := uuid.New()
	cartRepo.On("UpdateQuantity", ctx, id, 3).Return(repository.ErrCartItemNotFound)

	err := service.UpdateCartQuantity(ctx, id, 3)
	assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
}

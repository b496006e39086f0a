package impl

import (
	"context"
	"log/slog"

	deliverycontext "givebox/internal/delivery/context"
	"givebox/internal/domain/entity"
	domainerrors "givebox/internal/domain/errors"
	"givebox/internal/domain/repository"
	"givebox/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	CartRepo  repository.CartRepository
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		cartRepo:  params.CartRepo,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder persists a new order with its detail lines in one insert.
func (srv *orderService) CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*entity.Order, error) {
	order := &entity.Order{
		OrderCode:         input.OrderCode,
		UserID:            input.UserID,
		TotalAmount:       input.TotalAmount,
		ShippingAddressID: input.ShippingAddressID,
		PaymentMethod:     input.PaymentMethod,
		OrderStatus:       input.OrderStatus,
		AppliedVoucherID:  input.AppliedVoucherID,
		DonateVoucher:     input.DonateVoucher,
	}
	if order.OrderStatus == "" {
		order.OrderStatus = entity.OrderNew
	}

	for _, detail := range input.Details {
		order.Details = append(order.Details, &entity.OrderDetail{
			ProductID:       detail.ProductID,
			Quantity:        detail.Quantity,
			PriceAtPurchase: detail.PriceAtPurchase,
		})
	}

	if err := srv.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order created", slog.Any("orderID", order.ID), slog.String("code", order.OrderCode))

	return order, nil
}

// GetOrder retrieves an order with its detail lines.
func (srv *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to get order")
	}

	return order, nil
}

// GetOrderByCode retrieves an order by its unique code.
func (srv *orderService) GetOrderByCode(ctx context.Context, code string) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to get order by code")
	}

	return order, nil
}

// ListOrders returns one page of orders for the admin list view.
func (srv *orderService) ListOrders(ctx context.Context, query repository.ListOrdersQuery) (*usecase.OrderListOutput, error) {
	orders, total, err := srv.orderRepo.List(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return &usecase.OrderListOutput{Orders: orders, Total: total}, nil
}

// UpdateOrder modifies an existing order. The order code never changes.
func (srv *orderService) UpdateOrder(ctx context.Context, input usecase.UpdateOrderInput) (*entity.Order, error) {
	order := &entity.Order{
		ID:                input.ID,
		UserID:            input.UserID,
		TotalAmount:       input.TotalAmount,
		ShippingAddressID: input.ShippingAddressID,
		PaymentMethod:     input.PaymentMethod,
		OrderStatus:       input.OrderStatus,
		AppliedVoucherID:  input.AppliedVoucherID,
		DonateVoucher:     input.DonateVoucher,
	}

	if err := srv.orderRepo.Update(ctx, order); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, err
	}

	return srv.GetOrder(ctx, input.ID)
}

// DeleteOrder removes an order; detail lines and status history cascade.
func (srv *orderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	if err := srv.orderRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return err
	}

	srv.log(ctx).Info("Order deleted", slog.Any("orderID", id))

	return nil
}

// ChangeOrderStatus writes the new status and appends the audit trail row
// in one transaction. The acting user must hold the ADMIN role.
func (srv *orderService) ChangeOrderStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus, updatedBy uuid.UUID) error {
	if !status.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid order status")
	}

	actor, err := srv.userRepo.FindByID(ctx, updatedBy)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to load acting user")
	}
	if !actor.IsAdmin() {
		return domainerrors.ErrForbidden.WrapMessage("order status may only be changed by administrators")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		if err := orderRepo.SetStatus(ctx, orderID, status); err != nil {
			return err
		}

		return orderRepo.AppendStatusHistory(ctx, &entity.OrderStatusHistory{
			OrderID:   orderID,
			NewStatus: status,
			UpdatedBy: &actor.ID,
		})
	})
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return err
	}

	srv.log(ctx).Info("Order status changed",
		slog.Any("orderID", orderID), slog.String("status", status.String()), slog.Any("updatedBy", actor.ID))

	return nil
}

// GetStatusHistory returns the audit trail of an order, oldest first.
func (srv *orderService) GetStatusHistory(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderStatusHistory, error) {
	history, err := srv.orderRepo.ListStatusHistory(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list order status history")
	}

	return history, nil
}

// AddOrderDetail appends a product line to an existing order.
func (srv *orderService) AddOrderDetail(ctx context.Context, orderID uuid.UUID, input usecase.OrderDetailInput) (*entity.OrderDetail, error) {
	detail := &entity.OrderDetail{
		OrderID:         orderID,
		ProductID:       input.ProductID,
		Quantity:        input.Quantity,
		PriceAtPurchase: input.PriceAtPurchase,
	}

	if err := srv.orderRepo.CreateDetail(ctx, detail); err != nil {
		return nil, err
	}

	return detail, nil
}

// RemoveOrderDetail removes a single product line.
func (srv *orderService) RemoveOrderDetail(ctx context.Context, detailID uuid.UUID) error {
	if err := srv.orderRepo.DeleteDetail(ctx, detailID); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("order detail not found")
		}

		return err
	}

	return nil
}

// AddCartItem puts a product in a user's cart. Each (user, product) pair
// may appear once.
func (srv *orderService) AddCartItem(ctx context.Context, input usecase.CartItemInput) (*entity.ShoppingCart, error) {
	if input.Quantity < 1 {
		return nil, domainerrors.ErrValueOutOfRange.WrapMessage("quantity must be at least one")
	}

	item := &entity.ShoppingCart{
		UserID:    input.UserID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
	}

	if err := srv.cartRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// UpdateCartQuantity changes the quantity of a cart row.
func (srv *orderService) UpdateCartQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	if quantity < 1 {
		return domainerrors.ErrValueOutOfRange.WrapMessage("quantity must be at least one")
	}

	if err := srv.cartRepo.UpdateQuantity(ctx, id, quantity); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return domainerrors.ErrCartItemNotFound
		}

		return err
	}

	return nil
}

// RemoveCartItem deletes a cart row.
func (srv *orderService) RemoveCartItem(ctx context.Context, id uuid.UUID) error {
	if err := srv.cartRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return domainerrors.ErrCartItemNotFound
		}

		return err
	}

	return nil
}

// ListUserCart returns all cart rows of one user.
func (srv *orderService) ListUserCart(ctx context.Context, userID uuid.UUID) ([]*entity.ShoppingCart, error) {
	items, err := srv.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user cart")
	}

	return items, nil
}

// ListCarts returns one page of cart rows for the admin console.
func (srv *orderService) ListCarts(ctx context.Context, search string, page repository.Page) (*usecase.CartListOutput, error) {
	items, total, err := srv.cartRepo.List(ctx, search, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list carts")
	}

	return &usecase.CartListOutput{Items: items, Total: total}, nil
}

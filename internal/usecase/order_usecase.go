package usecase

import (
	"context"

	"givebox/internal/domain/entity"
	"givebox/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDetailInput defines one product line of an order.
type OrderDetailInput struct {
	ProductID       *uuid.UUID
	Quantity        int
	PriceAtPurchase decimal.Decimal
}

// CreateOrderInput defines the data required to place an order.
type CreateOrderInput struct {
	OrderCode         string
	UserID            *uuid.UUID
	TotalAmount       decimal.Decimal
	ShippingAddressID *uuid.UUID
	PaymentMethod     entity.PaymentMethod
	OrderStatus       entity.OrderStatus
	AppliedVoucherID  *uuid.UUID
	DonateVoucher     bool
	Details           []OrderDetailInput
}

// UpdateOrderInput defines the mutable fields of an order. The order
// code is immutable and absent here.
type UpdateOrderInput struct {
	ID                uuid.UUID
	UserID            *uuid.UUID
	TotalAmount       decimal.Decimal
	ShippingAddressID *uuid.UUID
	PaymentMethod     entity.PaymentMethod
	OrderStatus       entity.OrderStatus
	AppliedVoucherID  *uuid.UUID
	DonateVoucher     bool
}

// CartItemInput defines the data of a shopping cart row.
type CartItemInput struct {
	UserID    uuid.UUID
	ProductID uuid.UUID
	Quantity  int
}

// OrderListOutput returns one page of orders with the total match count.
type OrderListOutput struct {
	Orders []*entity.Order
	Total  int64
}

// CartListOutput returns one page of cart rows with the total match count.
type CartListOutput struct {
	Items []*entity.ShoppingCart
	Total int64
}

// OrderUsecase defines the business operations over orders, their detail
// lines, the status audit trail, and shopping carts.
type OrderUsecase interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*entity.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetOrderByCode(ctx context.Context, code string) (*entity.Order, error)
	ListOrders(ctx context.Context, query repository.ListOrdersQuery) (*OrderListOutput, error)
	UpdateOrder(ctx context.Context, input UpdateOrderInput) (*entity.Order, error)
	DeleteOrder(ctx context.Context, id uuid.UUID) error

	// ChangeOrderStatus is the quick-edit path for the status column. It
	// writes the new status and appends an audit trail row naming the
	// acting administrator. The actor must hold the ADMIN role.
	ChangeOrderStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus, updatedBy uuid.UUID) error

	// GetStatusHistory returns the audit trail of an order, oldest first.
	GetStatusHistory(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderStatusHistory, error)

	// AddOrderDetail appends a product line to an existing order.
	AddOrderDetail(ctx context.Context, orderID uuid.UUID, input OrderDetailInput) (*entity.OrderDetail, error)

	// RemoveOrderDetail removes a single product line.
	RemoveOrderDetail(ctx context.Context, detailID uuid.UUID) error

	AddCartItem(ctx context.Context, input CartItemInput) (*entity.ShoppingCart, error)
	UpdateCartQuantity(ctx context.Context, id uuid.UUID, quantity int) error
	RemoveCartItem(ctx context.Context, id uuid.UUID) error
	ListUserCart(ctx context.Context, userID uuid.UUID) ([]*entity.ShoppingCart, error)
	ListCarts(ctx context.Context, search string, page repository.Page) (*CartListOutput, error)
}

package repository

import (
	"context"
	"errors"

	"givebox/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// ErrCartItemNotFound is returned when a cart item is not found.
var ErrCartItemNotFound = errors.New("cart item not found")

// ListOrdersQuery carries the admin list view parameters for orders:
// search over order code, filters over status, payment method, and
// whether the voucher value was donated.
type ListOrdersQuery struct {
	Search        string
	OrderStatus   *entity.OrderStatus
	PaymentMethod *entity.PaymentMethod
	DonateVoucher *bool
	UserID        *uuid.UUID
	Page          Page
}

// OrderRepository defines the persistence operations for orders, their
// detail lines, and the status audit trail.
type OrderRepository interface {
	// FindByID retrieves a single order with its detail lines preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByCode retrieves a single order by its unique code, details preloaded.
	FindByCode(ctx context.Context, code string) (*entity.Order, error)

	// List returns a page of orders matching the query plus the total match count.
	// Detail lines are preloaded on every returned order.
	List(ctx context.Context, query ListOrdersQuery) ([]*entity.Order, int64, error)

	// Create persists a new order together with its detail lines.
	Create(ctx context.Context, order *entity.Order) error

	// Update modifies an existing order. The order code is immutable and
	// never written by updates.
	Update(ctx context.Context, order *entity.Order) error

	// Delete removes an order. Detail lines and status history cascade;
	// donation rows keep their row with the order reference cleared.
	Delete(ctx context.Context, id uuid.UUID) error

	// SetStatus updates only the order status column (admin quick edit).
	SetStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	// CreateDetail appends a detail line to an existing order.
	CreateDetail(ctx context.Context, detail *entity.OrderDetail) error

	// DeleteDetail removes a single detail line.
	DeleteDetail(ctx context.Context, id uuid.UUID) error

	// AppendStatusHistory records a status change in the append-only audit trail.
	AppendStatusHistory(ctx context.Context, h *entity.OrderStatusHistory) error

	// ListStatusHistory returns the audit trail of an order, oldest first.
	ListStatusHistory(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderStatusHistory, error)
}

// CartRepository defines the persistence operations for shopping carts.
type CartRepository interface {
	// FindByID retrieves a single cart item by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ShoppingCart, error)

	// ListByUser retrieves all cart items of a user.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ShoppingCart, error)

	// List returns a page of cart items for the admin console.
	List(ctx context.Context, search string, page Page) ([]*entity.ShoppingCart, int64, error)

	// Create persists a new cart item. Each (user, product) pair may
	// appear once; duplicates are rejected by the schema.
	Create(ctx context.Context, item *entity.ShoppingCart) error

	// UpdateQuantity changes the quantity of a cart item.
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error

	// Delete removes a cart item.
	Delete(ctx context.Context, id uuid.UUID) error
}

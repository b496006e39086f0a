// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod represents how an order is paid.
type PaymentMethod string

const (
	// PaymentCOD indicates cash on delivery.
	PaymentCOD PaymentMethod = "COD"
	// PaymentOnline indicates an online payment.
	PaymentOnline PaymentMethod = "ONLINE"
)

// String returns the string representation of the PaymentMethod.
func (m PaymentMethod) String() string {
	return string(m)
}

// IsValid checks if the PaymentMethod is a valid value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCOD, PaymentOnline:
		return true
	default:
		return false
	}
}

// OrderStatus represents the fulfilment state of an order.
// Status changes are free-form field updates; no transition table is enforced.
type OrderStatus string

const (
	// OrderNew indicates a freshly placed order.
	OrderNew OrderStatus = "NEW"
	// OrderPending indicates an order awaiting confirmation.
	OrderPending OrderStatus = "PENDING"
	// OrderShipping indicates an order out for delivery.
	OrderShipping OrderStatus = "SHIPPING"
	// OrderDelivered indicates a completed delivery.
	OrderDelivered OrderStatus = "DELIVERED"
	// OrderCancelled indicates a cancelled order.
	OrderCancelled OrderStatus = "CANCELLED"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderNew, OrderPending, OrderShipping, OrderDelivered, OrderCancelled:
		return true
	default:
		return false
	}
}

// Order is a placed purchase. The order keeps its row when the buyer,
// shipping address, or applied voucher is deleted; those references are
// cleared instead.
type Order struct {
	ID                uuid.UUID
	OrderCode         string // Unique, immutable once issued.
	UserID            *uuid.UUID
	CreatedAt         time.Time
	TotalAmount       decimal.Decimal // Never negative.
	ShippingAddressID *uuid.UUID
	PaymentMethod     PaymentMethod
	OrderStatus       OrderStatus
	AppliedVoucherID  *uuid.UUID // RedeemedOffer applied to this order, if any.
	DonateVoucher     bool       // Buyer surrendered the voucher value as a donation.

	Details []*OrderDetail // Line items, loaded with the order.
}

// OrderDetail is a single product line within an order. Each product
// appears at most once per order.
type OrderDetail struct {
	ID              uuid.UUID
	OrderID         uuid.UUID
	ProductID       *uuid.UUID // Nil once the product is deleted.
	Quantity        int        // Always positive.
	PriceAtPurchase decimal.Decimal
}

// OrderStatusHistory is an append-only audit trail of status changes.
// UpdatedBy must reference an administrator; the role check is applied
// by the use case, not the schema.
type OrderStatusHistory struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	NewStatus OrderStatus
	UpdatedBy *uuid.UUID
	UpdatedAt time.Time
}

// ShoppingCart is one product held in a user's cart. Each
// (user, product) pair appears at most once.
type ShoppingCart struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ProductID uuid.UUID
	Quantity  int // At least one.
}

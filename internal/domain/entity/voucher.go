// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VoucherType distinguishes percentage discounts from fixed-amount ones.
type VoucherType string

const (
	// VoucherPercentage discounts a percentage of the order total.
	VoucherPercentage VoucherType = "PERCENTAGE"
	// VoucherFixedAmount discounts a fixed amount of money.
	VoucherFixedAmount VoucherType = "FIXED_AMOUNT"
)

// String returns the string representation of the VoucherType.
func (t VoucherType) String() string {
	return string(t)
}

// IsValid checks if the VoucherType is a valid value.
func (t VoucherType) IsValid() bool {
	switch t {
	case VoucherPercentage, VoucherFixedAmount:
		return true
	default:
		return false
	}
}

// RedeemedStatus represents the usage state of an issued offer.
type RedeemedStatus string

const (
	// RedeemedNotUsed indicates the offer has not been applied yet.
	RedeemedNotUsed RedeemedStatus = "NOT_USED"
	// RedeemedUsed indicates the offer was applied to an order.
	RedeemedUsed RedeemedStatus = "USED"
	// RedeemedExpired indicates the offer lapsed unused.
	RedeemedExpired RedeemedStatus = "EXPIRED"
)

// String returns the string representation of the RedeemedStatus.
func (s RedeemedStatus) String() string {
	return string(s)
}

// IsValid checks if the RedeemedStatus is a valid value.
func (s RedeemedStatus) IsValid() bool {
	switch s {
	case RedeemedNotUsed, RedeemedUsed, RedeemedExpired:
		return true
	default:
		return false
	}
}

// Voucher defines a redeemable offer: the points it costs and the
// discount it grants. RedeemedOffer is a user's issued instance of one.
type Voucher struct {
	ID             uuid.UUID
	Name           string
	PointsRequired int // Never negative.
	DiscountValue  decimal.Decimal
	VoucherType    VoucherType
	Conditions     string
}

// RedeemedOffer is a voucher instance issued to a user in exchange for
// love points. The code is unique and immutable once issued; the backing
// voucher cannot be deleted while issued instances reference it.
type RedeemedOffer struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	VoucherID    uuid.UUID
	RedeemedCode string
	RedeemedAt   time.Time
	UsageStatus  RedeemedStatus
}

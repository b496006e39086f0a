package repository

import (
	"context"
	"errors"

	"givebox/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrVoucherNotFound is returned when a voucher is not found.
var ErrVoucherNotFound = errors.New("voucher not found")

// ErrVoucherInUse is returned on an attempt to delete a voucher that
// issued offers still reference.
var ErrVoucherInUse = errors.New("voucher is still referenced")

// ErrRedeemedOfferNotFound is returned when a redeemed offer is not found.
var ErrRedeemedOfferNotFound = errors.New("redeemed offer not found")

// ListVouchersQuery carries the admin list view parameters for vouchers.
type ListVouchersQuery struct {
	Search      string
	VoucherType *entity.VoucherType
	Page        Page
}

// ListRedeemedOffersQuery carries the admin list view parameters for
// issued offers: search over the code, filter over usage status.
type ListRedeemedOffersQuery struct {
	Search      string
	UsageStatus *entity.RedeemedStatus
	UserID      *uuid.UUID
	Page        Page
}

// VoucherRepository defines the persistence operations for voucher
// definitions and their issued instances.
type VoucherRepository interface {
	// FindByID retrieves a single voucher by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Voucher, error)

	// List returns a page of vouchers matching the query.
	List(ctx context.Context, query ListVouchersQuery) ([]*entity.Voucher, int64, error)

	// Create persists a new voucher definition.
	Create(ctx context.Context, voucher *entity.Voucher) error

	// Update modifies an existing voucher definition.
	Update(ctx context.Context, voucher *entity.Voucher) error

	// Delete removes a voucher. Fails with ErrVoucherInUse while issued
	// offers reference it.
	Delete(ctx context.Context, id uuid.UUID) error

	// CreateRedeemedOffer issues a voucher instance to a user. The code
	// must be unique; duplicates are rejected by the schema.
	CreateRedeemedOffer(ctx context.Context, offer *entity.RedeemedOffer) error

	// FindRedeemedOfferByID retrieves a single issued offer by its ID.
	FindRedeemedOfferByID(ctx context.Context, id uuid.UUID) (*entity.RedeemedOffer, error)

	// FindRedeemedOfferByCode retrieves a single issued offer by its code.
	FindRedeemedOfferByCode(ctx context.Context, code string) (*entity.RedeemedOffer, error)

	// ListRedeemedOffers returns a page of issued offers matching the query.
	ListRedeemedOffers(ctx context.Context, query ListRedeemedOffersQuery) ([]*entity.RedeemedOffer, int64, error)

	// SetUsageStatus updates the usage state of an issued offer. The
	// code itself is immutable and never rewritten.
	SetUsageStatus(ctx context.Context, id uuid.UUID, status entity.RedeemedStatus) error

	// DeleteRedeemedOffer removes an issued offer.
	DeleteRedeemedOffer(ctx context.Context, id uuid.UUID) error
}

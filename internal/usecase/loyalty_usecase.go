package usecase

import (
	"context"

	"givebox/internal/domain/entity"
	"givebox/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VoucherInput defines the data of a voucher definition.
type VoucherInput struct {
	Name           string
	PointsRequired int
	DiscountValue  decimal.Decimal
	VoucherType    entity.VoucherType
	Conditions     string
}

// GrantPointsInput defines a manual point credit to a user.
type GrantPointsInput struct {
	UserID uuid.UUID
	Points int
	Reason string
}

// BalanceListOutput returns one page of point balances.
type BalanceListOutput struct {
	Balances []*entity.LovePointBalance
	Total    int64
}

// PointHistoryListOutput returns one page of ledger entries.
type PointHistoryListOutput struct {
	Entries []*entity.LovePointHistory
	Total   int64
}

// VoucherListOutput returns one page of voucher definitions.
type VoucherListOutput struct {
	Vouchers []*entity.Voucher
	Total    int64
}

// RedeemedOfferListOutput returns one page of issued offers.
type RedeemedOfferListOutput struct {
	Offers []*entity.RedeemedOffer
	Total  int64
}

// LoyaltyUsecase defines the business operations over love points,
// vouchers, and redeemed offers.
type LoyaltyUsecase interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (*entity.LovePointBalance, error)
	ListBalances(ctx context.Context, page repository.Page) (*BalanceListOutput, error)

	// GrantPoints credits points to a user and records an EARNED ledger
	// entry, creating the balance row if the user has none yet.
	GrantPoints(ctx context.Context, input GrantPointsInput) error

	ListPointHistory(ctx context.Context, query repository.ListPointHistoryQuery) (*PointHistoryListOutput, error)

	CreateVoucher(ctx context.Context, input VoucherInput) (*entity.Voucher, error)
	GetVoucher(ctx context.Context, id uuid.UUID) (*entity.Voucher, error)
	ListVouchers(ctx context.Context, query repository.ListVouchersQuery) (*VoucherListOutput, error)
	UpdateVoucher(ctx context.Context, id uuid.UUID, input VoucherInput) (*entity.Voucher, error)

	// DeleteVoucher removes a definition. It fails while issued offers
	// still reference the voucher.
	DeleteVoucher(ctx context.Context, id uuid.UUID) error

	// RedeemVoucher spends the voucher's point cost from the user's
	// balance, appends a SPENT ledger entry, and issues a RedeemedOffer
	// with a generated unique code, all in one transaction.
	RedeemVoucher(ctx context.Context, userID, voucherID uuid.UUID) (*entity.RedeemedOffer, error)

	GetRedeemedOffer(ctx context.Context, id uuid.UUID) (*entity.RedeemedOffer, error)
	ListRedeemedOffers(ctx context.Context, query repository.ListRedeemedOffersQuery) (*RedeemedOfferListOutput, error)

	// SetOfferUsageStatus is the quick-edit path for the usage state of
	// an issued offer.
	SetOfferUsageStatus(ctx context.Context, id uuid.UUID, status entity.RedeemedStatus) error

	DeleteRedeemedOffer(ctx context.Context, id uuid.UUID) error

	// OfferQR renders the offer's redeemed code as a PNG QR image.
	OfferQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}

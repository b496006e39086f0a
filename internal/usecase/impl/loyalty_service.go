package impl

import (
	"context"
	"crypto/rand"
	"log/slog"

	deliverycontext "givebox/internal/delivery/context"
	"givebox/internal/domain/entity"
	domainerrors "givebox/internal/domain/errors"
	"givebox/internal/domain/repository"
	"givebox/internal/domain/service"
	"givebox/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// redeemedCodeAlphabet deliberately omits easily confused characters.
const redeemedCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const redeemedCodeLength = 12

// loyaltyService implements the LoyaltyUsecase interface.
type loyaltyService struct {
	txManager   repository.TransactionManager
	loyaltyRepo repository.LoyaltyRepository
	voucherRepo repository.VoucherRepository
	qrService   service.QRCodeService
	logger      *slog.Logger
}

// LoyaltyServiceParams holds dependencies for loyaltyService, injected by Fx.
type LoyaltyServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	LoyaltyRepo repository.LoyaltyRepository
	VoucherRepo repository.VoucherRepository
	QRService   service.QRCodeService
	Logger      *slog.Logger
}

// NewLoyaltyService is the constructor for loyaltyService.
func NewLoyaltyService(params LoyaltyServiceParams) usecase.LoyaltyUsecase {
	return &loyaltyService{
		txManager:   params.TxManager,
		loyaltyRepo: params.LoyaltyRepo,
		voucherRepo: params.VoucherRepo,
		qrService:   params.QRService,
		logger:      params.Logger,
	}
}

func (srv *loyaltyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetBalance retrieves a user's current point balance.
func (srv *loyaltyService) GetBalance(ctx context.Context, userID uuid.UUID) (*entity.LovePointBalance, error) {
	balance, err := srv.loyaltyRepo.FindBalance(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrBalanceNotFound) {
			return nil, domainerrors.ErrBalanceNotFound
		}

		return nil, errors.Wrap(err, "failed to get love point balance")
	}

	return balance, nil
}

// ListBalances returns one page of balances for the admin console.
func (srv *loyaltyService) ListBalances(ctx context.Context, page repository.Page) (*usecase.BalanceListOutput, error) {
	balances, total, err := srv.loyaltyRepo.ListBalances(ctx, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list love point balances")
	}

	return &usecase.BalanceListOutput{Balances: balances, Total: total}, nil
}

// GrantPoints credits points to a user and records an EARNED ledger
// entry. A missing balance row is created on the fly.
func (srv *loyaltyService) GrantPoints(ctx context.Context, input usecase.GrantPointsInput) error {
	if input.Points <= 0 {
		return domainerrors.ErrValueOutOfRange.WrapMessage("granted points must be positive")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		loyaltyRepo := repoFactory.LoyaltyRepo()

		err := loyaltyRepo.AdjustBalance(ctx, input.UserID, input.Points)
		if errors.Is(err, repository.ErrBalanceNotFound) {
			err = loyaltyRepo.UpsertBalance(ctx, &entity.LovePointBalance{
				UserID:         input.UserID,
				CurrentBalance: input.Points,
			})
		}
		if err != nil {
			return err
		}

		return loyaltyRepo.AppendHistory(ctx, &entity.LovePointHistory{
			UserID:          input.UserID,
			TransactionType: entity.PointsEarned,
			PointsChanged:   input.Points,
			Reason:          input.Reason,
		})
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Points granted",
		slog.Any("userID", input.UserID), slog.Int("points", input.Points), slog.String("reason", input.Reason))

	return nil
}

// ListPointHistory returns one page of ledger entries.
func (srv *loyaltyService) ListPointHistory(ctx context.Context, query repository.ListPointHistoryQuery) (*usecase.PointHistoryListOutput, error) {
	entries, total, err := srv.loyaltyRepo.ListHistory(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list love point history")
	}

	return &usecase.PointHistoryListOutput{Entries: entries, Total: total}, nil
}

// CreateVoucher persists a new voucher definition.
func (srv *loyaltyService) CreateVoucher(ctx context.Context, input usecase.VoucherInput) (*entity.Voucher, error) {
	if !input.VoucherType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid voucher type")
	}
	if input.PointsRequired < 0 {
		return nil, domainerrors.ErrValueOutOfRange.WrapMessage("points required must not be negative")
	}

	voucher := &entity.Voucher{
		Name:           input.Name,
		PointsRequired: input.PointsRequired,
		DiscountValue:  input.DiscountValue,
		VoucherType:    input.VoucherType,
		Conditions:     input.Conditions,
	}

	if err := srv.voucherRepo.Create(ctx, voucher); err != nil {
		return nil, err
	}

	return voucher, nil
}

// GetVoucher retrieves a single voucher definition.
func (srv *loyaltyService) GetVoucher(ctx context.Context, id uuid.UUID) (*entity.Voucher, error) {
	voucher, err := srv.voucherRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVoucherNotFound) {
			return nil, domainerrors.ErrVoucherNotFound
		}

		return nil, errors.Wrap(err, "failed to get voucher")
	}

	return voucher, nil
}

// ListVouchers returns one page of voucher definitions.
func (srv *loyaltyService) ListVouchers(ctx context.Context, query repository.ListVouchersQuery) (*usecase.VoucherListOutput, error) {
	vouchers, total, err := srv.voucherRepo.List(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vouchers")
	}

	return &usecase.VoucherListOutput{Vouchers: vouchers, Total: total}, nil
}

// UpdateVoucher modifies an existing voucher definition.
func (srv *loyaltyService) UpdateVoucher(ctx context.Context, id uuid.UUID, input usecase.VoucherInput) (*entity.Voucher, error) {
	if !input.VoucherType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid voucher type")
	}

	voucher := &entity.Voucher{
		ID:             id,
		Name:           input.Name,
		PointsRequired: input.PointsRequired,
		DiscountValue:  input.DiscountValue,
		VoucherType:    input.VoucherType,
		Conditions:     input.Conditions,
	}

	if err := srv.voucherRepo.Update(ctx, voucher); err != nil {
		if errors.Is(err, repository.ErrVoucherNotFound) {
			return nil, domainerrors.ErrVoucherNotFound
		}

		return nil, err
	}

	return voucher, nil
}

// DeleteVoucher removes a definition unless issued offers reference it.
func (srv *loyaltyService) DeleteVoucher(ctx context.Context, id uuid.UUID) error {
	if err := srv.voucherRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrVoucherInUse) {
			return domainerrors.ErrVoucherInUse
		}
		if errors.Is(err, repository.ErrVoucherNotFound) {
			return domainerrors.ErrVoucherNotFound
		}

		return err
	}

	return nil
}

// RedeemVoucher spends the voucher's point cost, records a SPENT ledger
// entry, and issues the offer with a generated unique code. The whole
// exchange happens in one transaction, so an insufficient balance leaves
// nothing behind.
func (srv *loyaltyService) RedeemVoucher(ctx context.Context, userID, voucherID uuid.UUID) (*entity.RedeemedOffer, error) {
	voucher, err := srv.voucherRepo.FindByID(ctx, voucherID)
	if err != nil {
		if errors.Is(err, repository.ErrVoucherNotFound) {
			return nil, domainerrors.ErrVoucherNotFound
		}

		return nil, errors.Wrap(err, "failed to load voucher for redemption")
	}

	code, err := randomRedeemedCode()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate redeemed code")
	}

	offer := &entity.RedeemedOffer{
		UserID:       userID,
		VoucherID:    voucher.ID,
		RedeemedCode: code,
		UsageStatus:  entity.RedeemedNotUsed,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		loyaltyRepo := repoFactory.LoyaltyRepo()
		voucherRepo := repoFactory.VoucherRepo()

		if voucher.PointsRequired > 0 {
			if err := loyaltyRepo.AdjustBalance(ctx, userID, -voucher.PointsRequired); err != nil {
				if errors.Is(err, repository.ErrInsufficientBalance) || errors.Is(err, repository.ErrBalanceNotFound) {
					return domainerrors.ErrInsufficientPoints
				}

				return err
			}

			if err := loyaltyRepo.AppendHistory(ctx, &entity.LovePointHistory{
				UserID:          userID,
				TransactionType: entity.PointsSpent,
				PointsChanged:   -voucher.PointsRequired,
				Reason:          "redeemed voucher: " + voucher.Name,
			}); err != nil {
				return err
			}
		}

		return voucherRepo.CreateRedeemedOffer(ctx, offer)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Voucher redeemed",
		slog.Any("userID", userID), slog.Any("voucherID", voucherID), slog.String("code", offer.RedeemedCode))

	return offer, nil
}

// GetRedeemedOffer retrieves a single issued offer.
func (srv *loyaltyService) GetRedeemedOffer(ctx context.Context, id uuid.UUID) (*entity.RedeemedOffer, error) {
	offer, err := srv.voucherRepo.FindRedeemedOfferByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRedeemedOfferNotFound) {
			return nil, domainerrors.ErrRedeemedOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to get redeemed offer")
	}

	return offer, nil
}

// ListRedeemedOffers returns one page of issued offers.
func (srv *loyaltyService) ListRedeemedOffers(ctx context.Context, query repository.ListRedeemedOffersQuery) (*usecase.RedeemedOfferListOutput, error) {
	offers, total, err := srv.voucherRepo.ListRedeemedOffers(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list redeemed offers")
	}

	return &usecase.RedeemedOfferListOutput{Offers: offers, Total: total}, nil
}

// SetOfferUsageStatus is the quick-edit path for an offer's usage state.
func (srv *loyaltyService) SetOfferUsageStatus(ctx context.Context, id uuid.UUID, status entity.RedeemedStatus) error {
	if !status.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid usage status")
	}

	if err := srv.voucherRepo.SetUsageStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrRedeemedOfferNotFound) {
			return domainerrors.ErrRedeemedOfferNotFound
		}

		return err
	}

	return nil
}

// DeleteRedeemedOffer removes an issued offer.
func (srv *loyaltyService) DeleteRedeemedOffer(ctx context.Context, id uuid.UUID) error {
	if err := srv.voucherRepo.DeleteRedeemedOffer(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRedeemedOfferNotFound) {
			return domainerrors.ErrRedeemedOfferNotFound
		}

		return err
	}

	return nil
}

// OfferQR renders the offer's redeemed code as a PNG QR image.
func (srv *loyaltyService) OfferQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	offer, err := srv.GetRedeemedOffer(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateOfferQR(offer.RedeemedCode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render offer qr code")
	}

	return png, nil
}

// randomRedeemedCode draws a code from the crypto/rand source.
func randomRedeemedCode() (string, error) {
	buf := make([]byte, redeemedCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	for i, b := range buf {
		buf[i] = redeemedCodeAlphabet[int(b)%len(redeemedCodeAlphabet)]
	}

	return string(buf), nil
}

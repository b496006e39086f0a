package impl

import (
	"context"
	"testing"

	"givebox/internal/domain/entity"
	domainerrors "givebox/internal/domain/errors"
	"givebox/internal/domain/repository"
	mockRepo "givebox/internal/mocks/repository"
	mockSvc "givebox/internal/mocks/service"
	"givebox/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLoyaltyService(t *testing.T, loyaltyRepo *mockRepo.MockLoyaltyRepository, voucherRepo *mockRepo.MockVoucherRepository, qrService *mockSvc.MockQRCodeService) usecase.LoyaltyUsecase {
	t.Helper()

	return NewLoyaltyService(LoyaltyServiceParams{
		TxManager: &mockRepo.StubTransactionManager{
			Factory: &mockRepo.StubRepositoryFactory{Loyalties: loyaltyRepo, Vouchers: voucherRepo},
		},
		LoyaltyRepo: loyaltyRepo,
		VoucherRepo: voucherRepo,
		QRService:   qrService,
		Logger:      newDiscardLogger(),
	})
}

func TestLoyaltyService_GrantPoints_RejectsNonPositive(t *testing.T) {
	loyaltyRepo := mockRepo.NewMockLoyaltyRepository(t)
	voucherRepo := mockRepo.NewMockVoucherRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	service := newLoyaltyService(t, loyaltyRepo, voucherRepo, qrService)

	err := service.GrantPoints(context.Background(), usecase.GrantPointsInput{
		UserID: uuid.New(),
		Points: 0,
		Reason: "promo",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValueOutOfRange)
	loyaltyRepo.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything)
}

func TestLoyaltyService_GrantPoints_ExistingBalance(t *testing.T) {
	loyaltyRepo := mockRepo.NewMockLoyaltyRepository(t)
	voucherRepo := mockRepo.NewMockVoucherRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	service := newLoyaltyService(t, loyaltyRepo, voucherRepo, qrService)

	ctx := context.Background()
	userID := uuid.New()

	loyaltyRepo.On("AdjustBalance", ctx, userID, 50).Return(nil)
	loyaltyRepo.On("AppendHistory", ctx, mock.MatchedBy(func(h *entity.LovePointHistory) bool {
		return h.UserID == userID && h.TransactionType == entity.PointsEarned && h.PointsChanged == 50
	})).Return(nil)

	err := service.GrantPoints(ctx, usecase.GrantPointsInput{UserID: userID, Points: 50, Reason: "review bonus"})
	require.NoError(t, err)
}

func TestLoyaltyService_GrantPoints_CreatesMissingBalance(t *testing.T) {
	loyaltyRepo := mockRepo.NewMockLoyaltyRepository(t)
	voucherRepo := mockRepo.NewMockVoucherRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	service := newLoyaltyService(t, loyaltyRepo, voucherRepo, qrService)

	ctx := context.Background()
	userID := uuid.New()

	loyaltyRepo.On("AdjustBalance", ctx, userID, 30).Return(repository.ErrBalanceNotFound)
	loyaltyRepo.On("UpsertBalance", ctx, mock.MatchedBy(func(b *entity.LovePointBalance) bool {
		return b.UserID == userID && b.CurrentBalance == 30
	})).Return(nil)
	loyaltyRepo.On("AppendHistory", ctx, mock.AnythingOfType("*entity.LovePointHistory")).Return(nil)

	err := service.GrantPoints(ctx, usecase.GrantPointsInput{UserID: userID, Points: 30, Reason: "welcome"})
	require.NoError(t, err)
}

func TestLoyaltyService_RedeemVoucher_Success(t *testing.T) {
	loyaltyRepo := mockRepo.NewMockLoyaltyRepository(t)
	voucherRepo := mockRepo.NewMockVoucherRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	service := newLoyaltyService(t, loyaltyRepo, voucherRepo, qrService)

	ctx := context.Background()
	userID := uuid.New()
	voucher := &entity.Voucher{
		ID:             uuid.New(),
		Name:           "50k Off",
		PointsRequired: 100,
		DiscountValue:  decimal.NewFromInt(50000),
		VoucherType:    entity.VoucherFixedAmount,
	}

	voucherRepo.On("FindByID", ctx, voucher.ID).Return(voucher, nil)
	loyaltyRepo.On("AdjustBalance", ctx, userID, -100).Return(nil)
	loyaltyRepo.On("AppendHistory", ctx, mock.MatchedBy(func(h *entity.LovePointHistory) bool {
		return h.TransactionType == entity.PointsSpent && h.PointsChanged == -100
	})).Return(nil)
	voucherRepo.On("CreateRedeemedOffer", ctx, mock.AnythingOfType("*entity.RedeemedOffer")).Return(nil)

	offer, err := service.RedeemVoucher(ctx, userID, voucher.ID)
	require.NoError(t, err)
	assert.Equal(t, userID, offer.UserID)
	assert.Equal(t, voucher.ID, offer.VoucherID)
	assert.Equal(t, entity.RedeemedNotUsed, offer.UsageStatus)
	assert.Len(t, offer.RedeemedCode, 12)
	for _, r := range offer.RedeemedCode {
		assert.Contains(t, "ABCDEFGHJKLMNPQRSTUVWXYZ23456789", string(r))
	}
}

func TestLoyaltyService_RedeemVoucher_InsufficientBalance(t *testing.T) {
	loyaltyRepo := mockRepo.NewMockLoyaltyRepository(t)
	voucherRepo := mockRepo.NewMockVoucherRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	service := newLoyaltyService(t, loyaltyRepo, voucherRepo, qrService)

	ctx := context.Background()
	userID := uuid.New()
	voucher := &entity.Voucher{ID: uuid.New(), Name: "Big One", PointsRequired: 1000}

	voucherRepo.On("FindByID", ctx, voucher.ID).Return(voucher, nil)
	loyaltyRepo.On("AdjustBalance", ctx, userID, -1000).Return(repository.ErrInsufficientBalance)

	offer, err := service.RedeemVoucher(ctx, userID, voucher.ID)
	assert.Nil(t, offer)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientPoints)
	voucherRepo.AssertNotCalled(t, "CreateRedeemedOffer", mock.Anything, mock.Anything)
	loyaltyRepo.AssertNotCalled(t, "AppendHistory", mock.Anything, mock.Anything)
}

func TestLoyaltyService_RedeemVoucher_MissingBalanceRow(t *testing.T) {
	loyaltyRepo := mockRepo.NewMockLoyaltyRepository(t)
	voucherRepo := mockRepo.NewMockVoucherRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	service := newLoyaltyService(t, loyaltyRepo, voucherRepo, qrService)

	ctx := context.Background()
	userID := uuid.New()
	voucher := &entity.Voucher{ID: uuid.New(), Name: "Any", PointsRequired: 10}

	voucherRepo.On("FindByID", ctx, voucher.ID).Return(voucher, nil)
	loyaltyRepo.On("AdjustBalance", ctx, userID, -10).Return(repository.ErrBalanceNotFound)

	_, err := service.RedeemVoucher(ctx, userID, voucher.ID)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientPoints)
}

func TestLoyaltyService_DeleteVoucher_InUse(t *testing.T) {
	loyaltyRepo := mockRepo.NewMockLoyaltyRepository(t)
	voucherRepo := mockRepo.NewMockVoucherRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	service := newLoyaltyService(t, loyaltyRepo, voucherRepo, qrService)

	ctx := context.Background()
	id := uuid.New()
	voucherRepo.On("Delete", ctx, id).Return(repository.ErrVoucherInUse)

	err := service.DeleteVoucher(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrVoucherInUse)
}

func TestLoyaltyService_OfferQR_RendersCode(t *testing.T) {
	loyaltyRepo := mockRepo.NewMockLoyaltyRepository(t)
	voucherRepo := mockRepo.NewMockVoucherRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	service := newLoyaltyService(t, loyaltyRepo, voucherRepo, qrService)

	ctx := context.Background()
	offer := &entity.RedeemedOffer{
		ID:           uuid.New(),
		RedeemedCode: "ABCDEF234567",
		UsageStatus:  entity.RedeemedNotUsed,
	}

	voucherRepo.On("FindRedeemedOfferByID", ctx, offer.ID).Return(offer, nil)
	qrService.On("GenerateOfferQR", "ABCDEF234567").Return([]byte{0x89, 0x50, 0x4e, 0x47}, nil)

	png, err := service.OfferQR(ctx, offer.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestLoyaltyService_CreateVoucher_InvalidType(t *testing.T) {
	loyaltyRepo := mockRepo.NewMockLoyaltyRepository(t)
	voucherRepo := mockRepo.NewMockVoucherRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	service := newLoyaltyService(t, loyaltyRepo, voucherRepo, qrService)

	_, err := service.CreateVoucher(context.Background(), usecase.VoucherInput{
		Name:        "Bogus",
		VoucherType: entity.VoucherType("SOMETHING_ELSE"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	voucherRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnumIsValid(t *testing.T) {
	tests := []struct {
		name  string
		valid []bool
	}{
		{"account status", []bool{AccountActive.IsValid(), AccountDisabled.IsValid(), AccountStatus("FROZEN").IsValid()}},
		{"product status", []bool{ProductForSale.IsValid(), ProductSoldOut.IsValid(), ProductDeleted.IsValid(), ProductStatus("").IsValid()}},
		{"review status", []bool{ReviewVisible.IsValid(), ReviewHidden.IsValid(), ReviewStatus("FLAGGED").IsValid()}},
		{"payment method", []bool{PaymentCOD.IsValid(), PaymentOnline.IsValid(), PaymentMethod("BARTER").IsValid()}},
		{"order status", []bool{OrderNew.IsValid(), OrderPending.IsValid(), OrderShipping.IsValid(), OrderDelivered.IsValid(), OrderCancelled.IsValid(), OrderStatus("LOST").IsValid()}},
		{"program status", []bool{ProgramActive.IsValid(), ProgramPaused.IsValid(), ProgramCompleted.IsValid(), CharityProgramStatus("ARCHIVED").IsValid()}},
		{"donation type", []bool{DonationFromProduct.IsValid(), DonationFromVoucher.IsValid(), DonationType("DIRECT").IsValid()}},
		{"point transaction type", []bool{PointsEarned.IsValid(), PointsSpent.IsValid(), PointTransactionType("EXPIRED").IsValid()}},
		{"voucher type", []bool{VoucherPercentage.IsValid(), VoucherFixedAmount.IsValid(), VoucherType("BOGO").IsValid()}},
		{"redeemed status", []bool{RedeemedNotUsed.IsValid(), RedeemedUsed.IsValid(), RedeemedExpired.IsValid(), RedeemedStatus("").IsValid()}},
		{"post type", []bool{PostBlog.IsValid(), PostNews.IsValid(), PostReport.IsValid(), PostType("AD").IsValid()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			last := len(tt.valid) - 1
			for i, got := range tt.valid[:last] {
				assert.True(t, got, "known value %d", i)
			}
			assert.False(t, tt.valid[last], "unknown value")
		})
	}
}

func TestOTPVerification_Usable(t *testing.T) {
	now := time.Now()
	otp := &OTPVerification{OTPCode: "482913", ExpiresAt: now.Add(5 * time.Minute)}

	assert.True(t, otp.Usable(now))
	assert.False(t, otp.Usable(now.Add(6*time.Minute)), "expired code")

	otp.IsUsed = true
	assert.False(t, otp.Usable(now), "used code")
}

func TestOTPVerification_UsableAtExactExpiry(t *testing.T) {
	now := time.Now()
	otp := &OTPVerification{OTPCode: "000000", ExpiresAt: now}
	assert.False(t, otp.Usable(now))
}

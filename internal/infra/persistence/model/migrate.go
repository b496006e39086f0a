package model

import "gorm.io/gorm"

// AllModels lists every persistence struct in dependency order so
// AutoMigrate creates referenced tables before their dependents.
func AllModels() []any {
	return []any{
		&UserModel{},
		&ShippingAddressModel{},
		&OTPVerificationModel{},
		&ProductModel{},
		&ReviewModel{},
		&VoucherModel{},
		&RedeemedOfferModel{},
		&OrderModel{},
		&OrderDetailModel{},
		&OrderStatusHistoryModel{},
		&ShoppingCartModel{},
		&CharityProgramModel{},
		&DonationHistoryModel{},
		&DisbursementModel{},
		&LovePointBalanceModel{},
		&LovePointHistoryModel{},
		&ContentPostModel{},
	}
}

// Migrate applies the full schema. The uuid-ossp extension backs the
// uuid_generate_v4() column defaults.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(AllModels()...)
}

package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LovePointBalanceModel mirrors the 'love_point_balances' table. The
// user ID doubles as the primary key; a check keeps the balance from
// going negative.
type LovePointBalanceModel struct {
	UserID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CurrentBalance int       `gorm:"not null;default:0;check:chk_love_point_balances_current_balance,current_balance >= 0"`
}

// TableName explicitly sets the table name for GORM.
func (LovePointBalanceModel) TableName() string {
	return "love_point_balances"
}

// LovePointHistoryModel mirrors the 'love_point_histories' table, the
// append-only point ledger.
type LovePointHistoryModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	TransactionType string    `gorm:"type:varchar(50);not null;index"`
	PointsChanged   int       `gorm:"not null"`
	Reason          string    `gorm:"type:varchar(255);not null"`
	TransactionDate time.Time `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (LovePointHistoryModel) TableName() string {
	return "love_point_histories"
}

// VoucherModel mirrors the 'vouchers' table.
type VoucherModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name           string          `gorm:"type:varchar(255);not null"`
	PointsRequired int             `gorm:"not null;check:chk_vouchers_points_required,points_required >= 0"`
	DiscountValue  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	VoucherType    string          `gorm:"type:varchar(50);not null;index"`
	Conditions     string          `gorm:"type:text;not null"`

	// Issued instances protect the definition from deletion.
	RedeemedInstances []*RedeemedOfferModel `gorm:"foreignKey:VoucherID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (VoucherModel) TableName() string {
	return "vouchers"
}

// RedeemedOfferModel mirrors the 'redeemed_offers' table. The issued
// code is unique and immutable.
type RedeemedOfferModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	VoucherID    uuid.UUID `gorm:"type:uuid;not null;index"`
	RedeemedCode string    `gorm:"type:varchar(50);unique;not null"`
	RedeemedAt   time.Time `gorm:"autoCreateTime"`
	UsageStatus  string    `gorm:"type:varchar(50);not null;default:'NOT_USED';index"`
}

// TableName explicitly sets the table name for GORM.
func (RedeemedOfferModel) TableName() string {
	return "redeemed_offers"
}

// Package model contains the GORM-specific persistence structs. Field
// tags carry the schema's constraints: uniqueness, checks, and the
// foreign-key delete rules (CASCADE / SET NULL / RESTRICT).
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Email is the login identifier.
type UserModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Email         string    `gorm:"type:varchar(255);unique;not null"`
	FullName      string    `gorm:"type:varchar(255);not null"`
	PhoneNumber   string    `gorm:"type:varchar(20);not null"`
	Role          string    `gorm:"type:varchar(50);not null;default:'CUSTOMER';index"`
	AccountStatus string    `gorm:"type:varchar(50);not null;default:'ACTIVE';index"`
	PasswordHash  string    `gorm:"type:varchar(255);not null"`
	IsStaff       bool      `gorm:"not null;default:false"`
	IsActive      bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Dependents that disappear with the user.
	Addresses      []*ShippingAddressModel  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CartItems      []*ShoppingCartModel     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	PointBalance   *LovePointBalanceModel   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	PointHistory   []*LovePointHistoryModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	RedeemedOffers []*RedeemedOfferModel    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	// Dependents that survive the user with the reference cleared.
	Orders  []*OrderModel  `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
	Reviews []*ReviewModel `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ShippingAddressModel mirrors the 'shipping_addresses' table.
// The one-default-per-user rule is an application convention; the
// schema deliberately does not enforce it.
type ShippingAddressModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	RecipientName string    `gorm:"type:varchar(255);not null"`
	PhoneNumber   string    `gorm:"type:varchar(20);not null"`
	Province      string    `gorm:"type:varchar(100);not null"`
	District      string    `gorm:"type:varchar(100);not null"`
	Ward          string    `gorm:"type:varchar(100);not null"`
	StreetAddress string    `gorm:"type:varchar(255);not null"`
	IsDefault     bool      `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (ShippingAddressModel) TableName() string {
	return "shipping_addresses"
}

// OTPVerificationModel mirrors the 'otp_verifications' table. Rows are
// matched by email and deliberately not linked to users.
type OTPVerificationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Email     string    `gorm:"type:varchar(255);not null;index"`
	OTPCode   string    `gorm:"type:varchar(6);not null"`
	ExpiresAt time.Time `gorm:"not null"`
	IsUsed    bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OTPVerificationModel) TableName() string {
	return "otp_verifications"
}

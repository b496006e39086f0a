package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table. Price and the charity
// percentage are guarded by check constraints.
type ProductModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name              string          `gorm:"type:varchar(255);unique;not null"`
	Description       string          `gorm:"type:text;not null"`
	Price             decimal.Decimal `gorm:"type:decimal(12,2);not null;check:chk_products_price,price >= 0"`
	CharityPercentage decimal.Decimal `gorm:"type:decimal(5,2);not null;check:chk_products_charity_percentage,charity_percentage >= 0 AND charity_percentage <= 100"`
	Image             string          `gorm:"type:varchar(255);not null"`
	Status            string          `gorm:"type:varchar(50);not null;default:'FOR_SALE';index"`

	// Reviews and cart rows vanish with the product; order lines keep
	// their row with the product cleared.
	Reviews      []*ReviewModel       `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CartItems    []*ShoppingCartModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	OrderDetails []*OrderDetailModel  `gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ReviewModel mirrors the 'reviews' table. The 1-5 rating bound is not
// a schema constraint; request validation guards it.
type ReviewModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID        *uuid.UUID `gorm:"type:uuid;index"`
	ProductID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Rating        int        `gorm:"not null"`
	Comment       string     `gorm:"type:text;not null"`
	CreatedAt     time.Time
	DisplayStatus string `gorm:"type:varchar(50);not null;default:'VISIBLE';index"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

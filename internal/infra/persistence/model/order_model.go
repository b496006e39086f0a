package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table. The order code is unique and
// never rewritten after insert. Buyer, shipping address, and applied
// voucher references are cleared rather than cascading.
type OrderModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OrderCode         string     `gorm:"type:varchar(20);unique;not null"`
	UserID            *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt         time.Time
	TotalAmount       decimal.Decimal `gorm:"type:decimal(12,2);not null;check:chk_orders_total_amount,total_amount >= 0"`
	ShippingAddressID *uuid.UUID      `gorm:"type:uuid"`
	PaymentMethod     string          `gorm:"type:varchar(50);not null;index"`
	OrderStatus       string          `gorm:"type:varchar(50);not null;default:'NEW';index"`
	AppliedVoucherID  *uuid.UUID      `gorm:"type:uuid"`
	DonateVoucher     bool            `gorm:"not null;default:false"`

	ShippingAddress *ShippingAddressModel `gorm:"foreignKey:ShippingAddressID;constraint:OnDelete:SET NULL"`
	AppliedVoucher  *RedeemedOfferModel   `gorm:"foreignKey:AppliedVoucherID;constraint:OnDelete:SET NULL"`

	Details       []*OrderDetailModel        `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	StatusHistory []*OrderStatusHistoryModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Donations     []*DonationHistoryModel    `gorm:"foreignKey:OrderID;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderDetailModel mirrors the 'order_details' table. A product appears
// at most once per order.
type OrderDetailModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OrderID         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_order_details_order_product"`
	ProductID       *uuid.UUID      `gorm:"type:uuid;uniqueIndex:idx_order_details_order_product"`
	Quantity        int             `gorm:"not null;check:chk_order_details_quantity,quantity > 0"`
	PriceAtPurchase decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderDetailModel) TableName() string {
	return "order_details"
}

// OrderStatusHistoryModel mirrors the 'order_status_histories' table,
// an append-only audit trail of status changes.
type OrderStatusHistoryModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OrderID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	NewStatus string     `gorm:"type:varchar(50);not null;index"`
	UpdatedBy *uuid.UUID `gorm:"type:uuid"`
	UpdatedAt time.Time  `gorm:"autoCreateTime"`

	Updater *UserModel `gorm:"foreignKey:UpdatedBy;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (OrderStatusHistoryModel) TableName() string {
	return "order_status_histories"
}

// ShoppingCartModel mirrors the 'shopping_carts' table. Each
// (user, product) pair appears at most once.
type ShoppingCartModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_shopping_carts_user_product"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_shopping_carts_user_product"`
	Quantity  int       `gorm:"not null;default:1;check:chk_shopping_carts_quantity,quantity >= 1"`
}

// TableName explicitly sets the table name for GORM.
func (ShoppingCartModel) TableName() string {
	return "shopping_carts"
}

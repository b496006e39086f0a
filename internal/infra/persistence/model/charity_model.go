package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CharityProgramModel mirrors the 'charity_programs' table. Donations
// and disbursements are delete-protected: the program cannot be removed
// while either still references it.
type CharityProgramModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name         string          `gorm:"type:varchar(255);unique;not null"`
	Description  string          `gorm:"type:text;not null"`
	Image        string          `gorm:"type:varchar(255);not null"`
	TargetAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;check:chk_charity_programs_target_amount,target_amount >= 0"`
	Status       string          `gorm:"type:varchar(50);not null;default:'ACTIVE';index"`

	Donations     []*DonationHistoryModel `gorm:"foreignKey:ProgramID;constraint:OnDelete:RESTRICT"`
	Disbursements []*DisbursementModel    `gorm:"foreignKey:ProgramID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (CharityProgramModel) TableName() string {
	return "charity_programs"
}

// DonationHistoryModel mirrors the 'donation_histories' table.
type DonationHistoryModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OrderID      *uuid.UUID      `gorm:"type:uuid;index"`
	ProgramID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount       decimal.Decimal `gorm:"type:decimal(12,2);not null;check:chk_donation_histories_amount,amount >= 0"`
	DonationType string          `gorm:"type:varchar(50);not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (DonationHistoryModel) TableName() string {
	return "donation_histories"
}

// DisbursementModel mirrors the 'disbursements' table.
type DisbursementModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ProgramID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount           decimal.Decimal `gorm:"type:decimal(15,2);not null;check:chk_disbursements_amount,amount >= 0"`
	DisbursedAt      time.Time       `gorm:"type:date;not null"`
	RecipientPartner string          `gorm:"type:varchar(255);not null"`
	Notes            string          `gorm:"type:text;not null"`
	ProofLink        string          `gorm:"type:varchar(255)"`
}

// TableName explicitly sets the table name for GORM.
func (DisbursementModel) TableName() string {
	return "disbursements"
}

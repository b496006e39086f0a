// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CharityProgramStatus represents the lifecycle state of a charity program.
type CharityProgramStatus string

const (
	// ProgramActive indicates a program currently collecting donations.
	ProgramActive CharityProgramStatus = "ACTIVE"
	// ProgramPaused indicates a temporarily suspended program.
	ProgramPaused CharityProgramStatus = "PAUSED"
	// ProgramCompleted indicates a finished program.
	ProgramCompleted CharityProgramStatus = "COMPLETED"
)

// String returns the string representation of the CharityProgramStatus.
func (s CharityProgramStatus) String() string {
	return string(s)
}

// IsValid checks if the CharityProgramStatus is a valid value.
func (s CharityProgramStatus) IsValid() bool {
	switch s {
	case ProgramActive, ProgramPaused, ProgramCompleted:
		return true
	default:
		return false
	}
}

// DonationType distinguishes where donated money came from.
type DonationType string

const (
	// DonationFromProduct is the charity percentage of a product sale.
	DonationFromProduct DonationType = "FROM_PRODUCT"
	// DonationFromVoucher is voucher value surrendered by the buyer.
	DonationFromVoucher DonationType = "FROM_VOUCHER"
)

// String returns the string representation of the DonationType.
func (t DonationType) String() string {
	return string(t)
}

// IsValid checks if the DonationType is a valid value.
func (t DonationType) IsValid() bool {
	switch t {
	case DonationFromProduct, DonationFromVoucher:
		return true
	default:
		return false
	}
}

// CharityProgram is a fundraising campaign that receives donations and
// pays them out through disbursements. A program cannot be deleted
// while any donation or disbursement still references it.
type CharityProgram struct {
	ID           uuid.UUID
	Name         string // Unique program name.
	Description  string
	Image        string
	TargetAmount decimal.Decimal // Fundraising goal, never negative.
	Status       CharityProgramStatus
}

// DonationHistory records money routed into a program.
type DonationHistory struct {
	ID           uuid.UUID
	OrderID      *uuid.UUID // Nil once the originating order is deleted.
	ProgramID    uuid.UUID
	Amount       decimal.Decimal // Never negative.
	DonationType DonationType
}

// Disbursement is an outbound payment from a program to an external
// partner, with a link to the proof-of-payment document.
type Disbursement struct {
	ID               uuid.UUID
	ProgramID        uuid.UUID
	Amount           decimal.Decimal // Never negative.
	DisbursedAt      time.Time
	RecipientPartner string
	Notes            string
	ProofLink        string
}

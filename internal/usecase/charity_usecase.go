package usecase

import (
	"context"
	"time"

	"givebox/internal/domain/entity"
	"givebox/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProgramInput defines the data of a charity program.
type ProgramInput struct {
	Name         string
	Description  string
	Image        string
	TargetAmount decimal.Decimal
	Status       entity.CharityProgramStatus
}

// DonationInput defines the data of a donation record.
type DonationInput struct {
	OrderID      *uuid.UUID
	ProgramID    uuid.UUID
	Amount       decimal.Decimal
	DonationType entity.DonationType
}

// DisbursementInput defines the data of an outbound program payment.
type DisbursementInput struct {
	ProgramID        uuid.UUID
	Amount           decimal.Decimal
	DisbursedAt      time.Time
	RecipientPartner string
	Notes            string
	ProofLink        string
}

// ProgramListOutput returns one page of programs with the total match count.
type ProgramListOutput struct {
	Programs []*entity.CharityProgram
	Total    int64
}

// DonationListOutput returns one page of donation records.
type DonationListOutput struct {
	Donations []*entity.DonationHistory
	Total     int64
}

// DisbursementListOutput returns one page of disbursements.
type DisbursementListOutput struct {
	Disbursements []*entity.Disbursement
	Total         int64
}

// CharityUsecase defines the business operations over charity programs,
// donation records, and disbursements.
type CharityUsecase interface {
	CreateProgram(ctx context.Context, input ProgramInput) (*entity.CharityProgram, error)
	GetProgram(ctx context.Context, id uuid.UUID) (*entity.CharityProgram, error)
	ListPrograms(ctx context.Context, query repository.ListProgramsQuery) (*ProgramListOutput, error)
	UpdateProgram(ctx context.Context, id uuid.UUID, input ProgramInput) (*entity.CharityProgram, error)

	// DeleteProgram removes a program. It fails while any donation or
	// disbursement still references the program.
	DeleteProgram(ctx context.Context, id uuid.UUID) error

	RecordDonation(ctx context.Context, input DonationInput) (*entity.DonationHistory, error)
	GetDonation(ctx context.Context, id uuid.UUID) (*entity.DonationHistory, error)
	ListDonations(ctx context.Context, query repository.ListDonationsQuery) (*DonationListOutput, error)
	DeleteDonation(ctx context.Context, id uuid.UUID) error

	CreateDisbursement(ctx context.Context, input DisbursementInput) (*entity.Disbursement, error)
	GetDisbursement(ctx context.Context, id uuid.UUID) (*entity.Disbursement, error)
	ListDisbursements(ctx context.Context, search string, programID *uuid.UUID, page repository.Page) (*DisbursementListOutput, error)
	UpdateDisbursement(ctx context.Context, id uuid.UUID, input DisbursementInput) (*entity.Disbursement, error)
	DeleteDisbursement(ctx context.Context, id uuid.UUID) error
}

package repository

import (
	"context"
	"errors"

	"givebox/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProgramNotFound is returned when a charity program is not found.
var ErrProgramNotFound = errors.New("charity program not found")

// ErrProgramInUse is returned on an attempt to delete a program that
// donations or disbursements still reference.
var ErrProgramInUse = errors.New("charity program is still referenced")

// ErrDonationNotFound is returned when a donation record is not found.
var ErrDonationNotFound = errors.New("donation record not found")

// ErrDisbursementNotFound is returned when a disbursement is not found.
var ErrDisbursementNotFound = errors.New("disbursement not found")

// ListProgramsQuery carries the admin list view parameters for programs.
type ListProgramsQuery struct {
	Search string
	Status *entity.CharityProgramStatus
	Page   Page
}

// ListDonationsQuery carries the admin list view parameters for donations.
type ListDonationsQuery struct {
	DonationType *entity.DonationType
	ProgramID    *uuid.UUID
	Page         Page
}

// CharityRepository defines the persistence operations for charity
// programs, donation records, and disbursements.
type CharityRepository interface {
	// FindProgramByID retrieves a single program by its ID.
	FindProgramByID(ctx context.Context, id uuid.UUID) (*entity.CharityProgram, error)

	// ListPrograms returns a page of programs matching the query.
	ListPrograms(ctx context.Context, query ListProgramsQuery) ([]*entity.CharityProgram, int64, error)

	// CreateProgram persists a new charity program.
	CreateProgram(ctx context.Context, program *entity.CharityProgram) error

	// UpdateProgram modifies an existing charity program.
	UpdateProgram(ctx context.Context, program *entity.CharityProgram) error

	// DeleteProgram removes a program. Fails with ErrProgramInUse while
	// any donation or disbursement references it.
	DeleteProgram(ctx context.Context, id uuid.UUID) error

	// CreateDonation records money routed into a program.
	CreateDonation(ctx context.Context, donation *entity.DonationHistory) error

	// FindDonationByID retrieves a single donation record by its ID.
	FindDonationByID(ctx context.Context, id uuid.UUID) (*entity.DonationHistory, error)

	// ListDonations returns a page of donation records matching the query.
	ListDonations(ctx context.Context, query ListDonationsQuery) ([]*entity.DonationHistory, int64, error)

	// DeleteDonation removes a donation record.
	DeleteDonation(ctx context.Context, id uuid.UUID) error

	// CreateDisbursement records an outbound payment from a program.
	CreateDisbursement(ctx context.Context, d *entity.Disbursement) error

	// FindDisbursementByID retrieves a single disbursement by its ID.
	FindDisbursementByID(ctx context.Context, id uuid.UUID) (*entity.Disbursement, error)

	// ListDisbursements returns a page of disbursements, optionally
	// scoped to a program and searched by recipient partner.
	ListDisbursements(ctx context.Context, search string, programID *uuid.UUID, page Page) ([]*entity.Disbursement, int64, error)

	// UpdateDisbursement modifies an existing disbursement.
	UpdateDisbursement(ctx context.Context, d *entity.Disbursement) error

	// DeleteDisbursement removes a disbursement.
	DeleteDisbursement(ctx context.Context, id uuid.UUID) error
}

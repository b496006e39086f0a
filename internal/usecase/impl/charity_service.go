package impl

import (
	"context"
	"log/slog"

	deliverycontext "givebox/internal/delivery/context"
	"givebox/internal/domain/entity"
	domainerrors "givebox/internal/domain/errors"
	"givebox/internal/domain/repository"
	"givebox/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// charityService implements the CharityUsecase interface.
type charityService struct {
	charityRepo repository.CharityRepository
	logger      *slog.Logger
}

// CharityServiceParams holds dependencies for charityService, injected by Fx.
type CharityServiceParams struct {
	fx.In

	CharityRepo repository.CharityRepository
	Logger      *slog.Logger
}

// NewCharityService is the constructor for charityService.
func NewCharityService(params CharityServiceParams) usecase.CharityUsecase {
	return &charityService{
		charityRepo: params.CharityRepo,
		logger:      params.Logger,
	}
}

func (srv *charityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProgram persists a new charity program.
func (srv *charityService) CreateProgram(ctx context.Context, input usecase.ProgramInput) (*entity.CharityProgram, error) {
	program := &entity.CharityProgram{
		Name:         input.Name,
		Description:  input.Description,
		Image:        input.Image,
		TargetAmount: input.TargetAmount,
		Status:       input.Status,
	}
	if program.Status == "" {
		program.Status = entity.ProgramActive
	}

	if err := srv.charityRepo.CreateProgram(ctx, program); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Charity program created", slog.Any("programID", program.ID), slog.String("name", program.Name))

	return program, nil
}

// GetProgram retrieves a single program.
func (srv *charityService) GetProgram(ctx context.Context, id uuid.UUID) (*entity.CharityProgram, error) {
	program, err := srv.charityRepo.FindProgramByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProgramNotFound) {
			return nil, domainerrors.ErrProgramNotFound
		}

		return nil, errors.Wrap(err, "failed to get charity program")
	}

	return program, nil
}

// ListPrograms returns one page of programs for the admin list view.
func (srv *charityService) ListPrograms(ctx context.Context, query repository.ListProgramsQuery) (*usecase.ProgramListOutput, error) {
	programs, total, err := srv.charityRepo.ListPrograms(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list charity programs")
	}

	return &usecase.ProgramListOutput{Programs: programs, Total: total}, nil
}

// UpdateProgram modifies an existing program.
func (srv *charityService) UpdateProgram(ctx context.Context, id uuid.UUID, input usecase.ProgramInput) (*entity.CharityProgram, error) {
	program := &entity.CharityProgram{
		ID:           id,
		Name:         input.Name,
		Description:  input.Description,
		Image:        input.Image,
		TargetAmount: input.TargetAmount,
		Status:       input.Status,
	}

	if err := srv.charityRepo.UpdateProgram(ctx, program); err != nil {
		if errors.Is(err, repository.ErrProgramNotFound) {
			return nil, domainerrors.ErrProgramNotFound
		}

		return nil, err
	}

	return program, nil
}

// DeleteProgram removes a program unless donations or disbursements
// still reference it.
func (srv *charityService) DeleteProgram(ctx context.Context, id uuid.UUID) error {
	if err := srv.charityRepo.DeleteProgram(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProgramInUse) {
			return domainerrors.ErrProgramInUse
		}
		if errors.Is(err, repository.ErrProgramNotFound) {
			return domainerrors.ErrProgramNotFound
		}

		return err
	}

	srv.log(ctx).Info("Charity program deleted", slog.Any("programID", id))

	return nil
}

// RecordDonation records money routed into a program.
func (srv *charityService) RecordDonation(ctx context.Context, input usecase.DonationInput) (*entity.DonationHistory, error) {
	if !input.DonationType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid donation type")
	}

	donation := &entity.DonationHistory{
		OrderID:      input.OrderID,
		ProgramID:    input.ProgramID,
		Amount:       input.Amount,
		DonationType: input.DonationType,
	}

	if err := srv.charityRepo.CreateDonation(ctx, donation); err != nil {
		return nil, err
	}

	return donation, nil
}

// GetDonation retrieves a single donation record.
func (srv *charityService) GetDonation(ctx context.Context, id uuid.UUID) (*entity.DonationHistory, error) {
	donation, err := srv.charityRepo.FindDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDonationNotFound) {
			return nil, domainerrors.ErrDonationNotFound
		}

		return nil, errors.Wrap(err, "failed to get donation")
	}

	return donation, nil
}

// ListDonations returns one page of donation records.
func (srv *charityService) ListDonations(ctx context.Context, query repository.ListDonationsQuery) (*usecase.DonationListOutput, error) {
	donations, total, err := srv.charityRepo.ListDonations(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list donations")
	}

	return &usecase.DonationListOutput{Donations: donations, Total: total}, nil
}

// DeleteDonation removes a donation record.
func (srv *charityService) DeleteDonation(ctx context.Context, id uuid.UUID) error {
	if err := srv.charityRepo.DeleteDonation(ctx, id); err != nil {
		if errors.Is(err, repository.ErrDonationNotFound) {
			return domainerrors.ErrDonationNotFound
		}

		return err
	}

	return nil
}

// CreateDisbursement records an outbound payment from a program.
func (srv *charityService) CreateDisbursement(ctx context.Context, input usecase.DisbursementInput) (*entity.Disbursement, error) {
	disbursement := &entity.Disbursement{
		ProgramID:        input.ProgramID,
		Amount:           input.Amount,
		DisbursedAt:      input.DisbursedAt,
		RecipientPartner: input.RecipientPartner,
		Notes:            input.Notes,
		ProofLink:        input.ProofLink,
	}

	if err := srv.charityRepo.CreateDisbursement(ctx, disbursement); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Disbursement recorded",
		slog.Any("disbursementID", disbursement.ID), slog.Any("programID", disbursement.ProgramID))

	return disbursement, nil
}

// GetDisbursement retrieves a single disbursement.
func (srv *charityService) GetDisbursement(ctx context.Context, id uuid.UUID) (*entity.Disbursement, error) {
	disbursement, err := srv.charityRepo.FindDisbursementByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDisbursementNotFound) {
			return nil, domainerrors.ErrDisbursementNotFound
		}

		return nil, errors.Wrap(err, "failed to get disbursement")
	}

	return disbursement, nil
}

// ListDisbursements returns one page of disbursements.
func (srv *charityService) ListDisbursements(ctx context.Context, search string, programID *uuid.UUID, page repository.Page) (*usecase.DisbursementListOutput, error) {
	disbursements, total, err := srv.charityRepo.ListDisbursements(ctx, search, programID, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list disbursements")
	}

	return &usecase.DisbursementListOutput{Disbursements: disbursements, Total: total}, nil
}

// UpdateDisbursement modifies an existing disbursement.
func (srv *charityService) UpdateDisbursement(ctx context.Context, id uuid.UUID, input usecase.DisbursementInput) (*entity.Disbursement, error) {
	disbursement := &entity.Disbursement{
		ID:               id,
		ProgramID:        input.ProgramID,
		Amount:           input.Amount,
		DisbursedAt:      input.DisbursedAt,
		RecipientPartner: input.RecipientPartner,
		Notes:            input.Notes,
		ProofLink:        input.ProofLink,
	}

	if err := srv.charityRepo.UpdateDisbursement(ctx, disbursement); err != nil {
		if errors.Is(err, repository.ErrDisbursementNotFound) {
			return nil, domainerrors.ErrDisbursementNotFound
		}

		return nil, err
	}

	return disbursement, nil
}

// DeleteDisbursement removes a disbursement.
func (srv *charityService) DeleteDisbursement(ctx context.Context, id uuid.UUID) error {
	if err := srv.charityRepo.DeleteDisbursement(ctx, id); err != nil {
		if errors.Is(err, repository.ErrDisbursementNotFound) {
			return domainerrors.ErrDisbursementNotFound
		}

		return err
	}

	return nil
}

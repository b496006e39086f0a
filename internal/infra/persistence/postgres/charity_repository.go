package postgres

import (
	"context"
	"strings"

	"givebox/internal/domain/entity"
	domainerrors "givebox/internal/domain/errors"
	"givebox/internal/domain/repository"
	"givebox/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// charityRepository implements the repository.CharityRepository interface using GORM.
type charityRepository struct {
	db *gorm.DB
}

// NewCharityRepository is the constructor for charityRepository.
func NewCharityRepository(db *gorm.DB) repository.CharityRepository {
	return &charityRepository{db: db}
}

// FindProgramByID retrieves a single program by its ID.
func (repo *charityRepository) FindProgramByID(ctx context.Context, id uuid.UUID) (*entity.CharityProgram, error) {
	var programM model.CharityProgramModel
	err := repo.db.WithContext(ctx).First(&programM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProgramNotFound
		}

		return nil, errors.Wrap(err, "failed to find charity program by id")
	}

	return toProgramDomain(&programM), nil
}

// ListPrograms returns one page of programs matching the admin list query.
func (repo *charityRepository) ListPrograms(ctx context.Context, query repository.ListProgramsQuery) ([]*entity.CharityProgram, int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.CharityProgramModel{})

	if s := strings.TrimSpace(query.Search); s != "" {
		pattern := "%" + s + "%"
		tx = tx.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if query.Status != nil {
		tx = tx.Where("status = ?", query.Status.String())
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count charity programs")
	}

	var programMs []*model.CharityProgramModel
	err := tx.Order("name ASC").
		Scopes(paginate(query.Page)).
		Find(&programMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list charity programs")
	}

	programs := make([]*entity.CharityProgram, 0, len(programMs))
	for _, programM := range programMs {
		programs = append(programs, toProgramDomain(programM))
	}

	return programs, total, nil
}

// CreateProgram persists a new charity program.
func (repo *charityRepository) CreateProgram(ctx context.Context, program *entity.CharityProgram) error {
	programM := fromProgramDomain(program)

	if err := repo.db.WithContext(ctx).Create(programM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProgramNameTaken.WrapMessage("program name already exists")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValueOutOfRange.WrapMessage("target amount must not be negative")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMissingRequiredField.WrapMessage("missing required program information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create charity program")
	}

	program.ID = programM.ID

	return nil
}

// UpdateProgram modifies an existing charity program.
func (repo *charityRepository) UpdateProgram(ctx context.Context, program *entity.CharityProgram) error {
	programM := fromProgramDomain(program)

	result := repo.db.WithContext(ctx).
		Model(&model.CharityProgramModel{}).
		Where("id = ?", programM.ID).
		Updates(map[string]any{
			"name":          programM.Name,
			"description":   programM.Description,
			"image":         programM.Image,
			"target_amount": programM.TargetAmount,
			"status":        programM.Status,
		})
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProgramNameTaken.WrapMessage("program name already exists")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValueOutOfRange.WrapMessage("target amount must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update charity program")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProgramNotFound
	}

	return nil
}

// DeleteProgram removes a program. The RESTRICT rules on donations and
// disbursements turn an in-use delete into a foreign key violation.
func (repo *charityRepository) DeleteProgram(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.CharityProgramModel{}, "id = ?", id)
	if err := result.Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProgramInUse
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete charity program")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProgramNotFound
	}

	return nil
}

// CreateDonation records money routed into a program.
func (repo *charityRepository) CreateDonation(ctx context.Context, donation *entity.DonationHistory) error {
	donationM := fromDonationDomain(donation)

	if err := repo.db.WithContext(ctx).Create(donationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidReference.WrapMessage("order or program does not exist")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValueOutOfRange.WrapMessage("donation amount must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create donation record")
	}

	donation.ID = donationM.ID

	return nil
}

// FindDonationByID retrieves a single donation record by its ID.
func (repo *charityRepository) FindDonationByID(ctx context.Context, id uuid.UUID) (*entity.DonationHistory, error) {
	var donationM model.DonationHistoryModel
	err := repo.db.WithContext(ctx).First(&donationM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDonationNotFound
		}

		return nil, errors.Wrap(err, "failed to find donation by id")
	}

	return toDonationDomain(&donationM), nil
}

// ListDonations returns one page of donation records matching the query.
func (repo *charityRepository) ListDonations(ctx context.Context, query repository.ListDonationsQuery) ([]*entity.DonationHistory, int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.DonationHistoryModel{})

	if query.DonationType != nil {
		tx = tx.Where("donation_type = ?", query.DonationType.String())
	}
	if query.ProgramID != nil {
		tx = tx.Where("program_id = ?", *query.ProgramID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count donations")
	}

	var donationMs []*model.DonationHistoryModel
	err := tx.Order("id").
		Scopes(paginate(query.Page)).
		Find(&donationMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list donations")
	}

	donations := make([]*entity.DonationHistory, 0, len(donationMs))
	for _, donationM := range donationMs {
		donations = append(donations, toDonationDomain(donationM))
	}

	return donations, total, nil
}

// DeleteDonation removes a donation record.
func (repo *charityRepository) DeleteDonation(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.DonationHistoryModel{}, "id = ?", id)
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete donation record")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDonationNotFound
	}

	return nil
}

// CreateDisbursement records an outbound payment from a program.
func (repo *charityRepository) CreateDisbursement(ctx context.Context, d *entity.Disbursement) error {
	disbursementM := fromDisbursementDomain(d)

	if err := repo.db.WithContext(ctx).Create(disbursementM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidReference.WrapMessage("program does not exist")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValueOutOfRange.WrapMessage("disbursement amount must not be negative")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMissingRequiredField.WrapMessage("missing required disbursement information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create disbursement")
	}

	d.ID = disbursementM.ID

	return nil
}

// FindDisbursementByID retrieves a single disbursement by its ID.
func (repo *charityRepository) FindDisbursementByID(ctx context.Context, id uuid.UUID) (*entity.Disbursement, error) {
	var disbursementM model.DisbursementModel
	err := repo.db.WithContext(ctx).First(&disbursementM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDisbursementNotFound
		}

		return nil, errors.Wrap(err, "failed to find disbursement by id")
	}

	return toDisbursementDomain(&disbursementM), nil
}

// ListDisbursements returns one page of disbursements, optionally scoped
// to a program and searched by recipient partner.
func (repo *charityRepository) ListDisbursements(ctx context.Context, search string, programID *uuid.UUID, page repository.Page) ([]*entity.Disbursement, int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.DisbursementModel{})

	if s := strings.TrimSpace(search); s != "" {
		tx = tx.Where("recipient_partner ILIKE ?", "%"+s+"%")
	}
	if programID != nil {
		tx = tx.Where("program_id = ?", *programID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count disbursements")
	}

	var disbursementMs []*model.DisbursementModel
	err := tx.Order("disbursed_at DESC").
		Scopes(paginate(page)).
		Find(&disbursementMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list disbursements")
	}

	disbursements := make([]*entity.Disbursement, 0, len(disbursementMs))
	for _, disbursementM := range disbursementMs {
		disbursements = append(disbursements, toDisbursementDomain(disbursementM))
	}

	return disbursements, total, nil
}

// UpdateDisbursement modifies an existing disbursement.
func (repo *charityRepository) UpdateDisbursement(ctx context.Context, d *entity.Disbursement) error {
	disbursementM := fromDisbursementDomain(d)

	result := repo.db.WithContext(ctx).
		Model(&model.DisbursementModel{}).
		Where("id = ?", disbursementM.ID).
		Updates(map[string]any{
			"program_id":        disbursementM.ProgramID,
			"amount":            disbursementM.Amount,
			"disbursed_at":      disbursementM.DisbursedAt,
			"recipient_partner": disbursementM.RecipientPartner,
			"notes":             disbursementM.Notes,
			"proof_link":        disbursementM.ProofLink,
		})
	if err := result.Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidReference.WrapMessage("program does not exist")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValueOutOfRange.WrapMessage("disbursement amount must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update disbursement")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDisbursementNotFound
	}

	return nil
}

// DeleteDisbursement removes a disbursement.
func (repo *charityRepository) DeleteDisbursement(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.DisbursementModel{}, "id = ?", id)
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete disbursement")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDisbursementNotFound
	}

	return nil
}

func toProgramDomain(programM *model.CharityProgramModel) *entity.CharityProgram {
	return &entity.CharityProgram{
		ID:           programM.ID,
		Name:         programM.Name,
		Description:  programM.Description,
		Image:        programM.Image,
		TargetAmount: programM.TargetAmount,
		Status:       entity.CharityProgramStatus(programM.Status),
	}
}

func fromProgramDomain(program *entity.CharityProgram) *model.CharityProgramModel {
	return &model.CharityProgramModel{
		ID:           program.ID,
		Name:         program.Name,
		Description:  program.Description,
		Image:        program.Image,
		TargetAmount: program.TargetAmount,
		Status:       program.Status.String(),
	}
}

func toDonationDomain(donationM *model.DonationHistoryModel) *entity.DonationHistory {
	return &entity.DonationHistory{
		ID:           donationM.ID,
		OrderID:      donationM.OrderID,
		ProgramID:    donationM.ProgramID,
		Amount:       donationM.Amount,
		DonationType: entity.DonationType(donationM.DonationType),
	}
}

func fromDonationDomain(donation *entity.DonationHistory) *model.DonationHistoryModel {
	return &model.DonationHistoryModel{
		ID:           donation.ID,
		OrderID:      donation.OrderID,
		ProgramID:    donation.ProgramID,
		Amount:       donation.Amount,
		DonationType: donation.DonationType.String(),
	}
}

func toDisbursementDomain(disbursementM *model.DisbursementModel) *entity.Disbursement {
	return &entity.Disbursement{
		ID:               disbursementM.ID,
		ProgramID:        disbursementM.ProgramID,
		Amount:           disbursementM.Amount,
		DisbursedAt:      disbursementM.DisbursedAt,
		RecipientPartner: disbursementM.RecipientPartner,
		Notes:            disbursementM.Notes,
		ProofLink:        disbursementM.ProofLink,
	}
}

func fromDisbursementDomain(d *entity.Disbursement) *model.DisbursementModel {
	return &model.DisbursementModel{
		ID:               d.ID,
		ProgramID:        d.ProgramID,
		Amount:           d.Amount,
		DisbursedAt:      d.DisbursedAt,
		RecipientPartner: d.RecipientPartner,
		Notes:            d.Notes,
		ProofLink:        d.ProofLink,
	}
}

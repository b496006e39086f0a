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

// otpRepository implements the repository.OTPRepository interface using GORM.
type otpRepository struct {
	db *gorm.DB
}

// NewOTPRepository is the constructor for otpRepository.
func NewOTPRepository(db *gorm.DB) repository.OTPRepository {
	return &otpRepository{db: db}
}

// Create stores a freshly issued verification code.
func (repo *otpRepository) Create(ctx context.Context, otp *entity.OTPVerification) error {
	otpM := fromOTPDomain(otp)

	if err := repo.db.WithContext(ctx).Create(otpM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMissingRequiredField.WrapMessage("missing required otp information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create otp verification")
	}

	otp.ID = otpM.ID

	return nil
}

// FindLatestByEmail returns the most recently issued code for the email.
func (repo *otpRepository) FindLatestByEmail(ctx context.Context, email string) (*entity.OTPVerification, error) {
	var otpM model.OTPVerificationModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at DESC").
		First(&otpM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOTPNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest otp by email")
	}

	return toOTPDomain(&otpM), nil
}

// MarkUsed flags a code as consumed.
func (repo *otpRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OTPVerificationModel{}).
		Where("id = ?", id).
		Update("is_used", true)
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to mark otp as used")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOTPNotFound
	}

	return nil
}

// List returns a page of codes for the admin console.
func (repo *otpRepository) List(ctx context.Context, search string, isUsed *bool, page repository.Page) ([]*entity.OTPVerification, int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.OTPVerificationModel{})

	if s := strings.TrimSpace(search); s != "" {
		tx = tx.Where("email ILIKE ?", "%"+s+"%")
	}
	if isUsed != nil {
		tx = tx.Where("is_used = ?", *isUsed)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count otp verifications")
	}

	var otpMs []*model.OTPVerificationModel
	err := tx.Order("created_at DESC").
		Scopes(paginate(page)).
		Find(&otpMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list otp verifications")
	}

	otps := make([]*entity.OTPVerification, 0, len(otpMs))
	for _, otpM := range otpMs {
		otps = append(otps, toOTPDomain(otpM))
	}

	return otps, total, nil
}

func toOTPDomain(otpM *model.OTPVerificationModel) *entity.OTPVerification {
	return &entity.OTPVerification{
		ID:        otpM.ID,
		Email:     otpM.Email,
		OTPCode:   otpM.OTPCode,
		ExpiresAt: otpM.ExpiresAt,
		IsUsed:    otpM.IsUsed,
	}
}

func fromOTPDomain(otp *entity.OTPVerification) *model.OTPVerificationModel {
	return &model.OTPVerificationModel{
		ID:        otp.ID,
		Email:     otp.Email,
		OTPCode:   otp.OTPCode,
		ExpiresAt: otp.ExpiresAt,
		IsUsed:    otp.IsUsed,
	}
}

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

// voucherRepository implements the repository.VoucherRepository interface using GORM.
type voucherRepository struct {
	db *gorm.DB
}

// NewVoucherRepository is the constructor for voucherRepository.
func NewVoucherRepository(db *gorm.DB) repository.VoucherRepository {
	return &voucherRepository{db: db}
}

// FindByID retrieves a single voucher by its ID.
func (repo *voucherRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Voucher, error) {
	var voucherM model.VoucherModel
	err := repo.db.WithContext(ctx).First(&voucherM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVoucherNotFound
		}

		return nil, errors.Wrap(err, "failed to find voucher by id")
	}

	return toVoucherDomain(&voucherM), nil
}

// List returns one page of vouchers matching the admin list query.
func (repo *voucherRepository) List(ctx context.Context, query repository.ListVouchersQuery) ([]*entity.Voucher, int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.VoucherModel{})

	if s := strings.TrimSpace(query.Search); s != "" {
		tx = tx.Where("name ILIKE ?", "%"+s+"%")
	}
	if query.VoucherType != nil {
		tx = tx.Where("voucher_type = ?", query.VoucherType.String())
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count vouchers")
	}

	var voucherMs []*model.VoucherModel
	err := tx.Order("points_required ASC").
		Scopes(paginate(query.Page)).
		Find(&voucherMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list vouchers")
	}

	vouchers := make([]*entity.Voucher, 0, len(voucherMs))
	for _, voucherM := range voucherMs {
		vouchers = append(vouchers, toVoucherDomain(voucherM))
	}

	return vouchers, total, nil
}

// Create persists a new voucher definition.
func (repo *voucherRepository) Create(ctx context.Context, voucher *entity.Voucher) error {
	voucherM := fromVoucherDomain(voucher)

	if err := repo.db.WithContext(ctx).Create(voucherM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValueOutOfRange.WrapMessage("points required must not be negative")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMissingRequiredField.WrapMessage("missing required voucher information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create voucher")
	}

	voucher.ID = voucherM.ID

	return nil
}

// Update modifies an existing voucher definition.
func (repo *voucherRepository) Update(ctx context.Context, voucher *entity.Voucher) error {
	voucherM := fromVoucherDomain(voucher)

	result := repo.db.WithContext(ctx).
		Model(&model.VoucherModel{}).
		Where("id = ?", voucherM.ID).
		Updates(map[string]any{
			"name":            voucherM.Name,
			"points_required": voucherM.PointsRequired,
			"discount_value":  voucherM.DiscountValue,
			"voucher_type":    voucherM.VoucherType,
			"conditions":      voucherM.Conditions,
		})
	if err := result.Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValueOutOfRange.WrapMessage("points required must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update voucher")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVoucherNotFound
	}

	return nil
}

// Delete removes a voucher. The RESTRICT rule on issued instances turns
// an in-use delete into a foreign key violation.
func (repo *voucherRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.VoucherModel{}, "id = ?", id)
	if err := result.Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrVoucherInUse
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete voucher")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVoucherNotFound
	}

	return nil
}

// CreateRedeemedOffer issues a voucher instance to a user.
func (repo *voucherRepository) CreateRedeemedOffer(ctx context.Context, offer *entity.RedeemedOffer) error {
	offerM := fromRedeemedOfferDomain(offer)

	if err := repo.db.WithContext(ctx).Create(offerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrRedeemedCodeTaken.WrapMessage("redeemed code already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidReference.WrapMessage("user or voucher does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create redeemed offer")
	}

	offer.ID = offerM.ID
	offer.RedeemedAt = offerM.RedeemedAt

	return nil
}

// FindRedeemedOfferByID retrieves a single issued offer by its ID.
func (repo *voucherRepository) FindRedeemedOfferByID(ctx context.Context, id uuid.UUID) (*entity.RedeemedOffer, error) {
	var offerM model.RedeemedOfferModel
	err := repo.db.WithContext(ctx).First(&offerM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRedeemedOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find redeemed offer by id")
	}

	return toRedeemedOfferDomain(&offerM), nil
}

// FindRedeemedOfferByCode retrieves a single issued offer by its code.
func (repo *voucherRepository) FindRedeemedOfferByCode(ctx context.Context, code string) (*entity.RedeemedOffer, error) {
	var offerM model.RedeemedOfferModel
	err := repo.db.WithContext(ctx).First(&offerM, "redeemed_code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRedeemedOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find redeemed offer by code")
	}

	return toRedeemedOfferDomain(&offerM), nil
}

// ListRedeemedOffers returns one page of issued offers matching the query.
func (repo *voucherRepository) ListRedeemedOffers(ctx context.Context, query repository.ListRedeemedOffersQuery) ([]*entity.RedeemedOffer, int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.RedeemedOfferModel{})

	if s := strings.TrimSpace(query.Search); s != "" {
		tx = tx.Where("redeemed_code ILIKE ?", "%"+s+"%")
	}
	if query.UsageStatus != nil {
		tx = tx.Where("usage_status = ?", query.UsageStatus.String())
	}
	if query.UserID != nil {
		tx = tx.Where("user_id = ?", *query.UserID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count redeemed offers")
	}

	var offerMs []*model.RedeemedOfferModel
	err := tx.Order("redeemed_at DESC").
		Scopes(paginate(query.Page)).
		Find(&offerMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list redeemed offers")
	}

	offers := make([]*entity.RedeemedOffer, 0, len(offerMs))
	for _, offerM := range offerMs {
		offers = append(offers, toRedeemedOfferDomain(offerM))
	}

	return offers, total, nil
}

// SetUsageStatus updates the usage state of an issued offer. The code is
// immutable and deliberately never touched here.
func (repo *voucherRepository) SetUsageStatus(ctx context.Context, id uuid.UUID, status entity.RedeemedStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RedeemedOfferModel{}).
		Where("id = ?", id).
		Update("usage_status", status.String())
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to set redeemed offer usage status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRedeemedOfferNotFound
	}

	return nil
}

// DeleteRedeemedOffer removes an issued offer.
func (repo *voucherRepository) DeleteRedeemedOffer(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.RedeemedOfferModel{}, "id = ?", id)
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete redeemed offer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRedeemedOfferNotFound
	}

	return nil
}

func toVoucherDomain(voucherM *model.VoucherModel) *entity.Voucher {
	return &entity.Voucher{
		ID:             voucherM.ID,
		Name:           voucherM.Name,
		PointsRequired: voucherM.PointsRequired,
		DiscountValue:  voucherM.DiscountValue,
		VoucherType:    entity.VoucherType(voucherM.VoucherType),
		Conditions:     voucherM.Conditions,
	}
}

func fromVoucherDomain(voucher *entity.Voucher) *model.VoucherModel {
	return &model.VoucherModel{
		ID:             voucher.ID,
		Name:           voucher.Name,
		PointsRequired: voucher.PointsRequired,
		DiscountValue:  voucher.DiscountValue,
		VoucherType:    voucher.VoucherType.String(),
		Conditions:     voucher.Conditions,
	}
}

func toRedeemedOfferDomain(offerM *model.RedeemedOfferModel) *entity.RedeemedOffer {
	return &entity.RedeemedOffer{
		ID:           offerM.ID,
		UserID:       offerM.UserID,
		VoucherID:    offerM.VoucherID,
		RedeemedCode: offerM.RedeemedCode,
		RedeemedAt:   offerM.RedeemedAt,
		UsageStatus:  entity.RedeemedStatus(offerM.UsageStatus),
	}
}

func fromRedeemedOfferDomain(offer *entity.RedeemedOffer) *model.RedeemedOfferModel {
	return &model.RedeemedOfferModel{
		ID:           offer.ID,
		UserID:       offer.UserID,
		VoucherID:    offer.VoucherID,
		RedeemedCode: offer.RedeemedCode,
		UsageStatus:  offer.UsageStatus.String(),
	}
}

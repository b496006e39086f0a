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

// reviewRepository implements the repository.ReviewRepository interface using GORM.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// FindByID retrieves a single review by its ID.
func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel
	err := repo.db.WithContext(ctx).First(&reviewM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by id")
	}

	return toReviewDomain(&reviewM), nil
}

// List returns one page of reviews matching the admin list query plus the total match count.
func (repo *reviewRepository) List(ctx context.Context, query repository.ListReviewsQuery) ([]*entity.Review, int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.ReviewModel{})

	if s := strings.TrimSpace(query.Search); s != "" {
		tx = tx.Where("comment ILIKE ?", "%"+s+"%")
	}
	if query.DisplayStatus != nil {
		tx = tx.Where("display_status = ?", query.DisplayStatus.String())
	}
	if query.Rating != nil {
		tx = tx.Where("rating = ?", *query.Rating)
	}
	if query.ProductID != nil {
		tx = tx.Where("product_id = ?", *query.ProductID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count reviews")
	}

	var reviewMs []*model.ReviewModel
	err := tx.Order("created_at DESC").
		Scopes(paginate(query.Page)).
		Find(&reviewMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewMs))
	for _, reviewM := range reviewMs {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, total, nil
}

// Create persists a new review.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidReference.WrapMessage("user or product does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMissingRequiredField.WrapMessage("missing required review information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt

	return nil
}

// Update modifies an existing review.
func (repo *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ?", reviewM.ID).
		Updates(map[string]any{
			"rating":         reviewM.Rating,
			"comment":        reviewM.Comment,
			"display_status": reviewM.DisplayStatus,
		})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// Delete removes a review.
func (repo *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ReviewModel{}, "id = ?", id)
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// SetDisplayStatus updates only the display status column (admin quick edit).
func (repo *reviewRepository) SetDisplayStatus(ctx context.Context, id uuid.UUID, status entity.ReviewStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ?", id).
		Update("display_status", status.String())
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to set review display status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

func toReviewDomain(reviewM *model.ReviewModel) *entity.Review {
	return &entity.Review{
		ID:            reviewM.ID,
		UserID:        reviewM.UserID,
		ProductID:     reviewM.ProductID,
		Rating:        reviewM.Rating,
		Comment:       reviewM.Comment,
		CreatedAt:     reviewM.CreatedAt,
		DisplayStatus: entity.ReviewStatus(reviewM.DisplayStatus),
	}
}

func fromReviewDomain(review *entity.Review) *model.ReviewModel {
	return &model.ReviewModel{
		ID:            review.ID,
		UserID:        review.UserID,
		ProductID:     review.ProductID,
		Rating:        review.Rating,
		Comment:       review.Comment,
		CreatedAt:     review.CreatedAt,
		DisplayStatus: review.DisplayStatus.String(),
	}
}

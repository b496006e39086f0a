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

// contentRepository implements the repository.ContentRepository interface using GORM.
type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository is the constructor for contentRepository.
func NewContentRepository(db *gorm.DB) repository.ContentRepository {
	return &contentRepository{db: db}
}

// FindByID retrieves a single post by its ID.
func (repo *contentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ContentPost, error) {
	var postM model.ContentPostModel
	err := repo.db.WithContext(ctx).First(&postM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find content post by id")
	}

	return toPostDomain(&postM), nil
}

// List returns one page of posts matching the admin list query.
func (repo *contentRepository) List(ctx context.Context, query repository.ListPostsQuery) ([]*entity.ContentPost, int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.ContentPostModel{})

	if s := strings.TrimSpace(query.Search); s != "" {
		pattern := "%" + s + "%"
		tx = tx.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
	}
	if query.PostType != nil {
		tx = tx.Where("post_type = ?", query.PostType.String())
	}
	if query.AuthorID != nil {
		tx = tx.Where("author_id = ?", *query.AuthorID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count content posts")
	}

	var postMs []*model.ContentPostModel
	err := tx.Order("published_at DESC").
		Scopes(paginate(query.Page)).
		Find(&postMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list content posts")
	}

	posts := make([]*entity.ContentPost, 0, len(postMs))
	for _, postM := range postMs {
		posts = append(posts, toPostDomain(postM))
	}

	return posts, total, nil
}

// Create persists a new post.
func (repo *contentRepository) Create(ctx context.Context, post *entity.ContentPost) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidReference.WrapMessage("author does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMissingRequiredField.WrapMessage("missing required post information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create content post")
	}

	post.ID = postM.ID
	post.PublishedAt = postM.PublishedAt

	return nil
}

// Update modifies an existing post.
func (repo *contentRepository) Update(ctx context.Context, post *entity.ContentPost) error {
	postM := fromPostDomain(post)

	result := repo.db.WithContext(ctx).
		Model(&model.ContentPostModel{}).
		Where("id = ?", postM.ID).
		Updates(map[string]any{
			"title":          postM.Title,
			"content":        postM.Content,
			"featured_image": postM.FeaturedImage,
			"author_id":      postM.AuthorID,
			"post_type":      postM.PostType,
		})
	if err := result.Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidReference.WrapMessage("author does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update content post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// Delete removes a post.
func (repo *contentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ContentPostModel{}, "id = ?", id)
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete content post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

func toPostDomain(postM *model.ContentPostModel) *entity.ContentPost {
	return &entity.ContentPost{
		ID:            postM.ID,
		Title:         postM.Title,
		Content:       postM.Content,
		FeaturedImage: postM.FeaturedImage,
		AuthorID:      postM.AuthorID,
		PublishedAt:   postM.PublishedAt,
		PostType:      entity.PostType(postM.PostType),
	}
}

func fromPostDomain(post *entity.ContentPost) *model.ContentPostModel {
	return &model.ContentPostModel{
		ID:            post.ID,
		Title:         post.Title,
		Content:       post.Content,
		FeaturedImage: post.FeaturedImage,
		AuthorID:      post.AuthorID,
		PostType:      post.PostType.String(),
	}
}

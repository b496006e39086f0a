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

// contentService implements the ContentUsecase interface.
type contentService struct {
	contentRepo repository.ContentRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// ContentServiceParams holds dependencies for contentService, injected by Fx.
type ContentServiceParams struct {
	fx.In

	ContentRepo repository.ContentRepository
	UserRepo    repository.UserRepository
	Logger      *slog.Logger
}

// NewContentService is the constructor for contentService.
func NewContentService(params ContentServiceParams) usecase.ContentUsecase {
	return &contentService{
		contentRepo: params.ContentRepo,
		userRepo:    params.UserRepo,
		logger:      params.Logger,
	}
}

func (srv *contentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// requireAdminAuthor verifies that the author, when set, holds the ADMIN
// role. The schema leaves the column unconstrained; this is the
// application-level gate.
func (srv *contentService) requireAdminAuthor(ctx context.Context, authorID *uuid.UUID) error {
	if authorID == nil {
		return nil
	}

	author, err := srv.userRepo.FindByID(ctx, *authorID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrInvalidReference.WrapMessage("author does not exist")
		}

		return errors.Wrap(err, "failed to load post author")
	}
	if !author.IsAdmin() {
		return domainerrors.ErrAuthorNotAdmin
	}

	return nil
}

// CreatePost persists a new post after the author check.
func (srv *contentService) CreatePost(ctx context.Context, input usecase.PostInput) (*entity.ContentPost, error) {
	if !input.PostType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid post type")
	}
	if err := srv.requireAdminAuthor(ctx, input.AuthorID); err != nil {
		return nil, err
	}

	post := &entity.ContentPost{
		Title:         input.Title,
		Content:       input.Content,
		FeaturedImage: input.FeaturedImage,
		AuthorID:      input.AuthorID,
		PostType:      input.PostType,
	}

	if err := srv.contentRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Content post created", slog.Any("postID", post.ID), slog.String("title", post.Title))

	return post, nil
}

// GetPost retrieves a single post.
func (srv *contentService) GetPost(ctx context.Context, id uuid.UUID) (*entity.ContentPost, error) {
	post, err := srv.contentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to get content post")
	}

	return post, nil
}

// ListPosts returns one page of posts for the admin list view.
func (srv *contentService) ListPosts(ctx context.Context, query repository.ListPostsQuery) (*usecase.PostListOutput, error) {
	posts, total, err := srv.contentRepo.List(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list content posts")
	}

	return &usecase.PostListOutput{Posts: posts, Total: total}, nil
}

// UpdatePost modifies an existing post after the author check.
func (srv *contentService) UpdatePost(ctx context.Context, id uuid.UUID, input usecase.PostInput) (*entity.ContentPost, error) {
	if !input.PostType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid post type")
	}
	if err := srv.requireAdminAuthor(ctx, input.AuthorID); err != nil {
		return nil, err
	}

	post := &entity.ContentPost{
		ID:            id,
		Title:         input.Title,
		Content:       input.Content,
		FeaturedImage: input.FeaturedImage,
		AuthorID:      input.AuthorID,
		PostType:      input.PostType,
	}

	if err := srv.contentRepo.Update(ctx, post); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, err
	}

	return post, nil
}

// DeletePost removes a post.
func (srv *contentService) DeletePost(ctx context.Context, id uuid.UUID) error {
	if err := srv.contentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return domainerrors.ErrPostNotFound
		}

		return err
	}

	srv.log(ctx).Info("Content post deleted", slog.Any("postID", id))

	return nil
}

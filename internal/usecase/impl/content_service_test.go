package impl

import (
	"context"
	"testing"

	"givebox/internal/domain/entity"
	domainerrors "givebox/internal/domain/errors"
	"givebox/internal/domain/repository"
	mockRepo "givebox/internal/mocks/repository"
	"givebox/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newContentService(t *testing.T, contentRepo *mockRepo.MockContentRepository, userRepo *mockRepo.MockUserRepository) usecase.ContentUsecase {
	t.Helper()

	return NewContentService(ContentServiceParams{
		ContentRepo: contentRepo,
		UserRepo:    userRepo,
		Logger:      newDiscardLogger(),
	})
}

func TestContentService_CreatePost_WithoutAuthor(t *testing.T) {
	contentRepo := mockRepo.NewMockContentRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newContentService(t, contentRepo, userRepo)

	ctx := context.Background()
	contentRepo.On("Create", ctx, mock.MatchedBy(func(p *entity.ContentPost) bool {
		return p.Title == "Year in review" && p.AuthorID == nil
	})).Return(nil)

	post, err := service.CreatePost(ctx, usecase.PostInput{
		Title:    "Year in review",
		Content:  "Every box shipped this winter funded a warm meal.",
		PostType: entity.PostReport,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PostReport, post.PostType)
	userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestContentService_CreatePost_AdminAuthor(t *testing.T) {
	contentRepo := mockRepo.NewMockContentRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newContentService(t, contentRepo, userRepo)

	ctx := context.Background()
	admin := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin, IsStaff: true, IsActive: true}

	userRepo.On("FindByID", ctx, admin.ID).Return(admin, nil)
	contentRepo.On("Create", ctx, mock.Anything).Return(nil)

	_, err := service.CreatePost(ctx, usecase.PostInput{
		Title:    "New partner program",
		Content:  "We are onboarding a second food bank.",
		AuthorID: &admin.ID,
		PostType: entity.PostNews,
	})
	require.NoError(t, err)
}

func TestContentService_CreatePost_UnknownAuthor(t *testing.T) {
	contentRepo := mockRepo.NewMockContentRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newContentService(t, contentRepo, userRepo)

	ctx := context.Background()
	authorID := uuid.New()
	userRepo.On("FindByID", ctx, authorID).Return(nil, repository.ErrUserNotFound)

	_, err := service.CreatePost(ctx, usecase.PostInput{
		Title:    "Ghost written",
		Content:  "...",
		AuthorID: &authorID,
		PostType: entity.PostBlog,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidReference)
	contentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestContentService_CreatePost_NonAdminAuthor(t *testing.T) {
	contentRepo := mockRepo.NewMockContentRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newContentService(t, contentRepo, userRepo)

	ctx := context.Background()
	customer := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer, IsActive: true}
	userRepo.On("FindByID", ctx, customer.ID).Return(customer, nil)

	_, err := service.CreatePost(ctx, usecase.PostInput{
		Title:    "My story",
		Content:  "...",
		AuthorID: &customer.ID,
		PostType: entity.PostBlog,
	})
	assert.ErrorIs(t, err, domainerrors.ErrAuthorNotAdmin)
	contentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestContentService_CreatePost_InvalidType(t *testing.T) {
	contentRepo := mockRepo.NewMockContentRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newContentService(t, contentRepo, userRepo)

	_, err := service.CreatePost(context.Background(), usecase.PostInput{
		Title:    "Untyped",
		Content:  "...",
		PostType: entity.PostType("PODCAST"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestContentService_UpdatePost_NotFound(t *testing.T) {
	contentRepo := mockRepo.NewMockContentRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newContentService(t, contentRepo, userRepo)

	ctx := context.Background()
	contentRepo.On("Update", ctx, mock.Anything).Return(repository.ErrPostNotFound)

	_, err := service.UpdatePost(ctx, uuid.New(), usecase.PostInput{
		Title:    "Edited",
		Content:  "...",
		PostType: entity.PostBlog,
	})
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
}

func TestContentService_DeletePost_NotFound(t *testing.T) {
	contentRepo := mockRepo.NewMockContentRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	service := newContentService(t, contentRepo, userRepo)

	ctx := context.Background()
	id := uuid.New()
	contentRepo.On("Delete", ctx, id).Return(repository.ErrPostNotFound)

	err := service.DeletePost(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
}

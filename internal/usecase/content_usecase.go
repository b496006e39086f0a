package usecase

import (
	"context"

	"givebox/internal/domain/entity"
	"givebox/internal/domain/repository"

	"github.com/google/uuid"
)

// PostInput defines the data of a content post.
type PostInput struct {
	Title         string
	Content       string
	FeaturedImage string
	AuthorID      *uuid.UUID
	PostType      entity.PostType
}

// PostListOutput returns one page of posts with the total match count.
type PostListOutput struct {
	Posts []*entity.ContentPost
	Total int64
}

// ContentUsecase defines the business operations over content posts.
// Posts may only be authored by administrators.
type ContentUsecase interface {
	CreatePost(ctx context.Context, input PostInput) (*entity.ContentPost, error)
	GetPost(ctx context.Context, id uuid.UUID) (*entity.ContentPost, error)
	ListPosts(ctx context.Context, query repository.ListPostsQuery) (*PostListOutput, error)
	UpdatePost(ctx context.Context, id uuid.UUID, input PostInput) (*entity.ContentPost, error)
	DeletePost(ctx context.Context, id uuid.UUID) error
}

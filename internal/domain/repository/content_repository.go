package repository

import (
	"context"
	"errors"

	"givebox/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPostNotFound is returned when a content post is not found.
var ErrPostNotFound = errors.New("content post not found")

// ListPostsQuery carries the admin list view parameters for content
// posts: search over title/content, filters over type and author.
type ListPostsQuery struct {
	Search   string
	PostType *entity.PostType
	AuthorID *uuid.UUID
	Page     Page
}

// ContentRepository defines the persistence operations for content posts.
type ContentRepository interface {
	// FindByID retrieves a single post by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ContentPost, error)

	// List returns a page of posts matching the query.
	List(ctx context.Context, query ListPostsQuery) ([]*entity.ContentPost, int64, error)

	// Create persists a new post.
	Create(ctx context.Context, post *entity.ContentPost) error

	// Update modifies an existing post.
	Update(ctx context.Context, post *entity.ContentPost) error

	// Delete removes a post.
	Delete(ctx context.Context, id uuid.UUID) error
}

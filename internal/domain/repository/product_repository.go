package repository

import (
	"context"
	"errors"

	"givebox/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ErrReviewNotFound is returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// ListProductsQuery carries the admin list view parameters for products:
// search over name/description, filter over status.
type ListProductsQuery struct {
	Search string
	Status *entity.ProductStatus
	Page   Page
}

// ProductRepository defines the persistence operations for gift boxes.
type ProductRepository interface {
	// FindByID retrieves a single product by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List returns a page of products matching the query plus the total match count.
	List(ctx context.Context, query ListProductsQuery) ([]*entity.Product, int64, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product. Reviews and cart rows cascade; order
	// detail rows keep their row with the product cleared.
	Delete(ctx context.Context, id uuid.UUID) error

	// SetPrice updates only the price column (admin quick edit).
	SetPrice(ctx context.Context, id uuid.UUID, price decimal.Decimal) error

	// SetStatus updates only the status column (admin quick edit).
	SetStatus(ctx context.Context, id uuid.UUID, status entity.ProductStatus) error
}

// ListReviewsQuery carries the admin list view parameters for reviews:
// search over comment, filters over display status and rating.
type ListReviewsQuery struct {
	Search        string
	DisplayStatus *entity.ReviewStatus
	Rating        *int
	ProductID     *uuid.UUID
	Page          Page
}

// ReviewRepository defines the persistence operations for product reviews.
type ReviewRepository interface {
	// FindByID retrieves a single review by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// List returns a page of reviews matching the query plus the total match count.
	List(ctx context.Context, query ListReviewsQuery) ([]*entity.Review, int64, error)

	// Create persists a new review.
	Create(ctx context.Context, review *entity.Review) error

	// Update modifies an existing review.
	Update(ctx context.Context, review *entity.Review) error

	// Delete removes a review.
	Delete(ctx context.Context, id uuid.UUID) error

	// SetDisplayStatus updates only the display status column (admin quick edit).
	SetDisplayStatus(ctx context.Context, id uuid.UUID, status entity.ReviewStatus) error
}

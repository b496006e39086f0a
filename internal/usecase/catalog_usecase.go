package usecase

import (
	"context"

	"givebox/internal/domain/entity"
	"givebox/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductInput defines the data of a gift box product.
type ProductInput struct {
	Name              string
	Description       string
	Price             decimal.Decimal
	CharityPercentage decimal.Decimal
	Image             string
	Status            entity.ProductStatus
}

// ReviewInput defines the data of a product review.
type ReviewInput struct {
	UserID        *uuid.UUID
	ProductID     uuid.UUID
	Rating        int
	Comment       string
	DisplayStatus entity.ReviewStatus
}

// ProductListOutput returns one page of products with the total match count.
type ProductListOutput struct {
	Products []*entity.Product
	Total    int64
}

// ReviewListOutput returns one page of reviews with the total match count.
type ReviewListOutput struct {
	Reviews []*entity.Review
	Total   int64
}

// CatalogUsecase defines the business operations over products and reviews.
type CatalogUsecase interface {
	CreateProduct(ctx context.Context, input ProductInput) (*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	ListProducts(ctx context.Context, query repository.ListProductsQuery) (*ProductListOutput, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	// SetProductPrice is the quick-edit path for the price column.
	SetProductPrice(ctx context.Context, id uuid.UUID, price decimal.Decimal) error

	// SetProductStatus is the quick-edit path for the status column.
	SetProductStatus(ctx context.Context, id uuid.UUID, status entity.ProductStatus) error

	CreateReview(ctx context.Context, input ReviewInput) (*entity.Review, error)
	GetReview(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	ListReviews(ctx context.Context, query repository.ListReviewsQuery) (*ReviewListOutput, error)
	UpdateReview(ctx context.Context, id uuid.UUID, input ReviewInput) (*entity.Review, error)
	DeleteReview(ctx context.Context, id uuid.UUID) error

	// SetReviewDisplayStatus is the quick-edit path for review moderation.
	SetReviewDisplayStatus(ctx context.Context, id uuid.UUID, status entity.ReviewStatus) error
}

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
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	reviewRepo  repository.ReviewRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	ReviewRepo  repository.ReviewRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		reviewRepo:  params.ReviewRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct persists a new gift box.
func (srv *catalogService) CreateProduct(ctx context.Context, input usecase.ProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Name:              input.Name,
		Description:       input.Description,
		Price:             input.Price,
		CharityPercentage: input.CharityPercentage,
		Image:             input.Image,
		Status:            input.Status,
	}
	if product.Status == "" {
		product.Status = entity.ProductForSale
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.String("name", product.Name))

	return product, nil
}

// GetProduct retrieves a single product.
func (srv *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}

// ListProducts returns one page of products for the admin list view.
func (srv *catalogService) ListProducts(ctx context.Context, query repository.ListProductsQuery) (*usecase.ProductListOutput, error) {
	products, total, err := srv.productRepo.List(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return &usecase.ProductListOutput{Products: products, Total: total}, nil
}

// UpdateProduct modifies an existing product.
func (srv *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, input usecase.ProductInput) (*entity.Product, error) {
	product := &entity.Product{
		ID:                id,
		Name:              input.Name,
		Description:       input.Description,
		Price:             input.Price,
		CharityPercentage: input.CharityPercentage,
		Image:             input.Image,
		Status:            input.Status,
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, err
	}

	return product, nil
}

// DeleteProduct removes a product; reviews and cart rows cascade.
func (srv *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return err
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", id))

	return nil
}

// SetProductPrice is the quick-edit path for the price column.
func (srv *catalogService) SetProductPrice(ctx context.Context, id uuid.UUID, price decimal.Decimal) error {
	if price.IsNegative() {
		return domainerrors.ErrValueOutOfRange.WrapMessage("price must not be negative")
	}

	if err := srv.productRepo.SetPrice(ctx, id, price); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return err
	}

	return nil
}

// SetProductStatus is the quick-edit path for the status column.
func (srv *catalogService) SetProductStatus(ctx context.Context, id uuid.UUID, status entity.ProductStatus) error {
	if !status.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid product status")
	}

	if err := srv.productRepo.SetStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return err
	}

	return nil
}

// CreateReview persists a new review. The 1-5 rating bound is validated
// here and at the request layer; the schema stays lax.
func (srv *catalogService) CreateReview(ctx context.Context, input usecase.ReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.ErrValueOutOfRange.WrapMessage("rating must be between 1 and 5")
	}

	review := &entity.Review{
		UserID:        input.UserID,
		ProductID:     input.ProductID,
		Rating:        input.Rating,
		Comment:       input.Comment,
		DisplayStatus: input.DisplayStatus,
	}
	if review.DisplayStatus == "" {
		review.DisplayStatus = entity.ReviewVisible
	}

	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

// GetReview retrieves a single review.
func (srv *catalogService) GetReview(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	review, err := srv.reviewRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to get review")
	}

	return review, nil
}

// ListReviews returns one page of reviews for the admin list view.
func (srv *catalogService) ListReviews(ctx context.Context, query repository.ListReviewsQuery) (*usecase.ReviewListOutput, error) {
	reviews, total, err := srv.reviewRepo.List(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return &usecase.ReviewListOutput{Reviews: reviews, Total: total}, nil
}

// UpdateReview modifies an existing review.
func (srv *catalogService) UpdateReview(ctx context.Context, id uuid.UUID, input usecase.ReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.ErrValueOutOfRange.WrapMessage("rating must be between 1 and 5")
	}

	review := &entity.Review{
		ID:            id,
		UserID:        input.UserID,
		ProductID:     input.ProductID,
		Rating:        input.Rating,
		Comment:       input.Comment,
		DisplayStatus: input.DisplayStatus,
	}

	if err := srv.reviewRepo.Update(ctx, review); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, err
	}

	return review, nil
}

// DeleteReview removes a review.
func (srv *catalogService) DeleteReview(ctx context.Context, id uuid.UUID) error {
	if err := srv.reviewRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return domainerrors.ErrReviewNotFound
		}

		return err
	}

	return nil
}

// SetReviewDisplayStatus is the quick-edit path for review moderation.
func (srv *catalogService) SetReviewDisplayStatus(ctx context.Context, id uuid.UUID, status entity.ReviewStatus) error {
	if !status.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid review display status")
	}

	if err := srv.reviewRepo.SetDisplayStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return domainerrors.ErrReviewNotFound
		}

		return err
	}

	return nil
}

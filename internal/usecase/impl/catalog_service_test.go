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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogService(t *testing.T, productRepo *mockRepo.MockProductRepository, reviewRepo *mockRepo.MockReviewRepository) usecase.CatalogUsecase {
	t.Helper()

	return NewCatalogService(CatalogServiceParams{
		ProductRepo: productRepo,
		ReviewRepo:  reviewRepo,
		Logger:      newDiscardLogger(),
	})
}

func TestCatalogService_CreateProduct_DefaultsToForSale(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	service := newCatalogService(t, productRepo, reviewRepo)

	ctx := context.Background()
	productRepo.On("Create", ctx, mock.MatchedBy(func(p *entity.Product) bool {
		return p.Status == entity.ProductForSale
	})).Return(nil)

	product, err := service.CreateProduct(ctx, usecase.ProductInput{
		Name:              "Winter Care Box",
		Price:             decimal.NewFromInt(450000),
		CharityPercentage: decimal.NewFromInt(15),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ProductForSale, product.Status)
}

func TestCatalogService_SetProductPrice_RejectsNegative(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	service := newCatalogService(t, productRepo, reviewRepo)

	err := service.SetProductPrice(context.Background(), uuid.New(), decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, domainerrors.ErrValueOutOfRange)
	productRepo.AssertNotCalled(t, "SetPrice", mock.Anything, mock.Anything, mock.Anything)
}

func TestCatalogService_SetProductStatus_RejectsUnknownValue(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	service := newCatalogService(t, productRepo, reviewRepo)

	err := service.SetProductStatus(context.Background(), uuid.New(), entity.ProductStatus("ON_FIRE"))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	productRepo.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestCatalogService_SetProductStatus_NotFound(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	service := newCatalogService(t, productRepo, reviewRepo)

	ctx := context.Background()
	id := uuid.New()
	productRepo.On("SetStatus", ctx, id, entity.ProductSoldOut).Return(repository.ErrProductNotFound)

	err := service.SetProductStatus(ctx, id, entity.ProductSoldOut)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_CreateReview_DefaultsToVisible(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	service := newCatalogService(t, productRepo, reviewRepo)

	ctx := context.Background()
	reviewRepo.On("Create", ctx, mock.MatchedBy(func(r *entity.Review) bool {
		return r.DisplayStatus == entity.ReviewVisible && r.Rating == 5
	})).Return(nil)

	review, err := service.CreateReview(ctx, usecase.ReviewInput{
		ProductID: uuid.New(),
		Rating:    5,
		Comment:   "The card inside made my mum cry. In a good way.",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ReviewVisible, review.DisplayStatus)
}

func TestCatalogService_CreateReview_RatingBounds(t *testing.T) {
	for _, rating := range []int{0, 6, -3} {
		productRepo := mockRepo.NewMockProductRepository(t)
		reviewRepo := mockRepo.NewMockReviewRepository(t)
		service := newCatalogService(t, productRepo, reviewRepo)

		_, err := service.CreateReview(context.Background(), usecase.ReviewInput{
			ProductID: uuid.New(),
			Rating:    rating,
		})
		assert.ErrorIs(t, err, domainerrors.ErrValueOutOfRange, "rating %d", rating)
		reviewRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	}
}

func TestCatalogService_UpdateReview_RatingBounds(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	service := newCatalogService(t, productRepo, reviewRepo)

	_, err := service.UpdateReview(context.Background(), uuid.New(), usecase.ReviewInput{
		ProductID: uuid.New(),
		Rating:    12,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValueOutOfRange)
	reviewRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCatalogService_SetReviewDisplayStatus_RejectsUnknownValue(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	service := newCatalogService(t, productRepo, reviewRepo)

	err := service.SetReviewDisplayStatus(context.Background(), uuid.New(), entity.ReviewStatus("SHADOWBANNED"))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	reviewRepo.AssertNotCalled(t, "SetDisplayStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestCatalogService_DeleteProduct_NotFound(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	service := newCatalogService(t, productRepo, reviewRepo)

	ctx := context.Background()
	id := uuid.New()
	productRepo.On("Delete", ctx, id).Return(repository.ErrProductNotFound)

	err := service.DeleteProduct(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

package handler

import (
	"log/slog"
	"net/http"

	"givebox/internal/delivery/http/response"
	"givebox/internal/domain/entity"
	"givebox/internal/domain/repository"
	"givebox/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// CatalogHandler holds dependencies for product and review handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

type productRequest struct {
	Name              string          `json:"name" validate:"required"`
	Description       string          `json:"description"`
	Price             decimal.Decimal `json:"price" validate:"required"`
	CharityPercentage decimal.Decimal `json:"charity_percentage"`
	Image             string          `json:"image"`
	Status            string          `json:"status"`
}

type productPriceRequest struct {
	Price decimal.Decimal `json:"price" validate:"required"`
}

type productStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type reviewRequest struct {
	UserID        *uuid.UUID `json:"user_id"`
	ProductID     uuid.UUID  `json:"product_id" validate:"required"`
	Rating        int        `json:"rating" validate:"required,min=1,max=5"`
	Comment       string     `json:"comment"`
	DisplayStatus string     `json:"display_status"`
}

type reviewDisplayStatusRequest struct {
	DisplayStatus string `json:"display_status" validate:"required"`
}

func (r productRequest) toInput() usecase.ProductInput {
	return usecase.ProductInput{
		Name:              r.Name,
		Description:       r.Description,
		Price:             r.Price,
		CharityPercentage: r.CharityPercentage,
		Image:             r.Image,
		Status:            entity.ProductStatus(r.Status),
	}
}

func (r reviewRequest) toInput() usecase.ReviewInput {
	return usecase.ReviewInput{
		UserID:        r.UserID,
		ProductID:     r.ProductID,
		Rating:        r.Rating,
		Comment:       r.Comment,
		DisplayStatus: entity.ReviewStatus(r.DisplayStatus),
	}
}

// ListProducts handles the paginated gift box list view.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	query := repository.ListProductsQuery{
		Search: c.QueryParam("search"),
		Page:   pageFromQuery(c),
	}
	if raw := c.QueryParam("status"); raw != "" {
		status := entity.ProductStatus(raw)
		query.Status = &status
	}

	output, err := h.uc.ListProducts(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, output.Products, output.Total)
}

// GetProduct handles fetching a single gift box.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// CreateProduct handles creating a gift box.
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// UpdateProduct handles the full edit of a gift box.
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req productRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// DeleteProduct handles removing a gift box.
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

// SetProductPrice handles the quick edit of a product's price.
func (h *CatalogHandler) SetProductPrice(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req productPriceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid price input")
	}

	if err := h.uc.SetProductPrice(c.Request().Context(), id, req.Price); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Price updated")
}

// SetProductStatus handles the quick edit of a product's sale status.
func (h *CatalogHandler) SetProductStatus(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req productStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := h.uc.SetProductStatus(c.Request().Context(), id, entity.ProductStatus(req.Status)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Status updated")
}

// ListReviews handles the paginated review list view.
func (h *CatalogHandler) ListReviews(c echo.Context) error {
	productID, err := optionalUUIDQuery(c, "product_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	query := repository.ListReviewsQuery{
		Search:    c.QueryParam("search"),
		Rating:    optionalIntQuery(c, "rating"),
		ProductID: productID,
		Page:      pageFromQuery(c),
	}
	if raw := c.QueryParam("display_status"); raw != "" {
		status := entity.ReviewStatus(raw)
		query.DisplayStatus = &status
	}

	output, err := h.uc.ListReviews(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, output.Reviews, output.Total)
}

// GetReview handles fetching a single review.
func (h *CatalogHandler) GetReview(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid review ID")
	}

	review, err := h.uc.GetReview(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, review, "")
}

// CreateReview handles creating a review.
func (h *CatalogHandler) CreateReview(c echo.Context) error {
	var req reviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	review, err := h.uc.CreateReview(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, review, "Review created successfully")
}

// UpdateReview handles the full edit of a review.
func (h *CatalogHandler) UpdateReview(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid review ID")
	}

	var req reviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	review, err := h.uc.UpdateReview(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, review, "Review updated successfully")
}

// DeleteReview handles removing a review.
func (h *CatalogHandler) DeleteReview(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid review ID")
	}

	if err := h.uc.DeleteReview(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Review deleted successfully")
}

// SetReviewDisplayStatus handles the quick edit of review moderation state.
func (h *CatalogHandler) SetReviewDisplayStatus(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid review ID")
	}

	var req reviewDisplayStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := h.uc.SetReviewDisplayStatus(c.Request().Context(), id, entity.ReviewStatus(req.DisplayStatus)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Display status updated")
}

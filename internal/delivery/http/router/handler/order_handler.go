package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "givebox/internal/delivery/context"
	"givebox/internal/delivery/http/response"
	"givebox/internal/domain/entity"
	"givebox/internal/domain/repository"
	"givebox/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// OrderHandler holds dependencies for order and cart handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

type orderDetailRequest struct {
	ProductID       *uuid.UUID      `json:"product_id"`
	Quantity        int             `json:"quantity" validate:"required,min=1"`
	PriceAtPurchase decimal.Decimal `json:"price_at_purchase" validate:"required"`
}

type createOrderRequest struct {
	OrderCode         string               `json:"order_code" validate:"required"`
	UserID            *uuid.UUID           `json:"user_id"`
	TotalAmount       decimal.Decimal      `json:"total_amount" validate:"required"`
	ShippingAddressID *uuid.UUID           `json:"shipping_address_id"`
	PaymentMethod     string               `json:"payment_method" validate:"required"`
	OrderStatus       string               `json:"order_status"`
	AppliedVoucherID  *uuid.UUID           `json:"applied_voucher_id"`
	DonateVoucher     bool                 `json:"donate_voucher"`
	Details           []orderDetailRequest `json:"details" validate:"dive"`
}

type updateOrderRequest struct {
	UserID            *uuid.UUID      `json:"user_id"`
	TotalAmount       decimal.Decimal `json:"total_amount" validate:"required"`
	ShippingAddressID *uuid.UUID      `json:"shipping_address_id"`
	PaymentMethod     string          `json:"payment_method" validate:"required"`
	OrderStatus       string          `json:"order_status" validate:"required"`
	AppliedVoucherID  *uuid.UUID      `json:"applied_voucher_id"`
	DonateVoucher     bool            `json:"donate_voucher"`
}

type orderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type cartItemRequest struct {
	UserID    uuid.UUID `json:"user_id" validate:"required"`
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

type cartQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

func (r orderDetailRequest) toInput() usecase.OrderDetailInput {
	return usecase.OrderDetailInput{
		ProductID:       r.ProductID,
		Quantity:        r.Quantity,
		PriceAtPurchase: r.PriceAtPurchase,
	}
}

// ListOrders handles the paginated order list view.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, err := optionalUUIDQuery(c, "user_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	query := repository.ListOrdersQuery{
		Search:        c.QueryParam("search"),
		DonateVoucher: optionalBoolQuery(c, "donate_voucher"),
		UserID:        userID,
		Page:          pageFromQuery(c),
	}
	if raw := c.QueryParam("order_status"); raw != "" {
		status := entity.OrderStatus(raw)
		query.OrderStatus = &status
	}
	if raw := c.QueryParam("payment_method"); raw != "" {
		method := entity.PaymentMethod(raw)
		query.PaymentMethod = &method
	}

	output, err := h.uc.ListOrders(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, output.Orders, output.Total)
}

// GetOrder handles fetching a single order with its detail lines.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.uc.GetOrder(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// GetOrderByCode handles looking up an order by its public code.
func (h *OrderHandler) GetOrderByCode(c echo.Context) error {
	code := c.Param("code")
	if code == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Order code is required")
	}

	order, err := h.uc.GetOrderByCode(c.Request().Context(), code)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// CreateOrder handles placing an order with its detail lines.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	input := usecase.CreateOrderInput{
		OrderCode:         req.OrderCode,
		UserID:            req.UserID,
		TotalAmount:       req.TotalAmount,
		ShippingAddressID: req.ShippingAddressID,
		PaymentMethod:     entity.PaymentMethod(req.PaymentMethod),
		OrderStatus:       entity.OrderStatus(req.OrderStatus),
		AppliedVoucherID:  req.AppliedVoucherID,
		DonateVoucher:     req.DonateVoucher,
	}
	for _, detail := range req.Details {
		input.Details = append(input.Details, detail.toInput())
	}

	order, err := h.uc.CreateOrder(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order created successfully")
}

// UpdateOrder handles the full edit of an order. The order code never
// changes after creation.
func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req updateOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	order, err := h.uc.UpdateOrder(c.Request().Context(), usecase.UpdateOrderInput{
		ID:                id,
		UserID:            req.UserID,
		TotalAmount:       req.TotalAmount,
		ShippingAddressID: req.ShippingAddressID,
		PaymentMethod:     entity.PaymentMethod(req.PaymentMethod),
		OrderStatus:       entity.OrderStatus(req.OrderStatus),
		AppliedVoucherID:  req.AppliedVoucherID,
		DonateVoucher:     req.DonateVoucher,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order updated successfully")
}

// DeleteOrder handles removing an order and its detail lines.
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	if err := h.uc.DeleteOrder(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order deleted successfully")
}

// ChangeOrderStatus handles the quick edit of an order's status. The
// acting administrator comes from the authenticated token and lands in
// the audit trail.
func (h *OrderHandler) ChangeOrderStatus(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req orderStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	adminID, ok := deliverycontext.GetAdminID(c.Request().Context())
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated administrator")
	}

	if err := h.uc.ChangeOrderStatus(c.Request().Context(), id, entity.OrderStatus(req.Status), adminID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order status updated")
}

// GetStatusHistory handles listing the audit trail of an order.
func (h *OrderHandler) GetStatusHistory(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	history, err := h.uc.GetStatusHistory(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, history, "")
}

// AddOrderDetail handles appending a product line to an order.
func (h *OrderHandler) AddOrderDetail(c echo.Context) error {
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req orderDetailRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid detail input")
	}

	detail, err := h.uc.AddOrderDetail(c.Request().Context(), orderID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, detail, "Order detail added")
}

// RemoveOrderDetail handles removing a single product line.
func (h *OrderHandler) RemoveOrderDetail(c echo.Context) error {
	detailID, err := uuidParam(c, "detailId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid detail ID")
	}

	if err := h.uc.RemoveOrderDetail(c.Request().Context(), detailID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order detail removed")
}

// ListCarts handles the paginated cart list view across all users.
func (h *OrderHandler) ListCarts(c echo.Context) error {
	output, err := h.uc.ListCarts(c.Request().Context(), c.QueryParam("search"), pageFromQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, output.Items, output.Total)
}

// ListUserCart handles listing one user's cart rows.
func (h *OrderHandler) ListUserCart(c echo.Context) error {
	userID, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	items, err := h.uc.ListUserCart(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

// AddCartItem handles adding a product to a user's cart.
func (h *OrderHandler) AddCartItem(c echo.Context) error {
	var req cartItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	item, err := h.uc.AddCartItem(c.Request().Context(), usecase.CartItemInput{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Cart item added")
}

// UpdateCartQuantity handles the quick edit of a cart row's quantity.
func (h *OrderHandler) UpdateCartQuantity(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cart item ID")
	}

	var req cartQuantityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	if err := h.uc.UpdateCartQuantity(c.Request().Context(), id, req.Quantity); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart quantity updated")
}

// RemoveCartItem handles removing a cart row.
func (h *OrderHandler) RemoveCartItem(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cart item ID")
	}

	if err := h.uc.RemoveCartItem(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart item removed")
}

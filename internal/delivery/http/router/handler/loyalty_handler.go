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

// LoyaltyHandler holds dependencies for love point, voucher, and
// redeemed offer handlers.
type LoyaltyHandler struct {
	uc     usecase.LoyaltyUsecase
	logger *slog.Logger
}

// NewLoyaltyHandler is the constructor for LoyaltyHandler, injected by Fx.
func NewLoyaltyHandler(uc usecase.LoyaltyUsecase, logger *slog.Logger) *LoyaltyHandler {
	return &LoyaltyHandler{
		uc:     uc,
		logger: logger,
	}
}

type grantPointsRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Points int       `json:"points" validate:"required,min=1"`
	Reason string    `json:"reason" validate:"required"`
}

type voucherRequest struct {
	Name           string          `json:"name" validate:"required"`
	PointsRequired int             `json:"points_required" validate:"required,min=1"`
	DiscountValue  decimal.Decimal `json:"discount_value" validate:"required"`
	VoucherType    string          `json:"voucher_type" validate:"required"`
	Conditions     string          `json:"conditions"`
}

type redeemVoucherRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

type offerUsageStatusRequest struct {
	UsageStatus string `json:"usage_status" validate:"required"`
}

func (r voucherRequest) toInput() usecase.VoucherInput {
	return usecase.VoucherInput{
		Name:           r.Name,
		PointsRequired: r.PointsRequired,
		DiscountValue:  r.DiscountValue,
		VoucherType:    entity.VoucherType(r.VoucherType),
		Conditions:     r.Conditions,
	}
}

// ListBalances handles the paginated point balance list view.
func (h *LoyaltyHandler) ListBalances(c echo.Context) error {
	output, err := h.uc.ListBalances(c.Request().Context(), pageFromQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, output.Balances, output.Total)
}

// GetBalance handles fetching one user's point balance.
func (h *LoyaltyHandler) GetBalance(c echo.Context) error {
	userID, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	balance, err := h.uc.GetBalance(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, balance, "")
}

// GrantPoints handles a manual point credit to a user.
func (h *LoyaltyHandler) GrantPoints(c echo.Context) error {
	var req grantPointsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid grant input")
	}

	if err := h.uc.GrantPoints(c.Request().Context(), usecase.GrantPointsInput{
		UserID: req.UserID,
		Points: req.Points,
		Reason: req.Reason,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Points granted")
}

// ListPointHistory handles the paginated point ledger list view.
func (h *LoyaltyHandler) ListPointHistory(c echo.Context) error {
	userID, err := optionalUUIDQuery(c, "user_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	query := repository.ListPointHistoryQuery{
		Search: c.QueryParam("search"),
		UserID: userID,
		Page:   pageFromQuery(c),
	}
	if raw := c.QueryParam("transaction_type"); raw != "" {
		transactionType := entity.PointTransactionType(raw)
		query.TransactionType = &transactionType
	}

	output, err := h.uc.ListPointHistory(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, output.Entries, output.Total)
}

// ListVouchers handles the paginated voucher list view.
func (h *LoyaltyHandler) ListVouchers(c echo.Context) error {
	query := repository.ListVouchersQuery{
		Search: c.QueryParam("search"),
		Page:   pageFromQuery(c),
	}
	if raw := c.QueryParam("voucher_type"); raw != "" {
		voucherType := entity.VoucherType(raw)
		query.VoucherType = &voucherType
	}

	output, err := h.uc.ListVouchers(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, output.Vouchers, output.Total)
}

// GetVoucher handles fetching a single voucher definition.
func (h *LoyaltyHandler) GetVoucher(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid voucher ID")
	}

	voucher, err := h.uc.GetVoucher(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, voucher, "")
}

// CreateVoucher handles creating a voucher definition.
func (h *LoyaltyHandler) CreateVoucher(c echo.Context) error {
	var req voucherRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid voucher input")
	}

	voucher, err := h.uc.CreateVoucher(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, voucher, "Voucher created successfully")
}

// UpdateVoucher handles the full edit of a voucher definition.
func (h *LoyaltyHandler) UpdateVoucher(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid voucher ID")
	}

	var req voucherRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid voucher input")
	}

	voucher, err := h.uc.UpdateVoucher(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, voucher, "Voucher updated successfully")
}

// DeleteVoucher handles removing a voucher definition. The delete fails
// while issued offers still reference the voucher.
func (h *LoyaltyHandler) DeleteVoucher(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid voucher ID")
	}

	if err := h.uc.DeleteVoucher(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Voucher deleted successfully")
}

// RedeemVoucher handles spending a user's points for an offer code.
func (h *LoyaltyHandler) RedeemVoucher(c echo.Context) error {
	voucherID, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid voucher ID")
	}

	var req redeemVoucherRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid redemption input")
	}

	offer, err := h.uc.RedeemVoucher(c.Request().Context(), req.UserID, voucherID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, offer, "Voucher redeemed successfully")
}

// ListRedeemedOffers handles the paginated issued offer list view.
func (h *LoyaltyHandler) ListRedeemedOffers(c echo.Context) error {
	userID, err := optionalUUIDQuery(c, "user_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	query := repository.ListRedeemedOffersQuery{
		Search: c.QueryParam("search"),
		UserID: userID,
		Page:   pageFromQuery(c),
	}
	if raw := c.QueryParam("usage_status"); raw != "" {
		status := entity.RedeemedStatus(raw)
		query.UsageStatus = &status
	}

	output, err := h.uc.ListRedeemedOffers(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, output.Offers, output.Total)
}

// GetRedeemedOffer handles fetching a single issued offer.
func (h *LoyaltyHandler) GetRedeemedOffer(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid offer ID")
	}

	offer, err := h.uc.GetRedeemedOffer(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, offer, "")
}

// SetOfferUsageStatus handles the quick edit of an offer's usage state.
func (h *LoyaltyHandler) SetOfferUsageStatus(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid offer ID")
	}

	var req offerUsageStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := h.uc.SetOfferUsageStatus(c.Request().Context(), id, entity.RedeemedStatus(req.UsageStatus)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Usage status updated")
}

// DeleteRedeemedOffer handles removing an issued offer.
func (h *LoyaltyHandler) DeleteRedeemedOffer(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid offer ID")
	}

	if err := h.uc.DeleteRedeemedOffer(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Offer deleted successfully")
}

// OfferQR renders the offer's redeemed code as a PNG image.
func (h *LoyaltyHandler) OfferQR(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid offer ID")
	}

	png, err := h.uc.OfferQR(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

package handler

import (
	"log/slog"
	"net/http"
	"time"

	"givebox/internal/delivery/http/response"
	"givebox/internal/domain/entity"
	"givebox/internal/domain/repository"
	"givebox/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// CharityHandler holds dependencies for program, donation, and
// disbursement handlers.
type CharityHandler struct {
	uc     usecase.CharityUsecase
	logger *slog.Logger
}

// NewCharityHandler is the constructor for CharityHandler, injected by Fx.
func NewCharityHandler(uc usecase.CharityUsecase, logger *slog.Logger) *CharityHandler {
	return &CharityHandler{
		uc:     uc,
		logger: logger,
	}
}

type programRequest struct {
	Name         string          `json:"name" validate:"required"`
	Description  string          `json:"description"`
	Image        string          `json:"image"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	Status       string          `json:"status"`
}

type donationRequest struct {
	OrderID      *uuid.UUID      `json:"order_id"`
	ProgramID    uuid.UUID       `json:"program_id" validate:"required"`
	Amount       decimal.Decimal `json:"amount" validate:"required"`
	DonationType string          `json:"donation_type" validate:"required"`
}

type disbursementRequest struct {
	ProgramID        uuid.UUID       `json:"program_id" validate:"required"`
	Amount           decimal.Decimal `json:"amount" validate:"required"`
	DisbursedAt      time.Time       `json:"disbursed_at" validate:"required"`
	RecipientPartner string          `json:"recipient_partner" validate:"required"`
	Notes            string          `json:"notes"`
	ProofLink        string          `json:"proof_link"`
}

func (r programRequest) toInput() usecase.ProgramInput {
	return usecase.ProgramInput{
		Name:         r.Name,
		Description:  r.Description,
		Image:        r.Image,
		TargetAmount: r.TargetAmount,
		Status:       entity.CharityProgramStatus(r.Status),
	}
}

func (r disbursementRequest) toInput() usecase.DisbursementInput {
	return usecase.DisbursementInput{
		ProgramID:        r.ProgramID,
		Amount:           r.Amount,
		DisbursedAt:      r.DisbursedAt,
		RecipientPartner: r.RecipientPartner,
		Notes:            r.Notes,
		ProofLink:        r.ProofLink,
	}
}

// ListPrograms handles the paginated charity program list view.
func (h *CharityHandler) ListPrograms(c echo.Context) error {
	query := repository.ListProgramsQuery{
		Search: c.QueryParam("search"),
		Page:   pageFromQuery(c),
	}
	if raw := c.QueryParam("status"); raw != "" {
		status := entity.CharityProgramStatus(raw)
		query.Status = &status
	}

	output, err := h.uc.ListPrograms(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, output.Programs, output.Total)
}

// GetProgram handles fetching a single charity program.
func (h *CharityHandler) GetProgram(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid program ID")
	}

	program, err := h.uc.GetProgram(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, program, "")
}

// CreateProgram handles creating a charity program.
func (h *CharityHandler) CreateProgram(c echo.Context) error {
	var req programRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid program input")
	}

	program, err := h.uc.CreateProgram(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, program, "Program created successfully")
}

// UpdateProgram handles the full edit of a charity program.
func (h *CharityHandler) UpdateProgram(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid program ID")
	}

	var req programRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid program input")
	}

	program, err := h.uc.UpdateProgram(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, program, "Program updated successfully")
}

// DeleteProgram handles removing a charity program. The delete fails
// while donations or disbursements still reference the program.
func (h *CharityHandler) DeleteProgram(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid program ID")
	}

	if err := h.uc.DeleteProgram(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Program deleted successfully")
}

// ListDonations handles the paginated donation record list view.
func (h *CharityHandler) ListDonations(c echo.Context) error {
	programID, err := optionalUUIDQuery(c, "program_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid program ID")
	}

	query := repository.ListDonationsQuery{
		ProgramID: programID,
		Page:      pageFromQuery(c),
	}
	if raw := c.QueryParam("donation_type"); raw != "" {
		donationType := entity.DonationType(raw)
		query.DonationType = &donationType
	}

	output, err := h.uc.ListDonations(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, output.Donations, output.Total)
}

// GetDonation handles fetching a single donation record.
func (h *CharityHandler) GetDonation(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid donation ID")
	}

	donation, err := h.uc.GetDonation(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, donation, "")
}

// RecordDonation handles writing a donation record against a program.
func (h *CharityHandler) RecordDonation(c echo.Context) error {
	var req donationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid donation input")
	}

	donation, err := h.uc.RecordDonation(c.Request().Context(), usecase.DonationInput{
		OrderID:      req.OrderID,
		ProgramID:    req.ProgramID,
		Amount:       req.Amount,
		DonationType: entity.DonationType(req.DonationType),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, donation, "Donation recorded successfully")
}

// DeleteDonation handles removing a donation record.
func (h *CharityHandler) DeleteDonation(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid donation ID")
	}

	if err := h.uc.DeleteDonation(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Donation deleted successfully")
}

// ListDisbursements handles the paginated disbursement list view.
func (h *CharityHandler) ListDisbursements(c echo.Context) error {
	programID, err := optionalUUIDQuery(c, "program_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid program ID")
	}

	output, err := h.uc.ListDisbursements(c.Request().Context(), c.QueryParam("search"), programID, pageFromQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, output.Disbursements, output.Total)
}

// GetDisbursement handles fetching a single disbursement.
func (h *CharityHandler) GetDisbursement(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid disbursement ID")
	}

	disbursement, err := h.uc.GetDisbursement(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, disbursement, "")
}

// CreateDisbursement handles recording an outbound program payment.
func (h *CharityHandler) CreateDisbursement(c echo.Context) error {
	var req disbursementRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid disbursement input")
	}

	disbursement, err := h.uc.CreateDisbursement(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, disbursement, "Disbursement created successfully")
}

// UpdateDisbursement handles the full edit of a disbursement.
func (h *CharityHandler) UpdateDisbursement(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid disbursement ID")
	}

	var req disbursementRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid disbursement input")
	}

	disbursement, err := h.uc.UpdateDisbursement(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, disbursement, "Disbursement updated successfully")
}

// DeleteDisbursement handles removing a disbursement.
func (h *CharityHandler) DeleteDisbursement(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid disbursement ID")
	}

	if err := h.uc.DeleteDisbursement(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Disbursement deleted successfully")
}

package handler

import (
	"log/slog"
	"net/http"

	"givebox/internal/delivery/http/response"
	"givebox/internal/domain/entity"
	"givebox/internal/domain/repository"
	"givebox/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user and address handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type userRequest struct {
	Email         string  `json:"email" validate:"required,email"`
	FullName      string  `json:"full_name" validate:"required"`
	PhoneNumber   string  `json:"phone_number"`
	Role          string  `json:"role"`
	AccountStatus string  `json:"account_status"`
	Password      *string `json:"password"`
	IsStaff       bool    `json:"is_staff"`
	IsActive      bool    `json:"is_active"`
}

type addressRequest struct {
	RecipientName string `json:"recipient_name" validate:"required"`
	PhoneNumber   string `json:"phone_number" validate:"required"`
	Province      string `json:"province" validate:"required"`
	District      string `json:"district" validate:"required"`
	Ward          string `json:"ward" validate:"required"`
	StreetAddress string `json:"street_address" validate:"required"`
	IsDefault     bool   `json:"is_default"`
}

type issueOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type verifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6"`
}

// Login handles the admin console login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.uc.AdminLogin(c.Request().Context(), usecase.AdminLoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// ListUsers handles the paginated user list view.
func (h *UserHandler) ListUsers(c echo.Context) error {
	query := repository.ListUsersQuery{
		Search:   c.QueryParam("search"),
		IsStaff:  optionalBoolQuery(c, "is_staff"),
		IsActive: optionalBoolQuery(c, "is_active"),
		Page:     pageFromQuery(c),
	}
	if raw := c.QueryParam("role"); raw != "" {
		role := entity.UserRole(raw)
		query.Role = &role
	}
	if raw := c.QueryParam("account_status"); raw != "" {
		status := entity.AccountStatus(raw)
		query.AccountStatus = &status
	}

	output, err := h.uc.ListUsers(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, output.Users, output.Total)
}

// GetUser handles fetching a single user with their addresses.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	user, err := h.uc.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

// CreateUser handles creating a user from the admin console.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req userRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if req.Password == nil {
		return response.BadRequest(c, "INVALID_INPUT", "Password is required")
	}

	user, err := h.uc.CreateUser(c.Request().Context(), usecase.CreateUserInput{
		Email:         req.Email,
		FullName:      req.FullName,
		PhoneNumber:   req.PhoneNumber,
		Role:          entity.UserRole(req.Role),
		AccountStatus: entity.AccountStatus(req.AccountStatus),
		Password:      *req.Password,
		IsStaff:       req.IsStaff,
		IsActive:      req.IsActive,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user, "User created successfully")
}

// UpdateUser handles the full edit of a user.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req userRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}

	user, err := h.uc.UpdateUser(c.Request().Context(), usecase.UpdateUserInput{
		ID:            id,
		Email:         req.Email,
		FullName:      req.FullName,
		PhoneNumber:   req.PhoneNumber,
		Role:          entity.UserRole(req.Role),
		AccountStatus: entity.AccountStatus(req.AccountStatus),
		Password:      req.Password,
		IsStaff:       req.IsStaff,
		IsActive:      req.IsActive,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User updated successfully")
}

// DeleteUser handles deleting a user and their owned rows.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	if err := h.uc.DeleteUser(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User deleted successfully")
}

// ListAddresses handles listing a user's shipping addresses.
func (h *UserHandler) ListAddresses(c echo.Context) error {
	userID, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	addresses, err := h.uc.ListAddresses(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, addresses, "")
}

// CreateAddress handles adding a shipping address to a user.
func (h *UserHandler) CreateAddress(c echo.Context) error {
	userID, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req addressRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	address, err := h.uc.CreateAddress(c.Request().Context(), usecase.AddressInput{
		UserID:        userID,
		RecipientName: req.RecipientName,
		PhoneNumber:   req.PhoneNumber,
		Province:      req.Province,
		District:      req.District,
		Ward:          req.Ward,
		StreetAddress: req.StreetAddress,
		IsDefault:     req.IsDefault,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, address, "Address created successfully")
}

// UpdateAddress handles editing a shipping address.
func (h *UserHandler) UpdateAddress(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	var req addressRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	address, err := h.uc.UpdateAddress(c.Request().Context(), id, usecase.AddressInput{
		RecipientName: req.RecipientName,
		PhoneNumber:   req.PhoneNumber,
		Province:      req.Province,
		District:      req.District,
		Ward:          req.Ward,
		StreetAddress: req.StreetAddress,
		IsDefault:     req.IsDefault,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, address, "Address updated successfully")
}

// DeleteAddress handles removing a shipping address.
func (h *UserHandler) DeleteAddress(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	if err := h.uc.DeleteAddress(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Address deleted successfully")
}

// SetDefaultAddress handles promoting one address to the user's default.
func (h *UserHandler) SetDefaultAddress(c echo.Context) error {
	userID, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}
	addressID, err := uuidParam(c, "addressId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	if err := h.uc.SetDefaultAddress(c.Request().Context(), userID, addressID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Default address updated")
}

// ListOTPs handles the paginated verification code list view.
func (h *UserHandler) ListOTPs(c echo.Context) error {
	output, err := h.uc.ListOTPs(
		c.Request().Context(),
		c.QueryParam("search"),
		optionalBoolQuery(c, "is_used"),
		pageFromQuery(c),
	)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, output.Codes, output.Total)
}

// IssueOTP handles creating a fresh verification code for an email.
func (h *UserHandler) IssueOTP(c echo.Context) error {
	var req issueOTPRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid email input")
	}

	otp, err := h.uc.IssueOTP(c.Request().Context(), req.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, otp, "Verification code issued")
}

// VerifyOTP handles checking and consuming the latest code for an email.
func (h *UserHandler) VerifyOTP(c echo.Context) error {
	var req verifyOTPRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}

	if err := h.uc.VerifyOTP(c.Request().Context(), req.Email, req.Code); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Verification successful")
}

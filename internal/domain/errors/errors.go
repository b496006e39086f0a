package errors

import (
	"net/http"

	"givebox/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"EMAIL_TAKEN",
		"this email is already registered",
		"",
	)

	ErrAccountDisabled = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_DISABLED",
		"this account has been disabled",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"incorrect email or password",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"failed to process password",
		"",
	)

	// OTP-related errors
	ErrOTPNotFound = NewBaseError(
		http.StatusNotFound,
		"OTP_NOT_FOUND",
		"no verification code found for this email",
		"",
	)

	ErrOTPInvalid = NewBaseError(
		http.StatusBadRequest,
		"OTP_INVALID",
		"the verification code is incorrect",
		"",
	)

	ErrOTPExpired = NewBaseError(
		http.StatusBadRequest,
		"OTP_EXPIRED",
		"the verification code has expired or was already used",
		"",
	)

	// Catalog-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"product not found",
		"",
	)

	ErrProductNameTaken = NewBaseError(
		http.StatusConflict,
		"PRODUCT_NAME_TAKEN",
		"a product with this name already exists",
		"",
	)

	ErrReviewNotFound = NewBaseError(
		http.StatusNotFound,
		"REVIEW_NOT_FOUND",
		"review not found",
		"",
	)

	// Order-related errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"order not found",
		"",
	)

	ErrOrderCodeTaken = NewBaseError(
		http.StatusConflict,
		"ORDER_CODE_TAKEN",
		"an order with this code already exists",
		"",
	)

	ErrDuplicateOrderLine = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_ORDER_LINE",
		"this product already appears in the order",
		"",
	)

	ErrDuplicateCartItem = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_CART_ITEM",
		"this product is already in the cart",
		"",
	)

	ErrCartItemNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_ITEM_NOT_FOUND",
		"cart item not found",
		"",
	)

	// Charity-related errors
	ErrProgramNotFound = NewBaseError(
		http.StatusNotFound,
		"PROGRAM_NOT_FOUND",
		"charity program not found",
		"",
	)

	ErrProgramNameTaken = NewBaseError(
		http.StatusConflict,
		"PROGRAM_NAME_TAKEN",
		"a charity program with this name already exists",
		"",
	)

	ErrProgramInUse = NewBaseError(
		http.StatusConflict,
		"PROGRAM_IN_USE",
		"the program still has donations or disbursements and cannot be deleted",
		"",
	)

	ErrDonationNotFound = NewBaseError(
		http.StatusNotFound,
		"DONATION_NOT_FOUND",
		"donation record not found",
		"",
	)

	ErrDisbursementNotFound = NewBaseError(
		http.StatusNotFound,
		"DISBURSEMENT_NOT_FOUND",
		"disbursement not found",
		"",
	)

	// Loyalty-related errors
	ErrVoucherNotFound = NewBaseError(
		http.StatusNotFound,
		"VOUCHER_NOT_FOUND",
		"voucher not found",
		"",
	)

	ErrVoucherInUse = NewBaseError(
		http.StatusConflict,
		"VOUCHER_IN_USE",
		"the voucher has issued instances and cannot be deleted",
		"",
	)

	ErrRedeemedOfferNotFound = NewBaseError(
		http.StatusNotFound,
		"REDEEMED_OFFER_NOT_FOUND",
		"redeemed offer not found",
		"",
	)

	ErrRedeemedCodeTaken = NewBaseError(
		http.StatusConflict,
		"REDEEMED_CODE_TAKEN",
		"a redeemed offer with this code already exists",
		"",
	)

	ErrInsufficientPoints = NewBaseError(
		http.StatusBadRequest,
		"INSUFFICIENT_POINTS",
		"the user does not have enough love points",
		"",
	)

	ErrBalanceNotFound = NewBaseError(
		http.StatusNotFound,
		"BALANCE_NOT_FOUND",
		"love point balance not found",
		"",
	)

	// Content-related errors
	ErrPostNotFound = NewBaseError(
		http.StatusNotFound,
		"POST_NOT_FOUND",
		"content post not found",
		"",
	)

	ErrAuthorNotAdmin = NewBaseError(
		http.StatusBadRequest,
		"AUTHOR_NOT_ADMIN",
		"content posts may only be authored by administrators",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrValueOutOfRange = NewBaseError(
		http.StatusBadRequest,
		"VALUE_OUT_OF_RANGE",
		"a field value is outside its declared range",
		"",
	)

	ErrMissingRequiredField = NewBaseError(
		http.StatusBadRequest,
		"MISSING_REQUIRED_FIELD",
		"a required field is missing",
		"",
	)

	ErrInvalidReference = NewBaseError(
		http.StatusBadRequest,
		"INVALID_REFERENCE",
		"a referenced record does not exist",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Unwrap exposes the wrapped database error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

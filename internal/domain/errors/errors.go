package errors

import (
	"net/http"

	"stockroom/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying detailed error information.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is makes copies produced by WithMessage/WithDetails match their template
// under errors.Is.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// Predefined error types. Several messages are pinned verbatim, typos
// included; existing clients match on the exact strings.
var (
	// Account-related errors.

	// ErrUserExists is the template for duplicate registration; the concrete
	// message is built per email via UserExists.
	ErrUserExists = NewBaseError(
		http.StatusBadRequest,
		"USER_EXISTS",
		"User already exists!",
		"",
	)

	// ErrUserNotFound maps to 500 on the login path. Existing clients treat
	// the missing account as a server fault, so the status stays (see
	// DESIGN.md).
	ErrUserNotFound = NewBaseError(
		http.StatusInternalServerError,
		"USER_NOT_FOUND",
		"User not found!",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CREDENTIALS",
		"Incorrect Username or password!",
		"",
	)

	ErrHashingFailed = NewBaseError(
		http.StatusInternalServerError,
		"HASHING_FAILED",
		"Internal Server Error",
		"",
	)

	ErrSigningFailed = NewBaseError(
		http.StatusInternalServerError,
		"SIGNING_FAILED",
		"Internal Server Error",
		"",
	)

	// Catalog-related errors.

	ErrBrandNotFound = NewBaseError(
		http.StatusBadRequest,
		"BRAND_NOT_FOUND",
		"Brand not found!",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusBadRequest,
		"PRODUCT_NOT_FOUND",
		"Product not found!",
		"",
	)

	// Order-related errors.

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found.",
		"",
	)

	ErrInsufficientStock = NewBaseError(
		http.StatusBadRequest,
		"INSUFFICIENT_STOCK",
		"Insufficient stock for requested quantity!",
		"",
	)

	// Device-related errors.

	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device not found.",
		"",
	)

	// Validation-related errors.

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid request input",
		"",
	)

	// General errors.

	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal Server Error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Permission denied",
		"",
	)
)

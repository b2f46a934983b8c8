package errors

import (
	"fmt"
	"net/http"
)

// UserExists builds the duplicate-registration error with the email embedded
// in the message. Existing clients match on the exact string.
func UserExists(email string) *BaseError {
	return &BaseError{
		httpCode:  ErrUserExists.httpCode,
		errorCode: ErrUserExists.errorCode,
		message:   fmt.Sprintf("User with %s already exists!", email),
	}
}

// NewPersistenceError wraps a raw datastore error. The raw message becomes
// the client-facing message, which legacy clients display as-is; the error
// middleware additionally logs it server-side.
func NewPersistenceError(err error) *BaseError {
	return &BaseError{
		httpCode:  http.StatusInternalServerError,
		errorCode: "PERSISTENCE_ERROR",
		message:   err.Error(),
		details:   err.Error(),
	}
}

package errors

import (
	"net/http"

	"refill/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing error message
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
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

// Predefined error types. The user-facing messages are part of the public API
// contract and must stay byte-for-byte stable; clients match on them.
var (
	// Validation errors (missing required request fields).
	ErrRegistrationFieldsRequired = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"The email, username and password are required",
	)

	ErrLoginFieldsRequired = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"The email and password are required",
	)

	ErrProfileFieldsRequired = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"The username, institution, icon_url, email and password are required",
	)

	ErrBottlesRequired = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"The bottles are required",
	)

	// Uniqueness conflicts. The original service reports these as 400, not 409.
	ErrEmailTaken = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_IN_USE",
		"The email is already in use",
	)

	ErrUsernameTaken = NewBaseError(
		http.StatusBadRequest,
		"USERNAME_IN_USE",
		"The username is already in use",
	)

	// Authentication errors. Unknown email and wrong password share one
	// message so the response does not leak which check failed.
	ErrInvalidCredentials = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CREDENTIALS",
		"The email or password is incorrect",
	)

	ErrTokenRequired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_REQUIRED",
		"The token is required",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TOKEN",
		"Invalid token",
	)

	// Resolved identity but missing downstream record.
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
	)

	// Per-operation internal fallbacks. Anything that is not an AppError is
	// downgraded to one of these at the delivery boundary; the cause is logged
	// server-side and never reaches the client.
	ErrRegisterFailed = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"An error ocurred while trying to register the user",
	)

	ErrLoginFailed = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"An error ocurred while trying to login the user",
	)

	ErrProfileFailed = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"An error ocurred while trying to get the user profile",
	)

	ErrProfileUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"An error ocurred while trying to update the user profile",
	)

	ErrBottlesUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"An error ocurred while trying to update the user bottles",
	)

	ErrScoreboardFailed = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"An error ocurred while trying to get the scoreboard information",
	)
)

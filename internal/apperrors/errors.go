package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Standard error codes
const (
	CodeValidationError      = "VALIDATION_ERROR"
	CodeNotFound             = "RESOURCE_NOT_FOUND"
	CodeInsufficientQuantity = "INSUFFICIENT_QUANTITY"
	CodeInsufficientStock    = "INSUFFICIENT_STOCK"
	CodeNoAvailableBatch     = "NO_AVAILABLE_BATCH"
	CodeDuplicate            = "DUPLICATE"
	CodeAuthenticationFailed = "AUTHENTICATION_FAILED"
	CodeInternalError        = "INTERNAL_ERROR"
)

// AppError represents an application error with HTTP status and error code
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Wrap wraps an existing error
func (e *AppError) Wrap(err error) *AppError {
	e.Err = err
	return e
}

// NewAppError creates a new AppError
func NewAppError(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// ErrValidation creates a validation error
func ErrValidation(message string) *AppError {
	return NewAppError(CodeValidationError, message, http.StatusBadRequest)
}

// ErrNotFound creates a not found error
func ErrNotFound(message string) *AppError {
	return NewAppError(CodeNotFound, message, http.StatusNotFound)
}

// ErrInsufficientQuantity creates an error for a location-level shortage
func ErrInsufficientQuantity(message string) *AppError {
	return NewAppError(CodeInsufficientQuantity, message, http.StatusConflict)
}

// ErrInsufficientStock creates an error for a demand exceeding stock
func ErrInsufficientStock(message string) *AppError {
	return NewAppError(CodeInsufficientStock, message, http.StatusConflict)
}

// ErrNoAvailableBatch creates an error for a missing sellable batch
func ErrNoAvailableBatch(message string) *AppError {
	return NewAppError(CodeNoAvailableBatch, message, http.StatusConflict)
}

// ErrDuplicate creates a duplicate-resource error
func ErrDuplicate(message string) *AppError {
	return NewAppError(CodeDuplicate, message, http.StatusConflict)
}

// ErrAuthentication creates a credential-mismatch error
func ErrAuthentication(message string) *AppError {
	if message == "" {
		message = "Invalid email or password"
	}
	return NewAppError(CodeAuthenticationFailed, message, http.StatusUnauthorized)
}

// ErrInternal creates an internal error
func ErrInternal(message string) *AppError {
	if message == "" {
		message = "an internal error occurred"
	}
	return NewAppError(CodeInternalError, message, http.StatusInternalServerError)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode checks whether err is an AppError with the given code
func HasCode(err error, code string) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == code
	}
	return false
}

// FromError converts a standard error to an AppError
func FromError(err error) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}
	return ErrInternal("").Wrap(err)
}

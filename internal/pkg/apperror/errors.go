package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Stable codes returned to API callers
const (
	CodeInvalidTransition   = "INVALID_TRANSITION"
	CodeForbidden           = "FORBIDDEN"
	CodePreconditionFailed  = "PRECONDITION_FAILED"
	CodeNotFound            = "NOT_FOUND"
	CodeCircuitOpen         = "CIRCUIT_OPEN"
	CodeGatewayError        = "GATEWAY_ERROR"
	CodePersistenceConflict = "PERSISTENCE_CONFLICT"
	CodeValidation          = "VALIDATION_ERROR"
	CodeTooManyAttempts     = "TOO_MANY_ATTEMPTS"
	CodeInternal            = "INTERNAL_ERROR"
)

// AppError carries a stable code, a caller-safe message and the HTTP status
// the code maps to.
type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches any AppError with the same code, so errors.Is(err, ErrNotFound)
// works for every not-found error regardless of message.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if errors.As(target, &t) {
		return t.Code == e.Code
	}
	return false
}

// Sentinels for errors.Is comparisons
var (
	ErrInvalidTransition   = &AppError{Code: CodeInvalidTransition}
	ErrForbidden           = &AppError{Code: CodeForbidden}
	ErrPreconditionFailed  = &AppError{Code: CodePreconditionFailed}
	ErrNotFound            = &AppError{Code: CodeNotFound}
	ErrCircuitOpen         = &AppError{Code: CodeCircuitOpen}
	ErrGateway             = &AppError{Code: CodeGatewayError}
	ErrPersistenceConflict = &AppError{Code: CodePersistenceConflict}
	ErrValidation          = &AppError{Code: CodeValidation}
	ErrTooManyAttempts     = &AppError{Code: CodeTooManyAttempts}
	ErrInternal            = &AppError{Code: CodeInternal}
)

func New(code string, message string, status int, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

func InvalidTransition(from, event string) *AppError {
	return &AppError{
		Code:    CodeInvalidTransition,
		Message: fmt.Sprintf("event %s is not allowed from status %s", event, from),
		Status:  http.StatusConflict,
	}
}

func Forbidden(message string) *AppError {
	return &AppError{
		Code:    CodeForbidden,
		Message: message,
		Status:  http.StatusForbidden,
	}
}

func PreconditionFailed(message string) *AppError {
	return &AppError{
		Code:    CodePreconditionFailed,
		Message: message,
		Status:  http.StatusPreconditionFailed,
	}
}

func NotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
		Status:  http.StatusNotFound,
		Err:     err,
	}
}

func CircuitOpen(dependency string, err error) *AppError {
	return &AppError{
		Code:    CodeCircuitOpen,
		Message: fmt.Sprintf("%s is temporarily unavailable, retry later", dependency),
		Status:  http.StatusServiceUnavailable,
		Err:     err,
	}
}

func Gateway(message string, err error) *AppError {
	return &AppError{
		Code:    CodeGatewayError,
		Message: message,
		Status:  http.StatusBadGateway,
		Err:     err,
	}
}

func PersistenceConflict(err error) *AppError {
	return &AppError{
		Code:    CodePersistenceConflict,
		Message: "record was modified concurrently",
		Status:  http.StatusConflict,
		Err:     err,
	}
}

func Validation(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

func TooManyAttempts(message string) *AppError {
	return &AppError{
		Code:    CodeTooManyAttempts,
		Message: message,
		Status:  http.StatusTooManyRequests,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// CodeOf returns the code carried by err, or CodeInternal
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// StatusOf returns the HTTP status carried by err, or 500
func StatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Status != 0 {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// MessageOf returns the caller-safe message for err
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return "internal server error"
}

// IsRetryable reports whether the caller may retry the same request later
func IsRetryable(err error) bool {
	return errors.Is(err, ErrCircuitOpen) || errors.Is(err, ErrGateway)
}

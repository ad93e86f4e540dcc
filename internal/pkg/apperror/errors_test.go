package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Is(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NotFound("transaction", errors.New("sql: no rows")))

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrForbidden)
	assert.Equal(t, CodeNotFound, CodeOf(err))
	assert.Equal(t, http.StatusNotFound, StatusOf(err))
	assert.Equal(t, "transaction not found", MessageOf(err))
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := Gateway("payment gateway request failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "GATEWAY_ERROR")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		err    error
		code   string
		status int
	}{
		{InvalidTransition("EXPIRED", "PAYMENT_CAPTURED"), CodeInvalidTransition, http.StatusConflict},
		{Forbidden("only the buyer may do this"), CodeForbidden, http.StatusForbidden},
		{PreconditionFailed("pickup code does not match"), CodePreconditionFailed, http.StatusPreconditionFailed},
		{CircuitOpen("payment gateway", nil), CodeCircuitOpen, http.StatusServiceUnavailable},
		{PersistenceConflict(nil), CodePersistenceConflict, http.StatusConflict},
		{Validation("amount must not be negative"), CodeValidation, http.StatusBadRequest},
		{TooManyAttempts("too many attempts"), CodeTooManyAttempts, http.StatusTooManyRequests},
		{Internal("boom", nil), CodeInternal, http.StatusInternalServerError},
		{errors.New("plain"), CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.code, CodeOf(tt.err))
			assert.Equal(t, tt.status, StatusOf(tt.err))
		})
	}
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(CircuitOpen("payment gateway", nil)))
	assert.True(t, IsRetryable(Gateway("bad gateway", nil)))
	assert.False(t, IsRetryable(PreconditionFailed("nope")))
	assert.Equal(t, "internal server error", MessageOf(errors.New("secret detail")))
}

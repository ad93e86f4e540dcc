package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/escrow/internal/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessResponse(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		message    string
		data       interface{}
	}{
		{"Success with string data", http.StatusOK, "Operation successful", "test data"},
		{"Success with map data", http.StatusCreated, "Resource created", map[string]interface{}{"id": "123", "name": "test"}},
		{"Success with nil data", http.StatusOK, "Success", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := SuccessResponse(c, tt.statusCode, tt.message, tt.data)
			assert.NoError(t, err)
			assert.Equal(t, tt.statusCode, rec.Code)

			var response Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.True(t, response.Success)
			assert.Equal(t, tt.message, response.Message)
			assert.Equal(t, tt.data, response.Data)
		})
	}
}

func TestErrorResponseHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, BadRequestResponse(c, "Invalid input"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.False(t, response.Success)
	assert.Equal(t, "Invalid input", response.Error)
	assert.Equal(t, http.StatusBadRequest, response.Code)
	assert.Empty(t, response.ErrorCode)
}

func TestDefaultMessages(t *testing.T) {
	tests := []struct {
		name    string
		fn      func(echo.Context, string) error
		status  int
		message string
	}{
		{"unauthorized", UnauthorizedResponse, http.StatusUnauthorized, "Unauthorized"},
		{"forbidden", ForbiddenResponse, http.StatusForbidden, "Forbidden"},
		{"internal", InternalServerErrorResponse, http.StatusInternalServerError, "Internal server error"},
		{"too many", TooManyRequestsResponse, http.StatusTooManyRequests, "Rate limit exceeded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			require.NoError(t, tt.fn(c, ""))
			assert.Equal(t, tt.status, rec.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, tt.message, response.Error)
		})
	}
}

func TestAppErrorResponse(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		status    int
		code      string
		message   string
		retryable bool
	}{
		{"invalid transition", apperror.InvalidTransition("EXPIRED", "PAYMENT_CAPTURED"), http.StatusConflict, apperror.CodeInvalidTransition, "event PAYMENT_CAPTURED is not allowed from status EXPIRED", false},
		{"circuit open", apperror.CircuitOpen("payment gateway", nil), http.StatusServiceUnavailable, apperror.CodeCircuitOpen, "payment gateway is temporarily unavailable, retry later", true},
		{"plain error hides detail", errors.New("pq: connection reset"), http.StatusInternalServerError, apperror.CodeInternal, "internal server error", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			require.NoError(t, AppErrorResponse(c, tt.err))
			assert.Equal(t, tt.status, rec.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, tt.code, response.ErrorCode)
			assert.Equal(t, tt.message, response.Error)
			assert.Equal(t, tt.retryable, response.Retryable)
		})
	}
}

type bindTarget struct {
	Subject string `json:"subject" validate:"required"`
	Action  string `json:"action" validate:"required,oneof=RESOLVED REJECTED"`
}

func TestBindAndValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"valid", `{"subject":"item broken","action":"RESOLVED"}`, ""},
		{"missing field", `{"action":"RESOLVED"}`, "subject is required"},
		{"bad enum", `{"subject":"x","action":"MAYBE"}`, "action must be one of: RESOLVED REJECTED"},
		{"malformed json", `{"subject":`, "invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Validator = NewRequestValidator()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			c := e.NewContext(req, httptest.NewRecorder())

			var target bindTarget
			err := BindAndValidate(c, &target)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, apperror.ErrValidation)
			assert.Equal(t, tt.wantErr, apperror.MessageOf(err))
		})
	}
}

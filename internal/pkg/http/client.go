package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/piresc/escrow/internal/pkg/logger"
	nrpkg "github.com/piresc/escrow/internal/pkg/newrelic"
)

const (
	// DefaultTimeout for HTTP requests
	DefaultTimeout = 30 * time.Second
	// APIKeyHeader is the header name for API key
	APIKeyHeader = "X-API-Key"
	// IdempotencyKeyHeader lets the remote side dedupe retried requests
	IdempotencyKeyHeader = "Idempotency-Key"
)

// HTTPError is returned when the remote side answered with status >= 400
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error: %d %s", e.StatusCode, e.Body)
}

// IsServerError reports a 5xx answer
func (e *HTTPError) IsServerError() bool {
	return e.StatusCode >= 500
}

// Option customizes a Client
type Option func(*Client)

// WithBasicAuth sends the given credentials on every request
func WithBasicAuth(username, password string) Option {
	return func(c *Client) {
		c.username = username
		c.password = password
	}
}

// WithAPIKey sends the key in the X-API-Key header
func WithAPIKey(apiKey string) Option {
	return func(c *Client) {
		c.apiKey = apiKey
	}
}

// Client is a JSON HTTP client for calling external services
type Client struct {
	client      *nethttp.Client
	baseURL     string
	serviceName string
	apiKey      string
	username    string
	password    string
}

// NewClient creates a new JSON client rooted at baseURL
func NewClient(serviceName, baseURL string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		client:      &nethttp.Client{Timeout: timeout},
		baseURL:     strings.TrimRight(baseURL, "/"),
		serviceName: serviceName,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the normalized base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// PostJSON sends body as JSON and decodes the response into result.
// A status >= 400 is reported as *HTTPError.
func (c *Client) PostJSON(ctx context.Context, endpoint string, headers map[string]string, body, result interface{}) error {
	return c.doJSON(ctx, nethttp.MethodPost, endpoint, headers, body, result)
}

// GetJSON performs a GET request and decodes JSON response
func (c *Client) GetJSON(ctx context.Context, endpoint string, headers map[string]string, result interface{}) error {
	return c.doJSON(ctx, nethttp.MethodGet, endpoint, headers, nil, result)
}

func (c *Client) doJSON(ctx context.Context, method, endpoint string, headers map[string]string, body, result interface{}) error {
	resp, err := c.doRequest(ctx, method, endpoint, headers, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &HTTPError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

func (c *Client) doRequest(ctx context.Context, method, endpoint string, headers map[string]string, body interface{}) (*nethttp.Response, error) {
	url := c.baseURL + endpoint

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(APIKeyHeader, c.apiKey)
	}
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	logger.Debug("Making HTTP request",
		logger.String("method", method),
		logger.String("url", url),
		logger.String("service", c.serviceName))

	start := time.Now()
	resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*nethttp.Response, error) {
		return c.client.Do(req)
	})
	if err != nil {
		logger.Error("HTTP request failed",
			logger.String("method", method),
			logger.String("url", url),
			logger.String("service", c.serviceName),
			logger.Err(err))
		return nil, fmt.Errorf("request failed: %w", err)
	}

	logger.Debug("HTTP request completed",
		logger.String("method", method),
		logger.String("url", url),
		logger.String("service", c.serviceName),
		logger.Int("status_code", resp.StatusCode),
		logger.Duration("duration", time.Since(start)))

	return resp, nil
}

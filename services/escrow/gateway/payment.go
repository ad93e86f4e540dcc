package gateway

import (
	"context"
	"errors"

	"github.com/piresc/escrow/internal/pkg/apperror"
	"github.com/piresc/escrow/internal/pkg/circuitbreaker"
	httpclient "github.com/piresc/escrow/internal/pkg/http"
	"github.com/piresc/escrow/internal/pkg/logger"
	"github.com/piresc/escrow/internal/pkg/models"
)

const ordersEndpoint = "/v1/orders"

// PaymentClient opens orders with the payment gateway. Transport failures
// and 5xx answers count against the breaker, 4xx answers do not.
type PaymentClient struct {
	client  *httpclient.Client
	breaker *circuitbreaker.CircuitBreaker
}

func NewPaymentClient(client *httpclient.Client, breaker *circuitbreaker.CircuitBreaker) *PaymentClient {
	return &PaymentClient{
		client:  client,
		breaker: breaker,
	}
}

// CreateOrder asks the gateway for a new order. The idempotency key lets the
// gateway collapse retries of the same transaction into one order.
func (p *PaymentClient) CreateOrder(ctx context.Context, req models.PaymentOrderRequest) (*models.PaymentOrder, error) {
	if p.breaker.IsOpen() {
		logger.WarnCtx(ctx, "Payment gateway circuit open, skipping call",
			logger.String("breaker", p.breaker.Name()),
			logger.String("idempotency_key", req.IdempotencyKey))
		return nil, apperror.CircuitOpen("payment gateway", circuitbreaker.ErrCircuitBreakerOpen)
	}

	headers := map[string]string{
		httpclient.IdempotencyKeyHeader: req.IdempotencyKey,
	}

	var order models.PaymentOrder
	err := p.client.PostJSON(ctx, ordersEndpoint, headers, req, &order)
	if err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) && !httpErr.IsServerError() {
			// the gateway is up, it just refused this request
			p.breaker.RecordSuccess()
			logger.WarnCtx(ctx, "Payment gateway rejected order",
				logger.String("idempotency_key", req.IdempotencyKey),
				logger.Int("status_code", httpErr.StatusCode))
			return nil, apperror.Gateway("payment gateway rejected the order", err)
		}

		p.breaker.RecordFailure()
		logger.ErrorCtx(ctx, "Payment gateway call failed",
			logger.String("idempotency_key", req.IdempotencyKey),
			logger.Err(err))
		return nil, apperror.Gateway("payment gateway request failed", err)
	}

	p.breaker.RecordSuccess()
	if order.OrderReference == "" {
		return nil, apperror.Gateway("payment gateway returned no order reference", nil)
	}

	return &order, nil
}

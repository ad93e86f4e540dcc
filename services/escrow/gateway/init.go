package gateway

import (
	"github.com/piresc/escrow/internal/pkg/circuitbreaker"
	"github.com/piresc/escrow/internal/pkg/constants"
	httpclient "github.com/piresc/escrow/internal/pkg/http"
	"github.com/piresc/escrow/internal/pkg/models"
	natspkg "github.com/piresc/escrow/internal/pkg/nats"
)

// EscrowGW bundles the outbound adapters used by the escrow usecase
type EscrowGW struct {
	Payment   *PaymentClient
	Publisher *NATSPublisher
}

// NewEscrowGW wires the payment client behind its circuit breaker and the
// NATS publisher on the shared connection
func NewEscrowGW(cfg *models.Config, breakers *circuitbreaker.Manager, natsClient *natspkg.Client) (*EscrowGW, error) {
	breakerCfg := circuitbreaker.DefaultConfig(constants.BreakerPaymentGateway)
	breakerCfg.FailureThreshold = cfg.PaymentGateway.BreakerThreshold
	breakerCfg.ResetTimeout = cfg.PaymentGateway.BreakerReset
	breaker := breakers.GetOrCreate(constants.BreakerPaymentGateway, breakerCfg)

	client := httpclient.NewClient(
		"payment-gateway",
		cfg.PaymentGateway.BaseURL,
		cfg.PaymentGateway.Timeout,
		httpclient.WithBasicAuth(cfg.PaymentGateway.ServerKey, ""),
	)

	publisher, err := NewNATSPublisher(natsClient)
	if err != nil {
		return nil, err
	}

	return &EscrowGW{
		Payment:   NewPaymentClient(client, breaker),
		Publisher: publisher,
	}, nil
}

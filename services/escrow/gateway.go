package escrow

import (
	"context"

	"github.com/piresc/escrow/internal/pkg/models"
)

// PaymentGateway opens orders with the external payment processor
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/escrow/services/escrow PaymentGateway,EventPublisher
type PaymentGateway interface {
	CreateOrder(ctx context.Context, req models.PaymentOrderRequest) (*models.PaymentOrder, error)
}

// EventPublisher announces committed changes to other services
type EventPublisher interface {
	PublishStatusChanged(ctx context.Context, event models.TransactionStatusChangedEvent) error
	PublishDisputeResolved(ctx context.Context, event models.DisputeResolvedEvent) error
}

package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/escrow/internal/pkg/constants"
	"github.com/piresc/escrow/internal/pkg/logger"
	"github.com/piresc/escrow/internal/pkg/models"
	natspkg "github.com/piresc/escrow/internal/pkg/nats"
)

// NATSPublisher announces committed escrow changes
type NATSPublisher struct {
	producer *natspkg.Producer
}

// NewNATSPublisher creates a publisher on the shared NATS connection
func NewNATSPublisher(client *natspkg.Client) (*NATSPublisher, error) {
	producer, err := natspkg.NewProducer(client)
	if err != nil {
		return nil, err
	}
	return &NATSPublisher{producer: producer}, nil
}

// PublishStatusChanged publishes a transaction status change
func (p *NATSPublisher) PublishStatusChanged(ctx context.Context, event models.TransactionStatusChangedEvent) error {
	if err := p.producer.Publish(constants.SubjectTransactionStatusChanged, event); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish status change",
			logger.TransactionID(event.TransactionID),
			logger.String("status", string(event.Status)),
			logger.Err(err))
		return fmt.Errorf("failed to publish status change: %w", err)
	}
	return nil
}

// PublishDisputeResolved publishes an admin dispute decision
func (p *NATSPublisher) PublishDisputeResolved(ctx context.Context, event models.DisputeResolvedEvent) error {
	if err := p.producer.Publish(constants.SubjectDisputeResolved, event); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish dispute resolution",
			logger.DisputeID(event.DisputeID),
			logger.Err(err))
		return fmt.Errorf("failed to publish dispute resolution: %w", err)
	}
	return nil
}

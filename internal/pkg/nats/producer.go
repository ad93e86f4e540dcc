package nats

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/piresc/escrow/internal/pkg/logger"
)

// Producer handles publishing JSON messages to NATS subjects
type Producer struct {
	conn *nats.Conn
}

// NewProducer creates a producer on a shared client connection
func NewProducer(client *Client) (*Producer, error) {
	conn := client.GetConn()
	if conn == nil {
		return nil, fmt.Errorf("failed to create producer: NATS connection is nil")
	}

	return &Producer{conn: conn}, nil
}

// Publish sends a message to the specified subject
func (p *Producer) Publish(subject string, message interface{}) error {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	err = p.conn.Publish(subject, msgBytes)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	logger.Debug("Published message", logger.String("subject", subject))
	return nil
}

package nats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClient(t *testing.T) {
	t.Run("invalid address", func(t *testing.T) {
		client, err := NewClient("invalid://address", "escrow-test")
		assert.Error(t, err)
		assert.Nil(t, client)
		assert.Contains(t, err.Error(), "failed to connect to NATS server")
	})
}

func TestNilClient(t *testing.T) {
	var client *Client

	assert.Nil(t, client.GetConn())
	assert.False(t, client.IsConnected())
	assert.NotPanics(t, client.Close)
}

func TestNewProducer(t *testing.T) {
	t.Run("nil connection", func(t *testing.T) {
		producer, err := NewProducer(&Client{})
		assert.Error(t, err)
		assert.Nil(t, producer)
		assert.Contains(t, err.Error(), "NATS connection is nil")
	})
}

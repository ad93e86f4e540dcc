package logger

import (
	"time"

	"github.com/google/uuid"
	"github.com/piresc/escrow/internal/pkg/models"
	"go.uber.org/zap"
)

// Field is what every logging call in the service takes
type Field = zap.Field

func String(key, val string) Field { return zap.String(key, val) }

func Err(err error) Field { return zap.Error(err) }

func Int(key string, val int) Field { return zap.Int(key, val) }

func Uint32(key string, val uint32) Field { return zap.Uint32(key, val) }

func Bool(key string, val bool) Field { return zap.Bool(key, val) }

func Any(key string, val interface{}) Field { return zap.Any(key, val) }

func Duration(key string, val time.Duration) Field { return zap.Duration(key, val) }

// TransactionID tags an entry with the escrow transaction it concerns
func TransactionID(id uuid.UUID) Field {
	return zap.String("transaction_id", id.String())
}

// DisputeID tags an entry with a dispute
func DisputeID(id uuid.UUID) Field {
	return zap.String("dispute_id", id.String())
}

// Event names the lifecycle event being applied
func Event(event models.Event) Field {
	return zap.String("event", string(event))
}

package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/piresc/escrow/internal/pkg/constants"
	"github.com/piresc/escrow/services/escrow"
)

// AttemptLimiter counts pickup confirmation attempts per transaction in
// Redis. A successful confirmation resets the counter.
type AttemptLimiter struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
}

// NewAttemptLimiter creates a Redis-backed pickup attempt limiter
func NewAttemptLimiter(client *redis.Client, maxAttempts int, window time.Duration) *AttemptLimiter {
	return &AttemptLimiter{
		client:      client,
		maxAttempts: maxAttempts,
		window:      window,
	}
}

func attemptsKey(transactionID uuid.UUID) string {
	return fmt.Sprintf(constants.KeyPickupAttempts, transactionID.String())
}

// Take counts one attempt and reports how many are left after it.
// The window starts with the first attempt.
func (l *AttemptLimiter) Take(ctx context.Context, transactionID uuid.UUID) (int, error) {
	key := attemptsKey(transactionID)

	used, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to record pickup attempt: %w", err)
	}
	if used == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return 0, fmt.Errorf("failed to set pickup attempt window: %w", err)
		}
	}
	if used > int64(l.maxAttempts) {
		return 0, escrow.ErrAttemptsExhausted
	}

	return l.maxAttempts - int(used), nil
}

// Reset clears the counter after a successful confirmation
func (l *AttemptLimiter) Reset(ctx context.Context, transactionID uuid.UUID) error {
	if err := l.client.Del(ctx, attemptsKey(transactionID)).Err(); err != nil {
		return fmt.Errorf("failed to reset pickup attempts: %w", err)
	}
	return nil
}

package escrow

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/escrow/internal/pkg/models"
)

// ErrStatusConflict means the compare-on-status write found the row in a
// different status than the transition expected
var ErrStatusConflict = errors.New("transaction status changed concurrently")

// ErrNotFound is returned by lookups that matched no row
var ErrNotFound = errors.New("record not found")

// ErrAttemptsExhausted means the attempt window has no attempts left
var ErrAttemptsExhausted = errors.New("attempts exhausted")

// EscrowRepo is the transaction store
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/escrow/services/escrow EscrowRepo,AttemptLimiter
type EscrowRepo interface {
	CreateTransaction(ctx context.Context, tx *models.Transaction) error
	GetTransactionByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	SetOrderReference(ctx context.Context, id uuid.UUID, orderReference string) error

	// ApplyTransition moves the transaction from t.From to t.To and performs
	// the dependent pickup or dispute write in the same database transaction
	ApplyTransition(ctx context.Context, t models.Transition) (*models.TransitionResult, error)

	GetPickup(ctx context.Context, transactionID uuid.UUID) (*models.Pickup, error)

	GetDisputeByID(ctx context.Context, id uuid.UUID) (*models.Dispute, error)
	GetDisputeByTransactionID(ctx context.Context, transactionID uuid.UUID) (*models.Dispute, error)
	HasOpenDispute(ctx context.Context, transactionID uuid.UUID) (bool, error)

	ListExpirable(ctx context.Context, cutoff time.Time, limit int) ([]uuid.UUID, error)
	ListAutoCompletable(ctx context.Context, cutoff time.Time, limit int) ([]uuid.UUID, error)
	CountByStatus(ctx context.Context, statuses []models.TransactionStatus) (map[models.TransactionStatus]int, error)

	CreateAdminAction(ctx context.Context, action *models.AdminAction) error
	ListAdminActions(ctx context.Context, disputeID uuid.UUID) ([]*models.AdminAction, error)
}

// AttemptLimiter bounds pickup confirmation attempts per transaction
type AttemptLimiter interface {
	// Take counts one attempt before the code is compared and returns the
	// attempts left after it, or ErrAttemptsExhausted
	Take(ctx context.Context, transactionID uuid.UUID) (int, error)
	Reset(ctx context.Context, transactionID uuid.UUID) error
}

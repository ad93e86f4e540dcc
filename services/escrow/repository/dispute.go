package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/escrow/internal/pkg/models"
	"github.com/piresc/escrow/services/escrow"
)

// GetPickup retrieves the pickup of a transaction
func (r *EscrowRepo) GetPickup(ctx context.Context, transactionID uuid.UUID) (*models.Pickup, error) {
	query := `SELECT ` + pickupColumns + ` FROM pickups WHERE transaction_id = $1`

	var p models.Pickup
	if err := r.db.GetContext(ctx, &p, query, transactionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("pickup for %s: %w", transactionID, escrow.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get pickup: %w", err)
	}
	return &p, nil
}

// GetDisputeByID retrieves a dispute by ID
func (r *EscrowRepo) GetDisputeByID(ctx context.Context, id uuid.UUID) (*models.Dispute, error) {
	query := `SELECT ` + disputeColumns + ` FROM disputes WHERE id = $1`

	var d models.Dispute
	if err := r.db.GetContext(ctx, &d, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("dispute %s: %w", id, escrow.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get dispute: %w", err)
	}
	return &d, nil
}

// GetDisputeByTransactionID retrieves the dispute attached to a transaction
func (r *EscrowRepo) GetDisputeByTransactionID(ctx context.Context, transactionID uuid.UUID) (*models.Dispute, error) {
	query := `SELECT ` + disputeColumns + ` FROM disputes WHERE transaction_id = $1`

	var d models.Dispute
	if err := r.db.GetContext(ctx, &d, query, transactionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("dispute for %s: %w", transactionID, escrow.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get dispute: %w", err)
	}
	return &d, nil
}

// HasOpenDispute reports whether the transaction has an OPEN dispute
func (r *EscrowRepo) HasOpenDispute(ctx context.Context, transactionID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM disputes WHERE transaction_id = $1 AND status = $2)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, transactionID, models.DisputeStatusOpen); err != nil {
		return false, fmt.Errorf("failed to check open dispute: %w", err)
	}
	return exists, nil
}

// CreateAdminAction appends an audit record
func (r *EscrowRepo) CreateAdminAction(ctx context.Context, action *models.AdminAction) error {
	query := `
		INSERT INTO admin_actions (id, dispute_id, admin_id, action, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		action.ID, action.DisputeID, action.AdminID, action.Action, action.Note, action.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert admin action: %w", err)
	}
	return nil
}

// ListAdminActions returns the audit trail of a dispute, oldest first
func (r *EscrowRepo) ListAdminActions(ctx context.Context, disputeID uuid.UUID) ([]*models.AdminAction, error) {
	query := `SELECT ` + adminActionColumns + ` FROM admin_actions WHERE dispute_id = $1 ORDER BY created_at`

	actions := make([]*models.AdminAction, 0)
	if err := r.db.SelectContext(ctx, &actions, query, disputeID); err != nil {
		return nil, fmt.Errorf("failed to list admin actions: %w", err)
	}
	return actions, nil
}

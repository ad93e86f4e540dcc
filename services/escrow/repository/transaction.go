package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/escrow/internal/pkg/models"
	"github.com/piresc/escrow/services/escrow"
)

// CreateTransaction inserts a new INITIATED transaction
func (r *EscrowRepo) CreateTransaction(ctx context.Context, t *models.Transaction) error {
	query := `
		INSERT INTO transactions (
			id, listing_id, buyer_id, seller_id, amount, currency, status,
			order_reference, created_at, updated_at, paid_at, completed_at, expires_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.ListingID,
		t.BuyerID,
		t.SellerID,
		t.Amount,
		t.Currency,
		t.Status,
		t.OrderReference,
		t.CreatedAt,
		t.UpdatedAt,
		t.PaidAt,
		t.CompletedAt,
		t.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// GetTransactionByID retrieves a transaction by ID
func (r *EscrowRepo) GetTransactionByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	var t models.Transaction
	if err := r.db.GetContext(ctx, &t, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("transaction %s: %w", id, escrow.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &t, nil
}

// SetOrderReference stores the gateway order reference once, while the
// transaction is still INITIATED
func (r *EscrowRepo) SetOrderReference(ctx context.Context, id uuid.UUID, orderReference string) error {
	query := `
		UPDATE transactions
		SET order_reference = $1, updated_at = $2
		WHERE id = $3 AND status = $4 AND order_reference IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, orderReference, models.Now(), id, models.TransactionStatusInitiated)
	if err != nil {
		return fmt.Errorf("failed to set order reference: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return escrow.ErrStatusConflict
	}

	return nil
}

// ApplyTransition performs the compare-on-status update and the dependent
// write declared by the transition inside one database transaction
func (r *EscrowRepo) ApplyTransition(ctx context.Context, t models.Transition) (*models.TransitionResult, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var paidAt, completedAt *time.Time
	switch {
	case t.To == models.TransactionStatusPaid && t.From != models.TransactionStatusPaid:
		paidAt = &t.At
	case t.To == models.TransactionStatusCompleted:
		completedAt = &t.At
	}

	query := `
		UPDATE transactions
		SET status = $1,
			updated_at = $2,
			paid_at = COALESCE($3, paid_at),
			completed_at = COALESCE($4, completed_at)
		WHERE id = $5 AND status = $6
		RETURNING ` + transactionColumns

	var updated models.Transaction
	err = tx.GetContext(ctx, &updated, query, t.To, t.At, paidAt, completedAt, t.TransactionID, t.From)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, escrow.ErrStatusConflict
		}
		return nil, fmt.Errorf("failed to update transaction status: %w", err)
	}

	result := &models.TransitionResult{Transaction: &updated}

	switch {
	case t.CreatePickup != nil:
		result.Pickup, err = createPickup(ctx, tx, t.CreatePickup)
	case t.ConfirmPickup:
		result.Pickup, err = confirmPickup(ctx, tx, t.TransactionID, t.At)
	case t.CreateDispute != nil:
		result.Dispute, err = createDispute(ctx, tx, t.CreateDispute)
	case t.CloseDispute != nil:
		result.Dispute, err = closeDispute(ctx, tx, t.TransactionID, t.CloseDispute, t.At)
	}
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transition: %w", err)
	}

	return result, nil
}

// ListExpirable returns INITIATED transactions whose payment window closed before cutoff
func (r *EscrowRepo) ListExpirable(ctx context.Context, cutoff time.Time, limit int) ([]uuid.UUID, error) {
	query := `
		SELECT id FROM transactions
		WHERE status = $1 AND expires_at < $2
		ORDER BY created_at
		LIMIT $3
	`

	var ids []uuid.UUID
	if err := r.db.SelectContext(ctx, &ids, query, models.TransactionStatusInitiated, cutoff, limit); err != nil {
		return nil, fmt.Errorf("failed to list expirable transactions: %w", err)
	}
	return ids, nil
}

// ListAutoCompletable returns PAID transactions paid before cutoff with no open dispute
func (r *EscrowRepo) ListAutoCompletable(ctx context.Context, cutoff time.Time, limit int) ([]uuid.UUID, error) {
	query := `
		SELECT t.id FROM transactions t
		WHERE t.status = $1 AND t.paid_at < $2
			AND NOT EXISTS (
				SELECT 1 FROM disputes d
				WHERE d.transaction_id = t.id AND d.status = $3
			)
		ORDER BY t.paid_at
		LIMIT $4
	`

	var ids []uuid.UUID
	err := r.db.SelectContext(ctx, &ids, query,
		models.TransactionStatusPaid, cutoff, models.DisputeStatusOpen, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list auto-completable transactions: %w", err)
	}
	return ids, nil
}

// CountByStatus counts transactions per status for the given statuses
func (r *EscrowRepo) CountByStatus(ctx context.Context, statuses []models.TransactionStatus) (map[models.TransactionStatus]int, error) {
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}

	query := `
		SELECT status, COUNT(*) AS total FROM transactions
		WHERE status = ANY($1)
		GROUP BY status
	`

	rows, err := r.db.QueryxContext(ctx, query, pq.Array(names))
	if err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.TransactionStatus]int, len(statuses))
	for _, s := range statuses {
		counts[s] = 0
	}
	for rows.Next() {
		var status models.TransactionStatus
		var total int
		if err := rows.Scan(&status, &total); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[status] = total
	}

	return counts, rows.Err()
}

func createPickup(ctx context.Context, tx *sqlx.Tx, p *models.Pickup) (*models.Pickup, error) {
	insert := `
		INSERT INTO pickups (transaction_id, pickup_code, status, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (transaction_id) DO NOTHING
	`
	if _, err := tx.ExecContext(ctx, insert, p.TransactionID, p.Code, p.Status, p.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to insert pickup: %w", err)
	}

	var stored models.Pickup
	query := `SELECT ` + pickupColumns + ` FROM pickups WHERE transaction_id = $1`
	if err := tx.GetContext(ctx, &stored, query, p.TransactionID); err != nil {
		return nil, fmt.Errorf("failed to read pickup: %w", err)
	}
	return &stored, nil
}

func confirmPickup(ctx context.Context, tx *sqlx.Tx, transactionID uuid.UUID, at time.Time) (*models.Pickup, error) {
	query := `
		UPDATE pickups SET status = $1, confirmed_at = $2
		WHERE transaction_id = $3 AND status = $4
		RETURNING ` + pickupColumns

	var p models.Pickup
	err := tx.GetContext(ctx, &p, query,
		models.PickupStatusConfirmed, at, transactionID, models.PickupStatusGenerated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, escrow.ErrStatusConflict
		}
		return nil, fmt.Errorf("failed to confirm pickup: %w", err)
	}
	return &p, nil
}

func createDispute(ctx context.Context, tx *sqlx.Tx, d *models.Dispute) (*models.Dispute, error) {
	query := `
		INSERT INTO disputes (
			id, transaction_id, reporter_id, subject, description, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (transaction_id) DO NOTHING
	`

	result, err := tx.ExecContext(ctx, query,
		d.ID, d.TransactionID, d.ReporterID, d.Subject, d.Description, d.Status, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert dispute: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, escrow.ErrStatusConflict
	}

	created := *d
	return &created, nil
}

func closeDispute(ctx context.Context, tx *sqlx.Tx, transactionID uuid.UUID, c *models.DisputeClosure, at time.Time) (*models.Dispute, error) {
	query := `
		UPDATE disputes
		SET status = $1, resolution = $2, resolved_at = $3, resolved_by = $4, updated_at = $3
		WHERE id = $5 AND transaction_id = $6 AND status = $7
		RETURNING ` + disputeColumns

	var d models.Dispute
	err := tx.GetContext(ctx, &d, query,
		c.Status, c.Resolution, at, c.ResolvedBy, c.DisputeID, transactionID, models.DisputeStatusOpen)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, escrow.ErrStatusConflict
		}
		return nil, fmt.Errorf("failed to close dispute: %w", err)
	}
	return &d, nil
}

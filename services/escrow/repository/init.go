package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/escrow/internal/pkg/logger"
	"github.com/piresc/escrow/internal/pkg/models"
)

// EscrowRepo implements escrow.EscrowRepo on Postgres
type EscrowRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewEscrowRepository creates a new escrow repository instance
func NewEscrowRepository(cfg *models.Config, db *sqlx.DB) *EscrowRepo {
	logger.Info("Initializing escrow repository")
	return &EscrowRepo{
		cfg: cfg,
		db:  db,
	}
}

const transactionColumns = `id, listing_id, buyer_id, seller_id, amount, currency, status,
	order_reference, created_at, updated_at, paid_at, completed_at, expires_at`

const pickupColumns = `transaction_id, pickup_code, status, created_at, confirmed_at`

const disputeColumns = `id, transaction_id, reporter_id, subject, description, status,
	resolution, resolved_at, resolved_by, created_at, updated_at`

const adminActionColumns = `id, dispute_id, admin_id, action, note, created_at`

package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/escrow/internal/pkg/apperror"
	"github.com/piresc/escrow/internal/pkg/logger"
	"github.com/piresc/escrow/internal/pkg/models"
)

// CreateTransaction opens an INITIATED transaction for the calling buyer
func (uc *EscrowUC) CreateTransaction(ctx context.Context, buyer models.Actor, req models.CreateTransactionRequest) (*models.Transaction, error) {
	if buyer.Role != models.RoleUser {
		return nil, apperror.Forbidden("only users may buy")
	}
	if req.ListingID == uuid.Nil || req.SellerID == uuid.Nil {
		return nil, apperror.Validation("listing_id and seller_id are required")
	}
	if req.SellerID == buyer.ID {
		return nil, apperror.Validation("buyer and seller must differ")
	}
	if req.Amount.IsNegative() {
		return nil, apperror.Validation("amount must not be negative")
	}

	now := uc.now()
	expiresAt := now.Add(uc.cfg.Escrow.PaymentWindow)
	tx := &models.Transaction{
		ID:        uuid.New(),
		ListingID: req.ListingID,
		BuyerID:   buyer.ID,
		SellerID:  req.SellerID,
		Amount:    req.Amount,
		Currency:  uc.cfg.Escrow.Currency,
		Status:    models.TransactionStatusInitiated,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: &expiresAt,
	}

	if err := uc.repo.CreateTransaction(ctx, tx); err != nil {
		logger.ErrorCtx(ctx, "Failed to create transaction",
			logger.String("buyer_id", buyer.ID.String()),
			logger.Err(err))
		return nil, apperror.Internal("failed to create transaction", err)
	}

	logger.InfoCtx(ctx, "Transaction created",
		logger.TransactionID(tx.ID),
		logger.String("listing_id", tx.ListingID.String()),
		logger.String("amount", tx.Amount.String()))
	return tx, nil
}

// GetTransaction returns the transaction to one of its parties or an admin
func (uc *EscrowUC) GetTransaction(ctx context.Context, id uuid.UUID, actor models.Actor) (*models.Transaction, error) {
	tx, err := uc.loadTransaction(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canView(tx, actor) {
		return nil, apperror.Forbidden("not a party to this transaction")
	}
	return tx, nil
}

// ApplyEvent drives the lifecycle with an arbitrary event
func (uc *EscrowUC) ApplyEvent(ctx context.Context, id uuid.UUID, event models.Event, actor models.Actor, payload models.EventPayload) (*models.Transaction, error) {
	result, _, err := uc.apply(ctx, id, event, actor, payload)
	if err != nil {
		return nil, err
	}
	return result.Transaction, nil
}

// CancelTransaction withdraws an unpaid transaction
func (uc *EscrowUC) CancelTransaction(ctx context.Context, id uuid.UUID, actor models.Actor) (*models.Transaction, error) {
	return uc.ApplyEvent(ctx, id, models.EventCancel, actor, models.EventPayload{})
}

func canView(tx *models.Transaction, actor models.Actor) bool {
	return actor.IsAdmin() || actor.IsSystem() || tx.IsParty(actor.ID)
}

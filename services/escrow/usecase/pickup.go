package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/piresc/escrow/internal/pkg/apperror"
	"github.com/piresc/escrow/internal/pkg/models"
	"github.com/piresc/escrow/services/escrow"
)

// GeneratePickupCode issues the handoff code for a paid transaction.
// Calling it again returns the existing pickup.
func (uc *EscrowUC) GeneratePickupCode(ctx context.Context, id uuid.UUID, actor models.Actor) (*models.Pickup, error) {
	result, _, err := uc.apply(ctx, id, models.EventGeneratePickup, actor, models.EventPayload{})
	if err != nil {
		return nil, err
	}
	return result.Pickup, nil
}

// ConfirmPickup completes the transaction when code matches the stored one
func (uc *EscrowUC) ConfirmPickup(ctx context.Context, id uuid.UUID, actor models.Actor, code string) (*models.Transaction, error) {
	result, _, err := uc.apply(ctx, id, models.EventConfirmPickup, actor, models.EventPayload{PickupCode: code})
	if err != nil {
		return nil, err
	}
	return result.Transaction, nil
}

// GetPickup shows the handoff record to a party or an admin. Only the buyer
// gets the code back; the seller has to hear it at the handoff.
func (uc *EscrowUC) GetPickup(ctx context.Context, id uuid.UUID, actor models.Actor) (*models.Pickup, error) {
	tx, err := uc.loadTransaction(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canView(tx, actor) {
		return nil, apperror.Forbidden("not a party to this transaction")
	}

	pickup, err := uc.repo.GetPickup(ctx, id)
	if err != nil {
		if errors.Is(err, escrow.ErrNotFound) {
			return nil, apperror.NotFound("pickup", err)
		}
		return nil, apperror.Internal("failed to load pickup", err)
	}

	if actor.ID != tx.BuyerID {
		redacted := pickup.Redacted()
		return &redacted, nil
	}
	return pickup, nil
}

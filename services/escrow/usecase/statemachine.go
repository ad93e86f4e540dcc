package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/escrow/internal/pkg/apperror"
	"github.com/piresc/escrow/internal/pkg/constants"
	"github.com/piresc/escrow/internal/pkg/logger"
	"github.com/piresc/escrow/internal/pkg/models"
	nrpkg "github.com/piresc/escrow/internal/pkg/newrelic"
	"github.com/piresc/escrow/internal/pkg/pickupcode"
	"github.com/piresc/escrow/internal/utils"
	"github.com/piresc/escrow/services/escrow"
)

type authorizer func(tx *models.Transaction, actor models.Actor) error

// transitionRule is one row of the lifecycle table
type transitionRule struct {
	from      []models.TransactionStatus
	to        models.TransactionStatus
	authorize authorizer
}

func (r transitionRule) allows(status models.TransactionStatus) bool {
	for _, from := range r.from {
		if from == status {
			return true
		}
	}
	return false
}

var transitionTable = map[models.Event]transitionRule{
	models.EventPaymentCaptured: {
		from:      []models.TransactionStatus{models.TransactionStatusInitiated},
		to:        models.TransactionStatusPaid,
		authorize: requireSystem,
	},
	models.EventExpire: {
		from:      []models.TransactionStatus{models.TransactionStatusInitiated},
		to:        models.TransactionStatusExpired,
		authorize: requireSystem,
	},
	models.EventCancel: {
		from:      []models.TransactionStatus{models.TransactionStatusInitiated},
		to:        models.TransactionStatusCancelled,
		authorize: requireParty,
	},
	models.EventGeneratePickup: {
		from:      []models.TransactionStatus{models.TransactionStatusPaid},
		to:        models.TransactionStatusPaid,
		authorize: requireBuyer,
	},
	models.EventConfirmPickup: {
		from:      []models.TransactionStatus{models.TransactionStatusPaid},
		to:        models.TransactionStatusCompleted,
		authorize: requireParty,
	},
	models.EventAutoComplete: {
		from:      []models.TransactionStatus{models.TransactionStatusPaid},
		to:        models.TransactionStatusCompleted,
		authorize: requireSystem,
	},
	models.EventOpenDispute: {
		from:      []models.TransactionStatus{models.TransactionStatusPaid, models.TransactionStatusCompleted},
		to:        models.TransactionStatusDisputed,
		authorize: requireParty,
	},
	models.EventResolveDispute: {
		from:      []models.TransactionStatus{models.TransactionStatusDisputed},
		to:        models.TransactionStatusResolved,
		authorize: requireAdmin,
	},
	models.EventRejectDispute: {
		from:      []models.TransactionStatus{models.TransactionStatusDisputed},
		to:        models.TransactionStatusRejected,
		authorize: requireAdmin,
	},
}

func requireSystem(_ *models.Transaction, actor models.Actor) error {
	if !actor.IsSystem() {
		return apperror.Forbidden("only the system may apply this event")
	}
	return nil
}

func requireParty(tx *models.Transaction, actor models.Actor) error {
	if actor.Role != models.RoleUser || !tx.IsParty(actor.ID) {
		return apperror.Forbidden("only the buyer or seller may apply this event")
	}
	return nil
}

func requireBuyer(tx *models.Transaction, actor models.Actor) error {
	if actor.Role != models.RoleUser || actor.ID != tx.BuyerID {
		return apperror.Forbidden("only the buyer may apply this event")
	}
	return nil
}

func requireAdmin(_ *models.Transaction, actor models.Actor) error {
	if !actor.IsAdmin() {
		return apperror.Forbidden("only an admin may apply this event")
	}
	return nil
}

// apply runs one event through the lifecycle. changed is false when the
// event was already satisfied and nothing was written.
func (uc *EscrowUC) apply(ctx context.Context, id uuid.UUID, event models.Event, actor models.Actor, payload models.EventPayload) (*models.TransitionResult, bool, error) {
	rule, ok := transitionTable[event]
	if !ok {
		return nil, false, apperror.Validation(fmt.Sprintf("unknown event %q", event))
	}

	tx, err := uc.loadTransaction(ctx, id)
	if err != nil {
		return nil, false, err
	}

	if err := rule.authorize(tx, actor); err != nil {
		return nil, false, err
	}

	if result, satisfied, err := uc.checkSatisfied(ctx, tx, event, payload); satisfied || err != nil {
		return result, false, err
	}

	if !rule.allows(tx.Status) {
		logger.InfoCtx(ctx, "Rejected transition",
			logger.TransactionID(id),
			logger.String("status", string(tx.Status)),
			logger.Event(event))
		return nil, false, apperror.InvalidTransition(string(tx.Status), string(event))
	}

	transition, err := uc.buildTransition(ctx, tx, rule, event, actor, payload)
	if err != nil {
		return nil, false, err
	}

	result, err := nrpkg.WithSegmentAndReturn(ctx, "escrow/apply-transition", func() (*models.TransitionResult, error) {
		return uc.repo.ApplyTransition(ctx, transition)
	})
	if err != nil {
		if errors.Is(err, escrow.ErrStatusConflict) {
			return uc.resolveConflict(ctx, transition, actor, payload, err)
		}
		logger.ErrorCtx(ctx, "Failed to persist transition",
			logger.TransactionID(id),
			logger.Event(event),
			logger.Err(err))
		return nil, false, apperror.Internal("failed to persist transition", err)
	}

	uc.afterTransition(ctx, transition, result, actor)
	return result, true, nil
}

// checkSatisfied reports whether tx already sits where event would take it.
// A satisfied event with a matching payload is a no-op; with a different
// payload it is a precondition failure.
func (uc *EscrowUC) checkSatisfied(ctx context.Context, tx *models.Transaction, event models.Event, payload models.EventPayload) (*models.TransitionResult, bool, error) {
	current := &models.TransitionResult{Transaction: tx}

	switch event {
	case models.EventPaymentCaptured:
		if tx.Status != models.TransactionStatusPaid {
			return nil, false, nil
		}
		if tx.OrderReference == nil || *tx.OrderReference != payload.OrderReference {
			return nil, true, apperror.PreconditionFailed("payment was already captured for a different order")
		}
		return current, true, nil

	case models.EventExpire:
		return current, tx.Status == models.TransactionStatusExpired, nil

	case models.EventCancel:
		return current, tx.Status == models.TransactionStatusCancelled, nil

	case models.EventAutoComplete:
		return current, tx.Status == models.TransactionStatusCompleted, nil

	case models.EventGeneratePickup:
		if tx.Status != models.TransactionStatusPaid {
			return nil, false, nil
		}
		pickup, err := uc.repo.GetPickup(ctx, tx.ID)
		if errors.Is(err, escrow.ErrNotFound) {
			return nil, false, nil
		}
		if err != nil {
			return nil, true, apperror.Internal("failed to load pickup", err)
		}
		current.Pickup = pickup
		return current, true, nil

	case models.EventConfirmPickup:
		if tx.Status != models.TransactionStatusCompleted {
			return nil, false, nil
		}
		pickup, err := uc.repo.GetPickup(ctx, tx.ID)
		if errors.Is(err, escrow.ErrNotFound) {
			return nil, false, nil
		}
		if err != nil {
			return nil, true, apperror.Internal("failed to load pickup", err)
		}
		if pickup.Status != models.PickupStatusConfirmed {
			// completed by the sweep, not by a handoff
			return nil, false, nil
		}
		if !pickupcode.Equal(pickup.Code, payload.PickupCode) {
			return nil, true, apperror.PreconditionFailed("pickup code does not match")
		}
		current.Pickup = pickup
		return current, true, nil

	case models.EventOpenDispute:
		if tx.Status == models.TransactionStatusDisputed {
			return nil, true, apperror.PreconditionFailed("dispute already open")
		}
		return nil, false, nil

	case models.EventResolveDispute, models.EventRejectDispute:
		target := transitionTable[event].to
		if tx.Status != target {
			return nil, false, nil
		}
		dispute, err := uc.repo.GetDisputeByTransactionID(ctx, tx.ID)
		if err != nil {
			if errors.Is(err, escrow.ErrNotFound) {
				return nil, false, nil
			}
			return nil, true, apperror.Internal("failed to load dispute", err)
		}
		resolution := utils.SanitizeString(payload.Resolution)
		if dispute.Resolution == nil || *dispute.Resolution != resolution {
			return nil, true, apperror.PreconditionFailed("dispute was already closed with a different resolution")
		}
		current.Dispute = dispute
		return current, true, nil
	}

	return nil, false, nil
}

// buildTransition evaluates the event guards and prepares the write.
// Nothing is persisted here.
func (uc *EscrowUC) buildTransition(ctx context.Context, tx *models.Transaction, rule transitionRule, event models.Event, actor models.Actor, payload models.EventPayload) (models.Transition, error) {
	now := uc.now()
	t := models.Transition{
		TransactionID: tx.ID,
		From:          tx.Status,
		To:            rule.to,
		Event:         event,
		At:            now,
	}

	switch event {
	case models.EventPaymentCaptured:
		if payload.OrderReference == "" || tx.OrderReference == nil || *tx.OrderReference != payload.OrderReference {
			return t, apperror.PreconditionFailed("order reference does not match")
		}
		if payload.Amount != nil && !payload.Amount.Equal(tx.Amount) {
			return t, apperror.PreconditionFailed("captured amount does not match")
		}

	case models.EventExpire:
		deadline := tx.CreatedAt.Add(uc.cfg.Escrow.PaymentWindow)
		if tx.ExpiresAt != nil {
			deadline = *tx.ExpiresAt
		}
		if !now.After(deadline) {
			return t, apperror.PreconditionFailed("payment window has not elapsed")
		}

	case models.EventGeneratePickup:
		code, err := uc.codes.Generate()
		if err != nil {
			return t, apperror.Internal("failed to generate pickup code", err)
		}
		t.CreatePickup = &models.Pickup{
			TransactionID: tx.ID,
			Code:          code,
			Status:        models.PickupStatusGenerated,
			CreatedAt:     now,
		}

	case models.EventConfirmPickup:
		if err := uc.verifyPickupCode(ctx, tx.ID, payload.PickupCode); err != nil {
			return t, err
		}
		t.ConfirmPickup = true

	case models.EventAutoComplete:
		if tx.PaidAt == nil || !now.After(tx.PaidAt.Add(uc.cfg.Escrow.CompletionWindow)) {
			return t, apperror.PreconditionFailed("completion window has not elapsed")
		}
		open, err := uc.repo.HasOpenDispute(ctx, tx.ID)
		if err != nil {
			return t, apperror.Internal("failed to check disputes", err)
		}
		if open {
			return t, apperror.PreconditionFailed("transaction has an open dispute")
		}

	case models.EventOpenDispute:
		subject := utils.SanitizeString(payload.Subject)
		description := utils.SanitizeString(payload.Description)
		if subject == "" || description == "" {
			return t, apperror.PreconditionFailed("dispute subject and description are required")
		}
		if utils.RuneLength(subject) > constants.DisputeSubjectMaxChars {
			return t, apperror.Validation(fmt.Sprintf("subject must be at most %d characters", constants.DisputeSubjectMaxChars))
		}
		if utils.RuneLength(description) > constants.DisputeDescriptionMaxChars {
			return t, apperror.Validation(fmt.Sprintf("description must be at most %d characters", constants.DisputeDescriptionMaxChars))
		}
		t.CreateDispute = &models.Dispute{
			ID:            uuid.New(),
			TransactionID: tx.ID,
			ReporterID:    actor.ID,
			Subject:       subject,
			Description:   description,
			Status:        models.DisputeStatusOpen,
			CreatedAt:     now,
			UpdatedAt:     now,
		}

	case models.EventResolveDispute, models.EventRejectDispute:
		resolution := utils.SanitizeString(payload.Resolution)
		if err := uc.checkResolution(resolution); err != nil {
			return t, err
		}
		dispute, err := uc.repo.GetDisputeByTransactionID(ctx, tx.ID)
		if err != nil {
			if errors.Is(err, escrow.ErrNotFound) {
				return t, apperror.PreconditionFailed("transaction has no open dispute")
			}
			return t, apperror.Internal("failed to load dispute", err)
		}
		if dispute.Status != models.DisputeStatusOpen ||
			(payload.DisputeID != uuid.Nil && payload.DisputeID != dispute.ID) {
			return t, apperror.PreconditionFailed("transaction has no matching open dispute")
		}
		status := models.DisputeStatusResolved
		if event == models.EventRejectDispute {
			status = models.DisputeStatusRejected
		}
		t.CloseDispute = &models.DisputeClosure{
			DisputeID:  dispute.ID,
			Status:     status,
			Resolution: resolution,
			ResolvedBy: actor.ID,
		}
	}

	return t, nil
}

// verifyPickupCode checks the presented code against the stored one. Every
// try spends one attempt up front; a confirmation resets the budget.
func (uc *EscrowUC) verifyPickupCode(ctx context.Context, txID uuid.UUID, code string) error {
	if !pickupcode.Valid(code) {
		return apperror.Validation(fmt.Sprintf("pickup code must be %d characters", pickupcode.Length))
	}

	left := -1
	if uc.attempts != nil {
		n, err := uc.attempts.Take(ctx, txID)
		switch {
		case errors.Is(err, escrow.ErrAttemptsExhausted):
			return apperror.TooManyAttempts("too many wrong pickup codes, try again later")
		case err != nil:
			logger.WarnCtx(ctx, "Pickup attempt limiter unavailable, allowing attempt",
				logger.TransactionID(txID),
				logger.Err(err))
		default:
			left = n
		}
	}

	pickup, err := uc.repo.GetPickup(ctx, txID)
	if err != nil {
		if errors.Is(err, escrow.ErrNotFound) {
			return apperror.PreconditionFailed("pickup code has not been generated")
		}
		return apperror.Internal("failed to load pickup", err)
	}
	if pickup.Status != models.PickupStatusGenerated {
		return apperror.PreconditionFailed("pickup was already confirmed")
	}

	if !pickupcode.Equal(pickup.Code, code) {
		logger.InfoCtx(ctx, "Wrong pickup code presented",
			logger.TransactionID(txID),
			logger.Int("attempts_left", left))
		return apperror.PreconditionFailed("pickup code does not match")
	}

	return nil
}

// resolveConflict explains a lost compare-on-status write by re-reading the
// row once. The loser sees either an idempotent no-op or InvalidTransition.
func (uc *EscrowUC) resolveConflict(ctx context.Context, t models.Transition, actor models.Actor, payload models.EventPayload, cause error) (*models.TransitionResult, bool, error) {
	fresh, err := uc.loadTransaction(ctx, t.TransactionID)
	if err != nil {
		return nil, false, err
	}

	logger.InfoCtx(ctx, "Transition lost a concurrent update",
		logger.TransactionID(t.TransactionID),
		logger.Event(t.Event),
		logger.String("expected", string(t.From)),
		logger.String("actual", string(fresh.Status)))

	if fresh.Status == t.From {
		return nil, false, apperror.PersistenceConflict(cause)
	}

	if result, satisfied, err := uc.checkSatisfied(ctx, fresh, t.Event, payload); satisfied || err != nil {
		return result, false, err
	}

	return nil, false, apperror.InvalidTransition(string(fresh.Status), string(t.Event))
}

// afterTransition logs and announces a committed change
func (uc *EscrowUC) afterTransition(ctx context.Context, t models.Transition, result *models.TransitionResult, actor models.Actor) {
	if t.ConfirmPickup && uc.attempts != nil {
		if err := uc.attempts.Reset(ctx, t.TransactionID); err != nil {
			logger.WarnCtx(ctx, "Failed to reset pickup attempts",
				logger.TransactionID(t.TransactionID),
				logger.Err(err))
		}
	}

	logger.InfoCtx(ctx, "Transaction transitioned",
		logger.TransactionID(t.TransactionID),
		logger.Event(t.Event),
		logger.String("from", string(t.From)),
		logger.String("to", string(t.To)),
		logger.String("actor_role", string(actor.Role)))

	if t.CloseDispute != nil && result.Dispute != nil {
		uc.recordAdminAction(ctx, result.Dispute, actor, t.Event, t.CloseDispute.Resolution)
		uc.publishDisputeResolved(ctx, result.Dispute, actor)
	}

	if uc.publisher == nil {
		return
	}
	event := models.TransactionStatusChangedEvent{
		TransactionID:  t.TransactionID,
		PreviousStatus: t.From,
		Status:         result.Transaction.Status,
		Event:          t.Event,
		ActorID:        actor.ID,
		ActorRole:      actor.Role,
		OccurredAt:     t.At,
	}
	if err := uc.publisher.PublishStatusChanged(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Status change not published",
			logger.TransactionID(t.TransactionID),
			logger.Err(err))
	}
}

func (uc *EscrowUC) loadTransaction(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	tx, err := uc.repo.GetTransactionByID(ctx, id)
	if err != nil {
		if errors.Is(err, escrow.ErrNotFound) {
			return nil, apperror.NotFound("transaction", err)
		}
		return nil, apperror.Internal("failed to load transaction", err)
	}
	return tx, nil
}

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
	"github.com/piresc/escrow/internal/utils"
	"github.com/piresc/escrow/services/escrow"
)

// OpenDispute escalates a paid or completed transaction
func (uc *EscrowUC) OpenDispute(ctx context.Context, id uuid.UUID, reporter models.Actor, subject, description string) (*models.Dispute, error) {
	result, _, err := uc.apply(ctx, id, models.EventOpenDispute, reporter, models.EventPayload{
		Subject:     subject,
		Description: description,
	})
	if err != nil {
		return nil, err
	}
	return result.Dispute, nil
}

// GetDispute returns a dispute to a party of its transaction or an admin
func (uc *EscrowUC) GetDispute(ctx context.Context, id uuid.UUID, actor models.Actor) (*models.Dispute, error) {
	dispute, err := uc.loadDispute(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.IsAdmin() {
		return dispute, nil
	}

	tx, err := uc.loadTransaction(ctx, dispute.TransactionID)
	if err != nil {
		return nil, err
	}
	if !canView(tx, actor) {
		return nil, apperror.Forbidden("not a party to this transaction")
	}
	return dispute, nil
}

// ResolveDispute closes an open dispute on behalf of an admin and moves the
// transaction to the matching terminal status. The audit entry is written
// after the transition commits; losing it does not undo the decision.
func (uc *EscrowUC) ResolveDispute(ctx context.Context, disputeID uuid.UUID, admin models.Actor, action models.DisputeStatus, resolution string) (*models.Dispute, error) {
	if !admin.IsAdmin() {
		return nil, apperror.Forbidden("only an admin may resolve disputes")
	}

	resolution = utils.SanitizeString(resolution)
	if err := uc.checkResolution(resolution); err != nil {
		return nil, err
	}

	var event models.Event
	switch action {
	case models.DisputeStatusResolved:
		event = models.EventResolveDispute
	case models.DisputeStatusRejected:
		event = models.EventRejectDispute
	default:
		return nil, apperror.Validation("action must be RESOLVED or REJECTED")
	}

	dispute, err := uc.loadDispute(ctx, disputeID)
	if err != nil {
		return nil, err
	}
	if dispute.Status.IsTerminal() && dispute.Status != action {
		return nil, apperror.InvalidTransition(string(dispute.Status), string(event))
	}

	result, _, err := uc.apply(ctx, dispute.TransactionID, event, admin, models.EventPayload{
		Resolution: resolution,
		DisputeID:  dispute.ID,
	})
	if err != nil {
		return nil, err
	}
	return result.Dispute, nil
}

// ListAdminActions returns the audit trail of a dispute
func (uc *EscrowUC) ListAdminActions(ctx context.Context, disputeID uuid.UUID, admin models.Actor) ([]*models.AdminAction, error) {
	if !admin.IsAdmin() {
		return nil, apperror.Forbidden("only an admin may read the audit trail")
	}
	if _, err := uc.loadDispute(ctx, disputeID); err != nil {
		return nil, err
	}

	actions, err := uc.repo.ListAdminActions(ctx, disputeID)
	if err != nil {
		return nil, apperror.Internal("failed to list admin actions", err)
	}
	return actions, nil
}

// recordAdminAction appends the audit entry with retries and only logs
// when it cannot be written
func (uc *EscrowUC) recordAdminAction(ctx context.Context, dispute *models.Dispute, admin models.Actor, event models.Event, note string) {
	name := constants.AdminActionResolveDispute
	if event == models.EventRejectDispute {
		name = constants.AdminActionRejectDispute
	}
	action := &models.AdminAction{
		ID:        uuid.New(),
		DisputeID: dispute.ID,
		AdminID:   admin.ID,
		Action:    name,
		Note:      note,
		CreatedAt: uc.now(),
	}

	err := uc.retrier.Execute(ctx, func(ctx context.Context) error {
		return uc.repo.CreateAdminAction(ctx, action)
	})
	if err != nil {
		logger.ErrorCtx(ctx, "Admin action not recorded, audit trail incomplete",
			logger.DisputeID(dispute.ID),
			logger.String("admin_id", admin.ID.String()),
			logger.String("action", name),
			logger.Err(err))
	}
}

// checkResolution bounds the admin's resolution text by its rune length
func (uc *EscrowUC) checkResolution(resolution string) error {
	minChars, maxChars := uc.cfg.Escrow.ResolutionMinChars, uc.cfg.Escrow.ResolutionMaxChars
	if n := utils.RuneLength(resolution); n < minChars || n > maxChars {
		return apperror.Validation(fmt.Sprintf("resolution must be between %d and %d characters", minChars, maxChars))
	}
	return nil
}

func (uc *EscrowUC) publishDisputeResolved(ctx context.Context, dispute *models.Dispute, admin models.Actor) {
	if uc.publisher == nil {
		return
	}
	resolvedAt := uc.now()
	if dispute.ResolvedAt != nil {
		resolvedAt = *dispute.ResolvedAt
	}
	err := uc.publisher.PublishDisputeResolved(ctx, models.DisputeResolvedEvent{
		DisputeID:     dispute.ID,
		TransactionID: dispute.TransactionID,
		Status:        dispute.Status,
		AdminID:       admin.ID,
		ResolvedAt:    resolvedAt,
	})
	if err != nil {
		logger.WarnCtx(ctx, "Dispute resolution not published",
			logger.DisputeID(dispute.ID),
			logger.Err(err))
	}
}

func (uc *EscrowUC) loadDispute(ctx context.Context, id uuid.UUID) (*models.Dispute, error) {
	dispute, err := uc.repo.GetDisputeByID(ctx, id)
	if err != nil {
		if errors.Is(err, escrow.ErrNotFound) {
			return nil, apperror.NotFound("dispute", err)
		}
		return nil, apperror.Internal("failed to load dispute", err)
	}
	return dispute, nil
}

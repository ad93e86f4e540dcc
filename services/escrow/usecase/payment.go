package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/piresc/escrow/internal/pkg/apperror"
	"github.com/piresc/escrow/internal/pkg/logger"
	"github.com/piresc/escrow/internal/pkg/models"
	"github.com/piresc/escrow/services/escrow"
)

const eventInitiatePayment = "INITIATE_PAYMENT"

// InitiatePayment opens a gateway order for an INITIATED transaction. The
// transaction id is the idempotency key, so repeating the call never opens
// a second order.
func (uc *EscrowUC) InitiatePayment(ctx context.Context, id uuid.UUID, actor models.Actor) (*models.PaymentInitiation, error) {
	tx, err := uc.loadTransaction(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireBuyer(tx, actor); err != nil {
		return nil, err
	}
	if tx.Status != models.TransactionStatusInitiated {
		return nil, apperror.InvalidTransition(string(tx.Status), eventInitiatePayment)
	}
	if tx.OrderReference != nil {
		return &models.PaymentInitiation{
			Transaction: tx,
			Order:       models.PaymentOrder{OrderReference: *tx.OrderReference},
		}, nil
	}

	order, err := uc.payment.CreateOrder(ctx, models.PaymentOrderRequest{
		Amount:         tx.Amount,
		Currency:       tx.Currency,
		IdempotencyKey: tx.ID.String(),
	})
	if err != nil {
		logger.WarnCtx(ctx, "Payment order not created",
			logger.TransactionID(tx.ID),
			logger.String("code", apperror.CodeOf(err)),
			logger.Err(err))
		return nil, err
	}

	err = uc.repo.SetOrderReference(ctx, tx.ID, order.OrderReference)
	if err != nil {
		if !errors.Is(err, escrow.ErrStatusConflict) {
			return nil, apperror.Internal("failed to store order reference", err)
		}
		fresh, loadErr := uc.loadTransaction(ctx, tx.ID)
		if loadErr != nil {
			return nil, loadErr
		}
		if fresh.OrderReference == nil || *fresh.OrderReference != order.OrderReference {
			if fresh.Status != models.TransactionStatusInitiated {
				return nil, apperror.InvalidTransition(string(fresh.Status), eventInitiatePayment)
			}
			return nil, apperror.PersistenceConflict(err)
		}
		tx = fresh
	} else {
		ref := order.OrderReference
		tx.OrderReference = &ref
	}

	logger.InfoCtx(ctx, "Payment order opened",
		logger.TransactionID(tx.ID),
		logger.String("order_reference", order.OrderReference))

	return &models.PaymentInitiation{Transaction: tx, Order: *order}, nil
}

// HandlePaymentNotification applies a gateway callback. Only capture
// statuses move the transaction; anything else is acknowledged and left to
// the expiry sweep.
func (uc *EscrowUC) HandlePaymentNotification(ctx context.Context, n models.PaymentNotification) (*models.Transaction, error) {
	id, err := uuid.Parse(n.ReferenceID)
	if err != nil {
		return nil, apperror.Validation("reference_id must be a transaction id")
	}

	if !n.IsCaptured() {
		logger.InfoCtx(ctx, "Ignoring non-capture payment notification",
			logger.TransactionID(id),
			logger.String("payment_status", n.Status))
		return uc.loadTransaction(ctx, id)
	}

	payload := models.EventPayload{
		OrderReference: n.OrderReference,
		Amount:         n.GrossAmount,
	}

	return uc.ApplyEvent(ctx, id, models.EventPaymentCaptured, models.SystemActor, payload)
}

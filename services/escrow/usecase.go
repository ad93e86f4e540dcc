package escrow

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/escrow/internal/pkg/models"
)

// EscrowUC defines the escrow business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/escrow/services/escrow EscrowUC
type EscrowUC interface {
	CreateTransaction(ctx context.Context, buyer models.Actor, req models.CreateTransactionRequest) (*models.Transaction, error)
	GetTransaction(ctx context.Context, id uuid.UUID, actor models.Actor) (*models.Transaction, error)
	ApplyEvent(ctx context.Context, id uuid.UUID, event models.Event, actor models.Actor, payload models.EventPayload) (*models.Transaction, error)
	CancelTransaction(ctx context.Context, id uuid.UUID, actor models.Actor) (*models.Transaction, error)

	InitiatePayment(ctx context.Context, id uuid.UUID, actor models.Actor) (*models.PaymentInitiation, error)
	HandlePaymentNotification(ctx context.Context, notification models.PaymentNotification) (*models.Transaction, error)

	GeneratePickupCode(ctx context.Context, id uuid.UUID, actor models.Actor) (*models.Pickup, error)
	GetPickup(ctx context.Context, id uuid.UUID, actor models.Actor) (*models.Pickup, error)
	ConfirmPickup(ctx context.Context, id uuid.UUID, actor models.Actor, code string) (*models.Transaction, error)

	OpenDispute(ctx context.Context, id uuid.UUID, reporter models.Actor, subject, description string) (*models.Dispute, error)
	GetDispute(ctx context.Context, id uuid.UUID, actor models.Actor) (*models.Dispute, error)
	ResolveDispute(ctx context.Context, disputeID uuid.UUID, admin models.Actor, action models.DisputeStatus, resolution string) (*models.Dispute, error)
	ListAdminActions(ctx context.Context, disputeID uuid.UUID, admin models.Actor) ([]*models.AdminAction, error)

	RunReconciliationSweep(ctx context.Context) (models.SweepResult, error)
}

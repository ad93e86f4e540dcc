package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Event drives a transaction from one status to another
type Event string

const (
	EventPaymentCaptured Event = "PAYMENT_CAPTURED"
	EventExpire          Event = "EXPIRE"
	EventCancel          Event = "CANCEL"
	EventGeneratePickup  Event = "GENERATE_PICKUP"
	EventConfirmPickup   Event = "CONFIRM_PICKUP"
	EventAutoComplete    Event = "AUTO_COMPLETE"
	EventOpenDispute     Event = "OPEN_DISPUTE"
	EventResolveDispute  Event = "RESOLVE_DISPUTE"
	EventRejectDispute   Event = "REJECT_DISPUTE"
)

// EventPayload carries the event-specific inputs checked by transition guards
type EventPayload struct {
	OrderReference string           `json:"order_reference,omitempty"`
	Amount         *decimal.Decimal `json:"amount,omitempty"`
	PickupCode     string           `json:"pickup_code,omitempty"`
	Subject        string           `json:"subject,omitempty"`
	Description    string           `json:"description,omitempty"`
	Resolution     string           `json:"resolution,omitempty"`
	DisputeID      uuid.UUID        `json:"dispute_id,omitempty"`
}

// Transition is a validated status change together with the dependent
// entity write that must land atomically with it.
type Transition struct {
	TransactionID uuid.UUID
	From          TransactionStatus
	To            TransactionStatus
	Event         Event
	At            time.Time

	CreatePickup  *Pickup
	ConfirmPickup bool
	CreateDispute *Dispute
	CloseDispute  *DisputeClosure
}

// DisputeClosure is the terminal write applied to an open dispute
type DisputeClosure struct {
	DisputeID  uuid.UUID
	Status     DisputeStatus
	Resolution string
	ResolvedBy uuid.UUID
}

// TransitionResult is what the store returns after a committed transition
type TransitionResult struct {
	Transaction *Transaction
	Pickup      *Pickup
	Dispute     *Dispute
}

// TransactionStatusChangedEvent is published after every committed change
type TransactionStatusChangedEvent struct {
	TransactionID  uuid.UUID         `json:"transaction_id"`
	PreviousStatus TransactionStatus `json:"previous_status"`
	Status         TransactionStatus `json:"status"`
	Event          Event             `json:"event"`
	ActorID        uuid.UUID         `json:"actor_id"`
	ActorRole      Role              `json:"actor_role"`
	OccurredAt     time.Time         `json:"occurred_at"`
}

// DisputeResolvedEvent is published after an admin closes a dispute
type DisputeResolvedEvent struct {
	DisputeID     uuid.UUID     `json:"dispute_id"`
	TransactionID uuid.UUID     `json:"transaction_id"`
	Status        DisputeStatus `json:"status"`
	AdminID       uuid.UUID     `json:"admin_id"`
	ResolvedAt    time.Time     `json:"resolved_at"`
}

// SweepResult reports a reconciliation run
type SweepResult struct {
	Expired       int `json:"expired"`
	AutoCompleted int `json:"auto_completed"`
	Failed        int `json:"failed"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// PickupStatus tracks the physical handoff proof
type PickupStatus string

const (
	PickupStatusGenerated PickupStatus = "GENERATED"
	PickupStatusConfirmed PickupStatus = "CONFIRMED"
)

// Pickup is the 1:1 handoff record of a paid transaction
type Pickup struct {
	TransactionID uuid.UUID    `json:"transaction_id" db:"transaction_id"`
	Code          string       `json:"pickup_code,omitempty" db:"pickup_code"`
	Status        PickupStatus `json:"status" db:"status"`
	CreatedAt     time.Time    `json:"created_at" db:"created_at"`
	ConfirmedAt   *time.Time   `json:"confirmed_at,omitempty" db:"confirmed_at"`
}

// Redacted returns a copy without the code, for anyone but the buyer
func (p Pickup) Redacted() Pickup {
	p.Code = ""
	return p
}

// ConfirmPickupRequest is the body of POST /transactions/:id/pickup/confirm
type ConfirmPickupRequest struct {
	Code string `json:"code" validate:"required"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// DisputeStatus of an escalation
type DisputeStatus string

const (
	DisputeStatusOpen     DisputeStatus = "OPEN"
	DisputeStatusResolved DisputeStatus = "RESOLVED"
	DisputeStatusRejected DisputeStatus = "REJECTED"
)

func (s DisputeStatus) IsTerminal() bool {
	return s == DisputeStatusResolved || s == DisputeStatusRejected
}

// Dispute is the single escalation allowed per transaction
type Dispute struct {
	ID            uuid.UUID     `json:"id" db:"id"`
	TransactionID uuid.UUID     `json:"transaction_id" db:"transaction_id"`
	ReporterID    uuid.UUID     `json:"reporter_id" db:"reporter_id"`
	Subject       string        `json:"subject" db:"subject"`
	Description   string        `json:"description" db:"description"`
	Status        DisputeStatus `json:"status" db:"status"`
	Resolution    *string       `json:"resolution,omitempty" db:"resolution"`
	ResolvedAt    *time.Time    `json:"resolved_at,omitempty" db:"resolved_at"`
	ResolvedBy    *uuid.UUID    `json:"resolved_by,omitempty" db:"resolved_by"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" db:"updated_at"`
}

// AdminAction is an append-only audit entry for a privileged mutation
type AdminAction struct {
	ID        uuid.UUID `json:"id" db:"id"`
	DisputeID uuid.UUID `json:"dispute_id" db:"dispute_id"`
	AdminID   uuid.UUID `json:"admin_id" db:"admin_id"`
	Action    string    `json:"action" db:"action"`
	Note      string    `json:"note" db:"note"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// OpenDisputeRequest is the body of POST /transactions/:id/disputes
type OpenDisputeRequest struct {
	Subject     string `json:"subject" validate:"required,max=200"`
	Description string `json:"description" validate:"required,max=5000"`
}

// ResolveDisputeRequest is the body of POST /admin/disputes/:id/resolve
type ResolveDisputeRequest struct {
	Action     DisputeStatus `json:"action" validate:"required,oneof=RESOLVED REJECTED"`
	Resolution string        `json:"resolution" validate:"required"`
}

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionStatus is the lifecycle status of an escrow transaction
type TransactionStatus string

const (
	TransactionStatusInitiated TransactionStatus = "INITIATED"
	TransactionStatusPaid      TransactionStatus = "PAID"
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
	TransactionStatusExpired   TransactionStatus = "EXPIRED"
	TransactionStatusCancelled TransactionStatus = "CANCELLED"
	TransactionStatusDisputed  TransactionStatus = "DISPUTED"
	TransactionStatusResolved  TransactionStatus = "RESOLVED"
	TransactionStatusRejected  TransactionStatus = "REJECTED"
)

// IsTerminal reports whether no transition can leave this status
func (s TransactionStatus) IsTerminal() bool {
	switch s {
	case TransactionStatusCompleted, TransactionStatusExpired, TransactionStatusCancelled,
		TransactionStatusResolved, TransactionStatusRejected:
		return true
	}
	return false
}

// Transaction is a purchase whose funds are held until handoff or another
// terminal outcome. Amount is fixed at creation.
type Transaction struct {
	ID             uuid.UUID         `json:"id" db:"id"`
	ListingID      uuid.UUID         `json:"listing_id" db:"listing_id"`
	BuyerID        uuid.UUID         `json:"buyer_id" db:"buyer_id"`
	SellerID       uuid.UUID         `json:"seller_id" db:"seller_id"`
	Amount         decimal.Decimal   `json:"amount" db:"amount"`
	Currency       string            `json:"currency" db:"currency"`
	Status         TransactionStatus `json:"status" db:"status"`
	OrderReference *string           `json:"order_reference,omitempty" db:"order_reference"`
	CreatedAt      time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at" db:"updated_at"`
	PaidAt         *time.Time        `json:"paid_at,omitempty" db:"paid_at"`
	CompletedAt    *time.Time        `json:"completed_at,omitempty" db:"completed_at"`
	ExpiresAt      *time.Time        `json:"expires_at,omitempty" db:"expires_at"`
}

// IsParty reports whether userID is the buyer or the seller
func (t *Transaction) IsParty(userID uuid.UUID) bool {
	return userID == t.BuyerID || userID == t.SellerID
}

// CreateTransactionRequest is the body of POST /transactions
type CreateTransactionRequest struct {
	ListingID uuid.UUID       `json:"listing_id" validate:"required"`
	SellerID  uuid.UUID       `json:"seller_id" validate:"required"`
	Amount    decimal.Decimal `json:"amount" validate:"required"`
}

// ApplyEventRequest is the body of POST /transactions/:id/events
type ApplyEventRequest struct {
	Event   Event        `json:"event" validate:"required"`
	Payload EventPayload `json:"payload"`
}

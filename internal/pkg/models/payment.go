package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentOrderRequest is sent to the payment gateway to open an order
type PaymentOrderRequest struct {
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	IdempotencyKey string          `json:"reference_id"`
}

// PaymentOrder is the gateway's reply; OrderReference is opaque to us
type PaymentOrder struct {
	OrderReference string    `json:"order_id"`
	RedirectURL    string    `json:"redirect_url,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// Gateway notification statuses
const (
	PaymentStatusCapture    = "capture"
	PaymentStatusCaptured   = "captured"
	PaymentStatusSettlement = "settlement"
	PaymentStatusPending    = "pending"
	PaymentStatusExpire     = "expire"
	PaymentStatusCancel     = "cancel"
	PaymentStatusDeny       = "deny"
)

// PaymentNotification is the webhook body sent by the gateway
type PaymentNotification struct {
	OrderReference string          `json:"order_id" validate:"required"`
	ReferenceID    string          `json:"reference_id" validate:"required,uuid"`
	Status         string          `json:"transaction_status" validate:"required"`
	GrossAmount    *decimal.Decimal `json:"gross_amount,omitempty"`
}

// IsCaptured reports whether the notification confirms money was taken
func (n PaymentNotification) IsCaptured() bool {
	switch n.Status {
	case PaymentStatusCapture, PaymentStatusCaptured, PaymentStatusSettlement:
		return true
	}
	return false
}

// PaymentInitiation is returned to the buyer after an order is opened
type PaymentInitiation struct {
	Transaction *Transaction `json:"transaction"`
	Order       PaymentOrder `json:"order"`
}

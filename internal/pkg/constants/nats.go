package constants

// NATS subjects published by the escrow service
const (
	SubjectTransactionStatusChanged = "escrow.transaction.status_changed"
	SubjectDisputeResolved          = "escrow.dispute.resolved"
)

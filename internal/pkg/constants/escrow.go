package constants

// Context keys set by the auth middleware
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
	ContextKeyActor    = "actor"
)

// Admin audit action names
const (
	AdminActionResolveDispute = "RESOLVE_DISPUTE"
	AdminActionRejectDispute  = "REJECT_DISPUTE"
)

// Dispute text limits, matching the column sizes
const (
	DisputeSubjectMaxChars     = 200
	DisputeDescriptionMaxChars = 5000
)

// Circuit breaker names
const (
	BreakerPaymentGateway = "payment-gateway"
)

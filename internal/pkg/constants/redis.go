package constants

// Redis key formats
const (
	// KeyPickupAttempts counts wrong pickup codes per transaction
	KeyPickupAttempts = "escrow:pickup_attempts:%s"
	// KeyRateLimitConfirm prefixes the per-user confirm route limiter
	KeyRateLimitConfirm = "escrow:rate:pickup_confirm"
)

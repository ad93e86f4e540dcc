package models

import "time"

// Config represents application configuration
type Config struct {
	App            AppConfig
	Server         ServerConfig
	Database       DatabaseConfig
	Redis          RedisConfig
	NATS           NATSConfig
	JWT            JWTConfig
	NewRelic       NewRelicConfig
	Logger         LoggerConfig
	Escrow         EscrowConfig
	PaymentGateway PaymentGatewayConfig
	APIKeys        APIKeyConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// NewRelicConfig contains APM configuration
type NewRelicConfig struct {
	LicenseKey   string
	AppName      string
	Enabled      bool
	LogsEnabled  bool
	LogsEndpoint string
	LogsAPIKey   string
	ForwardLogs  bool
}

// LoggerConfig contains log output configuration
type LoggerConfig struct {
	Level    string
	Format   string
	FilePath string
}

// EscrowConfig holds the lifecycle windows and pickup policy
type EscrowConfig struct {
	Currency           string
	PaymentWindow      time.Duration // INITIATED older than this expires
	CompletionWindow   time.Duration // PAID older than this auto-completes
	SweepInterval      time.Duration
	SweepBatchSize     int
	PickupMaxAttempts  int
	PickupAttemptTTL   time.Duration
	ConfirmRateLimit   int
	ConfirmRatePeriod  time.Duration
	ResolutionMinChars int
	ResolutionMaxChars int
}

// PaymentGatewayConfig holds the external payment processor settings
type PaymentGatewayConfig struct {
	BaseURL          string
	ServerKey        string
	Timeout          time.Duration
	BreakerThreshold uint32
	BreakerReset     time.Duration
}

// APIKeyConfig holds keys for machine callers
type APIKeyConfig struct {
	PaymentWebhook string
	Reconciler     string
}

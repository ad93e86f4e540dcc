package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/piresc/escrow/internal/pkg/logger"
	"github.com/piresc/escrow/internal/pkg/models"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			logger.Warn("error loading config from file",
				logger.String("path", configPath),
				logger.Err(err))
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "escrow")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 8080)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "pgx")
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 60)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "")

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.LogsEnabled = GetEnvAsBool("NEW_RELIC_LOGS_ENABLED", false)
	configs.NewRelic.LogsEndpoint = GetEnv("NEW_RELIC_LOGS_ENDPOINT", "")
	configs.NewRelic.LogsAPIKey = GetEnv("NEW_RELIC_LOGS_API_KEY", "")
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.Format = GetEnv("LOG_FORMAT", "json")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	// Escrow config
	configs.Escrow.Currency = GetEnv("ESCROW_CURRENCY", "IDR")
	configs.Escrow.PaymentWindow = GetEnvAsDuration("ESCROW_PAYMENT_WINDOW", 24*time.Hour)
	configs.Escrow.CompletionWindow = GetEnvAsDuration("ESCROW_COMPLETION_WINDOW", 72*time.Hour)
	configs.Escrow.SweepInterval = GetEnvAsDuration("ESCROW_SWEEP_INTERVAL", time.Minute)
	configs.Escrow.SweepBatchSize = GetEnvAsInt("ESCROW_SWEEP_BATCH_SIZE", 200)
	configs.Escrow.PickupMaxAttempts = GetEnvAsInt("PICKUP_MAX_ATTEMPTS", 5)
	configs.Escrow.PickupAttemptTTL = GetEnvAsDuration("PICKUP_ATTEMPT_WINDOW", 15*time.Minute)
	configs.Escrow.ConfirmRateLimit = GetEnvAsInt("PICKUP_CONFIRM_RATE_LIMIT", 20)
	configs.Escrow.ConfirmRatePeriod = GetEnvAsDuration("PICKUP_CONFIRM_RATE_PERIOD", time.Minute)
	configs.Escrow.ResolutionMinChars = GetEnvAsInt("DISPUTE_RESOLUTION_MIN_CHARS", 10)
	configs.Escrow.ResolutionMaxChars = GetEnvAsInt("DISPUTE_RESOLUTION_MAX_CHARS", 1000)

	// Payment gateway config
	configs.PaymentGateway.BaseURL = GetEnv("PAYMENT_GATEWAY_URL", "")
	configs.PaymentGateway.ServerKey = GetEnv("PAYMENT_GATEWAY_SERVER_KEY", "")
	configs.PaymentGateway.Timeout = GetEnvAsDuration("PAYMENT_GATEWAY_TIMEOUT", 10*time.Second)
	configs.PaymentGateway.BreakerThreshold = uint32(GetEnvAsInt("PAYMENT_BREAKER_THRESHOLD", 5))
	configs.PaymentGateway.BreakerReset = GetEnvAsDuration("PAYMENT_BREAKER_RESET_TIMEOUT", 30*time.Second)

	// Machine caller keys
	configs.APIKeys.PaymentWebhook = GetEnv("PAYMENT_WEBHOOK_API_KEY", "")
	configs.APIKeys.Reconciler = GetEnv("RECONCILER_API_KEY", "")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		logger.Warn("Invalid integer value, using default",
			logger.String("key", key),
			logger.Int("default", defaultValue))
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		logger.Warn("Invalid boolean value, using default",
			logger.String("key", key),
			logger.Bool("default", defaultValue))
		return defaultValue
	}

	return value
}

// GetEnvAsDuration parses values like "90s" or "24h"
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil || value < 0 {
		logger.Warn("Invalid duration value, using default",
			logger.String("key", key),
			logger.Duration("default", defaultValue))
		return defaultValue
	}

	return value
}

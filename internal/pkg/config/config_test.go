package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_STR", "value")
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_BAD_INT", "forty-two")
	t.Setenv("TEST_BOOL", "true")
	t.Setenv("TEST_DURATION", "90s")
	t.Setenv("TEST_NEG_DURATION", "-1s")

	assert.Equal(t, "value", GetEnv("TEST_STR", "default"))
	assert.Equal(t, "default", GetEnv("TEST_MISSING", "default"))
	assert.Equal(t, 42, GetEnvAsInt("TEST_INT", 1))
	assert.Equal(t, 1, GetEnvAsInt("TEST_BAD_INT", 1))
	assert.True(t, GetEnvAsBool("TEST_BOOL", false))
	assert.Equal(t, 90*time.Second, GetEnvAsDuration("TEST_DURATION", time.Minute))
	assert.Equal(t, time.Minute, GetEnvAsDuration("TEST_NEG_DURATION", time.Minute))
	assert.Equal(t, time.Minute, GetEnvAsDuration("TEST_MISSING", time.Minute))
}

func TestInitConfig_EscrowDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	cfg := InitConfig("")

	assert.Equal(t, "IDR", cfg.Escrow.Currency)
	assert.Equal(t, 24*time.Hour, cfg.Escrow.PaymentWindow)
	assert.Equal(t, 72*time.Hour, cfg.Escrow.CompletionWindow)
	assert.Equal(t, 5, cfg.Escrow.PickupMaxAttempts)
	assert.Equal(t, 10, cfg.Escrow.ResolutionMinChars)
	assert.Equal(t, 1000, cfg.Escrow.ResolutionMaxChars)
	assert.Equal(t, uint32(5), cfg.PaymentGateway.BreakerThreshold)
	assert.Equal(t, 30*time.Second, cfg.PaymentGateway.BreakerReset)
}

func TestInitConfig_LoadsDotEnvLocally(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("ESCROW_PAYMENT_WINDOW=2h\nPAYMENT_GATEWAY_URL=http://gateway.local\n"), 0o600))

	t.Setenv("APP_ENV", "local")
	// godotenv does not override variables that already exist
	t.Setenv("ESCROW_PAYMENT_WINDOW", "")
	os.Unsetenv("ESCROW_PAYMENT_WINDOW")
	t.Setenv("PAYMENT_GATEWAY_URL", "")
	os.Unsetenv("PAYMENT_GATEWAY_URL")

	cfg := InitConfig(path)

	assert.Equal(t, 2*time.Hour, cfg.Escrow.PaymentWindow)
	assert.Equal(t, "http://gateway.local", cfg.PaymentGateway.BaseURL)
}

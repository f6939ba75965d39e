package config_test

import (
	"testing"

	"github.com/abrarahmad1510/ChainAudit-LLMs/pkg/config"
	"github.com/stretchr/testify/assert"
)

// TestLoad_Defaults verifies that Load() returns sensible defaults when
// no environment variables are set.
func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_ADDR", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("EVENT_BUS_BROKERS", "")
	t.Setenv("EVENT_BUS_TOPIC", "")
	t.Setenv("LOG_SERVER_ADDR", "")
	t.Setenv("LOG_LOG_ID", "")
	t.Setenv("SIGNER_FULCIO_URL", "")
	t.Setenv("SIGNER_REKOR_URL", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := config.Load()

	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Contains(t, cfg.DatabaseURL, "localhost")
	assert.Equal(t, "localhost:6379", cfg.EventBusBrokers)
	assert.Equal(t, "receipts", cfg.EventBusTopic)
	assert.Equal(t, "localhost:50051", cfg.LogServerAddr)
	assert.Empty(t, cfg.LogID)
	assert.Empty(t, cfg.SignerFulcioURL)
	assert.Empty(t, cfg.SignerRekorURL)
	assert.Equal(t, "INFO", cfg.LogLevel)
}

// TestLoad_Overrides verifies that environment variables correctly
// override default values.
func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":9090")
	t.Setenv("DATABASE_URL", "postgres://production:5432/db")
	t.Setenv("EVENT_BUS_BROKERS", "redis-1:6379,redis-2:6379")
	t.Setenv("EVENT_BUS_TOPIC", "audit-receipts")
	t.Setenv("LOG_SERVER_ADDR", "log.internal:50051")
	t.Setenv("LOG_LOG_ID", "tree-7")
	t.Setenv("SIGNER_FULCIO_URL", "https://fulcio.example")
	t.Setenv("SIGNER_REKOR_URL", "https://rekor.example")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg := config.Load()

	assert.Equal(t, ":9090", cfg.ServerAddr)
	assert.Equal(t, "postgres://production:5432/db", cfg.DatabaseURL)
	assert.Equal(t, "redis-1:6379,redis-2:6379", cfg.EventBusBrokers)
	assert.Equal(t, "audit-receipts", cfg.EventBusTopic)
	assert.Equal(t, "log.internal:50051", cfg.LogServerAddr)
	assert.Equal(t, "tree-7", cfg.LogID)
	assert.Equal(t, "https://fulcio.example", cfg.SignerFulcioURL)
	assert.Equal(t, "https://rekor.example", cfg.SignerRekorURL)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
}

// Package config loads the hierarchical configuration document spec.md
// §6 enumerates, following the teacher's os.Getenv-with-defaults style.
package config

import "os"

// Config holds process configuration for cmd/auditor.
type Config struct {
	ServerAddr string

	DatabaseURL string

	EventBusBrokers string
	EventBusTopic   string

	LogServerAddr string
	LogID         string

	// SignerFulcioURL and SignerRekorURL are reserved fields: parsed but
	// unused by the current signer, which generates its own ephemeral
	// key (spec.md §6, §9 Open Question 3).
	SignerFulcioURL string
	SignerRekorURL  string

	LogLevel string
}

// Load loads configuration from environment variables.
func Load() *Config {
	serverAddr := os.Getenv("SERVER_ADDR")
	if serverAddr == "" {
		serverAddr = ":8080"
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		dbURL = "postgres://auditor@localhost:5432/auditor?sslmode=disable"
	}

	eventBusBrokers := os.Getenv("EVENT_BUS_BROKERS")
	if eventBusBrokers == "" {
		eventBusBrokers = "localhost:6379"
	}

	eventBusTopic := os.Getenv("EVENT_BUS_TOPIC")
	if eventBusTopic == "" {
		eventBusTopic = "receipts"
	}

	logServerAddr := os.Getenv("LOG_SERVER_ADDR")
	if logServerAddr == "" {
		logServerAddr = "localhost:50051"
	}

	logID := os.Getenv("LOG_LOG_ID")

	signerFulcioURL := os.Getenv("SIGNER_FULCIO_URL")
	signerRekorURL := os.Getenv("SIGNER_REKOR_URL")

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "INFO"
	}

	return &Config{
		ServerAddr:      serverAddr,
		DatabaseURL:     dbURL,
		EventBusBrokers: eventBusBrokers,
		EventBusTopic:   eventBusTopic,
		LogServerAddr:   logServerAddr,
		LogID:           logID,
		SignerFulcioURL: signerFulcioURL,
		SignerRekorURL:  signerRekorURL,
		LogLevel:        logLevel,
	}
}

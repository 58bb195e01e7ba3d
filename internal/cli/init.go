// Package cli provides common process initialization: logging, env
// loading, config validation, and storage selection.
package cli

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"hisaab/internal/config"
	"hisaab/internal/core"
	"hisaab/internal/storage"
)

// SetupLogger initializes structured logging with default settings.
// Returns the configured logger and sets it as the default logger.
func SetupLogger() *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *slog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

// OpenStorage opens the configured gateway backend.
// Returns the gateway and its cleanup, or exits the process on failure.
func OpenStorage(logger *slog.Logger, cfg *config.Config) (storage.Gateway, func() error) {
	gw, cleanup, err := storage.Open(cfg.DataBackend, cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to open storage backend", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	logger.Info("Storage backend ready", "backend", cfg.DataBackend)
	return gw, cleanup
}

// DefaultPreferences builds the preference defaults from validated
// configuration.
func DefaultPreferences(cfg *config.Config) core.Preferences {
	rate, err := decimal.NewFromString(cfg.DefaultRate)
	if err != nil {
		rate = decimal.Zero
	}
	return core.Preferences{
		Language:    cfg.DefaultLanguage,
		Theme:       cfg.DefaultTheme,
		DefaultRate: rate,
	}
}

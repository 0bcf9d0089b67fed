// Package cli provides common initialization for the ledger binaries.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"

	"tradeledger/internal/config"
	applog "tradeledger/internal/log"
)

// LoadEnvFile loads the .env file for local development. Errors are
// ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger initializes structured logging at the given level and
// installs it as the default logger.
func SetupLogger(level slog.Level) *applog.Logger {
	logger := applog.New(applog.Config{
		Level:     level,
		Component: applog.ComponentApp,
	})
	applog.SetDefault(logger)
	return logger
}

// LoadConfig loads and validates configuration. The returned logger
// level matches the configured one.
func LoadConfig(configPath string) (*config.Config, slog.Level, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, 0, fmt.Errorf("load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, 0, err
	}
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, 0, err
	}
	return cfg, level, nil
}

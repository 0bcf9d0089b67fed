package cli

import (
	"log/slog"
	"testing"
)

func TestSetupLogger(t *testing.T) {
	logger := SetupLogger(slog.LevelWarn)
	if logger == nil {
		t.Fatal("SetupLogger should return a logger")
	}
	if logger.Component() != "app" {
		t.Fatalf("unexpected component: %q", logger.Component())
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("TRADELEDGER_LOG_LEVEL", "debug")
	cfg, level, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.DataFile == "" {
		t.Fatal("expected a default data file")
	}
	if level != slog.LevelDebug {
		t.Fatalf("expected debug level, got %v", level)
	}
}

func TestLoadConfigInvalidLevel(t *testing.T) {
	t.Setenv("TRADELEDGER_LOG_LEVEL", "loud")
	if _, _, err := LoadConfig(""); err == nil {
		t.Fatal("expected error for invalid log level")
	}
}

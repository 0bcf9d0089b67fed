// Package config loads runtime settings from the environment and an
// optional TOML file.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the runtime settings for the ledger binaries.
type Config struct {
	// DataFile is the delimited transaction dataset loaded at startup.
	DataFile string `mapstructure:"data_file"`

	// ExportDir is where relative export filenames are written.
	ExportDir string `mapstructure:"export_dir"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
}

// Load reads configuration from an optional TOML file and the
// environment. Environment variables use the TRADELEDGER_ prefix
// (TRADELEDGER_DATA_FILE, TRADELEDGER_EXPORT_DIR, TRADELEDGER_LOG_LEVEL)
// and take precedence over file values.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetDefault("data_file", "Imports_Exports_Dataset.csv")
	v.SetDefault("export_dir", ".")
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("TRADELEDGER")
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration and returns an error naming every
// problem found.
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.DataFile) == "" {
		problems = append(problems, "data file path cannot be empty")
	}
	if strings.TrimSpace(c.ExportDir) == "" {
		problems = append(problems, "export directory cannot be empty")
	}
	if _, err := c.SlogLevel(); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

// SlogLevel maps the configured log level to a slog.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", c.LogLevel)
}

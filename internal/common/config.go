package common

import (
	"os"
	"strconv"
	"time"

	"github.com/shipdesk/shipment-ledger/constants"
)

// Config holds all application configuration
type Config struct {
	Ledger  LedgerConfig
	History HistoryConfig
	Watch   WatchConfig
	Log     LogConfig
}

// LedgerConfig holds settings for the master workbook sink
type LedgerConfig struct {
	Path  string
	Sheet string
}

// HistoryConfig holds settings for the local processing-history store
type HistoryConfig struct {
	Path    string // "none" disables history recording
	Enabled bool
}

// WatchConfig holds settings for the inbox watcher
type WatchConfig struct {
	Debounce    time.Duration
	InitialScan bool
}

// LogConfig holds logging-related configuration
type LogConfig struct {
	Level string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	historyPath := getEnv("HISTORY_DB", "shipments-history.db")
	return &Config{
		Ledger: LedgerConfig{
			Path:  getEnv("LEDGER_PATH", constants.DefaultLedgerPath),
			Sheet: getEnv("LEDGER_SHEET", constants.DefaultSheetName),
		},
		History: HistoryConfig{
			Path:    historyPath,
			Enabled: historyPath != "" && historyPath != "none",
		},
		Watch: WatchConfig{
			Debounce:    getEnvAsDuration("WATCH_DEBOUNCE", 500*time.Millisecond),
			InitialScan: getEnvAsBool("WATCH_INITIAL_SCAN", false),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Ledger.Path == "" {
		return NewAppError("CONFIG_ERROR", "LEDGER_PATH must not be empty", ErrInvalidInput)
	}
	if c.Ledger.Sheet == "" {
		return NewAppError("CONFIG_ERROR", "LEDGER_SHEET must not be empty", ErrInvalidInput)
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Package config loads and validates application configuration from environment variables.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/pkordes/recruittrack/internal/domain"
)

// LogFileStderr as LOG_FILE sends logs to stderr instead of a file.
const LogFileStderr = "-"

// Config holds all configuration values for a RecruitTrack session.
// Values are populated by Load from environment variables.
type Config struct {
	// DatabaseURL is the Postgres connection string. When empty the session
	// keeps the contact list in memory and nothing survives the process.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel slog.Level

	// LogFile is where JSON logs are written. Defaults to "recruittrack.log"
	// because the shell owns stdout. "-" means stderr.
	LogFile string

	// HistoryFile keeps shell history between sessions. Empty disables it.
	HistoryFile string

	// IdentityPolicy decides when two persons count as the same record.
	// Valid values: name, name_contact (default).
	IdentityPolicy string

	// MaxInputLength rejects longer command lines. Defaults to 1024; 0 disables.
	MaxInputLength int

	// AutoMigrate applies pending migrations at startup when a database is
	// configured. Defaults to true.
	AutoMigrate bool
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error naming every variable whose value cannot be used.
func Load() (Config, error) {
	cfg := Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		LogFile:        getEnv("LOG_FILE", "recruittrack.log"),
		HistoryFile:    os.Getenv("HISTORY_FILE"),
		IdentityPolicy: getEnv("IDENTITY_POLICY", domain.PolicyNameContact),
	}

	var invalid []string

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		invalid = append(invalid, "LOG_LEVEL")
	}

	if _, err := domain.IdentityByPolicy(cfg.IdentityPolicy); err != nil {
		invalid = append(invalid, "IDENTITY_POLICY")
	}

	n, err := strconv.Atoi(getEnv("MAX_INPUT_LENGTH", "1024"))
	if err != nil || n < 0 {
		invalid = append(invalid, "MAX_INPUT_LENGTH")
	}
	cfg.MaxInputLength = n

	cfg.AutoMigrate, err = strconv.ParseBool(getEnv("AUTO_MIGRATE", "true"))
	if err != nil {
		invalid = append(invalid, "AUTO_MIGRATE")
	}

	if len(invalid) > 0 {
		return Config{}, errors.Newf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

// Persistent reports whether the session saves to a database.
func (c Config) Persistent() bool {
	return c.DatabaseURL != ""
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Package config loads runtime settings from the environment and opens the
// configured store.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Store drivers.
const (
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreBolt     = "bolt"
)

// Config holds all runtime settings.
type Config struct {
	Store    string
	DB       string // file path, or a DSN for postgres
	Addr     string
	LogLevel string
	TZ       string
	// EmployeeDeleteCompleted lets employees delete their own completed
	// timecards. Managers always can.
	EmployeeDeleteCompleted bool
	// Employee is the default identity for CLI commands.
	Employee string
}

// DefaultConfig returns the settings used when nothing is configured. DB is
// resolved lazily by DBPath so that a missing home directory is only an
// error when the default is needed.
func DefaultConfig() Config {
	return Config{
		Store:    StoreSQLite,
		Addr:     ":8080",
		LogLevel: "info",
	}
}

// LoadConfig reads TIMECARD_* environment variables over the defaults. It
// fails on values that cannot be parsed rather than falling back silently.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("TIMECARD_STORE"); v != "" {
		cfg.Store = strings.ToLower(v)
	}
	if v := os.Getenv("TIMECARD_DB"); v != "" {
		cfg.DB = v
	}
	if v := os.Getenv("TIMECARD_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("TIMECARD_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TIMECARD_TZ"); v != "" {
		cfg.TZ = v
	}
	if v := os.Getenv("TIMECARD_EMPLOYEE_DELETE_COMPLETED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("TIMECARD_EMPLOYEE_DELETE_COMPLETED=%q: want true or false", v)
		}
		cfg.EmployeeDeleteCompleted = b
	}
	if v := os.Getenv("TIMECARD_EMPLOYEE"); v != "" {
		cfg.Employee = v
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail later and less clearly.
func (c Config) Validate() error {
	switch c.Store {
	case StoreSQLite, StoreBolt:
	case StorePostgres:
		if c.DB == "" {
			return fmt.Errorf("TIMECARD_DB must be a DSN when TIMECARD_STORE=postgres")
		}
	default:
		return fmt.Errorf("unknown store %q (want sqlite, postgres or bolt)", c.Store)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// DBPath returns the configured database location, defaulting to a file
// under ~/.timecard named for the store.
func (c Config) DBPath() (string, error) {
	if c.DB != "" {
		return c.DB, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	name := "timecard.db"
	if c.Store == StoreBolt {
		name = "timecard.bolt"
	}
	return filepath.Join(home, ".timecard", name), nil
}

// Location resolves TZ. Empty means the machine's local zone.
func (c Config) Location() (*time.Location, error) {
	if c.TZ == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TZ)
	if err != nil {
		return nil, fmt.Errorf("loading time zone %q: %w", c.TZ, err)
	}
	return loc, nil
}

// ParseLogLevel maps debug, info, warn or error to a slog level.
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("log level must be one of (debug, info, warn, error), received %s", level)
}

package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"taskjournal/internal/domain"
)

// Prefix is the environment variable prefix for all settings
const Prefix = "TASKJOURNAL"

const DefaultDataPath = "~/.local/share/taskjournal"

// Config holds the settings read from TASKJOURNAL_* variables. The store
// directory is resolved separately by DataPath.
type Config struct {
	JournalInfo    bool     `envconfig:"JOURNAL_INFO" default:"true"`
	DateFormat     string   `envconfig:"DATEFORMAT" default:"Y-M-D"`
	DateFormatInfo string   `envconfig:"DATEFORMAT_INFO" default:"Y-M-D H:N:S"`
	DateAttrs      []string `envconfig:"DATE_ATTRS"`
	DurationAttrs  []string `envconfig:"DURATION_ATTRS"`
	LogLevel       string   `envconfig:"LOG_LEVEL" default:"warn"`
}

// Load reads the configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}
	return &cfg, nil
}

// InfoDateFormat returns dateformat.info, falling back to dateformat
func (c *Config) InfoDateFormat() string {
	if c.DateFormatInfo != "" {
		return c.DateFormatInfo
	}
	return c.DateFormat
}

// InfoDisplay returns the presenter for the info view in the given location
func (c *Config) InfoDisplay(loc *time.Location) *domain.Display {
	return domain.NewDisplay(c.InfoDateFormat(), loc, c.DateAttrs, c.DurationAttrs)
}

// DataPath returns the store directory from TASKJOURNAL_DATA,
// falling back to DefaultDataPath.
func DataPath() string {
	if env := os.Getenv(Prefix + "_DATA"); env != "" {
		return env
	}
	return DefaultDataPath
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// Level parses the configured log level, defaulting to warn
func (c *Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return level
}

// NewLogger returns a text logger on stderr at the configured level
func (c *Config) NewLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.Level()}))
}

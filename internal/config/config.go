// Package config holds runtime settings for the recoverpeer portal.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
)

// Config holds runtime settings for the portal binary.
//
// Fields:
//   - DatabasePath: path to the sqlite file backing the record store.
//   - SessionCachePath: path to the JSON file caching the active session.
//   - LogLevel: one of "debug", "info", "warn", "error".
type Config struct {
	DatabasePath     string
	SessionCachePath string
	LogLevel         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "recoverpeer.db"
	c.SessionCachePath = filepath.Join(os.TempDir(), "recoverpeer_session.json")
	c.LogLevel = "info"
}

// SlogLevel maps the configured level string to a slog.Level.
// Unknown values fall back to Info.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

// Package config loads runtime settings for the Blogify CLI.
package config

import "time"

// Config holds runtime settings.
//
// Fields:
//   - BaseURL: root of the backend API; every remote call is relative to it.
//   - RequestTimeout: per-request deadline for API calls.
//   - SessionDSN: sqlite DSN of the local session database.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	SessionDSN     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8080"
	c.RequestTimeout = 10 * time.Second
	c.SessionDSN = "blogify.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

// Package config handles configuration for the careerdesk client, including
// defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the careerdesk CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the portal backend, e.g. "http://localhost:8080".
//   - RequestTimeout: per-request HTTP timeout.
//   - StateDBPath: path of the sqlite database holding client state (the
//     persisted credential).
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	StateDBPath    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 15 * time.Second
	c.StateDBPath = "careerdesk.db"
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

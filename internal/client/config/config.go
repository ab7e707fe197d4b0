package config

import "time"

// Config holds runtime settings for the Rosetta CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend REST API, including the /api prefix.
//   - DatabasePath: SQLite file backing the local cache ("file::memory:?cache=shared" works too).
//   - HistoryLimit: cap on locally cached history records; oldest are evicted first.
//   - RequestTimeout: per-request HTTP timeout.
//
// Units: RequestTimeout is a time.Duration (e.g., 15*time.Second).
type Config struct {
	ServerBaseURL  string
	DatabasePath   string
	HistoryLimit   int
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080/api"
	c.DatabasePath = "rosetta.db"
	c.HistoryLimit = 50
	c.RequestTimeout = 15 * time.Second
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

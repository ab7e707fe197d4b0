// Package config loads runtime configuration for the Rosetta CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-d string   path to the local cache database
//	-l int      maximum number of history records kept locally
//	-t int      request timeout (seconds)
//
// # JSON schema
//
// The JSON loader uses config.Duration for timeouts, so values can be either
// strings like "15s" or integer nanoseconds:
//
//	{
//	  "server_base_url": "http://127.0.0.1:8080/api",
//	  "database_path": "rosetta.db",
//	  "history_limit": 50,
//	  "request_timeout": "15s"
//	}
//
// Primary API
//
//   - type Config                     — holds all client settings
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config

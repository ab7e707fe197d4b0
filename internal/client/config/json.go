package config

import (
	"encoding/json"
	"os"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// Duration so JSON can specify timeouts either as strings like "15s" or as
// integer nanoseconds. After parsing, values are copied into the runtime
// Config (which uses time.Duration).
type JsonConfig struct {
	ServerBaseURL  string   `json:"server_base_url"`
	DatabasePath   string   `json:"database_path"`
	HistoryLimit   int      `json:"history_limit"`
	RequestTimeout Duration `json:"request_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags; when neither is present
// the function returns without touching cfg. Read or unmarshal errors panic
// (caller should recover if desired).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	path := jsonConfigFile()
	if path == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.ServerBaseURL = jc.ServerBaseURL
	cfg.DatabasePath = jc.DatabasePath
	cfg.HistoryLimit = jc.HistoryLimit
	cfg.RequestTimeout = jc.RequestTimeout.Duration
}

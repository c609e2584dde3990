package config

import (
	"encoding/json"
	"os"

	"blogify/internal/flagx"
	"blogify/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the file can spell the timeout either as a string like
// "10s" or as integer nanoseconds.
type JsonConfig struct {
	BaseURL        string         `json:"base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	SessionDSN     string         `json:"session_dsn"`
}

// parseJson overlays cfg with values from the JSON file named by -c/-config.
// Without the flag nothing is loaded. Read or unmarshal errors panic, as a
// named-but-broken config file is a deployment mistake the user must see.
// Empty fields in the file leave the existing value alone.
func parseJson(cfg *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.SessionDSN != "" {
		cfg.SessionDSN = jc.SessionDSN
	}
}

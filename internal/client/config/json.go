package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/stackguard/internal/flagx"
	"github.com/dmitrijs2005/stackguard/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. SubmitDelay
// accepts "500ms" or integer nanoseconds.
type JsonConfig struct {
	DatabasePath string         `json:"database_path"`
	LogLevel     string         `json:"log_level"`
	Lang         string         `json:"lang"`
	SubmitDelay  timex.Duration `json:"submit_delay"`
}

// parseJson overlays cfg with the file named by -c or -config. Keys missing
// from the file keep their current value. Read and decode errors panic.
func parseJson(cfg *Config) {
	path := flagx.ConfigFile(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	jc := JsonConfig{SubmitDelay: timex.Duration{Duration: cfg.SubmitDelay}}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.Lang != "" {
		cfg.Lang = jc.Lang
	}
	cfg.SubmitDelay = jc.SubmitDelay.Duration
}

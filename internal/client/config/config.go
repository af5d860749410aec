package config

import (
	"time"

	"github.com/dmitrijs2005/stackguard/internal/flagx"
)

// Config holds runtime settings for the StackGuard client.
//
// Fields:
//   - DatabasePath: SQLite file that keeps accounts, session and key.
//   - LogLevel: debug, info, warn or error.
//   - Lang: message catalogue language tag.
//   - SubmitDelay: pause before a form submission completes.
type Config struct {
	DatabasePath string
	LogLevel     string
	Lang         string
	SubmitDelay  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "stackguard.db"
	c.LogLevel = "warn"
	c.Lang = "en"
	c.SubmitDelay = 0
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

// FlagNames lists every flag owned by this package, JSON selector included.
// The command tree strips them before parsing its own arguments.
func FlagNames() []string {
	names := append([]string{}, configFlags...)
	return append(names, flagx.ConfigFileFlags...)
}

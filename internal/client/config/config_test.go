package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "stackguard.db", c.DatabasePath)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, "en", c.Lang)
	assert.Equal(t, time.Duration(0), c.SubmitDelay)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"stackguard"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "stackguard.db", cfg.DatabasePath)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfig_FlagsOverrideJSON(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"database_path": "from-json.db",
		"log_level":     "info",
		"submit_delay":  "1s",
	})
	os.Args = []string{"stackguard", "-c", path, "-d", "from-flag.db", "status"}

	cfg := LoadConfig()

	assert.Equal(t, "from-flag.db", cfg.DatabasePath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "en", cfg.Lang)
	assert.Equal(t, time.Second, cfg.SubmitDelay)
}

func TestFlagNames(t *testing.T) {
	assert.ElementsMatch(t, []string{"-d", "-l", "-lang", "-w", "-c", "-config"}, FlagNames())
}

package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd", "-d", "/tmp/s.db", "-l", "debug", "-lang", "de", "-w", "500"},
			expected: &Config{DatabasePath: "/tmp/s.db", LogLevel: "debug", Lang: "de", SubmitDelay: 500 * time.Millisecond}},
		{name: "equals form among subcommand args", args: []string{"cmd", "status", "-d=x.db"},
			expected: &Config{DatabasePath: "x.db"}},
		{name: "unrelated flags ignored", args: []string{"cmd", "--help", "-c", "cfg.json"},
			expected: &Config{}},
		{name: "incorrect delay", args: []string{"cmd", "-w", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(tt.expected, config))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}

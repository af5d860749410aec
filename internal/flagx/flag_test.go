package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		names []string
		want  []string
	}{
		{
			name:  "short flag with separate value",
			args:  []string{"-c", "conf.json", "-d", "my.db"},
			names: []string{"-c", "-config"},
			want:  []string{"-c", "conf.json"},
		},
		{
			name:  "flag with equals",
			args:  []string{"-config=alt.json", "-d", "my.db"},
			names: []string{"-c", "-config"},
			want:  []string{"-config=alt.json"},
		},
		{
			name:  "unknown flags and positionals ignored",
			args:  []string{"-x", "1", "--y=2", "status"},
			names: []string{"-c", "-config"},
			want:  []string{},
		},
		{
			name:  "flag without value at end is kept",
			args:  []string{"-c"},
			names: []string{"-c"},
			want:  []string{"-c"},
		},
		{
			name:  "next dash token is not a value",
			args:  []string{"-c", "-config=alt.json"},
			names: []string{"-c", "-config"},
			want:  []string{"-c", "-config=alt.json"},
		},
		{
			name:  "value that looks like a flag in equals form",
			args:  []string{"-config=--weird.json"},
			names: []string{"-config"},
			want:  []string{"-config=--weird.json"},
		},
		{
			name:  "several names kept in order",
			args:  []string{"-d", "x.db", "reset", "-lang", "de", "-w=250"},
			names: []string{"-d", "-l", "-lang", "-w"},
			want:  []string{"-d", "x.db", "-lang", "de", "-w=250"},
		},
		{
			name:  "empty args",
			args:  []string{},
			names: []string{"-c"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.names))
		})
	}
}

func TestStripArgs(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		names []string
		want  []string
	}{
		{
			name:  "subcommand survives",
			args:  []string{"-d", "x.db", "status"},
			names: []string{"-d"},
			want:  []string{"status"},
		},
		{
			name:  "unknown flags survive",
			args:  []string{"--help", "-l=debug", "version", "-c", "cfg.json"},
			names: []string{"-l", "-c"},
			want:  []string{"--help", "version"},
		},
		{
			name:  "nothing known",
			args:  []string{"reset"},
			names: []string{"-d"},
			want:  []string{"reset"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripArgs(tt.args, tt.names))
		})
	}
}

func TestConfigFile(t *testing.T) {
	t.Run("short -c with value", func(t *testing.T) {
		assert.Equal(t, "/path/short.json", ConfigFile([]string{"-c", "/path/short.json"}))
	})

	t.Run("long -config with value", func(t *testing.T) {
		assert.Equal(t, "/path/long.json", ConfigFile([]string{"-config", "/path/long.json"}))
	})

	t.Run("unknown flags are ignored", func(t *testing.T) {
		assert.Empty(t, ConfigFile([]string{"-x", "1", "-d", "a.db"}))
	})

	t.Run("last wins", func(t *testing.T) {
		assert.Equal(t, "/path/2.json", ConfigFile([]string{"-c", "/path/1.json", "-config", "/path/2.json"}))
	})
}

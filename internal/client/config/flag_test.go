package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "http://api:8080", "-d", "x.db", "-l", "debug", "-e", "out", "-g"},
			expected: &Config{
				ServerURL: "http://api:8080", DatabasePath: "x.db", LogLevel: "debug",
				ExportDir: "out", StaleGuard: true,
			},
		},
		{
			name:     "unknown flags are ignored",
			args:     []string{"-z", "1", "-c", "cfg.json", "-a=http://api"},
			expected: &Config{ServerURL: "http://api"},
		},
		{
			name:        "bad bool",
			args:        []string{"-g=maybe"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withArgs(t, tt.args...)
			cfg := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg) })
				return
			}
			require.NotPanics(t, func() { parseFlags(cfg) })
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}

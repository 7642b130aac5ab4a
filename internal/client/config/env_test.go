package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(EnvPrefix+"_SERVER_URL", "http://env:3")
	t.Setenv(EnvPrefix+"_STALE_GUARD", "true")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "http://env:3", cfg.ServerURL)
	assert.True(t, cfg.StaleGuard)
	assert.Equal(t, "carstorage.db", cfg.DatabasePath, "unset variables keep the current value")
}

func TestParseEnv_DotEnvDoesNotOverrideEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(".env", []byte(
		EnvPrefix+"_EXPORT_DIR=dotenv-dir\n"+EnvPrefix+"_LOG_LEVEL=error\n"), 0o600))
	t.Setenv(EnvPrefix+"_LOG_LEVEL", "debug")
	t.Cleanup(func() { _ = os.Unsetenv(EnvPrefix + "_EXPORT_DIR") })

	cfg := &Config{}
	parseEnv(cfg)

	assert.Equal(t, "dotenv-dir", cfg.ExportDir)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseEnv_BadValuePanics(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(EnvPrefix+"_STALE_GUARD", "sometimes")
	require.Panics(t, func() { parseEnv(&Config{}) })
}

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/carstorage/internal/flagx"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestParseJson_OverlaysNonEmpty(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"server_url":       "http://json:1",
		"stale_guard":      true,
		"s3_bucket":        "snaps",
		"s3_base_endpoint": "http://minio:9000/",
		"s3_access_key":    "ak",
		"s3_secret_key":    "sk",
	})
	withArgs(t, "-config", path)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	want := &Config{
		ServerURL:      "http://json:1",
		DatabasePath:   "carstorage.db",
		LogLevel:       "warn",
		StaleGuard:     true,
		Language:       "en",
		S3Bucket:       "snaps",
		S3Region:       "us-east-1",
		S3BaseEndpoint: "http://minio:9000/",
		S3AccessKey:    "ak",
		S3SecretKey:    "sk",
	}
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestParseJson_FromEnvPath(t *testing.T) {
	path := writeTempJSON(t, map[string]any{"language": "de"})
	t.Setenv(flagx.ConfigEnvName, path)
	withArgs(t)

	cfg := &Config{}
	parseJson(cfg)
	assert.Equal(t, "de", cfg.Language)
}

func TestParseJson_NoFile(t *testing.T) {
	t.Setenv(flagx.ConfigEnvName, "")
	withArgs(t)

	cfg := &Config{}
	require.NotPanics(t, func() { parseJson(cfg) })
	assert.Equal(t, &Config{}, cfg)
}

func TestParseJson_Panics(t *testing.T) {
	withArgs(t, "-c", filepath.Join(t.TempDir(), "missing.json"))
	require.Panics(t, func() { parseJson(&Config{}) })

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))
	withArgs(t, "-c", bad)
	require.Panics(t, func() { parseJson(&Config{}) })
}

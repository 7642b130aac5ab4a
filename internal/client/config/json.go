package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/carstorage/internal/flagx"
)

// JsonConfig is the on-disk form. Empty values leave the default in place.
type JsonConfig struct {
	ServerURL      string `json:"server_url"`
	DatabasePath   string `json:"database_path"`
	LogLevel       string `json:"log_level"`
	ExportDir      string `json:"export_dir"`
	StaleGuard     *bool  `json:"stale_guard"`
	Language       string `json:"language"`
	S3Bucket       string `json:"s3_bucket"`
	S3Region       string `json:"s3_region"`
	S3BaseEndpoint string `json:"s3_base_endpoint"`
	S3AccessKey    string `json:"s3_access_key"`
	S3SecretKey    string `json:"s3_secret_key"`
}

// parseJson overlays cfg with the file named by -c/-config or CONFIG.
// It panics when the file cannot be read or parsed.
func parseJson(cfg *Config) {
	path := flagx.ConfigFile(os.Args[1:])
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

	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cfg.ServerURL, jc.ServerURL)
	set(&cfg.DatabasePath, jc.DatabasePath)
	set(&cfg.LogLevel, jc.LogLevel)
	set(&cfg.ExportDir, jc.ExportDir)
	set(&cfg.Language, jc.Language)
	set(&cfg.S3Bucket, jc.S3Bucket)
	set(&cfg.S3Region, jc.S3Region)
	set(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	set(&cfg.S3AccessKey, jc.S3AccessKey)
	set(&cfg.S3SecretKey, jc.S3SecretKey)
	if jc.StaleGuard != nil {
		cfg.StaleGuard = *jc.StaleGuard
	}
}

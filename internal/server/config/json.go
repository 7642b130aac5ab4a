package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/carstorage/internal/flagx"
	"github.com/dmitrijs2005/carstorage/internal/timex"
)

// JsonConfig is the on-disk form. Durations accept either a string such as
// "12h" or integer nanoseconds. Zero values leave the current setting alone.
type JsonConfig struct {
	EndpointAddr          string         `json:"endpoint_addr"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	ShutdownTimeout       timex.Duration `json:"shutdown_timeout"`
	LogLevel              string         `json:"log_level"`
}

// parseJson loads the file named by -c/-config (or CONFIG) into config.
// If the file cannot be read or contains invalid JSON, the function panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFile(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	if c.ShutdownTimeout.Duration != 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
}

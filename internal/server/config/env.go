package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces the server's environment variables.
const EnvPrefix = "CARSTORAGE_SERVER"

// parseEnv overlays config with CARSTORAGE_SERVER_* variables, loading a
// .env file from the working directory first when there is one.
func parseEnv(config *Config) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}
	if err := envconfig.Process(EnvPrefix, config); err != nil {
		panic(err)
	}
}

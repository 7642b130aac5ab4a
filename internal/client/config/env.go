package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces the environment variables read by parseEnv.
const EnvPrefix = "CARSTORAGE"

// parseEnv overlays cfg with CARSTORAGE_* variables. A .env file in the
// working directory is loaded first; it never overrides variables that are
// already set. Unset variables leave cfg untouched.
func parseEnv(cfg *Config) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		panic(err)
	}
}

package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/carstorage/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string     HTTP bind address (e.g., ":5000")
//	-d string     PostgreSQL DSN
//	-k string     JWT HMAC secret key
//	-t duration   token validity (e.g., "12h")
//	-l string     log level
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-k", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "k", config.SecretKey, "secret key")
	fs.DurationVar(&config.TokenValidityDuration, "t", config.TokenValidityDuration, "token validity duration")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/carstorage/internal/flagx"
)

// parseFlags populates cfg from the flags this package owns; others on the
// command line are ignored.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-l", "-e", "-g"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the car-storage API")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.ExportDir, "e", cfg.ExportDir, "snapshot export directory")
	fs.BoolVar(&cfg.StaleGuard, "g", cfg.StaleGuard, "drop stale list responses")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

// Package config loads runtime configuration for the car-storage CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c / -config or the CONFIG variable.
//  3. Environment variables prefixed with CARSTORAGE_, after loading a .env
//     file from the working directory when one exists.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base URL of the car-storage API
//	-d string   path of the local SQLite database
//	-l string   log level (debug, info, warn, error)
//	-e string   directory for snapshot exports
//	-g          drop list responses older than the newest request
//
// # JSON schema
//
//	{
//	  "server_url": "http://127.0.0.1:5000",
//	  "database_path": "carstorage.db",
//	  "log_level": "warn",
//	  "export_dir": "exports",
//	  "stale_guard": false,
//	  "language": "en",
//	  "s3_bucket": "snapshots",
//	  "s3_region": "us-east-1",
//	  "s3_base_endpoint": "http://127.0.0.1:9000/",
//	  "s3_access_key": "admin",
//	  "s3_secret_key": "secretpassword"
//	}
package config

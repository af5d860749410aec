// Package config loads runtime configuration for the StackGuard client.
//
// Sources and precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-d string    database file path (default "stackguard.db")
//	-l string    log level (default "warn")
//	-lang string message language (default "en")
//	-w int       submit delay in milliseconds (default 0)
//
// # JSON schema
//
//	{
//	  "database_path": "/var/lib/stackguard/state.db",
//	  "log_level": "info",
//	  "lang": "de",
//	  "submit_delay": "500ms"
//	}
//
// Environment variables are not read.
package config

// Package config loads runtime configuration for the mapmark CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-s string   base URL of the backend HTTP endpoint
//	-i int      access token renewal interval (minutes)
//	-p string   path to the local session state database
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "14m" or integer nanoseconds:
//
//	{
//	  "server_url": "http://localhost:5000",
//	  "renewal_interval": "14m",
//	  "state_path": "session.db"
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config

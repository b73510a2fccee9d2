// Package config loads runtime configuration for the cali CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment, after loading an optional .env file from the working
//     directory (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags bound with (*Config).BindFlags, which override
//     earlier values.
//
// Environment variables
//
//	CALI_DATA_DIR    directory holding the data file
//	CALI_BACKEND     json | sqlite
//	CALI_COLOR       auto | always | never
//	CALI_LOG_LEVEL   debug | info | warn | error
//
// # JSON schema
//
//	{
//	  "data_dir": "/home/me/.local/share/cali",
//	  "backend": "sqlite",
//	  "color": "never",
//	  "log_level": "debug"
//	}
//
// Empty JSON fields leave the earlier value in place.
package config

// Package config loads runtime configuration for the meal planner.
//
// Values are applied in three layers, later layers winning:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. An optional JSON file named by -c or -config.
//  3. MEALPLANNER_* environment variables (see EnvConfig).
//  4. Command-line flags.
//
// None of the sources is required.
//
// Supported flags
//
//	-d string   directory holding the CSV data files
//	-l string   directory for the application log
//	-v string   log level: debug, info, warn or error
//
// JSON keys mirror the fields:
//
//	{
//	  "data_dir": "data",
//	  "log_dir": "logs",
//	  "log_file": "application.log",
//	  "log_level": "info",
//	  "bcrypt_cost": 10
//	}
package config

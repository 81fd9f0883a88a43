package config

import "github.com/caarlos0/env/v11"

// EnvConfig lists the optional environment overrides. Unset or empty
// variables leave the current value alone.
type EnvConfig struct {
	DataDir    string `env:"MEALPLANNER_DATA_DIR"`
	LogDir     string `env:"MEALPLANNER_LOG_DIR"`
	LogFile    string `env:"MEALPLANNER_LOG_FILE"`
	LogLevel   string `env:"MEALPLANNER_LOG_LEVEL"`
	BcryptCost int    `env:"MEALPLANNER_BCRYPT_COST"`
}

// parseEnv overlays cfg with MEALPLANNER_* variables. It panics when a
// variable cannot be parsed, e.g. a non-numeric bcrypt cost.
func parseEnv(cfg *Config) {
	var ec EnvConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.DataDir != "" {
		cfg.DataDir = ec.DataDir
	}
	if ec.LogDir != "" {
		cfg.LogDir = ec.LogDir
	}
	if ec.LogFile != "" {
		cfg.LogFile = ec.LogFile
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
	if ec.BcryptCost != 0 {
		cfg.BcryptCost = ec.BcryptCost
	}
}

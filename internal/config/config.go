package config

import (
	"os"

	"golang.org/x/crypto/bcrypt"
)

// Config holds runtime settings for the meal planner CLI.
type Config struct {
	DataDir    string
	LogDir     string
	LogFile    string
	LogLevel   string
	BcryptCost int
}

// LoadDefaults populates c with the built-in defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = "data"
	c.LogDir = "logs"
	c.LogFile = "application.log"
	c.LogLevel = "info"
	c.BcryptCost = bcrypt.DefaultCost
}

// LoadConfig builds a Config from defaults, the optional JSON file, the
// environment and the process command line. It panics on an unreadable JSON
// file or a malformed variable or flag.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseEnv(cfg)
	parseFlags(cfg, args)
	return cfg
}

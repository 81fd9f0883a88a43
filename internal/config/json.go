package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/mealplanner/internal/flagx"
)

// JsonConfig is the on-disk shape of the configuration file.
type JsonConfig struct {
	DataDir    string `json:"data_dir"`
	LogDir     string `json:"log_dir"`
	LogFile    string `json:"log_file"`
	LogLevel   string `json:"log_level"`
	BcryptCost int    `json:"bcrypt_cost"`
}

// parseJson overlays cfg with the file named by -c/-config, if any.
// Only keys present with a non-zero value replace the current setting.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.LogDir != "" {
		cfg.LogDir = jc.LogDir
	}
	if jc.LogFile != "" {
		cfg.LogFile = jc.LogFile
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.BcryptCost != 0 {
		cfg.BcryptCost = jc.BcryptCost
	}
}

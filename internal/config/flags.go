package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/mealplanner/internal/flagx"
)

// parseFlags applies -d, -l and -v from args. Other arguments are ignored so
// the JSON stage and this stage can read the same command line.
func parseFlags(cfg *Config, args []string) {
	filtered := flagx.FilterArgs(args, []string{"-d", "-l", "-v"})

	fs := flag.NewFlagSet("mealplanner", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "directory holding the CSV data files")
	fs.StringVar(&cfg.LogDir, "l", cfg.LogDir, "directory for the application log")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(filtered); err != nil {
		panic(err)
	}
}

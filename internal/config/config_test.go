package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func defaults() *Config {
	return &Config{
		DataDir:    "data",
		LogDir:     "logs",
		LogFile:    "application.log",
		LogLevel:   "info",
		BcryptCost: bcrypt.DefaultCost,
	}
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Empty(t, cmp.Diff(defaults(), &c))
}

func TestLoad_NoArgsGivesDefaults(t *testing.T) {
	cfg := load(nil)

	require.NotNil(t, cfg)
	assert.Empty(t, cmp.Diff(defaults(), cfg))
}

func TestLoad_FlagsOverrideJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"data_dir":"/from/json","log_level":"warn","bcrypt_cost":12}`), 0o600))

	cfg := load([]string{"-c", path, "-d", "/from/flag"})

	want := defaults()
	want.DataDir = "/from/flag"
	want.LogLevel = "warn"
	want.BcryptCost = 12
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestLoad_UnknownArgsIgnored(t *testing.T) {
	cfg := load([]string{"--verbose", "extra", "-l", "/tmp/logs"})

	want := defaults()
	want.LogDir = "/tmp/logs"
	assert.Empty(t, cmp.Diff(want, cfg))
}

package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user preferences loaded from the config file. Every field is
// optional; command-line flags take precedence over config values.
type Config struct {
	// Workers is the default worker count for solve runs. Zero means one
	// worker per CPU.
	Workers int `toml:"workers"`

	// NoCache disables the result cache for all commands.
	NoCache bool `toml:"no_cache"`

	// ShowCosts labels tour edges with their costs in rendered output.
	ShowCosts bool `toml:"show_costs"`
}

// configFile returns the path of the user config file.
func configFile() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// loadConfig reads the user config file. A missing file is not an error and
// yields the zero Config; a malformed file is reported.
func loadConfig() (Config, error) {
	var cfg Config
	path, err := configFile()
	if err != nil {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

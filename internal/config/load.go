package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/nibzard/quickdo/internal/quickdodir"
)

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. Config file (<data dir>/quickdo.toml)
// 3. Environment variables (QUICKDO_*)
// 4. CLI flags
//
// QUICKDO_HOME is applied before the file lookup so the config file is
// read from the directory it selects.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if v := os.Getenv("QUICKDO_HOME"); v != "" {
		cfg.DataDir = v
	}

	configFile := quickdodir.ConfigPath(cfg.DataDir)
	if _, err := os.Stat(configFile); err == nil {
		if err := loadConfigFile(cfg, configFile); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", configFile, err)
		}
	}

	loadFromEnv(cfg)

	if err := parseFlags(cfg, fs, args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	return cfg, nil
}

// loadConfigFile merges values from a TOML file into cfg.
func loadConfigFile(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return err
	}
	return nil
}

// parseFlags registers the global flags on fs and parses args. Flags
// override everything.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	fs.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "Data directory for tasks and reminders")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	return fs.Parse(args)
}

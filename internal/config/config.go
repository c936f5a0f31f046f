// Package config resolves CLI settings from flags, environment, an
// optional .env file and an optional fitcheck.yaml config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. FITCHECK_FORMAT.
const EnvPrefix = "FITCHECK"

// Config is the resolved settings for one command run.
type Config struct {
	Catalog   string `mapstructure:"catalog"`
	Format    string `mapstructure:"format"`
	Out       string `mapstructure:"out"`
	FailOn    string `mapstructure:"fail-on"`
	Strict    bool   `mapstructure:"strict"`
	Verbose   bool   `mapstructure:"verbose"`
	LogFormat string `mapstructure:"log-format"`
}

// LogLevel is debug when verbose, warn otherwise.
func (c *Config) LogLevel() string {
	if c.Verbose {
		return "debug"
	}
	return "warn"
}

// Load merges, lowest to highest priority: flag defaults, the config
// file, FITCHECK_* environment variables, then flags the user set.
// configFile may be empty, in which case fitcheck.yaml is looked up in the
// working directory and $HOME/.config/fitcheck.
func Load(flags *pflag.FlagSet, configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config.Load: .env: %w", err)
	}

	v := viper.New()
	v.SetDefault("catalog", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile == "" {
		configFile = findConfigFile()
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config.Load: %w", err)
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("config.Load: bind flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	// Flag defaults win over these, so commands can pick their own format.
	if cfg.Format == "" {
		cfg.Format = "json"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "console"
	}
	return &cfg, nil
}

// configNames are the file names searched for, in order. Only names with a
// YAML extension match, so a fitcheck binary in the directory is ignored.
var configNames = []string{"fitcheck.yaml", "fitcheck.yml"}

// findConfigFile returns the first config file in the working directory,
// then in $HOME/.config/fitcheck, or "" when there is none.
func findConfigFile() string {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "fitcheck"))
	}
	for _, dir := range dirs {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
				return path
			}
		}
	}
	return ""
}

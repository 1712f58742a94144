// Package config loads runtime settings from flags, TODO_* environment
// variables and an optional config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/idilsaglam/tasklist/internal/ui"
)

// DefaultFile is read from the working directory when no --config is given.
const DefaultFile = "todo.yaml"

// Config is the root configuration.
type Config struct {
	Theme   string `mapstructure:"theme"`
	Seed    string `mapstructure:"seed"`
	LogFile string `mapstructure:"log_file"`
	Debug   bool   `mapstructure:"debug"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("theme", "classic")
	v.SetDefault("seed", "")
	v.SetDefault("log_file", "")
	v.SetDefault("debug", false)
}

// Load reads the config file (explicit path or DefaultFile when present)
// and decodes everything bound on v.
func Load(v *viper.Viper, path string) (Config, error) {
	v.SetEnvPrefix("TODO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	switch {
	case path != "":
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	default:
		if _, err := os.Stat(DefaultFile); err == nil {
			v.SetConfigFile(DefaultFile)
			if err := v.ReadInConfig(); err != nil {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("stat config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that cannot be expressed as types.
func (c Config) Validate() error {
	theme := strings.ToLower(strings.TrimSpace(c.Theme))
	for _, name := range ui.Themes() {
		if theme == name {
			return nil
		}
	}
	return fmt.Errorf("theme: unknown %q (want one of %s)", c.Theme, strings.Join(ui.Themes(), ", "))
}

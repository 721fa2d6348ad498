// Package config loads process configuration from flags, environment and
// an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. REVEAL_DEBUG
const EnvPrefix = "REVEAL"

// Keys
const (
	KeyDebug        = "debug"
	KeyLogFile      = "log_file"
	KeyWorkers      = "workers"
	KeySettingsFile = "settings_file"
	KeyExtensions   = "extensions"
)

// Config is the resolved process configuration
type Config struct {
	Debug        bool     `mapstructure:"debug"`
	LogFile      string   `mapstructure:"log_file"`
	Workers      int      `mapstructure:"workers"`
	SettingsFile string   `mapstructure:"settings_file"`
	Extensions   []string `mapstructure:"extensions"`
}

// New returns a viper instance with defaults and env binding set up
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyWorkers, 8)
	v.SetDefault(KeySettingsFile, "")
	v.SetDefault(KeyExtensions, []string{"jpg", "jpeg", "png", "gif"})

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}

// ReadFile reads cfgFile, or $HOME/.reveal.yaml / ./.reveal.yaml when empty.
// A missing default file is not an error; a missing explicit one is.
func ReadFile(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".reveal")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Load decodes v into a Config
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Workers < 1 {
		return Config{}, fmt.Errorf("workers must be at least 1, got %d", cfg.Workers)
	}
	return cfg, nil
}

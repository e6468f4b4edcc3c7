package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds all settings for one checker run. The character limit is the
// only required value; everything else has a usable default.
type Config struct {
	CharLimit    int    `mapstructure:"char_limit"`
	OutputPath   string `mapstructure:"output_path"`
	TagRulesPath string `mapstructure:"tag_rules"`
	Debug        bool   `mapstructure:"debug"`
	Verbose      bool   `mapstructure:"verbose"`
}

// NewDefaultConfig returns the configuration used when no config file is
// present. CharLimit stays zero so validation forces the caller to supply
// one explicitly.
func NewDefaultConfig() *Config {
	return &Config{}
}

// Load reads the configuration from the given file, or searches for a
// .linecheck YAML file in the working directory and the home directory when
// path is empty. A missing config file is not an error: flags alone are a
// complete configuration.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(".")
		v.AddConfigPath(home)
		v.SetConfigName(".linecheck")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && path == "" {
			return NewDefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Validate rejects configurations that cannot drive an analysis run.
func (c *Config) Validate() error {
	if c.CharLimit <= 0 {
		return fmt.Errorf("character limit must be a positive integer, got %d", c.CharLimit)
	}
	return nil
}

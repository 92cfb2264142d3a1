package main

import (
	"fmt"

	"github.com/spf13/viper"
)

// CLIConfig - Configuration for the interactive shell
type CLIConfig struct {
	Store struct {
		Name            string `mapstructure:"name"`
		DefaultCapacity int32  `mapstructure:"default_capacity"`
	} `mapstructure:"store"`
}

// LoadConfig - Loads shell configuration from an optional yaml file, falling back
// to defaults for anything not given
func LoadConfig(path string) (*CLIConfig, error) {
	v := viper.New()
	v.SetDefault("store.name", "records")
	v.SetDefault("store.default_capacity", 100)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg CLIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

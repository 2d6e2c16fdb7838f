package main

import (
	"github.com/spf13/viper"
)

// config carries the CLI's tunables. Values can come from a config file
// (--config, any format viper reads) and are overridden by flags.
type config struct {
	LogLevel     string `mapstructure:"GAMETREE_LOG_LEVEL"`
	Format       string `mapstructure:"GAMETREE_FORMAT"`
	DiscoverRoot string `mapstructure:"GAMETREE_DISCOVER_ROOT"`
}

// defaultConfig is what runs when no config file is given.
func defaultConfig() *config {
	return &config{
		LogLevel: "info",
		Format:   formatTree,
	}
}

// loadConfig reads cfgPath via viper and unmarshals it over the defaults.
// An empty path skips the file entirely.
func loadConfig(cfgPath string) (*config, error) {
	cfg := defaultConfig()
	if cfgPath == "" {
		return cfg, nil
	}

	viper.SetConfigFile(cfgPath)
	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

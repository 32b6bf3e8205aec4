package config

import (
	"fmt"
)

const (
	defaultMetricsPort = 2112
	maxPort            = 65535
)

type MetricsConfig struct {
	// Enabled controls whether a /metrics endpoint is served at all. A
	// one-shot report run has no scrape window, so this is off by default.
	Enabled bool   `mapstructure:"enabled"`
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port"`
}

func (cfg *MetricsConfig) Validate() error {
	if !cfg.Enabled {
		return nil
	}
	if cfg.Host == "" {
		return fmt.Errorf("metrics host is required when metrics are enabled")
	}
	if cfg.Port <= 0 || cfg.Port > maxPort {
		return fmt.Errorf("metrics port must be between 1 and %d", maxPort)
	}

	return nil
}

func (cfg *MetricsConfig) GetMetricsPort() int {
	if cfg.Port == 0 {
		return defaultMetricsPort
	}
	return cfg.Port
}

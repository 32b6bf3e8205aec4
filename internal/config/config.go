package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Snapshot SnapshotConfig `mapstructure:"snapshot"`
	Report   ReportConfig   `mapstructure:"report"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

func (cfg *Config) Validate() error {
	if err := cfg.Snapshot.Validate(); err != nil {
		return err
	}
	if err := cfg.Report.Validate(); err != nil {
		return err
	}
	if err := cfg.Metrics.Validate(); err != nil {
		return err
	}

	return nil
}

// New returns a fully parsed Config from the given file path. A missing file
// is not an error: the defaults describe a complete, runnable configuration.
// An unreadable or malformed file is fatal.
func New(cfgPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(cfgPath)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file %s: %w", cfgPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file %s: %w", cfgPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("snapshot.path", DefaultSnapshotPath)
	v.SetDefault("report.validator", DefaultReferenceValidator)
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.host", "0.0.0.0")
	v.SetDefault("metrics.port", 2112)
}

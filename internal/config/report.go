package config

import (
	"errors"
	"fmt"

	"github.com/solana-pools/stake-aggregator/pkg"
)

// DefaultReferenceValidator is the reference validator identity the report
// is run against when the config does not name one.
const DefaultReferenceValidator = "5iZ5PQPy5Z9XDnkfoWPi6nvUgtxWnRFwZ36WaftPuaVM"

type ReportConfig struct {
	// Validator is the vote account identity whose active stake is summed.
	Validator string `mapstructure:"validator"`
}

func (cfg *ReportConfig) Validate() error {
	if cfg.Validator == "" {
		return errors.New("report validator identity is required")
	}
	if err := pkg.ValidatePubkey(cfg.Validator); err != nil {
		return fmt.Errorf("invalid report validator identity: %w", err)
	}

	return nil
}

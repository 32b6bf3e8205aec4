package config

import (
	"errors"
)

// DefaultSnapshotPath is the conventional location of the stake program
// snapshot relative to the working directory.
const DefaultSnapshotPath = "tmp/sfdp.stake"

type SnapshotConfig struct {
	// Path points at a locally stored getProgramAccounts snapshot of the
	// stake program, encoded as jsonParsed.
	Path string `mapstructure:"path"`
}

func (cfg *SnapshotConfig) Validate() error {
	if cfg.Path == "" {
		return errors.New("snapshot path is required")
	}

	return nil
}

package pkg

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
)

// ValidatePubkey checks that address is a base58-encoded 32-byte ed25519
// public key, the identity format for validators and pool authorities.
func ValidatePubkey(address string) error {
	const pubkeyLen = 32

	bz := base58.Decode(address)
	if len(bz) == 0 {
		return fmt.Errorf("address %q is not valid base58", address)
	}
	if len(bz) != pubkeyLen {
		return fmt.Errorf("address %q decodes to %d bytes, expected %d", address, len(bz), pubkeyLen)
	}

	return nil
}

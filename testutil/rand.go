package testutil

import (
	"crypto/rand"

	"github.com/btcsuite/btcd/btcutil/base58"
)

// RandomPubkey generates a base58-encoded random 32-byte key, the shape of
// a validator identity or pool authority.
func RandomPubkey() (string, error) {
	var key [32]byte
	if _, err := rand.Read(key[:]); err != nil {
		return "", err
	}

	return base58.Encode(key[:]), nil
}

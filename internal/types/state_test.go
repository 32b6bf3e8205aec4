package types

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStakeState(t *testing.T) {
	const currentEpoch = uint64(700)

	delegation := func(activation, deactivation uint64) *Delegation {
		return &Delegation{
			Voter:             "voter",
			Stake:             "1000",
			ActivationEpoch:   strconv.FormatUint(activation, 10),
			DeactivationEpoch: strconv.FormatUint(deactivation, 10),
		}
	}

	tests := []struct {
		name       string
		delegation *Delegation
		expected   StakeState
	}{
		{
			name:       "no delegation",
			delegation: nil,
			expected:   StateInactive,
		},
		{
			name:       "activated in the past, no deactivation",
			delegation: delegation(10, EpochMax),
			expected:   StateActive,
		},
		{
			name:       "activating this epoch",
			delegation: delegation(currentEpoch, EpochMax),
			expected:   StateActivating,
		},
		{
			name:       "activated and deactivated within the same epoch",
			delegation: delegation(currentEpoch, currentEpoch),
			expected:   StateWaste,
		},
		{
			name:       "deactivating this epoch",
			delegation: delegation(10, currentEpoch),
			expected:   StateDeactivating,
		},
		{
			name:       "deactivated in the past",
			delegation: delegation(10, currentEpoch-1),
			expected:   StateInactive,
		},
		{
			name:       "activation epoch in the sentinel band",
			delegation: delegation(EpochMax-50, EpochMax),
			expected:   StateUnknown,
		},
		{
			name:       "activation after deactivation",
			delegation: delegation(900, 800),
			expected:   StateUnknown,
		},
		{
			name: "unparseable epochs",
			delegation: &Delegation{
				Voter:             "voter",
				ActivationEpoch:   "bogus",
				DeactivationEpoch: "18446744073709551615",
			},
			expected: StateUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyStakeState(tt.delegation, currentEpoch))
		})
	}
}

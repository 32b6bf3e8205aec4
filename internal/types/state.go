package types

// Enum values for Stake State
type StakeState string

const (
	StateActive       StakeState = "ACTIVE"
	StateActivating   StakeState = "ACTIVATING"
	StateDeactivating StakeState = "DEACTIVATING"
	StateInactive     StakeState = "INACTIVE"
	StateUnknown      StakeState = "UNKNOWN"
	StateWaste        StakeState = "WASTE"
)

func (s StakeState) String() string {
	return string(s)
}

// AllStakeStates lists every state in display order.
func AllStakeStates() []StakeState {
	return []StakeState{
		StateActive,
		StateActivating,
		StateDeactivating,
		StateInactive,
		StateUnknown,
		StateWaste,
	}
}

// ClassifyStakeState returns the canonical state of a delegation relative to
// the given epoch. A nil delegation is an undelegated account and therefore
// INACTIVE. Delegations whose epoch fields cannot be parsed are UNKNOWN.
func ClassifyStakeState(d *Delegation, currentEpoch uint64) StakeState {
	if d == nil {
		return StateInactive
	}

	activation, err := d.ActivationEpochNum()
	if err != nil {
		return StateUnknown
	}
	deactivation, err := d.DeactivationEpochNum()
	if err != nil {
		return StateUnknown
	}

	switch {
	case activation == currentEpoch && deactivation != EpochMax:
		// delegated and undelegated within the same epoch, never earned
		return StateWaste
	case activation > EpochMax-100:
		return StateUnknown
	case activation == currentEpoch && deactivation == EpochMax:
		return StateActivating
	case deactivation == currentEpoch:
		return StateDeactivating
	case deactivation < currentEpoch:
		return StateInactive
	case activation > deactivation:
		return StateUnknown
	default:
		return StateActive
	}
}

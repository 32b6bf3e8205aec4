package types

import (
	"fmt"
	"math"
	"strconv"
)

// EpochMax is the sentinel deactivation epoch meaning the delegation is not
// scheduled to deactivate.
const EpochMax uint64 = math.MaxUint64

// AccountEntry is one element of the snapshot's top-level result array, as
// produced by a getProgramAccounts call against the stake program with
// jsonParsed encoding.
type AccountEntry struct {
	Pubkey  string  `json:"pubkey"`
	Account Account `json:"account"`
}

type Account struct {
	Lamports uint64      `json:"lamports"`
	Owner    string      `json:"owner"`
	Data     AccountData `json:"data"`
}

type AccountData struct {
	Program string     `json:"program"`
	Parsed  ParsedData `json:"parsed"`
	Space   uint64     `json:"space"`
}

type ParsedData struct {
	Type string    `json:"type"`
	Info StakeInfo `json:"info"`
}

// StakeInfo holds the decoded stake account fields. Both sub-structures are
// optional: most accounts in a heterogeneous snapshot legitimately carry no
// delegation at all.
type StakeInfo struct {
	Meta  *StakeMeta `json:"meta"`
	Stake *StakeData `json:"stake"`
}

type StakeMeta struct {
	RentExemptReserve string     `json:"rentExemptReserve"`
	Authorized        Authorized `json:"authorized"`
	Lockup            Lockup     `json:"lockup"`
}

type Authorized struct {
	Staker     string `json:"staker"`
	Withdrawer string `json:"withdrawer"`
}

type Lockup struct {
	Custodian     string `json:"custodian"`
	Epoch         uint64 `json:"epoch"`
	UnixTimestamp int64  `json:"unixTimestamp"`
}

type StakeData struct {
	CreditsObserved uint64      `json:"creditsObserved"`
	Delegation      *Delegation `json:"delegation"`
}

// Delegation describes which validator a stake account currently backs.
// The u64 fields arrive as decimal strings on the wire; they are parsed on
// access so a single malformed record never aborts a run.
type Delegation struct {
	Voter              string  `json:"voter"`
	Stake              string  `json:"stake"`
	ActivationEpoch    string  `json:"activationEpoch"`
	DeactivationEpoch  string  `json:"deactivationEpoch"`
	WarmupCooldownRate float64 `json:"warmupCooldownRate"`
}

// Delegation returns the delegation of this account, or nil if the account
// is not a delegated stake account.
func (e *AccountEntry) Delegation() *Delegation {
	if e.Account.Data.Parsed.Info.Stake == nil {
		return nil
	}
	return e.Account.Data.Parsed.Info.Stake.Delegation
}

func (d *Delegation) StakeLamports() (uint64, error) {
	return parseU64("stake", d.Stake)
}

func (d *Delegation) ActivationEpochNum() (uint64, error) {
	return parseU64("activationEpoch", d.ActivationEpoch)
}

func (d *Delegation) DeactivationEpochNum() (uint64, error) {
	return parseU64("deactivationEpoch", d.DeactivationEpoch)
}

func parseU64(field, value string) (uint64, error) {
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", field, value, err)
	}
	return n, nil
}

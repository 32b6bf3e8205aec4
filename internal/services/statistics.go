package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"cosmossdk.io/math"
	"github.com/rs/zerolog/log"

	"github.com/solana-pools/stake-aggregator/internal/observability/metrics"
	"github.com/solana-pools/stake-aggregator/internal/snapshot"
	"github.com/solana-pools/stake-aggregator/internal/types"
)

// ValidatorStake accumulates the delegations backing one validator.
type ValidatorStake struct {
	TotalDelegated math.Int
	AccountCount   uint32
	Accounts       []string
}

func newValidatorStake() *ValidatorStake {
	return &ValidatorStake{
		TotalDelegated: math.ZeroInt(),
	}
}

func (v *ValidatorStake) addAccount(pubkey string, stake uint64) {
	v.TotalDelegated = v.TotalDelegated.Add(math.NewIntFromUint64(stake))
	v.AccountCount++
	v.Accounts = append(v.Accounts, pubkey)
}

// AverageStakePerAccount returns the mean delegated stake, zero when the
// validator has no accounts.
func (v *ValidatorStake) AverageStakePerAccount() math.Int {
	if v.AccountCount == 0 {
		return math.ZeroInt()
	}
	return v.TotalDelegated.QuoRaw(int64(v.AccountCount))
}

// SnapshotStatistics summarizes a whole snapshot against a current epoch:
// per-state account counts and lamport totals, plus the per-validator
// delegation distribution.
type SnapshotStatistics struct {
	CurrentEpoch           uint64
	TotalAccounts          int
	TotalLamports          math.Int
	TotalDelegatedLamports math.Int
	StateAccounts          map[types.StakeState]int
	StateLamports          map[types.StakeState]math.Int
	Validators             map[string]*ValidatorStake
}

// Statistics classifies every record of the snapshot against currentEpoch
// and groups delegations by validator. Unlike the report pass, nothing is
// filtered out here: undelegated accounts land in the INACTIVE bucket.
func (s *Service) Statistics(ctx context.Context, snap *snapshot.Snapshot, currentEpoch uint64) *SnapshotStatistics {
	log := log.Ctx(ctx)

	startTime := time.Now()
	stats := &SnapshotStatistics{
		CurrentEpoch:           currentEpoch,
		TotalLamports:          math.ZeroInt(),
		TotalDelegatedLamports: math.ZeroInt(),
		StateAccounts:          make(map[types.StakeState]int),
		StateLamports:          make(map[types.StakeState]math.Int),
		Validators:             make(map[string]*ValidatorStake),
	}

	for _, record := range snap.Records {
		delegation := record.Delegation()
		state := types.ClassifyStakeState(delegation, currentEpoch)

		stats.TotalAccounts++
		stats.TotalLamports = stats.TotalLamports.Add(math.NewIntFromUint64(record.Account.Lamports))
		stats.StateAccounts[state]++
		stateLamports, ok := stats.StateLamports[state]
		if !ok {
			stateLamports = math.ZeroInt()
		}
		stats.StateLamports[state] = stateLamports.Add(math.NewIntFromUint64(record.Account.Lamports))

		if delegation == nil {
			continue
		}
		stake, err := delegation.StakeLamports()
		if err != nil {
			log.Debug().
				Err(err).
				Str("pubkey", record.Pubkey).
				Msg("Skipping delegation with malformed stake amount")
			continue
		}

		stats.TotalDelegatedLamports = stats.TotalDelegatedLamports.Add(math.NewIntFromUint64(stake))
		validatorStake, ok := stats.Validators[delegation.Voter]
		if !ok {
			validatorStake = newValidatorStake()
			stats.Validators[delegation.Voter] = validatorStake
		}
		validatorStake.addAccount(record.Pubkey, stake)
	}

	metrics.RecordAggregationDuration(time.Since(startTime), "stats", false)

	log.Debug().
		Uint64("current_epoch", currentEpoch).
		Int("total_accounts", stats.TotalAccounts).
		Int("validator_count", len(stats.Validators)).
		Msg("Snapshot statistics completed")

	return stats
}

// TopValidators returns up to n validators ordered by delegated stake,
// descending, ties broken by pubkey for deterministic output.
func (st *SnapshotStatistics) TopValidators(n int) []string {
	pubkeys := make([]string, 0, len(st.Validators))
	for pubkey := range st.Validators {
		pubkeys = append(pubkeys, pubkey)
	}
	sort.Slice(pubkeys, func(i, j int) bool {
		a, b := st.Validators[pubkeys[i]], st.Validators[pubkeys[j]]
		if !a.TotalDelegated.Equal(b.TotalDelegated) {
			return a.TotalDelegated.GT(b.TotalDelegated)
		}
		return pubkeys[i] < pubkeys[j]
	})
	if n > 0 && len(pubkeys) > n {
		pubkeys = pubkeys[:n]
	}
	return pubkeys
}

// Render returns the statistics report as it goes to stdout.
func (st *SnapshotStatistics) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Snapshot statistics (epoch %d)\n", st.CurrentEpoch)
	fmt.Fprintf(&b, "Total accounts: %d\n", st.TotalAccounts)
	fmt.Fprintf(&b, "Total lamports: %s\n", st.TotalLamports.String())
	fmt.Fprintf(&b, "Total delegated (lamports): %s\n", st.TotalDelegatedLamports.String())
	fmt.Fprintf(&b, "Unique validators: %d\n", len(st.Validators))

	for _, state := range types.AllStakeStates() {
		lamports, ok := st.StateLamports[state]
		if !ok {
			lamports = math.ZeroInt()
		}
		fmt.Fprintf(&b, "  %s: %d accounts, %s lamports\n", state, st.StateAccounts[state], lamports.String())
	}

	top := st.TopValidators(10)
	if len(top) > 0 {
		fmt.Fprintf(&b, "Top validators by delegated stake:\n")
		for _, pubkey := range top {
			v := st.Validators[pubkey]
			fmt.Fprintf(&b, "  %s: %d accounts, %s lamports (avg %s)\n",
				pubkey, v.AccountCount, v.TotalDelegated.String(), v.AverageStakePerAccount().String())
		}
	}

	return b.String()
}

package services

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"cosmossdk.io/math"
	"github.com/rs/zerolog/log"

	"github.com/solana-pools/stake-aggregator/internal/observability/metrics"
	"github.com/solana-pools/stake-aggregator/internal/snapshot"
	"github.com/solana-pools/stake-aggregator/internal/types"
)

// AggregateResult holds the outcome of one active-stake pass: how many
// accounts back the reference validator with no deactivation scheduled, and
// how much stake they carry.
type AggregateResult struct {
	Validator          string
	MatchingAccounts   uint64
	TotalStakeLamports math.Int
}

// ActiveStake runs a single filter-and-sum pass over the snapshot. A record
// counts when it carries a delegation, the delegation backs the configured
// validator, no deactivation is scheduled, and the delegated stake is
// nonzero. Records missing any of that are skipped, in that order.
func (s *Service) ActiveStake(ctx context.Context, snap *snapshot.Snapshot) *AggregateResult {
	log := log.Ctx(ctx)

	startTime := time.Now()
	result := &AggregateResult{
		Validator:          s.cfg.Report.Validator,
		TotalStakeLamports: math.ZeroInt(),
	}

	for _, record := range snap.Records {
		delegation := record.Delegation()
		if delegation == nil {
			continue
		}
		if delegation.Voter != result.Validator {
			continue
		}

		deactivationEpoch, err := delegation.DeactivationEpochNum()
		if err != nil {
			log.Debug().
				Err(err).
				Str("pubkey", record.Pubkey).
				Msg("Skipping record with malformed deactivation epoch")
			continue
		}
		if deactivationEpoch != types.EpochMax {
			// deactivating or already deactivated
			continue
		}

		stake, err := delegation.StakeLamports()
		if err != nil {
			log.Debug().
				Err(err).
				Str("pubkey", record.Pubkey).
				Msg("Skipping record with malformed stake amount")
			continue
		}
		if stake == 0 {
			continue
		}

		result.MatchingAccounts++
		result.TotalStakeLamports = result.TotalStakeLamports.Add(math.NewIntFromUint64(stake))
	}

	metrics.RecordAggregationDuration(time.Since(startTime), "report", false)
	metrics.RecordActiveStake(result.MatchingAccounts, bigIntToFloat(result.TotalStakeLamports))

	log.Debug().
		Str("validator", result.Validator).
		Uint64("matching_accounts", result.MatchingAccounts).
		Str("total_stake_lamports", result.TotalStakeLamports.String()).
		Msg("Active stake aggregation completed")

	return result
}

// Render returns the four-line report exactly as it goes to stdout.
func (r *AggregateResult) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Validator: %s\n", r.Validator)
	fmt.Fprintf(&b, "Active stake accounts: %d\n", r.MatchingAccounts)
	fmt.Fprintf(&b, "Total active stake (lamports): %s\n", r.TotalStakeLamports.String())
	fmt.Fprintf(&b, "Total active stake (SOL): %s\n", types.FormatSOL(r.TotalStakeLamports))
	return b.String()
}

func bigIntToFloat(n math.Int) float64 {
	f, _ := new(big.Float).SetInt(n.BigInt()).Float64()
	return f
}

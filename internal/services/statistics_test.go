package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solana-pools/stake-aggregator/internal/config"
	"github.com/solana-pools/stake-aggregator/internal/snapshot"
	"github.com/solana-pools/stake-aggregator/internal/types"
	"github.com/solana-pools/stake-aggregator/testutil"
)

func TestStatistics(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&config.Config{
		Report: config.ReportConfig{Validator: config.DefaultReferenceValidator},
	})

	t.Run("empty snapshot", func(t *testing.T) {
		stats := svc.Statistics(ctx, &snapshot.Snapshot{}, 700)

		assert.Zero(t, stats.TotalAccounts)
		assert.True(t, stats.TotalLamports.IsZero())
		assert.True(t, stats.TotalDelegatedLamports.IsZero())
		assert.Empty(t, stats.Validators)
	})

	t.Run("states and distribution", func(t *testing.T) {
		validatorA, err := testutil.RandomPubkey()
		require.NoError(t, err)
		validatorB, err := testutil.RandomPubkey()
		require.NoError(t, err)

		snap := &snapshot.Snapshot{Records: []types.AccountEntry{
			delegatedEntry("active1", validatorA, "1000", sentinelEpoch),
			delegatedEntry("active2", validatorA, "3000", sentinelEpoch),
			delegatedEntry("deactivating", validatorB, "500", "700"),
			delegatedEntry("inactive", validatorB, "500", "600"),
			undelegatedEntry("undelegated"),
		}}
		stats := svc.Statistics(ctx, snap, 700)

		assert.Equal(t, 5, stats.TotalAccounts)
		// every test entry carries the stock 2282880 account lamports
		assert.Equal(t, "11414400", stats.TotalLamports.String())
		assert.Equal(t, "5000", stats.TotalDelegatedLamports.String())

		assert.Equal(t, 2, stats.StateAccounts[types.StateActive])
		assert.Equal(t, 1, stats.StateAccounts[types.StateDeactivating])
		// undelegated account joins the past-deactivation one
		assert.Equal(t, 2, stats.StateAccounts[types.StateInactive])

		require.Len(t, stats.Validators, 2)
		a := stats.Validators[validatorA]
		require.NotNil(t, a)
		assert.Equal(t, uint32(2), a.AccountCount)
		assert.Equal(t, "4000", a.TotalDelegated.String())
		assert.Equal(t, "2000", a.AverageStakePerAccount().String())
		assert.Equal(t, []string{"active1", "active2"}, a.Accounts)

		b := stats.Validators[validatorB]
		require.NotNil(t, b)
		assert.Equal(t, uint32(2), b.AccountCount)
		assert.Equal(t, "1000", b.TotalDelegated.String())
	})

	t.Run("top validators ordering", func(t *testing.T) {
		snap := &snapshot.Snapshot{Records: []types.AccountEntry{
			delegatedEntry("a", "validatorSmall", "1", sentinelEpoch),
			delegatedEntry("b", "validatorBig", "100", sentinelEpoch),
			delegatedEntry("c", "validatorMid", "10", sentinelEpoch),
		}}
		stats := svc.Statistics(ctx, snap, 700)

		assert.Equal(t, []string{"validatorBig", "validatorMid", "validatorSmall"}, stats.TopValidators(0))
		assert.Equal(t, []string{"validatorBig", "validatorMid"}, stats.TopValidators(2))
	})

	t.Run("render", func(t *testing.T) {
		snap := &snapshot.Snapshot{Records: []types.AccountEntry{
			delegatedEntry("a", "validator1", "1000", sentinelEpoch),
		}}
		out := svc.Statistics(ctx, snap, 700).Render()

		assert.True(t, strings.HasPrefix(out, "Snapshot statistics (epoch 700)\n"))
		assert.Contains(t, out, "Total accounts: 1\n")
		assert.Contains(t, out, "Unique validators: 1\n")
		assert.Contains(t, out, "ACTIVE: 1 accounts")
		assert.Contains(t, out, "validator1: 1 accounts, 1000 lamports (avg 1000)")
	})
}

func TestValidatorStakeAverage(t *testing.T) {
	v := newValidatorStake()
	assert.True(t, v.AverageStakePerAccount().IsZero())

	v.addAccount("a", 10)
	v.addAccount("b", 21)
	assert.Equal(t, "15", v.AverageStakePerAccount().String())
}

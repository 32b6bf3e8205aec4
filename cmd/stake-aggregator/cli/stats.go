package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/solana-pools/stake-aggregator/internal/config"
	"github.com/solana-pools/stake-aggregator/internal/observability/metrics"
	"github.com/solana-pools/stake-aggregator/internal/observability/tracing"
	"github.com/solana-pools/stake-aggregator/internal/services"
	"github.com/solana-pools/stake-aggregator/internal/snapshot"
)

func StatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Prints whole-snapshot stake statistics grouped by state and validator",
		Args:  cobra.ExactArgs(0),
		RunE:  runStats,
	}

	cmd.Flags().Uint64("epoch", 0, "Current epoch used to classify delegation states")
	_ = cmd.MarkFlagRequired("epoch")

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := tracing.InjectTraceID(cmd.Context())
	log := log.Ctx(ctx)

	currentEpoch, err := cmd.Flags().GetUint64("epoch")
	if err != nil {
		return err
	}

	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		return fmt.Errorf("error while loading config file %s: %w", cfgPath, err)
	}

	if cfg.Metrics.Enabled {
		metrics.Init(cfg.Metrics.GetMetricsPort())
	}

	snap, err := snapshot.Load(ctx, cfg.Snapshot.Path)
	if err != nil {
		log.Error().Err(err).Str("path", cfg.Snapshot.Path).Msg("Failed to load snapshot")
		return err
	}

	service := services.NewService(cfg)
	stats := service.Statistics(ctx, snap, currentEpoch)

	fmt.Fprint(cmd.OutOrStdout(), stats.Render())
	return nil
}

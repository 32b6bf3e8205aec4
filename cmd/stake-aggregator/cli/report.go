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

func ReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Prints the active stake report for the configured validator",
		Args:  cobra.ExactArgs(0),
		RunE:  runReport,
	}

	return cmd
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := tracing.InjectTraceID(cmd.Context())
	log := log.Ctx(ctx)

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
	result := service.ActiveStake(ctx, snap)

	// the report is the program output, it goes to stdout unpolluted
	fmt.Fprint(cmd.OutOrStdout(), result.Render())
	return nil
}

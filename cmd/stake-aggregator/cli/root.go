package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	defaultConfigFileName = "config.yml"
)

var (
	cfgPath string
	rootCmd = &cobra.Command{
		Use: "stake-aggregator",
	}
)

func Setup() error {
	rootCmd.AddCommand(ReportCmd())
	rootCmd.AddCommand(StatsCmd())
	rootCmd.AddCommand(PoolsCmd())
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", defaultConfigFileName, fmt.Sprintf("config file (default %s)", defaultConfigFileName))
	if err := rootCmd.Execute(); err != nil {
		return err
	}

	return nil
}

func GetConfigPath() string {
	return cfgPath
}

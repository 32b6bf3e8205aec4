package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/solana-pools/stake-aggregator/internal/pools"
)

func PoolsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pools",
		Short: "Lists the known stake pool authorities",
		Args:  cobra.ExactArgs(0),
		RunE:  runPools,
	}

	return cmd
}

func runPools(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tAUTHORITY")
	for _, pool := range pools.All() {
		fmt.Fprintf(w, "%s\t%s\n", pool.Name, pool.Authority)
	}
	return w.Flush()
}

package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/govalues/idle"
)

func tiersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tiers",
		Short: "List tiers and their display symbols",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TIER\tSYMBOL\tVALUE")
			for t := idle.Tier(0); t < idle.NumTiers; t++ {
				sym, _ := t.Symbol()
				if sym == "" {
					sym = "-"
				}
				fmt.Fprintf(w, "%d\t%s\t1000^%d\n", uint64(t), sym, uint64(t))
			}
			return w.Flush()
		},
	}
}

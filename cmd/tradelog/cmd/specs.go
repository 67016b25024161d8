package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradelog/market"
)

var specsCmd = &cobra.Command{
	Use:   "specs",
	Short: "Print the futures contract reference sheet",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, s := range market.SortedSpecs() {
			fmt.Fprintf(out, "%-4s %s\n", s.Symbol, s)
		}
	},
}

func init() {
	rootCmd.AddCommand(specsCmd)
}

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradelog/market"
	"github.com/rustyeddy/tradelog/tracker"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Profit calculator for stocks, forex and futures",
	Long: `Compute the net P&L of a hypothetical trade with the commission
currently in force. Nothing is written to the ledger.

Examples:
  tradelog calc stocks --shares 10 --entry 100 --exit 110
  tradelog calc forex --lots 1 --entry 1.1000 --exit 1.1050 --direction long
  tradelog calc futures --symbol ES1 --contracts 2 --entry 4000 --exit 4010
  tradelog calc size --class futures --symbol ES1 --account 50000 --risk 1 --entry 4000 --stop 3990`,
}

var calcSizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Size a position so a stop-out risks a share of the account",
	Args:  cobra.NoArgs,
	RunE:  runCalcSize,
}

var (
	calcForm tracker.CalcForm
	sizeForm tracker.SizeForm
)

func init() {
	rootCmd.AddCommand(calcCmd)

	classes := []struct {
		class    market.AssetClass
		qtyFlag  string
		qtyHelp  string
		needsDir bool
		symbol   bool
	}{
		{market.Stocks, "shares", "number of shares", false, false},
		{market.Forex, "lots", "trade size in standard lots", true, false},
		{market.Futures, "contracts", "number of contracts", true, true},
	}

	for _, c := range classes {
		c := c
		sub := &cobra.Command{
			Use:   string(c.class),
			Short: fmt.Sprintf("Compute P&L for a %s trade", c.class),
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				form := calcForm
				form.Class = string(c.class)
				return runCalc(cmd, form)
			},
		}

		sub.Flags().StringVar(&calcForm.Quantity, c.qtyFlag, "", c.qtyHelp+" (required)")
		sub.Flags().StringVar(&calcForm.Entry, "entry", "", "entry price (required)")
		sub.Flags().StringVar(&calcForm.Exit, "exit", "", "exit price (required)")
		if c.needsDir {
			sub.Flags().StringVar(&calcForm.Direction, "direction", "long", "long or short")
		}
		if c.symbol {
			sub.Flags().StringVar(&calcForm.Symbol, "symbol", "", "contract symbol, e.g. ES1 (see tradelog specs)")
		}
		calcCmd.AddCommand(sub)
	}

	calcCmd.AddCommand(calcSizeCmd)
	f := calcSizeCmd.Flags()
	f.StringVar(&sizeForm.Class, "class", string(market.Stocks), "stocks, forex or futures")
	f.StringVar(&sizeForm.Symbol, "symbol", "", "futures contract symbol")
	f.StringVar(&sizeForm.AccountSize, "account", "", "account size (required)")
	f.StringVar(&sizeForm.RiskPercent, "risk", "1", "percent of the account to risk")
	f.StringVar(&sizeForm.Entry, "entry", "", "entry price (required)")
	f.StringVar(&sizeForm.Stop, "stop", "", "stop loss (required)")
}

func runCalcSize(cmd *cobra.Command, args []string) error {
	size, err := tracker.SizePosition(sizeForm)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), size)
	return nil
}

func runCalc(cmd *cobra.Command, form tracker.CalcForm) error {
	return withApp(cmd, func(ctx context.Context, a *app) error {
		calc, err := a.tracker.Calculate(form)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, calc)
		fmt.Fprintf(out, "  Size: %s  Multiplier: %s  Direction: %s\n", calc.Size, calc.Multiplier, calc.Direction)
		return nil
	})
}

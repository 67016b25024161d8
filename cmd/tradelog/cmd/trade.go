package cmd

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradelog/journal"
	"github.com/rustyeddy/tradelog/tracker"
)

var tradeCmd = &cobra.Command{
	Use:   "trade",
	Short: "Record and query journaled trades",
	Long: `Record trades and query the trade ledger.

Subcommands:
  add     - Record a closed trade
  list    - List trades, newest first
  show    - Show the full record of a trade
  delete  - Delete a trade by ID
  export  - Export every trade as CSV or Org
  stats   - Print win rate, profit factor and totals
  report  - Write an Org-mode performance report

Examples:
  tradelog trade add --instrument AAPL --entry 100 --exit 110 --size 10 --direction long
  tradelog trade list
  tradelog trade show 3
  tradelog trade export --format csv -o trades.csv.xz`,
}

var tradeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a closed trade",
	Long: `Record a closed trade. The net P&L is computed with the commission
currently in force and stored with the trade.

With --class the size is read as shares (stocks), lots (forex) or
contracts (futures) and the class multiplier applies.`,
	Args: cobra.NoArgs,
	RunE: runTradeAdd,
}

var tradeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List trades, newest first",
	Args:  cobra.NoArgs,
	RunE:  runTradeList,
}

var tradeShowCmd = &cobra.Command{
	Use:   "show <trade-id>",
	Short: "Show the full record of a trade",
	Args:  cobra.ExactArgs(1),
	RunE:  runTradeShow,
}

var tradeDeleteCmd = &cobra.Command{
	Use:   "delete <trade-id>",
	Short: "Delete a trade by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runTradeDelete,
}

var tradeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every trade as CSV or Org",
	Args:  cobra.NoArgs,
	RunE:  runTradeExport,
}

var tradeStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print win rate, profit factor and totals",
	Args:  cobra.NoArgs,
	RunE:  runTradeStats,
}

var tradeReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write an Org-mode performance report",
	Args:  cobra.NoArgs,
	RunE:  runTradeReport,
}

var (
	tradeForm tracker.TradeForm

	exportFormat string
	exportOutput string

	reportTitle  string
	reportRecent int
	reportOutput string
)

func init() {
	rootCmd.AddCommand(tradeCmd)
	tradeCmd.AddCommand(tradeAddCmd)
	tradeCmd.AddCommand(tradeListCmd)
	tradeCmd.AddCommand(tradeShowCmd)
	tradeCmd.AddCommand(tradeDeleteCmd)
	tradeCmd.AddCommand(tradeExportCmd)
	tradeCmd.AddCommand(tradeStatsCmd)
	tradeCmd.AddCommand(tradeReportCmd)

	f := tradeAddCmd.Flags()
	f.StringVar(&tradeForm.Date, "date", "", "trade date (default today)")
	f.StringVar(&tradeForm.Time, "time", "", "trade time")
	f.StringVarP(&tradeForm.Instrument, "instrument", "i", "", "instrument symbol")
	f.StringVar(&tradeForm.Session, "session", "", "trading session")
	f.StringVar(&tradeForm.AccountSize, "account-size", "", "account size")
	f.StringVar(&tradeForm.SetupName, "setup", "", "setup name")
	f.StringVar(&tradeForm.EntryPrice, "entry", "", "entry price (required)")
	f.StringVar(&tradeForm.ExitPrice, "exit", "", "exit price (required)")
	f.StringVar(&tradeForm.StopLoss, "stop", "", "stop loss")
	f.StringVar(&tradeForm.PositionSize, "size", "", "position size (required)")
	f.StringVar(&tradeForm.Direction, "direction", "long", "long or short")
	f.StringVar(&tradeForm.AssetClass, "class", "", "stocks, forex or futures")
	f.StringVar(&tradeForm.Notes.Context, "context", "", "market context")
	f.StringVar(&tradeForm.Notes.Bias, "bias", "", "directional bias")
	f.StringVar(&tradeForm.Notes.Duration, "duration", "", "time in trade")
	f.StringVar(&tradeForm.Notes.MentalStatePre, "mental-pre", "", "mental state before the trade")
	f.StringVar(&tradeForm.Notes.MentalStateDuring, "mental-during", "", "mental state during the trade")
	f.StringVar(&tradeForm.Notes.ExecutionQuality, "execution", "", "execution quality")
	f.StringVar(&tradeForm.Notes.Distractions, "distractions", "", "distractions")

	tradeExportCmd.Flags().StringVarP(&exportFormat, "format", "f", tracker.FormatCSV, "csv or org")
	tradeExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")

	tradeReportCmd.Flags().StringVarP(&reportTitle, "title", "t", "", "report title")
	tradeReportCmd.Flags().IntVarP(&reportRecent, "recent", "n", 10, "number of recent trades to include")
	tradeReportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "output file (default stdout)")
}

func runTradeAdd(cmd *cobra.Command, args []string) error {
	form := tradeForm
	if form.Date == "" {
		form.Date = time.Now().Format("2006-01-02")
	}

	return withApp(cmd, func(ctx context.Context, a *app) error {
		saved, err := a.tracker.SaveTrade(ctx, form)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (id %d)\n", saved, saved.ID)
		return nil
	})
}

func runTradeList(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *app) error {
		rows, err := a.tracker.History(ctx)
		if err != nil {
			return fmt.Errorf("list trades: %w", err)
		}
		if len(rows) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No trades recorded.")
			return nil
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "ID\tDate\tInstrument\tNet P&L\tCommission\t")
		for _, r := range rows {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t\n", r.ID, r.Date, r.Instrument, r.NetPnL.StringFixed(2), r.Commission)
		}
		return tw.Flush()
	})
}

func runTradeShow(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *app) error {
		t, err := a.tracker.ShowTrade(ctx, args[0])
		if err != nil {
			return fmt.Errorf("get trade: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), journal.FormatTradeOrg(t))
		return nil
	})
}

func runTradeDelete(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *app) error {
		if err := a.tracker.DeleteTrade(ctx, args[0]); err != nil {
			return fmt.Errorf("delete trade: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Trade %s deleted.\n", args[0])
		return nil
	})
}

func runTradeExport(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *app) error {
		return writeOutput(cmd, exportOutput, func(w io.Writer) error {
			return a.tracker.Export(ctx, w, exportFormat)
		})
	})
}

func runTradeStats(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *app) error {
		s, err := a.tracker.Stats(ctx)
		if err != nil {
			return fmt.Errorf("stats: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Trades:        %d (%d wins, %d losses)\n", s.Trades, s.Wins, s.Losses)
		fmt.Fprintf(out, "Net P&L:       %s\n", s.NetPnL.StringFixed(2))
		fmt.Fprintf(out, "Gross profit:  %s\n", s.GrossProfit.StringFixed(2))
		fmt.Fprintf(out, "Gross loss:    %s\n", s.GrossLoss.StringFixed(2))
		fmt.Fprintf(out, "Win rate:      %s%%\n", s.WinRate.Shift(2).StringFixed(1))
		if s.ProfitFactor.IsZero() {
			fmt.Fprintln(out, "Profit factor: n/a")
		} else {
			fmt.Fprintf(out, "Profit factor: %s\n", s.ProfitFactor.StringFixed(2))
		}
		return nil
	})
}

func runTradeReport(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *app) error {
		return writeOutput(cmd, reportOutput, func(w io.Writer) error {
			return a.tracker.Report(ctx, w, reportTitle, reportRecent)
		})
	})
}

// writeOutput sends fn's output to path, or to the command's stdout when
// path is empty. A path ending in .xz is compressed.
func writeOutput(cmd *cobra.Command, path string, fn func(w io.Writer) error) error {
	if path == "" {
		return fn(cmd.OutOrStdout())
	}

	f, err := journal.CreateExportFile(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := fn(f); err != nil {
		f.Abort()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "✓ Wrote %s\n", path)
	return nil
}

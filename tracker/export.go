package tracker

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/rustyeddy/tradelog/journal"
)

// Export formats understood by Export.
const (
	FormatCSV = "csv"
	FormatOrg = "org"
)

// Export writes every trade, oldest first, in the given format.
func (t *Tracker) Export(ctx context.Context, w io.Writer, format string) error {
	trades, err := t.ledger.All(ctx)
	if err != nil {
		return err
	}

	switch format {
	case FormatCSV:
		err = journal.WriteCSV(w, trades)
	case FormatOrg:
		_, err = io.WriteString(w, journal.FormatTradesOrg(trades))
	default:
		return fmt.Errorf("unknown export format %q (want csv or org)", format)
	}
	if err != nil {
		return fmt.Errorf("export %s: %w", format, err)
	}

	t.log.Debug("exported trades", zap.String("format", format), zap.Int("count", len(trades)))
	return nil
}

// Report writes an Org-mode summary with the most recent trades.
func (t *Tracker) Report(ctx context.Context, w io.Writer, title string, recent int) error {
	stats, err := t.ledger.Stats(ctx)
	if err != nil {
		return err
	}
	rows, err := t.ledger.List(ctx)
	if err != nil {
		return err
	}
	if recent >= 0 && len(rows) > recent {
		rows = rows[:recent]
	}

	return journal.WriteReportOrg(w, journal.Report{
		Title:   title,
		Created: time.Now(),
		Stats:   stats,
		Recent:  rows,
	})
}

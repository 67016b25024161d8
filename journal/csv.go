package journal

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/shopspring/decimal"
)

// CSVHeader is the first row written by WriteCSV.
var CSVHeader = []string{
	"id", "ref", "date", "time", "instrument", "session", "account_size",
	"setup_name", "entry_price", "exit_price", "stop_loss", "position_size",
	"direction", "pnl_net", "commission", "asset_class", "multiplier",
	"context", "bias", "duration", "mental_state_pre", "mental_state_during",
	"execution_quality", "distractions",
}

// WriteCSV writes a header and one row per trade. Numbers are written
// exactly as stored, without rounding.
func WriteCSV(w io.Writer, trades []Trade) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}

	for _, t := range trades {
		err := cw.Write([]string{
			strconv.FormatInt(t.ID, 10),
			t.Ref,
			t.Date,
			t.Time,
			t.Instrument,
			t.Session,
			nullable(t.AccountSize),
			t.SetupName,
			t.EntryPrice.String(),
			t.ExitPrice.String(),
			nullable(t.StopLoss),
			t.PositionSize.String(),
			t.Direction.String(),
			t.NetPnL.String(),
			t.Commission.String(),
			string(t.AssetClass),
			t.multiplier().String(),
			t.Notes.Context,
			t.Notes.Bias,
			t.Notes.Duration,
			t.Notes.MentalStatePre,
			t.Notes.MentalStateDuring,
			t.Notes.ExecutionQuality,
			t.Notes.Distractions,
		})
		if err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func nullable(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}

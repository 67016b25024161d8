// journal/journal.go
package journal

import (
	"errors"

	"github.com/rustyeddy/tradelog/market"
	"github.com/rustyeddy/tradelog/pnl"
	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound is returned when no trade has the requested id.
	ErrNotFound = errors.New("trade not found")

	// ErrStorage wraps every failure of the underlying database.
	ErrStorage = errors.New("storage failure")
)

// Notes are the free-text annotations a trader keeps with a trade.
type Notes struct {
	Context           string
	Bias              string
	Duration          string
	MentalStatePre    string
	MentalStateDuring string
	ExecutionQuality  string
	Distractions      string
}

// Entry is a trade as submitted for recording. Commission is the
// per-contract rate in force when the trade is saved.
type Entry struct {
	Date       string
	Time       string
	Instrument string
	Session    string
	SetupName  string

	AccountSize  decimal.NullDecimal
	EntryPrice   decimal.Decimal
	ExitPrice    decimal.Decimal
	StopLoss     decimal.NullDecimal
	PositionSize decimal.Decimal
	Direction    pnl.Direction

	Commission decimal.Decimal
	AssetClass market.AssetClass // optional
	Multiplier decimal.Decimal   // zero means 1

	Notes Notes
}

// PnLInputs maps the entry onto the calculator.
func (e Entry) PnLInputs() pnl.Inputs {
	return pnl.Inputs{
		Entry:      e.EntryPrice,
		Exit:       e.ExitPrice,
		Size:       e.PositionSize,
		Direction:  e.Direction,
		Commission: e.Commission,
		Multiplier: e.Multiplier,
	}
}

func (e Entry) multiplier() decimal.Decimal {
	if e.Multiplier.IsZero() {
		return decimal.NewFromInt(1)
	}
	return e.Multiplier
}

// Trade is a stored record.
type Trade struct {
	ID     int64
	Ref    string
	NetPnL decimal.Decimal
	Entry
}

// TradeSummary is one row of the history view.
type TradeSummary struct {
	ID         int64
	Date       string
	Instrument string
	NetPnL     decimal.Decimal
	Commission decimal.Decimal
}

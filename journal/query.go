package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rustyeddy/tradelog/market"
	"github.com/rustyeddy/tradelog/pnl"
	"github.com/shopspring/decimal"
)

const tradeColumns = `
	id, COALESCE(ref, ''), COALESCE(date, ''), COALESCE(time, ''),
	COALESCE(instrument, ''), COALESCE(session, ''), account_size,
	COALESCE(setup_name, ''), COALESCE(entry_price, 0), COALESCE(exit_price, 0),
	stop_loss, COALESCE(position_size, 0), COALESCE(direction, ''),
	COALESCE(pnl_net, 0), COALESCE(commission, 0), COALESCE(asset_class, ''),
	COALESCE(multiplier, 1), COALESCE(context, ''), COALESCE(bias, ''),
	COALESCE(duration, ''), COALESCE(mental_state_pre, ''),
	COALESCE(mental_state_during, ''), COALESCE(execution_quality, ''),
	COALESCE(distractions, '')`

type scanner interface {
	Scan(dest ...any) error
}

func scanTrade(row scanner) (Trade, error) {
	var (
		rec       Trade
		direction string
		class     string
	)
	err := row.Scan(
		&rec.ID, &rec.Ref, &rec.Date, &rec.Time,
		&rec.Instrument, &rec.Session, &rec.AccountSize,
		&rec.SetupName, &rec.EntryPrice, &rec.ExitPrice,
		&rec.StopLoss, &rec.PositionSize, &direction,
		&rec.NetPnL, &rec.Commission, &class,
		&rec.Multiplier, &rec.Notes.Context, &rec.Notes.Bias,
		&rec.Notes.Duration, &rec.Notes.MentalStatePre,
		&rec.Notes.MentalStateDuring, &rec.Notes.ExecutionQuality,
		&rec.Notes.Distractions,
	)
	if err != nil {
		return Trade{}, err
	}
	rec.Direction = pnl.Direction(direction)
	if d, err := pnl.ParseDirection(direction); err == nil {
		rec.Direction = d
	}
	rec.AssetClass = market.AssetClass(class)
	return rec, nil
}

// Get returns a single trade by id.
func (j *SQLite) Get(ctx context.Context, tradeID int64) (Trade, error) {
	row := j.db.QueryRowContext(ctx, `SELECT `+tradeColumns+` FROM trades WHERE id = ?`, tradeID)

	rec, err := scanTrade(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Trade{}, fmt.Errorf("%w: id %d", ErrNotFound, tradeID)
		}
		return Trade{}, storageErr("get trade", err)
	}
	return rec, nil
}

// All returns every trade, oldest first.
func (j *SQLite) All(ctx context.Context) ([]Trade, error) {
	rows, err := j.db.QueryContext(ctx, `SELECT `+tradeColumns+` FROM trades ORDER BY id ASC`)
	if err != nil {
		return nil, storageErr("list trades", err)
	}
	defer rows.Close()

	var out []Trade
	for rows.Next() {
		rec, err := scanTrade(rows)
		if err != nil {
			return nil, storageErr("list trades", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list trades", err)
	}
	return out, nil
}

// List returns the history view, newest id first. Each call runs a fresh
// query.
func (j *SQLite) List(ctx context.Context) ([]TradeSummary, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT id, COALESCE(date, ''), COALESCE(instrument, ''),
			COALESCE(pnl_net, 0), COALESCE(commission, 0)
		FROM trades
		ORDER BY id DESC`)
	if err != nil {
		return nil, storageErr("list trades", err)
	}
	defer rows.Close()

	var out []TradeSummary
	for rows.Next() {
		var s TradeSummary
		if err := rows.Scan(&s.ID, &s.Date, &s.Instrument, &s.NetPnL, &s.Commission); err != nil {
			return nil, storageErr("list trades", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list trades", err)
	}
	return out, nil
}

// Stats summarizes the whole ledger.
type Stats struct {
	Trades       int
	Wins         int
	Losses       int
	NetPnL       decimal.Decimal
	GrossProfit  decimal.Decimal
	GrossLoss    decimal.Decimal // positive
	WinRate      decimal.Decimal // fraction of trades, 0 with no trades
	ProfitFactor decimal.Decimal // 0 when there are no losses
}

// Stats computes performance figures over every stored trade.
func (j *SQLite) Stats(ctx context.Context) (Stats, error) {
	summaries, err := j.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(summaries), nil
}

// ComputeStats folds history rows into Stats. Break-even trades count
// toward Trades only.
func ComputeStats(rows []TradeSummary) Stats {
	s := Stats{Trades: len(rows)}
	for _, r := range rows {
		s.NetPnL = s.NetPnL.Add(r.NetPnL)
		switch r.NetPnL.Sign() {
		case 1:
			s.Wins++
			s.GrossProfit = s.GrossProfit.Add(r.NetPnL)
		case -1:
			s.Losses++
			s.GrossLoss = s.GrossLoss.Add(r.NetPnL.Neg())
		}
	}
	if s.Trades > 0 {
		s.WinRate = decimal.NewFromInt(int64(s.Wins)).Div(decimal.NewFromInt(int64(s.Trades)))
	}
	if s.GrossLoss.IsPositive() {
		s.ProfitFactor = s.GrossProfit.Div(s.GrossLoss)
	}
	return s
}

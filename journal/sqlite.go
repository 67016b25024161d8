package journal

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/tradelog/id"
	"github.com/rustyeddy/tradelog/pnl"
)

// SQLite is the trade ledger. It holds a single connection for the life of
// the process.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (creating if needed) the ledger at path. Opening an
// existing ledger leaves its rows untouched.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, storageErr("open", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, storageErr("create schema", err)
	}

	return &SQLite{db: db}, nil
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}

// Create computes the net P&L of e, stores the record and returns its id.
func (j *SQLite) Create(ctx context.Context, e Entry) (int64, error) {
	dir, err := pnl.ParseDirection(string(e.Direction))
	if err != nil {
		return 0, err
	}
	e.Direction = dir
	net := pnl.NetPnL(e.PnLInputs())

	res, err := j.db.ExecContext(ctx, `
		INSERT INTO trades
		(ref, date, time, instrument, session, account_size, setup_name,
		entry_price, exit_price, stop_loss, position_size, direction,
		pnl_net, commission, asset_class, multiplier,
		context, bias, duration, mental_state_pre, mental_state_during,
		execution_quality, distractions)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id.New(), e.Date, e.Time, e.Instrument, e.Session, e.AccountSize, e.SetupName,
		e.EntryPrice, e.ExitPrice, e.StopLoss, e.PositionSize, string(e.Direction),
		net, e.Commission, string(e.AssetClass), e.multiplier(),
		e.Notes.Context, e.Notes.Bias, e.Notes.Duration, e.Notes.MentalStatePre, e.Notes.MentalStateDuring,
		e.Notes.ExecutionQuality, e.Notes.Distractions,
	)
	if err != nil {
		return 0, storageErr("insert trade", err)
	}

	tradeID, err := res.LastInsertId()
	if err != nil {
		return 0, storageErr("insert trade", err)
	}
	return tradeID, nil
}

// Delete removes the trade with the given id.
func (j *SQLite) Delete(ctx context.Context, tradeID int64) error {
	res, err := j.db.ExecContext(ctx, `DELETE FROM trades WHERE id = ?`, tradeID)
	if err != nil {
		return storageErr("delete trade", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storageErr("delete trade", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, tradeID)
	}
	return nil
}

func (j *SQLite) Close() error {
	return j.db.Close()
}

// Package tracker holds the command handlers behind the journal's forms:
// record a trade, browse and prune history, run the profit calculator and
// edit settings. Handlers take raw user text and report bad input as
// pnl.ErrInvalidInput.
package tracker

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rustyeddy/tradelog/config"
	"github.com/rustyeddy/tradelog/journal"
	"github.com/rustyeddy/tradelog/market"
	"github.com/rustyeddy/tradelog/pnl"
)

// Ledger is the storage the tracker drives.
type Ledger interface {
	Create(ctx context.Context, e journal.Entry) (int64, error)
	List(ctx context.Context) ([]journal.TradeSummary, error)
	Get(ctx context.Context, tradeID int64) (journal.Trade, error)
	All(ctx context.Context) ([]journal.Trade, error)
	Delete(ctx context.Context, tradeID int64) error
	Stats(ctx context.Context) (journal.Stats, error)
	SaveSettings(ctx context.Context, s config.Settings) error
}

type Tracker struct {
	ledger   Ledger
	settings config.Settings
	log      *zap.Logger
}

// New returns a tracker using settings until UpdateSettings replaces them.
func New(ledger Ledger, settings config.Settings, log *zap.Logger) *Tracker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Tracker{ledger: ledger, settings: settings, log: log}
}

// Settings returns the settings currently in force.
func (t *Tracker) Settings() config.Settings {
	return t.settings
}

func (t *Tracker) commission() decimal.Decimal {
	return decimal.NewFromFloat(t.settings.CommissionPerContract)
}

// TradeForm is the trade tracker form as typed by the user.
type TradeForm struct {
	Date         string
	Time         string
	Instrument   string
	Session      string
	AccountSize  string
	SetupName    string
	EntryPrice   string
	ExitPrice    string
	StopLoss     string
	PositionSize string
	Direction    string
	AssetClass   string // optional: stocks, forex or futures
	Notes        journal.Notes
}

// Saved reports the outcome of SaveTrade.
type Saved struct {
	ID         int64
	NetPnL     decimal.Decimal
	Commission decimal.Decimal
}

func (s Saved) String() string {
	return fmt.Sprintf("Trade saved. Net P&L: %s", s.NetPnL.StringFixed(2))
}

// SaveTrade validates the form, snapshots the current commission and
// records the trade. With an asset class the position size is read as
// shares, lots or contracts and the class multiplier applies; without one
// the size is used as-is with multiplier 1.
func (t *Tracker) SaveTrade(ctx context.Context, f TradeForm) (Saved, error) {
	entry, err := t.entryFromForm(f)
	if err != nil {
		t.log.Debug("trade rejected", zap.Error(err))
		return Saved{}, err
	}

	tradeID, err := t.ledger.Create(ctx, entry)
	if err != nil {
		t.log.Error("save trade", zap.Error(err))
		return Saved{}, err
	}

	net := pnl.NetPnL(entry.PnLInputs())
	t.log.Info("trade saved",
		zap.Int64("id", tradeID),
		zap.String("instrument", entry.Instrument),
		zap.Stringer("direction", entry.Direction),
		zap.String("net_pnl", net.StringFixed(2)),
		zap.Stringer("commission", entry.Commission),
	)
	return Saved{ID: tradeID, NetPnL: net, Commission: entry.Commission}, nil
}

func (t *Tracker) entryFromForm(f TradeForm) (journal.Entry, error) {
	entryPrice, err := pnl.ParseNumber("entry price", f.EntryPrice)
	if err != nil {
		return journal.Entry{}, err
	}
	exitPrice, err := pnl.ParseNumber("exit price", f.ExitPrice)
	if err != nil {
		return journal.Entry{}, err
	}
	qty, err := pnl.ParseNumber("position size", f.PositionSize)
	if err != nil {
		return journal.Entry{}, err
	}
	dir, err := pnl.ParseDirection(f.Direction)
	if err != nil {
		return journal.Entry{}, err
	}
	accountSize, err := pnl.ParseOptional("account size", f.AccountSize)
	if err != nil {
		return journal.Entry{}, err
	}
	stopLoss, err := pnl.ParseOptional("stop loss", f.StopLoss)
	if err != nil {
		return journal.Entry{}, err
	}

	e := journal.Entry{
		Date:         strings.TrimSpace(f.Date),
		Time:         strings.TrimSpace(f.Time),
		Instrument:   strings.TrimSpace(f.Instrument),
		Session:      f.Session,
		SetupName:    f.SetupName,
		AccountSize:  accountSize,
		EntryPrice:   entryPrice,
		ExitPrice:    exitPrice,
		StopLoss:     stopLoss,
		PositionSize: qty,
		Direction:    dir,
		Commission:   t.commission(),
		Multiplier:   decimal.NewFromInt(1),
		Notes:        f.Notes,
	}

	if strings.TrimSpace(f.AssetClass) != "" {
		class, err := market.ParseAssetClass(f.AssetClass)
		if err != nil {
			return journal.Entry{}, fmt.Errorf("%w: %v", pnl.ErrInvalidInput, err)
		}
		e.AssetClass = class
		e.PositionSize = class.Size(qty)
		e.Multiplier = class.Multiplier(e.Instrument)
	}
	return e, nil
}

// History lists recorded trades, newest first.
func (t *Tracker) History(ctx context.Context) ([]journal.TradeSummary, error) {
	return t.ledger.List(ctx)
}

// Stats summarizes every recorded trade.
func (t *Tracker) Stats(ctx context.Context) (journal.Stats, error) {
	return t.ledger.Stats(ctx)
}

// ParseID converts a trade id typed by the user.
func ParseID(s string) (int64, error) {
	tradeID, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || tradeID <= 0 {
		return 0, fmt.Errorf("%w: trade id %q", pnl.ErrInvalidInput, s)
	}
	return tradeID, nil
}

// ShowTrade returns the full record for a trade id.
func (t *Tracker) ShowTrade(ctx context.Context, idText string) (journal.Trade, error) {
	tradeID, err := ParseID(idText)
	if err != nil {
		return journal.Trade{}, err
	}
	return t.ledger.Get(ctx, tradeID)
}

// DeleteTrade removes a trade by id.
func (t *Tracker) DeleteTrade(ctx context.Context, idText string) error {
	tradeID, err := ParseID(idText)
	if err != nil {
		return err
	}
	if err := t.ledger.Delete(ctx, tradeID); err != nil {
		t.log.Warn("delete trade", zap.Int64("id", tradeID), zap.Error(err))
		return err
	}
	t.log.Info("trade deleted", zap.Int64("id", tradeID))
	return nil
}

// SettingsForm carries settings edits. Empty strings and a nil folder
// leave the current value in place.
type SettingsForm struct {
	Commission       string
	TextSize         string
	DarkMode         string
	ScreenshotFolder *string
}

// UpdateSettings applies and persists the edits. On any failure the
// settings in force are unchanged.
func (t *Tracker) UpdateSettings(ctx context.Context, f SettingsForm) (config.Settings, error) {
	next := t.settings

	if strings.TrimSpace(f.Commission) != "" {
		c, err := pnl.ParseNumber("commission", f.Commission)
		if err != nil || c.IsNegative() {
			return t.settings, fmt.Errorf("%w: invalid commission value %q", pnl.ErrInvalidInput, f.Commission)
		}
		next.CommissionPerContract = c.InexactFloat64()
	}
	if strings.TrimSpace(f.TextSize) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(f.TextSize))
		if err != nil {
			return t.settings, fmt.Errorf("%w: invalid text size %q", pnl.ErrInvalidInput, f.TextSize)
		}
		next.TextSize = n
	}
	if strings.TrimSpace(f.DarkMode) != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(f.DarkMode))
		if err != nil {
			return t.settings, fmt.Errorf("%w: invalid dark mode %q", pnl.ErrInvalidInput, f.DarkMode)
		}
		next.DarkMode = b
	}
	if f.ScreenshotFolder != nil {
		next.ScreenshotFolder = *f.ScreenshotFolder
	}

	if err := next.Validate(); err != nil {
		return t.settings, fmt.Errorf("%w: %v", pnl.ErrInvalidInput, err)
	}
	if err := t.ledger.SaveSettings(ctx, next); err != nil {
		t.log.Error("save settings", zap.Error(err))
		return t.settings, err
	}

	t.log.Info("settings updated",
		zap.Float64("commission_per_contract", next.CommissionPerContract),
		zap.Int("text_size", next.TextSize),
		zap.Bool("dark_mode", next.DarkMode),
	)
	t.settings = next
	return next, nil
}

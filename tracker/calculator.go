package tracker

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rustyeddy/tradelog/market"
	"github.com/rustyeddy/tradelog/pnl"
	"github.com/rustyeddy/tradelog/risk"
)

// CalcForm is the profit calculator form. Quantity is shares for stocks,
// lots for forex and contracts for futures. Direction is ignored for
// stocks, which are always computed long.
type CalcForm struct {
	Class     string
	Symbol    string
	Direction string
	Quantity  string
	Entry     string
	Exit      string
}

// Calculation is the calculator's answer and the parameters it used.
type Calculation struct {
	Class      market.AssetClass
	Direction  pnl.Direction
	Size       decimal.Decimal
	Multiplier decimal.Decimal
	Commission decimal.Decimal
	NetPnL     decimal.Decimal
}

func (c Calculation) String() string {
	return fmt.Sprintf("Net P&L: %s | Commission: %s", c.NetPnL.StringFixed(2), c.Commission)
}

// Calculate runs the profit calculator with the current commission. It
// does not touch the ledger.
func (t *Tracker) Calculate(f CalcForm) (Calculation, error) {
	class, err := market.ParseAssetClass(f.Class)
	if err != nil {
		return Calculation{}, fmt.Errorf("%w: %v", pnl.ErrInvalidInput, err)
	}

	qtyField := map[market.AssetClass]string{
		market.Stocks:  "position size",
		market.Forex:   "trade size (lots)",
		market.Futures: "contracts",
	}[class]

	qty, err := pnl.ParseNumber(qtyField, f.Quantity)
	if err != nil {
		return Calculation{}, err
	}
	entry, err := pnl.ParseNumber("entry price", f.Entry)
	if err != nil {
		return Calculation{}, err
	}
	exit, err := pnl.ParseNumber("exit price", f.Exit)
	if err != nil {
		return Calculation{}, err
	}

	dir := pnl.Long
	if class != market.Stocks {
		if dir, err = pnl.ParseDirection(f.Direction); err != nil {
			return Calculation{}, err
		}
	}

	in := pnl.Inputs{
		Entry:      entry,
		Exit:       exit,
		Size:       class.Size(qty),
		Direction:  dir,
		Commission: t.commission(),
		Multiplier: class.Multiplier(f.Symbol),
	}
	return Calculation{
		Class:      class,
		Direction:  dir,
		Size:       in.Size,
		Multiplier: in.Multiplier,
		Commission: in.Commission,
		NetPnL:     pnl.NetPnL(in),
	}, nil
}

// SizeForm asks how large a position may be. RiskPercent is in percent,
// "1" meaning 1% of the account.
type SizeForm struct {
	Class       string
	Symbol      string
	AccountSize string
	RiskPercent string
	Entry       string
	Stop        string
}

// PositionSize is the sizing answer. Quantity is in the unit the trader
// enters for the class: shares, lots or contracts.
type PositionSize struct {
	Class    market.AssetClass
	Quantity decimal.Decimal
	risk.Sizing
}

func (p PositionSize) String() string {
	unit := map[market.AssetClass]string{
		market.Stocks:  "shares",
		market.Forex:   "lots",
		market.Futures: "contracts",
	}[p.Class]
	return fmt.Sprintf("Size: %s %s | Risk: %s over %s", p.Quantity, unit, p.RiskAmount.StringFixed(2), p.StopDistance)
}

// SizePosition sizes a trade so that a stop-out costs the given share of
// the account.
func SizePosition(f SizeForm) (PositionSize, error) {
	class, err := market.ParseAssetClass(f.Class)
	if err != nil {
		return PositionSize{}, fmt.Errorf("%w: %v", pnl.ErrInvalidInput, err)
	}
	account, err := pnl.ParseNumber("account size", f.AccountSize)
	if err != nil {
		return PositionSize{}, err
	}
	pct, err := pnl.ParseNumber("risk percent", f.RiskPercent)
	if err != nil {
		return PositionSize{}, err
	}
	entry, err := pnl.ParseNumber("entry price", f.Entry)
	if err != nil {
		return PositionSize{}, err
	}
	stop, err := pnl.ParseNumber("stop loss", f.Stop)
	if err != nil {
		return PositionSize{}, err
	}
	if !account.IsPositive() || !pct.IsPositive() {
		return PositionSize{}, fmt.Errorf("%w: account size and risk percent must be positive", pnl.ErrInvalidInput)
	}

	sizing, err := risk.SizeForRisk(risk.SizeInputs{
		AccountSize: account,
		RiskPct:     pct.Shift(-2),
		Entry:       entry,
		Stop:        stop,
		Multiplier:  class.Multiplier(f.Symbol),
	})
	if err != nil {
		return PositionSize{}, fmt.Errorf("%w: %v", pnl.ErrInvalidInput, err)
	}

	qty := sizing.Units
	if class == market.Forex {
		qty = qty.Div(decimal.NewFromInt(market.StandardLot))
	}
	return PositionSize{Class: class, Quantity: qty, Sizing: sizing}, nil
}

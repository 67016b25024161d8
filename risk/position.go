package risk

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrNoStopDistance is returned when entry and stop coincide, leaving
// nothing to size against.
var ErrNoStopDistance = errors.New("stop must differ from entry")

// SizeInputs describe a planned trade to size by risk.
type SizeInputs struct {
	AccountSize decimal.Decimal
	RiskPct     decimal.Decimal // fraction, 0.01 = 1%
	Entry       decimal.Decimal
	Stop        decimal.Decimal
	Multiplier  decimal.Decimal // zero means 1
}

// Sizing is the largest whole position whose stop-out loses no more than
// RiskAmount.
type Sizing struct {
	Units        decimal.Decimal
	StopDistance decimal.Decimal
	RiskAmount   decimal.Decimal
}

// SizeForRisk returns the position size, in the same units the P&L
// calculator takes, that risks RiskPct of the account between entry and
// stop.
func SizeForRisk(in SizeInputs) (Sizing, error) {
	dist := in.Entry.Sub(in.Stop).Abs()
	if dist.IsZero() {
		return Sizing{}, ErrNoStopDistance
	}

	mult := in.Multiplier
	if mult.IsZero() {
		mult = decimal.NewFromInt(1)
	}

	riskAmt := in.AccountSize.Mul(in.RiskPct)
	perUnit := dist.Mul(mult)

	return Sizing{
		Units:        riskAmt.Div(perUnit).Floor(),
		StopDistance: dist,
		RiskAmount:   riskAmt,
	}, nil
}

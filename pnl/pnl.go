// Package pnl computes realized profit and loss for a closed trade.
package pnl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidInput is returned for user-entered values that cannot be used in
// a calculation: non-numeric prices or sizes, unknown directions, bad
// commission values.
var ErrInvalidInput = errors.New("invalid input")

// Direction is the stance of a trade.
type Direction string

const (
	Long  Direction = "Long"
	Short Direction = "Short"
)

// ParseDirection accepts "long" or "short" in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "long":
		return Long, nil
	case "short":
		return Short, nil
	}
	return "", fmt.Errorf("%w: direction %q must be Long or Short", ErrInvalidInput, s)
}

func (d Direction) String() string { return string(d) }

// sign is +1 for Long and -1 for Short, matched case-insensitively. Any
// other value is 0, so an unrecognized direction never books a price move.
func (d Direction) sign() decimal.Decimal {
	switch {
	case strings.EqualFold(strings.TrimSpace(string(d)), string(Long)):
		return decimal.NewFromInt(1)
	case strings.EqualFold(strings.TrimSpace(string(d)), string(Short)):
		return decimal.NewFromInt(-1)
	}
	return decimal.Zero
}

// Inputs are the parameters of a closed trade. Size and Multiplier are
// already adjusted for the instrument class by the caller.
type Inputs struct {
	Entry      decimal.Decimal
	Exit       decimal.Decimal
	Size       decimal.Decimal
	Direction  Direction
	Commission decimal.Decimal // per unit of size
	Multiplier decimal.Decimal // zero means 1
}

func (in Inputs) multiplier() decimal.Decimal {
	if in.Multiplier.IsZero() {
		return decimal.NewFromInt(1)
	}
	return in.Multiplier
}

// Gross returns the price P&L before commission.
func Gross(in Inputs) decimal.Decimal {
	move := in.Exit.Sub(in.Entry).Mul(in.Direction.sign())
	return move.Mul(in.Size).Mul(in.multiplier())
}

// CommissionCost is the total commission charged for the trade.
func CommissionCost(in Inputs) decimal.Decimal {
	return in.Commission.Mul(in.Size)
}

// NetPnL returns gross P&L minus commission. No rounding is applied.
func NetPnL(in Inputs) decimal.Decimal {
	return Gross(in).Sub(CommissionCost(in))
}

// ParseNumber converts user-entered text for the named field.
func ParseNumber(field, s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s %q is not a number", ErrInvalidInput, field, s)
	}
	return d, nil
}

// ParseOptional is ParseNumber for fields that may be left blank. Blank
// text yields an invalid NullDecimal.
func ParseOptional(field, s string) (decimal.NullDecimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.NullDecimal{}, nil
	}
	v, err := ParseNumber(field, s)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(v), nil
}

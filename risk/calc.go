package risk

import "github.com/shopspring/decimal"

// PlannedRisk is the currency amount lost if the stop is hit.
// A zero stop means no stop was recorded and the risk is unknown (zero).
func PlannedRisk(entry, stop, size, multiplier decimal.Decimal) decimal.Decimal {
	if stop.IsZero() {
		return decimal.Zero
	}
	if multiplier.IsZero() {
		multiplier = decimal.NewFromInt(1)
	}
	return entry.Sub(stop).Abs().Mul(size).Mul(multiplier)
}

// RiskPct is planned risk as a fraction of the account. ok is false when
// the account size is not positive.
func RiskPct(plannedRisk, accountSize decimal.Decimal) (pct decimal.Decimal, ok bool) {
	if !accountSize.IsPositive() {
		return decimal.Zero, false
	}
	return plannedRisk.Div(accountSize), true
}

// RMultiple expresses the net result in units of planned risk.
func RMultiple(net, plannedRisk decimal.Decimal) decimal.Decimal {
	if plannedRisk.IsZero() {
		return decimal.Zero
	}
	return net.Div(plannedRisk)
}

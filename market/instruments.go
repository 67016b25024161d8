// market/instruments.go
package market

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// AssetClass selects how a quantity and price move turn into currency P&L.
type AssetClass string

const (
	Stocks  AssetClass = "stocks"
	Forex   AssetClass = "forex"
	Futures AssetClass = "futures"
)

// StandardLot is the number of base-currency units in one forex lot.
const StandardLot = 100_000

// PipMultiplier approximates pip value for forex P&L.
var PipMultiplier = decimal.RequireFromString("0.0001")

// ParseAssetClass accepts the class name in any case.
func ParseAssetClass(s string) (AssetClass, error) {
	switch c := AssetClass(strings.ToLower(strings.TrimSpace(s))); c {
	case Stocks, Forex, Futures:
		return c, nil
	}
	return "", fmt.Errorf("unknown asset class %q (want stocks, forex or futures)", s)
}

// Size converts the quantity a trader enters (shares, lots or contracts)
// into the size the P&L calculator works with.
func (c AssetClass) Size(quantity decimal.Decimal) decimal.Decimal {
	if c == Forex {
		return quantity.Mul(decimal.NewFromInt(StandardLot))
	}
	return quantity
}

// Multiplier returns the price multiplier for symbol within the class.
func (c AssetClass) Multiplier(symbol string) decimal.Decimal {
	switch c {
	case Forex:
		return PipMultiplier
	case Futures:
		return FuturesMultiplier(symbol)
	}
	return decimal.NewFromInt(1)
}

// ContractSpec describes a futures contract on the reference sheet.
type ContractSpec struct {
	Symbol     string
	Name       string
	TickSize   string
	TickValue  string
	Contract   string
	Multiplier decimal.Decimal
}

func (s ContractSpec) String() string {
	return fmt.Sprintf("%s | Tick Size: %s = %s | Contract: %s", s.Name, s.TickSize, s.TickValue, s.Contract)
}

var ContractSpecs = map[string]ContractSpec{
	"CL1": {
		Symbol:     "CL1",
		Name:       "Crude Oil",
		TickSize:   "0.01",
		TickValue:  "$10",
		Contract:   "1,000 barrels",
		Multiplier: decimal.NewFromInt(1000),
	},
	"ES1": {
		Symbol:     "ES1",
		Name:       "E-mini S&P 500",
		TickSize:   "0.25",
		TickValue:  "$12.50",
		Contract:   "$50 x Index",
		Multiplier: decimal.NewFromInt(50),
	},
	"GC1": {
		Symbol:     "GC1",
		Name:       "Gold",
		TickSize:   "0.10",
		TickValue:  "$10",
		Contract:   "100 troy ounces",
		Multiplier: decimal.NewFromInt(100),
	},
	"NQ1": {
		Symbol:     "NQ1",
		Name:       "E-mini Nasdaq",
		TickSize:   "0.25",
		TickValue:  "$5",
		Contract:   "$20 x Index",
		Multiplier: decimal.NewFromInt(20),
	},
	"PA1": {
		Symbol:     "PA1",
		Name:       "Palladium",
		TickSize:   "0.50",
		TickValue:  "$50",
		Contract:   "100 troy ounces",
		Multiplier: decimal.NewFromInt(100),
	},
	"PL1": {
		Symbol:     "PL1",
		Name:       "Platinum",
		TickSize:   "0.10",
		TickValue:  "$5",
		Contract:   "50 troy ounces",
		Multiplier: decimal.NewFromInt(50),
	},
}

// FuturesMultiplier looks symbol up case-insensitively; unknown symbols get 1.
func FuturesMultiplier(symbol string) decimal.Decimal {
	if spec, ok := ContractSpecs[strings.ToUpper(strings.TrimSpace(symbol))]; ok {
		return spec.Multiplier
	}
	return decimal.NewFromInt(1)
}

// SortedSpecs returns the reference sheet ordered by symbol.
func SortedSpecs() []ContractSpec {
	specs := make([]ContractSpec, 0, len(ContractSpecs))
	for _, s := range ContractSpecs {
		specs = append(specs, s)
	}
	sort.Slice(specs, func(i, j int) bool { return specs[i].Symbol < specs[j].Symbol })
	return specs
}

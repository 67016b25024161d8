package risk

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestPlannedRisk(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		entry      string
		stop       string
		size       string
		multiplier string
		want       string
	}{
		{"long_stock", "100", "98", "10", "1", "20"},
		{"short_stop_above", "100", "101.5", "10", "1", "15"},
		{"es1_contracts", "4000", "3995", "2", "50", "500"},
		{"no_stop", "100", "0", "10", "1", "0"},
		{"zero_multiplier", "10", "9", "3", "0", "3"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := PlannedRisk(d(tt.entry), d(tt.stop), d(tt.size), d(tt.multiplier))
			assert.True(t, d(tt.want).Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestRiskPct(t *testing.T) {
	t.Parallel()

	pct, ok := RiskPct(d("50"), d("10000"))
	assert.True(t, ok)
	assert.True(t, d("0.005").Equal(pct))

	_, ok = RiskPct(d("50"), decimal.Zero)
	assert.False(t, ok)

	_, ok = RiskPct(d("50"), d("-100"))
	assert.False(t, ok)
}

func TestRMultiple(t *testing.T) {
	t.Parallel()

	assert.True(t, d("2").Equal(RMultiple(d("40"), d("20"))))
	assert.True(t, d("-0.5").Equal(RMultiple(d("-10"), d("20"))))
	assert.True(t, RMultiple(d("40"), decimal.Zero).IsZero())
}

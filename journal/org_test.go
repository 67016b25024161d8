package journal

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/tradelog/id"
	"github.com/rustyeddy/tradelog/market"
	"github.com/rustyeddy/tradelog/pnl"
)

func TestFormatTradeOrg(t *testing.T) {
	t.Parallel()

	trade := Trade{ID: 12, Ref: "01JPA3M6Q2XYZABCDEFGHJKMNP", NetPnL: d("96.5"), Entry: testEntry()}

	result := FormatTradeOrg(trade)

	assert.Contains(t, result, "** Trade #12: AAPL Long (01JPA3M6Q2)")
	assert.Contains(t, result, ":PROPERTIES:")
	assert.Contains(t, result, ":REF: 01JPA3M6Q2XYZABCDEFGHJKMNP")
	assert.Contains(t, result, ":ENTRY_PRICE: 100")
	assert.Contains(t, result, ":EXIT_PRICE: 110")
	assert.Contains(t, result, ":NET_PL: 96.50")
	assert.Contains(t, result, ":STOP_LOSS: 98")
	assert.Contains(t, result, ":PLANNED_RISK: 20.00")
	assert.Contains(t, result, ":R_MULTIPLE: 4.83")
	assert.Contains(t, result, ":RISK_PCT: 0.08")
	assert.Contains(t, result, ":ACCOUNT_SIZE: 25000.00")
	assert.Contains(t, result, ":END:")
	assert.NotContains(t, result, ":ASSET_CLASS:")

	assert.Contains(t, result, "*** Context\n- gap up")
	assert.Contains(t, result, "*** Mental State During\n- focused")
	assert.Contains(t, result, "*** Distractions\n- none")
}

func TestFormatTradeOrgWithoutStop(t *testing.T) {
	t.Parallel()

	e := testEntry()
	e.StopLoss = decimal.NullDecimal{}
	e.AccountSize = decimal.NullDecimal{}
	e.AssetClass = market.Futures
	e.Direction = pnl.Short

	result := FormatTradeOrg(Trade{ID: 3, Ref: "short", Entry: e})

	assert.Contains(t, result, "** Trade #3: AAPL Short (short)")
	assert.Contains(t, result, ":ASSET_CLASS: futures")
	assert.NotContains(t, result, ":STOP_LOSS:")
	assert.NotContains(t, result, ":PLANNED_RISK:")
	assert.NotContains(t, result, ":ACCOUNT_SIZE:")
	assert.NotContains(t, result, ":RECORDED:")
}

func TestFormatTradeOrgRecordedFromRef(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, time.March, 14, 9, 45, 30, 0, time.UTC)
	ref := id.NewAt(at)

	result := FormatTradeOrg(Trade{ID: 7, Ref: ref, Entry: testEntry()})

	assert.Contains(t, result, ":REF: "+ref+"\n:RECORDED: [2025-03-14 Fri 09:45]\n")
}

func TestFormatTradesOrg(t *testing.T) {
	t.Parallel()

	trades := []Trade{
		{ID: 1, Ref: "a", Entry: testEntry()},
		{ID: 2, Ref: "b", Entry: testEntry()},
	}

	result := FormatTradesOrg(trades)
	assert.Equal(t, 2, strings.Count(result, ":PROPERTIES:"))
	assert.Contains(t, result, "\n\n\n** Trade #2")

	assert.Equal(t, "", FormatTradesOrg(nil))
}

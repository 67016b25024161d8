package journal

import (
	"fmt"
	"strings"

	"github.com/rustyeddy/tradelog/id"
	"github.com/rustyeddy/tradelog/risk"
)

// FormatTradeOrg renders a trade as an Org-mode block. Structured facts go
// in the PROPERTIES drawer; the annotations become sub-headings.
func FormatTradeOrg(t Trade) string {
	var b strings.Builder
	fmt.Fprintf(&b, "** Trade #%d: %s %s (%s)\n", t.ID, t.Instrument, t.Direction, shortRef(t.Ref))
	b.WriteString(":PROPERTIES:\n")
	fmt.Fprintf(&b, ":ID: %d\n", t.ID)
	fmt.Fprintf(&b, ":REF: %s\n", t.Ref)
	if at, err := id.Time(t.Ref); err == nil {
		fmt.Fprintf(&b, ":RECORDED: [%s]\n", at.UTC().Format("2006-01-02 Mon 15:04"))
	}
	fmt.Fprintf(&b, ":DATE: %s\n", t.Date)
	fmt.Fprintf(&b, ":TIME: %s\n", t.Time)
	fmt.Fprintf(&b, ":INSTRUMENT: %s\n", t.Instrument)
	if t.AssetClass != "" {
		fmt.Fprintf(&b, ":ASSET_CLASS: %s\n", t.AssetClass)
	}
	fmt.Fprintf(&b, ":SESSION: %s\n", t.Session)
	fmt.Fprintf(&b, ":SETUP: %s\n", t.SetupName)
	fmt.Fprintf(&b, ":DIRECTION: %s\n", t.Direction)
	fmt.Fprintf(&b, ":ENTRY_PRICE: %s\n", t.EntryPrice)
	fmt.Fprintf(&b, ":EXIT_PRICE: %s\n", t.ExitPrice)
	fmt.Fprintf(&b, ":POSITION_SIZE: %s\n", t.PositionSize)
	fmt.Fprintf(&b, ":MULTIPLIER: %s\n", t.multiplier())
	fmt.Fprintf(&b, ":COMMISSION: %s\n", t.Commission)
	fmt.Fprintf(&b, ":NET_PL: %s\n", t.NetPnL.StringFixed(2))

	if t.StopLoss.Valid {
		fmt.Fprintf(&b, ":STOP_LOSS: %s\n", t.StopLoss.Decimal)
		planned := risk.PlannedRisk(t.EntryPrice, t.StopLoss.Decimal, t.PositionSize, t.multiplier())
		if planned.IsPositive() {
			fmt.Fprintf(&b, ":PLANNED_RISK: %s\n", planned.StringFixed(2))
			fmt.Fprintf(&b, ":R_MULTIPLE: %s\n", risk.RMultiple(t.NetPnL, planned).StringFixed(2))
			if t.AccountSize.Valid {
				if pct, ok := risk.RiskPct(planned, t.AccountSize.Decimal); ok {
					fmt.Fprintf(&b, ":RISK_PCT: %s\n", pct.Shift(2).StringFixed(2))
				}
			}
		}
	}
	if t.AccountSize.Valid {
		fmt.Fprintf(&b, ":ACCOUNT_SIZE: %s\n", t.AccountSize.Decimal.StringFixed(2))
	}
	b.WriteString(":END:\n")

	notes := []struct{ heading, text string }{
		{"Context", t.Notes.Context},
		{"Bias", t.Notes.Bias},
		{"Duration", t.Notes.Duration},
		{"Mental State Pre", t.Notes.MentalStatePre},
		{"Mental State During", t.Notes.MentalStateDuring},
		{"Execution Quality", t.Notes.ExecutionQuality},
		{"Distractions", t.Notes.Distractions},
	}
	for _, n := range notes {
		fmt.Fprintf(&b, "\n*** %s\n- %s\n", n.heading, n.text)
	}

	return b.String()
}

// FormatTradesOrg renders multiple trades separated by blank lines.
func FormatTradesOrg(trades []Trade) string {
	var b strings.Builder
	for i, t := range trades {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatTradeOrg(t))
	}
	return b.String()
}

func shortRef(full string) string {
	if len(full) <= 10 {
		return full
	}
	return full[:10]
}

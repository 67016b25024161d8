package journal

import (
	"io"
	"text/template"
	"time"

	"github.com/shopspring/decimal"
)

// Report is the ledger summary rendered by WriteReportOrg.
type Report struct {
	Title   string
	Created time.Time
	Stats   Stats
	Recent  []TradeSummary
}

var reportFuncs = template.FuncMap{
	"money": func(d decimal.Decimal) string { return d.StringFixed(2) },
	"pct":   func(d decimal.Decimal) string { return d.Shift(2).StringFixed(1) },
	"orNow": func(t time.Time) time.Time {
		if t.IsZero() {
			return time.Now()
		}
		return t
	},
}

var reportTemplate = template.Must(template.New("report").Funcs(reportFuncs).Parse(ReportOrgTemplate))

// WriteReportOrg renders r as an Org-mode document.
func WriteReportOrg(w io.Writer, r Report) error {
	return reportTemplate.Execute(w, r)
}

const ReportOrgTemplate = `* JOURNAL: {{if .Title}}{{.Title}}{{else}}Trading Journal{{end}}
:PROPERTIES:
:CREATED:     [{{(orNow .Created).Format "2006-01-02 Mon 15:04"}}]
:TRADES:      {{.Stats.Trades}}
:WINS:        {{.Stats.Wins}}
:LOSSES:      {{.Stats.Losses}}
:NET_PL:      {{money .Stats.NetPnL}}
:WIN_RATE:    {{pct .Stats.WinRate}}
:PROFIT_FAC:  {{if .Stats.ProfitFactor.IsZero}}(no losses){{else}}{{printf "%.2f" .Stats.ProfitFactor.InexactFloat64}}{{end}}
:END:

** Performance Summary
- Net P/L:        *{{money .Stats.NetPnL}}*
- Gross Profit:   *{{money .Stats.GrossProfit}}*
- Gross Loss:     *{{money .Stats.GrossLoss}}*
- Win Rate:       *{{pct .Stats.WinRate}}%*

** Trade Distribution
| Outcome | Count |
|---------+-------|
| Wins    | {{.Stats.Wins}} |
| Losses  | {{.Stats.Losses}} |
| Total   | {{.Stats.Trades}} |
{{- if .Recent}}

** Recent Trades
| ID | Date | Instrument | Net P&L | Commission |
|----+------+------------+---------+------------|
{{- range .Recent}}
| {{.ID}} | {{.Date}} | {{.Instrument}} | {{money .NetPnL}} | {{.Commission}} |
{{- end}}
{{- end}}
`

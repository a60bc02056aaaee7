package renderer

import (
	"github.com/etnz/pnl"
)

// Report is the view of a pnl.Report, with amounts already formatted.
type Report struct {
	Method string
	Trades int
	Rows   []ReportRow
	Total  string
}

// ReportRow is a symbol line of the report.
type ReportRow struct {
	Symbol       string
	Realizations int
	Realized     string
	OpenLong     int64
	OpenShort    int64
}

// NewReport formats r. Amounts are displayed in currency when it is a known
// ISO code.
func NewReport(r *pnl.Report, currency string) *Report {
	v := &Report{
		Method: r.Method.String(),
		Trades: r.Trades,
		Total:  signedAmount(r.Total, currency, r.Precision),
	}
	for _, s := range r.Symbols {
		v.Rows = append(v.Rows, ReportRow{
			Symbol:       s.Symbol,
			Realizations: s.Realizations,
			Realized:     signedAmount(s.Realized, currency, r.Precision),
			OpenLong:     s.OpenLong,
			OpenShort:    s.OpenShort,
		})
	}
	return v
}

package pnl

import (
	"github.com/shopspring/decimal"
)

// SymbolReport summarizes the activity of a single symbol.
type SymbolReport struct {
	Symbol       string
	Realizations int             // number of trades that realized a PnL
	Realized     decimal.Decimal // sum of the realized PnL
	OpenLong     int64           // open quantity on the buy side
	OpenShort    int64           // open quantity on the sell side
}

// Report summarizes an engine's results and open positions per symbol.
type Report struct {
	Method    AccountingMethod
	Precision int32
	Trades    int // number of trades processed
	Symbols   []SymbolReport
	Total     decimal.Decimal
}

// NewReport builds the report of the current state of e.
func NewReport(e *Engine) *Report {
	rep := &Report{
		Method:    e.Method(),
		Precision: e.Precision(),
		Trades:    e.Processed(),
		Total:     decimal.Zero,
	}
	index := make(map[string]*SymbolReport)
	for symbol := range e.Symbols() {
		rep.Symbols = append(rep.Symbols, SymbolReport{
			Symbol:    symbol,
			Realized:  decimal.Zero,
			OpenLong:  e.OpenQuantity(symbol, Buy),
			OpenShort: e.OpenQuantity(symbol, Sell),
		})
	}
	for i := range rep.Symbols {
		index[rep.Symbols[i].Symbol] = &rep.Symbols[i]
	}
	for _, r := range e.results {
		s := index[r.Symbol]
		s.Realizations++
		s.Realized = s.Realized.Add(r.PnL)
		rep.Total = rep.Total.Add(r.PnL)
	}
	return rep
}

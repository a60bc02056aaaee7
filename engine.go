package pnl

import (
	"iter"
	"slices"

	"github.com/shopspring/decimal"
)

// Engine computes realized PnL over an ordered sequence of trades.
//
// Trades must be processed in their original order: each one matches against
// the lots left open by the previous ones. An Engine is not safe for
// concurrent use.
type Engine struct {
	method    AccountingMethod
	precision int32
	ledger    *Ledger
	results   []PnLResult
	processed int
}

// NewEngine returns an empty engine rounding PnL to DefaultPrecision decimals.
func NewEngine(method AccountingMethod) *Engine {
	return NewEngineWithPrecision(method, DefaultPrecision)
}

// NewEngineWithPrecision returns an empty engine rounding PnL to places decimals.
func NewEngineWithPrecision(method AccountingMethod, places int32) *Engine {
	return &Engine{
		method:    method,
		precision: places,
		ledger:    NewLedger(),
	}
}

func (e *Engine) Method() AccountingMethod { return e.method }
func (e *Engine) Precision() int32         { return e.precision }

// ProcessTrade matches a single trade and records its result, if any.
//
// It panics if the trade does not pass Trade.Validate.
func (e *Engine) ProcessTrade(t Trade) (PnLResult, bool) {
	r, ok := e.ledger.match(t, e.method, e.precision)
	e.processed++
	if ok {
		e.results = append(e.results, r)
	}
	return r, ok
}

// Process processes trades in order.
func (e *Engine) Process(trades []Trade) {
	e.ProcessSeq(slices.Values(trades))
}

// ProcessSeq processes trades in the order the sequence yields them.
func (e *Engine) ProcessSeq(trades iter.Seq[Trade]) {
	for t := range trades {
		e.ProcessTrade(t)
	}
}

// Results returns a copy of the results, in emission order.
func (e *Engine) Results() []PnLResult { return slices.Clone(e.results) }

// ExtractResults returns the results and forgets them. Open lots are kept.
func (e *Engine) ExtractResults() []PnLResult {
	r := e.results
	e.results = nil
	return r
}

// Processed returns the number of trades processed since the last Reset.
func (e *Engine) Processed() int { return e.processed }

// Len returns the number of results.
func (e *Engine) Len() int    { return len(e.results) }
func (e *Engine) Empty() bool { return len(e.results) == 0 }

// Reset drops every open lot and every result.
func (e *Engine) Reset() {
	e.ledger.Reset()
	e.results = nil
	e.processed = 0
}

// OpenLot is a snapshot of an open lot.
type OpenLot struct {
	Symbol    string
	Side      Side
	Price     decimal.Decimal
	Quantity  int64
	Timestamp int64
}

// OpenLots returns a snapshot of every open lot, sorted by symbol, then side
// (buy first), then in the order the method would close them.
func (e *Engine) OpenLots() []OpenLot {
	var list []OpenLot
	for symbol := range e.ledger.Symbols() {
		for _, side := range []Side{Buy, Sell} {
			lots := e.ledger.Lots(symbol, side)
			if e.method == LIFO {
				slices.Reverse(lots)
			}
			for _, l := range lots {
				list = append(list, OpenLot{symbol, side, l.price, l.quantity, l.timestamp})
			}
		}
	}
	return list
}

// OpenQuantity returns the open quantity of a symbol on a side.
func (e *Engine) OpenQuantity(symbol string, side Side) int64 {
	return e.ledger.OpenQuantity(symbol, side)
}

// Symbols iterates over every symbol the engine has seen, in alphabetical order.
func (e *Engine) Symbols() iter.Seq[string] {
	return e.ledger.Symbols()
}

package pnl

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PnLResult is the realized PnL of one trade.
type PnLResult struct {
	Timestamp int64 // of the trade that realized the PnL
	Symbol    string
	PnL       decimal.Decimal
}

func (r PnLResult) String() string {
	return fmt.Sprintf("%d,%s,%s", r.Timestamp, r.Symbol, r.PnL)
}

// MarshalJSON writes the result as an ordered object.
func (r PnLResult) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("timestamp", r.Timestamp)
	w.Append("symbol", r.Symbol)
	w.Append("pnl", r.PnL)
	return w.MarshalJSON()
}

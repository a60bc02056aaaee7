package pnl

import "github.com/shopspring/decimal"

// DefaultPrecision is the number of decimals realized PnL is rounded to.
const DefaultPrecision int32 = 2

// match closes the lots of the side opposite to t, using method to pick
// the lot to close, and opens a lot with the residual quantity if any.
//
// Contributions are summed exactly and the total is rounded once to places
// decimals. ok is false when the trade realized nothing, that is when it only
// opened a position or when the rounded total is below epsilon.
func (l *Ledger) match(t Trade, method AccountingMethod, places int32) (r PnLResult, ok bool) {
	if err := t.Validate(); err != nil {
		panic(err)
	}

	opposite := l.queue(t.Symbol, t.Side.Opposite())
	if len(*opposite) == 0 {
		l.Append(t.Symbol, t.Side, NewLot(t.Price, t.Quantity, t.Timestamp))
		return PnLResult{}, false
	}

	remaining := t.Quantity
	total := decimal.Zero
	for remaining > 0 {
		lot := opposite.next(method)
		if lot == nil {
			break
		}
		closed := min(remaining, lot.quantity)
		total = total.Add(realized(t, lot.price, closed))
		opposite.reduce(method, closed)
		remaining -= closed
	}

	if remaining > 0 {
		// The opposite side is flat: the trade flips the position.
		l.Append(t.Symbol, t.Side, NewLot(t.Price, remaining, t.Timestamp))
	}

	total = round(total, places)
	if total.Abs().LessThanOrEqual(epsilon) {
		return PnLResult{}, false
	}
	return PnLResult{Timestamp: t.Timestamp, Symbol: t.Symbol, PnL: total}, true
}

// realized returns the PnL of closing quantity units opened at price with t.
// A sell closes a long lot, a buy covers a short lot.
func realized(t Trade, price decimal.Decimal, quantity int64) decimal.Decimal {
	q := decimal.NewFromInt(quantity)
	if t.IsSell() {
		return q.Mul(t.Price.Sub(price))
	}
	return q.Mul(price.Sub(t.Price))
}

package pnl

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

// B is a helper for tests to create a buy trade from const.
func B(ts int64, symbol string, price float64, quantity int64) Trade {
	return NewTrade(ts, symbol, price, quantity, Buy)
}

// S is a helper for tests to create a sell trade from const.
func S(ts int64, symbol string, price float64, quantity int64) Trade {
	return NewTrade(ts, symbol, price, quantity, Sell)
}

// D is a helper for tests to create a decimal from a literal.
func D(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// R is a helper for tests to create an expected result.
func R(ts int64, symbol string, pnl string) PnLResult {
	return PnLResult{Timestamp: ts, Symbol: symbol, PnL: D(pnl)}
}

// decimalComparer makes cmp compare decimals by value, 100 == 100.00.
var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

// openTestFile opens a file for the duration of the test.
func openTestFile(t *testing.T, name string) *os.File {
	t.Helper()
	f, err := os.Open(name)
	if err != nil {
		t.Fatalf("failed to open %s: %v", name, err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

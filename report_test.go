package pnl

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewReport(t *testing.T) {
	e := NewEngine(FIFO)
	e.Process([]Trade{
		B(1, "AAPL", 150, 100),
		S(2, "AAPL", 151, 40),
		S(3, "AAPL", 149, 20),
		S(4, "MSFT", 300, 5),
		B(5, "GOOG", 140, 10),
		S(6, "GOOG", 141, 10),
	})

	want := &Report{
		Method:    FIFO,
		Precision: 2,
		Trades:    6,
		Symbols: []SymbolReport{
			{Symbol: "AAPL", Realizations: 2, Realized: D("20"), OpenLong: 40},
			{Symbol: "GOOG", Realizations: 1, Realized: D("10")},
			{Symbol: "MSFT", Realized: D("0"), OpenShort: 5},
		},
		Total: D("30"),
	}
	if diff := cmp.Diff(want, NewReport(e), decimalComparer); diff != "" {
		t.Errorf("NewReport() mismatch (-want +got):\n%s", diff)
	}
}

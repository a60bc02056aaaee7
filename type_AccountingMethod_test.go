package pnl

import "testing"

func TestParseAccountingMethod(t *testing.T) {
	testCases := []struct {
		input   string
		want    AccountingMethod
		wantErr bool
	}{
		{"fifo", FIFO, false},
		{"lifo", LIFO, false},
		{"LIFO", LIFO, false},
		{" fifo ", FIFO, false},
		{"average", 0, true},
		{"", 0, true},
	}
	for _, tc := range testCases {
		got, err := ParseAccountingMethod(tc.input)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseAccountingMethod(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && got != tc.want {
			t.Errorf("ParseAccountingMethod(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
	for _, m := range AccountingMethods() {
		if got, err := ParseAccountingMethod(m.String()); err != nil || got != m {
			t.Errorf("ParseAccountingMethod(%q) = %v, %v", m.String(), got, err)
		}
	}
}

func TestParseSide(t *testing.T) {
	testCases := []struct {
		input   string
		want    Side
		wantErr bool
	}{
		{"B", Buy, false},
		{"S", Sell, false},
		{"b", Buy, false},
		{"sell", Sell, false},
		{"BUY", Buy, false},
		{"X", 0, true},
		{"", 0, true},
	}
	for _, tc := range testCases {
		got, err := ParseSide(tc.input)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseSide(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && got != tc.want {
			t.Errorf("ParseSide(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
	if Buy.Opposite() != Sell || Sell.Opposite() != Buy {
		t.Error("Opposite() is not symmetric")
	}
}

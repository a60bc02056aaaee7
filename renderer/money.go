package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// formatAmount formats an amount in currency, or as a plain decimal with
// places digits if currency is empty or unknown.
func formatAmount(d decimal.Decimal, currency string, places int32) string {
	if currency == "" {
		return d.StringFixed(places)
	}
	cur := money.GetCurrency(currency)
	if cur == nil {
		return d.StringFixed(places) + " " + currency
	}
	minor := d.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// signedAmount is formatAmount with a "+" for gains, and "-" for nothing.
func signedAmount(d decimal.Decimal, currency string, places int32) string {
	switch {
	case d.IsZero():
		return "-"
	case d.IsPositive():
		return "+" + formatAmount(d, currency, places)
	default:
		return formatAmount(d, currency, places)
	}
}

package pnl

import (
	"fmt"
	"strings"
)

// Side is the direction of a trade, or the side of the ledger a lot is held on.
type Side int

const (
	Buy Side = iota
	Sell
)

// Opposite returns the side a trade of side s closes against.
func (s Side) Opposite() Side {
	if s == Buy {
		return Sell
	}
	return Buy
}

func (s Side) IsValid() bool { return s == Buy || s == Sell }

func (s Side) String() string {
	switch s {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "unknown"
	}
}

// ParseSide parses "B", "S", "BUY" or "SELL", regardless of case.
func ParseSide(s string) (Side, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "B", "BUY":
		return Buy, nil
	case "S", "SELL":
		return Sell, nil
	default:
		return 0, fmt.Errorf("invalid trade side: %q", s)
	}
}

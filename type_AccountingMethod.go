package pnl

import (
	"fmt"
	"strings"
)

// AccountingMethod defines which open lot is closed first by an opposing trade.
type AccountingMethod int

const (
	// FIFO (First-In, First-Out) closes the oldest open lot first.
	FIFO AccountingMethod = iota
	// LIFO (Last-In, First-Out) closes the most recently opened lot first.
	LIFO
)

func (m AccountingMethod) String() string {
	switch m {
	case FIFO:
		return "fifo"
	case LIFO:
		return "lifo"
	default:
		return "unknown"
	}
}

// ParseAccountingMethod parses a string into an AccountingMethod.
func ParseAccountingMethod(s string) (AccountingMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fifo":
		return FIFO, nil
	case "lifo":
		return LIFO, nil
	default:
		return 0, fmt.Errorf("unknown accounting method: %q", s)
	}
}

// AccountingMethods lists the supported methods, in declaration order.
func AccountingMethods() []AccountingMethod { return []AccountingMethod{FIFO, LIFO} }

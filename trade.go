package pnl

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidTrade is wrapped by every error reported by Trade.Validate.
var ErrInvalidTrade = errors.New("invalid trade")

// Trade is an executed trade, the input event of the Engine.
//
// Trades are plain values: the Engine copies what it needs (price, timestamp,
// quantity) and never keeps a reference to the trade itself.
type Trade struct {
	Timestamp int64
	Symbol    string
	Price     decimal.Decimal
	Quantity  int64
	Side      Side
}

// NewTrade creates a trade from any numeric price type.
func NewTrade[T Number](timestamp int64, symbol string, price T, quantity int64, side Side) Trade {
	return Trade{
		Timestamp: timestamp,
		Symbol:    symbol,
		Price:     newDecimal(price),
		Quantity:  quantity,
		Side:      side,
	}
}

func (t Trade) IsBuy() bool  { return t.Side == Buy }
func (t Trade) IsSell() bool { return t.Side == Sell }

// Validate checks the trade contract: positive price and quantity, a known
// side and a symbol.
func (t Trade) Validate() error {
	switch {
	case t.Symbol == "":
		return fmt.Errorf("%w: missing symbol", ErrInvalidTrade)
	case !t.Side.IsValid():
		return fmt.Errorf("%w: unknown side %d", ErrInvalidTrade, int(t.Side))
	case !t.Price.IsPositive():
		return fmt.Errorf("%w: price must be positive, got %s", ErrInvalidTrade, t.Price)
	case t.Quantity <= 0:
		return fmt.Errorf("%w: quantity must be positive, got %d", ErrInvalidTrade, t.Quantity)
	}
	return nil
}

func (t Trade) String() string {
	return fmt.Sprintf("Trade{timestamp=%d, symbol=%s, price=%s, quantity=%d, side=%s}",
		t.Timestamp, t.Symbol, t.Price, t.Quantity, t.Side)
}

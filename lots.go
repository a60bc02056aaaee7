package pnl

import (
	"iter"
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// Lot is an open quantity held at a fixed price since a given timestamp.
//
// Only the quantity of a lot changes, and it only ever decreases.
type Lot struct {
	price     decimal.Decimal
	quantity  int64
	timestamp int64
}

// NewLot creates an open lot.
func NewLot(price decimal.Decimal, quantity, timestamp int64) Lot {
	return Lot{price: price, quantity: quantity, timestamp: timestamp}
}

func (l Lot) Price() decimal.Decimal { return l.price }
func (l Lot) Quantity() int64        { return l.quantity }
func (l Lot) Timestamp() int64       { return l.timestamp }
func (l Lot) IsEmpty() bool          { return l.quantity == 0 }

// reduce decreases the quantity by amount, stopping at zero.
func (l *Lot) reduce(amount int64) {
	if amount >= l.quantity {
		l.quantity = 0
		return
	}
	l.quantity -= amount
}

// lots is a queue of open lots in arrival order: the oldest lot is first.
type lots []Lot

// next returns the lot the method closes first, or nil if the queue is empty.
func (l lots) next(method AccountingMethod) *Lot {
	if len(l) == 0 {
		return nil
	}
	if method == LIFO {
		return &l[len(l)-1]
	}
	return &l[0]
}

// reduce decreases the lot selected by method and pops it when exhausted.
func (l *lots) reduce(method AccountingMethod, amount int64) {
	lot := l.next(method)
	if lot == nil {
		return
	}
	lot.reduce(amount)
	if !lot.IsEmpty() {
		return
	}
	q := *l
	if method == LIFO {
		q = q[:len(q)-1]
	} else {
		q[0] = Lot{}
		q = q[1:]
	}
	if len(q) == 0 {
		q = nil // release the backing array
	}
	*l = q
}

// quantity returns the total open quantity in the queue.
func (l lots) quantity() (total int64) {
	for _, lot := range l {
		total += lot.quantity
	}
	return total
}

// book holds both sides of a symbol.
type book struct {
	buys  lots
	sells lots
}

func (b *book) side(s Side) *lots {
	if s == Buy {
		return &b.buys
	}
	return &b.sells
}

// Ledger holds, per symbol, the open lots of each side in arrival order.
//
// Its zero value is not ready to use, call NewLedger.
type Ledger struct {
	books map[string]*book
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{books: make(map[string]*book)}
}

// queue returns the lot queue of a symbol's side, creating the book if needed.
func (l *Ledger) queue(symbol string, side Side) *lots {
	b, ok := l.books[symbol]
	if !ok {
		b = new(book)
		l.books[symbol] = b
	}
	return b.side(side)
}

// Append adds lot at the tail of the symbol's side.
func (l *Ledger) Append(symbol string, side Side, lot Lot) {
	q := l.queue(symbol, side)
	*q = append(*q, lot)
}

// NextToClose returns a copy of the lot the method would close first on a
// symbol's side, or false if that side is empty.
func (l *Ledger) NextToClose(symbol string, side Side, method AccountingMethod) (Lot, bool) {
	b, ok := l.books[symbol]
	if !ok {
		return Lot{}, false
	}
	lot := b.side(side).next(method)
	if lot == nil {
		return Lot{}, false
	}
	return *lot, true
}

// ReduceOrRemove decreases the lot selected by method by amount (capped at its
// remaining quantity) and removes it once empty.
func (l *Ledger) ReduceOrRemove(symbol string, side Side, method AccountingMethod, amount int64) {
	b, ok := l.books[symbol]
	if !ok {
		return
	}
	b.side(side).reduce(method, amount)
}

// OpenQuantity returns the summed quantity of the open lots on a symbol's side.
func (l *Ledger) OpenQuantity(symbol string, side Side) int64 {
	b, ok := l.books[symbol]
	if !ok {
		return 0
	}
	return b.side(side).quantity()
}

// Lots returns a copy of the open lots on a symbol's side, oldest first.
func (l *Ledger) Lots(symbol string, side Side) []Lot {
	b, ok := l.books[symbol]
	if !ok {
		return nil
	}
	return slices.Clone(*b.side(side))
}

// Symbols iterates over every symbol ever traded, in alphabetical order.
func (l *Ledger) Symbols() iter.Seq[string] {
	return slices.Values(slices.Sorted(maps.Keys(l.books)))
}

// Reset drops every open lot.
func (l *Ledger) Reset() {
	clear(l.books)
}

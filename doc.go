// Package pnl computes realized profit and loss from a time-ordered sequence
// of trades.
//
// The core is a position ledger: for each symbol it keeps two queues of open
// lots, one per side, in arrival order. Each trade is matched against the
// queue of the opposite side, closing lots in the order selected by the
// AccountingMethod:
//   - FIFO closes the oldest open lot first.
//   - LIFO closes the most recently opened lot first.
//
// The PnL realized by a trade is accumulated across every lot it closes and
// rounded once, half away from zero, to the engine precision (2 decimals by
// default). A trade that closes nothing, or whose rounded PnL is zero, emits
// no result. Any quantity left once the opposite side is flat opens a new lot
// on the trade's own side, flipping the position.
//
// Around the Engine, the package provides the adapters used by the `pnlc`
// command-line tool: decoding trades from CSV or JSON files, encoding results
// as CSV or JSONL, and building per-symbol reports.
//
// Prices and PnL are exact decimals: no floating point error accumulates
// over long sequences of trades.
package pnl

package pnl

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrNoTrades is returned by strict decoding when the input holds no trade.
var ErrNoTrades = errors.New("no valid trades found")

// CSVHeader is the optional first line of a trades file.
const CSVHeader = "timestamp,symbol,side,price,quantity"

const csvFields = 5

// DecodeOptions controls how trade files are decoded.
type DecodeOptions struct {
	// Strict aborts decoding on the first invalid record, and reports an empty
	// input as ErrNoTrades. Otherwise invalid records are logged and skipped.
	Strict bool
	// Logger receives a warning for every skipped record. Nil discards them.
	Logger *zap.Logger
}

func (o DecodeOptions) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// skip handles an invalid record: it is an error in strict mode, a warning otherwise.
func (o DecodeOptions) skip(name string, line int, err error) error {
	err = fmt.Errorf("%s:%d: %w", name, line, err)
	if o.Strict {
		return err
	}
	o.logger().Warn("skipping invalid trade record", zap.String("file", name), zap.Int("line", line), zap.Error(err))
	return nil
}

// DecodeTradesFile decodes the trades of a CSV, or JSON if the file name ends
// with ".json", file.
//
// If the file does not exist, the returned error wraps fs.ErrNotExist.
func DecodeTradesFile(filename string, opts DecodeOptions) ([]Trade, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open %q for reading: %w", filename, err)
	}
	defer f.Close()
	if strings.HasSuffix(strings.ToLower(filename), ".json") {
		return DecodeTradesJSON(f, filename, "$", opts)
	}
	return DecodeTrades(f, filename, opts)
}

// DecodeTrades decodes CSV trades, one per line, in the CSVHeader format.
// filename is for error messages only.
//
// Empty lines, lines starting with '#', and a first line equal to the header
// are ignored.
func DecodeTrades(r io.Reader, filename string, opts DecodeOptions) ([]Trade, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1 // checked per record
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	var trades []Trade
	first := true
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			if err := opts.skip(filename, perr.Line, perr.Err); err != nil {
				return nil, err
			}
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("error reading %q: %w", filename, err)
		}
		line, _ := cr.FieldPos(0)

		if first {
			first = false
			if isHeader(record) {
				continue
			}
		}

		t, err := ParseTradeRecord(record)
		if err != nil {
			if err := opts.skip(filename, line, err); err != nil {
				return nil, err
			}
			continue
		}
		trades = append(trades, t)
	}

	if opts.Strict && len(trades) == 0 {
		return nil, fmt.Errorf("%s: %w", filename, ErrNoTrades)
	}
	return trades, nil
}

func isHeader(record []string) bool {
	return strings.EqualFold(strings.Join(record, ","), CSVHeader)
}

// ParseTradeRecord parses the fields of a single CSV record:
// timestamp, symbol, side, price, quantity.
func ParseTradeRecord(fields []string) (Trade, error) {
	if len(fields) != csvFields {
		return Trade{}, fmt.Errorf("invalid number of CSV fields: expected %d, got %d", csvFields, len(fields))
	}
	ts, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 64)
	if err != nil {
		return Trade{}, fmt.Errorf("invalid timestamp %q: %w", fields[0], err)
	}
	side, err := ParseSide(fields[2])
	if err != nil {
		return Trade{}, err
	}
	price, err := decimal.NewFromString(strings.TrimSpace(fields[3]))
	if err != nil {
		return Trade{}, fmt.Errorf("invalid price %q: %w", fields[3], err)
	}
	quantity, err := parseQuantity(fields[4])
	if err != nil {
		return Trade{}, err
	}
	return newValidTrade(ts, strings.TrimSpace(fields[1]), price, quantity, side)
}

// parseQuantity accepts decimal notation and truncates toward zero.
func parseQuantity(s string) (int64, error) {
	q, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid quantity %q: %w", s, err)
	}
	return q.IntPart(), nil
}

func newValidTrade(ts int64, symbol string, price decimal.Decimal, quantity int64, side Side) (Trade, error) {
	t := NewTrade(ts, symbol, price, quantity, side)
	if err := t.Validate(); err != nil {
		return Trade{}, err
	}
	return t, nil
}

// DecodeTradesJSON decodes trades from a JSON document.
//
// path is a JSONPath expression locating the array of trades within the
// document, for instance "$.fills" for a broker export; "$" means the
// document is the array itself. Each trade is an object with the properties
// "timestamp", "symbol", "side", "price" and "quantity". Numbers may be given
// as JSON numbers or strings.
func DecodeTradesJSON(r io.Reader, filename, path string, opts DecodeOptions) ([]Trade, error) {
	if path == "" {
		path = "$"
	}
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse error %s: not a correct json: %w", filename, err)
	}

	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q in %s: %w", path, filename, err)
	}
	var items []any
	switch v := jval.(type) {
	case []any:
		items = v
	case map[string]any:
		items = []any{v}
	default:
		return nil, fmt.Errorf("%q in %s is not an array of trades", path, filename)
	}

	var trades []Trade
	for i, item := range items {
		t, err := parseTradeObject(item)
		if err != nil {
			// JSON trades are numbered from 1 in messages, like lines.
			if err := opts.skip(filename, i+1, err); err != nil {
				return nil, err
			}
			continue
		}
		trades = append(trades, t)
	}
	if opts.Strict && len(trades) == 0 {
		return nil, fmt.Errorf("%s: %w", filename, ErrNoTrades)
	}
	return trades, nil
}

func parseTradeObject(item any) (Trade, error) {
	jobj, ok := item.(map[string]any)
	if !ok {
		return Trade{}, fmt.Errorf("trade must be an object, got %T", item)
	}
	str := func(key string) (string, error) {
		switch v := jobj[key].(type) {
		case string:
			return v, nil
		case json.Number:
			return v.String(), nil
		case nil:
			return "", fmt.Errorf("missing the property %q", key)
		default:
			return "", fmt.Errorf("property %q must be a string or a number", key)
		}
	}

	fields := make([]string, 0, csvFields)
	for _, key := range []string{"timestamp", "symbol", "side", "price", "quantity"} {
		s, err := str(key)
		if err != nil {
			return Trade{}, err
		}
		fields = append(fields, s)
	}
	return ParseTradeRecord(fields)
}

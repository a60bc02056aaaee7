package pnl

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ResultsCSVHeader is the first line of the CSV results output.
const ResultsCSVHeader = "timestamp,symbol,pnl"

// EncodeResultsCSV writes the header then one line per result, the pnl with
// exactly places decimals.
func EncodeResultsCSV(w io.Writer, results []PnLResult, places int32) error {
	cw := csv.NewWriter(w)
	cw.Write(strings.Split(ResultsCSVHeader, ","))
	for _, r := range results {
		cw.Write([]string{strconv.FormatInt(r.Timestamp, 10), r.Symbol, r.PnL.StringFixed(places)})
	}
	cw.Flush()
	return cw.Error()
}

// EncodeResultsJSONL writes one JSON object per line:
//
//	{"timestamp":1000000001,"symbol":"AAPL","pnl":100.00}
func EncodeResultsJSONL(w io.Writer, results []PnLResult, places int32) error {
	bw := bufio.NewWriter(w)
	for _, r := range results {
		var o jsonObjectWriter
		o.Append("timestamp", r.Timestamp)
		o.Append("symbol", r.Symbol)
		o.Fixed("pnl", r.PnL, places)
		b, err := o.MarshalJSON()
		if err != nil {
			return fmt.Errorf("cannot encode result %v: %w", r, err)
		}
		bw.Write(b)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

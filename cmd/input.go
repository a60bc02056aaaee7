package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/etnz/pnl"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// stdinName is the file argument reading trades from the standard input.
const stdinName = "-"

// inputFlags holds the flags shared by the commands that process a trades file.
type inputFlags struct {
	cfg       Config
	method    string
	precision int
	strict    bool
	jsonPath  string
	verbose   bool
}

func (in *inputFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&in.method, "method", in.cfg.Method, "accounting method used to close lots: fifo or lifo")
	f.IntVar(&in.precision, "precision", in.cfg.Precision, "number of decimals of the realized PnL")
	f.BoolVar(&in.strict, "strict", false, "fail on the first invalid trade instead of skipping it")
	f.StringVar(&in.jsonPath, "jsonpath", "$", "JSONPath of the trades array in a .json file")
	f.BoolVar(&in.verbose, "v", in.cfg.Verbose, "log diagnostics to stderr")
}

// process decodes the trades file given as the single argument of f, and
// runs them through a new engine.
func (in *inputFlags) process(f *flag.FlagSet) (*pnl.Engine, subcommands.ExitStatus) {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected one trades file, got %d arguments\n", f.NArg())
		return nil, exitBadArgs
	}
	if in.precision < 0 {
		fmt.Fprintf(os.Stderr, "Error: invalid precision %d\n", in.precision)
		return nil, exitBadArgs
	}
	method, err := pnl.ParseAccountingMethod(in.method)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, exitBadMethod
	}

	logger, err := newLogger(in.verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	defer logger.Sync()

	filename := f.Arg(0)
	trades, err := in.decode(filename, pnl.DecodeOptions{Strict: in.strict, Logger: logger})
	switch {
	case errors.Is(err, fs.ErrNotExist):
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, exitFileNotFound
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, exitParseError
	}
	if len(trades) == 0 {
		logger.Warn("no valid trades found", zap.String("file", filename))
	}

	e := pnl.NewEngineWithPrecision(method, int32(in.precision))
	e.Process(trades)
	logger.Info("trades processed",
		zap.String("file", filename),
		zap.Stringer("method", method),
		zap.Int("trades", e.Processed()),
		zap.Int("results", e.Len()),
	)
	return e, exitOK
}

func (in *inputFlags) decode(filename string, opts pnl.DecodeOptions) ([]pnl.Trade, error) {
	if filename == stdinName {
		return pnl.DecodeTrades(os.Stdin, "stdin", opts)
	}
	if !strings.HasSuffix(strings.ToLower(filename), ".json") {
		return pnl.DecodeTradesFile(filename, opts)
	}
	r, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open %q for reading: %w", filename, err)
	}
	defer r.Close()
	return pnl.DecodeTradesJSON(r, filename, in.jsonPath, opts)
}

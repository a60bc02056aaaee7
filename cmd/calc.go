package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pnl"
	"github.com/etnz/pnl/renderer"
	"github.com/google/subcommands"
)

// Output formats of the calc command.
const (
	formatCSV      = "csv"
	formatJSONL    = "jsonl"
	formatMarkdown = "md"
)

// calcCmd holds the flags for the 'calc' subcommand.
type calcCmd struct {
	inputFlags
	format string
}

func (*calcCmd) Name() string     { return "calc" }
func (*calcCmd) Synopsis() string { return "compute the realized PnL of a trades file" }
func (*calcCmd) Usage() string {
	return `pnlc calc [-method fifo|lifo] [-precision N] [-format csv|jsonl|md] [-strict] [-jsonpath <path>] <file>

  Prints one line per trade that realized a PnL. <file> is a CSV file, a JSON
  file if it ends with .json, or - for CSV on the standard input.
`
}

func (c *calcCmd) SetFlags(f *flag.FlagSet) {
	c.inputFlags.SetFlags(f)
	f.StringVar(&c.format, "format", c.cfg.Format, "output format: csv, jsonl or md")
}

func (c *calcCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	switch c.format {
	case formatCSV, formatJSONL, formatMarkdown:
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", c.format)
		return exitBadArgs
	}

	e, status := c.process(f)
	if status != exitOK {
		return status
	}

	var err error
	switch c.format {
	case formatCSV:
		err = pnl.EncodeResultsCSV(stdout, e.Results(), e.Precision())
	case formatJSONL:
		err = pnl.EncodeResultsJSONL(stdout, e.Results(), e.Precision())
	case formatMarkdown:
		printMarkdown(renderer.ResultsMarkdown(e.Results(), e.Precision()))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing results: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

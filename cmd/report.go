package cmd

import (
	"context"
	"flag"

	"github.com/etnz/pnl"
	"github.com/etnz/pnl/renderer"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	inputFlags
	currency string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "summarize realized PnL and open positions per symbol" }
func (*reportCmd) Usage() string {
	return `pnlc report [-method fifo|lifo] [-currency <code>] [-strict] [-jsonpath <path>] <file>

  Displays, for each symbol, the realized PnL and the open long and short
  quantities.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	c.inputFlags.SetFlags(f)
	f.StringVar(&c.currency, "currency", c.cfg.Currency, "ISO currency code used to display amounts")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, status := c.process(f)
	if status != exitOK {
		return status
	}
	printMarkdown(renderer.RenderReport(pnl.NewReport(e), c.currency))
	return subcommands.ExitSuccess
}

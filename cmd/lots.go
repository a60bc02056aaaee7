package cmd

import (
	"context"
	"flag"

	"github.com/etnz/pnl/renderer"
	"github.com/google/subcommands"
)

type lotsCmd struct {
	inputFlags
}

func (*lotsCmd) Name() string     { return "lots" }
func (*lotsCmd) Synopsis() string { return "list the lots still open after a trades file" }
func (*lotsCmd) Usage() string {
	return `pnlc lots [-method fifo|lifo] [-strict] [-jsonpath <path>] <file>

  Lists the open lots by symbol and side, in the order they would be closed.
`
}

func (c *lotsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, status := c.process(f)
	if status != exitOK {
		return status
	}
	printMarkdown(renderer.LotsMarkdown(e.OpenLots(), e.Method()))
	return subcommands.ExitSuccess
}

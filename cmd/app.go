// Package cmd implements the pnlc command-line application.
package cmd

import (
	"io"
	"os"

	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// stdout receives the command outputs.
var stdout io.Writer = os.Stdout

// Exit codes of pnlc.
const (
	exitOK           = subcommands.ExitSuccess
	exitBadArgs      = subcommands.ExitStatus(1)
	exitFileNotFound = subcommands.ExitStatus(2)
	exitParseError   = subcommands.ExitStatus(3)
	exitBadMethod    = subcommands.ExitStatus(4)
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander, cfg Config) {
	for _, cmd := range commands(cfg) {
		c.Register(cmd, "")
	}
}

func commands(cfg Config) []subcommands.Command {
	in := inputFlags{cfg: cfg}
	return []subcommands.Command{
		&calcCmd{inputFlags: in},
		&lotsCmd{inputFlags: in},
		&reportCmd{inputFlags: in},
		&topicCmd{},
	}
}

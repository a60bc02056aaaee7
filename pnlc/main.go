package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/pnl/cmd"
	"github.com/google/subcommands"
)

func main() {
	name := path.Base(os.Args[0])
	cfg := cmd.LoadConfig(os.Getenv("PNL_ENV_FILE"))
	cmd.Complete(name, cfg)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander, cfg)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

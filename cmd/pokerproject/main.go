package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" help:"Play an interactive game of five-card draw"`
	Eval     EvalCmd          `cmd:"" help:"Classify a five-card hand"`
	Compare  CompareCmd       `cmd:"" help:"Compare two five-card hands"`
	Simulate SimulateCmd      `cmd:"" help:"Deal random hands and tally rank frequencies"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokerproject"),
		kong.Description("Five-card draw poker: hand evaluation, comparison and play"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

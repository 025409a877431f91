package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Simulate SimulateCmd      `cmd:"" help:"Run a batch of simulated games and report statistics"`
	Play     PlayCmd          `cmd:"" help:"Play a single game with verbose output"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("aviary"),
		kong.Description("Deterministic engine for bird tableau games"),
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

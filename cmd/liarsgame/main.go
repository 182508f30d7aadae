package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version    kong.VersionFlag `short:"v" help:"Show version"`
	Play       PlayCmd          `cmd:"" help:"Play a single game and print its history"`
	Replay     ReplayCmd        `cmd:"" help:"Step through a seeded game round by round"`
	Simulate   SimulateCmd      `cmd:"" help:"Play many games and report win rates"`
	Strategies StrategiesCmd    `cmd:"" help:"List the built-in strategies"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("liarsgame"),
		kong.Description("Elimination game where the smallest contributor forfeits everything"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

package main

import (
	"fmt"
	"time"

	"github.com/lox/liarsgame/internal/config"
	"github.com/lox/liarsgame/internal/display"
	"github.com/lox/liarsgame/internal/simulator"
)

// SimulateCmd runs a batch of games and prints aggregate results
type SimulateCmd struct {
	Games    int           `short:"n" help:"Number of games (overrides the config file)"`
	Parallel int           `short:"p" help:"Games played concurrently (overrides the config file)"`
	Timeout  time.Duration `help:"Per-game timeout (overrides the config file)"`
	Seed     int64         `help:"Master seed (0 picks one from the clock)"`
	Width    int           `default:"40" help:"Width of the win-rate bars"`
	Seeds    bool          `help:"Print the seed of every game for replay"`
	Output   string        `short:"o" type:"path" help:"Also write the report as JSON to this file"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, err := g.load(seedOverride(c.Seed), func(cfg *config.Config) {
		if c.Games != 0 {
			cfg.Simulation.Games = c.Games
		}
		if c.Parallel != 0 {
			cfg.Simulation.Parallelism = c.Parallel
		}
		if c.Timeout != 0 {
			cfg.Simulation.Timeout = c.Timeout.String()
		}
	})
	if err != nil {
		return err
	}
	logger := g.logger(cfg.Game.Verbose)

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	logger.Info("Starting simulation",
		"games", cfg.Simulation.Games,
		"parallelism", cfg.Simulation.Parallelism,
		"seed", cfg.Game.Seed)

	report, err := simulator.FromConfig(cfg, logger).Run(ctx)
	if err != nil {
		return err
	}

	w := g.out()
	simulator.PrintSummary(w, report)
	fmt.Fprintln(w)
	fmt.Fprint(w, display.RenderWinRates(report.Stats, c.Width, nil))

	if c.Output != "" {
		if err := simulator.WriteReport(c.Output, report, c.Seeds); err != nil {
			return err
		}
		logger.Info("Wrote report", "path", c.Output)
	}

	if c.Seeds {
		fmt.Fprintln(w)
		for i, seed := range report.Stats.Seeds {
			fmt.Fprintf(w, "%6d  %d\n", i+1, seed)
		}
	}
	return nil
}

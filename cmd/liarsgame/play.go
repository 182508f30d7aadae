package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/liarsgame/internal/config"
	"github.com/lox/liarsgame/internal/display"
	"github.com/lox/liarsgame/internal/game"
	"github.com/lox/liarsgame/internal/simulator"
)

// PlayCmd plays one game and prints how it went
type PlayCmd struct {
	Seed    int64   `help:"Game seed (0 picks one from the clock)"`
	Pool    float64 `help:"Starting funds per player (overrides the config file)"`
	Verbose bool    `help:"Log every contribution and elimination"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, err := g.load(seedOverride(c.Seed), func(cfg *config.Config) {
		if c.Pool != 0 {
			cfg.Game.Pool = c.Pool
		}
		cfg.Game.Verbose = cfg.Game.Verbose || c.Verbose
	})
	if err != nil {
		return err
	}
	logger := g.logger(cfg.Game.Verbose)

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	result, err := playSeed(ctx, cfg, logger)
	if err != nil {
		return err
	}

	w := g.out()
	fmt.Fprintln(w, display.RenderEliminations(result, nil))
	fmt.Fprintln(w, display.RenderHistory(result, nil))
	fmt.Fprintf(w, "seed %d, %d rounds, %s wins\n", cfg.Game.Seed, len(result.Rounds), result.Winner)
	return nil
}

// playSeed plays the game for the configured seed.
func playSeed(ctx context.Context, cfg *config.Config, logger *log.Logger) (*game.Result, error) {
	sim := simulator.FromConfig(cfg, logger)
	result, _, err := sim.PlayGame(ctx, cfg.Game.Seed)
	return result, err
}

package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/liarsgame/internal/display"
)

// ReplayCmd replays a seeded game in the terminal
type ReplayCmd struct {
	Seed  int64 `arg:"" help:"Seed printed by play or listed by simulate"`
	Plain bool  `help:"Print every round instead of starting the interactive viewer"`
}

func (c *ReplayCmd) Run(g *Globals) error {
	if c.Seed == 0 {
		return errors.New("replay needs the non-zero seed of a played game")
	}
	cfg, err := g.load(seedOverride(c.Seed))
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

	if c.Plain {
		w := g.out()
		for _, rec := range result.Rounds {
			fmt.Fprintln(w, display.RenderRound(rec, nil))
		}
		fmt.Fprint(w, display.RenderEliminations(result, nil))
		return nil
	}

	return display.RunReplay(result, tea.WithAltScreen(), tea.WithContext(ctx))
}

package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/lox/liarsgame/internal/config"
	"github.com/lox/liarsgame/internal/game"
	"github.com/lox/liarsgame/internal/gameid"
	"github.com/lox/liarsgame/internal/randutil"
	"github.com/lox/liarsgame/internal/statistics"
	"github.com/lox/liarsgame/internal/strategy"
)

// ErrTimeout is the cause attached to games cancelled by the per-game timeout.
var ErrTimeout = errors.New("game timed out")

// Config holds configuration for running simulations
type Config struct {
	Games       int
	Seed        int64
	Parallelism int
	Timeout     time.Duration
	Pool        float64
	Verbose     bool
	Lineup      []config.Entry
	Logger      *log.Logger
	Clock       quartz.Clock

	// Builds each seat's strategy; strategy.New from the entry's Spec if nil
	NewStrategy StrategyFactory
}

// StrategyFactory creates the strategy for one seat of one game.
type StrategyFactory func(entry config.Entry, rng *rand.Rand, logger *log.Logger) (game.Strategy, error)

func defaultStrategy(entry config.Entry, rng *rand.Rand, logger *log.Logger) (game.Strategy, error) {
	return strategy.New(entry.Spec, rng, logger)
}

// Report is the outcome of a batch.
type Report struct {
	Stats   *statistics.Statistics
	Seed    int64
	Elapsed time.Duration
}

// Simulator runs batches of independent Liars Games
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Parallelism < 1 {
		config.Parallelism = 1
	}
	if config.NewStrategy == nil {
		config.NewStrategy = defaultStrategy
	}
	return &Simulator{config: config}
}

// FromConfig builds a simulator from a loaded configuration file.
func FromConfig(cfg *config.Config, logger *log.Logger) *Simulator {
	return New(Config{
		Games:       cfg.Simulation.Games,
		Seed:        cfg.Game.Seed,
		Parallelism: cfg.Simulation.Parallelism,
		Timeout:     cfg.Timeout(),
		Pool:        cfg.Game.Pool,
		Verbose:     cfg.Game.Verbose,
		Lineup:      cfg.Lineup(),
		Logger:      logger,
	})
}

// Run plays Config.Games games and aggregates the results. Every game gets a
// seed derived from Config.Seed, so the aggregate does not depend on
// Parallelism or on scheduling.
func (s *Simulator) Run(ctx context.Context) (*Report, error) {
	if s.config.Games < 1 {
		return nil, fmt.Errorf("need at least one game, got %d", s.config.Games)
	}

	start := s.config.Clock.Now()
	seeds := randutil.Seeds(s.config.Seed, s.config.Games)
	results := make([]statistics.GameResult, len(seeds))

	var done atomic.Int64
	progressEvery := max(int64(len(seeds)/10), 1)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Parallelism)

	for i, seed := range seeds {
		g.Go(func() error {
			result, strategies, err := s.playGameWithTimeout(gctx, seed)
			if err != nil {
				return fmt.Errorf("game %d (seed: %d): %w", i+1, seed, err)
			}
			results[i] = statistics.NewGameResult(seed, result, strategies)

			if n := done.Add(1); n%progressEvery == 0 {
				s.config.Logger.Info("Progress",
					"games", humanize.Comma(n),
					"of", humanize.Comma(int64(len(seeds))),
					"elapsed", s.config.Clock.Since(start).Round(time.Millisecond))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, r := range results {
		stats.Add(r)
	}

	// Validate statistics before returning
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	return &Report{
		Stats:   stats,
		Seed:    s.config.Seed,
		Elapsed: s.config.Clock.Since(start),
	}, nil
}

// playGameWithTimeout runs a single game, cancelling it once the timeout
// fires on the simulator's clock.
func (s *Simulator) playGameWithTimeout(ctx context.Context, seed int64) (*game.Result, map[string]string, error) {
	if s.config.Timeout <= 0 {
		return s.PlayGame(ctx, seed)
	}

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	timer := s.config.Clock.AfterFunc(s.config.Timeout, func() {
		cancel(ErrTimeout)
	})
	defer timer.Stop()

	result, strategies, err := s.PlayGame(ctx, seed)
	if err != nil && errors.Is(context.Cause(ctx), ErrTimeout) {
		return nil, nil, fmt.Errorf("%w after %v: %w", ErrTimeout, s.config.Timeout, err)
	}
	return result, strategies, err
}

// PlayGame sets up and plays one game from a seed. It also returns the
// strategy name of every player.
func (s *Simulator) PlayGame(ctx context.Context, seed int64) (*game.Result, map[string]string, error) {
	engine, strategies, err := s.NewGame(seed)
	if err != nil {
		return nil, nil, err
	}
	result, err := engine.Run(ctx)
	if err != nil {
		return nil, nil, err
	}
	result.Seed = seed
	return result, strategies, nil
}

// NewGame builds the line-up and engine for a seed. Strategies get their own
// generators, derived in seat order from the game's generator, which the
// engine then keeps for tie-breaks.
func (s *Simulator) NewGame(seed int64) (*game.Engine, map[string]string, error) {
	rng := randutil.New(seed)
	logger := s.config.Logger.With("seed", seed)

	players := make([]game.Player, len(s.config.Lineup))
	strategies := make(map[string]string, len(s.config.Lineup))
	for i, entry := range s.config.Lineup {
		strat, err := s.config.NewStrategy(entry, randutil.New(rng.Int64()), logger.With("player", entry.Name))
		if err != nil {
			return nil, nil, fmt.Errorf("player %s: %w", entry.Name, err)
		}
		players[i] = game.Player{Name: entry.Name, Strategy: strat}
		strategies[entry.Name] = game.StrategyName(strat)
	}

	engine, err := game.NewEngine(players, game.Config{
		Pool:    s.config.Pool,
		Rand:    rng,
		Logger:  logger,
		Verbose: s.config.Verbose,
		GameID:  gameid.FromSeed(seed),
	})
	if err != nil {
		return nil, nil, err
	}
	return engine, strategies, nil
}

// PrintSummary writes a plain-text summary of a batch
func PrintSummary(w io.Writer, report *Report) {
	stats := report.Stats

	fmt.Fprintf(w, "\n=== FINAL RESULTS ===\n")
	fmt.Fprintf(w, "Games played: %s (seed: %d, %s)\n",
		humanize.Comma(int64(stats.Games)), report.Seed, report.Elapsed.Round(time.Millisecond))
	fmt.Fprintf(w, "Rounds per game: %.2f (median %.1f)\n", stats.Rounds.Mean(), stats.Rounds.Median())

	fmt.Fprintf(w, "\n=== PLAYERS ===\n")
	for i, p := range stats.Ranking() {
		low, high := p.WinRateCI95()
		placeLow, placeHigh := p.Placements.ConfidenceInterval95()
		fmt.Fprintf(w, "%2d. %-16s %-16s win %5.1f%% [%5.1f%%, %5.1f%%]  mean place %.2f [%.2f, %.2f]\n",
			i+1, p.Name, p.Strategy,
			p.WinRate()*100, low*100, high*100,
			p.Placements.Mean(), placeLow, placeHigh)
	}
}

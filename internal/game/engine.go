package game

import (
	"context"
	"fmt"
	"io"
	"math"
	rand "math/rand/v2"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/lox/liarsgame/internal/gameid"
)

const (
	// MinPlayers is the smallest field a game can be started with.
	MinPlayers = 3

	// DefaultPool is the total funds shared out at the start of a game.
	DefaultPool = 100.0

	conservationTolerance = 1e-9
)

// Config controls how a game is run.
type Config struct {
	Pool    float64     // Total starting funds, split equally; DefaultPool if zero
	Rand    *rand.Rand  // Source for tie-breaks; randomly seeded if nil
	Logger  *log.Logger // Discards output if nil
	Verbose bool        // Log every contribution at Info instead of Debug
	GameID  string      // Generated if empty
}

// Engine runs a single Liars Game to completion. It is not safe for
// concurrent use and cannot be run twice.
type Engine struct {
	players []Player
	active  []Player
	funds   map[string]float64

	rng     *rand.Rand
	logger  *log.Logger
	verbose bool
	gameID  string

	history      History
	eliminations []string
	rounds       []RoundRecord
	finished     bool
}

// NewEngine validates the players and deals out the starting funds.
func NewEngine(players []Player, cfg Config) (*Engine, error) {
	if len(players) < MinPlayers {
		return nil, configErrorf("need at least %d players, got %d", MinPlayers, len(players))
	}

	pool := cfg.Pool
	if pool == 0 {
		pool = DefaultPool
	}
	if pool < 0 || math.IsNaN(pool) || math.IsInf(pool, 0) {
		return nil, configErrorf("pool must be a positive amount, got %v", cfg.Pool)
	}

	seen := make(map[string]bool, len(players))
	for i, p := range players {
		if p.Name == "" {
			return nil, configErrorf("player %d has no name", i+1)
		}
		if seen[p.Name] {
			return nil, configErrorf("duplicate player name %q", p.Name)
		}
		if p.Strategy == nil {
			return nil, configErrorf("player %q has no strategy", p.Name)
		}
		seen[p.Name] = true
	}

	gameID := cfg.GameID
	if gameID == "" {
		gameID = gameid.Generate()
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	share := pool / float64(len(players))
	funds := make(map[string]float64, len(players))
	for _, p := range players {
		funds[p.Name] = share
	}

	return &Engine{
		players: slices.Clone(players),
		active:  slices.Clone(players),
		funds:   funds,
		rng:     rng,
		logger:  logger.With("game", gameID),
		verbose: cfg.Verbose,
		gameID:  gameID,
	}, nil
}

// RunGame names the strategies by seat and plays a game with them.
func RunGame(ctx context.Context, strategies []Strategy, cfg Config) (*Result, error) {
	engine, err := NewEngine(NamePlayers(strategies), cfg)
	if err != nil {
		return nil, err
	}
	return engine.Run(ctx)
}

// Run plays rounds until one player remains and returns the result. The
// context is checked between rounds.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	if e.finished {
		return nil, ErrGameFinished
	}
	e.finished = true

	e.logger.Debug("Starting game", "players", len(e.active), "funds", e.funds[e.active[0].Name])

	for len(e.active) > 1 {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("game %s stopped at round %d: %w", e.gameID, e.round(), err)
		}
		if err := e.playRound(); err != nil {
			return nil, err
		}
	}

	winner := e.active[0]
	e.history = append(e.history, e.snapshot())
	e.eliminations = append(e.eliminations, winner.Name)
	e.logRound("Game won", "winner", winner.Name, "funds", e.funds[winner.Name], "rounds", len(e.rounds))

	names := make([]string, len(e.players))
	for i, p := range e.players {
		names[i] = p.Name
	}

	return &Result{
		GameID:       e.gameID,
		Players:      names,
		Winner:       winner.Name,
		History:      e.history,
		Eliminations: e.eliminations,
		Rounds:       e.rounds,
	}, nil
}

func (e *Engine) round() int {
	return len(e.players) - len(e.active)
}

func (e *Engine) snapshot() Snapshot {
	funds := make(map[string]float64, len(e.active))
	for _, p := range e.active {
		funds[p.Name] = e.funds[p.Name]
	}
	return Snapshot{Round: e.round(), Funds: funds}
}

func (e *Engine) state(self string) GameState {
	players := make([]PlayerState, len(e.active))
	for i, p := range e.active {
		players[i] = PlayerState{Name: p.Name, Funds: e.funds[p.Name]}
	}
	return GameState{Round: e.round(), Self: self, Players: players}
}

// playRound resolves one bid, eliminate and redistribute cycle.
func (e *Engine) playRound() error {
	round := e.round()
	e.history = append(e.history, e.snapshot())
	totalBefore := e.activeTotal()

	record := RoundRecord{
		Round:         round,
		Contributions: make([]Contribution, len(e.active)),
	}

	for i, p := range e.active {
		requested, err := e.decide(p, round)
		if err != nil {
			return err
		}
		fraction := clamp(requested)
		balance := e.funds[p.Name]
		record.Contributions[i] = Contribution{
			Player:    p.Name,
			Requested: requested,
			Fraction:  fraction,
			Amount:    fraction * balance,
			Balance:   balance,
		}
		e.logRound("Contribution",
			"round", round,
			"player", p.Name,
			"fraction", fraction,
			"contribution", record.Contributions[i].Amount,
			"balance", balance)
	}

	record.Minimum = math.Inf(1)
	for _, c := range record.Contributions {
		record.Minimum = math.Min(record.Minimum, c.Amount)
	}
	var tied []int
	for i, c := range record.Contributions {
		if c.Amount == record.Minimum {
			tied = append(tied, i)
			record.Tied = append(record.Tied, c.Player)
		}
	}

	out := tied[0]
	if len(tied) > 1 {
		out = tied[e.rng.IntN(len(tied))]
	}

	// The player going out forfeits everything, not just what it offered.
	loser := &record.Contributions[out]
	loser.Amount = loser.Balance
	record.Eliminated = loser.Player

	for _, c := range record.Contributions {
		record.Pot += c.Amount
	}

	e.active = slices.Delete(e.active, out, out+1)
	delete(e.funds, record.Eliminated)
	record.Share = record.Pot / float64(len(e.active))

	for _, c := range record.Contributions {
		if c.Player == record.Eliminated {
			continue
		}
		e.funds[c.Player] = c.Balance - c.Amount + record.Share
	}

	e.eliminations = append(e.eliminations, record.Eliminated)
	e.rounds = append(e.rounds, record)

	e.logRound("Player eliminated",
		"round", round,
		"player", record.Eliminated,
		"tied", len(record.Tied),
		"pot", record.Pot,
		"share", record.Share)

	return e.checkConservation(round, totalBefore)
}

// decide asks a strategy for its fraction, turning NaN results and panics
// into a *StrategyError.
func (e *Engine) decide(p Player, round int) (fraction float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			cause, ok := r.(error)
			if !ok {
				cause = fmt.Errorf("panic: %v", r)
			}
			err = &StrategyError{Player: p.Name, Round: round, Value: math.NaN(), Cause: cause}
		}
	}()

	fraction = p.Strategy.Decide(e.state(p.Name))
	if math.IsNaN(fraction) {
		return 0, &StrategyError{Player: p.Name, Round: round, Value: fraction}
	}
	return fraction, nil
}

func (e *Engine) activeTotal() float64 {
	total := 0.0
	for _, p := range e.active {
		total += e.funds[p.Name]
	}
	return total
}

func (e *Engine) checkConservation(round int, before float64) error {
	after := e.activeTotal()
	if math.Abs(after-before) > conservationTolerance*math.Max(1, math.Abs(before)) {
		e.logger.Error("Funds conservation violated", "round", round, "before", before, "after", after)
		return fmt.Errorf("%w: round %d started with %v and ended with %v", ErrConservation, round, before, after)
	}
	for _, p := range e.active {
		if e.funds[p.Name] < 0 {
			return fmt.Errorf("%w: player %s has negative funds %v after round %d", ErrConservation, p.Name, e.funds[p.Name], round)
		}
	}
	return nil
}

func (e *Engine) logRound(msg string, keyvals ...any) {
	if e.verbose {
		e.logger.Info(msg, keyvals...)
		return
	}
	e.logger.Debug(msg, keyvals...)
}

func clamp(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}

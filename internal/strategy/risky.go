package strategy

import (
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/liarsgame/internal/game"
)

// Risky gambles for a fixed number of opening rounds and then plays it safe.
//
// While the window is open it offers (bias + scale*U) times the poorest
// active player's balance, where U is uniform in [0, 1). Once the window has
// passed it offers the poorest balance plus epsilon every round, which beats
// anyone who can at most go all-in with less.
type Risky struct {
	rounds  int
	bias    float64
	scale   float64
	epsilon float64

	survived int // rounds this instance has been asked to play
	rng      *rand.Rand
	logger   *log.Logger
}

// RiskyOptions configures a Risky strategy.
type RiskyOptions struct {
	Rounds  int
	Bias    float64
	Scale   float64
	Epsilon float64
}

// DefaultRiskyOptions are used for any option left unset in config.
var DefaultRiskyOptions = RiskyOptions{
	Rounds:  3,
	Bias:    0.5,
	Scale:   0.5,
	Epsilon: 0.01,
}

// NewRisky creates a risky-then-minimal strategy.
func NewRisky(opts RiskyOptions, rng *rand.Rand, logger *log.Logger) *Risky {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Risky{
		rounds:  opts.Rounds,
		bias:    opts.Bias,
		scale:   opts.Scale,
		epsilon: opts.Epsilon,
		rng:     rng,
		logger:  logger,
	}
}

func (r *Risky) Decide(state game.GameState) float64 {
	lowest := state.MinFunds()

	var amount float64
	if r.survived < r.rounds {
		amount = (r.bias + r.scale*r.rng.Float64()) * lowest
		r.logger.Debug("Risky bid", "player", state.Self, "round", state.Round, "amount", amount)
	} else {
		amount = lowest + r.epsilon
		r.logger.Debug("Minimal bid", "player", state.Self, "round", state.Round, "amount", amount)
	}
	r.survived++

	return fractionOf(amount, state.OwnFunds())
}

func (r *Risky) Name() string { return "risky" }

// fractionOf converts an amount into a fraction of funds. A broke player can
// only offer nothing.
func fractionOf(amount, funds float64) float64 {
	if funds <= 0 {
		return 0
	}
	return amount / funds
}

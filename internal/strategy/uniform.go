package strategy

import (
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/liarsgame/internal/game"
)

// Uniform bids a uniformly random fraction of its funds every round. It is
// the main source of variety in otherwise deterministic line-ups.
type Uniform struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewUniform creates a Uniform strategy drawing from rng.
func NewUniform(rng *rand.Rand, logger *log.Logger) *Uniform {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Uniform{rng: rng, logger: logger}
}

func (u *Uniform) Decide(state game.GameState) float64 {
	f := u.rng.Float64()
	u.logger.Debug("Uniform bid", "player", state.Self, "round", state.Round, "fraction", f)
	return f
}

func (u *Uniform) Name() string { return "uniform" }

package strategy

import (
	"github.com/lox/liarsgame/internal/game"
)

// Proportional offers a fixed fraction of the average balance, so rich
// players give proportionally less and poor players more.
type Proportional struct {
	target float64
}

// NewProportional creates a Proportional strategy.
func NewProportional(target float64) *Proportional {
	return &Proportional{target: target}
}

func (p *Proportional) Decide(state game.GameState) float64 {
	if state.ActiveCount() == 0 {
		return 0
	}
	average := state.TotalFunds() / float64(state.ActiveCount())
	return fractionOf(p.target*average, state.OwnFunds())
}

func (p *Proportional) Name() string { return "proportional" }

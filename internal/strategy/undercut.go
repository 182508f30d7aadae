package strategy

import (
	"github.com/lox/liarsgame/internal/game"
)

// Undercut always offers the poorest active balance plus epsilon, so it can
// only be caught by players matching it. It behaves like Risky with no
// gambling window.
type Undercut struct {
	epsilon float64
}

// NewUndercut creates an Undercut strategy.
func NewUndercut(epsilon float64) *Undercut {
	return &Undercut{epsilon: epsilon}
}

func (u *Undercut) Decide(state game.GameState) float64 {
	return fractionOf(state.MinFunds()+u.epsilon, state.OwnFunds())
}

func (u *Undercut) Name() string { return "undercut" }

package strategy

import (
	"fmt"

	"github.com/lox/liarsgame/internal/game"
)

// Constant bids the same fraction of its funds every round.
type Constant struct {
	fraction float64
}

// NewConstant creates a strategy that always returns fraction.
func NewConstant(fraction float64) *Constant {
	return &Constant{fraction: fraction}
}

func (c *Constant) Decide(game.GameState) float64 {
	return c.fraction
}

func (c *Constant) Name() string {
	switch c.fraction {
	case 0:
		return "zero"
	case 1:
		return "all-in"
	}
	return fmt.Sprintf("constant(%g)", c.fraction)
}

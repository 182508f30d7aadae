package game

import "fmt"

// Strategy decides how much of its funds a player contributes each round.
// Implementations receive an immutable view of the game and return a
// fraction; the engine clamps it into [0, 1], so strategies never need to.
// Decide is called once per round per active player, in seating order.
type Strategy interface {
	Decide(state GameState) float64
}

// StrategyFunc adapts a plain function to the Strategy interface.
type StrategyFunc func(state GameState) float64

// Decide calls f(state).
func (f StrategyFunc) Decide(state GameState) float64 {
	return f(state)
}

// Named is implemented by strategies that can describe themselves. The name
// is used when players are named automatically and in reports.
type Named interface {
	Name() string
}

// Player binds a unique name to a strategy.
type Player struct {
	Name     string
	Strategy Strategy
}

// StrategyName returns the strategy's self-reported name, or "custom".
func StrategyName(s Strategy) string {
	if n, ok := s.(Named); ok {
		return n.Name()
	}
	return "custom"
}

// NamePlayers gives each strategy a seat-numbered name such as "p1-risky".
func NamePlayers(strategies []Strategy) []Player {
	players := make([]Player, len(strategies))
	for i, s := range strategies {
		players[i] = Player{
			Name:     fmt.Sprintf("p%d-%s", i+1, StrategyName(s)),
			Strategy: s,
		}
	}
	return players
}

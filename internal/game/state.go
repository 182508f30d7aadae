package game

import "math"

// PlayerState is the read-only view of one active player.
type PlayerState struct {
	Name  string
	Funds float64
}

// GameState is the read-only view handed to a Strategy. It is a copy: a
// strategy may keep or modify it without affecting the game.
type GameState struct {
	Round   int           // Round index, starting at 0
	Self    string        // Name of the player being asked to decide
	Players []PlayerState // Active players in seating order
}

// ActiveCount returns the number of players still in the game.
func (s GameState) ActiveCount() int {
	return len(s.Players)
}

// Funds returns the balance of the named player.
func (s GameState) Funds(name string) (float64, bool) {
	for _, p := range s.Players {
		if p.Name == name {
			return p.Funds, true
		}
	}
	return 0, false
}

// OwnFunds returns the deciding player's balance.
func (s GameState) OwnFunds() float64 {
	funds, _ := s.Funds(s.Self)
	return funds
}

// MinFunds returns the smallest balance among active players.
func (s GameState) MinFunds() float64 {
	if len(s.Players) == 0 {
		return 0
	}
	lowest := math.Inf(1)
	for _, p := range s.Players {
		lowest = math.Min(lowest, p.Funds)
	}
	return lowest
}

// TotalFunds returns the sum of all active balances.
func (s GameState) TotalFunds() float64 {
	total := 0.0
	for _, p := range s.Players {
		total += p.Funds
	}
	return total
}

package game

import "slices"

// Snapshot is the funds of every active player at the start of a round. The
// final snapshot of a game holds only the winner.
type Snapshot struct {
	Round int
	Funds map[string]float64
}

// History is the append-only list of snapshots, one per round index.
type History []Snapshot

// Players returns the names in the first snapshot, sorted.
func (h History) Players() []string {
	if len(h) == 0 {
		return nil
	}
	names := make([]string, 0, len(h[0].Funds))
	for name := range h[0].Funds {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Contribution is what one player put into the pot in a round.
type Contribution struct {
	Player    string
	Requested float64 // Fraction returned by the strategy
	Fraction  float64 // Requested clamped into [0, 1]
	Amount    float64 // Fraction * Balance, or Balance when eliminated
	Balance   float64 // Funds before the round
}

// RoundRecord captures how a single round was resolved.
type RoundRecord struct {
	Round         int
	Contributions []Contribution
	Minimum       float64  // Lowest declared contribution
	Tied          []string // Players sharing the minimum, in seating order
	Eliminated    string
	Pot           float64
	Share         float64 // Pot / survivors
}

// Result is everything a finished game produced.
type Result struct {
	GameID       string
	Seed         int64    // Seed the game was built from, if the caller knows it
	Players      []string // Seating order at the start of the game
	Winner       string
	History      History
	Eliminations []string // Elimination order, winner last
	Rounds       []RoundRecord
}

// Placement returns a player's finishing place: 1 for the winner, n for the
// first player eliminated. It returns 0 for unknown players.
func (r *Result) Placement(name string) int {
	i := slices.Index(r.Eliminations, name)
	if i < 0 {
		return 0
	}
	return len(r.Eliminations) - i
}

package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/samber/lo"

	"github.com/lox/liarsgame/internal/game"
)

// GameResult is the part of a finished game that batch statistics need.
type GameResult struct {
	Seed       int64
	GameID     string
	Winner     string
	Rounds     int
	Placements map[string]int    // 1 = winner
	Strategies map[string]string // player -> strategy name
}

// NewGameResult extracts a GameResult from a finished game.
func NewGameResult(seed int64, r *game.Result, strategies map[string]string) GameResult {
	placements := make(map[string]int, len(r.Eliminations))
	for _, name := range r.Eliminations {
		placements[name] = r.Placement(name)
	}

	return GameResult{
		Seed:       seed,
		GameID:     r.GameID,
		Winner:     r.Winner,
		Rounds:     len(r.Rounds),
		Placements: placements,
		Strategies: strategies,
	}
}

// Sample accumulates a stream of values
type Sample struct {
	N      int
	Sum    float64
	Sum2   float64   // Sum of squares for variance calculation
	Values []float64 // Store all values for median/percentile calculation
}

// Add records one value
func (s *Sample) Add(v float64) {
	s.N++
	s.Sum += v
	s.Sum2 += v * v
	s.Values = append(s.Values, v)
}

// Mean returns the arithmetic mean
func (s *Sample) Mean() float64 {
	if s.N == 0 {
		return 0
	}
	return s.Sum / float64(s.N)
}

// Variance returns the sample variance
func (s *Sample) Variance() float64 {
	if s.N < 2 {
		return 0
	}
	mean := s.Mean()
	v := (s.Sum2 - float64(s.N)*mean*mean) / float64(s.N-1)
	return math.Max(0, v)
}

// StdDev returns the sample standard deviation
func (s *Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Sample) StdError() float64 {
	if s.N == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.N))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Sample) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median value
func (s *Sample) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Sample) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// PlayerStats tracks one seat across a batch
type PlayerStats struct {
	Name       string
	Strategy   string
	Games      int
	Wins       int
	Placements Sample
}

// WinRate returns the fraction of games won
func (p *PlayerStats) WinRate() float64 {
	if p.Games == 0 {
		return 0
	}
	return float64(p.Wins) / float64(p.Games)
}

// WinRateCI95 returns the Wilson score interval for the win rate
func (p *PlayerStats) WinRateCI95() (float64, float64) {
	if p.Games == 0 {
		return 0, 0
	}
	const z = 1.96
	n := float64(p.Games)
	rate := p.WinRate()
	denom := 1 + z*z/n
	centre := (rate + z*z/(2*n)) / denom
	margin := z * math.Sqrt(rate*(1-rate)/n+z*z/(4*n*n)) / denom
	return math.Max(0, centre-margin), math.Min(1, centre+margin)
}

// Statistics aggregates results over a batch of games
type Statistics struct {
	Games   int
	Rounds  Sample
	Players map[string]*PlayerStats
	Seeds   []int64 // In the order games were added, for replay
}

// Add incorporates a game into the statistics
func (s *Statistics) Add(r GameResult) {
	if s.Players == nil {
		s.Players = make(map[string]*PlayerStats)
	}

	s.Games++
	s.Rounds.Add(float64(r.Rounds))
	s.Seeds = append(s.Seeds, r.Seed)

	for name, place := range r.Placements {
		ps, ok := s.Players[name]
		if !ok {
			ps = &PlayerStats{Name: name, Strategy: r.Strategies[name]}
			s.Players[name] = ps
		}
		ps.Games++
		ps.Placements.Add(float64(place))
		if name == r.Winner {
			ps.Wins++
		}
	}
}

// Player returns the statistics for one seat
func (s *Statistics) Player(name string) (*PlayerStats, bool) {
	ps, ok := s.Players[name]
	return ps, ok
}

// Ranking orders players by win rate, then by mean placement, then name
func (s *Statistics) Ranking() []*PlayerStats {
	players := lo.Values(s.Players)
	sort.Slice(players, func(i, j int) bool {
		a, b := players[i], players[j]
		if a.WinRate() != b.WinRate() {
			return a.WinRate() > b.WinRate()
		}
		if a.Placements.Mean() != b.Placements.Mean() {
			return a.Placements.Mean() < b.Placements.Mean()
		}
		return a.Name < b.Name
	})
	return players
}

// Validate performs consistency checks on the accumulated data
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}

	if len(s.Rounds.Values) != s.Games {
		return fmt.Errorf("rounds recorded (%d) does not match games count (%d)", len(s.Rounds.Values), s.Games)
	}

	totalWins := lo.SumBy(lo.Values(s.Players), func(p *PlayerStats) int { return p.Wins })
	if totalWins != s.Games {
		return fmt.Errorf("total wins (%d) does not match games count (%d)", totalWins, s.Games)
	}

	for _, p := range s.Players {
		if p.Games > s.Games {
			return fmt.Errorf("player %s played %d of %d games", p.Name, p.Games, s.Games)
		}
		if p.Wins > p.Games {
			return fmt.Errorf("player %s won %d of %d games", p.Name, p.Wins, p.Games)
		}
	}

	return nil
}

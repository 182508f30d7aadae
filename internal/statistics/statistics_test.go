package statistics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/liarsgame/internal/game"
)

func TestSample_Empty(t *testing.T) {
	var s Sample

	assert.Equal(t, 0.0, s.Mean())
	assert.Equal(t, 0.0, s.Variance())
	assert.Equal(t, 0.0, s.StdDev())
	assert.Equal(t, 0.0, s.StdError())
	assert.Equal(t, 0.0, s.Median())
	assert.Equal(t, 0.0, s.Percentile(0.5))
}

func TestSample_SingleValue(t *testing.T) {
	var s Sample
	s.Add(2.5)

	assert.Equal(t, 1, s.N)
	assert.Equal(t, 2.5, s.Mean())
	assert.Equal(t, 0.0, s.Variance())
	assert.Equal(t, 2.5, s.Median())

	low, high := s.ConfidenceInterval95()
	assert.Equal(t, 2.5, low)
	assert.Equal(t, 2.5, high)
}

func TestSample_MultipleValues(t *testing.T) {
	var s Sample
	for _, v := range []float64{1, -2, 3, 0, -1} {
		s.Add(v)
	}

	assert.InDelta(t, 0.2, s.Mean(), 1e-9)
	assert.Equal(t, 0.0, s.Median())
	assert.InDelta(t, 3.7, s.Variance(), 1e-9)
	assert.InDelta(t, math.Sqrt(3.7), s.StdDev(), 1e-9)
	assert.InDelta(t, math.Sqrt(3.7)/math.Sqrt(5), s.StdError(), 1e-9)
}

func TestSample_Percentiles(t *testing.T) {
	var s Sample
	for i := 1; i <= 5; i++ {
		s.Add(float64(i))
	}

	tests := []struct {
		percentile float64
		expected   float64
	}{
		{0.0, 1.0},
		{0.25, 2.0},
		{0.5, 3.0},
		{0.75, 4.0},
		{1.0, 5.0},
		{0.1, 1.4},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.expected, s.Percentile(tt.percentile), 1e-9, "percentile %.2f", tt.percentile)
	}
}

func TestPlayerStats_WinRate(t *testing.T) {
	p := &PlayerStats{Games: 100, Wins: 25}
	assert.Equal(t, 0.25, p.WinRate())

	low, high := p.WinRateCI95()
	assert.Less(t, low, 0.25)
	assert.Greater(t, high, 0.25)
	assert.InDelta(t, 0.176, low, 0.001)
	assert.InDelta(t, 0.343, high, 0.001)

	never := &PlayerStats{Games: 10}
	low, high = never.WinRateCI95()
	assert.Equal(t, 0.0, low)
	assert.Greater(t, high, 0.0)

	empty := &PlayerStats{}
	assert.Equal(t, 0.0, empty.WinRate())
	low, high = empty.WinRateCI95()
	assert.Equal(t, 0.0, low)
	assert.Equal(t, 0.0, high)
}

func result(seed int64, order ...string) GameResult {
	placements := make(map[string]int)
	for i, name := range order {
		placements[name] = len(order) - i
	}
	return GameResult{
		Seed:       seed,
		Winner:     order[len(order)-1],
		Rounds:     len(order) - 1,
		Placements: placements,
		Strategies: map[string]string{"a": "zero", "b": "half", "c": "all-in"},
	}
}

func TestStatistics_Add(t *testing.T) {
	var s Statistics
	s.Add(result(1, "a", "b", "c"))
	s.Add(result(2, "b", "a", "c"))
	s.Add(result(3, "c", "a", "b"))

	require.NoError(t, s.Validate())
	assert.Equal(t, 3, s.Games)
	assert.Equal(t, []int64{1, 2, 3}, s.Seeds)
	assert.Equal(t, 2.0, s.Rounds.Mean())

	c, ok := s.Player("c")
	require.True(t, ok)
	assert.Equal(t, "all-in", c.Strategy)
	assert.Equal(t, 2, c.Wins)
	assert.InDelta(t, (1+1+3)/3.0, c.Placements.Mean(), 1e-9)

	ranking := s.Ranking()
	require.Len(t, ranking, 3)
	assert.Equal(t, "c", ranking[0].Name)
	assert.Equal(t, "b", ranking[1].Name)
	assert.Equal(t, "a", ranking[2].Name)
}

func TestStatistics_Validate(t *testing.T) {
	var empty Statistics
	assert.ErrorContains(t, empty.Validate(), "invalid games count")

	var s Statistics
	s.Add(result(1, "a", "b", "c"))
	s.Players["a"].Wins = 1
	assert.ErrorContains(t, s.Validate(), "total wins")
}

func TestNewGameResult(t *testing.T) {
	r := &game.Result{
		GameID:       "g1",
		Winner:       "c",
		Eliminations: []string{"a", "b", "c"},
		History: game.History{
			{Round: 0, Funds: map[string]float64{"a": 10, "b": 10, "c": 10}},
			{Round: 1, Funds: map[string]float64{"b": 12, "c": 18}},
			{Round: 2, Funds: map[string]float64{"c": 30}},
		},
		Rounds: make([]game.RoundRecord, 2),
	}

	gr := NewGameResult(7, r, map[string]string{"c": "risky"})
	assert.Equal(t, int64(7), gr.Seed)
	assert.Equal(t, "g1", gr.GameID)
	assert.Equal(t, 2, gr.Rounds)
	assert.Equal(t, map[string]int{"a": 3, "b": 2, "c": 1}, gr.Placements)
}

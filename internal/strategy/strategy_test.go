package strategy

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/liarsgame/internal/game"
	"github.com/lox/liarsgame/internal/randutil"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func state(self string, funds map[string]float64, order ...string) game.GameState {
	s := game.GameState{Self: self}
	for _, name := range order {
		s.Players = append(s.Players, game.PlayerState{Name: name, Funds: funds[name]})
	}
	return s
}

func ptr[T any](v T) *T { return &v }

func TestConstant(t *testing.T) {
	s := state("a", map[string]float64{"a": 10, "b": 20}, "a", "b")

	assert.Equal(t, 0.3, NewConstant(0.3).Decide(s))
	assert.Equal(t, "zero", NewConstant(0).Name())
	assert.Equal(t, "all-in", NewConstant(1).Name())
	assert.Equal(t, "constant(0.25)", NewConstant(0.25).Name())
}

func TestUniform(t *testing.T) {
	u := NewUniform(randutil.New(1), testLogger())
	s := state("a", map[string]float64{"a": 10}, "a")

	for range 100 {
		f := u.Decide(s)
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}
}

func TestRisky_WindowThenMinimal(t *testing.T) {
	r := NewRisky(RiskyOptions{Rounds: 2, Bias: 0.2, Scale: 0.3, Epsilon: 0.01}, randutil.New(7), testLogger())
	s := state("me", map[string]float64{"me": 40, "poor": 10, "rich": 50}, "me", "poor", "rich")

	// Inside the window the amount lies in [0.2, 0.5) x poorest balance.
	for range 2 {
		f := r.Decide(s)
		amount := f * 40
		assert.GreaterOrEqual(t, amount, 2.0)
		assert.Less(t, amount, 5.0)
	}

	// Afterwards it offers the poorest balance plus epsilon, whatever the
	// other balances look like.
	for range 3 {
		assert.InDelta(t, 10.01/40, r.Decide(s), 1e-12)
	}
	s = state("me", map[string]float64{"me": 40, "poor": 20, "rich": 30}, "me", "poor", "rich")
	assert.InDelta(t, 20.01/40, r.Decide(s), 1e-12)
}

func TestRandomStrategies_NilLogger(t *testing.T) {
	s := state("me", map[string]float64{"me": 40, "other": 10}, "me", "other")

	assert.NotPanics(t, func() {
		f := NewUniform(randutil.New(1), nil).Decide(s)
		assert.GreaterOrEqual(t, f, 0.0)
	})
	assert.NotPanics(t, func() {
		r := NewRisky(DefaultRiskyOptions, randutil.New(1), nil)
		for range DefaultRiskyOptions.Rounds + 1 {
			r.Decide(s)
		}
	})
}

func TestRisky_PoorestAsksForMoreThanItHas(t *testing.T) {
	r := NewRisky(RiskyOptions{Rounds: 0, Epsilon: 0.5}, randutil.New(1), testLogger())
	s := state("me", map[string]float64{"me": 10, "other": 30}, "me", "other")

	// The engine clamps this to everything.
	assert.Greater(t, r.Decide(s), 1.0)
}

func TestRisky_BrokePlayerBidsNothing(t *testing.T) {
	r := NewRisky(DefaultRiskyOptions, randutil.New(1), testLogger())
	s := state("me", map[string]float64{"me": 0, "other": 30}, "me", "other")

	assert.Equal(t, 0.0, r.Decide(s))
}

func TestUndercut(t *testing.T) {
	u := NewUndercut(0.1)
	s := state("me", map[string]float64{"me": 20, "poor": 5, "rich": 75}, "me", "poor", "rich")

	assert.InDelta(t, 5.1/20, u.Decide(s), 1e-12)
	assert.Equal(t, "undercut", u.Name())
}

func TestProportional(t *testing.T) {
	p := NewProportional(0.5)
	s := state("me", map[string]float64{"me": 10, "other": 30}, "me", "other")

	// average 20, half of it is 10: everything this player has
	assert.InDelta(t, 1.0, p.Decide(s), 1e-12)

	s.Self = "other"
	assert.InDelta(t, 10.0/30, p.Decide(s), 1e-12)

	assert.Equal(t, 0.0, p.Decide(game.GameState{}))
}

func TestNew(t *testing.T) {
	rng := randutil.New(1)

	tests := []struct {
		spec Spec
		name string
	}{
		{Spec{Kind: "zero"}, "zero"},
		{Spec{Kind: "all-in"}, "all-in"},
		{Spec{Kind: "half"}, "constant(0.5)"},
		{Spec{Kind: "constant", Fraction: ptr(0.75)}, "constant(0.75)"},
		{Spec{Kind: "uniform"}, "uniform"},
		{Spec{Kind: "RISKY", Rounds: ptr(5)}, "risky"},
		{Spec{Kind: "undercut", Epsilon: ptr(0.2)}, "undercut"},
		{Spec{Kind: "proportional", Target: ptr(0.9)}, "proportional"},
	}

	for _, tt := range tests {
		t.Run(tt.spec.Kind, func(t *testing.T) {
			s, err := New(tt.spec, rng, testLogger())
			require.NoError(t, err)
			assert.Equal(t, tt.name, game.StrategyName(s))
		})
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := New(Spec{Kind: "telepathic"}, randutil.New(1), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown strategy")
	assert.Contains(t, err.Error(), "risky")

	_, err = New(Spec{Kind: "constant"}, nil, nil)
	assert.ErrorContains(t, err, "requires a fraction")

	_, err = New(Spec{Kind: "uniform"}, nil, nil)
	assert.ErrorContains(t, err, "random source")

	_, err = New(Spec{Kind: "risky", Rounds: ptr(-1)}, randutil.New(1), nil)
	assert.ErrorContains(t, err, "must not be negative")
}

func TestRiskyDefaults(t *testing.T) {
	s, err := New(Spec{Kind: "risky", Bias: ptr(0.1)}, randutil.New(1), nil)
	require.NoError(t, err)

	r := s.(*Risky)
	assert.Equal(t, DefaultRiskyOptions.Rounds, r.rounds)
	assert.Equal(t, 0.1, r.bias)
	assert.Equal(t, DefaultRiskyOptions.Scale, r.scale)
	assert.Equal(t, DefaultRiskyOptions.Epsilon, r.epsilon)
}

func TestKinds(t *testing.T) {
	kinds := Kinds()
	require.Len(t, kinds, len(Names()))
	for i := 1; i < len(kinds); i++ {
		assert.Less(t, kinds[i-1].Name, kinds[i].Name)
	}
	assert.True(t, Known("Risky"))
	assert.False(t, Known("telepathic"))
}

func TestUndercutBeatsCautiousField(t *testing.T) {
	rng := randutil.New(3)
	players := []game.Player{
		{Name: "undercut", Strategy: NewUndercut(0.01)},
		{Name: "half-1", Strategy: NewConstant(0.5)},
		{Name: "half-2", Strategy: NewConstant(0.5)},
		{Name: "zero", Strategy: NewConstant(0)},
	}

	e, err := game.NewEngine(players, game.Config{Rand: rng, Logger: testLogger()})
	require.NoError(t, err)
	result, err := e.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "undercut", result.Winner)
	assert.Equal(t, "zero", result.Eliminations[0])
}

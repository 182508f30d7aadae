// Package strategy provides the built-in Liars Game strategies and a registry
// that builds them by name.
package strategy

import (
	"fmt"
	"io"
	rand "math/rand/v2"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/lox/liarsgame/internal/game"
)

// Spec describes a strategy by kind plus optional parameters. Unset
// parameters fall back to the kind's defaults.
type Spec struct {
	Kind     string
	Fraction *float64 // constant
	Rounds   *int     // risky
	Bias     *float64 // risky
	Scale    *float64 // risky
	Epsilon  *float64 // risky, undercut
	Target   *float64 // proportional
}

// Kind describes a registered strategy.
type Kind struct {
	Name        string
	Description string
	Random      bool // Draws from its generator
}

type factory func(spec Spec, rng *rand.Rand, logger *log.Logger) (game.Strategy, error)

type entry struct {
	Kind
	build factory
}

var registry = map[string]entry{
	"constant": {
		Kind: Kind{Name: "constant", Description: "always bid `fraction` of own funds"},
		build: func(spec Spec, _ *rand.Rand, _ *log.Logger) (game.Strategy, error) {
			if spec.Fraction == nil {
				return nil, fmt.Errorf("constant strategy requires a fraction")
			}
			return NewConstant(*spec.Fraction), nil
		},
	},
	"zero": {
		Kind: Kind{Name: "zero", Description: "always bid nothing"},
		build: func(Spec, *rand.Rand, *log.Logger) (game.Strategy, error) {
			return NewConstant(0), nil
		},
	},
	"half": {
		Kind: Kind{Name: "half", Description: "always bid half of own funds"},
		build: func(Spec, *rand.Rand, *log.Logger) (game.Strategy, error) {
			return NewConstant(0.5), nil
		},
	},
	"all-in": {
		Kind: Kind{Name: "all-in", Description: "always bid everything"},
		build: func(Spec, *rand.Rand, *log.Logger) (game.Strategy, error) {
			return NewConstant(1), nil
		},
	},
	"uniform": {
		Kind: Kind{Name: "uniform", Description: "bid a uniformly random fraction", Random: true},
		build: func(_ Spec, rng *rand.Rand, logger *log.Logger) (game.Strategy, error) {
			return NewUniform(rng, logger), nil
		},
	},
	"risky": {
		Kind: Kind{
			Name:        "risky",
			Description: "gamble (bias + scale*U) x poorest balance for `rounds`, then bid poorest balance + epsilon",
			Random:      true,
		},
		build: func(spec Spec, rng *rand.Rand, logger *log.Logger) (game.Strategy, error) {
			opts := DefaultRiskyOptions
			if spec.Rounds != nil {
				opts.Rounds = *spec.Rounds
			}
			if spec.Bias != nil {
				opts.Bias = *spec.Bias
			}
			if spec.Scale != nil {
				opts.Scale = *spec.Scale
			}
			if spec.Epsilon != nil {
				opts.Epsilon = *spec.Epsilon
			}
			if opts.Rounds < 0 {
				return nil, fmt.Errorf("risky strategy rounds must not be negative, got %d", opts.Rounds)
			}
			return NewRisky(opts, rng, logger), nil
		},
	},
	"undercut": {
		Kind: Kind{Name: "undercut", Description: "bid poorest balance + epsilon from the first round"},
		build: func(spec Spec, _ *rand.Rand, _ *log.Logger) (game.Strategy, error) {
			epsilon := DefaultRiskyOptions.Epsilon
			if spec.Epsilon != nil {
				epsilon = *spec.Epsilon
			}
			return NewUndercut(epsilon), nil
		},
	},
	"proportional": {
		Kind: Kind{Name: "proportional", Description: "bid `target` x the average balance"},
		build: func(spec Spec, _ *rand.Rand, _ *log.Logger) (game.Strategy, error) {
			target := 0.5
			if spec.Target != nil {
				target = *spec.Target
			}
			return NewProportional(target), nil
		},
	},
}

// New builds the strategy described by spec. Random strategies draw from rng,
// which must not be shared with another game running concurrently.
func New(spec Spec, rng *rand.Rand, logger *log.Logger) (game.Strategy, error) {
	e, ok := registry[strings.ToLower(spec.Kind)]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q (known: %s)", spec.Kind, strings.Join(Names(), ", "))
	}
	if e.Random && rng == nil {
		return nil, fmt.Errorf("strategy %q needs a random source", spec.Kind)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return e.build(spec, rng, logger)
}

// Known reports whether kind is registered.
func Known(kind string) bool {
	_, ok := registry[strings.ToLower(kind)]
	return ok
}

// Names returns the registered strategy names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Kinds returns every registered strategy, sorted by name.
func Kinds() []Kind {
	names := Names()
	kinds := make([]Kind, len(names))
	for i, name := range names {
		kinds[i] = registry[name].Kind
	}
	return kinds
}

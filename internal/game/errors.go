package game

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is matched by every *ConfigurationError.
	ErrConfiguration = errors.New("invalid game configuration")

	// ErrStrategy is matched by every *StrategyError.
	ErrStrategy = errors.New("strategy failed")

	// ErrConservation reports that a round created or destroyed funds.
	ErrConservation = errors.New("funds conservation violated")

	// ErrGameFinished is returned when Run is called on a completed game.
	ErrGameFinished = errors.New("game already finished")
)

// ConfigurationError describes why a game could not be constructed.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrConfiguration, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func configErrorf(format string, args ...any) error {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// StrategyError reports a strategy that returned a non-numeric fraction or
// panicked. The game cannot continue past it.
type StrategyError struct {
	Player string
	Round  int
	Value  float64 // The offending value, NaN for panics
	Cause  error   // Recovered panic, if any
}

func (e *StrategyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: player %s in round %d: %v", ErrStrategy, e.Player, e.Round, e.Cause)
	}
	return fmt.Sprintf("%s: player %s in round %d returned non-numeric fraction %v", ErrStrategy, e.Player, e.Round, e.Value)
}

func (e *StrategyError) Is(target error) bool {
	return target == ErrStrategy
}

func (e *StrategyError) Unwrap() error {
	return e.Cause
}

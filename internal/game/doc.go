// Package game implements the Liars Game elimination engine.
//
// A game starts with at least three players sharing a fixed pool of funds
// equally. Every round each active player's Strategy chooses a fraction of
// its current funds to contribute. The lowest contributor is eliminated
// (ties broken uniformly at random) and forfeits its whole balance to the
// pot, and the pot is shared evenly among the survivors. Rounds repeat until
// a single player remains.
//
// # Basic Usage
//
//	players := []game.Player{
//	    {Name: "alice", Strategy: strategy.NewConstant(0)},
//	    {Name: "bob", Strategy: strategy.NewConstant(0.5)},
//	    {Name: "carol", Strategy: strategy.NewConstant(1)},
//	}
//	engine, err := game.NewEngine(players, game.Config{Rand: randutil.New(42)})
//	if err != nil {
//	    return err
//	}
//	result, err := engine.Run(ctx)
//
// # Deterministic Testing
//
// All randomness used by the engine comes from Config.Rand. Strategies that
// need randomness should be built with their own generator derived from the
// same seed; with both fixed, a game's History and Eliminations are fully
// reproducible.
//
// # Invariants
//
// The engine checks after every round that the funds held by the active
// players add up to the funds held before the round, within floating point
// tolerance, and aborts with ErrConservation otherwise.
package game

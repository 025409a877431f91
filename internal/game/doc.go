// Package game implements the core simulation engine for the tableau
// building bird game: the turn/round state machine, the prompt/choice
// protocol with validation, base-action and power dispatch, and effect-based
// state mutation.
//
// The main type is Engine, which owns a GameState exclusively and advances
// it turn by turn. Decision points suspend into a PlayerAgent call, the
// only place control leaves the engine, and resume once the agent's Choice
// has been validated.
//
// # Determinism
//
// All randomness flows through a single *rand.Rand built from the game seed
// via randutil.New. Given the same seed and the same valid choice sequence,
// two runs produce identical effect logs, events, and final scores:
//
//	eng, _ := game.NewEngine(game.Config{
//		Registry: content.StarterSet(),
//		Agents:   []game.PlayerAgent{a, b},
//		Seed:     42,
//	})
//	result, _ := eng.Run(ctx)
//
// # Mutation model
//
// Effects are the only sanctioned path to mutate GameState; Events are
// derived commentary for observers. Observers are invoked synchronously
// immediately before an Effect is applied or an Event is processed, and
// must not mutate what they receive.
package game

package game

import "context"

// PlayerAgent is the decision-making collaborator. The engine suspends into
// exactly one of these calls whenever a decision is needed; no two prompts
// are ever outstanding at once. The engine imposes no timeout; a caller
// wanting one wraps the context.
//
// The returned Choice must match the prompt's kind and echo its id; any
// other shape is a protocol violation, not a game-rule violation.
type PlayerAgent interface {
	// ChooseStartingHand resolves the pre-game card/food draft.
	ChooseStartingHand(ctx context.Context, prompt *StartingHandPrompt) (*StartingHandChoice, error)

	// ChooseAction picks the base action for a turn.
	ChooseAction(ctx context.Context, prompt *TurnActionPrompt) (*TurnActionChoice, error)

	// ChooseOption answers every other decision point: power offers, food
	// selections, egg placements, draws, payments, and card/bird picks.
	ChooseOption(ctx context.Context, prompt Prompt) (Choice, error)
}

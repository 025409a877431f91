package game

import "fmt"

// Validation error codes. Machine-readable so callers can retry sensibly.
const (
	CodeQuantityMismatch      = "quantity_mismatch"
	CodeNotEligible           = "not_eligible"
	CodeCapacityExceeded      = "capacity_exceeded"
	CodeCostMismatch          = "cost_mismatch"
	CodeRerollIllegal         = "reroll_illegal"
	CodeInsufficientResources = "insufficient_resources"
)

// ValidationError reports a recoverable rejected choice. It is returned, not
// panicked, so the caller can re-prompt the same agent; the engine never
// guesses intent or coerces an invalid choice into a valid one.
type ValidationError struct {
	Code string
	Msg  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid choice (%s): %s", e.Code, e.Msg)
}

func invalid(code, format string, args ...any) *ValidationError {
	return &ValidationError{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// ProtocolError reports a programming-contract failure: the answer's kind
// does not match the outstanding prompt, or its id is stale. These are hard
// errors, not game conditions, and abort the game.
type ProtocolError struct {
	Want PromptKind
	Got  PromptKind
	Msg  string
}

func (e *ProtocolError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("protocol violation: %s", e.Msg)
	}
	return fmt.Sprintf("protocol violation: prompt kind %s answered with %s", e.Want, e.Got)
}

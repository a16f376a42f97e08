package eval

import (
	"errors"
	"fmt"
)

// ErrUnknownPredicate reports a Predicate.Kind this evaluator has no case
// for, which indicates a formula package change this evaluator was not
// updated for rather than a malformed input formula.
var ErrUnknownPredicate = errors.New("eval: unknown predicate kind")

// ErrUnknownFormula is the Formula.Kind analog of ErrUnknownPredicate.
var ErrUnknownFormula = errors.New("eval: unknown formula kind")

// EvalError wraps a lower-level error with the formula node being evaluated
// when it occurred, including automaton.DeterminizationError surfaced from
// finalizing a result past pasconfig.Config.MaxDeterminizationStates.
type EvalError struct {
	Node string
	Err  error
}

func (e *EvalError) Error() string { return fmt.Sprintf("eval: %s: %v", e.Node, e.Err) }
func (e *EvalError) Unwrap() error { return e.Err }

package automaton

import (
	"errors"
	"fmt"
)

// Sentinel errors for the automaton package, following the error-value
// convention of the rest of the engine: recoverable, user-triggerable
// conditions are sentinel errors or wrapping structs; anything below is a
// logic-invariant violation and is meant to be surfaced as a fatal error by
// callers, never silently recovered.
var (
	// ErrEmptyInitialSet indicates an NFA was constructed with no initial
	// states, violating the invariant that the initial set is non-empty.
	ErrEmptyInitialSet = errors.New("automaton: NFA initial state set must be non-empty")

	// ErrTrackMismatch indicates two automata were combined (join,
	// product) without first synchronizing their track counts.
	ErrTrackMismatch = errors.New("automaton: track count mismatch")

	// ErrInvalidState indicates a StateID outside the valid range for a
	// table was dereferenced.
	ErrInvalidState = errors.New("automaton: invalid state id")
)

// DeterminizationError reports that DeterminizeBounded's subset construction
// materialized more states than its budget allowed. Callers (package eval,
// via pasconfig.Config.MaxDeterminizationStates) should surface this as the
// "controlled allocation error" failure mode rather than let the process
// grow the table unbounded.
type DeterminizationError struct {
	Limit   int
	Reached int
}

func (e *DeterminizationError) Error() string {
	return fmt.Sprintf("automaton: determinization exceeded state budget %d (reached %d)", e.Limit, e.Reached)
}

// InvariantError reports a logic-invariant violation in the engine: state 0
// missing from a DFA, a table not fully populated, or similar conditions
// that indicate a bug in the engine rather than bad user input. Per the
// propagation policy (spec §7), callers should treat this as fatal and
// never attempt to recover from it.
type InvariantError struct {
	Component string
	Detail    string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("automaton: invariant violated in %s: %s", e.Component, e.Detail)
}

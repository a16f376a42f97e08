package pas

import (
	"errors"
	"fmt"
)

// ErrUnknownSet indicates a command referenced a set name that was never
// defined in the engine's registry.
var ErrUnknownSet = errors.New("pas: unknown set name")

// ErrDuplicateSet indicates Define was called twice for the same name
// without an intervening removal; this is a semantic ill-formedness, not
// an invariant violation, so it is a recoverable error.
var ErrDuplicateSet = errors.New("pas: duplicate set name")

// ErrNotImplemented marks an External Interfaces surface (surface parser,
// PNG/DOT rendering, file I/O) that this engine scopes out of its core
// and leaves as an interface for an ecosystem-specific consumer to supply.
var ErrNotImplemented = errors.New("pas: not implemented by the core engine")

// ErrTrackCountForRender indicates render_png/nfa_dot was requested against
// a set that does not have exactly 2 tracks (rendering only makes sense
// for a 2-track set).
var ErrTrackCountForRender = errors.New("pas: render commands require a 2-track set")

// CommandError reports the command and set name a script command failed on,
// following automaton.InvariantError / eval.EvalError's wrapping shape.
type CommandError struct {
	Command string
	SetName string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("pas: %s(%s): %v", e.Command, e.SetName, e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }

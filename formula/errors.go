package formula

import (
	"errors"
	"fmt"
)

// ErrUnimplementedPredicate indicates a predicate family the evaluator does
// not implement (e.g. a generalized n-ary relation beyond the ones
// names).
var ErrUnimplementedPredicate = errors.New("formula: unimplemented predicate family")

// LoweringError wraps a failure encountered while lowering or validating a
// formula, carrying the offending node for diagnostics.
type LoweringError struct {
	Node string
	Err  error
}

func (e *LoweringError) Error() string {
	return fmt.Sprintf("formula: %s: %v", e.Node, e.Err)
}

func (e *LoweringError) Unwrap() error {
	return e.Err
}

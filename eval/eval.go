// Package eval implements the recursive evaluator: it walks a low-level
// formula (package formula) and builds the Automatic Set it denotes, one
// primitive relation, union, negation, and existential quantifier at a
// time, calling straight into package aset's set-algebra primitives.
package eval

import (
	"github.com/rs/zerolog"

	"github.com/pas-lang/pas/aset"
	"github.com/pas-lang/pas/formula"
	"github.com/pas-lang/pas/name"
	"github.com/pas-lang/pas/pasconfig"
)

// Evaluator holds the (optional) structured logger used to trace
// evaluation, and the resource-limit config enforced when the final result
// is determinized. The zero value is not usable; use NewEvaluator or
// DefaultEvaluator.
type Evaluator struct {
	log zerolog.Logger
	cfg pasconfig.Config
}

// NewEvaluator builds an Evaluator that traces operations to log and
// enforces cfg's resource limits.
func NewEvaluator(log zerolog.Logger, cfg pasconfig.Config) *Evaluator {
	return &Evaluator{log: log, cfg: cfg}
}

// DefaultEvaluator builds an Evaluator with logging disabled and
// pasconfig.DefaultConfig's limits.
func DefaultEvaluator() *Evaluator {
	return &Evaluator{log: zerolog.Nop(), cfg: pasconfig.DefaultConfig()}
}

// WithConfig returns a copy of e using cfg's resource limits.
func (e *Evaluator) WithConfig(cfg pasconfig.Config) *Evaluator {
	cp := *e
	cp.cfg = cfg
	return &cp
}

// Eval evaluates f into an Automatic Set whose tracks are exactly output, in
// that order: any free variable of f not present in output is
// existentially closed first, the result is then reordered to output, and
// finally forced to minimized-DFA form.
func (e *Evaluator) Eval(f *formula.Formula, output []name.Name) (*aset.Set, error) {
	s, err := e.evalFormula(f)
	if err != nil {
		return nil, err
	}

	declared := make(map[name.Name]bool, len(output))
	for _, n := range output {
		declared[n] = true
	}
	for _, free := range f.FreeVars() {
		if declared[free] {
			continue
		}
		e.log.Debug().Str("name", free.String()).Msg("eval: closing undeclared free variable")
		s = aset.Exists(free, s)
	}

	s = s.OrderTracks(output)
	if _, err := s.DFABounded(e.cfg.MaxDeterminizationStates); err != nil {
		return nil, &EvalError{Node: "finalize", Err: err}
	}
	return s, nil
}

func (e *Evaluator) evalFormula(f *formula.Formula) (*aset.Set, error) {
	switch f.Kind() {
	case formula.KindPredicate:
		return e.evalPredicate(f.AsPredicate())
	case formula.KindNeg:
		inner, err := e.evalFormula(f.Operand())
		if err != nil {
			return nil, &EvalError{Node: "neg", Err: err}
		}
		e.log.Debug().Msg("eval: neg")
		return aset.Neg(inner), nil
	case formula.KindOr:
		left, err := e.evalFormula(f.Left())
		if err != nil {
			return nil, &EvalError{Node: "or.left", Err: err}
		}
		right, err := e.evalFormula(f.Right())
		if err != nil {
			return nil, &EvalError{Node: "or.right", Err: err}
		}
		e.log.Debug().Msg("eval: union")
		return aset.Union(left, right), nil
	case formula.KindExists:
		body, err := e.evalFormula(f.Body())
		if err != nil {
			return nil, &EvalError{Node: "exists", Err: err}
		}
		e.log.Debug().Str("name", f.Bound().String()).Msg("eval: exists")
		return aset.Exists(f.Bound(), body), nil
	default:
		return nil, &EvalError{Node: "formula", Err: ErrUnknownFormula}
	}
}

func (e *Evaluator) evalPredicate(p formula.Predicate) (*aset.Set, error) {
	switch p.Kind() {
	case formula.True:
		return aset.Trivial(true), nil
	case formula.False:
		return aset.Trivial(false), nil
	case formula.EqConst:
		return aset.Singleton(p.X(), p.C()), nil
	case formula.Eq:
		return aset.Equivalence(p.X(), p.Y()), nil
	case formula.Double:
		return aset.Double(p.X(), p.Y()), nil
	case formula.Add:
		return aset.Addition(p.X(), p.Y(), p.Z()), nil
	default:
		return nil, &EvalError{Node: "predicate", Err: ErrUnknownPredicate}
	}
}

// Package formula implements the low-level predicate and formula trees that
// the evaluator (package eval) turns directly into automatic sets. This is
// the target language high-level formulas (package hlformula) lower into;
// it has no notion of multiplication, modulo, or comparisons beyond
// equality — those are all expanded away during lowering.
package formula

import "github.com/pas-lang/pas/name"

// PredicateKind tags which of the six primitive relations a Predicate holds.
type PredicateKind uint8

const (
	// True accepts every tuple (0-ary).
	True PredicateKind = iota
	// False accepts no tuple (0-ary).
	False
	// EqConst accepts x == c for a fixed constant c.
	EqConst
	// Eq accepts x == y.
	Eq
	// Double accepts y == 2*x.
	Double
	// Add accepts z == x + y.
	Add
)

// String renders the kind for diagnostics.
func (k PredicateKind) String() string {
	switch k {
	case True:
		return "true"
	case False:
		return "false"
	case EqConst:
		return "eq_const"
	case Eq:
		return "eq"
	case Double:
		return "double"
	case Add:
		return "add"
	default:
		return "unknown"
	}
}

// Predicate is one of the engine's six primitive relations over declared
// names. Which fields are meaningful depends on Kind: EqConst uses X and C;
// Eq and Double use X and Y; Add uses X, Y and Z; True and False use none.
type Predicate struct {
	kind PredicateKind
	x, y, z name.Name
	c       uint64
}

// NewTrue builds the always-true 0-ary predicate.
func NewTrue() Predicate { return Predicate{kind: True} }

// NewFalse builds the always-false 0-ary predicate.
func NewFalse() Predicate { return Predicate{kind: False} }

// NewEqConst builds the predicate x == c.
func NewEqConst(x name.Name, c uint64) Predicate {
	return Predicate{kind: EqConst, x: x, c: c}
}

// NewEq builds the predicate x == y.
func NewEq(x, y name.Name) Predicate {
	return Predicate{kind: Eq, x: x, y: y}
}

// NewDouble builds the predicate y == 2*x.
func NewDouble(x, y name.Name) Predicate {
	return Predicate{kind: Double, x: x, y: y}
}

// NewAdd builds the predicate z == x + y.
func NewAdd(x, y, z name.Name) Predicate {
	return Predicate{kind: Add, x: x, y: y, z: z}
}

// Kind reports which primitive relation this predicate holds.
func (p Predicate) Kind() PredicateKind { return p.kind }

// X returns the predicate's first operand. Valid for EqConst, Eq, Double, Add.
func (p Predicate) X() name.Name { return p.x }

// Y returns the predicate's second operand. Valid for Eq, Double, Add.
func (p Predicate) Y() name.Name { return p.y }

// Z returns the predicate's third operand. Valid for Add only.
func (p Predicate) Z() name.Name { return p.z }

// C returns the constant operand. Valid for EqConst only.
func (p Predicate) C() uint64 { return p.c }

// Vars returns the predicate's free variables in a stable, kind-dependent
// order (x, y, z), skipping fields the kind does not use.
func (p Predicate) Vars() []name.Name {
	switch p.kind {
	case True, False:
		return nil
	case EqConst:
		return []name.Name{p.x}
	case Eq, Double:
		return []name.Name{p.x, p.y}
	case Add:
		return []name.Name{p.x, p.y, p.z}
	default:
		return nil
	}
}

package hlformula

import "github.com/pas-lang/pas/name"

// FKind tags which case of the high-level formula sum type a Formula holds.
type FKind uint8

const (
	FCompare FKind = iota
	FNot
	FAnd
	FOr
	FExists
	FForAll
)

// Formula is the high-level formula language a surface parser builds: a
// comparison between expressions, the boolean connectives not/and/or, and
// the quantifiers exists/forall. Lower compiles it into package formula's
// low-level predicate tree.
type Formula struct {
	kind     FKind
	cmp      Compare
	operands [2]*Formula
	bound    name.Name
}

// CompareFormula lifts a Compare into a Formula.
func CompareFormula(c Compare) *Formula {
	return &Formula{kind: FCompare, cmp: c}
}

// Not builds the negation of f.
func Not(f *Formula) *Formula {
	return &Formula{kind: FNot, operands: [2]*Formula{f, nil}}
}

// And builds the conjunction of a and b.
func And(a, b *Formula) *Formula {
	return &Formula{kind: FAnd, operands: [2]*Formula{a, b}}
}

// Or builds the disjunction of a and b.
func Or(a, b *Formula) *Formula {
	return &Formula{kind: FOr, operands: [2]*Formula{a, b}}
}

// ExistsF existentially quantifies n over body.
func ExistsF(n name.Name, body *Formula) *Formula {
	return &Formula{kind: FExists, operands: [2]*Formula{body, nil}, bound: n}
}

// ForAllF universally quantifies n over body.
func ForAllF(n name.Name, body *Formula) *Formula {
	return &Formula{kind: FForAll, operands: [2]*Formula{body, nil}, bound: n}
}

// Kind reports which case of the sum type f holds.
func (f *Formula) Kind() FKind { return f.kind }

// AsCompare returns the wrapped Compare. Valid only when Kind == FCompare.
func (f *Formula) AsCompare() Compare { return f.cmp }

// Operand returns Not's sub-formula. Valid only when Kind == FNot.
func (f *Formula) Operand() *Formula { return f.operands[0] }

// Left returns And/Or's first operand.
func (f *Formula) Left() *Formula { return f.operands[0] }

// Right returns And/Or's second operand.
func (f *Formula) Right() *Formula { return f.operands[1] }

// Bound returns the name Exists/ForAll quantifies over.
func (f *Formula) Bound() name.Name { return f.bound }

// Body returns Exists/ForAll's sub-formula.
func (f *Formula) Body() *Formula { return f.operands[0] }

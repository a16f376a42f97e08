package formula

import "github.com/pas-lang/pas/name"

// Kind tags which case of the low-level formula sum type a Formula holds.
type Kind uint8

const (
	// KindPredicate wraps a primitive Predicate.
	KindPredicate Kind = iota
	// KindNeg is the negation of a single sub-formula.
	KindNeg
	// KindOr is the disjunction of two sub-formulas.
	KindOr
	// KindExists existentially quantifies a name over a sub-formula.
	KindExists
)

// Formula is the low-level formula language the evaluator consumes: a
// primitive Predicate, or one of Neg / Or / Exists over sub-formulas. There
// is no base class; Kind is the tag and every method dispatches on it,
// following the DFA/NFA variant's shape in package automaton.
type Formula struct {
	kind     Kind
	pred     Predicate
	operands [2]*Formula
	bound    name.Name
}

// Pred lifts a primitive Predicate into a Formula.
func Pred(p Predicate) *Formula {
	return &Formula{kind: KindPredicate, pred: p}
}

// Not builds the negation of f, applying the cheap canonicalizations
// double-negation elimination and constant folding over True/False so that
// repeated lowering of `not (not φ)` and similar surface patterns does not
// grow the tree.
func Not(f *Formula) *Formula {
	if f.kind == KindNeg {
		return f.operands[0]
	}
	if f.kind == KindPredicate {
		switch f.pred.kind {
		case True:
			return Pred(NewFalse())
		case False:
			return Pred(NewTrue())
		}
	}
	return &Formula{kind: KindNeg, operands: [2]*Formula{f, nil}}
}

// Or builds the disjunction of a and b, folding away an already-True or
// already-False operand.
func Or(a, b *Formula) *Formula {
	if a.isConst(True) || b.isConst(True) {
		return Pred(NewTrue())
	}
	if a.isConst(False) {
		return b
	}
	if b.isConst(False) {
		return a
	}
	return &Formula{kind: KindOr, operands: [2]*Formula{a, b}}
}

// And builds the conjunction of a and b via De Morgan (¬(¬a ∨ ¬b)); the
// low-level language only has Or as a primitive connective.
func And(a, b *Formula) *Formula {
	return Not(Or(Not(a), Not(b)))
}

// Exists existentially quantifies n over body.
func Exists(n name.Name, body *Formula) *Formula {
	return &Formula{kind: KindExists, operands: [2]*Formula{body, nil}, bound: n}
}

// ForAll universally quantifies n over body via ¬∃n.¬body.
func ForAll(n name.Name, body *Formula) *Formula {
	return Not(Exists(n, Not(body)))
}

// CloseIfTemporary wraps body in an existential quantifier over n only when
// n is a temporary name; otherwise it returns body unchanged. This is the
// lowering discipline this engine's design calls for: temporaries must be
// closed as soon as they escape the scope that introduced them, while
// user and anonymous names are left for an outer caller to close.
func CloseIfTemporary(n name.Name, body *Formula) *Formula {
	if !n.IsTemporary() {
		return body
	}
	return Exists(n, body)
}

func (f *Formula) isConst(k PredicateKind) bool {
	return f.kind == KindPredicate && f.pred.kind == k
}

// Kind reports which case of the sum type f holds.
func (f *Formula) Kind() Kind { return f.kind }

// AsPredicate returns the wrapped Predicate. Valid only when Kind ==
// KindPredicate.
func (f *Formula) AsPredicate() Predicate { return f.pred }

// Operand returns Neg's single sub-formula. Valid only when Kind == KindNeg.
func (f *Formula) Operand() *Formula { return f.operands[0] }

// Left returns Or's first disjunct. Valid only when Kind == KindOr.
func (f *Formula) Left() *Formula { return f.operands[0] }

// Right returns Or's second disjunct. Valid only when Kind == KindOr.
func (f *Formula) Right() *Formula { return f.operands[1] }

// Bound returns the name Exists quantifies over. Valid only when Kind ==
// KindExists.
func (f *Formula) Bound() name.Name { return f.bound }

// Body returns Exists's sub-formula. Valid only when Kind == KindExists.
func (f *Formula) Body() *Formula { return f.operands[0] }

// FreeVars returns f's free variables, deduplicated, in first-occurrence
// order under a pre-order walk, excluding any name bound by an enclosing
// Exists within f itself.
func (f *Formula) FreeVars() []name.Name {
	var out []name.Name
	seen := make(map[name.Name]bool)
	var walk func(node *Formula, bound map[name.Name]bool)
	walk = func(node *Formula, bound map[name.Name]bool) {
		switch node.kind {
		case KindPredicate:
			for _, v := range node.pred.Vars() {
				if bound[v] || seen[v] {
					continue
				}
				seen[v] = true
				out = append(out, v)
			}
		case KindNeg:
			walk(node.operands[0], bound)
		case KindOr:
			walk(node.operands[0], bound)
			walk(node.operands[1], bound)
		case KindExists:
			inner := make(map[name.Name]bool, len(bound)+1)
			for k := range bound {
				inner[k] = true
			}
			inner[node.bound] = true
			walk(node.operands[0], inner)
		}
	}
	walk(f, map[name.Name]bool{})
	return out
}

// Size counts the total number of nodes in f (predicates, negations,
// disjunctions, and quantifiers all count as one node each).
func (f *Formula) Size() int {
	switch f.kind {
	case KindPredicate:
		return 1
	case KindNeg, KindExists:
		return 1 + f.operands[0].Size()
	case KindOr:
		return 1 + f.operands[0].Size() + f.operands[1].Size()
	default:
		return 1
	}
}

// Depth returns the height of f's tree (a bare predicate has depth 1).
func (f *Formula) Depth() int {
	switch f.kind {
	case KindPredicate:
		return 1
	case KindNeg, KindExists:
		return 1 + f.operands[0].Depth()
	case KindOr:
		l, r := f.operands[0].Depth(), f.operands[1].Depth()
		if l > r {
			return 1 + l
		}
		return 1 + r
	default:
		return 1
	}
}

// Package hlformula implements the high-level expression and formula
// language a surface parser would produce (arithmetic expressions with
// addition, scalar multiplication, and modulo; comparisons; boolean
// connectives; quantifiers), together with the lowering algorithm that
// compiles it down to package formula's low-level predicate tree.
//
// hlformula depends on formula and name only; it knows nothing about
// automata. This mirrors coregex's layering of regexp/syntax (the parsed
// AST) below its nfa compiler: the high-level tree is built and validated
// independently of the engine that eventually consumes its lowered form.
package hlformula

import "github.com/pas-lang/pas/name"

// ExprKind tags which case of the expression sum type an Expr holds.
type ExprKind uint8

const (
	// ExprVariable is a bare declared or temporary name.
	ExprVariable ExprKind = iota
	// ExprConstant is a literal natural number.
	ExprConstant
	// ExprAdd is the sum of a list of sub-expressions.
	ExprAdd
	// ExprMul is a sub-expression scaled by a constant factor.
	ExprMul
	// ExprMod is a sub-expression reduced modulo a constant.
	ExprMod
)

// Expr is a high-level arithmetic expression: a variable, a constant, a sum
// of sub-expressions, or a sub-expression scaled or reduced modulo a
// constant factor. Two-variable multiplication is out of scope
// Non-goals); Mul only ever scales by a compile-time constant.
type Expr struct {
	kind     ExprKind
	variable name.Name
	constant uint64
	operands []*Expr
	factor   uint64
}

// Variable builds an Expr referencing a declared or temporary name.
func Variable(n name.Name) *Expr {
	return &Expr{kind: ExprVariable, variable: n}
}

// Constant builds an Expr holding a literal natural number.
func Constant(c uint64) *Expr {
	return &Expr{kind: ExprConstant, constant: c}
}

// Add builds the sum of two or more sub-expressions, flattening any
// operand that is itself an ExprAdd so that `a + (b + c)` and `(a + b) + c`
// lower identically.
func Add(operands ...*Expr) *Expr {
	var flat []*Expr
	for _, o := range operands {
		if o.kind == ExprAdd {
			flat = append(flat, o.operands...)
		} else {
			flat = append(flat, o)
		}
	}
	return &Expr{kind: ExprAdd, operands: flat}
}

// Mul builds e scaled by the constant factor c.
func Mul(e *Expr, c uint64) *Expr {
	return &Expr{kind: ExprMul, operands: []*Expr{e}, factor: c}
}

// Mod builds e reduced modulo the constant c. c must be non-zero; a zero
// modulus is a semantic ill-formedness caught at lowering time.
func Mod(e *Expr, c uint64) *Expr {
	return &Expr{kind: ExprMod, operands: []*Expr{e}, factor: c}
}

// Kind reports which case of the expression sum type e holds.
func (e *Expr) Kind() ExprKind { return e.kind }

// Variable returns the referenced name. Valid only when Kind == ExprVariable.
func (e *Expr) Variable() name.Name { return e.variable }

// ConstantValue returns the literal value. Valid only when Kind == ExprConstant.
func (e *Expr) ConstantValue() uint64 { return e.constant }

// Operands returns e's sub-expressions: the addends for ExprAdd, or a
// single-element slice holding the scaled/reduced operand for ExprMul and
// ExprMod.
func (e *Expr) Operands() []*Expr { return e.operands }

// Factor returns the scale or modulus constant. Valid only for ExprMul and
// ExprMod.
func (e *Expr) Factor() uint64 { return e.factor }

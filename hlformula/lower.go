package hlformula

import (
	"github.com/pas-lang/pas/formula"
	"github.com/pas-lang/pas/name"
	"github.com/pas-lang/pas/word"
)

// Lower compiles a high-level Formula into the low-level predicate tree
// package formula's evaluator consumes. Every temporary name
// minted along the way is existentially closed as soon as it escapes the
// scope that introduced it; any temporary that nonetheless reaches the
// result free is still safe, since eval closes remaining free variables
// before finalizing a set — this function does not need to
// out-think that backstop, only avoid leaving a temporary unconstrained.
func Lower(f *Formula) (*formula.Formula, error) {
	switch f.kind {
	case FCompare:
		return lowerCompare(f.cmp)
	case FNot:
		body, err := Lower(f.Operand())
		if err != nil {
			return nil, err
		}
		return formula.Not(body), nil
	case FAnd:
		left, err := Lower(f.Left())
		if err != nil {
			return nil, err
		}
		right, err := Lower(f.Right())
		if err != nil {
			return nil, err
		}
		return formula.And(left, right), nil
	case FOr:
		left, err := Lower(f.Left())
		if err != nil {
			return nil, err
		}
		right, err := Lower(f.Right())
		if err != nil {
			return nil, err
		}
		return formula.Or(left, right), nil
	case FExists:
		body, err := Lower(f.Body())
		if err != nil {
			return nil, err
		}
		return formula.Exists(f.Bound(), body), nil
	case FForAll:
		body, err := Lower(f.Body())
		if err != nil {
			return nil, err
		}
		return formula.ForAll(f.Bound(), body), nil
	default:
		return nil, &formula.LoweringError{Node: "Formula", Err: formula.ErrUnimplementedPredicate}
	}
}

func lowerCompare(c Compare) (*formula.Formula, error) {
	switch c.kind {
	case CmpEq:
		return lowerEq(c.left, c.right)
	case CmpLe:
		return lowerLe(c.left, c.right)
	case CmpLt:
		// x < y  <=>  not (y <= x)
		ge, err := lowerLe(c.right, c.left)
		if err != nil {
			return nil, err
		}
		return formula.Not(ge), nil
	case CmpGe:
		return lowerLe(c.right, c.left)
	case CmpGt:
		le, err := lowerLe(c.left, c.right)
		if err != nil {
			return nil, err
		}
		return formula.Not(le), nil
	default:
		return nil, &formula.LoweringError{Node: "Compare", Err: formula.ErrUnimplementedPredicate}
	}
}

// lowerEq lowers x == y. When both sides reduce to a bare variable or
// constant without intermediate arithmetic, it emits the direct EqConst/Eq
// optimization this lowering takes instead of routing through fresh
// temporaries.
func lowerEq(a, b *Expr) (*formula.Formula, error) {
	if a.kind == ExprVariable && b.kind == ExprConstant {
		return formula.Pred(formula.NewEqConst(a.variable, b.constant)), nil
	}
	if a.kind == ExprConstant && b.kind == ExprVariable {
		return formula.Pred(formula.NewEqConst(b.variable, a.constant)), nil
	}
	if a.kind == ExprVariable && b.kind == ExprVariable {
		return formula.Pred(formula.NewEq(a.variable, b.variable)), nil
	}

	av, aConstraint, err := lowerExpr(a)
	if err != nil {
		return nil, err
	}
	bv, bConstraint, err := lowerExpr(b)
	if err != nil {
		return nil, err
	}
	combined := formula.And(aConstraint, bConstraint)
	combined = formula.And(combined, formula.Pred(formula.NewEq(av, bv)))
	combined = formula.CloseIfTemporary(av, combined)
	combined = formula.CloseIfTemporary(bv, combined)
	return combined, nil
}

// lowerLe lowers x <= y as ∃d. x + d = y.
func lowerLe(a, b *Expr) (*formula.Formula, error) {
	av, aConstraint, err := lowerExpr(a)
	if err != nil {
		return nil, err
	}
	bv, bConstraint, err := lowerExpr(b)
	if err != nil {
		return nil, err
	}
	d := name.Fresh(name.Temporary, "d")
	combined := formula.And(aConstraint, bConstraint)
	combined = formula.And(combined, formula.Pred(formula.NewAdd(av, d, bv)))
	combined = formula.CloseIfTemporary(d, combined)
	combined = formula.CloseIfTemporary(av, combined)
	combined = formula.CloseIfTemporary(bv, combined)
	return combined, nil
}

// lowerExpr reduces a high-level expression to a name holding its value,
// plus a low-level formula constraining that name:
// a fresh temporary is minted for each internal result, and Mul unfolds by
// double-and-add on the bits of its constant factor.
func lowerExpr(e *Expr) (name.Name, *formula.Formula, error) {
	switch e.kind {
	case ExprVariable:
		return e.variable, formula.Pred(formula.NewTrue()), nil
	case ExprConstant:
		t := name.Fresh(name.Temporary, "c")
		return t, formula.Pred(formula.NewEqConst(t, e.constant)), nil
	case ExprAdd:
		return lowerAdd(e.operands)
	case ExprMul:
		if e.factor == 0 {
			return name.Name{}, nil, &formula.LoweringError{Node: "Mul", Err: ErrZeroFactor}
		}
		return lowerMulConst(e.operands[0], e.factor)
	case ExprMod:
		if e.factor == 0 {
			return name.Name{}, nil, &formula.LoweringError{Node: "Mod", Err: ErrZeroFactor}
		}
		return lowerMod(e.operands[0], e.factor)
	default:
		return name.Name{}, nil, &formula.LoweringError{Node: "Expr", Err: formula.ErrUnimplementedPredicate}
	}
}

func lowerAdd(operands []*Expr) (name.Name, *formula.Formula, error) {
	accVar, accConstraint, err := lowerExpr(operands[0])
	if err != nil {
		return name.Name{}, nil, err
	}
	for _, o := range operands[1:] {
		nextVar, nextConstraint, err := lowerExpr(o)
		if err != nil {
			return name.Name{}, nil, err
		}
		out := name.Fresh(name.Temporary, "a")
		combined := formula.And(accConstraint, nextConstraint)
		combined = formula.And(combined, formula.Pred(formula.NewAdd(accVar, nextVar, out)))
		combined = formula.CloseIfTemporary(accVar, combined)
		combined = formula.CloseIfTemporary(nextVar, combined)
		accVar, accConstraint = out, combined
	}
	return accVar, accConstraint, nil
}

// lowerMulConst lowers e*c (c > 0) by double-and-add on c's bits, processing
// from the least-significant bit upward: a running "current" variable holds
// 2^i * e and is doubled between bits; every set bit adds the current
// doubled value into the running output.
func lowerMulConst(e *Expr, c uint64) (name.Name, *formula.Formula, error) {
	curVar, constraint, err := lowerExpr(e)
	if err != nil {
		return name.Name{}, nil, err
	}

	bitLen := word.MinLength(c)
	var accVar name.Name
	haveAcc := false
	curIsAcc := false

	for i := 0; i < bitLen; i++ {
		bit := (c >> uint(i)) & 1
		if bit == 1 {
			if !haveAcc {
				accVar = curVar
				haveAcc = true
				curIsAcc = true
			} else {
				next := name.Fresh(name.Temporary, "m")
				constraint = formula.And(constraint, formula.Pred(formula.NewAdd(accVar, curVar, next)))
				constraint = formula.CloseIfTemporary(accVar, constraint)
				accVar = next
				curIsAcc = false
			}
		}
		if i < bitLen-1 {
			doubled := name.Fresh(name.Temporary, "d")
			constraint = formula.And(constraint, formula.Pred(formula.NewDouble(curVar, doubled)))
			if !curIsAcc {
				constraint = formula.CloseIfTemporary(curVar, constraint)
			}
			curVar = doubled
			curIsAcc = false
		}
	}
	if !curIsAcc {
		constraint = formula.CloseIfTemporary(curVar, constraint)
	}
	return accVar, constraint, nil
}

// lowerMod lowers e % c (c > 0): introduces fresh t, r and
// constrains e == t*c + r  ∧  r < c, closing t and every other temporary
// before returning r, left free, as the expression's value.
func lowerMod(e *Expr, c uint64) (name.Name, *formula.Formula, error) {
	t := name.Fresh(name.Temporary, "t")
	r := name.Fresh(name.Temporary, "r")

	eVar, eConstraint, err := lowerExpr(e)
	if err != nil {
		return name.Name{}, nil, err
	}
	mulVar, mulConstraint, err := lowerMulConst(Variable(t), c)
	if err != nil {
		return name.Name{}, nil, err
	}

	sum := name.Fresh(name.Temporary, "s")
	combined := formula.And(eConstraint, mulConstraint)
	combined = formula.And(combined, formula.Pred(formula.NewAdd(mulVar, r, sum)))
	combined = formula.And(combined, formula.Pred(formula.NewEq(sum, eVar)))

	// r < c  <=>  not (∃d. c + d = r), built here rather than through
	// lowerLe so that r itself stays free
	cVar := name.Fresh(name.Temporary, "c")
	d := name.Fresh(name.Temporary, "d")
	geCR := formula.And(formula.Pred(formula.NewEqConst(cVar, c)), formula.Pred(formula.NewAdd(cVar, d, r)))
	geCR = formula.CloseIfTemporary(d, geCR)
	geCR = formula.CloseIfTemporary(cVar, geCR)
	combined = formula.And(combined, formula.Not(geCR))

	combined = formula.CloseIfTemporary(eVar, combined)
	combined = formula.CloseIfTemporary(sum, combined)
	combined = formula.CloseIfTemporary(mulVar, combined)
	combined = formula.CloseIfTemporary(t, combined)
	return r, combined, nil
}

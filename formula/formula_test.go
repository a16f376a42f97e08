package formula

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pas-lang/pas/name"
)

func TestNotEliminatesDoubleNegation(t *testing.T) {
	x := name.NewUser("x")
	base := Pred(NewEqConst(x, 3))
	require.Same(t, base, Not(Not(base)))
}

func TestNotFoldsConstants(t *testing.T) {
	require.Equal(t, False, Not(Pred(NewTrue())).AsPredicate().Kind())
	require.Equal(t, True, Not(Pred(NewFalse())).AsPredicate().Kind())
}

func TestOrFoldsConstants(t *testing.T) {
	x := name.NewUser("x")
	p := Pred(NewEqConst(x, 1))
	require.Equal(t, True, Or(p, Pred(NewTrue())).AsPredicate().Kind())
	require.Same(t, p, Or(p, Pred(NewFalse())))
	require.Same(t, p, Or(Pred(NewFalse()), p))
}

func TestAndViaDeMorgan(t *testing.T) {
	x, y := name.NewUser("x"), name.NewUser("y")
	f := And(Pred(NewEqConst(x, 1)), Pred(NewEqConst(y, 2)))
	require.Equal(t, KindNeg, f.Kind())
	require.Equal(t, KindOr, f.Operand().Kind())
}

func TestCloseIfTemporaryOnlyWrapsTemporaries(t *testing.T) {
	user := name.NewUser("x")
	tmp := name.Fresh(name.Temporary, "t")
	body := Pred(NewEqConst(user, 0))

	require.Same(t, body, CloseIfTemporary(user, body))

	closed := CloseIfTemporary(tmp, body)
	require.Equal(t, KindExists, closed.Kind())
	require.True(t, closed.Bound().Equal(tmp))
}

func TestFreeVarsExcludesLocallyBound(t *testing.T) {
	x := name.NewUser("x")
	y := name.NewUser("y")
	z := name.NewUser("z")

	inner := Pred(NewAdd(x, y, z))
	quantified := Exists(y, inner)

	free := quantified.FreeVars()
	require.Len(t, free, 2)
	require.Contains(t, free, x)
	require.Contains(t, free, z)
	require.NotContains(t, free, y)
}

func TestFreeVarsDedups(t *testing.T) {
	x := name.NewUser("x")
	f := Or(Pred(NewEqConst(x, 1)), Pred(NewEqConst(x, 2)))
	require.Equal(t, []name.Name{x}, f.FreeVars())
}

func TestSizeAndDepth(t *testing.T) {
	x, y := name.NewUser("x"), name.NewUser("y")
	leaf := Pred(NewEq(x, y))
	require.Equal(t, 1, leaf.Size())
	require.Equal(t, 1, leaf.Depth())

	wrapped := Exists(x, Not(leaf))
	require.Equal(t, 3, wrapped.Size())
	require.Equal(t, 3, wrapped.Depth())
}

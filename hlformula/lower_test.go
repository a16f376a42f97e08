package hlformula

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pas-lang/pas/formula"
	"github.com/pas-lang/pas/name"
)

func TestLowerEqConstDirectOptimization(t *testing.T) {
	x := name.NewUser("x")
	f := CompareFormula(EqC(Variable(x), Constant(5)))
	low, err := Lower(f)
	require.NoError(t, err)
	require.Equal(t, formula.KindPredicate, low.Kind())
	require.Equal(t, formula.EqConst, low.AsPredicate().Kind())
	require.Equal(t, uint64(5), low.AsPredicate().C())
}

func TestLowerVariableEquality(t *testing.T) {
	x, y := name.NewUser("x"), name.NewUser("y")
	f := CompareFormula(EqC(Variable(x), Variable(y)))
	low, err := Lower(f)
	require.NoError(t, err)
	require.Equal(t, formula.Eq, low.AsPredicate().Kind())
}

func TestLowerLeIntroducesExists(t *testing.T) {
	x, y := name.NewUser("x"), name.NewUser("y")
	f := CompareFormula(LeC(Variable(x), Variable(y)))
	low, err := Lower(f)
	require.NoError(t, err)
	require.Equal(t, formula.KindExists, low.Kind())
}

func TestLowerLtIsNegatedGe(t *testing.T) {
	x, y := name.NewUser("x"), name.NewUser("y")
	f := CompareFormula(LtC(Variable(x), Variable(y)))
	low, err := Lower(f)
	require.NoError(t, err)
	require.Equal(t, formula.KindNeg, low.Kind())
}

func TestLowerMulByZeroIsError(t *testing.T) {
	x := name.NewUser("x")
	f := CompareFormula(EqC(Mul(Variable(x), 0), Constant(0)))
	_, err := Lower(f)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrZeroFactor)
}

func TestLowerModByZeroIsError(t *testing.T) {
	x := name.NewUser("x")
	f := CompareFormula(EqC(Mod(Variable(x), 0), Constant(0)))
	_, err := Lower(f)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrZeroFactor)
}

func TestLowerAddFlattensNestedSums(t *testing.T) {
	x, y, z := name.NewUser("x"), name.NewUser("y"), name.NewUser("z")
	flat := Add(Variable(x), Variable(y), Variable(z))
	nested := Add(Add(Variable(x), Variable(y)), Variable(z))
	require.Equal(t, len(flat.Operands()), len(nested.Operands()))
}

func TestLowerMulByOneIsIdentity(t *testing.T) {
	x := name.NewUser("x")
	f := CompareFormula(EqC(Mul(Variable(x), 1), Constant(7)))
	low, err := Lower(f)
	require.NoError(t, err)
	require.NotNil(t, low)
}

func TestLowerModWellFormed(t *testing.T) {
	x := name.NewUser("x")
	f := CompareFormula(EqC(Mod(Variable(x), 3), Constant(1)))
	low, err := Lower(f)
	require.NoError(t, err)
	require.NotNil(t, low)
}

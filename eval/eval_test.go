package eval

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pas-lang/pas/count"
	"github.com/pas-lang/pas/formula"
	"github.com/pas-lang/pas/hlformula"
	"github.com/pas-lang/pas/name"
	"github.com/pas-lang/pas/pasconfig"
)

func lowerOrDie(t *testing.T, f *hlformula.Formula) *formula.Formula {
	t.Helper()
	lowered, err := hlformula.Lower(f)
	require.NoError(t, err)
	return lowered
}

func TestEvalOfEqualityDisjunctionHasSizeTwo(t *testing.T) {
	// {x | x == 1 or x == 3}
	x := name.NewUser("x")
	hf := hlformula.Or(
		hlformula.CompareFormula(hlformula.EqC(hlformula.Variable(x), hlformula.Constant(1))),
		hlformula.CompareFormula(hlformula.EqC(hlformula.Variable(x), hlformula.Constant(3))),
	)
	lowered := lowerOrDie(t, hf)

	s, err := DefaultEvaluator().Eval(lowered, []name.Name{x})
	require.NoError(t, err)
	size, err := count.NumberOfElements(s.DFA())
	require.NoError(t, err)
	require.Equal(t, count.FiniteBound(2), size)
}

func TestEvalOfLessThanTenEnumeratesZeroThroughNine(t *testing.T) {
	x := name.NewUser("x")
	hf := hlformula.CompareFormula(hlformula.LtC(hlformula.Variable(x), hlformula.Constant(10)))
	lowered := lowerOrDie(t, hf)

	s, err := DefaultEvaluator().Eval(lowered, []name.Name{x})
	require.NoError(t, err)
	size, err := count.NumberOfElements(s.DFA())
	require.NoError(t, err)
	require.Equal(t, count.FiniteBound(10), size)

	for i := uint64(0); i < 10; i++ {
		nth, err := count.GetNthElement(s.DFA(), i)
		require.NoError(t, err)
		require.Equal(t, []uint64{i}, nth, "index %d", i)
	}
}

func TestEvalOfSuccessorRelation(t *testing.T) {
	// {x, y | x == y + 1}
	x, y := name.NewUser("x"), name.NewUser("y")
	hf := hlformula.CompareFormula(hlformula.EqC(
		hlformula.Variable(x),
		hlformula.Add(hlformula.Variable(y), hlformula.Constant(1)),
	))
	lowered := lowerOrDie(t, hf)

	s, err := DefaultEvaluator().Eval(lowered, []name.Name{x, y})
	require.NoError(t, err)

	nth0, err := count.GetNthElement(s.DFA(), 0)
	require.NoError(t, err)
	require.Equal(t, []uint64{1, 0}, nth0)

	nth, err := count.GetNthElement(s.DFA(), 7001)
	require.NoError(t, err)
	require.Equal(t, []uint64{7002, 7001}, nth)
}

func TestEvalOfScaledEqualityExcludingZero(t *testing.T) {
	// {x, y | 11*x == 3*y and not(x == 0)}
	x, y := name.NewUser("x"), name.NewUser("y")
	eleven := hlformula.Mul(hlformula.Variable(x), 11)
	three := hlformula.Mul(hlformula.Variable(y), 3)
	eq := hlformula.CompareFormula(hlformula.EqC(eleven, three))
	notZero := hlformula.Not(hlformula.CompareFormula(hlformula.EqC(hlformula.Variable(x), hlformula.Constant(0))))
	hf := hlformula.And(eq, notZero)
	lowered := lowerOrDie(t, hf)

	s, err := DefaultEvaluator().Eval(lowered, []name.Name{x, y})
	require.NoError(t, err)

	want := [][]uint64{{3, 11}, {6, 22}, {9, 33}}
	for i, w := range want {
		got, err := count.GetNthElement(s.DFA(), uint64(i))
		require.NoError(t, err)
		require.Equal(t, w, got, "index %d", i)
	}
}

func TestEvalOfDisjunctionFailsUnderTinyDeterminizationBudget(t *testing.T) {
	// the union of two singletons is left nondeterministic until
	// finalization, where subset construction needs more than one state.
	x := name.NewUser("x")
	one := hlformula.CompareFormula(hlformula.EqC(hlformula.Variable(x), hlformula.Constant(1)))
	three := hlformula.CompareFormula(hlformula.EqC(hlformula.Variable(x), hlformula.Constant(3)))
	hf := hlformula.Or(one, three)
	lowered := lowerOrDie(t, hf)

	cfg := pasconfig.DefaultConfig()
	cfg.MaxDeterminizationStates = 1
	_, err := DefaultEvaluator().WithConfig(cfg).Eval(lowered, []name.Name{x})
	require.Error(t, err)
}

func TestEvalOfContradictionIsEmpty(t *testing.T) {
	// {x | x < 100 and x > 100}
	x := name.NewUser("x")
	lt := hlformula.CompareFormula(hlformula.LtC(hlformula.Variable(x), hlformula.Constant(100)))
	gt := hlformula.CompareFormula(hlformula.GtC(hlformula.Variable(x), hlformula.Constant(100)))
	lowered := lowerOrDie(t, hlformula.And(lt, gt))

	s, err := DefaultEvaluator().Eval(lowered, []name.Name{x})
	require.NoError(t, err)
	require.True(t, s.IsEmpty())
}

func TestEvalOfPairBoundExceptionHasSize9901(t *testing.T) {
	// {x, y | x < 100 and y < 100 and not(x == y) or (x == 123 and y == 321)}
	x, y := name.NewUser("x"), name.NewUser("y")
	xLt := hlformula.CompareFormula(hlformula.LtC(hlformula.Variable(x), hlformula.Constant(100)))
	yLt := hlformula.CompareFormula(hlformula.LtC(hlformula.Variable(y), hlformula.Constant(100)))
	neq := hlformula.Not(hlformula.CompareFormula(hlformula.EqC(hlformula.Variable(x), hlformula.Variable(y))))
	left := hlformula.And(hlformula.And(xLt, yLt), neq)

	xIs123 := hlformula.CompareFormula(hlformula.EqC(hlformula.Variable(x), hlformula.Constant(123)))
	yIs321 := hlformula.CompareFormula(hlformula.EqC(hlformula.Variable(y), hlformula.Constant(321)))
	right := hlformula.And(xIs123, yIs321)

	hf := hlformula.Or(left, right)
	lowered := lowerOrDie(t, hf)

	s, err := DefaultEvaluator().Eval(lowered, []name.Name{x, y})
	require.NoError(t, err)
	size, err := count.NumberOfElements(s.DFA())
	require.NoError(t, err)
	require.Equal(t, count.FiniteBound(9901), size)
}

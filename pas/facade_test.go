package pas

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pas-lang/pas/count"
	"github.com/pas-lang/pas/hlformula"
	"github.com/pas-lang/pas/name"
)

func TestDefineAndLookupRoundTrip(t *testing.T) {
	x := name.NewUser("x")
	hf := hlformula.CompareFormula(hlformula.LtC(hlformula.Variable(x), hlformula.Constant(10)))
	lowered, err := hlformula.Lower(hf)
	require.NoError(t, err)

	e := DefaultEngine()
	_, err = e.Define("small", lowered, []name.Name{x})
	require.NoError(t, err)

	s, err := e.Lookup("small")
	require.NoError(t, err)
	size, err := count.NumberOfElements(s.DFA())
	require.NoError(t, err)
	require.Equal(t, count.FiniteBound(10), size)
}

func TestDefineRejectsDuplicateName(t *testing.T) {
	x := name.NewUser("x")
	hf := hlformula.CompareFormula(hlformula.LtC(hlformula.Variable(x), hlformula.Constant(10)))
	lowered, err := hlformula.Lower(hf)
	require.NoError(t, err)

	e := DefaultEngine()
	_, err = e.Define("small", lowered, []name.Name{x})
	require.NoError(t, err)

	_, err = e.Define("small", lowered, []name.Name{x})
	require.ErrorIs(t, err, ErrDuplicateSet)
}

func TestLookupUnknownSet(t *testing.T) {
	e := DefaultEngine()
	_, err := e.Lookup("missing")
	require.ErrorIs(t, err, ErrUnknownSet)
}

func TestStatsReportsSizeAndTracks(t *testing.T) {
	x := name.NewUser("x")
	hf := hlformula.Or(
		hlformula.CompareFormula(hlformula.EqC(hlformula.Variable(x), hlformula.Constant(1))),
		hlformula.CompareFormula(hlformula.EqC(hlformula.Variable(x), hlformula.Constant(3))),
	)
	lowered, err := hlformula.Lower(hf)
	require.NoError(t, err)

	e := DefaultEngine()
	_, err = e.Define("pair", lowered, []name.Name{x})
	require.NoError(t, err)

	stats, err := e.Stats("pair")
	require.NoError(t, err)
	require.Equal(t, count.FiniteBound(2), stats.Size)
	require.Equal(t, []string{"x"}, stats.Tracks)
}

func TestTracksReferencingFindsOwningSets(t *testing.T) {
	x, y := name.NewUser("x"), name.NewUser("y")
	hfX := hlformula.CompareFormula(hlformula.LtC(hlformula.Variable(x), hlformula.Constant(10)))
	loweredX, err := hlformula.Lower(hfX)
	require.NoError(t, err)
	hfXY := hlformula.CompareFormula(hlformula.EqC(
		hlformula.Variable(x),
		hlformula.Add(hlformula.Variable(y), hlformula.Constant(1)),
	))
	loweredXY, err := hlformula.Lower(hfXY)
	require.NoError(t, err)

	e := DefaultEngine()
	_, err = e.Define("onlyX", loweredX, []name.Name{x})
	require.NoError(t, err)
	_, err = e.Define("xAndY", loweredXY, []name.Name{x, y})
	require.NoError(t, err)

	matches, err := e.TracksReferencing("y")
	require.NoError(t, err)
	require.Equal(t, []string{"xAndY"}, matches)
}

func TestRenderCommandWithoutRendererIsNotImplemented(t *testing.T) {
	x, y := name.NewUser("x"), name.NewUser("y")
	hf := hlformula.CompareFormula(hlformula.EqC(
		hlformula.Variable(x),
		hlformula.Add(hlformula.Variable(y), hlformula.Constant(1)),
	))
	lowered, err := hlformula.Lower(hf)
	require.NoError(t, err)

	e := DefaultEngine()
	_, err = e.Define("succ", lowered, []name.Name{x, y})
	require.NoError(t, err)

	cmd := &RenderCommand{Kind: "render_png", Set: "succ", Path: "/tmp/succ.png"}
	err = cmd.Execute(e)
	require.ErrorIs(t, err, ErrNotImplemented)
}

func TestStatsCommandExecute(t *testing.T) {
	x := name.NewUser("x")
	hf := hlformula.CompareFormula(hlformula.LtC(hlformula.Variable(x), hlformula.Constant(10)))
	lowered, err := hlformula.Lower(hf)
	require.NoError(t, err)

	e := DefaultEngine()
	_, err = e.Define("small", lowered, []name.Name{x})
	require.NoError(t, err)

	cmd := &StatsCommand{Set: "small"}
	require.NoError(t, cmd.Execute(e))
	require.Equal(t, count.FiniteBound(10), cmd.Report.Size)
}

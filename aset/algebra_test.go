package aset

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pas-lang/pas/automaton"
	"github.com/pas-lang/pas/name"
)

func encodeWord(length int, values ...uint64) []automaton.Symbol {
	word := make([]automaton.Symbol, length)
	for i := 0; i < length; i++ {
		var sym automaton.Symbol
		for t, v := range values {
			bit := (v >> uint(length-1-i)) & 1
			sym |= automaton.Symbol(bit) << uint(t)
		}
		word[i] = sym
	}
	return word
}

func TestSingletonAcceptsExactValueAndPadding(t *testing.T) {
	x := name.NewUser("x")
	s := Singleton(x, 5)
	dfa := s.DFA()

	require.True(t, dfa.Accepts(encodeWord(3, 5)))
	require.True(t, dfa.Accepts(encodeWord(6, 5))) // extra leading zero padding
	require.False(t, dfa.Accepts(encodeWord(3, 4)))
	require.False(t, dfa.Accepts(encodeWord(3, 6)))
}

func TestSingletonOfZero(t *testing.T) {
	x := name.NewUser("x")
	s := Singleton(x, 0)
	dfa := s.DFA()
	require.True(t, dfa.Accepts(encodeWord(0)))
	require.True(t, dfa.Accepts(encodeWord(4, 0)))
	require.False(t, dfa.Accepts(encodeWord(1, 1)))
}

func TestEquivalenceAcceptsEqualPairsOnly(t *testing.T) {
	x, y := name.NewUser("x"), name.NewUser("y")
	s := Equivalence(x, y)
	dfa := s.DFA()
	require.True(t, dfa.Accepts(encodeWord(4, 7, 7)))
	require.False(t, dfa.Accepts(encodeWord(4, 7, 6)))
}

func TestDoubleRelation(t *testing.T) {
	x, y := name.NewUser("x"), name.NewUser("y")
	s := Double(x, y)
	dfa := s.DFA()
	for a := uint64(0); a < 16; a++ {
		require.True(t, dfa.Accepts(encodeWord(6, a, 2*a)), "a=%d", a)
		require.False(t, dfa.Accepts(encodeWord(6, a, 2*a+1)), "a=%d", a)
	}
	// a leftover carry bit (here b < 2a entirely, not just off by one) must
	// not be accepted either.
	require.False(t, dfa.Accepts(encodeWord(6, 1, 0)))
}

func TestAdditionRelation(t *testing.T) {
	x, y, z := name.NewUser("x"), name.NewUser("y"), name.NewUser("z")
	s := Addition(x, y, z)
	dfa := s.DFA()
	for a := uint64(0); a < 8; a++ {
		for b := uint64(0); b < 8; b++ {
			require.True(t, dfa.Accepts(encodeWord(6, a, b, a+b)), "a=%d b=%d", a, b)
			require.False(t, dfa.Accepts(encodeWord(6, a, b, a+b+1)), "a=%d b=%d", a, b)
		}
	}
}

func TestUnionIntersectionNeg(t *testing.T) {
	x := name.NewUser("x")
	s1 := Singleton(x, 1)
	s3 := Singleton(x, 3)
	u := Union(s1, s3)
	require.True(t, u.DFA().Accepts(encodeWord(2, 1)))
	require.True(t, u.DFA().Accepts(encodeWord(2, 3)))
	require.False(t, u.DFA().Accepts(encodeWord(2, 2)))

	inter := Intersection(s1, s3)
	require.True(t, inter.IsEmpty())

	neg := Neg(s1)
	require.False(t, neg.DFA().Accepts(encodeWord(2, 1)))
	require.True(t, neg.DFA().Accepts(encodeWord(2, 2)))
}

func TestExistsProjectsOutTrack(t *testing.T) {
	x, y := name.NewUser("x"), name.NewUser("y")
	s := Addition(x, y, name.NewUser("z"))
	// exists x. (x + y == z) holds for every (y, z) with y <= z; only the
	// remaining track count and non-emptiness are checked here rather than
	// re-deriving <=.
	projected := Exists(x, s)
	require.Equal(t, 2, len(projected.Tracks()))
	require.False(t, projected.IsEmpty())
}

func TestTrivialSets(t *testing.T) {
	require.False(t, Trivial(true).IsEmpty())
	require.True(t, Trivial(false).IsEmpty())
}

package aset

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pas-lang/pas/name"
)

func TestAddTrackIsDontCare(t *testing.T) {
	x := name.NewUser("x")
	y := name.NewUser("y")
	s := Singleton(x, 3).AddTrack(y)
	require.Equal(t, []name.Name{x, y}, s.Tracks())
	require.True(t, s.DFA().Accepts(encodeWord(2, 3, 0)))
	require.True(t, s.DFA().Accepts(encodeWord(2, 3, 1)))
	require.False(t, s.DFA().Accepts(encodeWord(2, 2, 0)))
}

func TestSwapTracks(t *testing.T) {
	x, y, z := name.NewUser("x"), name.NewUser("y"), name.NewUser("z")
	s := Addition(x, y, z)
	swapped := s.SwapTracks(0, 2)
	require.Equal(t, []name.Name{z, y, x}, swapped.Tracks())
}

func TestOrderTracksAddsMissing(t *testing.T) {
	x, y := name.NewUser("x"), name.NewUser("y")
	s := Singleton(x, 4)
	ordered := s.OrderTracks([]name.Name{y, x})
	require.Equal(t, []name.Name{y, x}, ordered.Tracks())
}

func TestSynchronizeUnifiesTracks(t *testing.T) {
	x, y, z := name.NewUser("x"), name.NewUser("y"), name.NewUser("z")
	s := Equivalence(x, y)
	otherSet := Singleton(z, 1)
	sSync, otherSync := s.Synchronize(otherSet)
	require.Equal(t, sSync.Tracks(), otherSync.Tracks())
	require.Len(t, sSync.Tracks(), 3)
}

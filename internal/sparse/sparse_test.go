package sparse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetInsertContains(t *testing.T) {
	s := New(8)
	require.False(t, s.Contains(3))
	s.Insert(3)
	require.True(t, s.Contains(3))
	require.Equal(t, 1, s.Len())
	s.Insert(3)
	require.Equal(t, 1, s.Len(), "re-inserting is a no-op")
}

func TestSetRemove(t *testing.T) {
	s := New(8)
	s.Insert(1)
	s.Insert(2)
	s.Insert(3)
	s.Remove(2)
	require.False(t, s.Contains(2))
	require.True(t, s.Contains(1))
	require.True(t, s.Contains(3))
	require.Equal(t, 2, s.Len())
}

func TestSetClear(t *testing.T) {
	s := New(4)
	s.Insert(0)
	s.Insert(1)
	s.Clear()
	require.Equal(t, 0, s.Len())
	require.False(t, s.Contains(0))
}

func TestSetOutOfRange(t *testing.T) {
	s := New(4)
	require.False(t, s.Contains(100))
}

func TestSetElementsOrder(t *testing.T) {
	s := New(8)
	s.Insert(5)
	s.Insert(1)
	s.Insert(7)
	require.Equal(t, []uint32{5, 1, 7}, s.Elements())
}

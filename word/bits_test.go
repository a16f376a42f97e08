package word

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitsIteratorMSBFirst(t *testing.T) {
	b := NewBits(5) // 101
	require.Equal(t, 3, b.Len())
	var got []int
	for {
		bit, ok := b.Next()
		if !ok {
			break
		}
		got = append(got, bit)
	}
	require.Equal(t, []int{1, 0, 1}, got)
}

func TestBitsIteratorZero(t *testing.T) {
	b := NewBits(0)
	require.Equal(t, 0, b.Len())
	_, ok := b.Next()
	require.False(t, ok)
}

func TestBitAtPadding(t *testing.T) {
	// 5 padded to 5 bits: 00101
	require.Equal(t, 0, BitAt(5, 5, 0))
	require.Equal(t, 0, BitAt(5, 5, 1))
	require.Equal(t, 1, BitAt(5, 5, 2))
	require.Equal(t, 0, BitAt(5, 5, 3))
	require.Equal(t, 1, BitAt(5, 5, 4))
}

func TestFromBitsRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 2, 5, 7001, 123456} {
		length := MinLength(v)
		if length == 0 {
			length = 1
		}
		var seq []int
		for i := 0; i < length; i++ {
			seq = append(seq, BitAt(v, length, i))
		}
		require.Equal(t, v, FromBits(seq))
	}
}

func TestScratchSizePositive(t *testing.T) {
	require.Greater(t, ScratchSize(), 0)
}

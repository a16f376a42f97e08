// Package word defines the word-representation conventions shared by the
// automaton, aset, and count packages: naturals are encoded big-endian,
// most-significant-bit-first, with implicit leading zeros permitted so a
// shorter minimal representation can still be read as a longer, zero-padded
// word. See automaton.DFA.ZeroSuffixClosure and automaton.NFA.ZeroPrefixFix
// for where that padding convention becomes load bearing.
package word

import "math/bits"

// Bits iterates the big-endian bit representation of a natural number,
// most-significant bit first, for exactly MinLength(v) bits — the minimal
// representation with no leading zero. Automaton constructions needing a
// longer, zero-padded representation simply read extra leading-zero
// symbols ahead of (or interleaved with, for multi-track words) this
// iterator's bits.
type Bits struct {
	v   uint64
	pos int
	len int
}

// NewBits returns a Bits iterator over v's minimal big-endian representation.
func NewBits(v uint64) *Bits {
	l := bits.Len64(v)
	return &Bits{v: v, pos: l - 1, len: l}
}

// Len returns the number of bits the iterator yields (0 for v == 0).
func (b *Bits) Len() int { return b.len }

// Next returns the next bit (0 or 1), most-significant bit first, and
// whether a bit remained to return.
func (b *Bits) Next() (bit int, ok bool) {
	if b.pos < 0 {
		return 0, false
	}
	bit = int((b.v >> uint(b.pos)) & 1)
	b.pos--
	return bit, true
}

// BitAt returns bit i (0 = most-significant) of v's big-endian encoding
// padded to exactly length bits; positions in the padding (the implicit
// leading zeros) read as 0.
func BitAt(v uint64, length, i int) int {
	shift := length - 1 - i
	if shift < 0 || shift >= 64 {
		return 0
	}
	return int((v >> uint(shift)) & 1)
}

// MinLength returns the minimal bit length needed to represent v with no
// leading zero (0 for v == 0, meaning the empty word already denotes it
// once zero-padding closure is applied).
func MinLength(v uint64) int {
	return bits.Len64(v)
}

// FromBits decodes a big-endian bit sequence (most-significant first) back
// into a natural number.
func FromBits(bitsSeq []int) uint64 {
	var v uint64
	for _, b := range bitsSeq {
		v = v<<1 | uint64(b&1)
	}
	return v
}

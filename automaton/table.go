// Package automaton implements the multi-track finite automaton library: a
// generic transition table, a deterministic automaton (DFA) and a
// nondeterministic automaton (NFA) built on it, and a DFA/NFA sum type
// (Variant) that lets callers defer determinization until it is actually
// needed.
//
// An automaton with k tracks reads an alphabet of 2^k symbols: bit t of a
// symbol carries the t-th track's value at that input position. Input is
// read most-significant-bit-first across the whole word (big-endian), the
// convention used throughout this repository; see DFA.ZeroSuffixClosure and
// NFA.ZeroPrefixFix for the one place the direction convention is load
// bearing.
package automaton

import "github.com/pas-lang/pas/internal/conv"

// StateID identifies a state within a transition table. State 0 is always
// the implicit start state of a DFA or a designated member of an NFA's
// initial set.
type StateID uint32

// Symbol is one letter of the alphabet of a k-track automaton: bit t of the
// symbol holds the current value of track t.
type Symbol uint32

// Table is a flat, row-major transition table: for k tracks the alphabet has
// 2^k symbols, and cell (state, symbol) lives at cells[state*2^k+symbol].
// Table is generic over the cell type so the same structural operations
// (SwapTracks, AddTrack, MergeTrack, Predecessors) serve both DFA cells (a
// single StateID) and NFA cells (a StateSet).
type Table[C any] struct {
	tracks int
	states int
	cells  []C
}

// NewTable allocates a table for the given track count and state count,
// with every cell holding the zero value of C.
func NewTable[C any](tracks, states int) *Table[C] {
	if tracks < 0 {
		panic("automaton: negative track count")
	}
	if states < 0 {
		panic("automaton: negative state count")
	}
	return &Table[C]{
		tracks: tracks,
		states: states,
		cells:  make([]C, states*alphabetSize(tracks)),
	}
}

func alphabetSize(tracks int) int { return 1 << conv.IntToUint32(tracks) }

// Tracks returns the number of tracks (log2 of the alphabet size).
func (t *Table[C]) Tracks() int { return t.tracks }

// States returns the number of rows (states) in the table.
func (t *Table[C]) States() int { return t.states }

// AlphabetSize returns 2^Tracks.
func (t *Table[C]) AlphabetSize() int { return alphabetSize(t.tracks) }

// Get returns the cell for (state, symbol).
func (t *Table[C]) Get(s StateID, a Symbol) C {
	return t.cells[t.index(s, a)]
}

// Set stores the cell for (state, symbol).
func (t *Table[C]) Set(s StateID, a Symbol, c C) {
	t.cells[t.index(s, a)] = c
}

// Row returns the full row of cells for state s, one per symbol. The
// returned slice aliases the table's storage.
func (t *Table[C]) Row(s StateID) []C {
	n := t.AlphabetSize()
	base := int(s) * n
	return t.cells[base : base+n]
}

func (t *Table[C]) index(s StateID, a Symbol) int {
	return int(s)*t.AlphabetSize() + int(a)
}

func bitAt(a, pos int) int { return (a >> conv.IntToUint32(pos)) & 1 }

func withBit(a, pos, value int) int {
	a &^= 1 << conv.IntToUint32(pos)
	return a | (value << conv.IntToUint32(pos))
}

// SwapTracks returns a new table of the same shape in which tracks i and j
// have been reordered throughout every row. The result recognizes, over
// each row's language, the same relation as the input with coordinates i
// and j transposed.
func (t *Table[C]) SwapTracks(i, j int) *Table[C] {
	if i < 0 || i >= t.tracks || j < 0 || j >= t.tracks {
		panic("automaton: track index out of range")
	}
	out := NewTable[C](t.tracks, t.states)
	n := t.AlphabetSize()
	for s := 0; s < t.states; s++ {
		for a := 0; a < n; a++ {
			bi, bj := bitAt(a, i), bitAt(a, j)
			swapped := a
			if bi != bj {
				swapped = withBit(withBit(a, i, bj), j, bi)
			}
			out.cells[StateID(s).row(n)+swapped] = t.cells[StateID(s).row(n)+a]
		}
	}
	return out
}

func (s StateID) row(alphaSize int) int { return int(s) * alphaSize }

// AddTrack returns a new table with one additional "don't care" track
// appended: the alphabet doubles, and every old cell is duplicated once for
// the new track's bit being 0 and once for it being 1, so the recognized
// relation is independent of the new coordinate.
func (t *Table[C]) AddTrack() *Table[C] {
	out := NewTable[C](t.tracks+1, t.states)
	oldN := t.AlphabetSize()
	newTrack := t.tracks
	for s := 0; s < t.states; s++ {
		base := StateID(s).row(oldN)
		for a := 0; a < oldN; a++ {
			c := t.cells[base+a]
			out.Set(StateID(s), Symbol(withBit(a, newTrack, 0)), c)
			out.Set(StateID(s), Symbol(withBit(a, newTrack, 1)), c)
		}
	}
	return out
}

// MergeTrack projects out one track by unioning cells that agree on every
// other track's bit; the target track must be swapped to the desired
// position by the caller first. The result is always built with the
// set-valued merge callback, so the output cell type may differ from a
// singleton destination even when the input table held single destinations
// (the NFA package calls this with a union-of-destinations merge to
// implement existential quantification).
func MergeTrack[C any](t *Table[C], track int, merge func(a, b C) C) *Table[C] {
	if t.tracks == 0 {
		panic("automaton: cannot merge a track out of a 0-track table")
	}
	if track < 0 || track >= t.tracks {
		panic("automaton: track index out of range")
	}
	out := NewTable[C](t.tracks-1, t.states)
	oldN := t.AlphabetSize()
	for s := 0; s < t.states; s++ {
		base := StateID(s).row(oldN)
		for a := 0; a < oldN; a++ {
			if bitAt(a, track) == 1 {
				continue // handled together with its bit=0 counterpart below
			}
			r := dropBit(a, track)
			c0 := t.cells[base+a]
			c1 := t.cells[base+withBit(a, track, 1)]
			out.Set(StateID(s), Symbol(r), merge(c0, c1))
		}
	}
	return out
}

// MergeFirstTrack projects out track 0; see MergeTrack.
func MergeFirstTrack[C any](t *Table[C], merge func(a, b C) C) *Table[C] {
	return MergeTrack(t, 0, merge)
}

func dropBit(a, pos int) int {
	lower := a & ((1 << conv.IntToUint32(pos)) - 1)
	upper := a >> conv.IntToUint32(pos+1)
	return (upper << conv.IntToUint32(pos)) | lower
}

// Predecessors computes, for each state, the set of predecessor states
// ignoring the symbol read (reverse-reachability). dest extracts the
// destination state ids held by one cell, so the same function serves DFA
// tables (a single destination) and NFA tables (a destination set).
func Predecessors[C any](t *Table[C], dest func(C) []StateID) [][]StateID {
	preds := make([][]StateID, t.states)
	n := t.AlphabetSize()
	for s := 0; s < t.states; s++ {
		base := StateID(s).row(n)
		for a := 0; a < n; a++ {
			for _, d := range dest(t.cells[base+a]) {
				// s is the outer loop, so a repeat of s is always last
				if k := len(preds[d]); k > 0 && preds[d][k-1] == StateID(s) {
					continue
				}
				preds[d] = append(preds[d], StateID(s))
			}
		}
	}
	return preds
}

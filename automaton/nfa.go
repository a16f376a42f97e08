package automaton

import (
	"fmt"
	"sort"
	"strings"
)

// StateSet is an unordered set of destination states, kept internally in
// canonical (sorted, deduplicated) form so that two sets reached by
// different insertion orders compare and hash identically — required by
// subset construction, where the same configuration must be recognized
// however its member states were discovered.
type StateSet []StateID

// canonicalize returns a sorted, deduplicated copy of s.
func canonicalize(s StateSet) StateSet {
	out := append(StateSet(nil), s...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	k := 0
	for i := range out {
		if i == 0 || out[i] != out[i-1] {
			out[k] = out[i]
			k++
		}
	}
	return out[:k]
}

// appendState inserts v into the already-canonical set s, preserving order.
func appendState(s StateSet, v StateID) StateSet {
	i := sort.Search(len(s), func(i int) bool { return s[i] >= v })
	if i < len(s) && s[i] == v {
		return s
	}
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}

// unionSets merges two canonical sets into a new canonical set. It is the
// merge function passed to MergeTrack/MergeFirstTrack when projecting an
// NFA, and is how existential quantification accumulates destinations.
func unionSets(a, b StateSet) StateSet {
	out := make(StateSet, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

func shiftSet(s StateSet, by StateID) StateSet {
	out := make(StateSet, len(s))
	for i, v := range s {
		out[i] = v + by
	}
	return out
}

// key returns a string uniquely identifying this canonical set's contents,
// used as the map key during subset construction. Because the set is
// canonicalized before keying, the key is insensitive to the order in which
// member states were discovered.
func (s StateSet) key() string {
	var b strings.Builder
	for _, v := range s {
		fmt.Fprintf(&b, "%d,", v)
	}
	return b.String()
}

// NFA is a nondeterministic automaton: a transition table whose cells are
// destination sets, an accepting bit vector, and a non-empty set of initial
// states.
type NFA struct {
	table   *Table[StateSet]
	accept  []bool
	initial StateSet
}

// NewNFA builds an NFA from a transition table, accepting vector, and
// initial set. Panics if the shapes disagree or the initial set is empty,
// since both indicate a caller bug rather than bad user input (spec §7:
// invariant violations are fatal, never silently recovered).
func NewNFA(table *Table[StateSet], accept []bool, initial StateSet) *NFA {
	if len(accept) != table.States() {
		panic("automaton: accept vector length must match state count")
	}
	canon := canonicalize(initial)
	if len(canon) == 0 {
		panic(ErrEmptyInitialSet)
	}
	return &NFA{table: table, accept: accept, initial: canon}
}

// emptyNFA returns a single dead state recognizing the empty language over
// the given track count; used when an operation (e.g. Reverse of a DFA
// with no accepting states) would otherwise produce an empty initial set.
func emptyNFA(tracks int) *NFA {
	table := NewTable[StateSet](tracks, 1)
	n := table.AlphabetSize()
	for a := 0; a < n; a++ {
		table.Set(0, Symbol(a), StateSet{0})
	}
	return &NFA{table: table, accept: []bool{false}, initial: StateSet{0}}
}

// Tracks returns the number of tracks the NFA reads.
func (n *NFA) Tracks() int { return n.table.Tracks() }

// NumStates returns the number of states.
func (n *NFA) NumStates() int { return n.table.States() }

// Table exposes the underlying transition table.
func (n *NFA) Table() *Table[StateSet] { return n.table }

// Initial returns the (canonical) initial state set.
func (n *NFA) Initial() StateSet { return n.initial }

// Determinize performs subset construction with no limit on the number of
// states materialized. Equivalent to DeterminizeBounded with limit <= 0.
func (n *NFA) Determinize() *DFA {
	dfa, err := n.DeterminizeBounded(0)
	if err != nil {
		// limit <= 0 never budget-checks, so this is unreachable.
		panic(err)
	}
	return dfa
}

// DeterminizeBounded performs subset construction: starting from the initial
// state set, each reachable configuration (a canonical StateSet) becomes
// one DFA state, assigned a fresh id the first time it is discovered while
// draining the work queue breadth-first; a configuration is accepting iff
// it contains at least one of the NFA's accepting states. If limit is
// positive and the number of discovered configurations exceeds it, a
// *DeterminizationError is returned instead of a result (the controlled
// allocation error failure mode for resource exhaustion).
func (n *NFA) DeterminizeBounded(limit int) (*DFA, error) {
	alphaSize := n.table.AlphabetSize()

	idOf := make(map[string]StateID)
	var configs []StateSet
	var destByState [][]StateID

	start := n.initial
	idOf[start.key()] = 0
	configs = append(configs, start)
	destByState = append(destByState, make([]StateID, alphaSize))

	queue := []StateID{0}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curConfig := configs[cur]

		for a := 0; a < alphaSize; a++ {
			var next StateSet
			for _, s := range curConfig {
				next = unionSets(next, n.table.Get(s, Symbol(a)))
			}
			next = canonicalize(next)
			key := next.key()
			id, ok := idOf[key]
			if !ok {
				if limit > 0 && len(configs) >= limit {
					return nil, &DeterminizationError{Limit: limit, Reached: len(configs)}
				}
				id = StateID(len(configs))
				idOf[key] = id
				configs = append(configs, next)
				destByState = append(destByState, make([]StateID, alphaSize))
				queue = append(queue, id)
			}
			destByState[cur][a] = id
		}
	}

	table := NewTable[StateID](n.Tracks(), len(configs))
	accept := make([]bool, len(configs))
	for id, cfg := range configs {
		for a := 0; a < alphaSize; a++ {
			table.Set(StateID(id), Symbol(a), destByState[id][a])
		}
		for _, s := range cfg {
			if n.accept[s] {
				accept[id] = true
				break
			}
		}
	}
	return NewDFA(table, accept), nil
}

// Join builds the disjoint union of n and other: other's states are
// appended (shifted by n's state count), its transition destinations are
// shifted to match, its accepting bits are appended, and the two initial
// sets are merged. The recognized language is the union of the two inputs.
// Panics via ErrTrackMismatch if the track counts disagree — callers must
// synchronize track orderings first (see aset.Set.Synchronize).
func (n *NFA) Join(other *NFA) *NFA {
	if n.Tracks() != other.Tracks() {
		panic(ErrTrackMismatch)
	}
	shift := StateID(n.NumStates())
	alphaSize := n.table.AlphabetSize()
	total := n.NumStates() + other.NumStates()

	table := NewTable[StateSet](n.Tracks(), total)
	accept := make([]bool, total)

	for s := 0; s < n.NumStates(); s++ {
		accept[s] = n.accept[s]
		for a := 0; a < alphaSize; a++ {
			table.Set(StateID(s), Symbol(a), n.table.Get(StateID(s), Symbol(a)))
		}
	}
	for s := 0; s < other.NumStates(); s++ {
		accept[int(shift)+s] = other.accept[s]
		for a := 0; a < alphaSize; a++ {
			dest := shiftSet(other.table.Get(StateID(s), Symbol(a)), shift)
			table.Set(shift+StateID(s), Symbol(a), dest)
		}
	}

	initial := unionSets(n.initial, shiftSet(other.initial, shift))
	return &NFA{table: table, accept: accept, initial: initial}
}

// SwapTracks reorders two tracks throughout the NFA's table; states,
// accepting bits, and the initial set are unaffected.
func (n *NFA) SwapTracks(i, j int) *NFA {
	return &NFA{table: n.table.SwapTracks(i, j), accept: n.accept, initial: n.initial}
}

// AddTrack appends a don't-care track: the alphabet doubles and the
// recognized relation becomes independent of the new coordinate.
func (n *NFA) AddTrack() *NFA {
	return &NFA{table: n.table.AddTrack(), accept: n.accept, initial: n.initial}
}

// Project existentially quantifies out track 0 via merge-first-track: the
// alphabet halves, cells that agreed on every other track's bit are
// unioned, and the destination cell type is always a StateSet even when
// every source cell already held a set (it does — n's table already has
// StateSet cells). Callers existentially closing a named track must swap
// that track to position 0 first.
func (n *NFA) Project() *NFA {
	table := MergeFirstTrack(n.table, unionSets)
	return &NFA{table: table, accept: n.accept, initial: n.initial}
}

// MergeOtherTracks projects onto a single track, discarding all others: it
// swaps the kept track to the last position, then repeats Project (which
// always removes whatever is currently track 0, shifting the rest down by
// one) until only the kept track remains.
func (n *NFA) MergeOtherTracks(keep int) *NFA {
	if n.Tracks() == 0 {
		panic("automaton: cannot merge tracks of a 0-track NFA")
	}
	cur := n.SwapTracks(keep, n.Tracks()-1)
	for cur.Tracks() > 1 {
		cur = cur.Project()
	}
	return cur
}

// ZeroPrefixFix closes the NFA under leading (high-order) zero padding and
// returns a minimized DFA. Existential projection can leave an automaton
// that, read forward (most-significant-bit first), is not yet insensitive
// to extra zero symbols prepended to a word representing the same tuple.
// DFA.ZeroSuffixClosure instead closes under extra zero symbols *trailing*
// a word in whatever direction the machine currently reads — so this
// function reverses the automaton (flipping its reading direction, making
// "trailing" mean "leading" again from the forward perspective), applies
// the suffix closure there, and reverses back. This is the resolution
// chosen for the zero_suffix_closure/zero_prefix_fix ambiguity noted in
// see DESIGN.md.
func (n *NFA) ZeroPrefixFix() *DFA {
	forward := n.Determinize().Minimize()
	reversed := forward.Reverse().Determinize().Minimize()
	reversedClosed := reversed.ZeroSuffixClosure()
	back := reversedClosed.Reverse().Determinize().Minimize()
	return back
}

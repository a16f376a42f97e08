package automaton

import (
	"fmt"
	"strings"
)

// DFA is a complete deterministic automaton with a single implicit start
// state, state 0. The transition table is total: every (state, symbol) pair
// has a destination.
type DFA struct {
	table  *Table[StateID]
	accept []bool
}

// NewDFA builds a DFA from a total transition table and an accepting bit
// vector. Panics if the table has zero states or accept's length does not
// match the table's state count, both of which indicate a caller bug
// rather than bad input.
func NewDFA(table *Table[StateID], accept []bool) *DFA {
	if table.States() == 0 {
		panic("automaton: DFA must have at least state 0")
	}
	if len(accept) != table.States() {
		panic("automaton: accept vector length must match state count")
	}
	return &DFA{table: table, accept: accept}
}

// Tracks returns the number of tracks the DFA reads.
func (d *DFA) Tracks() int { return d.table.Tracks() }

// NumStates returns the number of states.
func (d *DFA) NumStates() int { return d.table.States() }

// IsAccepting reports whether state s is accepting.
func (d *DFA) IsAccepting(s StateID) bool { return d.accept[s] }

// Step returns the destination of state s on symbol a.
func (d *DFA) Step(s StateID, a Symbol) StateID { return d.table.Get(s, a) }

// Table exposes the underlying transition table for packages (count, aset)
// that need direct row access rather than one state at a time.
func (d *DFA) Table() *Table[StateID] { return d.table }

// Accepts runs the DFA over a stream of symbols starting at state 0 and
// reports whether the final state accepts.
func (d *DFA) Accepts(word []Symbol) bool {
	s := StateID(0)
	for _, a := range word {
		s = d.table.Get(s, a)
	}
	return d.accept[s]
}

// Complement returns a DFA recognizing the complement language: the
// transition table is unchanged, only the accepting vector is flipped.
func (d *DFA) Complement() *DFA {
	accept := make([]bool, len(d.accept))
	for i, ok := range d.accept {
		accept[i] = !ok
	}
	return &DFA{table: d.table, accept: accept}
}

// IsEmpty reports whether the DFA's language is empty, checked on the
// minimized form: the language is empty iff the minimized automaton has
// exactly one state and it is non-accepting.
func (d *DFA) IsEmpty() bool {
	m := d.Minimize()
	return m.NumStates() == 1 && !m.accept[0]
}

// Reverse builds an NFA whose language is the reverse (read-order-flipped)
// of d's language: states are shared, every transition A->B becomes B->A,
// the initial set is d's accepting states, and the unique accepting state
// is d's start state 0.
//
// If d accepts no words, its accepting set is empty; since an NFA's initial
// set must be non-empty, Reverse falls back to a single dead state whose
// language is likewise empty.
func (d *DFA) Reverse() *NFA {
	n := d.NumStates()
	alphaSize := d.table.AlphabetSize()
	revTable := NewTable[StateSet](d.Tracks(), n)
	for s := 0; s < n; s++ {
		for a := 0; a < alphaSize; a++ {
			dest := d.table.Get(StateID(s), Symbol(a))
			cur := revTable.Get(dest, Symbol(a))
			revTable.Set(dest, Symbol(a), appendState(cur, StateID(s)))
		}
	}
	accept := make([]bool, n)
	accept[0] = true

	var initial StateSet
	for s, ok := range d.accept {
		if ok {
			initial = appendState(initial, StateID(s))
		}
	}
	if len(initial) == 0 {
		return emptyNFA(d.Tracks())
	}
	return NewNFA(revTable, accept, canonicalize(initial))
}

// ZeroSuffixClosure computes the fixed point of: any non-accepting state
// whose transition on the all-zero symbol lands in an accepting state
// becomes accepting itself. This normalizes the automaton so that trailing
// zero symbols, in whatever reading order the caller has currently oriented
// the machine in, cannot change acceptance — see NFA.ZeroPrefixFix for how
// this is combined with Reverse to close the *leading*-zero convention used
// at the high-order end of a big-endian word.
func (d *DFA) ZeroSuffixClosure() *DFA {
	accept := make([]bool, len(d.accept))
	copy(accept, d.accept)
	zero := Symbol(0)
	for {
		changed := false
		for s := 0; s < len(accept); s++ {
			if accept[s] {
				continue
			}
			if accept[d.table.Get(StateID(s), zero)] {
				accept[s] = true
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return &DFA{table: d.table, accept: accept}
}

// Minimize partitions states by Myhill-Nerode equivalence using iterative
// refinement (Moore's algorithm): states start split by acceptance, then are
// repeatedly re-split by the tuple of their successors' current classes
// until a round produces no new classes. Class ids are assigned in
// first-appearance order within each scan, which makes the result
// deterministic given the input, and state 0 of the result is always the
// class containing the original state 0.
func (d *DFA) Minimize() *DFA {
	n := d.NumStates()
	alphaSize := d.table.AlphabetSize()
	class := make([]int, n)
	for s := 0; s < n; s++ {
		if d.accept[s] {
			class[s] = 1
		}
	}
	numClasses := distinctCount(class)

	for {
		newClass, groups := refine(d, class, alphaSize)
		if groups == numClasses {
			class = newClass
			break
		}
		class = newClass
		numClasses = groups
	}

	return buildFromClasses(d, class, numClasses)
}

func refine(d *DFA, class []int, alphaSize int) ([]int, int) {
	n := len(class)
	newClass := make([]int, n)
	seen := make(map[string]int, n)
	next := 0
	var b strings.Builder
	for s := 0; s < n; s++ {
		b.Reset()
		fmt.Fprintf(&b, "%d|", class[s])
		for a := 0; a < alphaSize; a++ {
			dest := d.table.Get(StateID(s), Symbol(a))
			fmt.Fprintf(&b, "%d,", class[dest])
		}
		key := b.String()
		id, ok := seen[key]
		if !ok {
			id = next
			seen[key] = id
			next++
		}
		newClass[s] = id
	}
	return newClass, next
}

func distinctCount(class []int) int {
	seen := map[int]bool{}
	for _, c := range class {
		seen[c] = true
	}
	return len(seen)
}

func buildFromClasses(d *DFA, class []int, numClasses int) *DFA {
	n := d.NumStates()
	remap := make(map[int]int, numClasses)
	remap[class[0]] = 0
	next := 1
	rep := make([]int, numClasses) // representative original state per new id
	rep[0] = 0
	for s := 0; s < n; s++ {
		if _, ok := remap[class[s]]; !ok {
			remap[class[s]] = next
			rep[next] = s
			next++
		}
	}

	alphaSize := d.table.AlphabetSize()
	out := NewTable[StateID](d.Tracks(), numClasses)
	accept := make([]bool, numClasses)
	for newID := 0; newID < numClasses; newID++ {
		orig := StateID(rep[newID])
		accept[newID] = d.accept[orig]
		for a := 0; a < alphaSize; a++ {
			dest := d.table.Get(orig, Symbol(a))
			out.Set(StateID(newID), Symbol(a), StateID(remap[class[dest]]))
		}
	}
	return &DFA{table: out, accept: accept}
}

package aset

import (
	"github.com/pas-lang/pas/automaton"
	"github.com/pas-lang/pas/name"
	"github.com/pas-lang/pas/word"
)

// Trivial builds the 0-track set that is either the set containing the
// single empty tuple (accepting = true) or the empty set (accepting =
// false).
func Trivial(accepting bool) *Set {
	table := automaton.NewTable[automaton.StateID](0, 1)
	dfa := automaton.NewDFA(table, []bool{accepting})
	return newSet(automaton.FromDFA(dfa), nil)
}

// Singleton builds the 1-track set recognizing exactly the tuple (v),
// reading v's big-endian bits with implicit leading zeros permitted: the
// start state self-loops on a leading 0 symbol until the first 1 bit of
// v's minimal representation arrives (or forever, if v == 0).
func Singleton(n name.Name, v uint64) *Set {
	bitLen := word.MinLength(v)
	states := bitLen + 2 // 0..bitLen = match progress, bitLen+1 = dead
	dead := automaton.StateID(bitLen + 1)

	table := automaton.NewTable[automaton.StateID](1, states)
	for i := 0; i <= bitLen; i++ {
		s := automaton.StateID(i)
		if i == bitLen {
			// v == 0 has an empty minimal representation, so state 0 is
			// also the accepting state and keeps absorbing 0 symbols.
			if i == 0 {
				table.Set(s, 0, 0)
			} else {
				table.Set(s, 0, dead)
			}
			table.Set(s, 1, dead)
			continue
		}
		expect := word.BitAt(v, bitLen, i)
		if i == 0 {
			// absorb any number of leading zero symbols before the real
			// content begins; a 1 symbol here only matches if the minimal
			// representation's own first bit is 1, which it always is
			// here (bitLen == 0 is handled by the branch above).
			table.Set(s, 0, 0)
			if expect == 1 {
				table.Set(s, 1, 1)
			} else {
				table.Set(s, 1, dead)
			}
			continue
		}
		if expect == 1 {
			table.Set(s, 0, dead)
			table.Set(s, 1, s+1)
		} else {
			table.Set(s, 0, s+1)
			table.Set(s, 1, dead)
		}
	}
	table.Set(dead, 0, dead)
	table.Set(dead, 1, dead)

	accept := make([]bool, states)
	accept[bitLen] = true
	dfa := automaton.NewDFA(table, accept)
	return newSet(automaton.FromDFA(dfa), []name.Name{n})
}

// Equivalence builds the 2-track set accepting (p, q) iff p and q are
// bit-identical (track order [a, b]).
func Equivalence(a, b name.Name) *Set {
	table := automaton.NewTable[automaton.StateID](2, 2)
	for sym := 0; sym < 4; sym++ {
		bitA, bitB := sym&1, (sym>>1)&1
		if bitA == bitB {
			table.Set(0, automaton.Symbol(sym), 0)
		} else {
			table.Set(0, automaton.Symbol(sym), 1)
		}
		table.Set(1, automaton.Symbol(sym), 1)
	}
	dfa := automaton.NewDFA(table, []bool{true, false})
	return newSet(automaton.FromDFA(dfa), []name.Name{a, b})
}

// Double builds the 2-track set accepting (p, q) iff q == 2*p (track order
// [a, b]). Constructed by building the natural least-significant-bit-first
// automaton for "b's bit one position later equals a's current bit, and
// the very first bit read (the least significant) of b is 0" and reversing
// it, since our convention reads every word most-significant-bit first:
// see automaton.NFA.ZeroPrefixFix for the same reverse-then-reinterpret
// technique applied elsewhere in this engine.
func Double(a, b name.Name) *Set {
	// States 0 and 1 hold the pending bit ("what b's next LSB-first symbol
	// must equal"); state 2 is the dead sink for an inconsistent pair. Only
	// state 0 (no pending bit owed) accepts: state 1 means b still owes a
	// higher bit equal to a leftover carry, which must be rejected, exactly
	// as Addition's no-carry-left-over state is the only accepting one.
	table := automaton.NewTable[automaton.StateID](2, 3)
	for pending := 0; pending < 2; pending++ {
		for sym := 0; sym < 4; sym++ {
			bitA, bitB := sym&1, (sym>>1)&1
			if bitB == pending {
				table.Set(automaton.StateID(pending), automaton.Symbol(sym), automaton.StateID(bitA))
			} else {
				table.Set(automaton.StateID(pending), automaton.Symbol(sym), 2)
			}
		}
	}
	for sym := 0; sym < 4; sym++ {
		table.Set(2, automaton.Symbol(sym), 2)
	}
	lsbFirst := automaton.NewDFA(table, []bool{true, false, false})
	nfa := lsbFirst.Reverse()
	return newSet(automaton.FromNFA(nfa), []name.Name{a, b})
}

// Addition builds the 3-track set accepting (p, q, r) iff r == p+q (track
// order [a, b, c]). Built the same way as Double: the natural
// least-significant-bit-first carry automaton is a simple 3-state DFA
// (no-carry / carry / dead), and reversing it yields the NFA that reads
// most-significant-bit first, matching this engine's convention. The
// reversed initial set (the old accepting state, no-carry) and the
// reversed accepting state (the old start state) together express "no net
// carry was left over once the least-significant bit was reached".
func Addition(a, b, c name.Name) *Set {
	table := automaton.NewTable[automaton.StateID](3, 3)
	for cin := 0; cin < 2; cin++ {
		for sym := 0; sym < 8; sym++ {
			x, y, z := sym&1, (sym>>1)&1, (sym>>2)&1
			expectedZ := x ^ y ^ cin
			if z != expectedZ {
				table.Set(automaton.StateID(cin), automaton.Symbol(sym), 2)
				continue
			}
			ones := x + y + cin
			cout := 0
			if ones >= 2 {
				cout = 1
			}
			table.Set(automaton.StateID(cin), automaton.Symbol(sym), automaton.StateID(cout))
		}
	}
	for sym := 0; sym < 8; sym++ {
		table.Set(2, automaton.Symbol(sym), 2)
	}
	lsbFirst := automaton.NewDFA(table, []bool{true, false, false})
	nfa := lsbFirst.Reverse()
	return newSet(automaton.FromNFA(nfa), []name.Name{a, b, c})
}

// Neg returns the complement of s over the same tracks: determinizes if
// needed, then flips every accepting bit.
func Neg(s *Set) *Set {
	return newSet(automaton.FromDFA(s.DFA().Complement()), s.Tracks())
}

// Union returns the set of tuples in either s or t, after synchronizing
// both to a common track order.
func Union(s, t *Set) *Set {
	sSync, tSync := s.Synchronize(t)
	joined := sSync.variant.IntoNFA().Join(tSync.variant.IntoNFA())
	return newSet(automaton.FromNFA(joined), sSync.Tracks())
}

// Intersection returns the set of tuples in both s and t, via De Morgan:
// ¬(¬s ∪ ¬t).
func Intersection(s, t *Set) *Set {
	return Neg(Union(Neg(s), Neg(t)))
}

// Exists existentially quantifies n out of s: swaps n to track 0, merges
// it out, and closes the result under leading-zero padding.
func Exists(n name.Name, s *Set) *Set {
	idx, ok := s.TrackIndex(n)
	if !ok {
		return s
	}
	nfa := s.variant.IntoNFA()
	order := s.Tracks()
	if idx != 0 {
		nfa = nfa.SwapTracks(0, idx)
		order[0], order[idx] = order[idx], order[0]
	}
	remaining := order[1:]
	projected := nfa.Project()
	closed := projected.ZeroPrefixFix()
	return newSet(automaton.FromDFA(closed), remaining)
}

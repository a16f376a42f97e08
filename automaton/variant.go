package automaton

// Variant is a sum of {DFA, NFA}. The set-algebra layer (aset) holds
// automata as Variant so it can defer determinization until a consumer
// operation (emptiness, counting, enumeration, rendering) actually forces
// it, rather than determinizing eagerly after every union or projection.
//
// The zero Variant is invalid; construct with FromDFA or FromNFA.
type Variant struct {
	dfa *DFA
	nfa *NFA
}

// FromDFA wraps a DFA as a Variant.
func FromDFA(d *DFA) Variant { return Variant{dfa: d} }

// FromNFA wraps an NFA as a Variant.
func FromNFA(n *NFA) Variant { return Variant{nfa: n} }

// IsDFA reports whether the variant currently holds a DFA (i.e. has
// already been determinized).
func (v Variant) IsDFA() bool { return v.dfa != nil }

// Tracks returns the number of tracks of whichever form is held.
func (v Variant) Tracks() int {
	if v.dfa != nil {
		return v.dfa.Tracks()
	}
	return v.nfa.Tracks()
}

// IntoDFA returns the DFA form, determinizing and minimizing if the
// variant currently holds an NFA. The receiver is not mutated; use
// EnsureDFA to cache the result.
func (v Variant) IntoDFA() *DFA {
	if v.dfa != nil {
		return v.dfa
	}
	return v.nfa.Determinize().Minimize()
}

// IntoDFABounded is IntoDFA with a cap on the number of subset-construction
// states DeterminizeBounded may materialize; see DeterminizeBounded.
func (v Variant) IntoDFABounded(limit int) (*DFA, error) {
	if v.dfa != nil {
		return v.dfa, nil
	}
	dfa, err := v.nfa.DeterminizeBounded(limit)
	if err != nil {
		return nil, err
	}
	return dfa.Minimize(), nil
}

// EnsureDFABounded is EnsureDFA with a cap on the number of subset-
// construction states materialized; see DeterminizeBounded. On error, the
// variant is left unmodified (still holding the NFA).
func (v *Variant) EnsureDFABounded(limit int) (*DFA, error) {
	if v.dfa != nil {
		return v.dfa, nil
	}
	dfa, err := v.nfa.DeterminizeBounded(limit)
	if err != nil {
		return nil, err
	}
	v.dfa = dfa.Minimize()
	v.nfa = nil
	return v.dfa, nil
}

// IntoNFA lifts the variant to NFA form. Lifting a DFA is a trivial wrap
// (every DFA cell becomes a singleton StateSet and the initial set becomes
// {0}) — no subset construction is needed in this direction.
func (v Variant) IntoNFA() *NFA {
	if v.nfa != nil {
		return v.nfa
	}
	return v.dfa.liftToNFA()
}

// EnsureDFA mutates the variant in place to the DFA representation,
// caching the determinized-and-minimized form, and returns it.
func (v *Variant) EnsureDFA() *DFA {
	if v.dfa == nil {
		v.dfa = v.nfa.Determinize().Minimize()
		v.nfa = nil
	}
	return v.dfa
}

// liftToNFA converts a DFA to the trivial NFA with the same language:
// every cell becomes a one-element StateSet and the initial set is {0}.
func (d *DFA) liftToNFA() *NFA {
	n := d.table.AlphabetSize()
	table := NewTable[StateSet](d.Tracks(), d.NumStates())
	for s := 0; s < d.NumStates(); s++ {
		for a := 0; a < n; a++ {
			table.Set(StateID(s), Symbol(a), StateSet{d.table.Get(StateID(s), Symbol(a))})
		}
	}
	accept := make([]bool, d.NumStates())
	copy(accept, d.accept)
	return &NFA{table: table, accept: accept, initial: StateSet{0}}
}

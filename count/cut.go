package count

import "github.com/pas-lang/pas/automaton"

// Cut builds the automaton recognizing every tuple whose canonical combined
// symbol sequence compares less than (strict) or less-than-or-equal
// (!strict) to element in shortlex order: shorter sequences are always
// smaller, and among equal-length sequences the comparison is lexicographic
// by symbol value. Any run of all-zero symbols read before element's own
// first (necessarily nonzero, since element is itself canonical) symbol is
// treated as free leading-zero padding that cannot change the outcome,
// mirroring the padding convention aset.Singleton builds in.
func Cut(tracks int, element []automaton.Symbol, strict bool) *automaton.DFA {
	lw := len(element)
	if lw == 0 {
		// element is the all-zero tuple: nothing is strictly less than it,
		// and only the all-zero tuple itself is <= it.
		table := automaton.NewTable[automaton.StateID](tracks, 2)
		alpha := table.AlphabetSize()
		for a := 0; a < alpha; a++ {
			if a == 0 {
				table.Set(0, automaton.Symbol(a), 0)
			} else {
				table.Set(0, automaton.Symbol(a), 1)
			}
			table.Set(1, automaton.Symbol(a), 1)
		}
		return automaton.NewDFA(table, []bool{!strict, false})
	}

	// States: 0 = leading-zero absorber (also position 0 of the real
	// comparison), 1..lw-1 = remaining comparison positions, lw = exact
	// match reached, lw+1 = LESS (absorbing, accepting), lw+2 = GREATER
	// (absorbing, rejecting).
	matched := automaton.StateID(lw)
	less := automaton.StateID(lw + 1)
	greater := automaton.StateID(lw + 2)
	table := automaton.NewTable[automaton.StateID](tracks, lw+3)
	alpha := table.AlphabetSize()

	advance := func(i int) automaton.StateID {
		if i == lw-1 {
			return matched
		}
		return automaton.StateID(i + 1)
	}

	for a := 0; a < alpha; a++ {
		sym := automaton.Symbol(a)
		if a == 0 {
			table.Set(0, sym, 0) // more leading-zero padding
			continue
		}
		switch {
		case a < int(element[0]):
			table.Set(0, sym, less)
		case a > int(element[0]):
			table.Set(0, sym, greater)
		default:
			table.Set(0, sym, advance(0))
		}
	}
	for i := 1; i < lw; i++ {
		for a := 0; a < alpha; a++ {
			sym := automaton.Symbol(a)
			switch {
			case a < int(element[i]):
				table.Set(automaton.StateID(i), sym, less)
			case a > int(element[i]):
				table.Set(automaton.StateID(i), sym, greater)
			default:
				table.Set(automaton.StateID(i), sym, advance(i))
			}
		}
	}
	for a := 0; a < alpha; a++ {
		// any symbol read after an exact match means strictly more content
		// (more low-order bits), which always makes the value larger.
		table.Set(matched, automaton.Symbol(a), greater)
		table.Set(less, automaton.Symbol(a), less)
		table.Set(greater, automaton.Symbol(a), greater)
	}

	accept := make([]bool, lw+3)
	accept[matched] = !strict
	accept[less] = true
	return automaton.NewDFA(table, accept)
}

// Cut2 locates dfa's n-th element (in canonical shortlex order) and returns
// two automata over dfa's tracks: the first is Cut(element, strict), the
// second is its complement. Neither is intersected with dfa, so both also
// accept tuples outside dfa's language.
func Cut2(dfa *automaton.DFA, n uint64) (lessThan, atOrAfter *automaton.DFA, err error) {
	element, err := nthElementSymbols(dfa, n)
	if err != nil {
		return nil, nil, err
	}
	lt := Cut(dfa.Tracks(), element, true)
	return lt, lt.Complement(), nil
}

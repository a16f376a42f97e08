package count

import "github.com/pas-lang/pas/automaton"

// NumberOfWordsZeroLength returns, per state, the count of accepted words of
// exactly length 0 starting from that state: 1 if the state itself is
// accepting, 0 otherwise. This is the base layer NumberOfWordsNextLength
// builds on, one length at a time.
func NumberOfWordsZeroLength(dfa *automaton.DFA) []uint64 {
	n := dfa.NumStates()
	out := make([]uint64, n)
	for s := 0; s < n; s++ {
		if dfa.IsAccepting(automaton.StateID(s)) {
			out[s] = 1
		}
	}
	return out
}

// NumberOfWordsNextLength advances a per-state, per-length count layer by
// one symbol: the count for state s at length L+1 is the sum, over every
// symbol a, of prev's count at dest(s, a) (the count of length-L
// completions from there).
func NumberOfWordsNextLength(dfa *automaton.DFA, prev []uint64) ([]uint64, error) {
	n := dfa.NumStates()
	alpha := dfa.Table().AlphabetSize()
	out := make([]uint64, n)
	for s := 0; s < n; s++ {
		var sum uint64
		for a := 0; a < alpha; a++ {
			dest := dfa.Step(automaton.StateID(s), automaton.Symbol(a))
			next := sum + prev[dest]
			if next < sum {
				return nil, &OpError{Op: "number_of_words_next_length", Err: ErrOverflow}
			}
			sum = next
		}
		out[s] = sum
	}
	return out, nil
}

// maxEnumeratedLength bounds how many symbol positions GetNthElement will
// search before giving up: every track value in this engine is a uint64, so
// no canonical tuple needs more than 64 bit-positions per track, and the
// combined word is no longer than the longest individual track.
const maxEnumeratedLength = 65

// nthElementSymbols finds the canonical symbol sequence (most-significant
// position first, length ascending, no redundant all-zero symbol at the top
// position) of the n-th tuple dfa accepts, in shortlex order over its
// combined per-position symbols.
func nthElementSymbols(dfa *automaton.DFA, n uint64) ([]automaton.Symbol, error) {
	if dfa.Tracks() == 0 {
		if !dfa.IsAccepting(0) || n != 0 {
			return nil, &OpError{Op: "get_nth_element", Err: ErrIndexOutOfRange}
		}
		return []automaton.Symbol{}, nil
	}

	alpha := dfa.Table().AlphabetSize()
	layers := [][]uint64{NumberOfWordsZeroLength(dfa)}
	remaining := n
	length := 0
	for {
		// The bucket for a given length must count only words whose first
		// symbol is nonzero: state 0 self-loops on the all-zero symbol to
		// absorb leading-zero padding, so layers[length][0] alone double-
		// counts every shorter tuple's zero-padded re-representation (the
		// same distinction NumberOfElements draws between raw word counts
		// and true tuple counts).
		var total uint64
		if length == 0 {
			total = layers[0][0]
		} else {
			prev := layers[length-1]
			for a := 1; a < alpha; a++ {
				dest := dfa.Step(0, automaton.Symbol(a))
				next := total + prev[dest]
				if next < total {
					return nil, &OpError{Op: "get_nth_element", Err: ErrOverflow}
				}
				total = next
			}
		}
		if remaining < total {
			break
		}
		remaining -= total
		length++
		if length > maxEnumeratedLength {
			return nil, &OpError{Op: "get_nth_element", Err: ErrIndexOutOfRange}
		}
		next, err := NumberOfWordsNextLength(dfa, layers[length-1])
		if err != nil {
			return nil, err
		}
		layers = append(layers, next)
	}
	if length == 0 {
		return []automaton.Symbol{}, nil
	}

	symbols := make([]automaton.Symbol, length)
	state := automaton.StateID(0)
	for pos := 0; pos < length; pos++ {
		suffix := layers[length-1-pos]
		start := 0
		if pos == 0 {
			start = 1 // no redundant all-zero symbol at the top position
		}
		found := false
		for sym := start; sym < alpha; sym++ {
			dest := dfa.Step(state, automaton.Symbol(sym))
			cnt := suffix[dest]
			if remaining < cnt {
				symbols[pos] = automaton.Symbol(sym)
				state = dest
				found = true
				break
			}
			remaining -= cnt
		}
		if !found {
			return nil, &OpError{Op: "get_nth_element", Err: ErrIndexOutOfRange}
		}
	}
	return symbols, nil
}

// GetNthElement returns the n-th tuple dfa accepts in canonical shortlex
// order (shorter combined representations first, then ascending symbol
// value position by position), decoded into one uint64 per track.
func GetNthElement(dfa *automaton.DFA, n uint64) ([]uint64, error) {
	symbols, err := nthElementSymbols(dfa, n)
	if err != nil {
		return nil, err
	}
	tracks := dfa.Tracks()
	values := make([]uint64, tracks)
	for _, sym := range symbols {
		for t := 0; t < tracks; t++ {
			bit := (uint64(sym) >> uint(t)) & 1
			values[t] = values[t]<<1 | bit
		}
	}
	return values, nil
}

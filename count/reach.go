package count

import "github.com/pas-lang/pas/automaton"

// unreachable is the sentinel ShortestWords uses for a state from which no
// accepting state can be reached at all.
const unreachable = -1

// ShortestWords computes, per state, the length of the shortest word
// accepted starting from that state, or unreachable if none exists. This is
// a single backward BFS seeded at every accepting state and walked over the
// predecessor graph.
func ShortestWords(dfa *automaton.DFA) []int {
	n := dfa.NumStates()
	dist := make([]int, n)
	for i := range dist {
		dist[i] = unreachable
	}
	preds := automaton.Predecessors(dfa.Table(), func(s automaton.StateID) []automaton.StateID {
		return []automaton.StateID{s}
	})

	queue := make([]automaton.StateID, 0, n)
	for s := 0; s < n; s++ {
		if dfa.IsAccepting(automaton.StateID(s)) {
			dist[s] = 0
			queue = append(queue, automaton.StateID(s))
		}
	}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, p := range preds[s] {
			if dist[p] == unreachable {
				dist[p] = dist[s] + 1
				queue = append(queue, p)
			}
		}
	}
	return dist
}

// LongestWords computes, per state, the longest accepted word's length: None
// if the state cannot reach acceptance at all, Infinite if it can reach a
// cycle that remains able to reach acceptance, otherwise Finite(n).
//
// The length of the longest path in a DAG stabilizes after at most
// NumStates rounds of relaxation; a value that keeps growing past that point
// is sitting on (or can reach) a cycle, which is how the Infinite case is
// detected.
func LongestWords(dfa *automaton.DFA) []Bound {
	n := dfa.NumStates()
	alpha := dfa.Table().AlphabetSize()
	const unset = -1
	val := make([]int, n)
	for i := range val {
		val[i] = unset
	}
	for s := 0; s < n; s++ {
		if dfa.IsAccepting(automaton.StateID(s)) {
			val[s] = 0
		}
	}

	relax := func() bool {
		changed := false
		next := make([]int, n)
		copy(next, val)
		for s := 0; s < n; s++ {
			best := val[s]
			for a := 0; a < alpha; a++ {
				dest := dfa.Step(automaton.StateID(s), automaton.Symbol(a))
				dv := val[dest]
				if dv == unset {
					continue
				}
				if cand := dv + 1; cand > best {
					best = cand
				}
			}
			if best != next[s] {
				next[s] = best
				changed = true
			}
		}
		val = next
		return changed
	}

	for round := 0; round < n+1; round++ {
		if !relax() {
			break
		}
	}
	before := append([]int(nil), val...)
	relax()
	infinite := make([]bool, n)
	for s := 0; s < n; s++ {
		if val[s] != before[s] {
			infinite[s] = true
		}
	}
	for changed := true; changed; {
		changed = false
		for s := 0; s < n; s++ {
			if infinite[s] {
				continue
			}
			for a := 0; a < alpha; a++ {
				dest := dfa.Step(automaton.StateID(s), automaton.Symbol(a))
				if infinite[dest] {
					infinite[s] = true
					changed = true
					break
				}
			}
		}
	}

	out := make([]Bound, n)
	for s := 0; s < n; s++ {
		switch {
		case infinite[s]:
			out[s] = InfiniteBound()
		case val[s] == unset:
			out[s] = NoneBound()
		default:
			out[s] = FiniteBound(uint64(val[s]))
		}
	}
	return out
}

// NumberOfWords computes, per state, the total count of accepted words of
// any length starting from that state: None if zero, Infinite if the state
// can reach a cycle on a path that remains able to reach acceptance,
// otherwise Finite(n). Uses the same growth-detection technique as
// LongestWords, with addition in place of max; both are monotone
// combinators over the forward transition graph, so the same "still
// growing past round NumStates" test for a cycle applies to either.
// States that cannot reach acceptance start out known with count zero; a
// state whose count never settles lies on such a cycle and is Infinite.
func NumberOfWords(dfa *automaton.DFA) ([]Bound, error) {
	n := dfa.NumStates()
	alpha := dfa.Table().AlphabetSize()
	val := make([]uint64, n)
	known := make([]bool, n)
	dist := ShortestWords(dfa)
	for s := 0; s < n; s++ {
		if dfa.IsAccepting(automaton.StateID(s)) {
			val[s] = 1
			known[s] = true
		} else if dist[s] == unreachable {
			known[s] = true
		}
	}

	relax := func() (bool, error) {
		changed := false
		next := make([]uint64, n)
		nextKnown := make([]bool, n)
		copy(next, val)
		copy(nextKnown, known)
		for s := 0; s < n; s++ {
			sum := uint64(0)
			if dfa.IsAccepting(automaton.StateID(s)) {
				sum = 1
			}
			allKnown := true
			for a := 0; a < alpha; a++ {
				dest := dfa.Step(automaton.StateID(s), automaton.Symbol(a))
				if !known[dest] {
					allKnown = false
					continue
				}
				newSum := sum + val[dest]
				if newSum < sum {
					return false, &OpError{Op: "number_of_words", Err: ErrOverflow}
				}
				sum = newSum
			}
			if !allKnown {
				continue
			}
			if !known[s] || sum != val[s] {
				next[s] = sum
				nextKnown[s] = true
				changed = true
			}
		}
		val, known = next, nextKnown
		return changed, nil
	}

	for round := 0; round < n+1; round++ {
		changed, err := relax()
		if err != nil {
			return nil, err
		}
		if !changed {
			break
		}
	}
	beforeVal := append([]uint64(nil), val...)
	beforeKnown := append([]bool(nil), known...)
	if _, err := relax(); err != nil {
		return nil, err
	}
	infinite := make([]bool, n)
	for s := 0; s < n; s++ {
		if known[s] != beforeKnown[s] || (known[s] && val[s] != beforeVal[s]) {
			infinite[s] = true
		}
	}
	for changed := true; changed; {
		changed = false
		for s := 0; s < n; s++ {
			if infinite[s] {
				continue
			}
			for a := 0; a < alpha; a++ {
				dest := dfa.Step(automaton.StateID(s), automaton.Symbol(a))
				if infinite[dest] {
					infinite[s] = true
					changed = true
					break
				}
			}
		}
	}

	out := make([]Bound, n)
	for s := 0; s < n; s++ {
		switch {
		case infinite[s] || !known[s]:
			out[s] = InfiniteBound()
		case val[s] == 0:
			out[s] = NoneBound()
		default:
			out[s] = FiniteBound(val[s])
		}
	}
	return out, nil
}

// NumberOfElements returns the number of distinct tuples dfa accepts. This
// is not simply NumberOfWords of the start state: state 0's self-loop on
// the all-zero symbol (absorbing arbitrary leading-zero padding) makes the
// raw word count infinite for almost every non-empty set, since every
// padded length re-represents the same tuples. Counting tuples instead
// means treating only the first *nonzero* symbol out of state 0 as the
// start of real content, then summing ordinary (padding-free, since the
// leading-zero convention only ever applies at the very first position)
// word counts from there.
func NumberOfElements(dfa *automaton.DFA) (Bound, error) {
	if dfa.Tracks() == 0 {
		if dfa.NumStates() > 0 && dfa.IsAccepting(0) {
			return FiniteBound(1), nil
		}
		return NoneBound(), nil
	}
	totals, err := NumberOfWords(dfa)
	if err != nil {
		return Bound{}, err
	}
	sum := uint64(0)
	haveAny := dfa.IsAccepting(0)
	if haveAny {
		sum = 1
	}
	alpha := dfa.Table().AlphabetSize()
	for a := 1; a < alpha; a++ {
		dest := dfa.Step(0, automaton.Symbol(a))
		switch totals[dest].Kind() {
		case BoundInfinite:
			return InfiniteBound(), nil
		case BoundFinite:
			next := sum + totals[dest].Value()
			if next < sum {
				return Bound{}, &OpError{Op: "number_of_elements", Err: ErrOverflow}
			}
			sum = next
			haveAny = true
		}
	}
	if !haveAny {
		return NoneBound(), nil
	}
	return FiniteBound(sum), nil
}

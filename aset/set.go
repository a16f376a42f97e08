// Package aset implements Automatic Sets: sets of tuples of naturals
// recognized by a finite automaton, paired with an ordered naming of the
// automaton's tracks. This is the layer the evaluator (package eval) builds
// while walking a low-level formula, and the layer package count reads from
// when enumerating or cutting a finished set.
package aset

import (
	"fmt"

	"github.com/pas-lang/pas/automaton"
	"github.com/pas-lang/pas/name"
)

// Set pairs an automaton.Variant with the ordered track names naming each
// of its tracks (track i of the variant is named tracks[i]).
type Set struct {
	variant automaton.Variant
	tracks  []name.Name
}

// TrackMismatchError reports that two sets' track lists could not be
// reconciled, e.g. a caller passed mismatched names to an operation that
// requires synchronized tracks first.
type TrackMismatchError struct {
	Op   string
	Want []name.Name
	Got  []name.Name
}

func (e *TrackMismatchError) Error() string {
	return fmt.Sprintf("aset: %s: track mismatch: want %v, got %v", e.Op, e.Want, e.Got)
}

func newSet(v automaton.Variant, tracks []name.Name) *Set {
	if v.Tracks() != len(tracks) {
		panic(fmt.Sprintf("aset: variant has %d tracks but %d names given", v.Tracks(), len(tracks)))
	}
	cp := make([]name.Name, len(tracks))
	copy(cp, tracks)
	return &Set{variant: v, tracks: cp}
}

// Tracks returns a copy of the set's ordered track names.
func (s *Set) Tracks() []name.Name {
	cp := make([]name.Name, len(s.tracks))
	copy(cp, s.tracks)
	return cp
}

// TrackIndex returns the position of n among the set's tracks.
func (s *Set) TrackIndex(n name.Name) (int, bool) {
	for i, t := range s.tracks {
		if t.Equal(n) {
			return i, true
		}
	}
	return 0, false
}

// DFA forces the set to minimized-DFA form, caching the result, and
// returns it. This is what eval calls to finalize a top-level result, and
// what count's enumeration and cut machinery consumes.
func (s *Set) DFA() *automaton.DFA {
	return s.variant.EnsureDFA()
}

// DFABounded is DFA with a cap on the number of subset-construction states
// determinization may materialize before giving up with an
// *automaton.DeterminizationError. Used by package eval to enforce
// pasconfig.Config.MaxDeterminizationStates at the point a result is
// finalized.
func (s *Set) DFABounded(limit int) (*automaton.DFA, error) {
	return s.variant.EnsureDFABounded(limit)
}

// IsEmpty reports whether the set recognizes no tuples at all.
func (s *Set) IsEmpty() bool {
	return s.DFA().IsEmpty()
}

// AddTrack appends a don't-care track named n: the set's language becomes
// independent of n's value.
func (s *Set) AddTrack(n name.Name) *Set {
	extended := s.variant.IntoNFA().AddTrack()
	return newSet(automaton.FromNFA(extended), append(s.Tracks(), n))
}

// SwapTracks reorders tracks i and j.
func (s *Set) SwapTracks(i, j int) *Set {
	tracks := s.Tracks()
	tracks[i], tracks[j] = tracks[j], tracks[i]
	return newSet(automaton.FromNFA(s.variant.IntoNFA().SwapTracks(i, j)), tracks)
}

// OrderTracks returns a Set whose leading tracks are the names in order, in
// that order: any name in order absent from s is added as a don't-care track
// first, then the tracks are permuted to match. Tracks of s not named in
// order are kept, after them.
func (s *Set) OrderTracks(order []name.Name) *Set {
	cur := s
	for _, n := range order {
		if _, ok := cur.TrackIndex(n); !ok {
			cur = cur.AddTrack(n)
		}
	}
	for target, n := range order {
		idx, _ := cur.TrackIndex(n)
		if idx != target {
			cur = cur.SwapTracks(target, idx)
		}
	}
	return cur
}

// Synchronize extends both s and other with each other's missing tracks,
// then reorders both to a common track order (s's order, extended with any
// of other's tracks s lacks, appended in other's relative order).
func (s *Set) Synchronize(other *Set) (*Set, *Set) {
	order := s.Tracks()
	have := make(map[name.Name]bool, len(order))
	for _, n := range order {
		have[n] = true
	}
	for _, n := range other.Tracks() {
		if !have[n] {
			order = append(order, n)
			have[n] = true
		}
	}
	return s.OrderTracks(order), other.OrderTracks(order)
}

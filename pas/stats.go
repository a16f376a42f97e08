package pas

import (
	"github.com/coregx/ahocorasick"

	"github.com/pas-lang/pas/count"
)

// StatsResult is the stats command's result: the set's cardinality (mirrors
// count.Bound's Finite/Infinite distinction, per original_source's
// solver/commands.rs reporting the two cases with distinct wording) plus
// its declared track names in output order.
type StatsResult struct {
	SetName string
	Size    count.Bound
	Tracks  []string
}

// Stats computes the stats command: the named set's cardinality and track
// list.
func (e *Engine) Stats(setName string) (*StatsResult, error) {
	s, err := e.Lookup(setName)
	if err != nil {
		return nil, err
	}
	size, err := count.NumberOfElements(s.DFA())
	if err != nil {
		return nil, &CommandError{Command: "stats", SetName: setName, Err: err}
	}
	tracks := s.Tracks()
	trackNames := make([]string, len(tracks))
	for i, t := range tracks {
		trackNames[i] = t.String()
	}
	return &StatsResult{SetName: setName, Size: size, Tracks: trackNames}, nil
}

// track name entries are NUL-delimited on both sides so a pattern match
// can never straddle two adjacent track names or match a name that is only
// a substring of another (e.g. "x" inside "x2").
func delimited(s string) []byte { return []byte("\x00" + s + "\x00") }

// TracksReferencing reports the names of every registered set whose track
// list contains track. A single Aho-Corasick automaton (one pattern: the
// delimited query track) is built once and reused across every
// registered set's delimited track-name haystack, rather than a fresh
// substring scan per set — the stats command path is the one place in the
// engine that does multi-haystack membership checking, giving
// ahocorasick.Automaton a home without touching core automaton semantics.
func (e *Engine) TracksReferencing(track string) ([]string, error) {
	builder := ahocorasick.NewBuilder()
	builder.AddPattern(delimited(track))
	auto, err := builder.Build()
	if err != nil {
		return nil, &CommandError{Command: "stats.tracks", SetName: track, Err: err}
	}

	var matches []string
	for setName, s := range e.sets {
		var haystack []byte
		for _, t := range s.Tracks() {
			haystack = append(haystack, delimited(t.String())...)
		}
		if auto.IsMatch(haystack) {
			matches = append(matches, setName)
		}
	}
	return matches, nil
}

// Package count implements the counting and enumeration operations this engine
// groups under "Counting and Enumeration": per-state shortest/longest
// accepted word lengths, total and per-length word counts, canonical-order
// n-th-element extraction, and the cut/cut2 automata used to split a set
// into two equal-cardinality halves. Every function here reads a minimized
// DFA built by package aset; it does not know about Sets, names, or the
// formula layer.
package count

// BoundKind tags which case of the three-valued Bound a value holds.
type BoundKind uint8

const (
	// BoundNone means no accepted word exists at all (e.g. a dead state).
	BoundNone BoundKind = iota
	// BoundFinite carries a definite finite value.
	BoundFinite
	// BoundInfinite means the quantity is unbounded (a cycle on a path
	// that can still reach acceptance).
	BoundInfinite
)

// Bound is the three-valued summary this engine reports sizes and bounds as: None,
// Finite(n), or Infinite.
type Bound struct {
	kind  BoundKind
	value uint64
}

// NoneBound returns the None case.
func NoneBound() Bound { return Bound{kind: BoundNone} }

// FiniteBound returns Finite(v).
func FiniteBound(v uint64) Bound { return Bound{kind: BoundFinite, value: v} }

// InfiniteBound returns the Infinite case.
func InfiniteBound() Bound { return Bound{kind: BoundInfinite} }

// Kind reports which case b holds.
func (b Bound) Kind() BoundKind { return b.kind }

// Value returns the carried value. Valid only when Kind == BoundFinite.
func (b Bound) Value() uint64 { return b.value }

// String renders b for diagnostics.
func (b Bound) String() string {
	switch b.kind {
	case BoundNone:
		return "none"
	case BoundInfinite:
		return "infinite"
	default:
		return itoa(b.value)
	}
}

func itoa(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}

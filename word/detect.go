package word

// defaultScratchSize is used on platforms without a page-size probe.
const defaultScratchSize = 4096

// scratchSize is sized from the host page size when available, so that a
// reusable bit-extraction buffer sized to it rarely needs to grow when
// encoding tuples for automata with many tracks.
var scratchSize = detectScratchSize()

// ScratchSize returns the recommended initial capacity for a reusable bit
// buffer used across repeated word encodings, e.g. by a caller iterating
// aset.Singleton calls over many values.
func ScratchSize() int { return scratchSize }

// Package bestpath selects the single best-scoring romanization path
// through a populated lattice.Lattice, by one forward sweep over its
// positions in order (spec.md §4.6, grounded on the teacher's
// Knuth-Plass-style single-pass line breaker).
package bestpath

import (
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the bestpath tracer.
func T() tracing.Trace {
	return tracing.Select("uroman.bestpath")
}

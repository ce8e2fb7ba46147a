// Package engine is the romanization façade: it owns the Unicode
// descriptor table and the rule table, and turns one input line into a
// romanization by running the matcher, the script augmenters, and the
// best-path selector over a fresh per-line lattice (spec.md §4.6).
package engine

import (
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the engine tracer.
func T() tracing.Trace {
	return tracing.Select("uroman.engine")
}

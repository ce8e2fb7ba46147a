// Package lattice implements the per-line romanization lattice: a directed
// acyclic graph over the scalar offsets of one input line, whose edges
// carry candidate romanizations, a type tag and a score (spec.md §3).
//
// A Lattice is created per input line, mutated only by the matcher and
// script augmenters that run over that one line, and discarded once its
// best path has been extracted. It owns no state shared across calls to
// Engine.Romanize.
package lattice

import (
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the lattice tracer.
func T() tracing.Trace {
	return tracing.Select("uroman.lattice")
}

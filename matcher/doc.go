// Package matcher populates a lattice.Lattice with edges drawn from the
// rule table (package rules), before any script augmenter runs over the
// same line.
package matcher

import (
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the matcher tracer.
func T() tracing.Trace {
	return tracing.Select("uroman.matcher")
}

// Package rules implements the romanization rule table: an embedded
// text-format data file parsed once at Load time into a frozen set of Rule
// records, and a prefix index over those records keyed by first code
// point for fast dispatch during matching.
package rules

import (
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the rules tracer.
func T() tracing.Trace {
	return tracing.Select("uroman.rules")
}

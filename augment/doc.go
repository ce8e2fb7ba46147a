// Package augment holds the script-specific lattice passes that run after
// package matcher has populated a line's rule-table and identity edges
// (spec.md §4.2: "script-specific augmenters contribute additional edges
// the general rule table cannot express"). Each augmenter only adds
// edges; none of them removes or rewrites an edge another pass produced.
//
// Augmenters run in the fixed order Run applies them in: Hangul, Indic,
// Han, Kana, Numeral, then Punctuation. A failed or partial match inside any
// one augmenter is silently abandoned (spec.md §7): the rule-table and
// identity edges the matcher already added remain as the fallback path.
package augment

import (
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the augment tracer.
func T() tracing.Trace {
	return tracing.Select("uroman.augment")
}

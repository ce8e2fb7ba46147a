// Package unidata holds the Unicode descriptor table: for every supported
// scalar value, its script, general category, canonical decomposition,
// numeric value and name-derived (base, modifiers) pair.
//
// The table is built once, from a compiled-in data blob (data.go,
// hand-curated; the generate subcommand only checks it for drift against a
// UnicodeData.txt release), and
// is immutable and safe for concurrent read access thereafter. Scalars not
// present in the curated blob fall back to the standard library's
// unicode.Scripts / unicode.Categories range tables and golang.org/x/text's
// NFD decomposition, so Table's lookups are total over all of Unicode even
// though the blob itself only curates the scalars the romanization rules
// and script augmenters need special-cased.
package unidata

import (
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the unidata tracer.
func T() tracing.Trace {
	return tracing.Select("uroman.unidata")
}

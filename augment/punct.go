package augment

import (
	"github.com/fulm-o/uroman/lattice"
	"github.com/fulm-o/uroman/unidata"
)

// diacriticStripScore rewards the diacritic-stripped spelling just above
// the bare identity fallback, so "café" can fall back to "cafe" when no
// rule or higher-scoring edge claims the accented letter (spec.md §8's
// worked example).
const diacriticStripScore = 5

// ignorableScore keeps an ignorable format scalar's empty-string edge
// competitive with its literal identity edge, so it vanishes from the
// rendered output instead of surfacing as a stray control character.
const ignorableScore = 40

// Punctuation adds two kinds of fallback edge the rule table and other
// augmenters don't: a diacritic-stripped spelling for any letter that
// carries a Base scalar, and an empty-string edge for ignorable
// format/control scalars (spec.md §4.5, §9).
func Punctuation(l *lattice.Lattice, tbl *unidata.Table) {
	input := l.Input()
	for i, r := range input {
		d := tbl.Lookup(r)
		if d.Ignorable {
			l.AddEdge(lattice.Edge{Start: i, End: i + 1, Text: "", Type: "ignorable", Score: ignorableScore, Origin: "augment.Punctuation"})
			continue
		}
		if d.Base != 0 && !d.IsBase() {
			l.AddEdge(lattice.Edge{Start: i, End: i + 1, Text: string(d.Base), Type: "diacritic-strip", Score: diacriticStripScore, Origin: "augment.Punctuation"})
		}
	}
}

package augment

import (
	"github.com/fulm-o/uroman/lattice"
	"github.com/fulm-o/uroman/unidata"
)

// Run applies every augmenter to l, in the fixed order documented in
// doc.go. langHint is passed through unchanged for the augmenters that
// need it (currently Han).
func Run(l *lattice.Lattice, tbl *unidata.Table, langHint string) {
	Hangul(l, tbl)
	Indic(l, tbl)
	Han(l, tbl, langHint)
	Kana(l, tbl)
	Numeral(l, tbl, wordBoundaries(l.Input()))
	Punctuation(l, tbl)
}

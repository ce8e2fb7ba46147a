package augment

import (
	"github.com/fulm-o/uroman/lattice"
	"github.com/fulm-o/uroman/unidata"
)

// hangulBase is the first precomposed Hangul syllable, U+AC00.
const hangulBase = 0xAC00

// hangulLast is the last precomposed Hangul syllable, U+D7A3.
const hangulLast = 0xD7A3

// hangulScore rewards the decomposed syllable reading over the bare
// identity fallback (which has no DefaultLatin for Hangul and so falls
// back to the literal syllable itself).
const hangulScore = 60

// initials holds the Revised Romanization of the 19 Hangul leading
// consonants (choseong), in jamo order.
var initials = []string{
	"g", "kk", "n", "d", "tt", "r", "m", "b", "pp",
	"s", "ss", "", "j", "jj", "ch", "k", "t", "p", "h",
}

// medials holds the Revised Romanization of the 21 Hangul vowels
// (jungseong), in jamo order.
var medials = []string{
	"a", "ae", "ya", "yae", "eo", "e", "yeo", "ye", "o",
	"wa", "wae", "oe", "yo", "u", "wo", "we", "wi", "yu", "eu", "ui", "i",
}

// finals holds the Revised Romanization of the 28 Hangul trailing
// consonants (jongseong); index 0 is "no final consonant".
var finals = []string{
	"", "g", "kk", "gs", "n", "nj", "nh", "d", "l", "lg", "lm",
	"lb", "ls", "lt", "lp", "lh", "m", "b", "bs", "s", "ss",
	"ng", "j", "ch", "k", "t", "p", "h",
}

// Hangul decomposes every precomposed Hangul syllable into its
// initial/medial/final jamo and adds one edge spanning the syllable with
// their concatenated Revised Romanization (spec.md §4.5).
func Hangul(l *lattice.Lattice, tbl *unidata.Table) {
	input := l.Input()
	for i, r := range input {
		if r < hangulBase || r > hangulLast {
			continue
		}
		sIndex := int(r) - hangulBase
		lIdx := sIndex / (21 * 28)
		vIdx := (sIndex % (21 * 28)) / 28
		tIdx := sIndex % 28
		text := initials[lIdx] + medials[vIdx] + finals[tIdx]
		if text == "" {
			continue
		}
		l.AddEdge(lattice.Edge{
			Start:  i,
			End:    i + 1,
			Text:   text,
			Type:   "hangul",
			Score:  hangulScore,
			Origin: "augment.Hangul",
		})
	}
}

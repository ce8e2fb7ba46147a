package augment

import (
	"github.com/fulm-o/uroman/lattice"
	"github.com/fulm-o/uroman/unidata"
)

// indicScore rewards a resolved consonant cluster over the bare identity
// fallback, which has no DefaultLatin for Devanagari scalars.
const indicScore = 55

const virama = 0x094D

// devanagariConsonants maps the 33 Devanagari consonant letters (U+0915
// to U+0939) to an ISO-15919-flavored base latin, carrying their inherent
// "a" vowel the way the script itself does.
var devanagariConsonants = map[rune]string{
	0x0915: "k", 0x0916: "kh", 0x0917: "g", 0x0918: "gh", 0x0919: "ng",
	0x091A: "c", 0x091B: "ch", 0x091C: "j", 0x091D: "jh", 0x091E: "ny",
	0x091F: "tt", 0x0920: "tth", 0x0921: "dd", 0x0922: "ddh", 0x0923: "nn",
	0x0924: "t", 0x0925: "th", 0x0926: "d", 0x0927: "dh", 0x0928: "n",
	0x092A: "p", 0x092B: "ph", 0x092C: "b", 0x092D: "bh", 0x092E: "m",
	0x092F: "y", 0x0930: "r", 0x0932: "l", 0x0935: "v",
	0x0936: "sh", 0x0937: "ss", 0x0938: "s", 0x0939: "h",
}

// devanagariVowelSigns maps the dependent vowel signs (matras) to the
// latin they replace the consonant's inherent "a" with.
var devanagariVowelSigns = map[rune]string{
	0x093E: "aa", 0x093F: "i", 0x0940: "ii", 0x0941: "u", 0x0942: "uu",
	0x0943: "ri", 0x0947: "e", 0x0948: "ai", 0x094B: "o", 0x094C: "au",
}

// devanagariIndependentVowels maps the independent vowel letters (used
// word-initially, with no preceding consonant) to latin.
var devanagariIndependentVowels = map[rune]string{
	0x0905: "a", 0x0906: "aa", 0x0907: "i", 0x0908: "ii", 0x0909: "u",
	0x090A: "uu", 0x090F: "e", 0x0910: "ai", 0x0913: "o", 0x0914: "au",
}

// Indic resolves Devanagari consonant-vowel-virama clusters (spec.md
// §4.5's "schwa/virama pass"): a bare consonant carries an inherent "a";
// a following dependent vowel sign replaces it; a following virama
// suppresses it entirely, the conjunct/gemination marker of the script.
// A bare consonant at word/phrase end has its inherent vowel resolved by
// terminalSchwa rather than always kept (spec.md §4.4).
func Indic(l *lattice.Lattice, tbl *unidata.Table) {
	input := l.Input()
	bounds := wordBoundaries(input)
	for i := 0; i < len(input); i++ {
		if latin, ok := devanagariIndependentVowels[input[i]]; ok {
			l.AddEdge(lattice.Edge{Start: i, End: i + 1, Text: latin, Type: "indic", Score: indicScore, Origin: "augment.Indic"})
			continue
		}
		base, ok := devanagariConsonants[input[i]]
		if !ok {
			continue
		}
		switch {
		case i+1 < len(input) && input[i+1] == virama:
			l.AddEdge(lattice.Edge{Start: i, End: i + 2, Text: base, Type: "indic", Score: indicScore, Origin: "augment.Indic"})
		case i+1 < len(input) && devanagariVowelSigns[input[i+1]] != "":
			l.AddEdge(lattice.Edge{Start: i, End: i + 2, Text: base + devanagariVowelSigns[input[i+1]], Type: "indic", Score: indicScore, Origin: "augment.Indic"})
		default:
			l.AddEdge(lattice.Edge{Start: i, End: i + 1, Text: base + terminalSchwa(input, i, bounds), Type: "indic", Score: indicScore, Origin: "augment.Indic"})
		}
	}
}

// terminalSchwa returns "a" when the bare consonant at i keeps its
// inherent vowel, or "" when it is suppressed (spec.md §4.4: "at
// word/phrase end, suppress terminal schwa ... schwa kept between two
// consonants when needed for syllabification, dropped otherwise"). A
// consonant that isn't the last scalar of its word always keeps the
// vowel, since it carries the syllable into what follows. A word-final
// consonant drops it, with two exceptions that would otherwise leave a
// syllable with no vowel at all: the consonant is also the first scalar
// of its word (a lone consonant has nothing else to carry a vowel), or
// the scalar immediately before it is itself a consonant letter; in both
// cases the word-final consonant keeps its schwa.
func terminalSchwa(input []rune, i int, bounds map[int]bool) string {
	if i == 0 || !bounds[i+1] {
		return "a"
	}
	if _, prevBare := devanagariConsonants[input[i-1]]; prevBare {
		return "a"
	}
	return ""
}

package augment

import (
	"strings"

	"github.com/fulm-o/uroman/lattice"
	"github.com/fulm-o/uroman/unidata"
)

// tonedReadings gives a toned pinyin alternative for the small set of
// greeting-vocabulary hanzi the embedded rule table already carries a
// toneless default reading for (spec.md §4.5: "Han augmenter: default
// reading selection with tone handling"). Rather than replace the rule
// table's toneless default, this augmenter offers the toned spelling as
// an extra edge that never outscores the main reading. Under
// engine.ShapeAlternatives it is reported only when the alternative margin
// is at least 110 (the gap to a 100-score default reading); the default
// margin of 20 leaves it out.
var tonedReadings = map[rune]string{
	'你': "nǐ", '好': "hǎo", '吗': "ma", '多': "duō", '少': "shǎo",
	'您': "nín", '早': "zǎo", '上': "shàng", '晚': "wǎn", '安': "ān",
	'谢': "xiè", '请': "qǐng", '问': "wèn", '世': "shì", '界': "jiè",
}

// tonedVowel gives the plain vowel letter and Pinyin-numeric tone digit
// a precomposed toned vowel rune stands for (macron=1st tone,
// acute=2nd, caron=3rd, grave=4th tone), covering every toned vowel
// tonedReadings uses.
type tonedVowel struct {
	base rune
	tone byte
}

var toneVowels = map[rune]tonedVowel{
	'ā': {'a', '1'}, 'á': {'a', '2'}, 'ǎ': {'a', '3'}, 'à': {'a', '4'},
	'ē': {'e', '1'}, 'é': {'e', '2'}, 'ě': {'e', '3'}, 'è': {'e', '4'},
	'ī': {'i', '1'}, 'í': {'i', '2'}, 'ǐ': {'i', '3'}, 'ì': {'i', '4'},
	'ō': {'o', '1'}, 'ó': {'o', '2'}, 'ǒ': {'o', '3'}, 'ò': {'o', '4'},
	'ū': {'u', '1'}, 'ú': {'u', '2'}, 'ǔ': {'u', '3'}, 'ù': {'u', '4'},
}

// tonedScore is kept below any rule-table default reading's score so a
// toned edge is never chosen by bestpath over the main pinyin reading;
// it exists to be surfaced as an alternative, not to win the path.
const tonedScore = -10

// Han adds a toned-pinyin alternative edge for hanzi with a curated
// tonal reading. spec.md §4.4: with a Mandarin language hint ("zho" or
// "cmn"), the tone is rendered as a trailing digit on the toneless
// spelling (the Pinyin-numeric convention, e.g. "ni3"); otherwise the
// toned reading is stripped to the bare toneless spelling, matching the
// rule table's own default reading rather than claiming a tone contour
// that hasn't been disambiguated for the hinted language.
func Han(l *lattice.Lattice, tbl *unidata.Table, langHint string) {
	mandarin := langHint == "zho" || langHint == "cmn"
	T().Debugf("han tone rendering: mandarin=%v (hint %q)", mandarin, langHint)
	input := l.Input()
	for i, r := range input {
		if tbl.Lookup(r).Script != unidata.Han {
			continue
		}
		toned, ok := tonedReadings[r]
		if !ok {
			continue
		}
		text := toneSpelling(toned, mandarin)
		l.AddEdge(lattice.Edge{
			Start:  i,
			End:    i + 1,
			Text:   text,
			Type:   "han-toned",
			Score:  tonedScore,
			Origin: "augment.Han",
		})
	}
}

// toneSpelling renders a diacritic-marked pinyin syllable either as a
// Pinyin-numeric spelling (mandarin == true) or as the bare toneless
// spelling.
func toneSpelling(toned string, mandarin bool) string {
	var sb strings.Builder
	var digit byte
	for _, r := range toned {
		if tv, ok := toneVowels[r]; ok {
			sb.WriteRune(tv.base)
			digit = tv.tone
			continue
		}
		sb.WriteRune(r)
	}
	if mandarin && digit != 0 {
		sb.WriteByte(digit)
	}
	return sb.String()
}

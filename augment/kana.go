package augment

import (
	"github.com/fulm-o/uroman/lattice"
	"github.com/fulm-o/uroman/unidata"
)

// prolongedSoundMark is U+30FC, the katakana-hiragana prolonged sound
// mark; it doubles the vowel of the syllable it follows rather than
// carrying a romanization of its own (spec.md §8's worked example 3:
// "ユーロマン" -> "yuuroman").
const prolongedSoundMark = 0x30FC

// kanaScore outranks the bare identity fallback for the prolongation
// mark, which otherwise has no DefaultLatin of its own.
const kanaScore = 45

var vowelLetters = map[rune]bool{'a': true, 'e': true, 'i': true, 'o': true, 'u': true}

// Kana doubles the preceding syllable's final vowel wherever the
// prolonged sound mark follows a kana reading the rule table already
// resolved. If the preceding edge's romanization doesn't end in a plain
// vowel letter, the mark is left to the identity fallback (spec.md §7:
// augmenters never abort the line on a pattern they can't complete).
func Kana(l *lattice.Lattice, tbl *unidata.Table) {
	input := l.Input()
	for i, r := range input {
		if r != prolongedSoundMark {
			continue
		}
		if i == 0 {
			continue
		}
		if tbl.Lookup(r).Script != unidata.Katakana {
			continue
		}
		prev := bestEdgeEnding(l, i)
		if prev == nil || prev.Text == "" {
			T().Debugf("prolonged sound mark at %d has no preceding reading to double; leaving to identity fallback", i)
			continue
		}
		last := rune(prev.Text[len(prev.Text)-1])
		if !vowelLetters[last] {
			T().Debugf("prolonged sound mark at %d follows %q, not a plain vowel; leaving to identity fallback", i, prev.Text)
			continue
		}
		l.AddEdge(lattice.Edge{
			Start:  i,
			End:    i + 1,
			Text:   string(last),
			Type:   "kana-prolongation",
			Score:  kanaScore,
			Origin: "augment.Kana",
		})
	}
}

// bestEdgeEnding returns the highest-scoring edge ending exactly at pos,
// or nil if none does.
func bestEdgeEnding(l *lattice.Lattice, pos int) *lattice.Edge {
	var best *lattice.Edge
	for start := 0; start < pos; start++ {
		for _, e := range l.EdgesFrom(start) {
			if e.End != pos {
				continue
			}
			if best == nil || e.Score > best.Score {
				cp := e
				best = &cp
			}
		}
	}
	return best
}

package matcher

import (
	"strconv"
	"unicode"

	"github.com/fulm-o/uroman/lattice"
	"github.com/fulm-o/uroman/rules"
	"github.com/fulm-o/uroman/unidata"
)

// identityBonus is how far below the weakest real rule match an identity
// fallback edge scores (DESIGN.md, matcher, Open Question: score-margin
// constant for rule-vs-identity preference). Any rule match, however
// marginal, must outrank the fallback.
const identityBonus = -1

// longerMatchBonus rewards a rule hit proportionally to how many extra
// scalars it consumes beyond one, so a multi-rune exception like "世界"
// outscores the *sum* of the single-rune default readings it could be
// split into instead, not merely each one individually (spec.md §4.3 and
// §9's Open Question on the score-margin constant: exposed here as a
// compile-time constant, tuned well above any single rule's score so it
// dominates regardless of how many scalars a longer pattern spans).
const longerMatchBonus = 150

// languageMatchBonus rewards a rule whose Langs set names the caller's
// hint explicitly, over a language-agnostic or TypeDefault rule covering
// the same span.
const languageMatchBonus = 25

// Populate walks every position of l's input and adds one edge per rule
// in the index whose pattern, context and language restriction all match,
// plus a per-scalar identity fallback edge everywhere no rule fires.
// Populate never errors: a line with no matching rule at a position still
// gets an identity edge there, preserving the lattice's connectivity
// invariant (spec.md §3).
func Populate(l *lattice.Lattice, idx *rules.Index, tbl *unidata.Table, langHint string) {
	input := l.Input()
	for pos := 0; pos < len(input); pos++ {
		matched := false
		for _, r := range idx.CandidatesAt(input, pos) {
			end := pos + len(r.Pattern)
			if !r.MatchesLanguage(langHint) {
				continue
			}
			if !contextMatches(tbl, input, pos, end, r) {
				continue
			}
			for _, tgt := range r.Targets {
				score := tgt.Score + longerMatchBonus*(len(r.Pattern)-1)
				if langHint != "" && r.Langs[langHint] {
					score += languageMatchBonus
				}
				l.AddEdge(lattice.Edge{
					Start:  pos,
					End:    end,
					Text:   tgt.Text,
					Type:   lattice.EdgeType(r.Type),
					Score:  score,
					Origin: "rule:" + strconv.Itoa(r.Line),
				})
				matched = true
			}
		}
		if !matched {
			T().Debugf("no rule matched at pos %d (%q); using identity fallback", pos, input[pos])
			addIdentityEdge(l, tbl, input, pos)
		}
	}
}

// addIdentityEdge adds the single-scalar fallback edge at pos, using the
// descriptor's DefaultLatin when the Unicode data carries one, or the
// scalar's own rendering otherwise (spec.md §4.3's "identity fallback").
func addIdentityEdge(l *lattice.Lattice, tbl *unidata.Table, input []rune, pos int) {
	d := tbl.Lookup(input[pos])
	text := d.DefaultLatin
	if text == "" {
		text = string(input[pos])
	}
	score := 0
	if d.DefaultLatin != "" {
		score = identityBonus
	}
	l.AddEdge(lattice.Edge{
		Start:  pos,
		End:    pos + 1,
		Text:   text,
		Type:   lattice.TypeIdentity,
		Score:  score,
		Origin: "identity",
	})
}

// contextMatches reports whether r's left/right context conditions, if
// set, are satisfied by the scalars surrounding input[start:end].
func contextMatches(tbl *unidata.Table, input []rune, start, end int, r rules.Rule) bool {
	if r.Left.Set && !matchesContext(tbl, input, start-1, -1, r.Left) {
		return false
	}
	if r.Right.Set && !matchesContext(tbl, input, end, 1, r.Right) {
		return false
	}
	return true
}

// matchesContext checks one side of a context condition. pos is the
// scalar index adjacent to the pattern span on that side; step is -1 for
// the left side (checking Literal backwards) and +1 for the right side.
func matchesContext(tbl *unidata.Table, input []rune, pos, step int, c rules.Context) bool {
	if c.Class != rules.ClassNone {
		if c.Class == rules.ClassWordBoundary {
			return pos < 0 || pos >= len(input)
		}
		if pos < 0 || pos >= len(input) {
			return false
		}
		return classMatches(tbl, input[pos], c.Class)
	}
	if len(c.Literal) == 0 {
		return true
	}
	for i, want := range orderedLiteral(c.Literal, step) {
		p := pos + step*i
		if p < 0 || p >= len(input) || input[p] != want {
			return false
		}
	}
	return true
}

// orderedLiteral returns lit in the order it must be compared against the
// input when walking outward from the pattern: unchanged for the right
// side, reversed for the left side, since Literal is always written in
// left-to-right reading order in the rule file.
func orderedLiteral(lit []rune, step int) []rune {
	if step > 0 {
		return lit
	}
	rev := make([]rune, len(lit))
	for i, r := range lit {
		rev[len(lit)-1-i] = r
	}
	return rev
}

func classMatches(tbl *unidata.Table, u rune, class rules.ContextClass) bool {
	switch class {
	case rules.ClassDigit:
		return unicode.IsDigit(u) || tbl.Lookup(u).Category == unidata.Number
	case rules.ClassVowel:
		return isVowel(u)
	case rules.ClassConsonant:
		d := tbl.Lookup(u)
		return d.Category == unidata.Letter && !isVowel(u)
	}
	return false
}

// vowels covers the Latin and Devanagari independent vowel letters the
// curated rule set currently references; it is deliberately small rather
// than a full per-script table.
var vowels = map[rune]bool{
	'a': true, 'e': true, 'i': true, 'o': true, 'u': true,
	'A': true, 'E': true, 'I': true, 'O': true, 'U': true,
	'अ': true, 'आ': true, 'इ': true, 'ई': true, 'उ': true, 'ऊ': true, 'ए': true, 'ओ': true,
}

func isVowel(u rune) bool {
	return vowels[u]
}

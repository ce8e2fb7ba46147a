package unidata

import "strings"

// modifierWords are the Unicode-name fragments that introduce a diacritic
// or combining modifier, per spec.md §4.1 ("WITH", "AND", "ABOVE", "BELOW",
// "DOT", "ACUTE", …). Longest fragments are matched first so e.g. "DOT
// ABOVE" isn't mis-split into two separate modifiers "DOT" and "ABOVE".
var modifierWords = []string{
	"WITH DOT ABOVE",
	"WITH DOT BELOW",
	"WITH RING ABOVE",
	"WITH RING BELOW",
	"WITH CEDILLA",
	"WITH ACUTE",
	"WITH GRAVE",
	"WITH CIRCUMFLEX",
	"WITH DIAERESIS",
	"WITH MACRON",
	"WITH CARON",
	"WITH TILDE",
	"WITH BREVE",
	"WITH OGONEK",
	"WITH STROKE",
	"WITH HOOK",
	"AND ACUTE",
	"AND GRAVE",
}

// splitName derives (base letter, modifiers) from a Unicode character name
// by stripping the trailing "LETTER <BASE> WITH ..." construction. It
// returns ok=false when name doesn't follow that pattern (ligatures like
// "LATIN SMALL LETTER SHARP S" fall through with no base).
func splitName(name string) (base rune, mods []Modifier, ok bool) {
	upper := strings.ToUpper(name)
	idx := strings.Index(upper, " LETTER ")
	if idx < 0 {
		return 0, nil, false
	}
	rest := upper[idx+len(" LETTER "):]
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return 0, nil, false
	}
	letterToken := fields[0]
	if len([]rune(letterToken)) != 1 {
		return 0, nil, false // e.g. "SHARP" in "LETTER SHARP S" - no single-rune base
	}
	baseRune := []rune(strings.ToLower(letterToken))[0]
	remainder := strings.Join(fields[1:], " ")
	if remainder == "" {
		return baseRune, nil, true
	}
	for _, word := range modifierWords {
		if strings.Contains(remainder, word) {
			mod := strings.ToLower(strings.TrimPrefix(strings.TrimPrefix(word, "WITH "), "AND "))
			mods = append(mods, Modifier(strings.ReplaceAll(mod, " ", "-")))
		}
	}
	return baseRune, mods, true
}

package unidata

import (
	"math/big"
	"sync"
	"unicode"

	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/norm"
)

// Table is the immutable, concurrency-safe Unicode descriptor table. Build
// it once with NewTable and share it read-only across any number of
// Engines and goroutines.
type Table struct {
	curated map[rune]Descriptor
	cache   sync.Map // rune -> Descriptor, memoizes the stdlib fallback path
}

// NewTable builds the descriptor table from the compiled-in blob. It never
// fails: the blob is a package-level literal, not parsed at runtime, so
// there is no construction-error path here (contrast rules.Load, which
// parses an embedded text file and can fail).
func NewTable() *Table {
	t := &Table{curated: make(map[rune]Descriptor, len(records))}
	for _, rec := range records {
		d := Descriptor{
			Rune:      rec.r,
			Script:    rec.script,
			Category:  rec.category,
			Ignorable: rec.ignorable,
			Direction: directionOf(rec.r),
		}
		if rec.den != 0 {
			d.Numeric = big.NewRat(rec.num, rec.den)
		}
		if len(rec.decompose) > 0 {
			d.Decompose = rec.decompose
		}
		if rec.name != "" {
			if base, mods, ok := splitName(rec.name); ok {
				d.Base = base
				d.Modifiers = mods
			}
		}
		if rec.latin != "" {
			d.DefaultLatin = rec.latin
		} else if d.Category == Letter && d.Script == Latin && d.Base == 0 {
			d.DefaultLatin = string(rec.r)
		}
		t.curated[rec.r] = d
	}
	return t
}

// Lookup returns the descriptor for u. It always returns a usable
// Descriptor, falling back to stdlib Unicode tables and NFD decomposition
// for scalars outside the curated blob.
func (t *Table) Lookup(u rune) Descriptor {
	if d, ok := t.curated[u]; ok {
		return d
	}
	if cached, ok := t.cache.Load(u); ok {
		return cached.(Descriptor)
	}
	T().Debugf("U+%04X not in curated table; falling back to stdlib Unicode tables", u)
	d := t.classify(u)
	t.cache.Store(u, d)
	return d
}

func (t *Table) classify(u rune) Descriptor {
	d := Descriptor{Rune: u, Script: scriptOf(u), Category: categoryOf(u), Direction: directionOf(u)}
	switch {
	case unicode.Is(unicode.Cf, u), unicode.Is(unicode.Cc, u):
		d.Category = Format
		d.Ignorable = true
	case d.Category == Letter:
		if base, mods := nfdBaseAndMods(u); base != 0 {
			d.Base = base
			d.Modifiers = mods
		}
		if d.IsBase() {
			if u <= unicode.MaxASCII {
				d.DefaultLatin = string(u)
			} else if d.Base != 0 {
				d.DefaultLatin = ""
			}
		} else {
			d.DefaultLatin = string(d.Base)
		}
	case d.Category == Number:
		if v, ok := numericOf(u); ok {
			d.Numeric = v
		}
	}
	if dec := norm.NFD.String(string(u)); dec != string(u) {
		d.Decompose = []rune(dec)
	}
	return d
}

func scriptOf(u rune) Script {
	switch {
	case unicode.Is(unicode.Latin, u):
		return Latin
	case unicode.Is(unicode.Han, u):
		return Han
	case unicode.Is(unicode.Hangul, u):
		return Hangul
	case unicode.Is(unicode.Hiragana, u):
		return Hiragana
	case unicode.Is(unicode.Katakana, u):
		return Katakana
	case unicode.Is(unicode.Devanagari, u):
		return Devanagari
	case unicode.Is(unicode.Bengali, u):
		return Bengali
	case unicode.Is(unicode.Tamil, u):
		return Tamil
	case unicode.Is(unicode.Runic, u):
		return Runic
	case unicode.Is(unicode.Arabic, u):
		return Arabic
	case unicode.Is(unicode.Hebrew, u):
		return Hebrew
	case unicode.Is(unicode.Thai, u):
		return Thai
	case unicode.Is(unicode.Armenian, u):
		return Armenian
	case unicode.Is(unicode.Georgian, u):
		return Georgian
	case unicode.Is(unicode.Cyrillic, u):
		return Cyrillic
	case unicode.Is(unicode.Greek, u):
		return Greek
	case unicode.Is(unicode.Common, u):
		return Common
	}
	return Unknown
}

func categoryOf(u rune) Category {
	switch {
	case unicode.IsLetter(u):
		return Letter
	case unicode.IsMark(u):
		return Mark
	case unicode.IsNumber(u) || unicode.IsDigit(u):
		return Number
	case unicode.IsPunct(u):
		return Punctuation
	case unicode.IsSymbol(u):
		return Symbol
	case unicode.IsSpace(u):
		return Separator
	case unicode.IsControl(u):
		return Format
	}
	return Unassigned
}

// nfdBaseAndMods decomposes u with NFD and, if the result is a base letter
// followed by combining marks, derives (base, modifier-tags) from the
// Unicode names of those combining marks instead of from u's own name
// (used for scalars outside the curated blob).
func nfdBaseAndMods(u rune) (rune, []Modifier) {
	dec := norm.NFD.String(string(u))
	runes := []rune(dec)
	if len(runes) < 2 {
		return 0, nil
	}
	base := runes[0]
	var mods []Modifier
	for _, m := range runes[1:] {
		if name, ok := combiningMarkNames[m]; ok {
			mods = append(mods, Modifier(name))
		}
	}
	if len(mods) == 0 {
		return 0, nil
	}
	return base, mods
}

// combiningMarkNames gives short tags for the combining marks the engine
// recognizes; it is the runtime analogue of stripping "WITH <NAME>" from a
// precomposed letter's Unicode name.
var combiningMarkNames = map[rune]string{
	0x0301: "acute",
	0x0300: "grave",
	0x0302: "circumflex",
	0x0308: "diaeresis",
	0x0304: "macron",
	0x030C: "caron",
	0x0303: "tilde",
	0x0306: "breve",
	0x0327: "cedilla",
	0x030A: "ring-above",
	0x0323: "dot-below",
	0x0307: "dot-above",
	0x030B: "double-acute",
}

// directionOf derives a scalar's default writing direction from its
// Unicode bidirectional class (SPEC_FULL.md §3's Descriptor.Direction,
// informational only - it never feeds matching or scoring).
func directionOf(u rune) Direction {
	switch p, _ := bidi.LookupRune(u); p.Class() {
	case bidi.R, bidi.AL:
		return RightToLeft
	case bidi.L:
		return LeftToRight
	default:
		return NeutralDirection
	}
}

func numericOf(u rune) (*big.Rat, bool) {
	if n := digitValue(u); n >= 0 {
		return big.NewRat(int64(n), 1), true
	}
	return nil, false
}

func digitValue(u rune) int {
	if u >= '0' && u <= '9' {
		return int(u - '0')
	}
	return -1
}

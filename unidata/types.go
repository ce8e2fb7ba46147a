package unidata

import "math/big"

// Script identifies the writing system a scalar belongs to.
type Script string

// Scripts the descriptor table distinguishes, from curated data or from
// unicode.Scripts. Scalars belonging to scripts outside this list receive
// Unknown.
const (
	Common     Script = "Common"
	Latin      Script = "Latin"
	Han        Script = "Han"
	Hangul     Script = "Hangul"
	Hiragana   Script = "Hiragana"
	Katakana   Script = "Katakana"
	Devanagari Script = "Devanagari"
	Bengali    Script = "Bengali"
	Tamil      Script = "Tamil"
	Runic      Script = "Runic"
	Arabic     Script = "Arabic"
	Hebrew     Script = "Hebrew"
	Thai       Script = "Thai"
	Armenian   Script = "Armenian"
	Georgian   Script = "Georgian"
	Cyrillic   Script = "Cyrillic"
	Greek      Script = "Greek"
	Unknown    Script = "Unknown"
)

// Category is a coarse Unicode general-category grouping, coarser than the
// two-letter general category so script augmenters can switch on it.
type Category string

const (
	Letter      Category = "Letter"
	Mark        Category = "Mark"
	Number      Category = "Number"
	Punctuation Category = "Punctuation"
	Symbol      Category = "Symbol"
	Separator   Category = "Separator"
	Format      Category = "Format" // ignorable control/format scalars
	Unassigned  Category = "Unassigned"
)

// Direction is a scalar's default writing direction, derived from its
// Unicode bidirectional class. Informational only (see SPEC_FULL.md §3); it does not influence matching
// or scoring.
type Direction int

const (
	LeftToRight Direction = iota
	RightToLeft
	NeutralDirection
)

// Modifier is a diacritic or combining-mark name fragment split out of a
// Unicode character name, e.g. "WITH DIAERESIS" yields Modifier("diaeresis").
type Modifier string

// Descriptor is the immutable per-scalar record held by Table.
type Descriptor struct {
	Rune         rune
	Script       Script
	Category     Category
	Decompose    []rune   // canonical decomposition, nil if none
	Numeric      *big.Rat // nil if the scalar has no numeric value
	Base         rune     // 0 if this scalar has no derived base (non-letters, or already a base)
	Modifiers    []Modifier
	Direction    Direction
	Ignorable    bool // format/control scalars stripped silently (§9 Open Question, resolved in DESIGN.md)
	DefaultLatin string // identity-fallback romanization, "" if none applies
}

// IsBase reports whether d has no diacritic modifiers, i.e. stripping
// diacritics from d is a no-op.
func (d Descriptor) IsBase() bool {
	return len(d.Modifiers) == 0
}

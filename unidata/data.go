package unidata

import "sort"

// CuratedRunes returns every scalar value explicitly curated in this
// table, sorted ascending. unidata/generate uses this to flag a curated
// code point that has gone missing from a newer UCD release.
func CuratedRunes() []rune {
	out := make([]rune, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// record is the raw, hand-curated form of a table entry. Only scalars
// needing something the stdlib unicode tables don't carry — a numeric
// value, a name-derived (base, modifiers) split, an explicit canonical
// decomposition, or an ignorable/format flag — are listed here; everything
// else is classified by Table's fallback path (see table.go).
type record struct {
	r         rune
	script    Script
	category  Category
	name      string // Unicode character name; "" when no name-split applies
	num, den  int64  // numeric value num/den; den == 0 means "no numeric value"
	decompose []rune
	ignorable bool
	latin     string // explicit identity-fallback override
}

// records is the compiled-in descriptor blob. Grouped by concern, the way
// UnicodeData.txt groups by code-point order but annotated here by the
// feature that earns the scalar a curated entry.
var records = buildRecords()

func buildRecords() []record {
	var recs []record

	// --- Latin diacritic letters: name-derived base+modifier split ---------
	latinDiacritics := []struct {
		r    rune
		name string
	}{
		{'á', "LATIN SMALL LETTER A WITH ACUTE"},
		{'à', "LATIN SMALL LETTER A WITH GRAVE"},
		{'â', "LATIN SMALL LETTER A WITH CIRCUMFLEX"},
		{'ä', "LATIN SMALL LETTER A WITH DIAERESIS"},
		{'ā', "LATIN SMALL LETTER A WITH MACRON"},
		{'ǎ', "LATIN SMALL LETTER A WITH CARON"},
		{'å', "LATIN SMALL LETTER A WITH RING ABOVE"},
		{'ã', "LATIN SMALL LETTER A WITH TILDE"},
		{'é', "LATIN SMALL LETTER E WITH ACUTE"},
		{'è', "LATIN SMALL LETTER E WITH GRAVE"},
		{'ê', "LATIN SMALL LETTER E WITH CIRCUMFLEX"},
		{'ë', "LATIN SMALL LETTER E WITH DIAERESIS"},
		{'ē', "LATIN SMALL LETTER E WITH MACRON"},
		{'ě', "LATIN SMALL LETTER E WITH CARON"},
		{'í', "LATIN SMALL LETTER I WITH ACUTE"},
		{'ì', "LATIN SMALL LETTER I WITH GRAVE"},
		{'î', "LATIN SMALL LETTER I WITH CIRCUMFLEX"},
		{'ï', "LATIN SMALL LETTER I WITH DIAERESIS"},
		{'ī', "LATIN SMALL LETTER I WITH MACRON"},
		{'ǐ', "LATIN SMALL LETTER I WITH CARON"},
		{'ó', "LATIN SMALL LETTER O WITH ACUTE"},
		{'ò', "LATIN SMALL LETTER O WITH GRAVE"},
		{'ô', "LATIN SMALL LETTER O WITH CIRCUMFLEX"},
		{'ö', "LATIN SMALL LETTER O WITH DIAERESIS"},
		{'ō', "LATIN SMALL LETTER O WITH MACRON"},
		{'ǒ', "LATIN SMALL LETTER O WITH CARON"},
		{'õ', "LATIN SMALL LETTER O WITH TILDE"},
		{'ú', "LATIN SMALL LETTER U WITH ACUTE"},
		{'ù', "LATIN SMALL LETTER U WITH GRAVE"},
		{'û', "LATIN SMALL LETTER U WITH CIRCUMFLEX"},
		{'ü', "LATIN SMALL LETTER U WITH DIAERESIS"},
		{'ū', "LATIN SMALL LETTER U WITH MACRON"},
		{'ǔ', "LATIN SMALL LETTER U WITH CARON"},
		{'ñ', "LATIN SMALL LETTER N WITH TILDE"},
		{'ç', "LATIN SMALL LETTER C WITH CEDILLA"},
		{'ý', "LATIN SMALL LETTER Y WITH ACUTE"},
		{'ß', "LATIN SMALL LETTER SHARP S"}, // no modifier word; base stays 0
	}
	for _, d := range latinDiacritics {
		recs = append(recs, record{r: d.r, script: Latin, category: Letter, name: d.name})
	}

	// --- Runic letters: table-driven script, rules carry the romanization ---
	for _, r := range []rune("ᚠᚢᚦᚨᚱᚲᚷᚹᚺᚻᚾᛁᛃᛈᛇᛉᛊᛏᛒᛖᛗᛚᛜᛞᛟᛡᛠ") {
		recs = append(recs, record{r: r, script: Runic, category: Letter})
	}

	// --- Hiragana / Katakana: script tagging, katakana long-vowel mark ------
	for r := rune(0x3041); r <= 0x3096; r++ {
		recs = append(recs, record{r: r, script: Hiragana, category: Letter})
	}
	for r := rune(0x30A1); r <= 0x30FA; r++ {
		recs = append(recs, record{r: r, script: Katakana, category: Letter})
	}
	recs = append(recs, record{r: 0x30FC, script: Katakana, category: Letter, name: "KATAKANA-HIRAGANA PROLONGED SOUND MARK"})

	// --- Devanagari: consonants, vowels, signs, virama, digits --------------
	for r := rune(0x0915); r <= 0x0939; r++ { // consonants
		recs = append(recs, record{r: r, script: Devanagari, category: Letter})
	}
	for r := rune(0x0905); r <= 0x0914; r++ { // independent vowels
		recs = append(recs, record{r: r, script: Devanagari, category: Letter})
	}
	for r := rune(0x093E); r <= 0x094C; r++ { // dependent vowel signs (matras)
		recs = append(recs, record{r: r, script: Devanagari, category: Mark})
	}
	recs = append(recs, record{r: 0x094D, script: Devanagari, category: Mark}) // virama
	recs = append(recs, record{r: 0x0902, script: Devanagari, category: Mark}) // anusvara
	recs = append(recs, record{r: 0x0903, script: Devanagari, category: Mark}) // visarga
	for i, r := 0, rune(0x0966); r <= 0x096F; r, i = r+1, i+1 {
		recs = append(recs, record{r: r, script: Devanagari, category: Number, num: int64(i), den: 1})
	}

	// --- Arabic-Indic and Thai digits: numeric composition ------------------
	for i, r := 0, rune(0x0660); r <= 0x0669; r, i = r+1, i+1 {
		recs = append(recs, record{r: r, script: Arabic, category: Number, num: int64(i), den: 1})
	}
	for i, r := 0, rune(0x0E50); r <= 0x0E59; r, i = r+1, i+1 {
		recs = append(recs, record{r: r, script: Thai, category: Number, num: int64(i), den: 1})
	}

	// --- CJK numeral ideographs and magnitude words -------------------------
	cjkDigits := map[rune]int64{
		'〇': 0, '零': 0, '一': 1, '二': 2, '两': 2, '三': 3, '四': 4, '五': 5,
		'六': 6, '七': 7, '八': 8, '九': 9,
	}
	for r, v := range cjkDigits {
		recs = append(recs, record{r: r, script: Han, category: Number, num: v, den: 1})
	}
	cjkMagnitudes := map[rune]int64{
		'十': 10, '百': 100, '千': 1000, '万': 10000, '萬': 10000,
		'億': 100000000, '亿': 100000000,
	}
	for r, v := range cjkMagnitudes {
		recs = append(recs, record{r: r, script: Han, category: Number, num: v, den: 1})
	}

	// --- Fraction markers and vulgar fractions ------------------------------
	recs = append(recs, record{r: '分', script: Han, category: Letter})
	recs = append(recs, record{r: '之', script: Han, category: Letter})
	recs = append(recs, record{r: '½', script: Common, category: Number, num: 1, den: 2})
	recs = append(recs, record{r: '⅓', script: Common, category: Number, num: 1, den: 3})
	recs = append(recs, record{r: '⅔', script: Common, category: Number, num: 2, den: 3})
	recs = append(recs, record{r: '¼', script: Common, category: Number, num: 1, den: 4})
	recs = append(recs, record{r: '¾', script: Common, category: Number, num: 3, den: 4})

	// --- A representative set of CJK ideographs used by worked examples ----
	// Pinyin readings themselves live in the rule table (component 2); this
	// just registers the scalars as Han so the matcher and Han augmenter
	// dispatch correctly even when the stdlib range table lookup would
	// already agree — explicit entries let generate's diffing tooling flag
	// when the curated set drifts from upstream UnicodeData.txt.
	// 百千万億 are deliberately excluded here: they already carry Number
	// records above, and a second Letter record for the same rune would
	// overwrite that entry's Numeric field in NewTable's curated map.
	for _, r := range []rune("世界你好吗多少您早上好晚安谢谢请问") {
		recs = append(recs, record{r: r, script: Han, category: Letter})
	}

	// --- Ignorable format/control scalars -----------------------------------
	ignorable := []rune{0x200B, 0x200C, 0x200D, 0x200E, 0x200F, 0x061C, 0xFEFF}
	for _, r := range ignorable {
		recs = append(recs, record{r: r, script: Common, category: Format, ignorable: true})
	}
	for r := rune(0xFE00); r <= 0xFE0F; r++ { // variation selectors
		recs = append(recs, record{r: r, script: Common, category: Format, ignorable: true})
	}

	return recs
}

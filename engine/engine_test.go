package engine

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New()
	require.NoError(t, err)
	return e
}

func TestRomanizeJapaneseGreetingWithDefaultPinyinForHan(t *testing.T) {
	e := mustEngine(t)
	r := e.Romanize([]rune("こんにちは、世界！"), "jpn", ShapeString)
	assert.Equal(t, "konnichiha, shijie!", r.String)
}

func TestRomanizeRunicGreeting(t *testing.T) {
	e := mustEngine(t)
	r := e.Romanize([]rune("ᚺᚨᛚᛚᛟ ᚹᛟᚱᛚᛞ"), "", ShapeString)
	assert.Equal(t, "hallo world", r.String)
}

func TestRomanizeKatakanaLongVowelMark(t *testing.T) {
	e := mustEngine(t)
	r := e.Romanize([]rune("✨ユーロマン✨"), "jpn", ShapeString)
	assert.Equal(t, "✨yuuroman✨", r.String)
}

func TestRomanizeAbandonsFractionMissingOperand(t *testing.T) {
	e := mustEngine(t)
	r := e.Romanize([]rune("百分之多少"), "", ShapeString)
	assert.Equal(t, "baifenzhiduoshao", r.String)
}

func TestRomanizeComposesChineseMagnitudeNumber(t *testing.T) {
	e := mustEngine(t)
	r := e.Romanize([]rune("二千五百"), "zho", ShapeString)
	assert.Equal(t, "2500", r.String)
}

func TestRomanizeStripsDiacriticWithNoExplicitRule(t *testing.T) {
	e := mustEngine(t)
	r := e.Romanize([]rune("café"), "", ShapeString)
	assert.Equal(t, "cafe", r.String)
}

func TestRomanizeEmptyInputYieldsEmptyResult(t *testing.T) {
	e := mustEngine(t)
	r := e.Romanize(nil, "", ShapeString)
	assert.Equal(t, "", r.String)
}

func TestRomanizeIgnorableOnlyInputYieldsEmptyString(t *testing.T) {
	e := mustEngine(t)
	r := e.Romanize([]rune{0x200B, 0x200C}, "", ShapeString)
	assert.Equal(t, "", r.String)
}

func TestRomanizeUnknownLanguageHintTreatedAsAbsent(t *testing.T) {
	e := mustEngine(t)
	withBogus := e.Romanize([]rune("世界"), "not-a-real-tag-xyz", ShapeString)
	withNone := e.Romanize([]rune("世界"), "", ShapeString)
	assert.Equal(t, withNone.String, withBogus.String)
}

func TestRomanizeShapeEdgesCoversEntireLineContiguously(t *testing.T) {
	e := mustEngine(t)
	r := e.Romanize([]rune("hallo"), "", ShapeEdges)
	require.NotEmpty(t, r.Edges)
	assert.Equal(t, 0, r.Edges[0].Start)
	for i := 1; i < len(r.Edges); i++ {
		assert.Equal(t, r.Edges[i-1].End, r.Edges[i].Start, "edges must chain contiguously")
	}
	assert.Equal(t, 5, r.Edges[len(r.Edges)-1].End)
}

func TestRomanizeShapeLatticeOrdersByStartEndDescendingScore(t *testing.T) {
	e := mustEngine(t)
	r := e.Romanize([]rune("世界"), "", ShapeLattice)
	require.NotEmpty(t, r.Lattice)
	for i := 1; i < len(r.Lattice); i++ {
		a, b := r.Lattice[i-1], r.Lattice[i]
		if a.Start != b.Start {
			assert.Less(t, a.Start, b.Start)
			continue
		}
		if a.End != b.End {
			assert.Less(t, a.End, b.End)
			continue
		}
		assert.GreaterOrEqual(t, a.Score, b.Score)
	}
}

func TestRomanizeShapeAlternativesReportsOtherEdgesAtBestPathSpans(t *testing.T) {
	// The toned alternative scores -10 against the 100 of the default
	// reading, so the margin must be widened past 110 to report it.
	e, err := New(WithAlternativeMargin(200))
	require.NoError(t, err)
	r := e.Romanize([]rune("世"), "", ShapeAlternatives)
	require.Len(t, r.Alternatives, 1)
	assert.Equal(t, "shi", r.Alternatives[0].Best.Text)
	require.Len(t, r.Alternatives[0].Other, 1)
	assert.Equal(t, "han-toned", r.Alternatives[0].Other[0].Type)
}

func TestRomanizeIsPureAndStable(t *testing.T) {
	e := mustEngine(t)
	line := []rune("こんにちは、世界！café 二千五百")
	first := e.Romanize(line, "jpn", ShapeString)
	second := e.Romanize(line, "jpn", ShapeString)
	assert.Equal(t, first.String, second.String)
}

func totalScore(edges []EdgeView) int {
	sum := 0
	for _, e := range edges {
		sum += e.Score
	}
	return sum
}

// TestRomanizeLanguageHintMonotonicity backs spec.md §8's "language-hint
// monotonicity" property: supplying the matching hint for a labeled
// example never scores the selected path lower than supplying no hint at
// all. "щ" only has a romanization rule restricted to the "rus" hint, so
// the two paths are genuinely different (not just equal by coincidence):
// with the hint, the Russian-specific rule fires and outscores the
// identity fallback that runs without it.
func TestRomanizeLanguageHintMonotonicity(t *testing.T) {
	e := mustEngine(t)
	withHint := e.Romanize([]rune("щ"), "rus", ShapeEdges)
	withoutHint := e.Romanize([]rune("щ"), "", ShapeEdges)
	assert.Equal(t, "shch", withHint.String)
	assert.NotEqual(t, "shch", withoutHint.String)
	assert.GreaterOrEqual(t, totalScore(withHint.Edges), totalScore(withoutHint.Edges))
}

func TestRomanizeOutputStaysWithinRomanizedAlphabetForPlainLatinInput(t *testing.T) {
	e := mustEngine(t)
	r := e.Romanize([]rune("hello, world!"), "", ShapeString)
	for _, c := range r.String {
		assert.True(t, unicode.IsPrint(c))
	}
}

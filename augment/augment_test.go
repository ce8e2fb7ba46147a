package augment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fulm-o/uroman/lattice"
	"github.com/fulm-o/uroman/unidata"
)

func bestText(edges []lattice.Edge) string {
	best := edges[0]
	for _, e := range edges[1:] {
		if e.Score > best.Score {
			best = e
		}
	}
	return best.Text
}

func TestHangulDecomposesSyllable(t *testing.T) {
	tbl := unidata.NewTable()
	l := lattice.New([]rune("한"))
	Hangul(l, tbl)
	require.NotEmpty(t, l.EdgesFrom(0))
	assert.Equal(t, "han", bestText(l.EdgesFrom(0)))
}

func TestHangulSkipsNonSyllables(t *testing.T) {
	tbl := unidata.NewTable()
	l := lattice.New([]rune("a"))
	Hangul(l, tbl)
	assert.Empty(t, l.EdgesFrom(0))
}

func TestIndicBareConsonantCarriesInherentVowel(t *testing.T) {
	tbl := unidata.NewTable()
	l := lattice.New([]rune("क"))
	Indic(l, tbl)
	require.NotEmpty(t, l.EdgesFrom(0))
	assert.Equal(t, "ka", bestText(l.EdgesFrom(0)))
}

func TestIndicViramaSuppressesVowel(t *testing.T) {
	tbl := unidata.NewTable()
	l := lattice.New([]rune("क्"))
	Indic(l, tbl)
	edges := l.EdgesFrom(0)
	require.NotEmpty(t, edges)
	assert.Equal(t, "k", bestText(edges))
	assert.Equal(t, 2, edgeEnd(edges, "k"))
}

func TestIndicVowelSignReplacesInherentVowel(t *testing.T) {
	tbl := unidata.NewTable()
	l := lattice.New([]rune("कि"))
	Indic(l, tbl)
	edges := l.EdgesFrom(0)
	require.NotEmpty(t, edges)
	assert.Equal(t, "ki", bestText(edges))
}

func TestNumeralComposesChineseMagnitudeNumber(t *testing.T) {
	tbl := unidata.NewTable()
	l := lattice.New([]rune("二千五百"))
	Numeral(l, tbl, wordBoundaries(l.Input()))
	got := l.EdgesBetween(0, 4)
	require.Len(t, got, 1)
	assert.Equal(t, "2500", got[0].Text)
}

func TestNumeralComposesFraction(t *testing.T) {
	tbl := unidata.NewTable()
	l := lattice.New([]rune("四分之三"))
	Numeral(l, tbl, wordBoundaries(l.Input()))
	got := l.EdgesBetween(0, 4)
	require.Len(t, got, 1)
	assert.Equal(t, "3/4", got[0].Text)
}

func TestNumeralAbandonsFractionMissingOperand(t *testing.T) {
	tbl := unidata.NewTable()
	l := lattice.New([]rune("分之三"))
	Numeral(l, tbl, wordBoundaries(l.Input()))
	assert.Empty(t, l.EdgesBetween(0, 3))
}

func TestNumeralComposesPositionalDigits(t *testing.T) {
	tbl := unidata.NewTable()
	l := lattice.New([]rune("२५"))
	Numeral(l, tbl, wordBoundaries(l.Input()))
	got := l.EdgesBetween(0, 2)
	require.Len(t, got, 1)
	assert.Equal(t, "25", got[0].Text)
}

func TestPunctuationStripsDiacritic(t *testing.T) {
	tbl := unidata.NewTable()
	l := lattice.New([]rune("é"))
	Punctuation(l, tbl)
	edges := l.EdgesFrom(0)
	require.NotEmpty(t, edges)
	assert.Equal(t, "e", bestText(edges))
}

func TestPunctuationEmptiesIgnorableScalar(t *testing.T) {
	tbl := unidata.NewTable()
	l := lattice.New([]rune{0x200B})
	Punctuation(l, tbl)
	edges := l.EdgesFrom(0)
	require.NotEmpty(t, edges)
	assert.Equal(t, "", bestText(edges))
}

func TestHanStripsToneWithoutMandarinHint(t *testing.T) {
	tbl := unidata.NewTable()
	l := lattice.New([]rune("你"))
	Han(l, tbl, "")
	edges := l.EdgesFrom(0)
	require.Len(t, edges, 1)
	assert.Equal(t, "ni", edges[0].Text)
	assert.Negative(t, edges[0].Score)
}

func TestHanRendersPinyinNumericToneWithMandarinHint(t *testing.T) {
	tbl := unidata.NewTable()
	l := lattice.New([]rune("你"))
	Han(l, tbl, "zho")
	edges := l.EdgesFrom(0)
	require.Len(t, edges, 1)
	assert.Equal(t, "ni3", edges[0].Text)
	assert.Negative(t, edges[0].Score)
}

func edgeEnd(edges []lattice.Edge, text string) int {
	for _, e := range edges {
		if e.Text == text {
			return e.End
		}
	}
	return -1
}

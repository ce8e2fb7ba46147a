package unidata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCuratedDiacritic(t *testing.T) {
	tbl := NewTable()
	d := tbl.Lookup('é')
	require.Equal(t, Latin, d.Script)
	require.Equal(t, Letter, d.Category)
	assert.Equal(t, 'e', d.Base)
	require.Len(t, d.Modifiers, 1)
	assert.Equal(t, Modifier("acute"), d.Modifiers[0])
}

func TestLookupASCIIFallback(t *testing.T) {
	tbl := NewTable()
	d := tbl.Lookup('k')
	assert.Equal(t, Latin, d.Script)
	assert.True(t, d.IsBase())
	assert.Equal(t, "k", d.DefaultLatin)
}

func TestLookupUncuratedDiacriticUsesNFDFallback(t *testing.T) {
	tbl := NewTable()
	d := tbl.Lookup('ő') // LATIN SMALL LETTER O WITH DOUBLE ACUTE, not curated
	assert.Equal(t, Latin, d.Script)
	assert.Equal(t, 'o', d.Base)
}

func TestDevanagariDigitsAreNumeric(t *testing.T) {
	tbl := NewTable()
	d := tbl.Lookup('३') // DEVANAGARI DIGIT THREE
	require.NotNil(t, d.Numeric)
	assert.Equal(t, int64(3), d.Numeric.Num().Int64())
}

func TestIgnorableFormatScalar(t *testing.T) {
	tbl := NewTable()
	d := tbl.Lookup('‍') // ZERO WIDTH JOINER
	assert.True(t, d.Ignorable)
	assert.Equal(t, Format, d.Category)
}

func TestLookupIsStableAcrossCalls(t *testing.T) {
	tbl := NewTable()
	first := tbl.Lookup('世')
	second := tbl.Lookup('世')
	assert.Equal(t, first, second)
}

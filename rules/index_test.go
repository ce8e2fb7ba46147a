package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexLongestMatchFirst(t *testing.T) {
	rs := []Rule{
		{Pattern: []rune("世"), Targets: []Target{{Text: "shi", Score: 100}}, Type: TypeDefault, Line: 1},
		{Pattern: []rune("世界"), Targets: []Target{{Text: "shijie", Score: 120}}, Type: TypePinyinException, Line: 2},
	}
	idx := NewIndex(rs)
	input := []rune("世界和平")
	cands := idx.CandidatesAt(input, 0)
	require.Len(t, cands, 2)
	assert.Equal(t, 2, len(cands[0].Pattern), "longest pattern must come first")
	assert.Equal(t, "shijie", cands[0].Targets[0].Text)
	assert.Equal(t, "shi", cands[1].Targets[0].Text)
}

func TestIndexNoMatchReturnsEmpty(t *testing.T) {
	idx := NewIndex(nil)
	assert.Nil(t, idx.CandidatesAt([]rune("abc"), 0))
}

func TestIndexRespectsRemainingInputBound(t *testing.T) {
	rs := []Rule{
		{Pattern: []rune("abcdef"), Targets: []Target{{Text: "x", Score: 1}}, Line: 1},
	}
	idx := NewIndex(rs)
	// only 3 runes remain; the 6-rune pattern cannot match and must not
	// cause an out-of-range slice access.
	cands := idx.CandidatesAt([]rune("abc"), 0)
	assert.Empty(t, cands)
}

func TestIndexMergesSamePatternPreservingFileOrder(t *testing.T) {
	rs := []Rule{
		{Pattern: []rune("a"), Targets: []Target{{Text: "second", Score: 1}}, Line: 5},
		{Pattern: []rune("a"), Targets: []Target{{Text: "first", Score: 1}}, Line: 2},
	}
	idx := NewIndex(rs)
	cands := idx.CandidatesAt([]rune("a"), 0)
	require.Len(t, cands, 2)
	assert.Equal(t, "first", cands[0].Targets[0].Text)
	assert.Equal(t, "second", cands[1].Targets[0].Text)
}

package lattice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEdgeDeduplicates(t *testing.T) {
	l := New([]rune("ab"))
	first := l.AddEdge(Edge{Start: 0, End: 1, Text: "a", Type: TypeIdentity})
	second := l.AddEdge(Edge{Start: 0, End: 1, Text: "a", Type: TypeIdentity})
	assert.True(t, first)
	assert.False(t, second)
	require.Len(t, l.EdgesFrom(0), 1)
}

func TestAddEdgeAllowsDistinctTypeSameSpan(t *testing.T) {
	l := New([]rune("ab"))
	l.AddEdge(Edge{Start: 0, End: 1, Text: "a", Type: TypeIdentity})
	l.AddEdge(Edge{Start: 0, End: 1, Text: "a", Type: "rule"})
	assert.Len(t, l.EdgesFrom(0), 2)
}

func TestAddEdgeRejectsOutOfRange(t *testing.T) {
	l := New([]rune("a"))
	ok := l.AddEdge(Edge{Start: 0, End: 5, Text: "x"})
	assert.False(t, ok)
	ok = l.AddEdge(Edge{Start: 1, End: 1, Text: "x"})
	assert.False(t, ok)
}

func TestEdgesBetween(t *testing.T) {
	l := New([]rune("ab"))
	l.AddEdge(Edge{Start: 0, End: 2, Text: "ab", Type: "rule", Score: 10})
	l.AddEdge(Edge{Start: 0, End: 1, Text: "a", Type: TypeIdentity})
	got := l.EdgesBetween(0, 2)
	require.Len(t, got, 1)
	assert.Equal(t, "ab", got[0].Text)
}

func TestReachableDetectsGap(t *testing.T) {
	l := New([]rune("abc"))
	l.AddEdge(Edge{Start: 0, End: 1, Text: "a"})
	l.AddEdge(Edge{Start: 2, End: 3, Text: "c"})
	assert.False(t, l.Reachable())
	l.AddEdge(Edge{Start: 1, End: 2, Text: "b"})
	assert.True(t, l.Reachable())
}

func TestAllEdgesOrderedByStartEndDescendingScore(t *testing.T) {
	l := New([]rune("ab"))
	l.AddEdge(Edge{Start: 0, End: 1, Text: "lo", Type: "rule", Score: 10})
	l.AddEdge(Edge{Start: 0, End: 1, Text: "hi", Type: "rule", Score: 90})
	l.AddEdge(Edge{Start: 1, End: 2, Text: "b", Type: TypeIdentity, Score: 1})
	all := l.AllEdges()
	require.Len(t, all, 3)
	assert.Equal(t, "hi", all[0].Text)
	assert.Equal(t, "lo", all[1].Text)
	assert.Equal(t, "b", all[2].Text)
}

func TestInputCordRendersFullLine(t *testing.T) {
	l := New([]rune("hallo"))
	assert.Equal(t, uint64(5), l.InputCord().Len())
}

func TestNewEmptyInput(t *testing.T) {
	l := New(nil)
	assert.Equal(t, 0, l.N())
	assert.True(t, l.Reachable())
}

func TestIsGraphemeBoundaryEveryPositionForPlainLatin(t *testing.T) {
	l := New([]rune("abc"))
	for pos := 0; pos <= l.N(); pos++ {
		assert.True(t, l.IsGraphemeBoundary(pos), "position %d", pos)
	}
}

func TestIsGraphemeBoundaryMergesBaseAndCombiningMark(t *testing.T) {
	l := New([]rune{'e', 0x0301, 'x'}) // "e" + combining acute, then "x"
	assert.True(t, l.IsGraphemeBoundary(0))
	assert.False(t, l.IsGraphemeBoundary(1), "the combining mark must not split its base's cluster")
	assert.True(t, l.IsGraphemeBoundary(2))
	assert.True(t, l.IsGraphemeBoundary(3))
}

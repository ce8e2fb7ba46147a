package bestpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fulm-o/uroman/lattice"
)

func TestSelectPrefersHigherTotalScore(t *testing.T) {
	l := lattice.New([]rune("ab"))
	l.AddEdge(lattice.Edge{Start: 0, End: 2, Text: "lowpath", Type: "rule", Score: 10})
	l.AddEdge(lattice.Edge{Start: 0, End: 1, Text: "a", Type: "rule", Score: 50})
	l.AddEdge(lattice.Edge{Start: 1, End: 2, Text: "b", Type: "rule", Score: 50})
	p := Select(l)
	assert.Equal(t, "ab", p.Text)
	assert.Equal(t, 100, totalScore(p))
}

func TestSelectPrefersFewerEdgesOnTie(t *testing.T) {
	l := lattice.New([]rune("ab"))
	l.AddEdge(lattice.Edge{Start: 0, End: 2, Text: "xy", Type: "rule", Score: 100})
	l.AddEdge(lattice.Edge{Start: 0, End: 1, Text: "x", Type: "rule", Score: 50})
	l.AddEdge(lattice.Edge{Start: 1, End: 2, Text: "y", Type: "rule", Score: 50})
	p := Select(l)
	require.Len(t, p.Segments, 1)
	assert.Equal(t, "xy", p.Text)
}

func TestSelectIsReachableEvenWithOnlyIdentityEdges(t *testing.T) {
	l := lattice.New([]rune("hi"))
	l.AddEdge(lattice.Edge{Start: 0, End: 1, Text: "h", Type: lattice.TypeIdentity})
	l.AddEdge(lattice.Edge{Start: 1, End: 2, Text: "i", Type: lattice.TypeIdentity})
	p := Select(l)
	assert.Equal(t, "hi", p.Text)
}

func TestSelectEmptyInputYieldsEmptyPath(t *testing.T) {
	l := lattice.New(nil)
	p := Select(l)
	assert.Equal(t, "", p.Text)
	assert.Empty(t, p.Segments)
}

func totalScore(p Path) int {
	sum := 0
	for _, s := range p.Segments {
		sum += s.Score
	}
	return sum
}

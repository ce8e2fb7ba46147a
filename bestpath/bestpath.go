package bestpath

import (
	"github.com/fulm-o/uroman/lattice"
)

// Segment is one edge of the selected path, in left-to-right order.
type Segment struct {
	Start, End int
	Text       string
	Type       lattice.EdgeType
	Score      int
}

// Path is the result of Select: the chosen edges and their concatenated
// text.
type Path struct {
	Segments []Segment
	Text     string
}

// node carries the best-path-to-here bookkeeping for one lattice
// position, mirroring the teacher's feasibleBreakpoint/bookkeeping pair
// but collapsed to a single best survivor per position rather than one
// per line-count, since a romanization path has no analogous "line
// count" dimension to fan out over.
type node struct {
	reached   bool
	total     int
	numEdges  int
	text      string // cumulative romanization from position 0 to here
	sumStarts int     // sum of every edge's Start offset on the path to here
	pred      int
	fromEdge  int
}

// Select performs one forward sweep over l's positions (spec.md §4.6),
// computing for every position the best-scoring path from 0 to it, and
// returns the best path from 0 to N. Tie-breaks, in order: higher total
// score; then fewer edges; then lexicographically earlier concatenated
// text; then a lower sum of edge start offsets (favors paths built from
// edges anchored earlier in the line).
func Select(l *lattice.Lattice) Path {
	n := l.N()
	nodes := make([]node, n+1)
	nodes[0] = node{reached: true, pred: -1, fromEdge: -1}

	for i := 0; i <= n; i++ {
		if !nodes[i].reached {
			continue
		}
		for ei, e := range l.EdgesFrom(i) {
			cand := node{
				reached:   true,
				total:     nodes[i].total + e.Score,
				numEdges:  nodes[i].numEdges + 1,
				text:      nodes[i].text + e.Text,
				sumStarts: nodes[i].sumStarts + e.Start,
				pred:      i,
				fromEdge:  ei,
			}
			if !nodes[e.End].reached || better(cand, nodes[e.End]) {
				nodes[e.End] = cand
			}
		}
	}

	if !nodes[n].reached {
		T().Errorf("no path reaches position %d; lattice connectivity invariant violated", n)
		return Path{}
	}
	path := walkBack(l, nodes, n)
	T().Debugf("selected path: %d edges, score %d, text %q", nodes[n].numEdges, nodes[n].total, path.Text)
	return path
}

// better reports whether cand should replace cur as the survivor at
// their shared end position, per Select's documented tie-break order.
func better(cand, cur node) bool {
	if cand.total != cur.total {
		return cand.total > cur.total
	}
	if cand.numEdges != cur.numEdges {
		return cand.numEdges < cur.numEdges
	}
	if cand.text != cur.text {
		return cand.text < cur.text
	}
	return cand.sumStarts < cur.sumStarts
}

func walkBack(l *lattice.Lattice, nodes []node, end int) Path {
	var segs []Segment
	for pos := end; nodes[pos].pred >= 0; {
		n := nodes[pos]
		e := l.EdgesFrom(n.pred)[n.fromEdge]
		segs = append(segs, Segment{Start: e.Start, End: e.End, Text: e.Text, Type: e.Type, Score: e.Score})
		pos = n.pred
	}
	for i, j := 0, len(segs)-1; i < j; i, j = i+1, j-1 {
		segs[i], segs[j] = segs[j], segs[i]
	}
	return Path{Segments: segs, Text: nodes[end].text}
}

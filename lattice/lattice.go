package lattice

import (
	"fmt"
	"sort"
	"strings"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/cords"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
)

// EdgeType tags the origin of an Edge: a rule-table type (mirrored from
// package rules), "identity" for the always-present fallback edge, or an
// augmenter name for edges a script pass synthesizes.
type EdgeType string

const (
	TypeIdentity EdgeType = "identity"
)

// Edge is one candidate romanization of input[Start:End] (spec.md §3).
type Edge struct {
	Start, End int
	Text       string
	Type       EdgeType
	Score      int
	Origin     string // "rule:<line>" for a rule-table match, augmenter name, or "identity"
}

// Lattice is the per-line DAG described in spec.md §3. Positions run 0..N
// inclusive; Edge{Start: i, End: j} with i<j is a forward edge.
type Lattice struct {
	input      []rune
	inputCord  cords.Cord // supplemental rope view of the line, see SPEC_FULL.md §3
	out        [][]Edge   // out[i] holds every edge starting at position i
	seen       *hashset.Set
	clusterEnd map[int]bool // positions ending an extended grapheme cluster, see graphemeBoundaries
}

// New creates an empty lattice over input. No edges exist yet; callers
// (the matcher, then the script augmenters) populate it.
func New(input []rune) *Lattice {
	l := &Lattice{
		input:      input,
		out:        make([][]Edge, len(input)+1),
		seen:       hashset.New(),
		clusterEnd: graphemeBoundaries(input),
	}
	b := cords.NewBuilder()
	if len(input) > 0 {
		b.Append(runeLeaf{content: string(input)})
	}
	l.inputCord = b.Cord()
	return l
}

// graphemeBoundaries reports, for a line of runes, which rune-index
// positions end an extended grapheme cluster (UAX #29 via
// github.com/npillmayer/uax/grapheme, the same breaker the teacher's glyph
// shapers use). Position 0 and len(input) always bound a cluster; a base
// scalar followed by combining marks yields one cluster spanning several
// positions, so not every position in between is a boundary.
func graphemeBoundaries(input []rune) map[int]bool {
	bounds := map[int]bool{0: true, len(input): true}
	if len(input) == 0 {
		return bounds
	}
	breaker := grapheme.NewBreaker(1)
	seg := segment.NewSegmenter(breaker)
	seg.Init(strings.NewReader(string(input)))
	pos := 0
	for seg.Next() {
		pos += len([]rune(string(seg.Bytes())))
		bounds[pos] = true
	}
	return bounds
}

// N is the number of scalars in the line; valid positions are 0..N.
func (l *Lattice) N() int {
	return len(l.input)
}

// Input returns the line's scalar sequence. Callers must not mutate it.
func (l *Lattice) Input() []rune {
	return l.input
}

// InputCord exposes the line as a rope, for collaborators that prefer
// cords.Cord's fragment-oriented API over a flat []rune.
func (l *Lattice) InputCord() cords.Cord {
	return l.inputCord
}

// IsGraphemeBoundary reports whether pos begins or ends an extended
// grapheme cluster, rather than falling inside one (e.g. between a base
// letter and a combining mark it owns). Collaborators that render or
// diagnose a lattice edge-by-edge (the CLI's sample mode) use this to
// avoid presenting a split mid-cluster as if it were meaningful.
func (l *Lattice) IsGraphemeBoundary(pos int) bool {
	return l.clusterEnd[pos]
}

// AddEdge inserts e, unless a structurally identical edge - same (Start,
// End, Text, Type) - was already added, in which case it is a silent
// no-op (spec.md §4.4, "edges are deduplicated by (start, end, romanization
// string, type)"). Reports whether the edge was actually added. An edge
// whose Start or End falls inside a grapheme cluster rather than on its
// boundary is still accepted (the matcher and augmenters work scalar-by-
// scalar, not cluster-by-cluster) but is logged, since it is a candidate
// the line-splitting invariant of spec.md §3 did not anticipate.
func (l *Lattice) AddEdge(e Edge) bool {
	if e.Start < 0 || e.End > len(l.input) || e.Start >= e.End {
		T().Errorf("refusing out-of-range edge [%d,%d) on a %d-scalar line", e.Start, e.End, len(l.input))
		return false
	}
	if !l.clusterEnd[e.Start] || !l.clusterEnd[e.End] {
		T().Debugf("edge [%d,%d) %q splits a grapheme cluster", e.Start, e.End, e.Text)
	}
	key := dedupKey(e)
	if l.seen.Contains(key) {
		return false
	}
	l.seen.Add(key)
	l.out[e.Start] = append(l.out[e.Start], e)
	return true
}

func dedupKey(e Edge) string {
	return fmt.Sprintf("%d\x00%d\x00%s\x00%s", e.Start, e.End, e.Text, e.Type)
}

// EdgesFrom returns every edge starting at position i, in insertion order.
func (l *Lattice) EdgesFrom(i int) []Edge {
	if i < 0 || i >= len(l.out) {
		return nil
	}
	return l.out[i]
}

// EdgesBetween returns every edge sharing the given endpoints.
func (l *Lattice) EdgesBetween(start, end int) []Edge {
	var out []Edge
	for _, e := range l.EdgesFrom(start) {
		if e.End == end {
			out = append(out, e)
		}
	}
	return out
}

// Reachable reports whether every position 0..N-1 has at least one
// outgoing edge, the connectivity invariant of spec.md §3.
func (l *Lattice) Reachable() bool {
	for i := 0; i < l.N(); i++ {
		if len(l.out[i]) == 0 {
			return false
		}
	}
	return true
}

// AllEdges returns every edge in the lattice, ordered by (start, end,
// descending score) per spec.md §4.6.
func (l *Lattice) AllEdges() []Edge {
	var all []Edge
	for _, bucket := range l.out {
		all = append(all, bucket...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Start != all[j].Start {
			return all[i].Start < all[j].Start
		}
		if all[i].End != all[j].End {
			return all[i].End < all[j].End
		}
		return all[i].Score > all[j].Score
	})
	return all
}

// runeLeaf is a cords.Leaf wrapping a flat string; the minimal adapter
// needed to build a cords.Cord from the line's raw text (cf. the teacher's
// pLeaf in engine/khipu/styled/paragraph.go).
type runeLeaf struct {
	content string
}

func (l runeLeaf) Weight() uint64 { return uint64(len(l.content)) }
func (l runeLeaf) String() string { return l.content }
func (l runeLeaf) Split(i uint64) (cords.Leaf, cords.Leaf) {
	return runeLeaf{content: l.content[:i]}, runeLeaf{content: l.content[i:]}
}
func (l runeLeaf) Substring(i, j uint64) []byte {
	return []byte(l.content)[i:j]
}

var _ cords.Leaf = runeLeaf{}

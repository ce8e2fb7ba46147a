package engine

import "github.com/fulm-o/uroman/lattice"

// Shape selects which parts of Result a Romanize call populates
// (spec.md §4.6).
type Shape int

const (
	// ShapeString populates only Result.String.
	ShapeString Shape = iota
	// ShapeEdges additionally populates Result.Edges with the best path's
	// own edges.
	ShapeEdges
	// ShapeAlternatives additionally populates Result.Alternatives with,
	// for each best-path edge, the other edges sharing its endpoints
	// within the engine's alternative-score margin.
	ShapeAlternatives
	// ShapeLattice additionally populates Result.Lattice with every edge
	// the lattice holds after augmentation, ordered by (start, end,
	// descending score).
	ShapeLattice
)

// EdgeView is the externally visible form of a lattice.Edge: offsets
// into the input's scalar sequence, the romanization, its type tag, and
// its score (spec.md §6, "Lattice output shape").
type EdgeView struct {
	Start, End int
	Text       string
	Type       string
	Score      int
}

func viewOf(e lattice.Edge) EdgeView {
	return EdgeView{Start: e.Start, End: e.End, Text: e.Text, Type: string(e.Type), Score: e.Score}
}

// Alternatives groups the best-path edge at (Start, End) with the other
// edges sharing that same span.
type Alternatives struct {
	Best  EdgeView
	Other []EdgeView
}

// Result is the outcome of one Romanize call. String is always
// populated; the other fields are populated according to the requested
// Shape (spec.md §4.6).
type Result struct {
	String       string
	Edges        []EdgeView
	Alternatives []Alternatives
	Lattice      []EdgeView
}

package engine

import (
	"sort"

	"golang.org/x/text/language"

	"github.com/fulm-o/uroman/augment"
	"github.com/fulm-o/uroman/bestpath"
	"github.com/fulm-o/uroman/core"
	"github.com/fulm-o/uroman/lattice"
	"github.com/fulm-o/uroman/matcher"
	"github.com/fulm-o/uroman/rules"
	"github.com/fulm-o/uroman/unidata"
)

// Engine owns the immutable Unicode descriptor and rule tables and
// exposes the sole operation of spec.md §4.6, Romanize. An Engine is
// safe for concurrent use by any number of goroutines once constructed
// (spec.md §5): it holds no mutable state of its own.
type Engine struct {
	unidata *unidata.Table
	rules   *rules.Table
	cfg     config
}

// New builds an Engine. It is the only fallible operation in the public
// API: a malformed embedded rule file is a construction error, fatal to
// the caller (spec.md §7).
func New(opts ...Option) (*Engine, error) {
	rt, err := rules.Load()
	if err != nil {
		wrapped := core.WrapError(err, core.Code(err), "loading embedded rule table")
		T().Errorf(wrapped.Error())
		return nil, wrapped
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	T().Infof("engine constructed: %d rules loaded", len(rt.Rules))
	return &Engine{unidata: unidata.NewTable(), rules: rt, cfg: cfg}, nil
}

// Romanize converts one logical line of text, honoring an optional
// BCP-47/ISO-639-3 language hint, and returns the parts of Result the
// requested shape calls for (spec.md §4.6). An unparsable or unknown
// hint is treated as absent, never an error (spec.md §7).
func (e *Engine) Romanize(line []rune, langHint string, shape Shape) Result {
	l := lattice.New(line)
	hint := normalizeHint(langHint)
	matcher.Populate(l, e.rules.Index, e.unidata, hint)
	augment.Run(l, e.unidata, hint)

	path := bestpath.Select(l)
	result := Result{String: path.Text}

	switch shape {
	case ShapeEdges:
		result.Edges = edgeViewsFromSegments(path.Segments)
	case ShapeAlternatives:
		result.Edges = edgeViewsFromSegments(path.Segments)
		result.Alternatives = e.alternativesFor(l, path)
	case ShapeLattice:
		result.Lattice = viewsOrdered(l.AllEdges())
	}
	return result
}

// normalizeHint reduces langHint to the bare ISO-639-3-ish tag the rule
// table keys on, or "" when the hint cannot be parsed (spec.md §7:
// "unknown language hint ... treated as absent").
func normalizeHint(langHint string) string {
	if langHint == "" {
		return ""
	}
	tag, err := language.Parse(langHint)
	if err != nil {
		T().Debugf("language hint %q unparsable; treating as absent", langHint)
		return ""
	}
	base, conf := tag.Base()
	if conf == language.No {
		T().Debugf("language hint %q has no confident base language; treating as absent", langHint)
		return ""
	}
	return base.ISO3()
}

func edgeViewsFromSegments(segs []bestpath.Segment) []EdgeView {
	views := make([]EdgeView, len(segs))
	for i, s := range segs {
		views[i] = EdgeView{Start: s.Start, End: s.End, Text: s.Text, Type: string(s.Type), Score: s.Score}
	}
	return views
}

func viewsOrdered(edges []lattice.Edge) []EdgeView {
	views := make([]EdgeView, len(edges))
	for i, e := range edges {
		views[i] = viewOf(e)
	}
	return views
}

// alternativesFor reports, for each best-path edge, the other edges
// sharing its span within the engine's alternative-score margin
// (spec.md §4.5).
func (e *Engine) alternativesFor(l *lattice.Lattice, path bestpath.Path) []Alternatives {
	out := make([]Alternatives, 0, len(path.Segments))
	for _, seg := range path.Segments {
		best := EdgeView{Start: seg.Start, End: seg.End, Text: seg.Text, Type: string(seg.Type), Score: seg.Score}
		var others []EdgeView
		for _, cand := range l.EdgesBetween(seg.Start, seg.End) {
			if cand.Text == seg.Text && cand.Type == seg.Type {
				continue
			}
			if best.Score-cand.Score > e.cfg.alternativeMargin {
				continue
			}
			others = append(others, viewOf(cand))
		}
		sort.SliceStable(others, func(i, j int) bool { return others[i].Score > others[j].Score })
		out = append(out, Alternatives{Best: best, Other: others})
	}
	return out
}

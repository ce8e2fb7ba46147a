package rules

import (
	"sort"

	"github.com/derekparker/trie"
)

// Index is the rule index of spec.md §3: "a mapping from first code point
// of the pattern to the ordered list of rules sharing that first code
// point [...] ordered by descending pattern length". It is built as a
// derekparker/trie.Trie keyed by the UTF-8 bytes of each pattern's scalar
// sequence; CandidatesAt walks candidate substrings from longest to
// shortest and asks the trie for an exact key, which gives longest-match-
// first traversal without a secondary sort on every lookup bucket.
type Index struct {
	t          *trie.Trie
	maxPattern int // longest pattern length in scalars, bounds CandidatesAt's probe
}

// NewIndex builds an Index over rs. Rules sharing an identical pattern are
// merged into one trie entry and kept in file order.
func NewIndex(rs []Rule) *Index {
	byPattern := make(map[string][]Rule)
	idx := &Index{t: trie.New()}
	for _, r := range rs {
		key := string(r.Pattern)
		byPattern[key] = append(byPattern[key], r)
		if len(r.Pattern) > idx.maxPattern {
			idx.maxPattern = len(r.Pattern)
		}
	}
	for key, group := range byPattern {
		sort.SliceStable(group, func(i, j int) bool { return group[i].Line < group[j].Line })
		idx.t.Add(key, group)
	}
	return idx
}

// CandidatesAt returns the rules whose pattern matches input starting at
// position pos, ordered longest-pattern-first (spec.md §4.3: "candidates
// ordered by descending pattern length").
func (idx *Index) CandidatesAt(input []rune, pos int) []Rule {
	if idx.maxPattern == 0 {
		return nil
	}
	var out []Rule
	maxLen := idx.maxPattern
	if remaining := len(input) - pos; remaining < maxLen {
		maxLen = remaining
	}
	for l := maxLen; l >= 1; l-- {
		key := string(input[pos : pos+l])
		node, ok := idx.t.Find(key)
		if !ok {
			continue
		}
		meta, ok := node.Meta().([]Rule)
		if !ok {
			continue
		}
		out = append(out, meta...)
	}
	return out
}

// MaxPatternLen reports the length in scalars of the longest pattern in
// the index.
func (idx *Index) MaxPatternLen() int {
	return idx.maxPattern
}

package rules

import (
	"bytes"
	_ "embed"

	"github.com/fulm-o/uroman/core"
)

//go:embed data/rules.txt
var embeddedRuleFile []byte

// Table is the frozen rule table: the parsed rules plus their prefix
// index, built once at Load and shared read-only thereafter.
type Table struct {
	Rules []Rule
	Index *Index
}

// Load parses the embedded rule file and builds the rule index. It is the
// only fallible operation in the rules package; a malformed embedded file
// is a construction error (spec.md §7) and is fatal to engine.New.
func Load() (*Table, error) {
	rs, err := Parse(bytes.NewReader(embeddedRuleFile))
	if err != nil {
		T().Errorf("loading embedded rule file: %v", err)
		return nil, err
	}
	if len(rs) == 0 {
		err := core.Error(core.EDATA, "embedded rule file carries no rules")
		T().Errorf(err.Error())
		return nil, err
	}
	T().Infof("loaded %d rules from the embedded rule file", len(rs))
	return &Table{Rules: rs, Index: NewIndex(rs)}, nil
}

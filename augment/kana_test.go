package augment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fulm-o/uroman/lattice"
	"github.com/fulm-o/uroman/matcher"
	"github.com/fulm-o/uroman/rules"
	"github.com/fulm-o/uroman/unidata"
)

func TestKanaDoublesPrecedingVowel(t *testing.T) {
	tbl := unidata.NewTable()
	rt, err := rules.Load()
	require.NoError(t, err)
	l := lattice.New([]rune("ユー"))
	matcher.Populate(l, rt.Index, tbl, "jpn")
	Kana(l, tbl)
	got := l.EdgesFrom(1)
	require.NotEmpty(t, got)
	assert.Equal(t, "u", bestText(got))
}

func TestKanaSkipsWhenNoPrecedingEdgeResolved(t *testing.T) {
	tbl := unidata.NewTable()
	l := lattice.New([]rune("aー"))
	Kana(l, tbl)
	assert.Empty(t, l.EdgesFrom(1))
}

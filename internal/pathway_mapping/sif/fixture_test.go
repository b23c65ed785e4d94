package sif

import (
	"testing"

	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/biopax"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	t *testing.T
	m *biopax.Model
}

func newFixture(t *testing.T) *fixture {
	return &fixture{t: t, m: biopax.NewModel("http://example.org/")}
}

func (f *fixture) el(c biopax.Class, uri string) *biopax.Element {
	f.t.Helper()
	e, err := f.m.New(c, uri)
	require.NoError(f.t, err)
	return e
}

func (f *fixture) lit(e *biopax.Element, prop string, vals ...string) {
	f.t.Helper()
	require.NoError(f.t, e.AddLiteral(prop, vals...))
}

func (f *fixture) ref(e *biopax.Element, prop string, refs ...*biopax.Element) {
	f.t.Helper()
	require.NoError(f.t, e.AddRef(prop, refs...))
}

// entity creates a simple physical entity of class c bound to reference er.
func (f *fixture) entity(c biopax.Class, uri string, er *biopax.Element) *biopax.Element {
	f.t.Helper()
	e := f.el(c, uri)
	f.lit(e, "displayName", uri)
	if er != nil {
		f.ref(e, "entityReference", er)
	}
	return e
}

type stubRule struct {
	name string
	typ  RelationType
	rels []Relation
}

func (s stubRule) Name() string                  { return s.name }
func (s stubRule) Type() RelationType            { return s.typ }
func (s stubRule) Find(*biopax.Model) []Relation { return s.rels }

package mapper

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

func (f *fixture) named(c biopax.Class, uri, name string) *biopax.Element {
	f.t.Helper()
	e := f.el(c, uri)
	f.lit(e, "displayName", name)
	return e
}

func (f *fixture) xref(c biopax.Class, uri, db, id string) *biopax.Element {
	f.t.Helper()
	x := f.el(c, uri)
	if db != "" {
		f.lit(x, "db", db)
	}
	if id != "" {
		f.lit(x, "id", id)
	}
	return x
}

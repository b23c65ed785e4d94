package mapper

import (
	"context"
	"errors"
	"testing"

	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/biopax"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, m *biopax.Model) (*domain.Network, Stats, error) {
	t.Helper()
	net := domain.NewNetwork()
	stats, err := New(m).Build(context.Background(), net, "test")
	return net, stats, err
}

func nodeByURI(t *testing.T, net *domain.Network, uri string) *domain.Node {
	t.Helper()
	for _, n := range net.Nodes {
		if got, _ := n.Row.GetString(AttrURI); got == uri {
			return n
		}
	}
	t.Fatalf("no node for %s", uri)
	return nil
}

func edgeKinds(net *domain.Network) map[[2]string]string {
	out := map[[2]string]string{}
	for _, e := range net.Edges {
		src, _ := net.Node(e.Source)
		dst, _ := net.Node(e.Target)
		a, _ := src.Row.GetString(AttrURI)
		b, _ := dst.Row.GetString(AttrURI)
		kind, _ := e.Row.GetString(AttrInteraction)
		out[[2]string{a, b}] = kind
	}
	return out
}

func reactionModel(t *testing.T) *fixture {
	f := newFixture(t)
	pw := f.named(biopax.Pathway, "pw", "Glycolysis")
	glc := f.named(biopax.SmallMolecule, "glc", "glucose")
	g6p := f.named(biopax.SmallMolecule, "g6p", "G6P")
	rxn := f.named(biopax.BiochemicalReaction, "rxn", "hexokinase reaction")
	hk := f.named(biopax.Protein, "hk", "HK1")
	mg := f.named(biopax.SmallMolecule, "mg", "Mg2+")
	cat := f.named(biopax.Catalysis, "cat", "HK1 catalysis")
	f.ref(rxn, "left", glc)
	f.ref(rxn, "right", g6p)
	f.ref(cat, "controlled", rxn)
	f.ref(cat, "controller", hk)
	f.ref(cat, "cofactor", mg)
	f.lit(cat, "controlType", "ACTIVATION")
	f.ref(pw, "pathwayComponent", rxn, cat)
	return f
}

func TestBuild_NodesAndEdges(t *testing.T) {
	f := reactionModel(t)
	net, stats, err := build(t, f.m)
	require.NoError(t, err)

	assert.Equal(t, 6, stats.Nodes, "top level pathway gets no node")
	assert.Len(t, net.Nodes, 6)
	assert.Equal(t, 0, stats.Dropped)

	assert.Equal(t, map[[2]string]string{
		{"glc", "rxn"}: "left",
		{"rxn", "g6p"}: "right",
		{"cat", "rxn"}: "ACTIVATION",
		{"hk", "cat"}:  "controller",
		{"cat", "mg"}:  "cofactor",
	}, edgeKinds(net))

	for _, e := range net.Edges {
		assert.True(t, e.Directed)
		_, ok := net.Node(e.Source)
		assert.True(t, ok)
		_, ok = net.Node(e.Target)
		assert.True(t, ok)
	}

	name, _ := net.Edges[0].Row.GetString(AttrName)
	assert.Equal(t, "glucose (left) hexokinase reaction", name)

	nrow := net.Attributes()
	got, _ := nrow.GetString(AttrName)
	assert.Equal(t, "test", got)
	got, _ = nrow.GetString(AttrNetworkType)
	assert.Equal(t, NetworkDefault, got)
	got, _ = nrow.GetString(AttrQuickFind)
	assert.Equal(t, AttrName, got)
}

func TestBuild_RebuildIsIdempotent(t *testing.T) {
	f := reactionModel(t)
	first, _, err := build(t, f.m)
	require.NoError(t, err)
	second, _, err := build(t, f.m)
	require.NoError(t, err)

	assert.Equal(t, len(first.Nodes), len(second.Nodes))
	assert.Equal(t, len(first.Edges), len(second.Edges))

	seen := map[string]bool{}
	for _, n := range second.Nodes {
		uri, _ := n.Row.GetString(AttrURI)
		assert.False(t, seen[uri], "element %s mapped twice", uri)
		seen[uri] = true
	}
}

func TestBuild_ConversionDirection(t *testing.T) {
	for _, swap := range []bool{false, true} {
		f := newFixture(t)
		a := f.named(biopax.Protein, "a", "A")
		b := f.named(biopax.Protein, "b", "B")
		rxn := f.named(biopax.BiochemicalReaction, "rxn", "R")
		left, right := a, b
		if swap {
			left, right = b, a
		}
		f.ref(rxn, "left", left)
		f.ref(rxn, "right", right)

		net, _, err := build(t, f.m)
		require.NoError(t, err)
		assert.Equal(t, map[[2]string]string{
			{left.URI, "rxn"}:  "left",
			{"rxn", right.URI}: "right",
		}, edgeKinds(net))
	}
}

func TestBuild_ControlWithoutType(t *testing.T) {
	f := newFixture(t)
	rxn := f.named(biopax.BiochemicalReaction, "rxn", "R")
	ctl := f.named(biopax.Control, "ctl", "C")
	f.ref(ctl, "controlled", rxn)

	net, _, err := build(t, f.m)
	require.NoError(t, err)
	assert.Equal(t, map[[2]string]string{{"ctl", "rxn"}: "controlled"}, edgeKinds(net))
}

func TestBuild_ComplexMembersAndParticipants(t *testing.T) {
	f := newFixture(t)
	p1 := f.named(biopax.Protein, "p1", "P1")
	p2 := f.named(biopax.Protein, "p2", "P2")
	generic := f.named(biopax.Protein, "family", "family")
	cx := f.named(biopax.Complex, "cx", "complex")
	mi := f.named(biopax.MolecularInteraction, "mi", "binding")
	f.ref(cx, "component", p1, generic)
	f.ref(generic, "memberPhysicalEntity", p2)
	f.ref(mi, "participant", cx, p2)

	net, _, err := build(t, f.m)
	require.NoError(t, err)
	assert.Equal(t, map[[2]string]string{
		{"mi", "cx"}:     "participant",
		{"mi", "p2"}:     "participant",
		{"cx", "p1"}:     "contains",
		{"cx", "family"}: "contains",
		{"family", "p2"}: "member",
	}, edgeKinds(net))
}

func TestBuild_OrphanPathway(t *testing.T) {
	f := newFixture(t)
	pw := f.named(biopax.Pathway, "pw", "lonely")

	net, stats, err := build(t, f.m)
	assert.True(t, errors.Is(err, domain.ErrEmptyResult))
	assert.Equal(t, 0, stats.Nodes)
	assert.Empty(t, net.Nodes)
	assert.Empty(t, net.Edges)

	ctl := f.named(biopax.Control, "ctl", "regulates pathway")
	f.ref(ctl, "controlled", pw)

	net, stats, err = build(t, f.m)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Nodes)
	nodeByURI(t, net, "pw")
	assert.Len(t, net.Edges, 1)
}

func TestLinkNodes_DropsMissingEndpoints(t *testing.T) {
	f := newFixture(t)
	a := f.named(biopax.Protein, "a", "A")
	rxn := f.named(biopax.BiochemicalReaction, "rxn", "R")
	pw := f.named(biopax.Pathway, "pw", "P")

	net := domain.NewNetwork()
	mp := New(f.m)
	mp.g = net
	mp.index = NewIdentityIndex()
	mp.index.Bind(a.URI, net.AddNode())
	mp.index.Bind(rxn.URI, net.AddNode())

	mp.linkNodes(rxn, pw, "participant")
	mp.linkNodes(pw, a, "controller")
	mp.linkNodes(rxn, a, "left")

	assert.Equal(t, 2, mp.stats.Dropped)
	require.Len(t, net.Edges, 1)
	assert.Equal(t, "n0", net.Edges[0].Source)
	assert.Equal(t, "n1", net.Edges[0].Target)
}

func TestBuild_Cancelled(t *testing.T) {
	f := reactionModel(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(f.m).Build(ctx, domain.NewNetwork(), "x")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIdentityIndex_BindTwicePanics(t *testing.T) {
	idx := NewIdentityIndex()
	n := &domain.Node{ID: "n0"}
	idx.Bind("a", n)
	got, ok := idx.NodeFor("a")
	assert.True(t, ok)
	assert.Same(t, n, got)
	assert.Panics(t, func() { idx.Bind("a", n) })
}

package mapper

import (
	"context"
	"fmt"

	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/logger"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/biopax"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/domain"
)

const (
	AttrInteraction   = "interaction"
	AttrNetworkType   = "BIOPAX_NETWORK"
	AttrQuickFind     = "quickfind.default_index"
	NetworkDefault    = "DEFAULT"
	NetworkSIF        = "SIF"
	defaultControlled = "controlled"
)

// Stats summarises one build.
type Stats struct {
	Nodes   int `json:"nodes" yaml:"nodes"`
	Edges   int `json:"edges" yaml:"edges"`
	Dropped int `json:"dropped" yaml:"dropped"`
}

// Mapper builds the default attributed network of a model. A Mapper is
// used by one goroutine at a time.
type Mapper struct {
	model *biopax.Model
	attrs AttributeProjector
	xrefs CrossReferenceConsolidator

	g     domain.Graph
	index *IdentityIndex
	order []*biopax.Element
	stats Stats
}

func New(m *biopax.Model) *Mapper {
	return &Mapper{model: m}
}

// Build writes nodes, edges and attributes into g and names the network.
// ctx is checked between passes. A build without nodes returns
// domain.ErrEmptyResult along with its stats.
func (mp *Mapper) Build(ctx context.Context, g domain.Graph, name string) (Stats, error) {
	mp.g = g
	mp.index = NewIdentityIndex()
	mp.order = nil
	mp.stats = Stats{}

	passes := []struct {
		name string
		run  func()
	}{
		{"nodes", mp.createNodes},
		{"edges", mp.createEdges},
		{"attributes", mp.createAttributes},
	}
	for _, p := range passes {
		if err := ctx.Err(); err != nil {
			return mp.stats, fmt.Errorf("%s pass: %w", p.name, err)
		}
		p.run()
	}

	row := g.Attributes()
	row.SetString(AttrName, name)
	row.SetString(AttrNetworkType, NetworkDefault)
	row.SetString(AttrQuickFind, AttrName)

	logger.Debug("network built", "name", name, "nodes", mp.stats.Nodes, "edges", mp.stats.Edges, "dropped", mp.stats.Dropped)
	if mp.stats.Nodes == 0 {
		return mp.stats, domain.ErrEmptyResult
	}
	return mp.stats, nil
}

// createNodes adds a node per entity. Pathways nothing refers to as a
// participant or component only group others and get no node.
func (mp *Mapper) createNodes() {
	for _, e := range mp.model.ObjectsOf(biopax.Entity) {
		if e.Class.IsA(biopax.Pathway) &&
			len(mp.model.ParticipantOf(e)) == 0 && len(mp.model.PathwayComponentOf(e)) == 0 {
			continue
		}
		mp.index.Bind(e.URI, mp.g.AddNode())
		mp.order = append(mp.order, e)
		mp.stats.Nodes++
	}
}

func (mp *Mapper) createEdges() {
	for _, itr := range mp.model.ObjectsOf(biopax.Interaction) {
		switch {
		case itr.Class.IsConversion():
			for _, l := range itr.Objects("left") {
				mp.linkNodes(itr, l, "left")
			}
			for _, r := range itr.Objects("right") {
				mp.linkNodes(itr, r, "right")
			}
		case itr.Class.IsControl():
			kind := itr.Literal("controlType")
			if kind == "" {
				kind = defaultControlled
			}
			for _, p := range itr.Objects("controlled") {
				mp.linkNodes(p, itr, kind)
			}
			for _, c := range itr.Objects("controller") {
				mp.linkNodes(itr, c, "controller")
			}
			for _, c := range itr.Objects("cofactor") {
				mp.linkNodes(itr, c, "cofactor")
			}
		default:
			for _, p := range biopax.Participants(itr) {
				mp.linkNodes(itr, p, "participant")
			}
		}
	}

	for _, c := range mp.model.ObjectsOf(biopax.Complex) {
		for _, member := range c.Objects("component") {
			mp.addEdge(c, member, "contains")
		}
	}
	for _, pe := range mp.model.ObjectsOf(biopax.PhysicalEntity) {
		for _, member := range pe.Objects("memberPhysicalEntity") {
			mp.addEdge(pe, member, "member")
		}
	}
}

// linkNodes orients an edge between a and b: right, cofactor and
// participant edges point a to b, every other kind b to a.
func (mp *Mapper) linkNodes(a, b *biopax.Element, kind string) {
	switch kind {
	case "right", "cofactor", "participant":
		mp.addEdge(a, b, kind)
	default:
		mp.addEdge(b, a, kind)
	}
}

func (mp *Mapper) addEdge(src, dst *biopax.Element, kind string) {
	from, ok := mp.index.NodeFor(src.URI)
	if !ok {
		logger.Debug("no node for edge source", "uri", src.URI, "class", src.Class, "kind", kind)
		mp.stats.Dropped++
		return
	}
	to, ok := mp.index.NodeFor(dst.URI)
	if !ok {
		logger.Debug("no node for edge target", "uri", dst.URI, "class", dst.Class, "kind", kind)
		mp.stats.Dropped++
		return
	}
	edge := mp.g.AddEdge(from, to, true)
	edge.Row.SetString(AttrInteraction, kind)
	edge.Row.SetString(AttrName, fmt.Sprintf("%s (%s) %s", biopax.DisplayName(src), kind, biopax.DisplayName(dst)))
	mp.stats.Edges++
}

func (mp *Mapper) createAttributes() {
	for _, e := range mp.order {
		node, _ := mp.index.NodeFor(e.URI)
		mp.Annotate(e, node)
	}
}

// Annotate runs the attribute projection followed by xref consolidation.
func (mp *Mapper) Annotate(e *biopax.Element, node *domain.Node) {
	mp.attrs.Project(e, node)
	mp.xrefs.Consolidate(e, node)
}

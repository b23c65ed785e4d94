package export

import (
	"fmt"
	"strings"

	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/domain"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/style"
)

var dotShapes = map[string]string{
	"ellipse":   "ellipse",
	"diamond":   "diamond",
	"rectangle": "box",
	"triangle":  "triangle",
	"hexagon":   "hexagon",
}

var dotArrows = map[string]string{
	"delta":  "normal",
	"T":      "tee",
	"circle": "dot",
	"arrow":  "vee",
	"none":   "none",
}

// ToDOT renders n as a GraphViz digraph, taking shapes, colours and
// arrowheads from s.
func ToDOT(n *domain.Network, s *style.Style) string {
	var b strings.Builder
	b.WriteString("digraph G {\n  rankdir=LR;\n")
	if name := n.Name(); name != "" {
		fmt.Fprintf(&b, "  labelloc=\"t\"; label=%q; fontname=\"Helvetica\";\n", name)
	}
	fmt.Fprintf(&b, "  bgcolor=%q;\n", s.Background)

	for _, node := range n.Nodes {
		typ, _ := node.Row.GetString("BIOPAX_TYPE")
		label, _ := node.Row.GetString("name")
		if label == "" {
			label = node.ID
		}
		v := s.Node(typ)
		fmt.Fprintf(&b, "  %q [label=%q, shape=%s, style=filled, fillcolor=%q, color=%q, width=%.2f, height=%.2f];\n",
			node.ID, label, lookup(dotShapes, v.Shape, "ellipse"), v.Fill, v.Border, v.Width/72, v.Height/72)
	}

	for _, e := range n.Edges {
		kind, _ := e.Row.GetString("interaction")
		v := s.Edge(kind)
		fmt.Fprintf(&b, "  %q -> %q [label=%q, color=%q, penwidth=%.1f, arrowhead=%s];\n",
			e.Source, e.Target, kind, v.Color, v.Width, lookup(dotArrows, v.TargetArrow, "normal"))
	}

	b.WriteString("}\n")
	return b.String()
}

func lookup(m map[string]string, k, def string) string {
	if v, ok := m[k]; ok {
		return v
	}
	return def
}

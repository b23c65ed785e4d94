package style

import (
	"strings"

	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/biopax"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/sif"
)

const (
	BioPAX    = "BioPAX"
	BioPAXSIF = "BioPAX_SIF"

	entityWidth       = 20.0
	entityHeight      = 20.0
	interactionScale  = 0.67
	complexScale      = 0.67
	defaultFill       = "#FFFFFF"
	defaultBorder     = "#006666"
	sifFill           = "#FF9999"
	sifComplexFill    = "#99CCFF"
	sifEdgeWidth      = 4.0
	sifNodeOpacity    = 125
	phosphorylatedKey = "Protein-phosphorylated"
)

// controlTypes are the control type values an edge kind may carry.
var controlTypes = []string{
	"ACTIVATION",
	"ACTIVATION_ALLOSTERIC",
	"ACTIVATION_NONALLOSTERIC",
	"ACTIVATION_UNKMECH",
	"INHIBITION",
	"INHIBITION_ALLOSTERIC",
	"INHIBITION_COMPETITIVE",
	"INHIBITION_IRREVERSIBLE",
	"INHIBITION_NONCOMPETITIVE",
	"INHIBITION_OTHER",
	"INHIBITION_UNCOMPETITIVE",
	"INHIBITION_UNKMECH",
}

type NodeVisual struct {
	Shape   string  `json:"shape" yaml:"shape"`
	Width   float64 `json:"width" yaml:"width"`
	Height  float64 `json:"height" yaml:"height"`
	Fill    string  `json:"fill" yaml:"fill"`
	Border  string  `json:"border" yaml:"border"`
	Opacity int     `json:"opacity" yaml:"opacity"`
}

type EdgeVisual struct {
	Color       string  `json:"color" yaml:"color"`
	Width       float64 `json:"width" yaml:"width"`
	TargetArrow string  `json:"target_arrow" yaml:"target_arrow"`
}

// Style maps node BIOPAX_TYPE values and edge interaction values to
// visual properties. Keys without an entry use the defaults.
type Style struct {
	Name        string     `json:"name" yaml:"name"`
	NodeDefault NodeVisual `json:"node_default" yaml:"node_default"`
	EdgeDefault EdgeVisual `json:"edge_default" yaml:"edge_default"`
	Background  string     `json:"background" yaml:"background"`

	Nodes map[string]NodeVisual `json:"nodes" yaml:"nodes"`
	Edges map[string]EdgeVisual `json:"edges" yaml:"edges"`
}

func (s *Style) Node(biopaxType string) NodeVisual {
	if v, ok := s.Nodes[biopaxType]; ok {
		return v
	}
	return s.NodeDefault
}

func (s *Style) Edge(interaction string) EdgeVisual {
	if v, ok := s.Edges[interaction]; ok {
		return v
	}
	return s.EdgeDefault
}

func newBioPAX() *Style {
	s := &Style{
		Name: BioPAX,
		NodeDefault: NodeVisual{
			Shape:   "ellipse",
			Width:   entityWidth,
			Height:  entityHeight,
			Fill:    defaultFill,
			Border:  defaultBorder,
			Opacity: 255,
		},
		EdgeDefault: EdgeVisual{Color: "#000000", Width: 1, TargetArrow: "none"},
		Background:  "#FFFFFF",
		Nodes:       map[string]NodeVisual{},
		Edges:       map[string]EdgeVisual{},
	}

	for _, c := range biopax.PhysicalEntity.Subclasses() {
		s.Nodes[string(c)] = s.NodeDefault
	}
	complexNode := s.NodeDefault
	complexNode.Shape = "diamond"
	complexNode.Width = entityWidth * complexScale
	complexNode.Height = entityHeight * complexScale
	s.Nodes[string(biopax.Complex)] = complexNode
	s.Nodes[phosphorylatedKey] = s.NodeDefault

	for _, c := range biopax.Interaction.Subclasses() {
		v := s.NodeDefault
		v.Shape = "rectangle"
		if c.IsControl() {
			v.Shape = "triangle"
		}
		v.Width = entityWidth * interactionScale
		v.Height = entityHeight * interactionScale
		s.Nodes[string(c)] = v
	}

	arrow := func(kind, shape string) {
		e := s.EdgeDefault
		e.TargetArrow = shape
		s.Edges[kind] = e
	}
	arrow("right", "delta")
	arrow("controlled", "delta")
	arrow("cofactor", "delta")
	arrow("contains", "circle")
	for _, ct := range controlTypes {
		if strings.HasPrefix(ct, "I") {
			arrow(ct, "T")
		} else {
			arrow(ct, "delta")
		}
	}
	return s
}

var sifEdgeColors = map[sif.RelationType]string{
	sif.InComplexWith:               "#F000A0",
	sif.InteractsWith:               "#005500",
	sif.NeighborOf:                  "#00AA00",
	sif.ReactsWith:                  "#00FF00",
	sif.CatalysisPrecedes:           "#7000A0",
	sif.ControlsStateChangeOf:       "#0000C0",
	sif.ControlsPhosphorylationOf:   "#0000FF",
	sif.ControlsExpressionOf:        "#00A0A0",
	sif.ControlsProductionOf:        "#00CCF0",
	sif.ControlsTransportOf:         "#700000",
	sif.ControlsTransportOfChemical: "#A00000",
	sif.ConsumptionControlledBy:     "#FF3300",
	sif.UsedToProduce:               "#F75500",
	sif.ChemicalAffects:             "#F09000",
}

func newBioPAXSIF() *Style {
	s := &Style{
		Name: BioPAXSIF,
		NodeDefault: NodeVisual{
			Shape:   "ellipse",
			Width:   entityWidth,
			Height:  entityHeight,
			Fill:    sifFill,
			Border:  defaultBorder,
			Opacity: sifNodeOpacity,
		},
		EdgeDefault: EdgeVisual{Color: "#000000", Width: sifEdgeWidth, TargetArrow: "none"},
		Background:  "#FFFFFF",
		Nodes:       map[string]NodeVisual{},
		Edges:       map[string]EdgeVisual{},
	}

	complexNode := s.NodeDefault
	complexNode.Shape = "hexagon"
	complexNode.Fill = sifComplexFill
	s.Nodes[string(biopax.Complex)] = complexNode

	for t, color := range sifEdgeColors {
		e := EdgeVisual{Color: color, Width: sifEdgeWidth, TargetArrow: "none"}
		if t.Directed() {
			e.TargetArrow = "arrow"
		}
		s.Edges[string(t)] = e
	}
	return s
}

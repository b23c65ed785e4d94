package sif

import "github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/biopax"

type RelationType string

const (
	InComplexWith               RelationType = "in-complex-with"
	InteractsWith               RelationType = "interacts-with"
	NeighborOf                  RelationType = "neighbor-of"
	ReactsWith                  RelationType = "reacts-with"
	UsedToProduce               RelationType = "used-to-produce"
	ControlsStateChangeOf       RelationType = "controls-state-change-of"
	ControlsTransportOf         RelationType = "controls-transport-of"
	ControlsTransportOfChemical RelationType = "controls-transport-of-chemical"
	ControlsPhosphorylationOf   RelationType = "controls-phosphorylation-of"
	ControlsProductionOf        RelationType = "controls-production-of"
	ConsumptionControlledBy     RelationType = "consumption-controled-by"
	ControlsExpressionOf        RelationType = "controls-expression-of"
	CatalysisPrecedes           RelationType = "catalysis-precedes"
	ChemicalAffects             RelationType = "chemical-affects"
)

// Directed reports whether A and B of the relation type have distinct roles.
func (t RelationType) Directed() bool {
	switch t {
	case InComplexWith, InteractsWith, NeighborOf, ReactsWith:
		return false
	}
	return true
}

// Relation is one inferred binary relation. The string sets are sorted
// and free of duplicates once the relation leaves Project.
type Relation struct {
	A    string       `json:"a"`
	Type RelationType `json:"type"`
	B    string       `json:"b"`

	DataSources  []string `json:"data_sources,omitempty"`
	Publications []string `json:"publications,omitempty"`
	Pathways     []string `json:"pathways,omitempty"`
	Mediators    []string `json:"mediators,omitempty"`
}

func (r Relation) key() string {
	return r.A + "\t" + string(r.Type) + "\t" + r.B
}

// Rule finds one kind of binary relation in a normalized model. Found
// relations only need A, Type, B and the URIs of their mediating elements.
type Rule interface {
	Name() string
	Type() RelationType
	Find(m *biopax.Model) []Relation
}

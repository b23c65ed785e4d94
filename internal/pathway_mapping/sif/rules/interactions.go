package rules

import (
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/biopax"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/sif"
)

// interactsWith relates gene products taking part in the same molecular
// interaction.
type interactsWith struct{}

func (interactsWith) Name() string           { return string(sif.InteractsWith) }
func (interactsWith) Type() sif.RelationType { return sif.InteractsWith }

func (interactsWith) Find(m *biopax.Model) []sif.Relation {
	var out []sif.Relation
	for _, itr := range m.ObjectsOf(biopax.MolecularInteraction) {
		out = append(out, pairs(geneProducts(sif.ExpandAll(itr.Objects("participant"))), itr)...)
	}
	return out
}

// neighborOf relates gene products that participate in, or control, the
// same interaction.
type neighborOf struct{}

func (neighborOf) Name() string           { return string(sif.NeighborOf) }
func (neighborOf) Type() sif.RelationType { return sif.NeighborOf }

func (neighborOf) Find(m *biopax.Model) []sif.Relation {
	var out []sif.Relation
	for _, itr := range m.ObjectsOf(biopax.Interaction) {
		if itr.Class.IsControl() {
			continue
		}
		members := biopax.Participants(itr)
		mediators := []*biopax.Element{itr}
		for _, c := range m.ControlledOf(itr) {
			members = append(members, c.Objects("controller")...)
			mediators = append(mediators, c)
		}
		out = append(out, pairs(geneProducts(sif.ExpandAll(members)), mediators...)...)
	}
	return out
}

func init() {
	sif.Register(interactsWith{})
	sif.Register(neighborOf{})
}

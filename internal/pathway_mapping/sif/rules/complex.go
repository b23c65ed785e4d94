package rules

import (
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/biopax"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/sif"
)

// inComplexWith relates gene products that are members of the same complex.
type inComplexWith struct{}

func (inComplexWith) Name() string           { return string(sif.InComplexWith) }
func (inComplexWith) Type() sif.RelationType { return sif.InComplexWith }

func (inComplexWith) Find(m *biopax.Model) []sif.Relation {
	var out []sif.Relation
	for _, c := range m.ObjectsOf(biopax.Complex) {
		out = append(out, pairs(geneProducts(sif.Expand(c)), c)...)
	}
	return out
}

func init() { sif.Register(inComplexWith{}) }

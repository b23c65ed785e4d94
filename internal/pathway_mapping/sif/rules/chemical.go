package rules

import (
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/biopax"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/sif"
)

// reactsWith relates small molecules that are inputs of the same
// biochemical reaction.
type reactsWith struct{}

func (reactsWith) Name() string           { return string(sif.ReactsWith) }
func (reactsWith) Type() sif.RelationType { return sif.ReactsWith }

func (reactsWith) Find(m *biopax.Model) []sif.Relation {
	var out []sif.Relation
	for _, rxn := range m.ObjectsOf(biopax.BiochemicalReaction) {
		in, _ := sif.Sides(rxn)
		out = append(out, pairs(chemicals(sif.ExpandAll(in)), rxn)...)
	}
	return out
}

// usedToProduce points from a small molecule consumed by a biochemical
// reaction to one it produces. Reversible reactions count both ways.
type usedToProduce struct{}

func (usedToProduce) Name() string           { return string(sif.UsedToProduce) }
func (usedToProduce) Type() sif.RelationType { return sif.UsedToProduce }

func (usedToProduce) Find(m *biopax.Model) []sif.Relation {
	var out []sif.Relation
	for _, rxn := range m.ObjectsOf(biopax.BiochemicalReaction) {
		in, prod := sif.Sides(rxn)
		inputs, outputs := chemicals(sif.ExpandAll(in)), chemicals(sif.ExpandAll(prod))
		reversible := rxn.Literal("conversionDirection") == "REVERSIBLE"
		for _, a := range inputs {
			for _, b := range outputs {
				out = append(out, relation(a.ID, b.ID, rxn))
				if reversible {
					out = append(out, relation(b.ID, a.ID, rxn))
				}
			}
		}
	}
	return out
}

// chemicalAffects points from a small molecule controlling an interaction
// to the gene products the interaction changes, or to all of its gene
// product participants when it is not a conversion.
type chemicalAffects struct{}

func (chemicalAffects) Name() string           { return string(sif.ChemicalAffects) }
func (chemicalAffects) Type() sif.RelationType { return sif.ChemicalAffects }

func (chemicalAffects) Find(m *biopax.Model) []sif.Relation {
	var out []sif.Relation
	for _, c := range controls(m) {
		var targets []string
		if c.process.Class.IsConversion() {
			for _, ch := range changes(c.process) {
				if !ch.chemical && (ch.modified || ch.moved) {
					targets = append(targets, ch.id)
				}
			}
		} else {
			for _, p := range geneProducts(sif.ExpandAll(biopax.Participants(c.process))) {
				targets = append(targets, p.ID)
			}
		}
		for _, ctrl := range chemicals(c.controllers) {
			for _, t := range targets {
				out = append(out, relation(ctrl.ID, t, c.el, c.process))
			}
		}
	}
	return out
}

func init() {
	sif.Register(reactsWith{})
	sif.Register(usedToProduce{})
	sif.Register(chemicalAffects{})
}

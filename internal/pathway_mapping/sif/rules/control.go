package rules

import (
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/biopax"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/sif"
)

// conversionControl relates the gene products controlling a conversion to
// the participants whose change matches. reverse points the relation from
// the participant to the controller.
type conversionControl struct {
	typ     sif.RelationType
	match   func(change) bool
	reverse bool
}

func (r conversionControl) Name() string           { return string(r.typ) }
func (r conversionControl) Type() sif.RelationType { return r.typ }

func (r conversionControl) Find(m *biopax.Model) []sif.Relation {
	var out []sif.Relation
	for _, c := range controls(m) {
		if !c.process.Class.IsConversion() {
			continue
		}
		chs := changes(c.process)
		for _, ctrl := range geneProducts(c.controllers) {
			for _, ch := range chs {
				if !r.match(ch) {
					continue
				}
				if r.reverse {
					out = append(out, relation(ch.id, ctrl.ID, c.el, c.process))
				} else {
					out = append(out, relation(ctrl.ID, ch.id, c.el, c.process))
				}
			}
		}
	}
	return out
}

// controlsExpressionOf points from gene products controlling a template
// reaction to its gene product products.
type controlsExpressionOf struct{}

func (controlsExpressionOf) Name() string           { return string(sif.ControlsExpressionOf) }
func (controlsExpressionOf) Type() sif.RelationType { return sif.ControlsExpressionOf }

func (controlsExpressionOf) Find(m *biopax.Model) []sif.Relation {
	var out []sif.Relation
	for _, c := range controls(m) {
		if !c.process.Class.IsA(biopax.TemplateReaction) {
			continue
		}
		products := geneProducts(sif.ExpandAll(c.process.Objects("product")))
		for _, ctrl := range geneProducts(c.controllers) {
			for _, p := range products {
				out = append(out, relation(ctrl.ID, p.ID, c.el, c.process))
			}
		}
	}
	return out
}

// catalysisPrecedes relates the controllers of two conversions when an
// output of the first is an input of the second.
type catalysisPrecedes struct{}

func (catalysisPrecedes) Name() string           { return string(sif.CatalysisPrecedes) }
func (catalysisPrecedes) Type() sif.RelationType { return sif.CatalysisPrecedes }

func (catalysisPrecedes) Find(m *biopax.Model) []sif.Relation {
	var convs []control
	for _, c := range controls(m) {
		if c.process.Class.IsConversion() {
			convs = append(convs, c)
		}
	}

	var out []sif.Relation
	for _, first := range convs {
		_, prod := sif.Sides(first.process)
		produced := map[string]bool{}
		for _, p := range sif.ExpandAll(prod) {
			produced[p.ID] = true
		}
		for _, next := range convs {
			if next.process == first.process || !feeds(produced, next.process) {
				continue
			}
			for _, a := range geneProducts(first.controllers) {
				for _, b := range geneProducts(next.controllers) {
					out = append(out, relation(a.ID, b.ID, first.el, first.process, next.el, next.process))
				}
			}
		}
	}
	return out
}

func feeds(produced map[string]bool, conv *biopax.Element) bool {
	in, _ := sif.Sides(conv)
	for _, p := range sif.ExpandAll(in) {
		if produced[p.ID] {
			return true
		}
	}
	return false
}

func init() {
	sif.Register(conversionControl{typ: sif.ControlsStateChangeOf, match: func(c change) bool { return !c.chemical && c.modified }})
	sif.Register(conversionControl{typ: sif.ControlsTransportOf, match: func(c change) bool { return !c.chemical && c.moved }})
	sif.Register(conversionControl{typ: sif.ControlsTransportOfChemical, match: func(c change) bool { return c.chemical && c.moved }})
	sif.Register(conversionControl{typ: sif.ControlsPhosphorylationOf, match: func(c change) bool { return !c.chemical && c.phospho }})
	sif.Register(conversionControl{typ: sif.ControlsProductionOf, match: func(c change) bool { return c.chemical && c.produced }})
	sif.Register(conversionControl{typ: sif.ConsumptionControlledBy, match: func(c change) bool { return c.chemical && c.consumed }, reverse: true})
	sif.Register(controlsExpressionOf{})
	sif.Register(catalysisPrecedes{})
}

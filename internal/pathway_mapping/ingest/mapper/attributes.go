package mapper

import (
	"sort"
	"strings"

	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/biopax"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/domain"
)

const (
	AttrURI                   = "URI"
	AttrType                  = "BIOPAX_TYPE"
	AttrName                  = "name"
	AttrChemicalModifications = "CHEMICAL_MODIFICATIONS"

	phosphorylationSite   = "phosphorylation site"
	proteinPhosphorylated = "Protein-phosphorylated"
)

// AttributeProjector flattens an element's properties into a node row.
type AttributeProjector struct{}

// Project writes the identity attributes, the display label and every
// attribute reachable through single valued, non-entity properties.
func (AttributeProjector) Project(e *biopax.Element, node *domain.Node) {
	row := node.Row
	row.SetString(AttrURI, e.URI)
	row.SetString(AttrType, string(e.Class))

	name := biopax.DisplayName(e)
	if !e.Class.IsInteraction() {
		if mods := chemicalModifications(e); len(mods) > 0 {
			name += " -" + strings.Join(mods, ",")
			row.SetList(AttrChemicalModifications, mods)
			for _, m := range mods {
				if m == phosphorylationSite {
					row.SetString(AttrType, proteinPhosphorylated)
				}
			}
		}
		if e.Class.IsPhysicalEntity() {
			if cl := e.Object("cellularLocation"); cl != nil {
				if terms := strings.Join(cl.Literals("term"), ", "); terms != "" {
					name += "; " + terms
				}
			}
		}
	}
	row.SetString(AttrName, name)

	walk(e, row, nil, nil)
}

// walk visits e's properties in schema order. path holds the property
// chain leading to e and stack the elements on it; neither is mutated.
func walk(e *biopax.Element, row *domain.Row, path []string, stack []*biopax.Element) {
	stack = append(stack[:len(stack):len(stack)], e)
	for _, p := range biopax.Properties(e.Class) {
		if skipProperty(p) {
			continue
		}
		vals := e.Values(p.Name)
		if len(vals) == 0 {
			continue
		}
		next := append(path[:len(path):len(path)], p.Name)
		attr := strings.Join(next, "/")
		for _, v := range vals {
			if s := v.String(); s != "" {
				if p.Multiple {
					row.AppendUnique(attr, s)
				} else {
					row.SetString(attr, s)
				}
			}
			if p.IsObject() && !p.Multiple && !onStack(stack, v.Ref) {
				walk(v.Ref, row, next, stack)
			}
		}
	}
}

// skipProperty drops properties mapped to edges or handled by the label.
func skipProperty(p biopax.PropertySpec) bool {
	if p.IsObject() {
		return p.Range.IsA(biopax.Entity) || p.Range.IsA(biopax.Stoichiometry) || p.Name == "nextStep"
	}
	return p.Name == "name"
}

func onStack(stack []*biopax.Element, e *biopax.Element) bool {
	for _, x := range stack {
		if x == e {
			return true
		}
	}
	return false
}

// chemicalModifications lists modification type terms of e's features,
// prefixed with "!" for features e does not have, sorted.
func chemicalModifications(e *biopax.Element) []string {
	set := map[string]bool{}
	collect := func(prop, prefix string) {
		for _, f := range e.Objects(prop) {
			mt := f.Object("modificationType")
			if mt == nil {
				continue
			}
			if term := strings.Join(mt.Literals("term"), ", "); term != "" {
				set[prefix+term] = true
			}
		}
	}
	collect("feature", "")
	collect("notFeature", "!")

	out := make([]string, 0, len(set))
	for m := range set {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

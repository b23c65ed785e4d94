package rules

import (
	"sort"
	"strings"

	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/biopax"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/sif"
)

func relation(a, b string, mediators ...*biopax.Element) sif.Relation {
	r := sif.Relation{A: a, B: b}
	for _, m := range mediators {
		if m != nil {
			r.Mediators = append(r.Mediators, m.URI)
		}
	}
	return r
}

func geneProducts(ps []sif.Participant) []sif.Participant {
	var out []sif.Participant
	for _, p := range ps {
		if !p.Chemical {
			out = append(out, p)
		}
	}
	return out
}

func chemicals(ps []sif.Participant) []sif.Participant {
	var out []sif.Participant
	for _, p := range ps {
		if p.Chemical {
			out = append(out, p)
		}
	}
	return out
}

// pairs relates every two distinct participants once.
func pairs(ps []sif.Participant, mediators ...*biopax.Element) []sif.Relation {
	var out []sif.Relation
	for i := range ps {
		for j := i + 1; j < len(ps); j++ {
			if ps[i].ID != ps[j].ID {
				out = append(out, relation(ps[i].ID, ps[j].ID, mediators...))
			}
		}
	}
	return out
}

// control is a Control with an interaction as its controlled process.
type control struct {
	el          *biopax.Element
	process     *biopax.Element
	controllers []sif.Participant
}

func controls(m *biopax.Model) []control {
	var out []control
	for _, c := range m.ObjectsOf(biopax.Control) {
		p := c.Object("controlled")
		if p == nil || !p.Class.IsInteraction() || p.Class.IsControl() {
			continue
		}
		ctrl := sif.ExpandAll(c.Objects("controller"))
		if len(ctrl) == 0 {
			continue
		}
		out = append(out, control{el: c, process: p, controllers: ctrl})
	}
	return out
}

// change describes what a conversion does to one participant id.
type change struct {
	id       string
	chemical bool
	produced bool
	consumed bool
	moved    bool
	modified bool
	phospho  bool
}

// changes compares the input and output sides of conv by participant id,
// input side first.
func changes(conv *biopax.Element) []change {
	in, out := sif.Sides(conv)
	inputs, outputs := sif.ExpandAll(in), sif.ExpandAll(out)
	byID := map[string]sif.Participant{}
	for _, p := range outputs {
		byID[p.ID] = p
	}

	var res []change
	seen := map[string]bool{}
	for _, p := range inputs {
		seen[p.ID] = true
		o, ok := byID[p.ID]
		if !ok {
			res = append(res, change{id: p.ID, chemical: p.Chemical, consumed: true})
			continue
		}
		moved := location(p.Entity) != location(o.Entity)
		res = append(res, change{
			id:       p.ID,
			chemical: p.Chemical,
			moved:    moved,
			modified: modifications(p.Entity, false) != modifications(o.Entity, false) || (p.Entity != o.Entity && !moved),
			phospho:  modifications(p.Entity, true) != modifications(o.Entity, true),
		})
	}
	for _, p := range outputs {
		if !seen[p.ID] {
			res = append(res, change{id: p.ID, chemical: p.Chemical, produced: true})
		}
	}
	return res
}

func location(e *biopax.Element) string {
	cl := e.Object("cellularLocation")
	if cl == nil {
		return ""
	}
	terms := cl.Literals("term")
	if len(terms) == 0 {
		return cl.URI
	}
	sort.Strings(terms)
	return strings.Join(terms, ",")
}

func modifications(e *biopax.Element, phosphoOnly bool) string {
	var terms []string
	for _, f := range e.Objects("feature") {
		mt := f.Object("modificationType")
		if mt == nil {
			continue
		}
		for _, t := range mt.Literals("term") {
			if phosphoOnly && !strings.Contains(strings.ToLower(t), "phospho") {
				continue
			}
			terms = append(terms, t)
		}
	}
	sort.Strings(terms)
	return strings.Join(terms, ",")
}

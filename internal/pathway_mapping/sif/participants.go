package sif

import "github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/biopax"

// Participant is a physical entity as relations see it. ID is the entity
// reference URI for simple entities and the entity URI otherwise.
type Participant struct {
	ID       string
	Chemical bool
	Entity   *biopax.Element
}

// Expand resolves a physical entity to the participants it stands for.
// Complexes and generic entities are replaced by their members, generic
// entity references by their member references. Non physical entities
// yield nothing.
func Expand(e *biopax.Element) []Participant {
	var out []Participant
	expand(e, map[*biopax.Element]bool{}, &out)
	return out
}

// ExpandAll is Expand over es, keeping the first participant of each ID.
func ExpandAll(es []*biopax.Element) []Participant {
	var out []Participant
	seen := map[*biopax.Element]bool{}
	for _, e := range es {
		expand(e, seen, &out)
	}
	return out
}

func expand(e *biopax.Element, seen map[*biopax.Element]bool, out *[]Participant) {
	if e == nil || seen[e] {
		return
	}
	seen[e] = true

	add := func(id string, chemical bool) {
		for _, p := range *out {
			if p.ID == id {
				return
			}
		}
		*out = append(*out, Participant{ID: id, Chemical: chemical, Entity: e})
	}

	switch {
	case e.Class.IsComplex():
		for _, c := range e.Objects("component") {
			expand(c, seen, out)
		}
		for _, m := range e.Objects("memberPhysicalEntity") {
			expand(m, seen, out)
		}
	case e.Class.IsSimplePhysicalEntity():
		chemical := e.Class.IsA(biopax.SmallMolecule)
		er := e.Object("entityReference")
		if er == nil {
			if members := e.Objects("memberPhysicalEntity"); len(members) > 0 {
				for _, m := range members {
					expand(m, seen, out)
				}
				return
			}
			add(e.URI, chemical)
			return
		}
		for _, id := range referenceIDs(er, map[*biopax.Element]bool{}) {
			add(id, chemical)
		}
	case e.Class.IsPhysicalEntity() && e.Has("memberPhysicalEntity"):
		for _, m := range e.Objects("memberPhysicalEntity") {
			expand(m, seen, out)
		}
	case e.Class.IsPhysicalEntity(), e.Class.IsA(biopax.Gene):
		add(e.URI, false)
	}
}

func referenceIDs(er *biopax.Element, seen map[*biopax.Element]bool) []string {
	if seen[er] {
		return nil
	}
	seen[er] = true
	members := er.Objects("memberEntityReference")
	if len(members) == 0 {
		return []string{er.URI}
	}
	var out []string
	for _, m := range members {
		out = append(out, referenceIDs(m, seen)...)
	}
	return out
}

// Sides returns the input and output sides of a conversion. Conversions
// declared RIGHT_TO_LEFT are flipped; all others read left to right.
func Sides(conv *biopax.Element) (in, out []*biopax.Element) {
	in, out = conv.Objects("left"), conv.Objects("right")
	if conv.Literal("conversionDirection") == "RIGHT_TO_LEFT" {
		in, out = out, in
	}
	return in, out
}

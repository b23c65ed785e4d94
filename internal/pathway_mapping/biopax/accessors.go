package biopax

import (
	"html"
	"strconv"
	"strings"
)

// Participants returns every participant of an interaction under any role,
// explicit participants first.
func Participants(e *Element) []*Element {
	var out []*Element
	for _, p := range participantProps {
		for _, x := range e.Objects(p) {
			out = appendUnique(out, x)
		}
	}
	return out
}

// DisplayName is the unescaped display name, or the URI when there is none.
func DisplayName(e *Element) string {
	if n := strings.TrimSpace(e.Literal("displayName")); n != "" {
		return html.UnescapeString(n)
	}
	return e.URI
}

// Synonyms returns the name values of named elements.
func Synonyms(e *Element) []string {
	if !e.Class.IsNamed() {
		return nil
	}
	return e.Literals("name")
}

// EntityRef returns the entity reference of a simple physical entity.
func EntityRef(e *Element) *Element {
	if !e.Class.IsSimplePhysicalEntity() {
		return nil
	}
	return e.Object("entityReference")
}

// Xrefs returns e's xrefs followed by those of its entity reference. With
// members set, xrefs of directly linked member entity references are added
// too, one level deep.
func Xrefs(e *Element, members bool) []*Element {
	if !e.Class.IsXReferrable() {
		return nil
	}
	out := append([]*Element(nil), e.Objects("xref")...)
	er := e
	if e.Class.IsSimplePhysicalEntity() {
		er = EntityRef(e)
		if er != nil {
			out = append(out, er.Objects("xref")...)
		}
	}
	if er != nil && er.Class.IsEntityReference() && members {
		for _, m := range er.Objects("memberEntityReference") {
			out = append(out, m.Objects("xref")...)
		}
	}
	return out
}

// OrganismTaxonomyID reads the NCBI taxonomy id from the first xref of
// e's own organism. It returns -1 when that is not possible, including for
// classes without an organism property.
func OrganismTaxonomyID(e *Element) int {
	if _, ok := Lookup(e.Class, "organism"); !ok {
		return -1
	}
	org := e.Object("organism")
	if org == nil {
		return -1
	}
	xs := org.Objects("xref")
	if len(xs) == 0 {
		return -1
	}
	n, err := strconv.Atoi(strings.TrimSpace(xs[0].Literal("id")))
	if err != nil {
		return -1
	}
	return n
}

// IsGeneric reports whether a physical entity or entity reference stands
// for a family of members.
func IsGeneric(e *Element) bool {
	switch {
	case e.Class.IsPhysicalEntity():
		if e.Has("memberPhysicalEntity") {
			return true
		}
		if er := EntityRef(e); er != nil {
			return er.Has("memberEntityReference")
		}
	case e.Class.IsEntityReference():
		return e.Has("memberEntityReference")
	}
	return false
}

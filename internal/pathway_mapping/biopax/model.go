package biopax

import "fmt"

// participantProps make up the participant super-property.
var participantProps = []string{"participant", "left", "right", "controller", "controlled", "cofactor", "template", "product"}

// Model is a parsed pathway knowledge graph. Elements keep their insertion
// order, which for parsed models is document order.
type Model struct {
	XMLBase string
	Level   int

	elements []*Element
	byURI    map[string]*Element

	dirty   bool
	inverse map[string]map[*Element][]*Element
}

func NewModel(xmlBase string) *Model {
	return &Model{
		XMLBase: xmlBase,
		Level:   3,
		byURI:   map[string]*Element{},
		dirty:   true,
	}
}

// New creates and adds an element. Abstract or unknown classes and
// duplicate URIs are rejected.
func (m *Model) New(c Class, uri string) (*Element, error) {
	if _, ok := ParseClass(string(c)); !ok {
		return nil, fmt.Errorf("cannot instantiate %q", c)
	}
	if uri == "" {
		return nil, fmt.Errorf("empty uri for %s", c)
	}
	if _, dup := m.byURI[uri]; dup {
		return nil, fmt.Errorf("duplicate uri %q", uri)
	}
	e := newElement(c, uri)
	e.model = m
	m.elements = append(m.elements, e)
	m.byURI[uri] = e
	m.dirty = true
	return e, nil
}

func (m *Model) Get(uri string) *Element { return m.byURI[uri] }

func (m *Model) Len() int { return len(m.elements) }

// Elements returns all elements in insertion order.
func (m *Model) Elements() []*Element {
	return append([]*Element(nil), m.elements...)
}

// ObjectsOf returns the elements that are a c, in insertion order.
func (m *Model) ObjectsOf(c Class) []*Element {
	var out []*Element
	for _, e := range m.elements {
		if e.Class.IsA(c) {
			out = append(out, e)
		}
	}
	return out
}

// Merge points every reference to from at into and removes from.
func (m *Model) Merge(from, into *Element) {
	if from == into || m.byURI[from.URI] != from {
		return
	}
	for _, e := range m.elements {
		e.replaceRef(from, into)
	}
	m.remove(from)
}

func (m *Model) remove(e *Element) {
	delete(m.byURI, e.URI)
	for i, x := range m.elements {
		if x == e {
			m.elements = append(m.elements[:i], m.elements[i+1:]...)
			break
		}
	}
	e.model = nil
	m.dirty = true
}

func (m *Model) reindex() {
	if !m.dirty && m.inverse != nil {
		return
	}
	m.inverse = map[string]map[*Element][]*Element{}
	for _, src := range m.elements {
		for _, p := range Properties(src.Class) {
			if !p.IsObject() {
				continue
			}
			for _, dst := range src.Objects(p.Name) {
				byDst := m.inverse[p.Name]
				if byDst == nil {
					byDst = map[*Element][]*Element{}
					m.inverse[p.Name] = byDst
				}
				byDst[dst] = appendUnique(byDst[dst], src)
			}
		}
	}
	m.dirty = false
}

// Referrers returns the elements whose prop refers to e, in insertion order.
func (m *Model) Referrers(prop string, e *Element) []*Element {
	m.reindex()
	return m.inverse[prop][e]
}

// Referenced reports whether any element refers to e through any property.
func (m *Model) Referenced(e *Element) bool {
	m.reindex()
	for _, byDst := range m.inverse {
		if len(byDst[e]) > 0 {
			return true
		}
	}
	return false
}

// ParticipantOf returns the interactions e takes part in under any role.
func (m *Model) ParticipantOf(e *Element) []*Element {
	var out []*Element
	for _, p := range participantProps {
		for _, src := range m.Referrers(p, e) {
			if src.Class.IsInteraction() {
				out = appendUnique(out, src)
			}
		}
	}
	return out
}

func (m *Model) PathwayComponentOf(e *Element) []*Element {
	return m.Referrers("pathwayComponent", e)
}

func (m *Model) EntityReferenceOf(e *Element) []*Element {
	return m.Referrers("entityReference", e)
}

func (m *Model) ControlledOf(e *Element) []*Element {
	return m.Referrers("controlled", e)
}

func (m *Model) ComponentOf(e *Element) []*Element {
	return m.Referrers("component", e)
}

func (m *Model) MemberPhysicalEntityOf(e *Element) []*Element {
	return m.Referrers("memberPhysicalEntity", e)
}

func (m *Model) StepProcessOf(e *Element) []*Element {
	return m.Referrers("stepProcess", e)
}

func appendUnique(list []*Element, e *Element) []*Element {
	for _, x := range list {
		if x == e {
			return list
		}
	}
	return append(list, e)
}

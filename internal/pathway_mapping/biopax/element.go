package biopax

import (
	"strings"

	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/domain"
)

// Value is one property value: a literal or a resolved element reference.
type Value struct {
	Literal string
	Ref     *Element
}

func Lit(s string) Value    { return Value{Literal: s} }
func Ref(e *Element) Value  { return Value{Ref: e} }
func (v Value) IsRef() bool { return v.Ref != nil }
func (v Value) same(o Value) bool {
	if v.Ref != nil || o.Ref != nil {
		return v.Ref == o.Ref
	}
	return v.Literal == o.Literal
}

// String renders the value the way attribute rows show it.
func (v Value) String() string {
	if v.Ref != nil {
		return v.Ref.String()
	}
	return v.Literal
}

// Element is one URI-identified object of a model.
type Element struct {
	URI   string
	Class Class

	props map[string][]Value
	model *Model
}

func newElement(c Class, uri string) *Element {
	return &Element{URI: uri, Class: c, props: map[string][]Value{}}
}

// String is the URI for most classes, "db:id" for xrefs and the joined
// terms for controlled vocabularies.
func (e *Element) String() string {
	switch {
	case e.Class.IsXref():
		db, id := e.Literal("db"), e.Literal("id")
		if db != "" || id != "" {
			return db + ":" + id
		}
	case e.Class.IsA(ControlledVocabulary):
		if terms := e.Literals("term"); len(terms) > 0 {
			return strings.Join(terms, ", ")
		}
	}
	return e.URI
}

func (e *Element) spec(prop string) (PropertySpec, error) {
	p, ok := Lookup(e.Class, prop)
	if !ok {
		return p, &domain.PropertyAccessMiss{URI: e.URI, Property: prop, Reason: "not defined for " + string(e.Class)}
	}
	return p, nil
}

// Add appends values to prop, skipping ones already present. A single
// valued property keeps only its first value.
func (e *Element) Add(prop string, vals ...Value) error {
	p, err := e.spec(prop)
	if err != nil {
		return err
	}
	for _, v := range vals {
		if p.IsObject() != v.IsRef() {
			return &domain.PropertyAccessMiss{URI: e.URI, Property: prop, Reason: "expected " + p.Kind.String() + " value"}
		}
		if v.IsRef() && !v.Ref.Class.IsA(p.Range) {
			return &domain.PropertyAccessMiss{URI: e.URI, Property: prop, Reason: string(v.Ref.Class) + " is not a " + string(p.Range)}
		}
		if !v.IsRef() && v.Literal == "" {
			continue
		}
		cur := e.props[prop]
		if containsValue(cur, v) {
			continue
		}
		if !p.Multiple && len(cur) > 0 {
			return &domain.PropertyAccessMiss{URI: e.URI, Property: prop, Reason: "single valued property already set"}
		}
		e.props[prop] = append(cur, v)
	}
	e.touch()
	return nil
}

// Set replaces the values of prop.
func (e *Element) Set(prop string, vals ...Value) error {
	if _, err := e.spec(prop); err != nil {
		return err
	}
	old := e.props[prop]
	delete(e.props, prop)
	if err := e.Add(prop, vals...); err != nil {
		e.props[prop] = old
		return err
	}
	e.touch()
	return nil
}

// AddLiteral is Add for literal values.
func (e *Element) AddLiteral(prop string, vals ...string) error {
	vs := make([]Value, 0, len(vals))
	for _, s := range vals {
		vs = append(vs, Lit(s))
	}
	return e.Add(prop, vs...)
}

// AddRef is Add for element references.
func (e *Element) AddRef(prop string, refs ...*Element) error {
	vs := make([]Value, 0, len(refs))
	for _, r := range refs {
		vs = append(vs, Ref(r))
	}
	return e.Add(prop, vs...)
}

// Values returns prop's values in document order. Undefined properties
// yield nil.
func (e *Element) Values(prop string) []Value { return e.props[prop] }

func (e *Element) Has(prop string) bool { return len(e.props[prop]) > 0 }

func (e *Element) Literal(prop string) string {
	for _, v := range e.props[prop] {
		if !v.IsRef() {
			return v.Literal
		}
	}
	return ""
}

func (e *Element) Literals(prop string) []string {
	var out []string
	for _, v := range e.props[prop] {
		if !v.IsRef() {
			out = append(out, v.Literal)
		}
	}
	return out
}

func (e *Element) Object(prop string) *Element {
	for _, v := range e.props[prop] {
		if v.IsRef() {
			return v.Ref
		}
	}
	return nil
}

func (e *Element) Objects(prop string) []*Element {
	var out []*Element
	for _, v := range e.props[prop] {
		if v.IsRef() {
			out = append(out, v.Ref)
		}
	}
	return out
}

// replaceRef points every reference to from at to, dropping duplicates.
func (e *Element) replaceRef(from, to *Element) {
	for prop, vals := range e.props {
		changed := false
		out := vals[:0:0]
		for _, v := range vals {
			if v.Ref == from {
				v = Ref(to)
				changed = true
			}
			if !containsValue(out, v) {
				out = append(out, v)
			}
		}
		if changed {
			e.props[prop] = out
		}
	}
}

func (e *Element) touch() {
	if e.model != nil {
		e.model.dirty = true
	}
}

func containsValue(vs []Value, v Value) bool {
	for _, x := range vs {
		if x.same(v) {
			return true
		}
	}
	return false
}

package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/knakk/rdf"
)

const (
	rdfNS  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	xmlNS  = "http://www.w3.org/XML/1998/namespace"
	bpL2NS = "http://www.biopax.org/release/biopax-level2.owl#"
	bpL3NS = "http://www.biopax.org/release/biopax-level3.owl#"
)

// Record is one subject of the RDF graph with its BioPAX class local name
// and property values in document order.
type Record struct {
	URI   string
	Class string
	Props []Prop
}

type Prop struct {
	Name  string
	Value string
	Ref   bool
}

func (r *Record) values(name string) []Prop {
	var out []Prop
	for _, p := range r.Props {
		if p.Name == name {
			out = append(out, p)
		}
	}
	return out
}

func (r *Record) first(name string) (Prop, bool) {
	for _, p := range r.Props {
		if p.Name == name {
			return p, true
		}
	}
	return Prop{}, false
}

type Document struct {
	Base    string
	Level   int
	Records []*Record
}

// Decode reads RDF/XML and groups BioPAX triples by subject. Subjects
// without a BioPAX rdf:type are dropped. Nested node elements are flattened
// before the triples are decoded.
func Decode(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("empty input")
	}

	flat, base, err := flatten(data)
	if err != nil {
		return nil, fmt.Errorf("decode RDF/XML: %w", err)
	}

	doc := &Document{Base: base}
	bySubj := map[string]*Record{}
	var order []*Record

	dec := rdf.NewTripleDecoder(bytes.NewReader(flat), rdf.RDFXML)
	for {
		tr, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode RDF/XML: %w", err)
		}

		subj := termID(tr.Subj)
		rec, ok := bySubj[subj]
		if !ok {
			rec = &Record{URI: subj}
			bySubj[subj] = rec
			order = append(order, rec)
		}

		pred := tr.Pred.String()
		if pred == rdfNS+"type" {
			ns, local := splitIRI(termID(tr.Obj))
			level := levelOf(ns)
			if level == 0 {
				continue
			}
			if doc.Level == 0 {
				doc.Level = level
			}
			if rec.Class == "" {
				rec.Class = local
			}
			continue
		}

		ns, local := splitIRI(pred)
		if levelOf(ns) == 0 {
			continue
		}
		if tr.Obj.Type() == rdf.TermLiteral {
			rec.Props = append(rec.Props, Prop{Name: local, Value: strings.TrimSpace(tr.Obj.String())})
		} else {
			rec.Props = append(rec.Props, Prop{Name: local, Value: termID(tr.Obj), Ref: true})
		}
	}

	for _, rec := range order {
		if rec.Class != "" {
			doc.Records = append(doc.Records, rec)
		}
	}
	if len(doc.Records) == 0 {
		return nil, errors.New("no BioPAX elements found")
	}
	return doc, nil
}

func termID(t rdf.Term) string {
	if t.Type() == rdf.TermBlank {
		return "_:" + strings.TrimPrefix(t.String(), "_:")
	}
	return t.String()
}

func splitIRI(iri string) (ns, local string) {
	i := strings.LastIndex(iri, "#")
	if i < 0 {
		return "", iri
	}
	return iri[:i+1], iri[i+1:]
}

func levelOf(ns string) int {
	switch ns {
	case bpL3NS:
		return 3
	case bpL2NS:
		return 2
	}
	return 0
}

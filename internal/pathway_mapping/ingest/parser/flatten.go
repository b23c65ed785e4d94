package parser

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// flatNode is one node element of the source document. Blank nodes have
// an empty about; generated blank ids are assigned when writing.
type flatNode struct {
	about string
	blank string
	types []string
	props []flatProp
}

type flatProp struct {
	ns, local string
	literal   string
	iri       string
	node      *flatNode
}

type flattener struct {
	dec     *xml.Decoder
	base    string
	nodes   []*flatNode
	blankID map[string]bool
}

// flatten rewrites RDF/XML into a list of top-level rdf:Description
// elements with absolute rdf:about, rdf:resource and rdf:nodeID links.
// Nested and striped node elements, rdf:parseType="Resource",
// parseType="Collection" and property attributes are all hoisted, so the
// triple decoder only ever sees the flat form. It also returns the
// document xml:base.
func flatten(data []byte) ([]byte, string, error) {
	f := &flattener{dec: xml.NewDecoder(bytes.NewReader(data)), blankID: map[string]bool{}}
	if err := f.document(); err != nil {
		return nil, "", err
	}
	return f.write(), f.base, nil
}

func (f *flattener) document() error {
	for {
		tok, err := f.dec.Token()
		if err == io.EOF {
			return errors.New("no root element")
		}
		if err != nil {
			return err
		}
		root, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		f.base = baseOf(root, "")
		if root.Name.Space != rdfNS || root.Name.Local != "RDF" {
			_, err := f.node(root, f.base)
			return err
		}
		for {
			tok, err := f.dec.Token()
			if err != nil {
				return err
			}
			switch el := tok.(type) {
			case xml.StartElement:
				if _, err := f.node(el, f.base); err != nil {
					return err
				}
			case xml.EndElement:
				return nil
			}
		}
	}
}

// node reads a node element up to its end tag. The node is recorded
// before any node nested in it, keeping document order.
func (f *flattener) node(start xml.StartElement, base string) (*flatNode, error) {
	base = baseOf(start, base)
	n := &flatNode{}
	f.nodes = append(f.nodes, n)
	if start.Name.Space != rdfNS || start.Name.Local != "Description" {
		n.types = append(n.types, start.Name.Space+start.Name.Local)
	}
	for _, a := range start.Attr {
		switch {
		case a.Name.Space == rdfNS && a.Name.Local == "about":
			n.about = resolveIRI(base, a.Value)
		case a.Name.Space == rdfNS && a.Name.Local == "ID":
			n.about = resolveID(base, a.Value)
		case a.Name.Space == rdfNS && a.Name.Local == "nodeID":
			n.blank = a.Value
			f.blankID[a.Value] = true
		case a.Name.Space == rdfNS && a.Name.Local == "type":
			n.types = append(n.types, resolveIRI(base, a.Value))
		case propertyAttr(a):
			n.props = append(n.props, flatProp{ns: a.Name.Space, local: a.Name.Local, literal: a.Value})
		}
	}

	for {
		tok, err := f.dec.Token()
		if err != nil {
			return nil, err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			if err := f.property(n, el, base); err != nil {
				return nil, err
			}
		case xml.EndElement:
			return n, nil
		}
	}
}

// property reads one property element of subject up to its end tag.
func (f *flattener) property(subject *flatNode, start xml.StartElement, base string) error {
	base = baseOf(start, base)
	p := flatProp{ns: start.Name.Space, local: start.Name.Local}
	var (
		parseType, resource, nodeID string
		hasResource, hasNodeID      bool
		attrs                       []xml.Attr
	)
	for _, a := range start.Attr {
		switch {
		case a.Name.Space == rdfNS && a.Name.Local == "parseType":
			parseType = a.Value
		case a.Name.Space == rdfNS && a.Name.Local == "resource":
			resource, hasResource = resolveIRI(base, a.Value), true
		case a.Name.Space == rdfNS && a.Name.Local == "nodeID":
			nodeID, hasNodeID = a.Value, true
			f.blankID[a.Value] = true
		case a.Name.Space == rdfNS && a.Name.Local == "type", propertyAttr(a):
			attrs = append(attrs, a)
		}
	}

	switch parseType {
	case "":
	case "Resource":
		blank := &flatNode{}
		f.nodes = append(f.nodes, blank)
		p.node = blank
		subject.props = append(subject.props, p)
		for {
			tok, err := f.dec.Token()
			if err != nil {
				return err
			}
			switch el := tok.(type) {
			case xml.StartElement:
				if err := f.property(blank, el, base); err != nil {
					return err
				}
			case xml.EndElement:
				return nil
			}
		}
	case "Collection":
		for {
			tok, err := f.dec.Token()
			if err != nil {
				return err
			}
			switch el := tok.(type) {
			case xml.StartElement:
				item, err := f.node(el, base)
				if err != nil {
					return err
				}
				subject.props = append(subject.props, flatProp{ns: p.ns, local: p.local, node: item})
			case xml.EndElement:
				return nil
			}
		}
	default:
		text, err := f.text()
		if err != nil {
			return err
		}
		p.literal = text
		subject.props = append(subject.props, p)
		return nil
	}

	if hasResource || hasNodeID || len(attrs) > 0 {
		obj := &flatNode{}
		switch {
		case hasResource:
			obj.about = resource
			p.iri = resource
		case hasNodeID:
			obj.blank = nodeID
			p.node = obj
		default:
			p.node = obj
		}
		subject.props = append(subject.props, p)
		if len(attrs) > 0 {
			for _, a := range attrs {
				if a.Name.Space == rdfNS {
					obj.types = append(obj.types, resolveIRI(base, a.Value))
					continue
				}
				obj.props = append(obj.props, flatProp{ns: a.Name.Space, local: a.Name.Local, literal: a.Value})
			}
			f.nodes = append(f.nodes, obj)
		}
		return f.dec.Skip()
	}

	var text strings.Builder
	for {
		tok, err := f.dec.Token()
		if err != nil {
			return err
		}
		switch el := tok.(type) {
		case xml.CharData:
			text.Write(el)
		case xml.StartElement:
			child, err := f.node(el, base)
			if err != nil {
				return err
			}
			obj := p
			obj.node = child
			subject.props = append(subject.props, obj)
			if err := f.skipToEnd(); err != nil {
				return err
			}
			return nil
		case xml.EndElement:
			p.literal = text.String()
			subject.props = append(subject.props, p)
			return nil
		}
	}
}

// text returns the character data of an element as one string, consuming
// its end tag. Markup inside is dropped.
func (f *flattener) text() (string, error) {
	var b strings.Builder
	depth := 0
	for {
		tok, err := f.dec.Token()
		if err != nil {
			return "", err
		}
		switch el := tok.(type) {
		case xml.CharData:
			b.Write(el)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			if depth == 0 {
				return b.String(), nil
			}
			depth--
		}
	}
}

// skipToEnd consumes whitespace up to the end tag of the current property
// element. A second node element in one property is an error.
func (f *flattener) skipToEnd() error {
	for {
		tok, err := f.dec.Token()
		if err != nil {
			return err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			return fmt.Errorf("property element holds more than one node: %s", el.Name.Local)
		case xml.EndElement:
			return nil
		}
	}
}

func (f *flattener) write() []byte {
	gen := 0
	for _, n := range f.nodes {
		if n.about != "" || n.blank != "" {
			continue
		}
		for {
			gen++
			id := "b" + strconv.Itoa(gen)
			if !f.blankID[id] {
				n.blank = id
				break
			}
		}
	}

	schemes := map[string]bool{}
	for _, n := range f.nodes {
		addScheme(schemes, n.about)
		for _, t := range n.types {
			addScheme(schemes, t)
		}
		for _, p := range n.props {
			addScheme(schemes, p.iri)
		}
	}
	prefixes := map[string]string{rdfNS: "rdf"}
	var spaces []string
	next := 0
	for _, n := range f.nodes {
		for _, p := range n.props {
			if p.ns == "" || p.ns == rdfNS {
				continue
			}
			if _, ok := prefixes[p.ns]; ok {
				continue
			}
			prefix := ""
			for {
				next++
				prefix = "ns" + strconv.Itoa(next)
				if !schemes[prefix] {
					break
				}
			}
			prefixes[p.ns] = prefix
			spaces = append(spaces, p.ns)
		}
	}

	var b bytes.Buffer
	b.WriteString(xml.Header)
	b.WriteString(`<rdf:RDF xmlns:rdf="` + rdfNS + `"`)
	for _, ns := range spaces {
		b.WriteString(" xmlns:" + prefixes[ns] + `="`)
		escape(&b, ns)
		b.WriteString(`"`)
	}
	var names []string
	for s := range schemes {
		names = append(names, s)
	}
	sort.Strings(names)
	for _, s := range names {
		b.WriteString(" xmlns:" + s + `="` + s + `:"`)
	}
	b.WriteString(">\n")

	for _, n := range f.nodes {
		if n.about != "" {
			b.WriteString(`<rdf:Description rdf:about="`)
			escape(&b, n.about)
		} else {
			b.WriteString(`<rdf:Description rdf:nodeID="`)
			escape(&b, n.blank)
		}
		b.WriteString("\">\n")
		for _, t := range n.types {
			b.WriteString(` <rdf:type rdf:resource="`)
			escape(&b, t)
			b.WriteString("\"/>\n")
		}
		for _, p := range n.props {
			var name string
			switch {
			case p.ns == rdfNS && p.local == "type" && p.iri != "":
				name = "rdf:type"
			case p.ns == "" || p.ns == rdfNS:
				continue
			default:
				name = prefixes[p.ns] + ":" + p.local
			}
			b.WriteString(" <" + name)
			switch {
			case p.iri != "":
				b.WriteString(` rdf:resource="`)
				escape(&b, p.iri)
				b.WriteString("\"/>\n")
			case p.node != nil:
				if p.node.about != "" {
					b.WriteString(` rdf:resource="`)
					escape(&b, p.node.about)
				} else {
					b.WriteString(` rdf:nodeID="`)
					escape(&b, p.node.blank)
				}
				b.WriteString("\"/>\n")
			default:
				b.WriteString(">")
				escape(&b, p.literal)
				b.WriteString("</" + name + ">\n")
			}
		}
		b.WriteString("</rdf:Description>\n")
	}
	b.WriteString("</rdf:RDF>\n")
	return b.Bytes()
}

func escape(b *bytes.Buffer, s string) {
	_ = xml.EscapeText(b, []byte(s))
}

// propertyAttr reports whether a is a property attribute rather than
// RDF or XML syntax.
func propertyAttr(a xml.Attr) bool {
	switch a.Name.Space {
	case "", "xmlns", xmlNS, "xml", rdfNS:
		return false
	}
	return true
}

func baseOf(el xml.StartElement, inherited string) string {
	for _, a := range el.Attr {
		if a.Name.Local == "base" && (a.Name.Space == xmlNS || a.Name.Space == "xml") {
			return resolveIRI(inherited, a.Value)
		}
	}
	return inherited
}

// addScheme records the scheme of an absolute IRI that has no authority,
// such as urn:. The triple decoder expands those as prefixed names, so
// each needs a namespace declaration mapping it to itself.
func addScheme(set map[string]bool, iri string) {
	s, ok := scheme(iri)
	if !ok || strings.HasPrefix(iri[len(s):], "://") {
		return
	}
	switch strings.ToLower(s) {
	case "rdf", "xml", "xmlns":
		return
	}
	set[s] = true
}

func scheme(iri string) (string, bool) {
	for i, r := range iri {
		switch {
		case r == ':':
			return iri[:i], i > 0
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '-' || r == '.'):
		default:
			return "", false
		}
	}
	return "", false
}

func resolveIRI(base, ref string) string {
	if _, ok := scheme(ref); ok || base == "" {
		return ref
	}
	if ref == "" || strings.HasPrefix(ref, "#") {
		return stripFragment(base) + ref
	}
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return b.ResolveReference(r).String()
}

func resolveID(base, id string) string {
	return stripFragment(base) + "#" + id
}

func stripFragment(iri string) string {
	if i := strings.Index(iri, "#"); i >= 0 {
		return iri[:i]
	}
	return iri
}

package parser

import (
	"errors"
	"io"
	"strconv"

	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/logger"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/biopax"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/domain"
)

// Read decodes a BioPAX RDF/XML stream into a Level 3 model with display
// names fixed. Any failure is a *domain.ParseError.
func Read(r io.Reader) (*biopax.Model, error) {
	doc, err := Decode(r)
	if err != nil {
		return nil, &domain.ParseError{Cause: err}
	}
	if doc.Level == 2 {
		logger.Info("upgrading BioPAX Level 2 model", "records", len(doc.Records))
		doc.Records = Upgrade(doc.Records)
	}
	m, err := Build(doc)
	if err != nil {
		return nil, &domain.ParseError{Cause: err}
	}
	biopax.FixDisplayNames(m)
	logger.Info("BioPAX model read", "elements", m.Len(), "level", doc.Level)
	return m, nil
}

// Build types Level 3 records into a model. Unknown classes, undefined
// properties and values of the wrong shape are skipped.
func Build(doc *Document) (*biopax.Model, error) {
	m := biopax.NewModel(doc.Base)
	m.Level = doc.Level
	for _, rec := range doc.Records {
		class, ok := biopax.ParseClass(rec.Class)
		if !ok {
			logger.Debug("skipping element of unknown class", "uri", rec.URI, "class", rec.Class)
			continue
		}
		if _, err := m.New(class, rec.URI); err != nil {
			logger.Debug("skipping element", "uri", rec.URI, "err", err)
		}
	}
	if m.Len() == 0 {
		return nil, errors.New("no usable BioPAX elements")
	}

	for _, rec := range doc.Records {
		e := m.Get(rec.URI)
		if e == nil {
			continue
		}
		for _, p := range rec.Props {
			if err := setProp(m, e, p); err != nil {
				logger.Debug("property skipped", "uri", e.URI, "property", p.Name, "err", err)
			}
		}
	}
	return m, nil
}

func setProp(m *biopax.Model, e *biopax.Element, p Prop) error {
	spec, ok := biopax.Lookup(e.Class, p.Name)
	if !ok {
		return &domain.PropertyAccessMiss{URI: e.URI, Property: p.Name, Reason: "not defined for " + string(e.Class)}
	}
	if spec.IsObject() {
		if !p.Ref {
			return &domain.PropertyAccessMiss{URI: e.URI, Property: p.Name, Reason: "literal given for object property"}
		}
		target := m.Get(p.Value)
		if target == nil {
			return &domain.PropertyAccessMiss{URI: e.URI, Property: p.Name, Reason: "unresolved reference " + p.Value}
		}
		return e.AddRef(p.Name, target)
	}
	if p.Ref {
		return &domain.PropertyAccessMiss{URI: e.URI, Property: p.Name, Reason: "reference given for literal property"}
	}
	if !validLiteral(spec.Kind, p.Value) {
		return &domain.PropertyAccessMiss{URI: e.URI, Property: p.Name, Reason: "not a valid " + spec.Kind.String()}
	}
	return e.AddLiteral(p.Name, p.Value)
}

func validLiteral(k biopax.Kind, s string) bool {
	var err error
	switch k {
	case biopax.KindInt:
		_, err = strconv.Atoi(s)
	case biopax.KindFloat:
		_, err = strconv.ParseFloat(s, 64)
	case biopax.KindBool:
		_, err = strconv.ParseBool(s)
	}
	return err == nil
}

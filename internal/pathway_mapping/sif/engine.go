package sif

import (
	"fmt"
	"sort"
	"strings"

	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/logger"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/biopax"
)

var fieldCleaner = strings.NewReplacer("\t", " ", "\n", " ", "\r", " ", ";", ",")

// Project normalizes m in place and then infers relations with rules.
func Project(m *biopax.Model, rules []Rule) ([]Relation, error) {
	if m == nil {
		return nil, fmt.Errorf("sif: model is nil")
	}
	if err := Normalize(m); err != nil {
		return nil, err
	}
	return Infer(m, rules), nil
}

// Infer runs rules over an already normalized model. Relations found more
// than once are merged with their mediators, provenance is collected from
// the mediators and the result is ordered by A, type, B.
func Infer(m *biopax.Model, rules []Rule) []Relation {
	byKey := map[string]*Relation{}
	for _, rule := range rules {
		found := rule.Find(m)
		logger.Debug("sif rule applied", "rule", rule.Name(), "relations", len(found))
		for _, rel := range found {
			rel.Type = rule.Type()
			if rel.A == "" || rel.B == "" || rel.A == rel.B {
				continue
			}
			if !rel.Type.Directed() && rel.B < rel.A {
				rel.A, rel.B = rel.B, rel.A
			}
			if cur, ok := byKey[rel.key()]; ok {
				cur.Mediators = append(cur.Mediators, rel.Mediators...)
				continue
			}
			r := Relation{A: rel.A, Type: rel.Type, B: rel.B, Mediators: append([]string(nil), rel.Mediators...)}
			byKey[r.key()] = &r
		}
	}

	out := make([]Relation, 0, len(byKey))
	for _, r := range byKey {
		r.Mediators = sortedSet(r.Mediators)
		r.DataSources, r.Publications, r.Pathways = provenance(m, r.Mediators)
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.A != b.A {
			return a.A < b.A
		}
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		return a.B < b.B
	})
	return out
}

func provenance(m *biopax.Model, mediators []string) (sources, pubs, pathways []string) {
	for _, uri := range mediators {
		e := m.Get(uri)
		if e == nil {
			continue
		}
		for _, d := range e.Objects("dataSource") {
			sources = append(sources, sourceName(d))
		}
		for _, x := range e.Objects("xref") {
			if x.Class.IsA(biopax.PublicationXref) && strings.EqualFold(x.Literal("db"), "pubmed") {
				if id := strings.TrimSpace(x.Literal("id")); id != "" {
					pubs = append(pubs, id)
				}
			}
		}
		for _, pw := range pathwaysOf(m, e) {
			pathways = append(pathways, biopax.DisplayName(pw))
		}
	}
	return sortedSet(sources), sortedSet(pubs), sortedSet(pathways)
}

func sourceName(d *biopax.Element) string {
	for _, p := range []string{"displayName", "standardName", "name"} {
		if n := strings.TrimSpace(d.Literal(p)); n != "" {
			return n
		}
	}
	return d.URI
}

// pathwaysOf returns the pathways an interaction belongs to, directly or
// through enclosing pathways. Other elements inherit the pathways of the
// interactions they take part in.
func pathwaysOf(m *biopax.Model, e *biopax.Element) []*biopax.Element {
	var out []*biopax.Element
	seen := map[*biopax.Element]bool{}
	var up func(x *biopax.Element)
	up = func(x *biopax.Element) {
		for _, pw := range m.PathwayComponentOf(x) {
			if !seen[pw] {
				seen[pw] = true
				out = append(out, pw)
				up(pw)
			}
		}
	}
	if e.Class.IsInteraction() {
		up(e)
		return out
	}
	for _, itr := range m.ParticipantOf(e) {
		up(itr)
	}
	return out
}

func sortedSet(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	set := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = fieldCleaner.Replace(strings.TrimSpace(s))
		if s == "" || set[s] {
			continue
		}
		set[s] = true
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

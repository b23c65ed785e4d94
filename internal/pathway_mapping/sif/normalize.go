package sif

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/logger"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/biopax"
)

var (
	roleProps      = []string{"participant", "left", "right", "controller", "controlled", "cofactor", "template", "product", "interactionType"}
	directionProps = []string{"controlType", "conversionDirection", "catalysisDirection", "templateDirection"}
	absorbedProps  = []string{"xref", "dataSource", "evidence"}
)

// Normalize prepares m for relation inference. Equivalent interactions are
// merged, then every simple physical entity gets an entity reference:
// generic entities a generic one listing their members' references, the
// rest a generated one. A generic entity whose reference lists no members
// gets its members' references added to it. It must complete before any
// rule reads m.
func Normalize(m *biopax.Model) error {
	merged := mergeEquivalentInteractions(m)

	added, expanded := 0, 0
	for _, e := range m.ObjectsOf(biopax.SimplePhysicalEntity) {
		er := e.Object("entityReference")
		switch {
		case er == nil:
			if _, err := ensureReference(m, e); err != nil {
				return fmt.Errorf("normalize %s: %w", e.URI, err)
			}
			added++
		case e.Has("memberPhysicalEntity") && !er.Has("memberEntityReference"):
			if err := addMemberReferences(m, e, er); err != nil {
				return fmt.Errorf("normalize %s: %w", e.URI, err)
			}
			expanded++
		}
	}
	logger.Debug("model normalized", "merged_interactions", merged,
		"generated_references", added, "expanded_generics", expanded)
	return nil
}

// mergeEquivalentInteractions folds interactions with the same class,
// roles and directions into the first one in model order. Merging can make
// controls equivalent, so it repeats until nothing changes.
func mergeEquivalentInteractions(m *biopax.Model) int {
	total := 0
	for {
		n := 0
		seen := map[string]*biopax.Element{}
		for _, e := range m.ObjectsOf(biopax.Interaction) {
			if len(biopax.Participants(e)) == 0 {
				continue
			}
			sig := signature(e)
			keep, ok := seen[sig]
			if !ok {
				seen[sig] = e
				continue
			}
			for _, p := range absorbedProps {
				if err := keep.AddRef(p, e.Objects(p)...); err != nil {
					logger.Debug("merge: property skipped", "uri", keep.URI, "err", err)
				}
			}
			m.Merge(e, keep)
			n++
		}
		if n == 0 {
			return total
		}
		total += n
	}
}

func signature(e *biopax.Element) string {
	var b strings.Builder
	b.WriteString(string(e.Class))
	for _, p := range roleProps {
		objs := e.Objects(p)
		if len(objs) == 0 {
			continue
		}
		uris := make([]string, 0, len(objs))
		for _, o := range objs {
			uris = append(uris, o.URI)
		}
		sort.Strings(uris)
		b.WriteString("|" + p + "=" + strings.Join(uris, ","))
	}
	for _, p := range directionProps {
		if v := e.Literal(p); v != "" {
			b.WriteString("|" + p + "=" + v)
		}
	}
	return b.String()
}

// ensureReference returns e's entity reference, generating one when e has
// none. Generated URIs are name based UUIDs of e's URI, so repeated runs
// over the same input agree.
func ensureReference(m *biopax.Model, e *biopax.Element) (*biopax.Element, error) {
	if er := e.Object("entityReference"); er != nil {
		return er, nil
	}
	c, ok := biopax.ReferenceClassFor(e.Class)
	if !ok {
		return nil, nil
	}
	uri := uuid.NewSHA1(uuid.NameSpaceURL, []byte(e.URI)).URN()
	er := m.Get(uri)
	if er == nil {
		var err error
		if er, err = m.New(c, uri); err != nil {
			return nil, err
		}
		copyNames(e, er)
	}
	if err := e.Set("entityReference", biopax.Ref(er)); err != nil {
		return nil, err
	}
	if err := addMemberReferences(m, e, er); err != nil {
		return nil, err
	}
	return er, nil
}

// addMemberReferences lists the references of e's simple members under er.
// Members whose reference is er itself or of another class are left out.
func addMemberReferences(m *biopax.Model, e, er *biopax.Element) error {
	for _, member := range e.Objects("memberPhysicalEntity") {
		if !member.Class.IsSimplePhysicalEntity() {
			continue
		}
		mer, err := ensureReference(m, member)
		if err != nil {
			return err
		}
		if mer != nil && mer != er && mer.Class.IsA(er.Class) {
			if err := er.AddRef("memberEntityReference", mer); err != nil {
				logger.Debug("normalize: member reference skipped", "uri", er.URI, "err", err)
			}
		}
	}
	return nil
}

func copyNames(from, to *biopax.Element) {
	for _, p := range []string{"displayName", "standardName", "name"} {
		if err := to.AddLiteral(p, from.Literals(p)...); err != nil {
			logger.Debug("normalize: name skipped", "uri", to.URI, "property", p, "err", err)
		}
	}
	for _, x := range from.Objects("xref") {
		if x.Class.IsA(biopax.PublicationXref) {
			continue
		}
		if err := to.AddRef("xref", x); err != nil {
			logger.Debug("normalize: xref skipped", "uri", to.URI, "err", err)
		}
	}
}

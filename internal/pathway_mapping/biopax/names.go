package biopax

import (
	"strings"

	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/logger"
)

// FixDisplayNames fills in missing display names: the standard name if
// there is one, otherwise the shortest name. Simple physical entities that
// still have none take their entity reference's. Set values are kept.
func FixDisplayNames(m *Model) {
	logger.Debug("auto-setting displayName for BioPAX elements", "elements", m.Len())
	for _, e := range m.elements {
		if !e.Class.IsNamed() || e.Literal("displayName") != "" {
			continue
		}
		if std := e.Literal("standardName"); std != "" {
			setDisplayName(e, std)
			continue
		}
		names := e.Literals("name")
		if len(names) == 0 {
			continue
		}
		dsp := names[0]
		for _, n := range names[1:] {
			if len(n) < len(dsp) {
				dsp = n
			}
		}
		setDisplayName(e, dsp)
	}

	for _, er := range m.ObjectsOf(EntityReference) {
		name := strings.TrimSpace(er.Literal("displayName"))
		if name == "" {
			continue
		}
		for _, spe := range m.EntityReferenceOf(er) {
			if strings.TrimSpace(spe.Literal("displayName")) == "" {
				setDisplayName(spe, er.Literal("displayName"))
			}
		}
	}
}

func setDisplayName(e *Element, name string) {
	if err := e.Set("displayName", Lit(name)); err != nil {
		logger.Debug("display name not set", "uri", e.URI, "err", err)
	}
}

// ModelName joins the display names of root pathways, or of root
// interactions when there are no root pathways. Roots are elements nothing
// else refers to. Falls back to the xml:base.
func ModelName(m *Model) string {
	var parts []string
	for _, c := range []Class{Pathway, Interaction} {
		for _, e := range m.ObjectsOf(c) {
			if !m.Referenced(e) {
				parts = append(parts, DisplayName(e))
			}
		}
		if len(parts) > 0 {
			break
		}
	}
	if len(parts) == 0 {
		return strings.TrimSpace(m.XMLBase)
	}
	return strings.Join(parts, " ")
}

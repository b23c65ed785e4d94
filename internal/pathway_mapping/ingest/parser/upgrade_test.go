package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpgrade(t *testing.T) {
	records := []*Record{
		{URI: "pw", Class: "pathway", Props: []Prop{
			{Name: "NAME", Value: "signalling"},
			{Name: "PATHWAY-COMPONENTS", Value: "step1", Ref: true},
		}},
		{URI: "step1", Class: "pathwayStep", Props: []Prop{
			{Name: "STEP-INTERACTIONS", Value: "cat", Ref: true},
		}},
		{URI: "cat", Class: "catalysis", Props: []Prop{
			{Name: "CONTROLLER", Value: "pep1", Ref: true},
			{Name: "DIRECTION", Value: "LEFT-TO-RIGHT"},
		}},
		{URI: "pep1", Class: "physicalEntityParticipant", Props: []Prop{
			{Name: "PHYSICAL-ENTITY", Value: "prot", Ref: true},
			{Name: "SEQUENCE-FEATURE-LIST", Value: "feat", Ref: true},
		}},
		{URI: "prot", Class: "protein", Props: []Prop{
			{Name: "SHORT-NAME", Value: "AKT1"},
			{Name: "ORGANISM", Value: "human", Ref: true},
			{Name: "UNKNOWN-L2-PROP", Value: "x"},
		}},
		{URI: "feat", Class: "sequenceFeature", Props: []Prop{
			{Name: "FEATURE-TYPE", Value: "phos", Ref: true},
		}},
		{URI: "phos", Class: "openControlledVocabulary", Props: []Prop{
			{Name: "TERM", Value: "phosphorylation site"},
		}},
		{URI: "orphan", Class: "physicalEntityParticipant"},
	}

	out := Upgrade(records)
	byURI := map[string]*Record{}
	for _, r := range out {
		byURI[r.URI] = r
	}

	require.Len(t, out, 7)
	assert.NotContains(t, byURI, "orphan")

	pw := byURI["pw"]
	assert.Equal(t, "Pathway", pw.Class)
	assert.Equal(t, []Prop{
		{Name: "standardName", Value: "signalling"},
		{Name: "pathwayOrder", Value: "step1", Ref: true},
		{Name: "pathwayComponent", Value: "cat", Ref: true},
	}, pw.Props)

	cat := byURI["cat"]
	assert.Equal(t, "Catalysis", cat.Class)
	assert.Contains(t, cat.Props, Prop{Name: "catalysisDirection", Value: "LEFT-TO-RIGHT"})

	prot := byURI["prot"]
	assert.Equal(t, "ProteinReference", prot.Class)
	assert.Equal(t, []Prop{
		{Name: "displayName", Value: "AKT1"},
		{Name: "organism", Value: "human", Ref: true},
	}, prot.Props)

	pep := byURI["pep1"]
	assert.Equal(t, "Protein", pep.Class)
	assert.Equal(t, []Prop{
		{Name: "entityReference", Value: "prot", Ref: true},
		{Name: "feature", Value: "feat", Ref: true},
	}, pep.Props)

	assert.Equal(t, "ModificationFeature", byURI["feat"].Class)
	assert.Equal(t, "SequenceModificationVocabulary", byURI["phos"].Class)
}

package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const flatHeader = `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" xmlns:bp="http://www.biopax.org/release/biopax-level3.owl#">`

func TestFlatten_HoistsNestedNodes(t *testing.T) {
	in := flatHeader + `
<bp:SmallMolecule rdf:about="http://e/glc">
 <bp:entityReference>
  <bp:SmallMoleculeReference rdf:about="urn:miriam:chebi:17234" bp:displayName="glucose"/>
 </bp:entityReference>
</bp:SmallMolecule>
</rdf:RDF>`

	out, base, err := flatten([]byte(in))
	require.NoError(t, err)
	assert.Empty(t, base)

	flat := string(out)
	assert.Contains(t, flat, `xmlns:urn="urn:"`)
	assert.Contains(t, flat, `<rdf:Description rdf:about="urn:miriam:chebi:17234">`)
	assert.Less(t, strings.Index(flat, `rdf:about="http://e/glc"`), strings.Index(flat, `rdf:about="urn:miriam:chebi:17234"`))
	assert.Equal(t, 2, strings.Count(flat, "<rdf:Description"))
}

func TestDecode_BlankNodes(t *testing.T) {
	in := flatHeader + `
<bp:Pathway rdf:nodeID="b1">
 <bp:pathwayComponent rdf:parseType="Resource">
  <rdf:type rdf:resource="http://www.biopax.org/release/biopax-level3.owl#Catalysis"/>
  <bp:controlType>INHIBITION</bp:controlType>
 </bp:pathwayComponent>
</bp:Pathway>
<bp:Protein rdf:about="http://e/p" bp:displayName="TP53"/>
</rdf:RDF>`

	doc, err := Decode(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, doc.Records, 3)

	pw, cat, prot := doc.Records[0], doc.Records[1], doc.Records[2]
	assert.Equal(t, "_:b1", pw.URI)
	assert.Equal(t, "Pathway", pw.Class)
	assert.Equal(t, []Prop{{Name: "pathwayComponent", Value: "_:b2", Ref: true}}, pw.Props)

	assert.Equal(t, "_:b2", cat.URI, "generated ids skip ids used in the document")
	assert.Equal(t, "Catalysis", cat.Class)
	assert.Equal(t, []Prop{{Name: "controlType", Value: "INHIBITION"}}, cat.Props)

	assert.Equal(t, "http://e/p", prot.URI)
	assert.Equal(t, []Prop{{Name: "displayName", Value: "TP53"}}, prot.Props)
}

func TestFlatten_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no root", "just text"},
		{"mismatched tags", flatHeader + `<bp:Protein rdf:about="http://e/p"><bp:xref></bp:Protein></rdf:RDF>`},
		{"two nodes in one property", flatHeader + `<bp:Complex rdf:about="http://e/c"><bp:component><bp:Protein rdf:about="http://e/a"/><bp:Protein rdf:about="http://e/b"/></bp:component></bp:Complex></rdf:RDF>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := flatten([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestResolveIRI(t *testing.T) {
	tests := []struct {
		base, ref, want string
	}{
		{"http://example.org/test#", "#glucose", "http://example.org/test#glucose"},
		{"http://example.org/test#", "", "http://example.org/test"},
		{"http://example.org/a/test", "glucose", "http://example.org/a/glucose"},
		{"http://example.org/test#", "urn:miriam:chebi:1", "urn:miriam:chebi:1"},
		{"http://example.org/test#", "http://other.org/x", "http://other.org/x"},
		{"", "glucose", "glucose"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, resolveIRI(tt.base, tt.ref), "%s + %s", tt.base, tt.ref)
	}
	assert.Equal(t, "http://example.org/test#hk1", resolveID("http://example.org/test#", "hk1"))
}

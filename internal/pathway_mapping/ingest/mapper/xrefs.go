package mapper

import (
	"strconv"
	"strings"

	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/logger"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/biopax"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/domain"
)

const (
	AttrUniprot    = "UNIPROT"
	AttrGeneSymbol = "GENE SYMBOL"
	AttrNCBIGene   = "NCBI GENE"

	AttrUnification  = "UNIFICATION"
	AttrRelationship = "RELATIONSHIP"
	AttrPublication  = "PUBLICATION"

	AttrUnificationReferences  = "UNIFICATION_REFERENCES"
	AttrRelationshipReferences = "RELATIONSHIP_REFERENCES"
	AttrPublicationReferences  = "PUBLICATION_REFERENCES"
	AttrIHOPLinks              = "IHOP_LINKS"
)

var uniprotPrefixes = []string{
	"http://identifiers.org/uniprot",
	"https://identifiers.org/uniprot",
	"http://purl.uniprot.org/uniprot/",
	"https://purl.uniprot.org/uniprot/",
	"http://bioregistry.io/uniprot:",
	"https://bioregistry.io/uniprot:",
}

// CrossReferenceConsolidator turns xrefs into list attributes, hidden link
// lists and a few promoted identifiers.
type CrossReferenceConsolidator struct{}

func (CrossReferenceConsolidator) Consolidate(e *biopax.Element, node *domain.Node) {
	row := node.Row

	if id, ok := uniprotFromURI(e); ok && !row.IsSet(AttrUniprot) {
		row.SetString(AttrUniprot, id)
	}

	direct := wellFormed(e, biopax.Xrefs(e, false))
	for _, x := range direct {
		promote(row, x.db, x.id)
	}

	links := make([]XrefLink, 0, len(direct))
	for _, x := range direct {
		links = append(links, XrefLink{DB: x.db, ID: x.id})
	}
	if s := CreateIHOPLink(string(e.Class), biopax.Synonyms(e), links, biopax.OrganismTaxonomyID(e)); s != "" {
		node.Hidden.SetString(AttrIHOPLinks, s)
	}

	for _, x := range wellFormed(e, biopax.Xrefs(e, true)) {
		var visible, hidden string
		switch {
		case x.el.Class.IsA(biopax.UnificationXref):
			visible, hidden = AttrUnification, AttrUnificationReferences
		case x.el.Class.IsA(biopax.RelationshipXref):
			visible, hidden = AttrRelationship, AttrRelationshipReferences
		case x.el.Class.IsA(biopax.PublicationXref):
			visible, hidden = AttrPublication, AttrPublicationReferences
		default:
			continue
		}
		row.AppendUnique(visible, describe(x))
		node.Hidden.AppendUnique(hidden, CreateLink(x.db, x.id))
	}
}

type xref struct {
	el *biopax.Element
	db string
	id string
}

func wellFormed(owner *biopax.Element, xs []*biopax.Element) []xref {
	out := make([]xref, 0, len(xs))
	for _, x := range xs {
		db, id := strings.TrimSpace(x.Literal("db")), strings.TrimSpace(x.Literal("id"))
		if db == "" || id == "" {
			err := &domain.MalformedXrefError{URI: x.URI, Owner: owner.URI}
			logger.Debug("skipping xref", "err", err)
			continue
		}
		out = append(out, xref{el: x, db: db, id: id})
	}
	return out
}

// promote sets the gene symbol, NCBI gene id and UniProt accession from
// the first matching xref. Existing values are never replaced.
func promote(row *domain.Row, db, id string) {
	udb := strings.ToUpper(db)
	switch {
	case udb == "HGNC SYMBOL" || strings.HasPrefix(udb, "HGNC") || strings.HasPrefix(udb, "HUGO GENE") ||
		strings.HasPrefix(udb, "GENE SYMBOL") || strings.HasPrefix(udb, "GENE NAME"):
		if !row.IsSet(AttrGeneSymbol) && !strings.HasPrefix(id, "HGNC:") {
			row.SetString(AttrGeneSymbol, id)
		}
	case udb == "NCBI GENE" || udb == "ENTREZ GENE" || udb == "GENE ID":
		if !row.IsSet(AttrNCBIGene) {
			row.SetString(AttrNCBIGene, id)
		}
	case strings.HasPrefix(udb, "UNIPROT") || strings.HasPrefix(udb, "SWISSPROT") || strings.HasPrefix(udb, "SWISS-PROT"):
		if !row.IsSet(AttrUniprot) {
			row.SetString(AttrUniprot, id)
		}
	}
}

// describe renders db:id, plus author, title, source and year for
// publications.
func describe(x xref) string {
	s := x.db + ":" + x.id
	if !x.el.Class.IsA(biopax.PublicationXref) {
		return s
	}
	var b strings.Builder
	b.WriteString(s)
	if author := x.el.Literal("author"); author != "" {
		b.WriteString(" " + author + " et al.,")
	}
	if title := x.el.Literal("title"); title != "" {
		b.WriteString(" " + title)
	}
	if source := x.el.Literal("source"); source != "" {
		b.WriteString(" (" + source)
		if year, err := strconv.Atoi(x.el.Literal("year")); err == nil && year > 0 {
			b.WriteString(", " + strconv.Itoa(year))
		}
		b.WriteString(")")
	}
	return b.String()
}

func uniprotFromURI(e *biopax.Element) (string, bool) {
	if !e.Class.IsPhysicalEntity() && !e.Class.IsEntityReference() {
		return "", false
	}
	u := e.URI
	if er := biopax.EntityRef(e); er != nil {
		u = er.URI
	}
	for _, p := range uniprotPrefixes {
		if !strings.HasPrefix(u, p) {
			continue
		}
		id := u[strings.LastIndexAny(u, "/:")+1:]
		if id == "" {
			return "", false
		}
		return id, true
	}
	return "", false
}

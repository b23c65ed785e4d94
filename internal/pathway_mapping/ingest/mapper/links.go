package mapper

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	identifiersBase = "http://identifiers.org/"
	ihopBase        = "http://www.ihop-net.org/UniPub/iHOP/in"
)

// XrefLink is a well-formed cross-reference reduced to what links need.
type XrefLink struct {
	DB string
	ID string
}

// CreateLink renders db:id as an anchor pointing at identifiers.org.
func CreateLink(db, id string) string {
	db, id = strings.TrimSpace(db), strings.TrimSpace(id)
	prefix := strings.ReplaceAll(strings.ToLower(db), " ", "")
	return fmt.Sprintf(`<a href="%s%s/%s">%s:%s</a>`,
		identifiersBase, url.PathEscape(prefix), url.PathEscape(id), db, id)
}

// CreateIHOPLink renders an iHOP search anchor for an element's synonyms
// and xrefs. taxID is -1 when the organism is unknown. It returns "" when
// there is nothing to search for.
func CreateIHOPLink(typ string, synonyms []string, xrefs []XrefLink, taxID int) string {
	if len(synonyms) == 0 && len(xrefs) == 0 {
		return ""
	}
	q := url.Values{}
	for _, s := range synonyms {
		if s = strings.TrimSpace(s); s != "" {
			q.Add("syns_1", s)
		}
	}
	for _, x := range xrefs {
		db := strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(x.DB)), " ", "_")
		q.Add("dbrefs_1", db+"__"+strings.TrimSpace(x.ID))
	}
	if taxID > 0 {
		q.Set("ncbi_tax_id_1", strconv.Itoa(taxID))
	}
	return fmt.Sprintf(`<a href="%s?%s">Search iHOP for this %s</a>`, ihopBase, q.Encode(), typ)
}

package parser

import (
	"strings"

	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/logger"
)

var l2Classes = map[string]string{
	"pathway":                          "Pathway",
	"interaction":                      "Interaction",
	"physicalInteraction":              "MolecularInteraction",
	"conversion":                       "Conversion",
	"biochemicalReaction":              "BiochemicalReaction",
	"complexAssembly":                  "ComplexAssembly",
	"transport":                        "Transport",
	"transportWithBiochemicalReaction": "TransportWithBiochemicalReaction",
	"control":                          "Control",
	"catalysis":                        "Catalysis",
	"modulation":                       "Modulation",
	"complex":                          "Complex",
	"physicalEntity":                   "PhysicalEntity",
	"protein":                          "Protein",
	"smallMolecule":                    "SmallMolecule",
	"dna":                              "Dna",
	"rna":                              "Rna",
	"unificationXref":                  "UnificationXref",
	"relationshipXref":                 "RelationshipXref",
	"publicationXref":                  "PublicationXref",
	"openControlledVocabulary":         "ControlledVocabulary",
	"bioSource":                        "BioSource",
	"dataSource":                       "Provenance",
	"evidence":                         "Evidence",
	"confidence":                       "Score",
	"experimentalForm":                 "ExperimentalForm",
	"pathwayStep":                      "PathwayStep",
	"sequenceFeature":                  "EntityFeature",
	"sequenceInterval":                 "SequenceInterval",
	"sequenceSite":                     "SequenceSite",
	"chemicalStructure":                "ChemicalStructure",
	"deltaGprimeO":                     "DeltaG",
	"kPrime":                           "KPrime",
}

// l2ReferenceClasses maps Level 2 simple entities to the Level 3 entity
// and entity reference classes they split into.
var l2ReferenceClasses = map[string][2]string{
	"protein":       {"Protein", "ProteinReference"},
	"smallMolecule": {"SmallMolecule", "SmallMoleculeReference"},
	"dna":           {"Dna", "DnaReference"},
	"rna":           {"Rna", "RnaReference"},
}

var l2Props = map[string]string{
	"NAME":                    "standardName",
	"SHORT-NAME":              "displayName",
	"SYNONYMS":                "name",
	"COMMENT":                 "comment",
	"AVAILABILITY":            "availability",
	"XREF":                    "xref",
	"DATA-SOURCE":             "dataSource",
	"EVIDENCE":                "evidence",
	"ORGANISM":                "organism",
	"PATHWAY-COMPONENTS":      "pathwayComponent",
	"PARTICIPANTS":            "participant",
	"INTERACTION-TYPE":        "interactionType",
	"LEFT":                    "left",
	"RIGHT":                   "right",
	"SPONTANEOUS":             "spontaneous",
	"EC-NUMBER":               "eCNumber",
	"DELTA-G":                 "deltaG",
	"KEQ":                     "kEQ",
	"DELTA-H":                 "deltaH",
	"DELTA-S":                 "deltaS",
	"CONTROL-TYPE":            "controlType",
	"CONTROLLER":              "controller",
	"CONTROLLED":              "controlled",
	"COFACTOR":                "cofactor",
	"COMPONENTS":              "component",
	"DB":                      "db",
	"ID":                      "id",
	"DB-VERSION":              "dbVersion",
	"ID-VERSION":              "idVersion",
	"TITLE":                   "title",
	"YEAR":                    "year",
	"AUTHORS":                 "author",
	"SOURCE":                  "source",
	"URL":                     "url",
	"TERM":                    "term",
	"TAXON-XREF":              "xref",
	"CELLTYPE":                "cellType",
	"TISSUE":                  "tissue",
	"STEP-INTERACTIONS":       "stepProcess",
	"NEXT-STEP":               "nextStep",
	"SEQUENCE":                "sequence",
	"CHEMICAL-FORMULA":        "chemicalFormula",
	"MOLECULAR-WEIGHT":        "molecularWeight",
	"STRUCTURE":               "structure",
	"STRUCTURE-DATA":          "structureData",
	"STRUCTURE-FORMAT":        "structureFormat",
	"FEATURE-TYPE":            "modificationType",
	"FEATURE-LOCATION":        "featureLocation",
	"SEQUENCE-POSITION":       "sequencePosition",
	"POSITION-STATUS":         "positionStatus",
	"SEQUENCE-INTERVAL-BEGIN": "sequenceIntervalBegin",
	"SEQUENCE-INTERVAL-END":   "sequenceIntervalEnd",
	"EVIDENCE-CODE":           "evidenceCode",
	"CONFIDENCE":              "confidence",
	"CONFIDENCE-VALUE":        "value",
	"EXPERIMENTAL-FORM":       "experimentalForm",
	"EXPERIMENTAL-FORM-TYPE":  "experimentalFormDescription",
	"DELTA-G-PRIME-O":         "deltaGPrime0",
	"K-PRIME":                 "kPrime",
	"IONIC-STRENGTH":          "ionicStrength",
	"PH":                      "ph",
	"PMG":                     "pMg",
	"TEMPERATURE":             "temperature",
	"CELLULAR-LOCATION":       "cellularLocation",
	"SEQUENCE-FEATURE-LIST":   "feature",
	"DIRECTION":               "conversionDirection",
}

// vocabularyByProp picks the Level 3 vocabulary class of an
// openControlledVocabulary from the property that refers to it.
var vocabularyByProp = map[string]string{
	"CELLULAR-LOCATION":      "CellularLocationVocabulary",
	"INTERACTION-TYPE":       "InteractionVocabulary",
	"FEATURE-TYPE":           "SequenceModificationVocabulary",
	"CELLTYPE":               "CellVocabulary",
	"TISSUE":                 "TissueVocabulary",
	"EVIDENCE-CODE":          "EvidenceCodeVocabulary",
	"EXPERIMENTAL-FORM-TYPE": "ExperimentalFormVocabulary",
}

func isParticipantRecord(class string) bool {
	return class == "physicalEntityParticipant" || class == "sequenceParticipant"
}

// Upgrade rewrites Level 2 records into Level 3 ones. Simple entities
// become entity references; each participant record pointing at one
// becomes the Level 3 entity (keeping the participant's URI) with the
// location and features it carried. Participants of complexes and generic
// entities collapse into the entity they point at.
func Upgrade(records []*Record) []*Record {
	byURI := make(map[string]*Record, len(records))
	for _, r := range records {
		byURI[r.URI] = r
	}

	vocab := map[string]string{}
	for _, r := range records {
		for _, p := range r.Props {
			if c, ok := vocabularyByProp[p.Name]; ok && p.Ref {
				if _, seen := vocab[p.Value]; !seen {
					vocab[p.Value] = c
				}
			}
		}
	}

	alias := map[string]string{}
	entities := map[string]*Record{}
	extraLoc := map[string]Prop{}
	for _, r := range records {
		if !isParticipantRecord(r.Class) {
			continue
		}
		pe, ok := r.first("PHYSICAL-ENTITY")
		if !ok {
			logger.Debug("dropping participant without physical entity", "uri", r.URI)
			continue
		}
		target := byURI[pe.Value]
		if target == nil {
			logger.Debug("dropping participant with unknown physical entity", "uri", r.URI, "entity", pe.Value)
			continue
		}
		if classes, simple := l2ReferenceClasses[target.Class]; simple {
			entities[r.URI] = participantEntity(r, target, classes[0])
			continue
		}
		// complex or generic physical entity
		alias[r.URI] = target.URI
		if loc, ok := r.first("CELLULAR-LOCATION"); ok {
			if _, seen := extraLoc[target.URI]; !seen {
				extraLoc[target.URI] = loc
			}
		}
	}

	var out []*Record
	for _, r := range records {
		if isParticipantRecord(r.Class) {
			if e, ok := entities[r.URI]; ok {
				out = append(out, e)
			}
			continue
		}
		if classes, simple := l2ReferenceClasses[r.Class]; simple {
			out = append(out, &Record{URI: r.URI, Class: classes[1], Props: renameProps(r)})
			continue
		}
		class := l2Classes[r.Class]
		switch {
		case class == "":
			class = r.Class
		case r.Class == "openControlledVocabulary" && vocab[r.URI] != "":
			class = vocab[r.URI]
		case r.Class == "sequenceFeature":
			if _, ok := r.first("FEATURE-TYPE"); ok {
				class = "ModificationFeature"
			}
		}
		rec := &Record{URI: r.URI, Class: class, Props: renameProps(r)}
		if loc, ok := extraLoc[r.URI]; ok {
			if _, has := rec.first("cellularLocation"); !has {
				rec.Props = append(rec.Props, Prop{Name: "cellularLocation", Value: loc.Value, Ref: loc.Ref})
			}
		}
		out = append(out, rec)
	}

	for _, r := range out {
		for i, p := range r.Props {
			if p.Ref {
				if to, ok := alias[p.Value]; ok {
					r.Props[i].Value = to
				}
			}
		}
		fixPathwaySteps(r, byURI)
		if r.Class == "Catalysis" {
			for i, p := range r.Props {
				if p.Name == "conversionDirection" {
					r.Props[i].Name = "catalysisDirection"
				}
			}
		}
	}
	return out
}

func participantEntity(pep, entity *Record, class string) *Record {
	props := []Prop{{Name: "entityReference", Value: entity.URI, Ref: true}}
	for _, p := range pep.Props {
		switch p.Name {
		case "CELLULAR-LOCATION", "SEQUENCE-FEATURE-LIST", "COMMENT", "XREF":
			props = append(props, Prop{Name: l2Props[p.Name], Value: p.Value, Ref: p.Ref})
		}
	}
	return &Record{URI: pep.URI, Class: class, Props: props}
}

func renameProps(r *Record) []Prop {
	out := make([]Prop, 0, len(r.Props))
	for _, p := range r.Props {
		name, ok := l2Props[p.Name]
		if !ok {
			if strings.ToUpper(p.Name) == p.Name {
				logger.Debug("no Level 3 counterpart for property", "uri", r.URI, "property", p.Name)
				continue
			}
			name = p.Name
		}
		out = append(out, Prop{Name: name, Value: p.Value, Ref: p.Ref})
	}
	return out
}

// fixPathwaySteps moves Level 2 pathway steps listed as pathway components
// to pathwayOrder and lists their step interactions as components.
func fixPathwaySteps(r *Record, byURI map[string]*Record) {
	if r.Class != "Pathway" {
		return
	}
	var props []Prop
	for _, p := range r.Props {
		if p.Name == "pathwayComponent" && byURI[p.Value] != nil && byURI[p.Value].Class == "pathwayStep" {
			props = append(props, Prop{Name: "pathwayOrder", Value: p.Value, Ref: true})
			for _, s := range byURI[p.Value].values("STEP-INTERACTIONS") {
				props = append(props, Prop{Name: "pathwayComponent", Value: s.Value, Ref: true})
			}
			continue
		}
		props = append(props, p)
	}
	r.Props = props
}

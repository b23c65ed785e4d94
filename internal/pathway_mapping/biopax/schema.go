package biopax

import "sync"

// Kind is the value shape of a property.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindObject:
		return "object"
	}
	return "unknown"
}

// PropertySpec describes one property of a class. Range is only set for
// object properties.
type PropertySpec struct {
	Name     string
	Multiple bool
	Kind     Kind
	Range    Class
}

// IsObject reports whether the property refers to other elements.
func (p PropertySpec) IsObject() bool { return p.Kind == KindObject }

func str(name string) PropertySpec     { return PropertySpec{Name: name, Kind: KindString} }
func strs(name string) PropertySpec    { return PropertySpec{Name: name, Kind: KindString, Multiple: true} }
func integer(name string) PropertySpec { return PropertySpec{Name: name, Kind: KindInt} }
func float(name string) PropertySpec   { return PropertySpec{Name: name, Kind: KindFloat} }
func floats(name string) PropertySpec  { return PropertySpec{Name: name, Kind: KindFloat, Multiple: true} }
func boolean(name string) PropertySpec { return PropertySpec{Name: name, Kind: KindBool} }
func obj(name string, r Class) PropertySpec {
	return PropertySpec{Name: name, Kind: KindObject, Range: r}
}
func objs(name string, r Class) PropertySpec {
	return PropertySpec{Name: name, Kind: KindObject, Range: r, Multiple: true}
}

// declared lists the properties each class introduces, in schema order.
var declared = map[Class][]PropertySpec{
	BioPAXElement: {strs("comment")},

	Entity: {
		strs("availability"),
		objs("dataSource", Provenance),
		objs("evidence", Evidence),
		objs("xref", Xref),
		str("displayName"),
		str("standardName"),
		strs("name"),
	},
	Pathway: {
		objs("pathwayComponent", Entity),
		objs("pathwayOrder", PathwayStep),
		obj("organism", BioSource),
	},
	Gene: {obj("organism", BioSource)},
	Interaction: {
		objs("interactionType", InteractionVocabulary),
		objs("participant", Entity),
	},
	Conversion: {
		objs("left", PhysicalEntity),
		objs("right", PhysicalEntity),
		str("conversionDirection"),
		objs("participantStoichiometry", Stoichiometry),
		boolean("spontaneous"),
	},
	BiochemicalReaction: {
		strs("eCNumber"),
		objs("deltaG", DeltaG),
		objs("kEQ", KPrime),
		floats("deltaH"),
		floats("deltaS"),
	},
	Control: {
		str("controlType"),
		obj("controlled", Entity),
		objs("controller", Entity),
	},
	Catalysis: {
		str("catalysisDirection"),
		objs("cofactor", PhysicalEntity),
	},
	TemplateReaction: {
		obj("template", Entity),
		objs("product", PhysicalEntity),
		str("templateDirection"),
	},
	GeneticInteraction: {
		obj("phenotype", PhenotypeVocabulary),
		obj("interactionScore", Score),
	},
	PhysicalEntity: {
		obj("cellularLocation", CellularLocationVocabulary),
		objs("feature", EntityFeature),
		objs("notFeature", EntityFeature),
		objs("memberPhysicalEntity", PhysicalEntity),
	},
	Complex: {
		objs("component", PhysicalEntity),
		objs("componentStoichiometry", Stoichiometry),
	},
	SimplePhysicalEntity: {obj("entityReference", EntityReference)},

	Xref: {
		str("db"),
		str("id"),
		str("dbVersion"),
		str("idVersion"),
	},
	RelationshipXref: {obj("relationshipType", RelationshipTypeVocabulary)},
	PublicationXref: {
		str("title"),
		integer("year"),
		strs("author"),
		strs("source"),
		strs("url"),
	},
	EntityReference: {
		objs("xref", Xref),
		str("displayName"),
		str("standardName"),
		strs("name"),
		objs("evidence", Evidence),
		objs("entityFeature", EntityFeature),
		objs("entityReferenceType", EntityReferenceTypeVocabulary),
		objs("memberEntityReference", EntityReference),
	},
	ProteinReference:   {obj("organism", BioSource), str("sequence")},
	DnaReference:       {obj("organism", BioSource), str("sequence")},
	RnaReference:       {obj("organism", BioSource), str("sequence")},
	DnaRegionReference: {obj("organism", BioSource), str("sequence")},
	RnaRegionReference: {obj("organism", BioSource), str("sequence")},
	SmallMoleculeReference: {
		str("chemicalFormula"),
		float("molecularWeight"),
		obj("structure", ChemicalStructure),
	},
	ControlledVocabulary: {
		strs("term"),
		objs("xref", UnificationXref),
	},
	EntityFeature: {
		obj("featureLocation", SequenceLocation),
		obj("featureLocationType", SequenceRegionVocabulary),
		objs("memberFeature", EntityFeature),
		objs("evidence", Evidence),
	},
	ModificationFeature: {obj("modificationType", SequenceModificationVocabulary)},
	BindingFeature: {
		obj("bindsTo", BindingFeature),
		boolean("intraMolecular"),
	},
	BioSource: {
		str("displayName"),
		str("standardName"),
		strs("name"),
		objs("xref", UnificationXref),
		obj("cellType", CellVocabulary),
		obj("tissue", TissueVocabulary),
	},
	Provenance: {
		str("displayName"),
		str("standardName"),
		strs("name"),
		objs("xref", Xref),
	},
	Stoichiometry: {
		obj("physicalEntity", PhysicalEntity),
		float("stoichiometricCoefficient"),
	},
	PathwayStep: {
		objs("stepProcess", Entity),
		objs("nextStep", PathwayStep),
		objs("evidence", Evidence),
	},
	BiochemicalPathwayStep: {
		obj("stepConversion", Conversion),
		str("stepDirection"),
	},
	Evidence: {
		objs("evidenceCode", EvidenceCodeVocabulary),
		objs("confidence", Score),
		objs("experimentalForm", ExperimentalForm),
		objs("xref", Xref),
	},
	ExperimentalForm: {
		objs("experimentalFormDescription", ExperimentalFormVocabulary),
		objs("experimentalFormEntity", Entity),
		objs("experimentalFeature", EntityFeature),
	},
	Score: {
		str("value"),
		obj("scoreSource", Provenance),
		objs("xref", Xref),
	},
	SequenceInterval: {
		obj("sequenceIntervalBegin", SequenceSite),
		obj("sequenceIntervalEnd", SequenceSite),
	},
	SequenceSite: {
		integer("sequencePosition"),
		str("positionStatus"),
	},
	ChemicalStructure: {
		str("structureData"),
		str("structureFormat"),
	},
	DeltaG: {
		float("deltaGPrime0"),
		float("ionicStrength"),
		float("ph"),
		float("pMg"),
		float("temperature"),
	},
	KPrime: {
		float("kPrime"),
		float("ionicStrength"),
		float("ph"),
		float("pMg"),
		float("temperature"),
	},
}

type schemaTable struct {
	byClass map[Class][]PropertySpec
	index   map[Class]map[string]PropertySpec
}

var (
	schemaOnce sync.Once
	schema     schemaTable
)

func loadSchema() *schemaTable {
	schemaOnce.Do(func() {
		schema = schemaTable{
			byClass: map[Class][]PropertySpec{},
			index:   map[Class]map[string]PropertySpec{},
		}
		all := append([]Class{BioPAXElement}, BioPAXElement.Subclasses()...)
		for _, c := range all {
			idx := map[string]PropertySpec{}
			var list []PropertySpec
			for _, k := range append(c.Ancestors(), c) {
				for _, p := range declared[k] {
					if _, dup := idx[p.Name]; dup {
						continue
					}
					idx[p.Name] = p
					list = append(list, p)
				}
			}
			schema.byClass[c] = list
			schema.index[c] = idx
		}
	})
	return &schema
}

// Lookup returns the property definition for class c. The second result is
// false when c does not define the property.
func Lookup(c Class, prop string) (PropertySpec, bool) {
	p, ok := loadSchema().index[c][prop]
	return p, ok
}

// Properties returns every property applicable to c, inherited ones first.
// The order is fixed for a given class.
func Properties(c Class) []PropertySpec {
	return loadSchema().byClass[c]
}

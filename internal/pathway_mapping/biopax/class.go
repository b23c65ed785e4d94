// Package biopax holds the typed source model the mappers read: a closed
// class lattice, an explicit property schema and the element graph itself.
package biopax

import "sort"

// Class is a BioPAX Level 3 class name.
type Class string

const (
	BioPAXElement Class = "BioPAXElement"

	Entity                           Class = "Entity"
	Pathway                          Class = "Pathway"
	Gene                             Class = "Gene"
	Interaction                      Class = "Interaction"
	Conversion                       Class = "Conversion"
	BiochemicalReaction              Class = "BiochemicalReaction"
	ComplexAssembly                  Class = "ComplexAssembly"
	Degradation                      Class = "Degradation"
	Transport                        Class = "Transport"
	TransportWithBiochemicalReaction Class = "TransportWithBiochemicalReaction"
	Control                          Class = "Control"
	Catalysis                        Class = "Catalysis"
	Modulation                       Class = "Modulation"
	TemplateReactionRegulation       Class = "TemplateReactionRegulation"
	GeneticInteraction               Class = "GeneticInteraction"
	MolecularInteraction             Class = "MolecularInteraction"
	TemplateReaction                 Class = "TemplateReaction"
	PhysicalEntity                   Class = "PhysicalEntity"
	Complex                          Class = "Complex"
	SimplePhysicalEntity             Class = "SimplePhysicalEntity"
	Protein                          Class = "Protein"
	SmallMolecule                    Class = "SmallMolecule"
	Dna                              Class = "Dna"
	Rna                              Class = "Rna"
	DnaRegion                        Class = "DnaRegion"
	RnaRegion                        Class = "RnaRegion"

	UtilityClass                   Class = "UtilityClass"
	Xref                           Class = "Xref"
	UnificationXref                Class = "UnificationXref"
	RelationshipXref               Class = "RelationshipXref"
	PublicationXref                Class = "PublicationXref"
	EntityReference                Class = "EntityReference"
	ProteinReference               Class = "ProteinReference"
	SmallMoleculeReference         Class = "SmallMoleculeReference"
	DnaReference                   Class = "DnaReference"
	RnaReference                   Class = "RnaReference"
	DnaRegionReference             Class = "DnaRegionReference"
	RnaRegionReference             Class = "RnaRegionReference"
	ControlledVocabulary           Class = "ControlledVocabulary"
	CellularLocationVocabulary     Class = "CellularLocationVocabulary"
	CellVocabulary                 Class = "CellVocabulary"
	EntityReferenceTypeVocabulary  Class = "EntityReferenceTypeVocabulary"
	EvidenceCodeVocabulary         Class = "EvidenceCodeVocabulary"
	ExperimentalFormVocabulary     Class = "ExperimentalFormVocabulary"
	InteractionVocabulary          Class = "InteractionVocabulary"
	PhenotypeVocabulary            Class = "PhenotypeVocabulary"
	RelationshipTypeVocabulary     Class = "RelationshipTypeVocabulary"
	SequenceModificationVocabulary Class = "SequenceModificationVocabulary"
	SequenceRegionVocabulary       Class = "SequenceRegionVocabulary"
	TissueVocabulary               Class = "TissueVocabulary"
	EntityFeature                  Class = "EntityFeature"
	ModificationFeature            Class = "ModificationFeature"
	BindingFeature                 Class = "BindingFeature"
	CovalentBindingFeature         Class = "CovalentBindingFeature"
	FragmentFeature                Class = "FragmentFeature"
	BioSource                      Class = "BioSource"
	Provenance                     Class = "Provenance"
	Stoichiometry                  Class = "Stoichiometry"
	PathwayStep                    Class = "PathwayStep"
	BiochemicalPathwayStep         Class = "BiochemicalPathwayStep"
	Evidence                       Class = "Evidence"
	ExperimentalForm               Class = "ExperimentalForm"
	Score                          Class = "Score"
	SequenceLocation               Class = "SequenceLocation"
	SequenceInterval               Class = "SequenceInterval"
	SequenceSite                   Class = "SequenceSite"
	ChemicalStructure              Class = "ChemicalStructure"
	DeltaG                         Class = "DeltaG"
	KPrime                         Class = "KPrime"
)

// parents is the inheritance lattice. Every class but BioPAXElement is listed.
var parents = map[Class][]Class{
	Entity:                           {BioPAXElement},
	Pathway:                          {Entity},
	Gene:                             {Entity},
	Interaction:                      {Entity},
	Conversion:                       {Interaction},
	BiochemicalReaction:              {Conversion},
	ComplexAssembly:                  {Conversion},
	Degradation:                      {Conversion},
	Transport:                        {Conversion},
	TransportWithBiochemicalReaction: {Transport, BiochemicalReaction},
	Control:                          {Interaction},
	Catalysis:                        {Control},
	Modulation:                       {Control},
	TemplateReactionRegulation:       {Control},
	GeneticInteraction:               {Interaction},
	MolecularInteraction:             {Interaction},
	TemplateReaction:                 {Interaction},
	PhysicalEntity:                   {Entity},
	Complex:                          {PhysicalEntity},
	SimplePhysicalEntity:             {PhysicalEntity},
	Protein:                          {SimplePhysicalEntity},
	SmallMolecule:                    {SimplePhysicalEntity},
	Dna:                              {SimplePhysicalEntity},
	Rna:                              {SimplePhysicalEntity},
	DnaRegion:                        {SimplePhysicalEntity},
	RnaRegion:                        {SimplePhysicalEntity},

	UtilityClass:                   {BioPAXElement},
	Xref:                           {UtilityClass},
	UnificationXref:                {Xref},
	RelationshipXref:               {Xref},
	PublicationXref:                {Xref},
	EntityReference:                {UtilityClass},
	ProteinReference:               {EntityReference},
	SmallMoleculeReference:         {EntityReference},
	DnaReference:                   {EntityReference},
	RnaReference:                   {EntityReference},
	DnaRegionReference:             {EntityReference},
	RnaRegionReference:             {EntityReference},
	ControlledVocabulary:           {UtilityClass},
	CellularLocationVocabulary:     {ControlledVocabulary},
	CellVocabulary:                 {ControlledVocabulary},
	EntityReferenceTypeVocabulary:  {ControlledVocabulary},
	EvidenceCodeVocabulary:         {ControlledVocabulary},
	ExperimentalFormVocabulary:     {ControlledVocabulary},
	InteractionVocabulary:          {ControlledVocabulary},
	PhenotypeVocabulary:            {ControlledVocabulary},
	RelationshipTypeVocabulary:     {ControlledVocabulary},
	SequenceModificationVocabulary: {ControlledVocabulary},
	SequenceRegionVocabulary:       {ControlledVocabulary},
	TissueVocabulary:               {ControlledVocabulary},
	EntityFeature:                  {UtilityClass},
	ModificationFeature:            {EntityFeature},
	BindingFeature:                 {EntityFeature},
	CovalentBindingFeature:         {ModificationFeature, BindingFeature},
	FragmentFeature:                {EntityFeature},
	BioSource:                      {UtilityClass},
	Provenance:                     {UtilityClass},
	Stoichiometry:                  {UtilityClass},
	PathwayStep:                    {UtilityClass},
	BiochemicalPathwayStep:         {PathwayStep},
	Evidence:                       {UtilityClass},
	ExperimentalForm:               {UtilityClass},
	Score:                          {UtilityClass},
	SequenceLocation:               {UtilityClass},
	SequenceInterval:               {SequenceLocation},
	SequenceSite:                   {SequenceLocation},
	ChemicalStructure:              {UtilityClass},
	DeltaG:                         {UtilityClass},
	KPrime:                         {UtilityClass},
}

// abstract classes cannot be instantiated from input data.
var abstract = map[Class]bool{
	BioPAXElement:        true,
	Entity:               true,
	UtilityClass:         true,
	Xref:                 true,
	SimplePhysicalEntity: true,
	EntityReference:      true,
	SequenceLocation:     true,
}

// ParseClass resolves a class local name. Unknown and abstract names are
// rejected. ControlledVocabulary and EntityFeature are concrete in Level 3
// data produced by older converters, so they are accepted.
func ParseClass(name string) (Class, bool) {
	c := Class(name)
	if _, ok := parents[c]; !ok || abstract[c] {
		return "", false
	}
	return c, true
}

// Known reports whether c is part of the lattice.
func (c Class) Known() bool {
	_, ok := parents[c]
	return ok || c == BioPAXElement
}

// IsA reports whether c equals ancestor or inherits from it.
func (c Class) IsA(ancestor Class) bool {
	if c == ancestor {
		return true
	}
	for _, p := range parents[c] {
		if p.IsA(ancestor) {
			return true
		}
	}
	return false
}

// Ancestors returns c's ancestors, root first, each listed once.
func (c Class) Ancestors() []Class {
	var out []Class
	seen := map[Class]bool{}
	var walk func(Class)
	walk = func(x Class) {
		for _, p := range parents[x] {
			walk(p)
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
		}
	}
	walk(c)
	return out
}

// Subclasses returns every known class that IsA c, c included, sorted.
func (c Class) Subclasses() []Class {
	var out []Class
	for k := range parents {
		if k.IsA(c) {
			out = append(out, k)
		}
	}
	sortClasses(out)
	return out
}

func (c Class) IsEntity() bool               { return c.IsA(Entity) }
func (c Class) IsInteraction() bool          { return c.IsA(Interaction) }
func (c Class) IsConversion() bool           { return c.IsA(Conversion) }
func (c Class) IsControl() bool              { return c.IsA(Control) }
func (c Class) IsPhysicalEntity() bool       { return c.IsA(PhysicalEntity) }
func (c Class) IsSimplePhysicalEntity() bool { return c.IsA(SimplePhysicalEntity) }
func (c Class) IsComplex() bool              { return c.IsA(Complex) }
func (c Class) IsXref() bool                 { return c.IsA(Xref) }
func (c Class) IsEntityReference() bool      { return c.IsA(EntityReference) }

// IsXReferrable reports whether the class carries an xref property.
func (c Class) IsXReferrable() bool {
	_, ok := Lookup(c, "xref")
	return ok
}

// IsNamed reports whether the class carries name/displayName properties.
func (c Class) IsNamed() bool {
	_, ok := Lookup(c, "displayName")
	return ok
}

// ReferenceClassFor maps a simple physical entity class to the entity
// reference class that describes it.
func ReferenceClassFor(c Class) (Class, bool) {
	switch c {
	case Protein:
		return ProteinReference, true
	case SmallMolecule:
		return SmallMoleculeReference, true
	case Dna:
		return DnaReference, true
	case Rna:
		return RnaReference, true
	case DnaRegion:
		return DnaRegionReference, true
	case RnaRegion:
		return RnaRegionReference, true
	}
	return "", false
}

func sortClasses(cs []Class) {
	sort.Slice(cs, func(i, j int) bool { return cs[i] < cs[j] })
}

package vocab

// Sex is the AS 5017 sex of a person.
type Sex string

const (
	SexMale                    Sex = "M"
	SexFemale                  Sex = "F"
	SexIntersexOrIndeterminate Sex = "I"
	SexNotStated               Sex = "N"
)

var sexTable = newTable[Sex](
	CodeSystem{OID: "2.16.840.1.113883.13.68", Name: "AS 5017-2006 Health Care Client Identifier Sex"},
	entry{"M", "Male"},
	entry{"F", "Female"},
	entry{"I", "Intersex or Indeterminate"},
	entry{"N", "Not Stated/Inadequately Described"},
)

func (v Sex) Code() string           { return string(v) }
func (v Sex) DisplayName() string    { return sexTable.display(v) }
func (v Sex) CodeSystem() CodeSystem { return sexTable.system }
func (v Sex) IsValid() bool          { return sexTable.valid(v) }

// ParseSex returns the Sex for code.
func ParseSex(code string) (Sex, error) { return sexTable.parse(code) }

// SexValues returns every Sex in table order.
func SexValues() []Sex { return sexTable.values() }

// IndigenousStatus is the METeOR 291036 Indigenous status of a person.
type IndigenousStatus string

const (
	IndigenousAboriginalNotTSI        IndigenousStatus = "1"
	IndigenousTSINotAboriginal        IndigenousStatus = "2"
	IndigenousAboriginalAndTSI        IndigenousStatus = "3"
	IndigenousNeitherAboriginalNorTSI IndigenousStatus = "4"
	IndigenousNotStated               IndigenousStatus = "9"
)

var indigenousStatusTable = newTable[IndigenousStatus](
	CodeSystem{OID: "2.16.840.1.113883.3.879.291036", Name: "METeOR Indigenous Status"},
	entry{"1", "Aboriginal but not Torres Strait Islander origin"},
	entry{"2", "Torres Strait Islander but not Aboriginal origin"},
	entry{"3", "Both Aboriginal and Torres Strait Islander origin"},
	entry{"4", "Neither Aboriginal nor Torres Strait Islander origin"},
	entry{"9", "Not stated/inadequately described"},
)

func (v IndigenousStatus) Code() string           { return string(v) }
func (v IndigenousStatus) DisplayName() string    { return indigenousStatusTable.display(v) }
func (v IndigenousStatus) CodeSystem() CodeSystem { return indigenousStatusTable.system }
func (v IndigenousStatus) IsValid() bool          { return indigenousStatusTable.valid(v) }

// ParseIndigenousStatus returns the IndigenousStatus for code.
func ParseIndigenousStatus(code string) (IndigenousStatus, error) {
	return indigenousStatusTable.parse(code)
}

// IndigenousStatusValues returns every IndigenousStatus in table order.
func IndigenousStatusValues() []IndigenousStatus { return indigenousStatusTable.values() }

// RelationshipType is the relationship of a nominated contact to the
// subject of care, drawn from the HL7 RoleCode system.
type RelationshipType string

const (
	RelationshipMother          RelationshipType = "MTH"
	RelationshipFather          RelationshipType = "FTH"
	RelationshipSpouse          RelationshipType = "SPS"
	RelationshipDomesticPartner RelationshipType = "DOMPART"
	RelationshipChild           RelationshipType = "CHILD"
	RelationshipSon             RelationshipType = "SONC"
	RelationshipDaughter        RelationshipType = "DAUC"
	RelationshipSibling         RelationshipType = "SIB"
	RelationshipGrandparent     RelationshipType = "GRPRN"
	RelationshipAunt            RelationshipType = "AUNT"
	RelationshipUncle           RelationshipType = "UNCLE"
	RelationshipCousin          RelationshipType = "COUSN"
	RelationshipFamilyMember    RelationshipType = "FAMMEMB"
	RelationshipGuardian        RelationshipType = "GUARD"
	RelationshipFriend          RelationshipType = "FRND"
	RelationshipNeighbour       RelationshipType = "NBOR"
	RelationshipRoommate        RelationshipType = "ROOM"
	RelationshipSelf            RelationshipType = "ONESELF"
)

var relationshipTypeTable = newTable[RelationshipType](
	CodeSystem{OID: "2.16.840.1.113883.5.111", Name: "HL7 RoleCode"},
	entry{"MTH", "Mother"},
	entry{"FTH", "Father"},
	entry{"SPS", "Spouse"},
	entry{"DOMPART", "Domestic Partner"},
	entry{"CHILD", "Child"},
	entry{"SONC", "Son"},
	entry{"DAUC", "Daughter"},
	entry{"SIB", "Sibling"},
	entry{"GRPRN", "Grandparent"},
	entry{"AUNT", "Aunt"},
	entry{"UNCLE", "Uncle"},
	entry{"COUSN", "Cousin"},
	entry{"FAMMEMB", "Family Member"},
	entry{"GUARD", "Guardian"},
	entry{"FRND", "Unrelated Friend"},
	entry{"NBOR", "Neighbour"},
	entry{"ROOM", "Roommate"},
	entry{"ONESELF", "Self"},
)

func (v RelationshipType) Code() string           { return string(v) }
func (v RelationshipType) DisplayName() string    { return relationshipTypeTable.display(v) }
func (v RelationshipType) CodeSystem() CodeSystem { return relationshipTypeTable.system }
func (v RelationshipType) IsValid() bool          { return relationshipTypeTable.valid(v) }

// ParseRelationshipType returns the RelationshipType for code.
func ParseRelationshipType(code string) (RelationshipType, error) {
	return relationshipTypeTable.parse(code)
}

// RelationshipTypeValues returns every RelationshipType in table order.
func RelationshipTypeValues() []RelationshipType { return relationshipTypeTable.values() }

// DeathNotificationSource records who notified the death of a subject of care.
type DeathNotificationSource string

const (
	DeathNotificationHealthcareProvider  DeathNotificationSource = "1"
	DeathNotificationGovernmentSource    DeathNotificationSource = "2"
	DeathNotificationRelativeCarerFriend DeathNotificationSource = "3"
	DeathNotificationOther               DeathNotificationSource = "4"
)

var deathNotificationSourceTable = newTable[DeathNotificationSource](
	CodeSystem{OID: "1.2.36.1.2001.1001.101.104.16399", Name: "NCTIS Source of Death Notification Values"},
	entry{"1", "Healthcare Provider"},
	entry{"2", "Australian Government Source"},
	entry{"3", "Relative, Carer or Friend"},
	entry{"4", "Other"},
)

func (v DeathNotificationSource) Code() string        { return string(v) }
func (v DeathNotificationSource) DisplayName() string { return deathNotificationSourceTable.display(v) }
func (v DeathNotificationSource) CodeSystem() CodeSystem {
	return deathNotificationSourceTable.system
}
func (v DeathNotificationSource) IsValid() bool { return deathNotificationSourceTable.valid(v) }

// ParseDeathNotificationSource returns the DeathNotificationSource for code.
func ParseDeathNotificationSource(code string) (DeathNotificationSource, error) {
	return deathNotificationSourceTable.parse(code)
}

// DeathNotificationSourceValues returns every DeathNotificationSource in table order.
func DeathNotificationSourceValues() []DeathNotificationSource {
	return deathNotificationSourceTable.values()
}

// NameUsage is the HL7 EntityNameUse of a person or organisation name.
type NameUsage string

const (
	NameUsageLegal     NameUsage = "L"
	NameUsagePseudonym NameUsage = "P"
	NameUsageArtist    NameUsage = "A"
	NameUsageReligious NameUsage = "R"
	NameUsageLicense   NameUsage = "C"
	NameUsageAssigned  NameUsage = "ASGN"
	NameUsageOfficial  NameUsage = "OR"
)

var nameUsageTable = newTable[NameUsage](
	CodeSystem{OID: "2.16.840.1.113883.5.45", Name: "HL7 EntityNameUse"},
	entry{"L", "Legal"},
	entry{"P", "Pseudonym"},
	entry{"A", "Artist/Stage"},
	entry{"R", "Religious"},
	entry{"C", "License"},
	entry{"ASGN", "Assigned"},
	entry{"OR", "Official Registry"},
)

func (v NameUsage) Code() string           { return string(v) }
func (v NameUsage) DisplayName() string    { return nameUsageTable.display(v) }
func (v NameUsage) CodeSystem() CodeSystem { return nameUsageTable.system }
func (v NameUsage) IsValid() bool          { return nameUsageTable.valid(v) }

// ParseNameUsage returns the NameUsage for code.
func ParseNameUsage(code string) (NameUsage, error) { return nameUsageTable.parse(code) }

// NameUsageValues returns every NameUsage in table order.
func NameUsageValues() []NameUsage { return nameUsageTable.values() }

// OrganisationNameUsage is the AS 4846 usage of an organisation name.
type OrganisationNameUsage string

const (
	OrganisationNameBusiness    OrganisationNameUsage = "B"
	OrganisationNameLocallyUsed OrganisationNameUsage = "L"
	OrganisationNameAbbreviated OrganisationNameUsage = "A"
	OrganisationNameEnterprise  OrganisationNameUsage = "E"
	OrganisationNameOther       OrganisationNameUsage = "O"
)

var organisationNameUsageTable = newTable[OrganisationNameUsage](
	CodeSystem{OID: "2.16.840.1.113883.13.84", Name: "AS 4846 Organisation Name Usage"},
	entry{"B", "Business name"},
	entry{"L", "Locally used name"},
	entry{"A", "Abbreviated name"},
	entry{"E", "Enterprise name"},
	entry{"O", "Other"},
)

func (v OrganisationNameUsage) Code() string           { return string(v) }
func (v OrganisationNameUsage) DisplayName() string    { return organisationNameUsageTable.display(v) }
func (v OrganisationNameUsage) CodeSystem() CodeSystem { return organisationNameUsageTable.system }
func (v OrganisationNameUsage) IsValid() bool          { return organisationNameUsageTable.valid(v) }

// ParseOrganisationNameUsage returns the OrganisationNameUsage for code.
func ParseOrganisationNameUsage(code string) (OrganisationNameUsage, error) {
	return organisationNameUsageTable.parse(code)
}

// OrganisationNameUsageValues returns every OrganisationNameUsage in table order.
func OrganisationNameUsageValues() []OrganisationNameUsage {
	return organisationNameUsageTable.values()
}

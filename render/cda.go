package render

import "encoding/xml"

// Namespace is the HL7 v3 namespace of a CDA R2 document.
const Namespace = "urn:hl7-org:v3"

// ClinicalDocument is the root of an HL7 CDA R2 document. Fields appear in
// schema order.
type ClinicalDocument struct {
	XMLName               xml.Name               `xml:"urn:hl7-org:v3 ClinicalDocument"`
	RealmCode             CS                     `xml:"realmCode"`
	TypeID                II                     `xml:"typeId"`
	TemplateIDs           []II                   `xml:"templateId"`
	ID                    II                     `xml:"id"`
	Code                  CE                     `xml:"code"`
	Title                 string                 `xml:"title"`
	EffectiveTime         TS                     `xml:"effectiveTime"`
	ConfidentialityCode   CE                     `xml:"confidentialityCode"`
	LanguageCode          CS                     `xml:"languageCode"`
	SetID                 *II                    `xml:"setId,omitempty"`
	VersionNumber         *INT                   `xml:"versionNumber,omitempty"`
	RecordTarget          *RecordTarget          `xml:"recordTarget,omitempty"`
	Authors               []Author               `xml:"author"`
	Custodian             *Custodian             `xml:"custodian,omitempty"`
	InformationRecipients []InformationRecipient `xml:"informationRecipient"`
	LegalAuthenticator    *LegalAuthenticator    `xml:"legalAuthenticator,omitempty"`
	Participants          []Participant          `xml:"participant"`
	Component             Component              `xml:"component"`
}

// II is an instance identifier.
type II struct {
	Root                   string `xml:"root,attr,omitempty"`
	Extension              string `xml:"extension,attr,omitempty"`
	AssigningAuthorityName string `xml:"assigningAuthorityName,attr,omitempty"`
}

// CS is a simple code.
type CS struct {
	Code string `xml:"code,attr,omitempty"`
}

// CE is a coded value with optional original text and translations.
type CE struct {
	Code           string `xml:"code,attr,omitempty"`
	CodeSystem     string `xml:"codeSystem,attr,omitempty"`
	CodeSystemName string `xml:"codeSystemName,attr,omitempty"`
	DisplayName    string `xml:"displayName,attr,omitempty"`
	NullFlavor     string `xml:"nullFlavor,attr,omitempty"`
	OriginalText   string `xml:"originalText,omitempty"`
	Translations   []CE   `xml:"translation"`
}

// TS is a point in time.
type TS struct {
	Value      string `xml:"value,attr,omitempty"`
	NullFlavor string `xml:"nullFlavor,attr,omitempty"`
}

// IVLTS is an interval of time.
type IVLTS struct {
	Low   *TS `xml:"low,omitempty"`
	High  *TS `xml:"high,omitempty"`
	Width *PQ `xml:"width,omitempty"`
}

// PQ is a physical quantity.
type PQ struct {
	Value string `xml:"value,attr"`
	Unit  string `xml:"unit,attr,omitempty"`
}

// INT is an integer value.
type INT struct {
	Value int `xml:"value,attr"`
}

// PN is a person name.
type PN struct {
	Use    string   `xml:"use,attr,omitempty"`
	Prefix []string `xml:"prefix"`
	Given  []string `xml:"given"`
	Family string   `xml:"family,omitempty"`
	Suffix []string `xml:"suffix"`
}

// AD is a postal address.
type AD struct {
	Use               string   `xml:"use,attr,omitempty"`
	StreetAddressLine []string `xml:"streetAddressLine"`
	City              string   `xml:"city,omitempty"`
	State             string   `xml:"state,omitempty"`
	PostalCode        string   `xml:"postalCode,omitempty"`
	Country           string   `xml:"country,omitempty"`
}

// TEL is a telecommunication address.
type TEL struct {
	Value string `xml:"value,attr"`
	Use   string `xml:"use,attr,omitempty"`
}

// Person is a named person entity.
type Person struct {
	Names []PN `xml:"name"`
}

// Organization is an organisation entity.
type Organization struct {
	IDs     []II   `xml:"id"`
	Name    string `xml:"name,omitempty"`
	Telecom []TEL  `xml:"telecom"`
	Addr    []AD   `xml:"addr"`
}

// RecordTarget carries the subject of care.
type RecordTarget struct {
	PatientRole PatientRole `xml:"patientRole"`
}

// PatientRole is the subject of care in the role of patient.
type PatientRole struct {
	IDs     []II    `xml:"id"`
	Addr    []AD    `xml:"addr"`
	Telecom []TEL   `xml:"telecom"`
	Patient Patient `xml:"patient"`
}

// Patient holds the subject's demographics.
type Patient struct {
	Names                    []PN `xml:"name"`
	AdministrativeGenderCode CE   `xml:"administrativeGenderCode"`
	BirthTime                TS   `xml:"birthTime"`
	EthnicGroupCode          *CE  `xml:"ethnicGroupCode,omitempty"`
}

// Author is a document author.
type Author struct {
	Time           TS             `xml:"time"`
	AssignedAuthor AssignedEntity `xml:"assignedAuthor"`
}

// AssignedEntity is a healthcare provider acting for an organisation.
type AssignedEntity struct {
	IDs                     []II          `xml:"id"`
	Code                    *CE           `xml:"code,omitempty"`
	Addr                    []AD          `xml:"addr"`
	Telecom                 []TEL         `xml:"telecom"`
	AssignedPerson          *Person       `xml:"assignedPerson,omitempty"`
	RepresentedOrganization *Organization `xml:"representedOrganization,omitempty"`
}

// Custodian is the organisation maintaining the document.
type Custodian struct {
	AssignedCustodian struct {
		Organization Organization `xml:"representedCustodianOrganization"`
	} `xml:"assignedCustodian"`
}

// LegalAuthenticator is the person who attested the document.
type LegalAuthenticator struct {
	Time           TS             `xml:"time"`
	SignatureCode  CS             `xml:"signatureCode"`
	AssignedEntity AssignedEntity `xml:"assignedEntity"`
}

// InformationRecipient is a person or organisation the document is sent to.
type InformationRecipient struct {
	TypeCode          string            `xml:"typeCode,attr,omitempty"`
	IntendedRecipient IntendedRecipient `xml:"intendedRecipient"`
}

// IntendedRecipient identifies the recipient.
type IntendedRecipient struct {
	IDs                  []II          `xml:"id"`
	Addr                 []AD          `xml:"addr"`
	Telecom              []TEL         `xml:"telecom"`
	InformationRecipient *Person       `xml:"informationRecipient,omitempty"`
	ReceivedOrganization *Organization `xml:"receivedOrganization,omitempty"`
}

// Participant is any other party to the document, such as a referee.
type Participant struct {
	TypeCode         string           `xml:"typeCode,attr"`
	FunctionCode     *CE              `xml:"functionCode,omitempty"`
	Time             *IVLTS           `xml:"time,omitempty"`
	AssociatedEntity AssociatedEntity `xml:"associatedEntity"`
}

// AssociatedEntity is the entity playing a participant role.
type AssociatedEntity struct {
	ClassCode           string        `xml:"classCode,attr"`
	IDs                 []II          `xml:"id"`
	Code                *CE           `xml:"code,omitempty"`
	Addr                []AD          `xml:"addr"`
	Telecom             []TEL         `xml:"telecom"`
	AssociatedPerson    *Person       `xml:"associatedPerson,omitempty"`
	ScopingOrganization *Organization `xml:"scopingOrganization,omitempty"`
}

// Component is the document body.
type Component struct {
	StructuredBody StructuredBody `xml:"structuredBody"`
}

// StructuredBody holds the document sections.
type StructuredBody struct {
	Components []SectionComponent `xml:"component"`
}

// SectionComponent wraps a section.
type SectionComponent struct {
	Section Section `xml:"section"`
}

// Section is a titled, coded block of narrative.
type Section struct {
	ID    II         `xml:"id"`
	Code  CE         `xml:"code"`
	Title string     `xml:"title"`
	Text  *Narrative `xml:"text,omitempty"`
}

// Narrative is the human-readable content of a section.
type Narrative struct {
	Paragraphs []string `xml:"paragraph"`
	Lists      []List   `xml:"list"`
	Tables     []Table  `xml:"table"`
}

// List is an unordered narrative list.
type List struct {
	Items []string `xml:"item"`
}

// Table is a narrative table.
type Table struct {
	Border string   `xml:"border,attr,omitempty"`
	Head   []string `xml:"thead>tr>th"`
	Rows   []Row    `xml:"tbody>tr"`
}

// Row is a narrative table row.
type Row struct {
	Cells []string `xml:"td"`
}

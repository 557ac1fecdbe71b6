package model

import (
	"github.com/google/uuid"

	"github.com/gofhir/cda/validation"
	"github.com/gofhir/cda/vocab"
)

// Person is a human participant.
type Person struct {
	PersonNames                  []PersonName                  `xml:"PersonName,omitempty"`
	Identifiers                  []Identifier                  `xml:"Identifier,omitempty"`
	Sex                          vocab.Sex                     `xml:",omitempty"`
	DateOfBirth                  *ISO8601DateTime              `xml:",omitempty"`
	DateOfBirthCalculatedFromAge bool                          `xml:",omitempty"`
	Age                          *Quantity                     `xml:",omitempty"`
	IndigenousStatus             vocab.IndigenousStatus        `xml:",omitempty"`
	DateOfDeath                  *ISO8601DateTime              `xml:",omitempty"`
	SourceOfDeathNotification    vocab.DeathNotificationSource `xml:",omitempty"`
	Employment                   *Employment                   `xml:",omitempty"`
}

// Organisation is an organisational participant.
type Organisation struct {
	Name        string                      `xml:",omitempty"`
	Department  string                      `xml:",omitempty"`
	NameUsage   vocab.OrganisationNameUsage `xml:",omitempty"`
	Identifiers []Identifier                `xml:"Identifier,omitempty"`
}

// Employment describes where and as what a person works.
type Employment struct {
	Organisation           *Organisation    `xml:",omitempty"`
	Occupation             vocab.Occupation `xml:",omitempty"`
	PositionInOrganisation *CodableText     `xml:",omitempty"`
	EmploymentType         *CodableText     `xml:",omitempty"`
}

// Participant is the entity playing a participation: a person, an
// organisation or both, with its contact details and entitlements.
type Participant struct {
	UniqueIdentifier               uuid.UUID
	Person                         *Person                         `xml:",omitempty"`
	Organisation                   *Organisation                   `xml:",omitempty"`
	Addresses                      []Address                       `xml:"Address,omitempty"`
	ElectronicCommunicationDetails []ElectronicCommunicationDetail `xml:"ElectronicCommunicationDetail,omitempty"`
	Entitlements                   []Entitlement                   `xml:"Entitlement,omitempty"`
}

// Participation binds a participant to the role it plays in a document.
type Participation struct {
	Role        *CodableText `xml:",omitempty"`
	Participant *Participant `xml:",omitempty"`
}

// NewPerson returns an empty person.
func NewPerson() *Person {
	return &Person{}
}

// NewOrganisation returns an empty organisation.
func NewOrganisation() *Organisation {
	return &Organisation{}
}

// NewEmployment returns an empty employment.
func NewEmployment() *Employment {
	return &Employment{}
}

// NewParticipant returns a participant with a fresh unique identifier.
func NewParticipant() *Participant {
	return &Participant{UniqueIdentifier: uuid.New()}
}

// NewRole returns the coded form of an occupation, for Participation.Role.
func NewRole(o vocab.Occupation) *CodableText {
	return NewCodableTextFromVocab(o)
}

// Name returns the first person name, or nil.
func (p *Person) Name() *PersonName {
	if len(p.PersonNames) == 0 {
		return nil
	}
	return &p.PersonNames[0]
}

// HealthIdentifier returns the first identifier of type t, or nil.
func (p *Person) HealthIdentifier(t vocab.HealthIdentifierType) *Identifier {
	return findHealthIdentifier(p.Identifiers, t)
}

// Validate requires at least one name, and a death notification source and
// consistent dates when a date of death is set.
func (p *Person) Validate(path string, v *validation.Builder) {
	if v.ArgumentRequiredCheck(path+".PersonNames", p.PersonNames) {
		validation.ValidateEach(v, path+".PersonNames", ptrs(p.PersonNames))
	}
	validation.ValidateEach(v, path+".Identifiers", ptrs(p.Identifiers))
	validation.Validate(v, path+".Age", p.Age)
	if p.DateOfDeath != nil {
		v.ArgumentRequiredCheck(path+".SourceOfDeathNotification", p.SourceOfDeathNotification)
		if p.DateOfBirth != nil && p.DateOfDeath.Before(p.DateOfBirth) {
			v.AddValidationMessage(path+".DateOfDeath", p.DateOfDeath.String(), "date of death is before date of birth")
		}
	}
	validation.Validate(v, path+".Employment", p.Employment)
}

// Validate checks the organisation identifiers.
func (o *Organisation) Validate(path string, v *validation.Builder) {
	validation.ValidateEach(v, path+".Identifiers", ptrs(o.Identifiers))
}

// Validate reports the required fields of the employment missing under path.
func (e *Employment) Validate(path string, v *validation.Builder) {
	if v.ArgumentRequiredCheck(path+".Organisation", e.Organisation) {
		v.ArgumentRequiredCheck(path+".Organisation.Name", e.Organisation.Name)
		e.Organisation.Validate(path+".Organisation", v)
	}
	validation.Validate(v, path+".PositionInOrganisation", e.PositionInOrganisation)
	validation.Validate(v, path+".EmploymentType", e.EmploymentType)
}

// Validate checks whichever of person and organisation are present, with their
// addresses, communication details and entitlements.
func (p *Participant) Validate(path string, v *validation.Builder) {
	validation.Validate(v, path+".Person", p.Person)
	validation.Validate(v, path+".Organisation", p.Organisation)
	validation.ValidateEach(v, path+".Addresses", ptrs(p.Addresses))
	validation.ValidateEach(v, path+".ElectronicCommunicationDetails", ptrs(p.ElectronicCommunicationDetails))
	validation.ValidateEach(v, path+".Entitlements", ptrs(p.Entitlements))
}

// ptrs returns pointers to the elements of s so value slices can be
// validated through pointer-receiver methods.
func ptrs[T any](s []T) []*T {
	out := make([]*T, len(s))
	for i := range s {
		out[i] = &s[i]
	}
	return out
}

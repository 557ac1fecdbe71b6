package model

import (
	"github.com/gofhir/cda/validation"
	"github.com/gofhir/cda/vocab"
)

// Author is the healthcare provider who authored a document.
type Author struct {
	Participation
	DateTimeAuthored *ISO8601DateTime `xml:",omitempty"`
}

// Custodian is the organisation responsible for maintaining a document.
type Custodian struct {
	Participation
}

// LegalAuthenticator is the person who attested to a document.
type LegalAuthenticator struct {
	Participation
	DateTimeAuthenticated *ISO8601DateTime `xml:",omitempty"`
}

// InformationRecipient is a person or organisation a document is sent to.
type InformationRecipient struct {
	Participation
	RecipientType vocab.RecipientType `xml:",omitempty"`
}

// SubjectOfCare is the patient a document is about.
type SubjectOfCare struct {
	Participation
}

// Referee is the provider a patient is referred to.
type Referee struct {
	Participation
}

// Referrer is the provider who referred the patient to the author.
type Referrer struct {
	Participation
	DateTimeOfReferral *ISO8601DateTime `xml:",omitempty"`
}

// UsualGP is the patient's usual general practitioner or practice.
type UsualGP struct {
	Participation
}

// NominatedContact is a person nominated by the patient as a contact.
type NominatedContact struct {
	Participation
	Relationship vocab.RelationshipType `xml:",omitempty"`
}

// ReportingPathologist is the pathologist responsible for a test result.
type ReportingPathologist struct {
	Participation
	DateTimeReported *ISO8601DateTime `xml:",omitempty"`
}

// Requester is the provider who requested a pathology test.
type Requester struct {
	Participation
	DateTimeRequested *ISO8601DateTime `xml:",omitempty"`
}

// Prescriber is the provider who wrote a prescription.
type Prescriber struct {
	Participation
}

// PrescriberOrganisation is the practice a prescription was written at.
type PrescriberOrganisation struct {
	Participation
}

// Dispenser is the pharmacist who dispensed a medicine.
type Dispenser struct {
	Participation
}

// DispenserOrganisation is the pharmacy a medicine was dispensed at.
type DispenserOrganisation struct {
	Participation
}

// HealthcareFacility is the facility an encounter took place at.
type HealthcareFacility struct {
	Participation
}

// NewAuthor returns an empty Author participation.
func NewAuthor() *Author { return &Author{} }

// NewCustodian returns an empty Custodian participation.
func NewCustodian() *Custodian { return &Custodian{} }

// NewLegalAuthenticator returns an empty LegalAuthenticator participation.
func NewLegalAuthenticator() *LegalAuthenticator { return &LegalAuthenticator{} }

// NewInformationRecipient returns an empty InformationRecipient participation.
func NewInformationRecipient() *InformationRecipient { return &InformationRecipient{} }

// NewSubjectOfCare returns an empty SubjectOfCare participation.
func NewSubjectOfCare() *SubjectOfCare { return &SubjectOfCare{} }

// NewReferee returns an empty Referee participation.
func NewReferee() *Referee { return &Referee{} }

// NewReferrer returns an empty Referrer participation.
func NewReferrer() *Referrer { return &Referrer{} }

// NewUsualGP returns an empty UsualGP participation.
func NewUsualGP() *UsualGP { return &UsualGP{} }

// NewNominatedContact returns an empty NominatedContact participation.
func NewNominatedContact() *NominatedContact { return &NominatedContact{} }

// NewReportingPathologist returns an empty ReportingPathologist participation.
func NewReportingPathologist() *ReportingPathologist { return &ReportingPathologist{} }

// NewRequester returns an empty Requester participation.
func NewRequester() *Requester { return &Requester{} }

// NewPrescriber returns an empty Prescriber participation.
func NewPrescriber() *Prescriber { return &Prescriber{} }

// NewPrescriberOrganisation returns an empty PrescriberOrganisation participation.
func NewPrescriberOrganisation() *PrescriberOrganisation { return &PrescriberOrganisation{} }

// NewDispenser returns an empty Dispenser participation.
func NewDispenser() *Dispenser { return &Dispenser{} }

// NewDispenserOrganisation returns an empty DispenserOrganisation participation.
func NewDispenserOrganisation() *DispenserOrganisation { return &DispenserOrganisation{} }

// NewHealthcareFacility returns an empty HealthcareFacility participation.
func NewHealthcareFacility() *HealthcareFacility { return &HealthcareFacility{} }

func (p *Participation) requireRole(path string, v *validation.Builder) {
	if v.ArgumentRequiredCheck(path+".Role", p.Role) {
		p.Role.Validate(path+".Role", v)
	}
}

func (p *Participation) requirePerson(path string, v *validation.Builder) *Person {
	if !v.ArgumentRequiredCheck(path+".Participant", p.Participant) {
		return nil
	}
	if !v.ArgumentRequiredCheck(path+".Participant.Person", p.Participant.Person) {
		return nil
	}
	return p.Participant.Person
}

func (p *Participation) requireOrganisation(path string, v *validation.Builder) *Organisation {
	if !v.ArgumentRequiredCheck(path+".Participant", p.Participant) {
		return nil
	}
	if !v.ArgumentRequiredCheck(path+".Participant.Organisation", p.Participant.Organisation) {
		return nil
	}
	v.ArgumentRequiredCheck(path+".Participant.Organisation.Name", p.Participant.Organisation.Name)
	return p.Participant.Organisation
}

func (p *Participation) requirePersonOrOrganisation(path string, v *validation.Builder) bool {
	if !v.ArgumentRequiredCheck(path+".Participant", p.Participant) {
		return false
	}
	if p.Participant.Person == nil && p.Participant.Organisation == nil {
		v.AddValidationMessage(path+".Participant", "", "a person or an organisation is required")
		return false
	}
	return true
}

func (p *Participation) validateParticipant(path string, v *validation.Builder) {
	if p.Role != nil {
		p.Role.Validate(path+".Role", v)
	}
	if p.Participant != nil {
		p.Participant.Validate(path+".Participant", v)
	}
}

// Validate reports the required fields of the author missing under path.
func (a *Author) Validate(path string, v *validation.Builder) {
	v.ArgumentRequiredCheck(path+".Role", a.Role)
	v.ArgumentRequiredCheck(path+".DateTimeAuthored", a.DateTimeAuthored)
	if person := a.requirePerson(path, v); person != nil {
		requireHealthIdentifier(v, path+".Participant.Person.Identifiers", person.Identifiers, vocab.HealthIdentifierHPII)
	}
	a.validateParticipant(path, v)
}

// Validate reports the required fields of the custodian missing under path.
func (c *Custodian) Validate(path string, v *validation.Builder) {
	if org := c.requireOrganisation(path, v); org != nil {
		requireHealthIdentifier(v, path+".Participant.Organisation.Identifiers", org.Identifiers, vocab.HealthIdentifierHPIO)
	}
	c.validateParticipant(path, v)
}

// Validate reports the required fields of the legal authenticator missing under path.
func (l *LegalAuthenticator) Validate(path string, v *validation.Builder) {
	v.ArgumentRequiredCheck(path+".DateTimeAuthenticated", l.DateTimeAuthenticated)
	l.requirePerson(path, v)
	l.validateParticipant(path, v)
}

// Validate reports the required fields of the information recipient missing under path.
func (r *InformationRecipient) Validate(path string, v *validation.Builder) {
	v.ArgumentRequiredCheck(path+".RecipientType", r.RecipientType)
	r.requirePersonOrOrganisation(path, v)
	r.validateParticipant(path, v)
}

// Validate reports the required fields of the subject of care missing under path.
func (s *SubjectOfCare) Validate(path string, v *validation.Builder) {
	if person := s.requirePerson(path, v); person != nil {
		pp := path + ".Participant.Person"
		v.ArgumentRequiredCheck(pp+".Sex", person.Sex)
		v.ArgumentRequiredCheck(pp+".DateOfBirth", person.DateOfBirth)
		v.ArgumentRequiredCheck(pp+".IndigenousStatus", person.IndigenousStatus)
		v.RangeCheck(path+".Participant.Addresses", len(s.Participant.Addresses), 1, -1)
	}
	s.validateParticipant(path, v)
}

// Validate reports the required fields of the referee missing under path.
func (r *Referee) Validate(path string, v *validation.Builder) {
	if r.requirePersonOrOrganisation(path, v) {
		v.RangeCheck(path+".Participant.Addresses", len(r.Participant.Addresses), 1, -1)
		v.RangeCheck(path+".Participant.ElectronicCommunicationDetails", len(r.Participant.ElectronicCommunicationDetails), 1, -1)
	}
	r.validateParticipant(path, v)
}

// Validate reports the required fields of the referrer missing under path.
func (r *Referrer) Validate(path string, v *validation.Builder) {
	v.ArgumentRequiredCheck(path+".DateTimeOfReferral", r.DateTimeOfReferral)
	r.requirePerson(path, v)
	r.validateParticipant(path, v)
}

// Validate reports the required fields of the usual GP missing under path.
func (u *UsualGP) Validate(path string, v *validation.Builder) {
	u.requirePersonOrOrganisation(path, v)
	u.validateParticipant(path, v)
}

// Validate reports the required fields of the nominated contact missing under path.
func (n *NominatedContact) Validate(path string, v *validation.Builder) {
	v.ArgumentRequiredCheck(path+".Relationship", n.Relationship)
	n.requirePerson(path, v)
	n.validateParticipant(path, v)
}

// Validate reports the required fields of the reporting pathologist missing under path.
func (r *ReportingPathologist) Validate(path string, v *validation.Builder) {
	r.requireRole(path, v)
	if person := r.requirePerson(path, v); person != nil {
		requireHealthIdentifier(v, path+".Participant.Person.Identifiers", person.Identifiers, vocab.HealthIdentifierHPII)
	}
	if r.Participant != nil {
		r.Participant.Validate(path+".Participant", v)
	}
}

// Validate reports the required fields of the requester missing under path.
func (r *Requester) Validate(path string, v *validation.Builder) {
	r.requirePersonOrOrganisation(path, v)
	r.validateParticipant(path, v)
}

// Validate reports the required fields of the prescriber missing under path.
func (p *Prescriber) Validate(path string, v *validation.Builder) {
	v.ArgumentRequiredCheck(path+".Role", p.Role)
	if p.requirePerson(path, v) != nil && !hasEntitlement(p.Participant.Entitlements, vocab.EntitlementMedicarePrescriberNumber) {
		v.AddValidationMessage(path+".Participant.Entitlements", "", "a Medicare prescriber number is required")
	}
	p.validateParticipant(path, v)
}

// Validate reports the required fields of the prescriber organisation missing under path.
func (p *PrescriberOrganisation) Validate(path string, v *validation.Builder) {
	if p.requireOrganisation(path, v) != nil {
		v.RangeCheck(path+".Participant.Addresses", len(p.Participant.Addresses), 1, -1)
		v.RangeCheck(path+".Participant.ElectronicCommunicationDetails", len(p.Participant.ElectronicCommunicationDetails), 1, -1)
	}
	p.validateParticipant(path, v)
}

// Validate reports the required fields of the dispenser missing under path.
func (d *Dispenser) Validate(path string, v *validation.Builder) {
	d.requirePerson(path, v)
	d.validateParticipant(path, v)
}

// Validate reports the required fields of the dispenser organisation missing under path.
func (d *DispenserOrganisation) Validate(path string, v *validation.Builder) {
	if d.requireOrganisation(path, v) != nil {
		v.RangeCheck(path+".Participant.Addresses", len(d.Participant.Addresses), 1, -1)
		if !hasEntitlement(d.Participant.Entitlements, vocab.EntitlementMedicarePharmacyApprovalNum) {
			v.AddValidationMessage(path+".Participant.Entitlements", "", "a pharmacy approval number is required")
		}
	}
	d.validateParticipant(path, v)
}

// Validate reports the required fields of the healthcare facility missing under path.
func (h *HealthcareFacility) Validate(path string, v *validation.Builder) {
	if h.requireOrganisation(path, v) != nil {
		v.RangeCheck(path+".Participant.Addresses", len(h.Participant.Addresses), 1, -1)
	}
	h.validateParticipant(path, v)
}

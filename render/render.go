// Package render maps a document onto an HL7 CDA R2 ClinicalDocument with
// generated section narrative.
package render

import (
	"bytes"
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	cda "github.com/gofhir/cda"
	"github.com/gofhir/cda/document"
	"github.com/gofhir/cda/model"
	"github.com/gofhir/cda/vocab"
)

// ErrIncomplete is returned when a document lacks the header parts every
// ClinicalDocument needs. Run validation first to find out which.
var ErrIncomplete = errors.New("document is incomplete")

const (
	typeIDRoot      = "2.16.840.1.113883.1.3"
	typeIDExtension = "POCD_HD000040"
	realmCode       = "AU"
	languageCode    = "en-AU"
	uuidRoot        = "urn:uuid:"
)

// Renderer builds ClinicalDocuments.
type Renderer struct {
	narrative bool
}

// NewRenderer returns a renderer. When narrative is false, sections are
// emitted with code and title only.
func NewRenderer(narrative bool) *Renderer {
	return &Renderer{narrative: narrative}
}

// Render returns doc as indented CDA XML with narrative.
func Render(doc document.Document) ([]byte, error) {
	return NewRenderer(true).Render(doc)
}

// Render returns doc as indented CDA XML.
func (r *Renderer) Render(doc document.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Encode(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes doc to w as CDA XML.
func (r *Renderer) Encode(w io.Writer, doc document.Document) error {
	cd, err := r.Build(doc)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return errors.Wrap(err, "write xml header")
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(cd); err != nil {
		return errors.Wrapf(err, "encode %s", doc.DocumentType())
	}
	_, err = io.WriteString(w, "\n")
	return errors.Wrap(err, "write trailing newline")
}

// Build maps doc onto a ClinicalDocument.
func (r *Renderer) Build(doc document.Document) (*ClinicalDocument, error) {
	if doc == nil {
		return nil, errors.Wrap(ErrIncomplete, "nil document")
	}
	dt := doc.DocumentType()
	info, ok := dt.Info()
	if !ok {
		return nil, cda.NewArgumentError("documentType", string(dt), "is not a supported document type")
	}
	h := doc.Header()
	if h == nil || h.CDAContext == nil || h.CDAContext.DocumentID == nil || h.DocumentCreationTime == nil {
		return nil, errors.Wrapf(ErrIncomplete, "%s header", dt)
	}
	subject := doc.Subject()
	if subject == nil || subject.Participant == nil || subject.Participant.Person == nil {
		return nil, errors.Wrapf(ErrIncomplete, "%s subject of care", dt)
	}

	ctx := h.CDAContext
	cd := &ClinicalDocument{
		RealmCode: CS{Code: realmCode},
		TypeID:    II{Root: typeIDRoot, Extension: typeIDExtension},
		TemplateIDs: []II{
			{Root: info.TemplateID, Extension: info.TemplateVersion},
		},
		ID: ii(ctx.DocumentID),
		Code: CE{
			Code:           info.Code,
			CodeSystem:     info.CodeSystem,
			CodeSystemName: info.CodeSystemName,
			DisplayName:    info.DisplayName,
		},
		Title:               info.Title,
		EffectiveTime:       ts(h.DocumentCreationTime),
		ConfidentialityCode: CE{NullFlavor: string(vocab.NullFlavourNotApplicable)},
		LanguageCode:        CS{Code: languageCode},
		RecordTarget:        recordTarget(subject),
	}
	if ctx.SetID != nil {
		id := ii(ctx.SetID)
		cd.SetID = &id
	}
	if ctx.Version > 0 {
		cd.VersionNumber = &INT{Value: ctx.Version}
	}
	if a := authorOf(doc); a != nil {
		cd.Authors = append(cd.Authors, *a)
	}
	if ctx.Custodian != nil && ctx.Custodian.Participant != nil {
		cd.Custodian = &Custodian{}
		cd.Custodian.AssignedCustodian.Organization = organization(ctx.Custodian.Participant, ctx.Custodian.Participant.Organisation)
	}
	for i := range ctx.InformationRecipients {
		cd.InformationRecipients = append(cd.InformationRecipients, informationRecipient(&ctx.InformationRecipients[i]))
	}
	if la := ctx.LegalAuthenticator; la != nil && la.Participant != nil {
		cd.LegalAuthenticator = &LegalAuthenticator{
			Time:           ts(la.DateTimeAuthenticated),
			SignatureCode:  CS{Code: "S"},
			AssignedEntity: assignedEntity(&la.Participation),
		}
	}
	cd.Participants = participantsOf(doc)

	for i, s := range sectionsOf(doc) {
		s.ID = uuidII(sectionID(ctx.DocumentID, i))
		if !r.narrative {
			s.Text = nil
		}
		cd.Component.StructuredBody.Components = append(cd.Component.StructuredBody.Components, SectionComponent{Section: s})
	}
	return cd, nil
}

// --- data types ---

func ii(id *model.Identifier) II {
	if id == nil {
		return II{}
	}
	if _, err := uuid.Parse(id.Root); err == nil && id.Extension == "" {
		return II{Root: strings.ToUpper(id.Root), AssigningAuthorityName: id.AssigningAuthorityName}
	}
	return II{Root: id.Root, Extension: id.Extension, AssigningAuthorityName: id.AssigningAuthorityName}
}

// sectionID derives a stable section identifier from the document
// identifier and the section's position.
func sectionID(doc *model.Identifier, i int) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(doc.Root+"^"+doc.Extension+"#"+strconv.Itoa(i)))
}

func uuidII(u uuid.UUID) II {
	return II{Root: strings.ToUpper(u.String())}
}

func ce(c *model.CodableText) CE {
	if c == nil {
		return CE{NullFlavor: string(vocab.NullFlavourNoInformation)}
	}
	out := CE{
		Code:           c.Code,
		CodeSystem:     c.CodeSystem,
		CodeSystemName: c.CodeSystemName,
		DisplayName:    c.DisplayName,
		NullFlavor:     string(c.NullFlavour),
		OriginalText:   c.OriginalText,
	}
	for i := range c.Translations {
		out.Translations = append(out.Translations, ce(&c.Translations[i]))
	}
	return out
}

func coded(v vocab.Coded) CE {
	return ce(model.NewCodableTextFromVocab(v))
}

func ts(t *model.ISO8601DateTime) TS {
	if t == nil {
		return TS{NullFlavor: string(vocab.NullFlavourNoInformation)}
	}
	return TS{Value: t.String()}
}

func pn(n model.PersonName) PN {
	out := PN{
		Prefix: n.Titles,
		Given:  n.GivenNames,
		Family: n.FamilyName,
		Suffix: n.NameSuffixes,
	}
	for _, u := range n.NameUsages {
		if u == vocab.NameUsageLegal {
			out.Use = "L"
		}
	}
	return out
}

func ad(a model.Address) AD {
	out := AD{Use: a.AddressPurpose.HL7Use()}
	switch {
	case a.AustralianAddress != nil:
		au := a.AustralianAddress
		out.StreetAddressLine = au.Lines()
		out.City = au.SuburbTownLocality
		out.State = string(au.State)
		out.PostalCode = au.PostCode
		out.Country = vocab.CountryAustralia.DisplayName()
	case a.InternationalAddress != nil:
		in := a.InternationalAddress
		out.StreetAddressLine = in.AddressLines
		out.State = in.StateProvince
		out.PostalCode = in.PostCode
		out.Country = in.Country.DisplayName()
	}
	return out
}

func tel(e model.ElectronicCommunicationDetail) TEL {
	out := TEL{Value: e.URI()}
	if len(e.Usages) > 0 {
		codes := make([]string, len(e.Usages))
		for i, u := range e.Usages {
			codes[i] = string(u)
		}
		out.Use = strings.Join(codes, " ")
	}
	return out
}

// --- participants ---

func addrs(p *model.Participant) []AD {
	var out []AD
	for _, a := range p.Addresses {
		out = append(out, ad(a))
	}
	return out
}

func telecoms(p *model.Participant) []TEL {
	var out []TEL
	for _, e := range p.ElectronicCommunicationDetails {
		out = append(out, tel(e))
	}
	return out
}

// ids returns the participant's unique identifier followed by its person
// and entitlement identifiers.
func ids(p *model.Participant) []II {
	out := []II{uuidII(p.UniqueIdentifier)}
	if p.Person != nil {
		for i := range p.Person.Identifiers {
			out = append(out, ii(&p.Person.Identifiers[i]))
		}
	}
	for _, e := range p.Entitlements {
		if e.ID != nil {
			out = append(out, ii(e.ID))
		}
	}
	return out
}

func person(p *model.Person) *Person {
	if p == nil {
		return nil
	}
	out := &Person{}
	for _, n := range p.PersonNames {
		out.Names = append(out.Names, pn(n))
	}
	return out
}

// organization maps o, taking contact details from p when o is the
// participant's only entity.
func organization(p *model.Participant, o *model.Organisation) Organization {
	out := Organization{}
	if o == nil {
		return out
	}
	out.Name = o.Name
	for i := range o.Identifiers {
		out.IDs = append(out.IDs, ii(&o.Identifiers[i]))
	}
	if p != nil && p.Person == nil {
		out.Addr = addrs(p)
		out.Telecom = telecoms(p)
		for _, e := range p.Entitlements {
			if e.ID != nil {
				out.IDs = append(out.IDs, ii(e.ID))
			}
		}
	}
	return out
}

func organizationPtr(p *model.Participant, o *model.Organisation) *Organization {
	if o == nil {
		return nil
	}
	org := organization(p, o)
	return &org
}

func assignedEntity(pt *model.Participation) AssignedEntity {
	p := pt.Participant
	out := AssignedEntity{IDs: ids(p), Addr: addrs(p), Telecom: telecoms(p), AssignedPerson: person(p.Person)}
	if pt.Role != nil {
		code := ce(pt.Role)
		out.Code = &code
	}
	switch {
	case p.Person != nil && p.Organisation != nil:
		out.RepresentedOrganization = organizationPtr(nil, p.Organisation)
	case p.Person != nil && p.Person.Employment != nil:
		out.RepresentedOrganization = organizationPtr(nil, p.Person.Employment.Organisation)
	}
	return out
}

func recordTarget(s *model.SubjectOfCare) *RecordTarget {
	p := s.Participant
	person := p.Person
	pt := Patient{
		AdministrativeGenderCode: coded(person.Sex),
		BirthTime:                ts(person.DateOfBirth),
	}
	if !person.Sex.IsValid() {
		pt.AdministrativeGenderCode = CE{NullFlavor: string(vocab.NullFlavourNoInformation)}
	}
	if person.IndigenousStatus.IsValid() {
		code := coded(person.IndigenousStatus)
		pt.EthnicGroupCode = &code
	}
	for _, n := range person.PersonNames {
		pt.Names = append(pt.Names, pn(n))
	}
	return &RecordTarget{PatientRole: PatientRole{
		IDs:     ids(p),
		Addr:    addrs(p),
		Telecom: telecoms(p),
		Patient: pt,
	}}
}

func author(t *model.ISO8601DateTime, pt *model.Participation) *Author {
	if pt == nil || pt.Participant == nil {
		return nil
	}
	return &Author{Time: ts(t), AssignedAuthor: assignedEntity(pt)}
}

// authorOf returns the provider responsible for doc. Prescriptions and
// dispense records are authored by the prescriber and dispenser, whose
// organisations are represented alongside them.
func authorOf(doc document.Document) *Author {
	created := doc.Header().DocumentCreationTime
	switch d := doc.(type) {
	case *document.EReferral:
		if d.SCSContext != nil && d.SCSContext.Author != nil {
			return author(d.SCSContext.Author.DateTimeAuthored, &d.SCSContext.Author.Participation)
		}
	case *document.SpecialistLetter:
		if d.SCSContext != nil && d.SCSContext.Author != nil {
			return author(d.SCSContext.Author.DateTimeAuthored, &d.SCSContext.Author.Participation)
		}
	case *document.DischargeSummary:
		if d.SCSContext != nil && d.SCSContext.Author != nil {
			return author(d.SCSContext.Author.DateTimeAuthored, &d.SCSContext.Author.Participation)
		}
	case *document.PathologyResultReport:
		if d.SCSContext != nil && d.SCSContext.Author != nil {
			return author(d.SCSContext.Author.DateTimeAuthored, &d.SCSContext.Author.Participation)
		}
	case *document.EPrescription:
		if d.SCSContext != nil && d.SCSContext.Prescriber != nil {
			a := author(created, &d.SCSContext.Prescriber.Participation)
			if a != nil && d.SCSContext.PrescriberOrganisation != nil && d.SCSContext.PrescriberOrganisation.Participant != nil {
				po := d.SCSContext.PrescriberOrganisation.Participant
				a.AssignedAuthor.RepresentedOrganization = organizationPtr(po, po.Organisation)
			}
			return a
		}
	case *document.DispenseRecord:
		if d.SCSContext != nil && d.SCSContext.Dispenser != nil {
			a := author(created, &d.SCSContext.Dispenser.Participation)
			if a != nil && d.SCSContext.DispenserOrganisation != nil && d.SCSContext.DispenserOrganisation.Participant != nil {
				do := d.SCSContext.DispenserOrganisation.Participant
				a.AssignedAuthor.RepresentedOrganization = organizationPtr(do, do.Organisation)
			}
			return a
		}
	}
	return nil
}

func informationRecipient(r *model.InformationRecipient) InformationRecipient {
	out := InformationRecipient{TypeCode: string(r.RecipientType)}
	if p := r.Participant; p != nil {
		out.IntendedRecipient = IntendedRecipient{
			IDs:                  ids(p),
			Addr:                 addrs(p),
			Telecom:              telecoms(p),
			InformationRecipient: person(p.Person),
			ReceivedOrganization: organizationPtr(nil, p.Organisation),
		}
	}
	return out
}

// HL7 ParticipationType codes for the participants carried outside the
// header roles.
const (
	typeReferredTo      = "REFT"
	typeReferredBy      = "REFB"
	typeParticipant     = "PART"
	typeIndirect        = "IND"
	typeLocation        = "LOC"
	classProvider       = "PROV"
	classContact        = "ECON"
	classServiceLoc     = "SDLOC"
	functionPrimaryCare = "PCP"
)

func participant(typeCode, classCode string, pt *model.Participation) *Participant {
	if pt == nil || pt.Participant == nil {
		return nil
	}
	p := pt.Participant
	out := &Participant{
		TypeCode: typeCode,
		AssociatedEntity: AssociatedEntity{
			ClassCode:           classCode,
			IDs:                 ids(p),
			Addr:                addrs(p),
			Telecom:             telecoms(p),
			AssociatedPerson:    person(p.Person),
			ScopingOrganization: organizationPtr(nil, p.Organisation),
		},
	}
	if pt.Role != nil {
		code := ce(pt.Role)
		out.AssociatedEntity.Code = &code
	}
	return out
}

func participantsOf(doc document.Document) []Participant {
	var out []Participant
	add := func(p *Participant) {
		if p != nil {
			out = append(out, *p)
		}
	}
	switch d := doc.(type) {
	case *document.EReferral:
		if c := d.SCSContext; c != nil {
			for i := range c.Referees {
				add(participant(typeReferredTo, classProvider, &c.Referees[i].Participation))
			}
			if c.UsualGP != nil {
				p := participant(typeParticipant, classProvider, &c.UsualGP.Participation)
				if p != nil {
					p.FunctionCode = &CE{Code: functionPrimaryCare, CodeSystem: "2.16.840.1.113883.5.88", CodeSystemName: "HL7 ParticipationFunction"}
				}
				add(p)
			}
			for i := range c.NominatedContacts {
				nc := &c.NominatedContacts[i]
				p := participant(typeIndirect, classContact, &nc.Participation)
				if p != nil && nc.Relationship.IsValid() {
					code := coded(nc.Relationship)
					p.AssociatedEntity.Code = &code
				}
				add(p)
			}
		}
	case *document.SpecialistLetter:
		if c := d.SCSContext; c != nil {
			if c.Referrer != nil {
				p := participant(typeReferredBy, classProvider, &c.Referrer.Participation)
				if p != nil && c.Referrer.DateTimeOfReferral != nil {
					t := ts(c.Referrer.DateTimeOfReferral)
					p.Time = &IVLTS{Low: &t}
				}
				add(p)
			}
			if c.UsualGP != nil {
				add(participant(typeParticipant, classProvider, &c.UsualGP.Participation))
			}
		}
	case *document.DischargeSummary:
		if c := d.SCSContext; c != nil && c.Facility != nil {
			add(participant(typeLocation, classServiceLoc, &c.Facility.Participation))
		}
	case *document.PathologyResultReport:
		if c := d.SCSContext; c != nil && c.Requester != nil {
			p := participant(typeReferredBy, classProvider, &c.Requester.Participation)
			if p != nil && c.Requester.DateTimeRequested != nil {
				t := ts(c.Requester.DateTimeRequested)
				p.Time = &IVLTS{Low: &t}
			}
			add(p)
		}
	}
	return out
}

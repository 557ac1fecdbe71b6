package sample

import (
	"fmt"
	"strings"

	randomdata "github.com/Pallinder/go-randomdata"

	"github.com/gofhir/cda/model"
	"github.com/gofhir/cda/vocab"
)

var (
	streetNames = []string{"Collins", "George", "Flinders", "Bourke", "Elizabeth", "Victoria", "Macquarie", "Hunter", "Adelaide", "Murray"}
	streetTypes = []string{"Street", "Road", "Avenue", "Parade", "Lane", "Crescent"}
	clinicNames = []string{"Medical Centre", "Family Practice", "Health Clinic", "Specialist Rooms", "Medical Group"}
	pharmacies  = []string{"Pharmacy", "Chemist", "Community Pharmacy", "Discount Chemist"}
	hospitals   = []string{"General Hospital", "Base Hospital", "Private Hospital", "District Hospital"}
	pathLabs    = []string{"Pathology", "Laboratories", "Diagnostic Pathology"}
)

var statePostcodes = map[vocab.AustralianState]int{
	vocab.StateNSW: 2000,
	vocab.StateVIC: 3000,
	vocab.StateQLD: 4000,
	vocab.StateSA:  5000,
	vocab.StateWA:  6000,
	vocab.StateTAS: 7000,
	vocab.StateACT: 2600,
	vocab.StateNT:  800,
}

var sampleStates = []vocab.AustralianState{
	vocab.StateNSW, vocab.StateVIC, vocab.StateQLD, vocab.StateSA,
	vocab.StateWA, vocab.StateTAS, vocab.StateACT, vocab.StateNT,
}

func (g *Generator) personName(gender int) model.PersonName {
	return model.PersonName{
		Titles:     []string{randomdata.Title(gender)},
		GivenNames: []string{randomdata.FirstName(gender)},
		FamilyName: randomdata.LastName(),
		NameUsages: []vocab.NameUsage{vocab.NameUsageLegal},
	}
}

func (g *Generator) clinician() *model.Person {
	name := g.personName(g.pick(2))
	name.Titles = []string{"Dr"}
	return &model.Person{
		PersonNames: []model.PersonName{name},
		Identifiers: []model.Identifier{g.healthIdentifier(vocab.HealthIdentifierHPII)},
	}
}

func (g *Generator) address(purpose vocab.AddressPurpose) model.Address {
	state := sampleStates[g.pick(len(sampleStates))]
	return model.Address{
		AddressPurpose: purpose,
		AustralianAddress: &model.AustralianAddress{
			StreetNumber:       fmt.Sprint(randomdata.Number(1, 400)),
			StreetName:         randomdata.StringSample(streetNames...),
			StreetType:         randomdata.StringSample(streetTypes...),
			SuburbTownLocality: randomdata.City(),
			State:              state,
			PostCode:           fmt.Sprintf("%04d", statePostcodes[state]+randomdata.Number(0, 99)),
		},
	}
}

func (g *Generator) phone(usage vocab.ElectronicCommunicationUsage) model.ElectronicCommunicationDetail {
	return *model.NewElectronicCommunicationDetail("0"+fmt.Sprint(2+g.pick(7))+" "+g.digits(4)+" "+g.digits(4), vocab.MediumTelephone, usage)
}

func (g *Generator) email(name string) model.ElectronicCommunicationDetail {
	local := strings.ToLower(strings.ReplaceAll(name, " ", "."))
	return *model.NewElectronicCommunicationDetail(local+"@example.org.au", vocab.MediumEmail, vocab.UsageWorkplace)
}

func (g *Generator) organisation(suffixes []string) *model.Organisation {
	name := randomdata.City() + " " + randomdata.StringSample(suffixes...)
	return &model.Organisation{
		Name:        name,
		NameUsage:   vocab.OrganisationNameBusiness,
		Identifiers: []model.Identifier{g.healthIdentifier(vocab.HealthIdentifierHPIO)},
	}
}

func (g *Generator) participant() *model.Participant {
	return &model.Participant{UniqueIdentifier: g.uuid()}
}

// cdaContext returns a header with a custodian, legal authenticator and a
// primary information recipient.
func (g *Generator) cdaContext() *model.CDAContext {
	custodian := g.participant()
	custodian.Organisation = g.organisation(clinicNames)
	custodian.Addresses = []model.Address{g.address(vocab.AddressPurposeBusiness)}

	authenticator := g.participant()
	authenticator.Person = g.clinician()

	recipient := g.participant()
	recipient.Person = g.clinician()
	recipient.Addresses = []model.Address{g.address(vocab.AddressPurposeBusiness)}

	return &model.CDAContext{
		DocumentID: g.uuidIdentifier(),
		SetID:      g.uuidIdentifier(),
		Version:    1,
		Custodian:  &model.Custodian{Participation: model.Participation{Participant: custodian}},
		LegalAuthenticator: &model.LegalAuthenticator{
			Participation:         model.Participation{Role: model.NewRole(vocab.OccupationGeneralPractitioner), Participant: authenticator},
			DateTimeAuthenticated: g.at(0),
		},
		InformationRecipients: []model.InformationRecipient{{
			Participation: model.Participation{Participant: recipient},
			RecipientType: vocab.RecipientPrimary,
		}},
	}
}

func (g *Generator) author(o vocab.Occupation) *model.Author {
	p := g.participant()
	p.Person = g.clinician()
	p.Person.Employment = &model.Employment{
		Organisation: &model.Organisation{Name: randomdata.City() + " " + randomdata.StringSample(clinicNames...)},
		Occupation:   o,
	}
	p.Addresses = []model.Address{g.address(vocab.AddressPurposeBusiness)}
	p.ElectronicCommunicationDetails = []model.ElectronicCommunicationDetail{g.phone(vocab.UsageWorkplace)}
	return &model.Author{
		Participation:    model.Participation{Role: model.NewRole(o), Participant: p},
		DateTimeAuthored: g.at(0),
	}
}

// subject returns a living patient with an IHI, a residential address and
// a Medicare card.
func (g *Generator) subject() *model.SubjectOfCare {
	gender := g.pick(2)
	sex := vocab.SexMale
	if gender == randomdata.Female {
		sex = vocab.SexFemale
	}
	born := g.now.AddDate(-(18 + g.pick(70)), -g.pick(12), -g.pick(28))

	medicare, err := model.NewMedicareEntitlement(g.MedicareNumber())
	if err != nil {
		panic(err)
	}

	p := g.participant()
	p.Person = &model.Person{
		PersonNames:      []model.PersonName{g.personName(gender)},
		Identifiers:      []model.Identifier{g.healthIdentifier(vocab.HealthIdentifierIHI)},
		Sex:              sex,
		DateOfBirth:      model.Date(born.Year(), born.Month(), born.Day()),
		IndigenousStatus: vocab.IndigenousStatusValues()[g.pick(len(vocab.IndigenousStatusValues()))],
	}
	p.Addresses = []model.Address{g.address(vocab.AddressPurposeResidential)}
	p.ElectronicCommunicationDetails = []model.ElectronicCommunicationDetail{g.phone(vocab.UsageHome)}
	p.Entitlements = []model.Entitlement{*medicare}
	return &model.SubjectOfCare{Participation: model.Participation{Participant: p}}
}

func (g *Generator) referee() model.Referee {
	p := g.participant()
	p.Person = g.clinician()
	p.Organisation = g.organisation(clinicNames)
	p.Addresses = []model.Address{g.address(vocab.AddressPurposeBusiness)}
	p.ElectronicCommunicationDetails = []model.ElectronicCommunicationDetail{
		g.phone(vocab.UsageWorkplace),
		g.email(p.Person.Name().GivenNames[0] + " " + p.Person.Name().FamilyName),
	}
	return model.Referee{Participation: model.Participation{Role: model.NewRole(vocab.OccupationSpecialistPhysician), Participant: p}}
}

func (g *Generator) usualGP() *model.UsualGP {
	p := g.participant()
	p.Person = g.clinician()
	p.Addresses = []model.Address{g.address(vocab.AddressPurposeBusiness)}
	return &model.UsualGP{Participation: model.Participation{Role: model.NewRole(vocab.OccupationGeneralPractitioner), Participant: p}}
}

func (g *Generator) nominatedContact() model.NominatedContact {
	p := g.participant()
	p.Person = &model.Person{PersonNames: []model.PersonName{g.personName(g.pick(2))}}
	p.ElectronicCommunicationDetails = []model.ElectronicCommunicationDetail{g.phone(vocab.UsageMobileContact)}
	relationships := []vocab.RelationshipType{vocab.RelationshipSpouse, vocab.RelationshipChild, vocab.RelationshipSibling, vocab.RelationshipFriend}
	return model.NominatedContact{
		Participation: model.Participation{Participant: p},
		Relationship:  relationships[g.pick(len(relationships))],
	}
}

func (g *Generator) prescriberNumber() string {
	return g.digits(7)
}

func (g *Generator) pharmacyApprovalNumber() string {
	return g.digits(5) + string(rune('A'+g.pick(26)))
}

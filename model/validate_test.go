package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofhir/cda/validation"
	"github.com/gofhir/cda/vocab"
)

func validate(item validation.Validatable, path string) []string {
	v := validation.NewBuilder()
	item.Validate(path, v)
	return v.Messages()
}

func testAddress() Address {
	return Address{
		AddressPurpose: vocab.AddressPurposeResidential,
		AustralianAddress: &AustralianAddress{
			StreetNumber:       "1",
			StreetName:         "Clinical",
			StreetType:         "St",
			SuburbTownLocality: "Hobart",
			State:              vocab.StateTAS,
			PostCode:           "7000",
		},
	}
}

func testPerson() *Person {
	return &Person{
		PersonNames: []PersonName{{GivenNames: []string{"Jane"}, FamilyName: "Citizen"}},
		Sex:         vocab.SexFemale,
		DateOfBirth: Date(1963, time.May, 24),
	}
}

func TestCDAContext_RequiredPaths(t *testing.T) {
	msgs := validate(&CDAContext{}, "CDAContext")
	assert.Equal(t, []string{
		"CDAContext.DocumentID: is required",
		"CDAContext.SetID: is required",
		"CDAContext.Custodian: is required",
	}, msgs)
}

func TestNewCDAContext(t *testing.T) {
	c := NewCDAContext()
	require.NotNil(t, c.DocumentID)
	require.NotNil(t, c.SetID)
	assert.NotEqual(t, c.DocumentID.Root, c.SetID.Root)
	assert.Equal(t, 1, c.Version)
	assert.Equal(t, []string{"CDAContext.Custodian: is required"}, validate(c, "CDAContext"))
}

func TestCustodian_RequiresHPIO(t *testing.T) {
	c := NewCustodian()
	c.Participant = NewParticipant()
	c.Participant.Organisation = &Organisation{Name: "Hobart Clinic"}

	msgs := validate(c, "CDAContext.Custodian")
	assert.Equal(t, []string{
		"CDAContext.Custodian.Participant.Organisation.Identifiers: an HPI-O identifier is required",
	}, msgs)

	hpio, err := NewHealthIdentifier(vocab.HealthIdentifierHPIO, "8003620000123450")
	require.NoError(t, err)
	c.Participant.Organisation.Identifiers = []Identifier{*hpio}
	assert.Empty(t, validate(c, "CDAContext.Custodian"))
}

func TestAuthor_RequiredPaths(t *testing.T) {
	a := NewAuthor()
	msgs := validate(a, "SCSContext.Author")
	assert.Equal(t, []string{
		"SCSContext.Author.Role: is required",
		"SCSContext.Author.DateTimeAuthored: is required",
		"SCSContext.Author.Participant: is required",
	}, msgs)

	a.Participant = NewParticipant()
	a.Participant.Person = &Person{PersonNames: []PersonName{{}}}
	msgs = validate(a, "SCSContext.Author")
	assert.Contains(t, msgs, "SCSContext.Author.Participant.Person.Identifiers: an HPI-I identifier is required")
	assert.Contains(t, msgs, "SCSContext.Author.Participant.Person.PersonNames[0].FamilyName: is required")
}

func TestSubjectOfCare_RequiredPaths(t *testing.T) {
	s := NewSubjectOfCare()
	s.Participant = NewParticipant()
	s.Participant.Person = &Person{}

	msgs := validate(s, "SCSContext.SubjectOfCare")
	assert.Equal(t, []string{
		"SCSContext.SubjectOfCare.Participant.Person.Sex: is required",
		"SCSContext.SubjectOfCare.Participant.Person.DateOfBirth: is required",
		"SCSContext.SubjectOfCare.Participant.Person.IndigenousStatus: is required",
		"SCSContext.SubjectOfCare.Participant.Addresses: must contain at least 1 item(s), found 0",
		"SCSContext.SubjectOfCare.Participant.Person.PersonNames: is required",
	}, msgs)

	s.Participant.Person = testPerson()
	s.Participant.Person.IndigenousStatus = vocab.IndigenousNeitherAboriginalNorTSI
	s.Participant.Addresses = []Address{testAddress()}
	assert.Empty(t, validate(s, "SCSContext.SubjectOfCare"))
}

func TestPerson_DeathRules(t *testing.T) {
	p := testPerson()
	p.DateOfDeath = Date(1950, time.January, 1)

	msgs := validate(p, "Person")
	assert.Equal(t, []string{
		"Person.SourceOfDeathNotification: is required",
		"Person.DateOfDeath: date of death is before date of birth",
	}, msgs)
}

func TestAddress_Choice(t *testing.T) {
	a := &Address{AddressPurpose: vocab.AddressPurposeBusiness}
	assert.Equal(t, []string{
		"Address: exactly one of AustralianAddress, InternationalAddress must be provided",
	}, validate(a, "Address"))

	a.AustralianAddress = &AustralianAddress{PostCode: "70"}
	assert.Equal(t, []string{
		"Address.AustralianAddress.SuburbTownLocality: is required",
		"Address.AustralianAddress.State: is required",
		"Address.AustralianAddress.PostCode: postcode must be 4 digits",
	}, validate(a, "Address"))

	a.AustralianAddress = &AustralianAddress{UnstructuredAddressLines: []string{"Level 2, 10 Smith St, Darwin NT"}}
	assert.Empty(t, validate(a, "Address"))

	full := testAddress()
	assert.Equal(t, "1 Clinical St, Hobart TAS 7000", full.String())
}

func TestCodableText_Validate(t *testing.T) {
	assert.Empty(t, validate(SNOMED("271807003", "Rash"), "X"))
	assert.Empty(t, validate(NewOriginalText("rash"), "X"))
	assert.Empty(t, validate(NewNullCodableText(vocab.NullFlavourUnknown), "X"))

	assert.Equal(t, []string{"X: a code, original text or null flavour is required"},
		validate(&CodableText{}, "X"))
	assert.Equal(t, []string{"X.CodeSystem: is required", "X.DisplayName: is required"},
		validate(&CodableText{Code: "123"}, "X"))
	assert.Equal(t, []string{"X.NullFlavour: is not a null flavour"},
		validate(&CodableText{NullFlavour: "BAD"}, "X"))
}

func TestMedicalHistoryItem_Choice(t *testing.T) {
	item := &MedicalHistoryItem{}
	assert.Equal(t, []string{
		"Item: exactly one of ProblemDiagnosis, Procedure, UncategorisedMedicalHistoryItem must be provided",
	}, validate(item, "Item"))

	item.UncategorisedMedicalHistoryItem = "Appendicectomy as a child"
	assert.Empty(t, validate(item, "Item"))
}

func TestTestResult_RequiredPaths(t *testing.T) {
	r := NewTestResult(LOINCCode("2951-2", "Sodium"))
	msgs := validate(r, "SCSContent.TestResults[0]")
	assert.Equal(t, []string{
		"SCSContent.TestResults[0].DiagnosticService: is required",
		"SCSContent.TestResults[0].Status: is required",
		"SCSContent.TestResults[0].ObservationDateTime: is required",
		"SCSContent.TestResults[0].ReportingPathologist: is required",
		"SCSContent.TestResults[0].Results: is required",
	}, msgs)
}

func TestResultValue_ReferenceRange(t *testing.T) {
	q, err := ParseQuantity("140", "mmol/L")
	require.NoError(t, err)
	low, _ := ParseQuantity("135", "mmol/L")
	high, _ := ParseQuantity("145", "mg/dL")

	rv := &ResultValue{
		Name:            LOINCCode("2951-2", "Sodium"),
		Quantity:        q,
		ReferenceRanges: []ReferenceRange{*NewReferenceRange(low, high)},
	}
	assert.Equal(t, []string{
		"Result.ReferenceRanges[0]: reference range units differ from the result units",
	}, validate(rv, "Result"))

	high.Units = "mmol/L"
	assert.Empty(t, validate(rv, "Result"))
	assert.True(t, rv.ReferenceRanges[0].Contains(q))
}

func TestDispenseItem_Validate(t *testing.T) {
	d := NewDispenseItem(NewUUIDIdentifier())
	d.Medicine = NewOriginalText("Amoxicillin 500 mg capsule")
	d.DateTimeOfDispenseEvent = DateTime(time.Now())
	d.QuantityDescription = "20 capsules"
	d.MaximumNumberOfRepeats = 1
	assert.Empty(t, validate(d, "DispenseItem"))
	assert.Equal(t, 1, d.RepeatsRemaining())

	d.NumberOfThisDispense = 0
	d.MaximumNumberOfRepeats = -1
	assert.Equal(t, []string{
		"DispenseItem.NumberOfThisDispense: must be at least 1",
		"DispenseItem.MaximumNumberOfRepeats: must not be negative",
	}, validate(d, "DispenseItem"))
}

func TestPrescriber_RequiresPrescriberNumber(t *testing.T) {
	p := NewPrescriber()
	p.Role = NewRole(vocab.OccupationGeneralPractitioner)
	p.Participant = NewParticipant()
	p.Participant.Person = testPerson()

	assert.Equal(t, []string{
		"SCSContext.Prescriber.Participant.Entitlements: a Medicare prescriber number is required",
	}, validate(p, "SCSContext.Prescriber"))

	e, err := NewPrescriberNumberEntitlement("1234567")
	require.NoError(t, err)
	p.Participant.Entitlements = []Entitlement{*e}
	assert.Empty(t, validate(p, "SCSContext.Prescriber"))
}

func TestElectronicCommunicationDetail_URI(t *testing.T) {
	tests := []struct {
		detail *ElectronicCommunicationDetail
		want   string
	}{
		{NewElectronicCommunicationDetail("(03) 9123-4567", vocab.MediumTelephone), "tel:0391234567"},
		{NewElectronicCommunicationDetail("jane@example.org", vocab.MediumEmail), "mailto:jane@example.org"},
		{NewElectronicCommunicationDetail("mailto:jane@example.org", vocab.MediumEmail), "mailto:jane@example.org"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.detail.URI())
	}

	bad := NewElectronicCommunicationDetail("not-an-email", vocab.MediumEmail)
	assert.Equal(t, []string{"Comm.Address: email address must contain @"}, validate(bad, "Comm"))
}

func TestInterval_Validate(t *testing.T) {
	assert.Equal(t, []string{"I: an interval needs a low, high, center or width"}, validate(&Interval{}, "I"))

	i := NewInterval(Date(2024, time.March, 1), Date(2024, time.February, 1))
	assert.Equal(t, []string{"I.High: high must not be before low"}, validate(i, "I"))

	assert.Empty(t, validate(NewWidthInterval(3, "mo"), "I"))
}

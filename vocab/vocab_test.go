package vocab

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip[T interface {
	~string
	Coded
}](t *testing.T, name string, values []T, parse func(string) (T, error)) {
	t.Helper()
	require.NotEmpty(t, values, name)
	seen := make(map[string]bool)
	for _, v := range values {
		code := v.Code()
		assert.False(t, seen[code], "%s: duplicate code %q", name, code)
		seen[code] = true

		got, err := parse(code)
		require.NoError(t, err, "%s: parse %q", name, code)
		assert.Equal(t, v, got, name)
		assert.Equal(t, code, got.Code(), name)
		assert.NotEmpty(t, got.DisplayName(), "%s: %q has no display name", name, code)
		assert.NotEmpty(t, got.CodeSystem().OID, name)
	}

	_, err := parse("not-a-code")
	assert.True(t, errors.Is(err, ErrUnknownCode), "%s: want ErrUnknownCode, got %v", name, err)
}

func TestRoundTrip(t *testing.T) {
	roundTrip(t, "Sex", SexValues(), ParseSex)
	roundTrip(t, "IndigenousStatus", IndigenousStatusValues(), ParseIndigenousStatus)
	roundTrip(t, "RelationshipType", RelationshipTypeValues(), ParseRelationshipType)
	roundTrip(t, "DeathNotificationSource", DeathNotificationSourceValues(), ParseDeathNotificationSource)
	roundTrip(t, "NameUsage", NameUsageValues(), ParseNameUsage)
	roundTrip(t, "OrganisationNameUsage", OrganisationNameUsageValues(), ParseOrganisationNameUsage)
	roundTrip(t, "HealthIdentifierType", HealthIdentifierTypeValues(), ParseHealthIdentifierType)
	roundTrip(t, "IdentifierType", IdentifierTypeValues(), ParseIdentifierType)
	roundTrip(t, "EntitlementType", EntitlementTypeValues(), ParseEntitlementType)
	roundTrip(t, "AddressPurpose", AddressPurposeValues(), ParseAddressPurpose)
	roundTrip(t, "AustralianState", AustralianStateValues(), ParseAustralianState)
	roundTrip(t, "Country", CountryValues(), ParseCountry)
	roundTrip(t, "ElectronicCommunicationMedium", ElectronicCommunicationMediumValues(), ParseElectronicCommunicationMedium)
	roundTrip(t, "ElectronicCommunicationUsage", ElectronicCommunicationUsageValues(), ParseElectronicCommunicationUsage)
	roundTrip(t, "DocumentStatus", DocumentStatusValues(), ParseDocumentStatus)
	roundTrip(t, "ResultStatus", ResultStatusValues(), ParseResultStatus)
	roundTrip(t, "Interpretation", InterpretationValues(), ParseInterpretation)
	roundTrip(t, "SeparationMode", SeparationModeValues(), ParseSeparationMode)
	roundTrip(t, "Occupation", OccupationValues(), ParseOccupation)
	roundTrip(t, "RecipientType", RecipientTypeValues(), ParseRecipientType)
	roundTrip(t, "NullFlavour", NullFlavourValues(), ParseNullFlavour)
}

func TestDisplayNames(t *testing.T) {
	tests := []struct {
		name string
		v    Coded
		want string
	}{
		{"sex", SexFemale, "Female"},
		{"indigenous", IndigenousNeitherAboriginalNorTSI, "Neither Aboriginal nor Torres Strait Islander origin"},
		{"relationship", RelationshipMother, "Mother"},
		{"death source", DeathNotificationHealthcareProvider, "Healthcare Provider"},
		{"entitlement", EntitlementMedicarePrescriberNumber, "Medicare Prescriber Number"},
		{"country", CountryAustralia, "Australia"},
		{"state", StateVIC, "Victoria"},
		{"occupation", OccupationGeneralPractitioner, "General Medical Practitioner"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.DisplayName())
		})
	}
}

func TestZeroValue(t *testing.T) {
	var s Sex
	assert.False(t, s.IsValid())
	assert.Equal(t, "", s.DisplayName())
	assert.Equal(t, "AS 5017-2006 Health Care Client Identifier Sex", s.CodeSystem().Name)
	assert.True(t, SexMale.IsValid())
}

func TestHealthIdentifierType(t *testing.T) {
	assert.Equal(t, "800360", HealthIdentifierIHI.Prefix())
	assert.Equal(t, "800361", HealthIdentifierHPII.Prefix())
	assert.Equal(t, "800362", HealthIdentifierHPIO.Prefix())

	ht, ok := HealthIdentifierTypeForNumber("8003621566684455")
	assert.True(t, ok)
	assert.Equal(t, HealthIdentifierHPIO, ht)

	_, ok = HealthIdentifierTypeForNumber("80036")
	assert.False(t, ok)
	_, ok = HealthIdentifierTypeForNumber("1234567890123456")
	assert.False(t, ok)
}

func TestMediumScheme(t *testing.T) {
	assert.Equal(t, "tel:", MediumTelephone.Scheme())
	assert.Equal(t, "tel:", MediumMobile.Scheme())
	assert.Equal(t, "mailto:", MediumEmail.Scheme())
	assert.Equal(t, "fax:", MediumFax.Scheme())
	assert.Equal(t, "", MediumURL.Scheme())
}

func TestAddressPurposeHL7Use(t *testing.T) {
	assert.Equal(t, "H", AddressPurposeResidential.HL7Use())
	assert.Equal(t, "WP", AddressPurposeBusiness.HL7Use())
	assert.Equal(t, "", AddressPurposeNotStated.HL7Use())
}

func TestEntitlementIsRepatriation(t *testing.T) {
	assert.True(t, EntitlementRepatriationGold.IsRepatriation())
	assert.False(t, EntitlementMedicareBenefits.IsRepatriation())
}

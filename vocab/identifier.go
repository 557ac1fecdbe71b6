package vocab

// HealthIdentifierQualifier is the OID prefix every Australian healthcare
// identifier is qualified by.
const HealthIdentifierQualifier = "1.2.36.1.2001.1003.0."

// HealthIdentifierType distinguishes the three healthcare identifiers
// issued by the HI Service.
type HealthIdentifierType string

const (
	HealthIdentifierIHI  HealthIdentifierType = "IHI"
	HealthIdentifierHPII HealthIdentifierType = "HPI-I"
	HealthIdentifierHPIO HealthIdentifierType = "HPI-O"
)

var healthIdentifierTypeTable = newTable[HealthIdentifierType](
	CodeSystem{OID: "1.2.36.1.2001.1003.0", Name: "Australian Healthcare Identifiers"},
	entry{"IHI", "Individual Healthcare Identifier"},
	entry{"HPI-I", "Healthcare Provider Identifier - Individual"},
	entry{"HPI-O", "Healthcare Provider Identifier - Organisation"},
)

var healthIdentifierPrefixes = map[HealthIdentifierType]string{
	HealthIdentifierIHI:  "800360",
	HealthIdentifierHPII: "800361",
	HealthIdentifierHPIO: "800362",
}

func (v HealthIdentifierType) Code() string           { return string(v) }
func (v HealthIdentifierType) DisplayName() string    { return healthIdentifierTypeTable.display(v) }
func (v HealthIdentifierType) CodeSystem() CodeSystem { return healthIdentifierTypeTable.system }
func (v HealthIdentifierType) IsValid() bool          { return healthIdentifierTypeTable.valid(v) }

// Prefix returns the six-digit issuer prefix numbers of this type start with.
func (v HealthIdentifierType) Prefix() string { return healthIdentifierPrefixes[v] }

// ParseHealthIdentifierType returns the HealthIdentifierType for code.
func ParseHealthIdentifierType(code string) (HealthIdentifierType, error) {
	return healthIdentifierTypeTable.parse(code)
}

// HealthIdentifierTypeValues returns every HealthIdentifierType in table order.
func HealthIdentifierTypeValues() []HealthIdentifierType {
	return healthIdentifierTypeTable.values()
}

// HealthIdentifierTypeForNumber returns the type whose prefix number starts with.
func HealthIdentifierTypeForNumber(number string) (HealthIdentifierType, bool) {
	if len(number) < 6 {
		return "", false
	}
	for t, p := range healthIdentifierPrefixes {
		if number[:6] == p {
			return t, true
		}
	}
	return "", false
}

// IdentifierType is the HL7 v2 table 0203 type of a local identifier.
type IdentifierType string

const (
	IdentifierTypeMedicareNumber      IdentifierType = "MC"
	IdentifierTypeMedicalRecordNumber IdentifierType = "MR"
	IdentifierTypePensionNumber       IdentifierType = "PEN"
	IdentifierTypeDVANumber           IdentifierType = "DVA"
	IdentifierTypeProviderNumber      IdentifierType = "PRN"
	IdentifierTypePassportNumber      IdentifierType = "PPN"
	IdentifierTypeDriversLicence      IdentifierType = "DL"
	IdentifierTypeEmployeeNumber      IdentifierType = "EI"
	IdentifierTypeAccountNumber       IdentifierType = "AN"
	IdentifierTypePatientInternal     IdentifierType = "PI"
)

var identifierTypeTable = newTable[IdentifierType](
	CodeSystem{OID: "2.16.840.1.113883.12.203", Name: "Identifier Type (HL7)"},
	entry{"MC", "Patient's Medicare Number"},
	entry{"MR", "Medical Record Number"},
	entry{"PEN", "Pension Number"},
	entry{"DVA", "Department of Veterans' Affairs Number"},
	entry{"PRN", "Provider Number"},
	entry{"PPN", "Passport Number"},
	entry{"DL", "Driver's License Number"},
	entry{"EI", "Employee Number"},
	entry{"AN", "Account Number"},
	entry{"PI", "Patient Internal Identifier"},
)

func (v IdentifierType) Code() string           { return string(v) }
func (v IdentifierType) DisplayName() string    { return identifierTypeTable.display(v) }
func (v IdentifierType) CodeSystem() CodeSystem { return identifierTypeTable.system }
func (v IdentifierType) IsValid() bool          { return identifierTypeTable.valid(v) }

// ParseIdentifierType returns the IdentifierType for code.
func ParseIdentifierType(code string) (IdentifierType, error) {
	return identifierTypeTable.parse(code)
}

// IdentifierTypeValues returns every IdentifierType in table order.
func IdentifierTypeValues() []IdentifierType { return identifierTypeTable.values() }

// EntitlementType is the NCTIS type of a benefit or approval number.
type EntitlementType string

const (
	EntitlementMedicareBenefits            EntitlementType = "1"
	EntitlementPensionerConcession         EntitlementType = "2"
	EntitlementSeniorsHealthConcession     EntitlementType = "3"
	EntitlementHealthCareConcession        EntitlementType = "4"
	EntitlementRepatriationGold            EntitlementType = "5"
	EntitlementRepatriationWhite           EntitlementType = "6"
	EntitlementRepatriationOrange          EntitlementType = "7"
	EntitlementSafetyNetConcession         EntitlementType = "8"
	EntitlementSafetyNet                   EntitlementType = "9"
	EntitlementMedicarePrescriberNumber    EntitlementType = "10"
	EntitlementMedicarePharmacyApprovalNum EntitlementType = "11"
)

var entitlementTypeTable = newTable[EntitlementType](
	CodeSystem{OID: "1.2.36.1.2001.1001.101.104.16047", Name: "NCTIS Entitlement Type Values"},
	entry{"1", "Medicare Benefits"},
	entry{"2", "Pensioner Concession"},
	entry{"3", "Commonwealth Seniors Health Concession"},
	entry{"4", "Health Care Concession"},
	entry{"5", "Repatriation Health Gold Benefits"},
	entry{"6", "Repatriation Health White Benefits"},
	entry{"7", "Repatriation Health Orange Benefits"},
	entry{"8", "Safety Net Concession"},
	entry{"9", "Safety Net Entitlement"},
	entry{"10", "Medicare Prescriber Number"},
	entry{"11", "Medicare Pharmacy Approval Number"},
)

func (v EntitlementType) Code() string           { return string(v) }
func (v EntitlementType) DisplayName() string    { return entitlementTypeTable.display(v) }
func (v EntitlementType) CodeSystem() CodeSystem { return entitlementTypeTable.system }
func (v EntitlementType) IsValid() bool          { return entitlementTypeTable.valid(v) }

// IsRepatriation reports whether the entitlement is a DVA benefit card.
func (v EntitlementType) IsRepatriation() bool {
	return v == EntitlementRepatriationGold || v == EntitlementRepatriationWhite || v == EntitlementRepatriationOrange
}

// ParseEntitlementType returns the EntitlementType for code.
func ParseEntitlementType(code string) (EntitlementType, error) {
	return entitlementTypeTable.parse(code)
}

// EntitlementTypeValues returns every EntitlementType in table order.
func EntitlementTypeValues() []EntitlementType { return entitlementTypeTable.values() }

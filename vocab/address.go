package vocab

// AddressPurpose is the AS 5017 purpose of an address.
type AddressPurpose string

const (
	AddressPurposeBusiness    AddressPurpose = "1"
	AddressPurposeMailing     AddressPurpose = "2"
	AddressPurposeTemporary   AddressPurpose = "3"
	AddressPurposeResidential AddressPurpose = "4"
	AddressPurposeNotStated   AddressPurpose = "9"
)

var addressPurposeTable = newTable[AddressPurpose](
	CodeSystem{OID: "1.2.36.1.2001.1001.101.104.16035", Name: "AS 5017-2006 Health Care Client Address Purpose"},
	entry{"1", "Business"},
	entry{"2", "Mailing or Postal"},
	entry{"3", "Temporary Accommodation"},
	entry{"4", "Residential (permanent)"},
	entry{"9", "Not Stated/Unknown/Inadequately Described"},
)

func (v AddressPurpose) Code() string           { return string(v) }
func (v AddressPurpose) DisplayName() string    { return addressPurposeTable.display(v) }
func (v AddressPurpose) CodeSystem() CodeSystem { return addressPurposeTable.system }
func (v AddressPurpose) IsValid() bool          { return addressPurposeTable.valid(v) }

// HL7Use returns the HL7 PostalAddressUse code for the purpose.
func (v AddressPurpose) HL7Use() string {
	switch v {
	case AddressPurposeBusiness:
		return "WP"
	case AddressPurposeMailing:
		return "PST"
	case AddressPurposeTemporary:
		return "TMP"
	case AddressPurposeResidential:
		return "H"
	}
	return ""
}

// ParseAddressPurpose returns the AddressPurpose for code.
func ParseAddressPurpose(code string) (AddressPurpose, error) {
	return addressPurposeTable.parse(code)
}

// AddressPurposeValues returns every AddressPurpose in table order.
func AddressPurposeValues() []AddressPurpose { return addressPurposeTable.values() }

// AustralianState is an AS 5017 state or territory identifier.
type AustralianState string

const (
	StateNSW AustralianState = "NSW"
	StateVIC AustralianState = "VIC"
	StateQLD AustralianState = "QLD"
	StateSA  AustralianState = "SA"
	StateWA  AustralianState = "WA"
	StateTAS AustralianState = "TAS"
	StateNT  AustralianState = "NT"
	StateACT AustralianState = "ACT"
	StateAAT AustralianState = "AAT"
)

var australianStateTable = newTable[AustralianState](
	CodeSystem{OID: "1.2.36.1.2001.1001.101.104.16039", Name: "AS 5017-2006 Australian State/Territory Identifier"},
	entry{"NSW", "New South Wales"},
	entry{"VIC", "Victoria"},
	entry{"QLD", "Queensland"},
	entry{"SA", "South Australia"},
	entry{"WA", "Western Australia"},
	entry{"TAS", "Tasmania"},
	entry{"NT", "Northern Territory"},
	entry{"ACT", "Australian Capital Territory"},
	entry{"AAT", "Australian Antarctic Territory"},
)

func (v AustralianState) Code() string           { return string(v) }
func (v AustralianState) DisplayName() string    { return australianStateTable.display(v) }
func (v AustralianState) CodeSystem() CodeSystem { return australianStateTable.system }
func (v AustralianState) IsValid() bool          { return australianStateTable.valid(v) }

// ParseAustralianState returns the AustralianState for code.
func ParseAustralianState(code string) (AustralianState, error) {
	return australianStateTable.parse(code)
}

// AustralianStateValues returns every AustralianState in table order.
func AustralianStateValues() []AustralianState { return australianStateTable.values() }

// ElectronicCommunicationMedium is the channel of an electronic
// communication detail.
type ElectronicCommunicationMedium string

const (
	MediumTelephone ElectronicCommunicationMedium = "1"
	MediumMobile    ElectronicCommunicationMedium = "2"
	MediumFax       ElectronicCommunicationMedium = "3"
	MediumPager     ElectronicCommunicationMedium = "4"
	MediumEmail     ElectronicCommunicationMedium = "5"
	MediumURL       ElectronicCommunicationMedium = "6"
)

var mediumTable = newTable[ElectronicCommunicationMedium](
	CodeSystem{OID: "1.2.36.1.2001.1001.101.104.16040", Name: "AS 5017-2006 Electronic Communication Medium"},
	entry{"1", "Telephone (excluding mobile telephone)"},
	entry{"2", "Mobile (cellular) Telephone"},
	entry{"3", "Facsimile Machine"},
	entry{"4", "Pager"},
	entry{"5", "Email"},
	entry{"6", "URL"},
)

var mediumSchemes = map[ElectronicCommunicationMedium]string{
	MediumTelephone: "tel:",
	MediumMobile:    "tel:",
	MediumFax:       "fax:",
	MediumPager:     "tel:",
	MediumEmail:     "mailto:",
}

func (v ElectronicCommunicationMedium) Code() string        { return string(v) }
func (v ElectronicCommunicationMedium) DisplayName() string { return mediumTable.display(v) }
func (v ElectronicCommunicationMedium) CodeSystem() CodeSystem {
	return mediumTable.system
}
func (v ElectronicCommunicationMedium) IsValid() bool { return mediumTable.valid(v) }

// Scheme returns the URI scheme addresses of this medium are written with.
// URLs carry their own scheme and return "".
func (v ElectronicCommunicationMedium) Scheme() string { return mediumSchemes[v] }

// ParseElectronicCommunicationMedium returns the medium for code.
func ParseElectronicCommunicationMedium(code string) (ElectronicCommunicationMedium, error) {
	return mediumTable.parse(code)
}

// ElectronicCommunicationMediumValues returns every medium in table order.
func ElectronicCommunicationMediumValues() []ElectronicCommunicationMedium {
	return mediumTable.values()
}

// ElectronicCommunicationUsage is the HL7 TelecommunicationAddressUse of a
// contact detail.
type ElectronicCommunicationUsage string

const (
	UsageWorkplace        ElectronicCommunicationUsage = "WP"
	UsageHome             ElectronicCommunicationUsage = "H"
	UsageMobileContact    ElectronicCommunicationUsage = "MC"
	UsageEmergencyContact ElectronicCommunicationUsage = "EC"
	UsagePager            ElectronicCommunicationUsage = "PG"
	UsageTemporary        ElectronicCommunicationUsage = "TMP"
)

var usageTable = newTable[ElectronicCommunicationUsage](
	CodeSystem{OID: "2.16.840.1.113883.5.1119", Name: "HL7 AddressUse"},
	entry{"WP", "Work Place"},
	entry{"H", "Home"},
	entry{"MC", "Mobile Contact"},
	entry{"EC", "Emergency Contact"},
	entry{"PG", "Pager"},
	entry{"TMP", "Temporary Address"},
)

func (v ElectronicCommunicationUsage) Code() string        { return string(v) }
func (v ElectronicCommunicationUsage) DisplayName() string { return usageTable.display(v) }
func (v ElectronicCommunicationUsage) CodeSystem() CodeSystem {
	return usageTable.system
}
func (v ElectronicCommunicationUsage) IsValid() bool { return usageTable.valid(v) }

// ParseElectronicCommunicationUsage returns the usage for code.
func ParseElectronicCommunicationUsage(code string) (ElectronicCommunicationUsage, error) {
	return usageTable.parse(code)
}

// ElectronicCommunicationUsageValues returns every usage in table order.
func ElectronicCommunicationUsageValues() []ElectronicCommunicationUsage {
	return usageTable.values()
}

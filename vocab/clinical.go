package vocab

// External code systems referenced by CodableText values. The registry
// knows them by OID but does not hold their content.
var (
	SNOMEDCTAU = CodeSystem{OID: "2.16.840.1.113883.6.96", Name: "SNOMED CT-AU"}
	LOINC      = CodeSystem{OID: "2.16.840.1.113883.6.1", Name: "LOINC"}
	NCTIS      = CodeSystem{OID: "1.2.36.1.2001.1001.101", Name: "NCTIS Data Components"}
	PBS        = CodeSystem{OID: "2.16.840.1.113883.6.43.1", Name: "PBS Item Code"}
)

// DocumentStatus is the completion status of a document.
type DocumentStatus string

const (
	DocumentStatusInterim   DocumentStatus = "I"
	DocumentStatusFinal     DocumentStatus = "F"
	DocumentStatusWithdrawn DocumentStatus = "W"
)

var documentStatusTable = newTable[DocumentStatus](
	CodeSystem{OID: "1.2.36.1.2001.1001.101.104.20104", Name: "NCTIS Document Status Values"},
	entry{"I", "Interim"},
	entry{"F", "Final"},
	entry{"W", "Withdrawn"},
)

func (v DocumentStatus) Code() string           { return string(v) }
func (v DocumentStatus) DisplayName() string    { return documentStatusTable.display(v) }
func (v DocumentStatus) CodeSystem() CodeSystem { return documentStatusTable.system }
func (v DocumentStatus) IsValid() bool          { return documentStatusTable.valid(v) }

// ParseDocumentStatus returns the DocumentStatus for code.
func ParseDocumentStatus(code string) (DocumentStatus, error) {
	return documentStatusTable.parse(code)
}

// DocumentStatusValues returns every DocumentStatus in table order.
func DocumentStatusValues() []DocumentStatus { return documentStatusTable.values() }

// ResultStatus is the HL7 v2 table 0123 status of a pathology result.
type ResultStatus string

const (
	ResultStatusOrderReceived ResultStatus = "O"
	ResultStatusNoResults     ResultStatus = "I"
	ResultStatusScheduled     ResultStatus = "S"
	ResultStatusPartial       ResultStatus = "A"
	ResultStatusPreliminary   ResultStatus = "P"
	ResultStatusCorrection    ResultStatus = "C"
	ResultStatusStored        ResultStatus = "R"
	ResultStatusFinal         ResultStatus = "F"
	ResultStatusCancelled     ResultStatus = "X"
)

var resultStatusTable = newTable[ResultStatus](
	CodeSystem{OID: "2.16.840.1.113883.12.123", Name: "HL7 Result Status"},
	entry{"O", "Order received; specimen not yet received"},
	entry{"I", "No results available; specimen received, procedure incomplete"},
	entry{"S", "No results available; procedure scheduled, but not done"},
	entry{"A", "Some, but not all, results available"},
	entry{"P", "Preliminary"},
	entry{"C", "Correction to results"},
	entry{"R", "Results stored; not yet verified"},
	entry{"F", "Final results"},
	entry{"X", "No results available; Order canceled"},
)

func (v ResultStatus) Code() string           { return string(v) }
func (v ResultStatus) DisplayName() string    { return resultStatusTable.display(v) }
func (v ResultStatus) CodeSystem() CodeSystem { return resultStatusTable.system }
func (v ResultStatus) IsValid() bool          { return resultStatusTable.valid(v) }

// ParseResultStatus returns the ResultStatus for code.
func ParseResultStatus(code string) (ResultStatus, error) { return resultStatusTable.parse(code) }

// ResultStatusValues returns every ResultStatus in table order.
func ResultStatusValues() []ResultStatus { return resultStatusTable.values() }

// Interpretation is the HL7 ObservationInterpretation of a result value.
type Interpretation string

const (
	InterpretationNormal       Interpretation = "N"
	InterpretationAbnormal     Interpretation = "A"
	InterpretationHigh         Interpretation = "H"
	InterpretationLow          Interpretation = "L"
	InterpretationCriticalHigh Interpretation = "HH"
	InterpretationCriticalLow  Interpretation = "LL"
	InterpretationPositive     Interpretation = "POS"
	InterpretationNegative     Interpretation = "NEG"
)

var interpretationTable = newTable[Interpretation](
	CodeSystem{OID: "2.16.840.1.113883.5.83", Name: "HL7 ObservationInterpretation"},
	entry{"N", "Normal"},
	entry{"A", "Abnormal"},
	entry{"H", "High"},
	entry{"L", "Low"},
	entry{"HH", "Critically high"},
	entry{"LL", "Critically low"},
	entry{"POS", "Positive"},
	entry{"NEG", "Negative"},
)

func (v Interpretation) Code() string           { return string(v) }
func (v Interpretation) DisplayName() string    { return interpretationTable.display(v) }
func (v Interpretation) CodeSystem() CodeSystem { return interpretationTable.system }
func (v Interpretation) IsValid() bool          { return interpretationTable.valid(v) }

// ParseInterpretation returns the Interpretation for code.
func ParseInterpretation(code string) (Interpretation, error) {
	return interpretationTable.parse(code)
}

// InterpretationValues returns every Interpretation in table order.
func InterpretationValues() []Interpretation { return interpretationTable.values() }

// SeparationMode is the METeOR 270094 mode of separation from hospital.
type SeparationMode string

const (
	SeparationAcuteHospital      SeparationMode = "1"
	SeparationAgedCare           SeparationMode = "2"
	SeparationPsychiatric        SeparationMode = "3"
	SeparationOtherHealthCare    SeparationMode = "4"
	SeparationTypeChange         SeparationMode = "5"
	SeparationAgainstAdvice      SeparationMode = "6"
	SeparationFromLeave          SeparationMode = "7"
	SeparationDied               SeparationMode = "8"
	SeparationOtherUsualResident SeparationMode = "9"
)

var separationModeTable = newTable[SeparationMode](
	CodeSystem{OID: "2.16.840.1.113883.3.879.270094", Name: "METeOR Mode of Separation"},
	entry{"1", "Discharge/transfer to an(other) acute hospital"},
	entry{"2", "Discharge/transfer to a residential aged care service"},
	entry{"3", "Discharge/transfer to an(other) psychiatric hospital"},
	entry{"4", "Discharge/transfer to other health care accommodation"},
	entry{"5", "Statistical discharge - type change"},
	entry{"6", "Left against medical advice/discharge at own risk"},
	entry{"7", "Statistical discharge from leave"},
	entry{"8", "Died"},
	entry{"9", "Other (includes discharge to usual residence)"},
)

func (v SeparationMode) Code() string           { return string(v) }
func (v SeparationMode) DisplayName() string    { return separationModeTable.display(v) }
func (v SeparationMode) CodeSystem() CodeSystem { return separationModeTable.system }
func (v SeparationMode) IsValid() bool          { return separationModeTable.valid(v) }

// ParseSeparationMode returns the SeparationMode for code.
func ParseSeparationMode(code string) (SeparationMode, error) {
	return separationModeTable.parse(code)
}

// SeparationModeValues returns every SeparationMode in table order.
func SeparationModeValues() []SeparationMode { return separationModeTable.values() }

// Occupation is an ANZSCO occupation, used for participation roles.
type Occupation string

const (
	OccupationGeneralPractitioner    Occupation = "253111"
	OccupationResidentMedicalOfficer Occupation = "253112"
	OccupationSpecialistPhysician    Occupation = "253311"
	OccupationCardiologist           Occupation = "253312"
	OccupationPathologist            Occupation = "253915"
	OccupationGeneralSurgeon         Occupation = "253511"
	OccupationAnaesthetist           Occupation = "253211"
	OccupationObstetrician           Occupation = "253913"
	OccupationRegisteredNurse        Occupation = "254499"
	OccupationNursePractitioner      Occupation = "254411"
	OccupationHospitalPharmacist     Occupation = "251511"
	OccupationRetailPharmacist       Occupation = "251513"
	OccupationPhysiotherapist        Occupation = "252511"
	OccupationRadiographer           Occupation = "251211"
)

var occupationTable = newTable[Occupation](
	CodeSystem{OID: "2.16.840.1.113883.13.62", Name: "1220.0 - ANZSCO - Australian and New Zealand Standard Classification of Occupations", Version: "1.2"},
	entry{"253111", "General Medical Practitioner"},
	entry{"253112", "Resident Medical Officer"},
	entry{"253311", "Specialist Physician (General Medicine)"},
	entry{"253312", "Cardiologist"},
	entry{"253915", "Pathologist"},
	entry{"253511", "Surgeon (General)"},
	entry{"253211", "Anaesthetist"},
	entry{"253913", "Obstetrician and Gynaecologist"},
	entry{"254499", "Registered Nurses nec"},
	entry{"254411", "Nurse Practitioner"},
	entry{"251511", "Hospital Pharmacist"},
	entry{"251513", "Retail Pharmacist"},
	entry{"252511", "Physiotherapist"},
	entry{"251211", "Medical Diagnostic Radiographer"},
)

func (v Occupation) Code() string           { return string(v) }
func (v Occupation) DisplayName() string    { return occupationTable.display(v) }
func (v Occupation) CodeSystem() CodeSystem { return occupationTable.system }
func (v Occupation) IsValid() bool          { return occupationTable.valid(v) }

// ParseOccupation returns the Occupation for code.
func ParseOccupation(code string) (Occupation, error) { return occupationTable.parse(code) }

// OccupationValues returns every Occupation in table order.
func OccupationValues() []Occupation { return occupationTable.values() }

// RecipientType is the HL7 participation type of an information recipient.
type RecipientType string

const (
	RecipientPrimary RecipientType = "PRCP"
	RecipientTracker RecipientType = "TRC"
)

var recipientTypeTable = newTable[RecipientType](
	CodeSystem{OID: "2.16.840.1.113883.5.90", Name: "HL7 ParticipationType"},
	entry{"PRCP", "Primary Recipient"},
	entry{"TRC", "Secondary Recipient"},
)

func (v RecipientType) Code() string           { return string(v) }
func (v RecipientType) DisplayName() string    { return recipientTypeTable.display(v) }
func (v RecipientType) CodeSystem() CodeSystem { return recipientTypeTable.system }
func (v RecipientType) IsValid() bool          { return recipientTypeTable.valid(v) }

// ParseRecipientType returns the RecipientType for code.
func ParseRecipientType(code string) (RecipientType, error) {
	return recipientTypeTable.parse(code)
}

// RecipientTypeValues returns every RecipientType in table order.
func RecipientTypeValues() []RecipientType { return recipientTypeTable.values() }

// NullFlavour is the HL7 NullFlavor explaining an absent value.
type NullFlavour string

const (
	NullFlavourNoInformation NullFlavour = "NI"
	NullFlavourNotApplicable NullFlavour = "NA"
	NullFlavourUnknown       NullFlavour = "UNK"
	NullFlavourAskedUnknown  NullFlavour = "ASKU"
	NullFlavourUnavailable   NullFlavour = "NAV"
	NullFlavourNotAsked      NullFlavour = "NASK"
	NullFlavourMasked        NullFlavour = "MSK"
	NullFlavourOther         NullFlavour = "OTH"
)

var nullFlavourTable = newTable[NullFlavour](
	CodeSystem{OID: "2.16.840.1.113883.5.1008", Name: "HL7 NullFlavor"},
	entry{"NI", "No information"},
	entry{"NA", "Not applicable"},
	entry{"UNK", "Unknown"},
	entry{"ASKU", "Asked but unknown"},
	entry{"NAV", "Temporarily unavailable"},
	entry{"NASK", "Not asked"},
	entry{"MSK", "Masked"},
	entry{"OTH", "Other"},
)

func (v NullFlavour) Code() string           { return string(v) }
func (v NullFlavour) DisplayName() string    { return nullFlavourTable.display(v) }
func (v NullFlavour) CodeSystem() CodeSystem { return nullFlavourTable.system }
func (v NullFlavour) IsValid() bool          { return nullFlavourTable.valid(v) }

// ParseNullFlavour returns the NullFlavour for code.
func ParseNullFlavour(code string) (NullFlavour, error) { return nullFlavourTable.parse(code) }

// NullFlavourValues returns every NullFlavour in table order.
func NullFlavourValues() []NullFlavour { return nullFlavourTable.values() }

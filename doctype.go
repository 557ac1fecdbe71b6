package cda

// DocumentType identifies one member of the CDA document family.
type DocumentType string

// Supported document types.
const (
	EReferral             DocumentType = "EReferral"
	SpecialistLetter      DocumentType = "SpecialistLetter"
	DischargeSummary      DocumentType = "DischargeSummary"
	PathologyResultReport DocumentType = "PathologyResultReport"
	EPrescription         DocumentType = "EPrescription"
	DispenseRecord        DocumentType = "DispenseRecord"
)

// Code systems used for document type codes.
const (
	LOINCOID = "2.16.840.1.113883.6.1"
	NCTISOID = "1.2.36.1.2001.1001.101"
)

// String returns the document type name.
func (t DocumentType) String() string {
	return string(t)
}

// IsValid returns true if this is a supported document type.
func (t DocumentType) IsValid() bool {
	_, ok := documentTypeConfigs[t]
	return ok
}

// DocumentTypeInfo holds the header coding for a document type.
type DocumentTypeInfo struct {
	// Code and CodeSystem fill ClinicalDocument/code.
	Code           string
	CodeSystem     string
	CodeSystemName string
	DisplayName    string

	// TemplateID is the SCS template identifier for ClinicalDocument/templateId.
	TemplateID      string
	TemplateVersion string

	// Title is the default ClinicalDocument/title.
	Title string
}

var documentTypeConfigs = map[DocumentType]DocumentTypeInfo{
	EReferral: {
		Code:            "57133-1",
		CodeSystem:      LOINCOID,
		CodeSystemName:  "LOINC",
		DisplayName:     "Referral Note",
		TemplateID:      "1.2.36.1.2001.1001.101.100.1002.2",
		TemplateVersion: "2.2",
		Title:           "e-Referral",
	},
	SpecialistLetter: {
		Code:            "51852-2",
		CodeSystem:      LOINCOID,
		CodeSystemName:  "LOINC",
		DisplayName:     "Letter",
		TemplateID:      "1.2.36.1.2001.1001.101.100.1002.132",
		TemplateVersion: "1.3",
		Title:           "Specialist Letter",
	},
	DischargeSummary: {
		Code:            "18842-5",
		CodeSystem:      LOINCOID,
		CodeSystemName:  "LOINC",
		DisplayName:     "Discharge Summarization Note",
		TemplateID:      "1.2.36.1.2001.1001.101.100.1002.3",
		TemplateVersion: "3.4",
		Title:           "Discharge Summary",
	},
	PathologyResultReport: {
		Code:            "11526-1",
		CodeSystem:      LOINCOID,
		CodeSystemName:  "LOINC",
		DisplayName:     "Pathology Study",
		TemplateID:      "1.2.36.1.2001.1001.101.100.1002.220",
		TemplateVersion: "1.0",
		Title:           "Pathology Report",
	},
	EPrescription: {
		Code:            "100.16100",
		CodeSystem:      NCTISOID,
		CodeSystemName:  "NCTIS Data Components",
		DisplayName:     "e-Prescription",
		TemplateID:      "1.2.36.1.2001.1001.101.100.1002.170",
		TemplateVersion: "2.2",
		Title:           "e-Prescription",
	},
	DispenseRecord: {
		Code:            "100.16112",
		CodeSystem:      NCTISOID,
		CodeSystemName:  "NCTIS Data Components",
		DisplayName:     "Dispense Record",
		TemplateID:      "1.2.36.1.2001.1001.101.100.1002.171",
		TemplateVersion: "2.2",
		Title:           "Dispense Record",
	},
}

// Info returns the header coding for the document type.
func (t DocumentType) Info() (DocumentTypeInfo, bool) {
	info, ok := documentTypeConfigs[t]
	return info, ok
}

// DocumentTypes returns every supported document type in a stable order.
func DocumentTypes() []DocumentType {
	return []DocumentType{
		EReferral,
		SpecialistLetter,
		DischargeSummary,
		PathologyResultReport,
		EPrescription,
		DispenseRecord,
	}
}

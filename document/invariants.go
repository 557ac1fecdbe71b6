package document

import cda "github.com/gofhir/cda"

// Invariant is a document-level rule written in FHIRPath and evaluated
// against the JSON form of a document. Expression must be true for a
// conforming document.
type Invariant struct {
	Key        string
	Severity   cda.IssueSeverity
	Human      string
	Expression string
}

var invariants = map[cda.DocumentType][]Invariant{
	cda.EReferral: {
		{
			Key:        "ref-1",
			Severity:   cda.SeverityWarning,
			Human:      "The subject of a referral should not be deceased",
			Expression: "SCSContext.SubjectOfCare.Participant.Person.DateOfDeath.empty()",
		},
	},
	cda.SpecialistLetter: {
		{
			Key:        "spl-1",
			Severity:   cda.SeverityError,
			Human:      "Response details must include a diagnosis, a procedure or a narrative",
			Expression: "SCSContent.ResponseDetails.Diagnoses.exists() or SCSContent.ResponseDetails.Procedures.exists() or SCSContent.ResponseDetails.ResponseNarrative.exists()",
		},
	},
	cda.DischargeSummary: {
		{
			Key:        "dis-1",
			Severity:   cda.SeverityError,
			Human:      "A patient who died in hospital must have a date of death",
			Expression: "SCSContent.Encounter.SeparationMode.where($this = '8').empty() or SCSContext.SubjectOfCare.Participant.Person.DateOfDeath.exists()",
		},
	},
	cda.PathologyResultReport: {
		{
			Key:        "path-1",
			Severity:   cda.SeverityError,
			Human:      "A final report may only carry final or corrected results",
			Expression: "DocumentStatus.where($this = 'F').empty() or SCSContent.TestResults.all(Status = 'F' or Status = 'C')",
		},
	},
	cda.EPrescription: {
		{
			Key:        "erx-1",
			Severity:   cda.SeverityError,
			Human:      "A PBS item requires a Medicare or DVA entitlement for the subject of care",
			Expression: "SCSContent.PrescriptionItem.PBSItemCode.empty() or SCSContext.SubjectOfCare.Participant.Entitlements.where(Type = '1' or Type = '5' or Type = '6' or Type = '7').exists()",
		},
	},
	cda.DispenseRecord: {
		{
			Key:        "disp-1",
			Severity:   cda.SeverityError,
			Human:      "The dispense number must not exceed the repeats allowed plus the original supply",
			Expression: "SCSContent.DispenseItem.all(NumberOfThisDispense <= MaximumNumberOfRepeats + 1)",
		},
	},
}

// InvariantsFor returns the invariants that apply to documents of type dt.
func InvariantsFor(dt cda.DocumentType) []Invariant {
	return invariants[dt]
}

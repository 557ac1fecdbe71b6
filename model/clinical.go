package model

import "github.com/gofhir/cda/validation"

// MedicationItem is a medicine the subject of care is taking or has been
// prescribed.
type MedicationItem struct {
	Medicine           *CodableText `xml:",omitempty"`
	Directions         string       `xml:",omitempty"`
	ClinicalIndication string       `xml:",omitempty"`
	Comment            string       `xml:",omitempty"`
}

// NewMedicationItem returns a medication item for medicine.
func NewMedicationItem(medicine *CodableText, directions string) *MedicationItem {
	return &MedicationItem{Medicine: medicine, Directions: directions}
}

// Validate reports the required fields of the medication item missing under path.
func (m *MedicationItem) Validate(path string, v *validation.Builder) {
	if v.ArgumentRequiredCheck(path+".Medicine", m.Medicine) {
		m.Medicine.Validate(path+".Medicine", v)
	}
	v.ArgumentRequiredCheck(path+".Directions", m.Directions)
}

// AdverseReaction records a substance the subject of care reacts to.
type AdverseReaction struct {
	SubstanceOrAgent *CodableText  `xml:",omitempty"`
	ReactionType     *CodableText  `xml:",omitempty"`
	Manifestations   []CodableText `xml:"Manifestation,omitempty"`
}

// NewAdverseReaction returns a reaction to substance.
func NewAdverseReaction(substance *CodableText, manifestations ...CodableText) *AdverseReaction {
	return &AdverseReaction{SubstanceOrAgent: substance, Manifestations: manifestations}
}

// Validate reports the required fields of the adverse reaction missing under path.
func (a *AdverseReaction) Validate(path string, v *validation.Builder) {
	if v.ArgumentRequiredCheck(path+".SubstanceOrAgent", a.SubstanceOrAgent) {
		a.SubstanceOrAgent.Validate(path+".SubstanceOrAgent", v)
	}
	validation.Validate(v, path+".ReactionType", a.ReactionType)
	validation.ValidateEach(v, path+".Manifestations", ptrs(a.Manifestations))
}

// MedicalHistoryItem is one entry of a patient's medical history. Exactly
// one of ProblemDiagnosis, Procedure or UncategorisedMedicalHistoryItem is set.
type MedicalHistoryItem struct {
	ProblemDiagnosis                *CodableText `xml:",omitempty"`
	Procedure                       *CodableText `xml:",omitempty"`
	UncategorisedMedicalHistoryItem string       `xml:",omitempty"`
	DateTimeInterval                *Interval    `xml:",omitempty"`
	Comment                         string       `xml:",omitempty"`
}

// Validate reports the required fields of the medical history item missing under path.
func (m *MedicalHistoryItem) Validate(path string, v *validation.Builder) {
	v.ChoiceCheck(path,
		[]string{"ProblemDiagnosis", "Procedure", "UncategorisedMedicalHistoryItem"},
		m.ProblemDiagnosis, m.Procedure, m.UncategorisedMedicalHistoryItem)
	validation.Validate(v, path+".ProblemDiagnosis", m.ProblemDiagnosis)
	validation.Validate(v, path+".Procedure", m.Procedure)
	validation.Validate(v, path+".DateTimeInterval", m.DateTimeInterval)
}

// ProblemDiagnosis is a problem or diagnosis identified during care.
type ProblemDiagnosis struct {
	Identification   *CodableText     `xml:",omitempty"`
	DateOfOnset      *ISO8601DateTime `xml:",omitempty"`
	DateOfResolution *ISO8601DateTime `xml:",omitempty"`
	Comment          string           `xml:",omitempty"`
}

// Validate reports the required fields of the problem diagnosis missing under path.
func (p *ProblemDiagnosis) Validate(path string, v *validation.Builder) {
	if v.ArgumentRequiredCheck(path+".Identification", p.Identification) {
		p.Identification.Validate(path+".Identification", v)
	}
	if p.DateOfOnset != nil && p.DateOfResolution != nil && p.DateOfResolution.Before(p.DateOfOnset) {
		v.AddValidationMessage(path+".DateOfResolution", p.DateOfResolution.String(), "resolution is before onset")
	}
}

// Procedure is a clinical procedure performed on the subject of care.
type Procedure struct {
	ProcedureName     *CodableText     `xml:",omitempty"`
	ProcedureDateTime *ISO8601DateTime `xml:",omitempty"`
	Comment           string           `xml:",omitempty"`
}

// Validate reports the required fields of the procedure missing under path.
func (p *Procedure) Validate(path string, v *validation.Builder) {
	if v.ArgumentRequiredCheck(path+".ProcedureName", p.ProcedureName) {
		p.ProcedureName.Validate(path+".ProcedureName", v)
	}
}

// Recommendation is advice from a specialist to another provider.
type Recommendation struct {
	Addressee *Participation `xml:",omitempty"`
	Narrative string         `xml:",omitempty"`
	TimeFrame *Interval      `xml:",omitempty"`
}

// Validate reports the required fields of the recommendation missing under path.
func (r *Recommendation) Validate(path string, v *validation.Builder) {
	v.ArgumentRequiredCheck(path+".Narrative", r.Narrative)
	if r.Addressee != nil {
		r.Addressee.validateParticipant(path+".Addressee", v)
	}
	validation.Validate(v, path+".TimeFrame", r.TimeFrame)
}

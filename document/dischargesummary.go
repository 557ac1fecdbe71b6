package document

import (
	"encoding/xml"

	cda "github.com/gofhir/cda"
	"github.com/gofhir/cda/model"
	"github.com/gofhir/cda/validation"
	"github.com/gofhir/cda/vocab"
)

// DischargeSummary summarises a hospital stay for the patient's ongoing
// care providers.
type DischargeSummary struct {
	XMLName xml.Name `xml:"http://ns.gofhir.org/cda/model DischargeSummary" json:"-"`
	Base
	SCSContext *DischargeSummaryContext `xml:",omitempty"`
	SCSContent *DischargeSummaryContent `xml:",omitempty"`
}

type DischargeSummaryContext struct {
	Author        *model.Author             `xml:",omitempty"`
	SubjectOfCare *model.SubjectOfCare      `xml:",omitempty"`
	Facility      *model.HealthcareFacility `xml:",omitempty"`
}

type DischargeSummaryContent struct {
	Encounter        *Encounter              `xml:",omitempty"`
	Medications      []model.MedicationItem  `xml:"Medication,omitempty"`
	AdverseReactions []model.AdverseReaction `xml:"AdverseReaction,omitempty"`
	Plan             *Plan                   `xml:",omitempty"`
}

// Encounter is the hospital stay being summarised.
type Encounter struct {
	EncounterPeriod  *model.Interval          `xml:",omitempty"`
	SeparationMode   vocab.SeparationMode     `xml:",omitempty"`
	Specialty        *model.CodableText       `xml:",omitempty"`
	ProblemDiagnoses []model.ProblemDiagnosis `xml:"ProblemDiagnosis,omitempty"`
	ClinicalSynopsis string                   `xml:",omitempty"`
}

// Plan lists the follow-up arranged on discharge.
type Plan struct {
	Recommendations []model.Recommendation `xml:"Recommendation,omitempty"`
}

// NewDischargeSummary returns an empty discharge summary.
func NewDischargeSummary() *DischargeSummary {
	return &DischargeSummary{
		Base:       newBase(),
		SCSContext: &DischargeSummaryContext{},
		SCSContent: &DischargeSummaryContent{Encounter: &Encounter{}},
	}
}

func (d *DischargeSummary) DocumentType() cda.DocumentType { return cda.DischargeSummary }

func (d *DischargeSummary) Subject() *model.SubjectOfCare {
	if d.SCSContext == nil {
		return nil
	}
	return d.SCSContext.SubjectOfCare
}

func (d *DischargeSummary) Validate(v *validation.Builder) {
	d.Base.validate(v)
	if v.ArgumentRequiredCheck("SCSContext", d.SCSContext) {
		d.SCSContext.Validate("SCSContext", v)
	}
	if v.ArgumentRequiredCheck("SCSContent", d.SCSContent) {
		d.SCSContent.Validate("SCSContent", v)
	}
}

func (c *DischargeSummaryContext) Validate(path string, v *validation.Builder) {
	if v.ArgumentRequiredCheck(path+".Author", c.Author) {
		c.Author.Validate(path+".Author", v)
	}
	requireSubject(v, path+".SubjectOfCare", c.SubjectOfCare)
	if v.ArgumentRequiredCheck(path+".Facility", c.Facility) {
		c.Facility.Validate(path+".Facility", v)
	}
}

func (c *DischargeSummaryContent) Validate(path string, v *validation.Builder) {
	if v.ArgumentRequiredCheck(path+".Encounter", c.Encounter) {
		c.Encounter.Validate(path+".Encounter", v)
	}
	validation.ValidateEach(v, path+".Medications", ptrs(c.Medications))
	validation.ValidateEach(v, path+".AdverseReactions", ptrs(c.AdverseReactions))
	if c.Plan != nil {
		validation.ValidateEach(v, path+".Plan.Recommendations", ptrs(c.Plan.Recommendations))
	}
}

func (e *Encounter) Validate(path string, v *validation.Builder) {
	if v.ArgumentRequiredCheck(path+".EncounterPeriod", e.EncounterPeriod) {
		e.EncounterPeriod.Validate(path+".EncounterPeriod", v)
	}
	v.ArgumentRequiredCheck(path+".SeparationMode", e.SeparationMode)
	if v.ArgumentRequiredCheck(path+".Specialty", e.Specialty) {
		e.Specialty.Validate(path+".Specialty", v)
	}
	validation.ValidateEach(v, path+".ProblemDiagnoses", ptrs(e.ProblemDiagnoses))
}

package document

import (
	"encoding/xml"

	cda "github.com/gofhir/cda"
	"github.com/gofhir/cda/model"
	"github.com/gofhir/cda/validation"
)

// SpecialistLetter is a specialist's response to a referral.
type SpecialistLetter struct {
	XMLName xml.Name `xml:"http://ns.gofhir.org/cda/model SpecialistLetter" json:"-"`
	Base
	SCSContext *SpecialistLetterContext `xml:",omitempty"`
	SCSContent *SpecialistLetterContent `xml:",omitempty"`
}

type SpecialistLetterContext struct {
	Author              *model.Author          `xml:",omitempty"`
	SubjectOfCare       *model.SubjectOfCare   `xml:",omitempty"`
	Referrer            *model.Referrer        `xml:",omitempty"`
	UsualGP             *model.UsualGP         `xml:",omitempty"`
	DateTimeSubjectSeen *model.ISO8601DateTime `xml:",omitempty"`
}

type SpecialistLetterContent struct {
	ResponseDetails *ResponseDetails       `xml:",omitempty"`
	Recommendations []model.Recommendation `xml:"Recommendation,omitempty"`
	Medications     []model.MedicationItem `xml:"Medication,omitempty"`
}

// ResponseDetails is the specialist's findings. At least one of its
// fields is expected.
type ResponseDetails struct {
	Diagnoses         []model.CodableText `xml:"Diagnosis,omitempty"`
	Procedures        []model.Procedure   `xml:"Procedure,omitempty"`
	ResponseNarrative string              `xml:",omitempty"`
}

// NewSpecialistLetter returns an empty specialist letter.
func NewSpecialistLetter() *SpecialistLetter {
	return &SpecialistLetter{
		Base:       newBase(),
		SCSContext: &SpecialistLetterContext{},
		SCSContent: &SpecialistLetterContent{ResponseDetails: &ResponseDetails{}},
	}
}

func (d *SpecialistLetter) DocumentType() cda.DocumentType { return cda.SpecialistLetter }

func (d *SpecialistLetter) Subject() *model.SubjectOfCare {
	if d.SCSContext == nil {
		return nil
	}
	return d.SCSContext.SubjectOfCare
}

func (d *SpecialistLetter) Validate(v *validation.Builder) {
	d.Base.validate(v)
	if v.ArgumentRequiredCheck("SCSContext", d.SCSContext) {
		d.SCSContext.Validate("SCSContext", v)
	}
	if v.ArgumentRequiredCheck("SCSContent", d.SCSContent) {
		d.SCSContent.Validate("SCSContent", v)
	}
}

func (c *SpecialistLetterContext) Validate(path string, v *validation.Builder) {
	if v.ArgumentRequiredCheck(path+".Author", c.Author) {
		c.Author.Validate(path+".Author", v)
	}
	requireSubject(v, path+".SubjectOfCare", c.SubjectOfCare)
	if v.ArgumentRequiredCheck(path+".Referrer", c.Referrer) {
		c.Referrer.Validate(path+".Referrer", v)
	}
	validation.Validate(v, path+".UsualGP", c.UsualGP)
	v.ArgumentRequiredCheck(path+".DateTimeSubjectSeen", c.DateTimeSubjectSeen)
}

func (c *SpecialistLetterContent) Validate(path string, v *validation.Builder) {
	if v.ArgumentRequiredCheck(path+".ResponseDetails", c.ResponseDetails) {
		c.ResponseDetails.Validate(path+".ResponseDetails", v)
	}
	validation.ValidateEach(v, path+".Recommendations", ptrs(c.Recommendations))
	validation.ValidateEach(v, path+".Medications", ptrs(c.Medications))
}

func (r *ResponseDetails) Validate(path string, v *validation.Builder) {
	validation.ValidateEach(v, path+".Diagnoses", ptrs(r.Diagnoses))
	validation.ValidateEach(v, path+".Procedures", ptrs(r.Procedures))
}

package document

import (
	"encoding/xml"

	cda "github.com/gofhir/cda"
	"github.com/gofhir/cda/model"
	"github.com/gofhir/cda/validation"
)

// EPrescription is an electronic prescription for a single medicine.
type EPrescription struct {
	XMLName xml.Name `xml:"http://ns.gofhir.org/cda/model EPrescription" json:"-"`
	Base
	SCSContext *EPrescriptionContext `xml:",omitempty"`
	SCSContent *EPrescriptionContent `xml:",omitempty"`
}

type EPrescriptionContext struct {
	Prescriber             *model.Prescriber             `xml:",omitempty"`
	PrescriberOrganisation *model.PrescriberOrganisation `xml:",omitempty"`
	SubjectOfCare          *model.SubjectOfCare          `xml:",omitempty"`
}

type EPrescriptionContent struct {
	PrescriptionItem *model.PrescriptionItem `xml:",omitempty"`
	Observations     []model.Observation     `xml:"Observation,omitempty"`
}

// NewEPrescription returns an empty e-Prescription with a prescription
// item allocated.
func NewEPrescription() *EPrescription {
	return &EPrescription{
		Base:       newBase(),
		SCSContext: &EPrescriptionContext{},
		SCSContent: &EPrescriptionContent{PrescriptionItem: model.NewPrescriptionItem()},
	}
}

func (d *EPrescription) DocumentType() cda.DocumentType { return cda.EPrescription }

func (d *EPrescription) Subject() *model.SubjectOfCare {
	if d.SCSContext == nil {
		return nil
	}
	return d.SCSContext.SubjectOfCare
}

func (d *EPrescription) Validate(v *validation.Builder) {
	d.Base.validate(v)
	if v.ArgumentRequiredCheck("SCSContext", d.SCSContext) {
		d.SCSContext.Validate("SCSContext", v)
	}
	if v.ArgumentRequiredCheck("SCSContent", d.SCSContent) {
		d.SCSContent.Validate("SCSContent", v)
	}
}

func (c *EPrescriptionContext) Validate(path string, v *validation.Builder) {
	if v.ArgumentRequiredCheck(path+".Prescriber", c.Prescriber) {
		c.Prescriber.Validate(path+".Prescriber", v)
	}
	if v.ArgumentRequiredCheck(path+".PrescriberOrganisation", c.PrescriberOrganisation) {
		c.PrescriberOrganisation.Validate(path+".PrescriberOrganisation", v)
	}
	requireSubject(v, path+".SubjectOfCare", c.SubjectOfCare)
}

func (c *EPrescriptionContent) Validate(path string, v *validation.Builder) {
	if v.ArgumentRequiredCheck(path+".PrescriptionItem", c.PrescriptionItem) {
		c.PrescriptionItem.Validate(path+".PrescriptionItem", v)
	}
	validation.ValidateEach(v, path+".Observations", ptrs(c.Observations))
}

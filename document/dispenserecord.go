package document

import (
	"encoding/xml"

	cda "github.com/gofhir/cda"
	"github.com/gofhir/cda/model"
	"github.com/gofhir/cda/validation"
)

// DispenseRecord records the supply of a prescribed medicine by a pharmacy.
type DispenseRecord struct {
	XMLName xml.Name `xml:"http://ns.gofhir.org/cda/model DispenseRecord" json:"-"`
	Base
	SCSContext *DispenseRecordContext `xml:",omitempty"`
	SCSContent *DispenseRecordContent `xml:",omitempty"`
}

type DispenseRecordContext struct {
	Dispenser             *model.Dispenser             `xml:",omitempty"`
	DispenserOrganisation *model.DispenserOrganisation `xml:",omitempty"`
	SubjectOfCare         *model.SubjectOfCare         `xml:",omitempty"`
}

type DispenseRecordContent struct {
	DispenseItem *model.DispenseItem `xml:",omitempty"`
}

// NewDispenseRecord returns an empty dispense record.
func NewDispenseRecord() *DispenseRecord {
	return &DispenseRecord{
		Base:       newBase(),
		SCSContext: &DispenseRecordContext{},
		SCSContent: &DispenseRecordContent{},
	}
}

func (d *DispenseRecord) DocumentType() cda.DocumentType { return cda.DispenseRecord }

func (d *DispenseRecord) Subject() *model.SubjectOfCare {
	if d.SCSContext == nil {
		return nil
	}
	return d.SCSContext.SubjectOfCare
}

func (d *DispenseRecord) Validate(v *validation.Builder) {
	d.Base.validate(v)
	if v.ArgumentRequiredCheck("SCSContext", d.SCSContext) {
		d.SCSContext.Validate("SCSContext", v)
	}
	if v.ArgumentRequiredCheck("SCSContent", d.SCSContent) {
		d.SCSContent.Validate("SCSContent", v)
	}
}

func (c *DispenseRecordContext) Validate(path string, v *validation.Builder) {
	if v.ArgumentRequiredCheck(path+".Dispenser", c.Dispenser) {
		c.Dispenser.Validate(path+".Dispenser", v)
	}
	if v.ArgumentRequiredCheck(path+".DispenserOrganisation", c.DispenserOrganisation) {
		c.DispenserOrganisation.Validate(path+".DispenserOrganisation", v)
	}
	requireSubject(v, path+".SubjectOfCare", c.SubjectOfCare)
}

func (c *DispenseRecordContent) Validate(path string, v *validation.Builder) {
	if v.ArgumentRequiredCheck(path+".DispenseItem", c.DispenseItem) {
		c.DispenseItem.Validate(path+".DispenseItem", v)
	}
}

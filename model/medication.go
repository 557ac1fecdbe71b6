package model

import (
	"strconv"

	"github.com/gofhir/cda/validation"
)

// PrescriptionItem is a single medicine ordered on an electronic prescription.
type PrescriptionItem struct {
	PrescriptionItemIdentifier    *Identifier      `xml:",omitempty"`
	Medicine                      *CodableText     `xml:",omitempty"`
	DateTimePrescriptionWritten   *ISO8601DateTime `xml:",omitempty"`
	DateTimePrescriptionExpires   *ISO8601DateTime `xml:",omitempty"`
	Directions                    string           `xml:",omitempty"`
	QuantityDescription           string           `xml:",omitempty"`
	MaximumRepeats                int
	MinimumIntervalBetweenRepeats *Interval    `xml:",omitempty"`
	PBSItemCode                   *CodableText `xml:",omitempty"`
	BrandSubstituteNotAllowed     bool         `xml:",omitempty"`
	ClinicalIndication            string       `xml:",omitempty"`
	Comment                       string       `xml:",omitempty"`
}

// NewPrescriptionItem returns a prescription item with a fresh identifier.
func NewPrescriptionItem() *PrescriptionItem {
	return &PrescriptionItem{PrescriptionItemIdentifier: NewUUIDIdentifier()}
}

// Validate reports the required fields of the prescription item missing under path.
func (p *PrescriptionItem) Validate(path string, v *validation.Builder) {
	if v.ArgumentRequiredCheck(path+".PrescriptionItemIdentifier", p.PrescriptionItemIdentifier) {
		p.PrescriptionItemIdentifier.Validate(path+".PrescriptionItemIdentifier", v)
	}
	if v.ArgumentRequiredCheck(path+".Medicine", p.Medicine) {
		p.Medicine.Validate(path+".Medicine", v)
	}
	v.ArgumentRequiredCheck(path+".DateTimePrescriptionWritten", p.DateTimePrescriptionWritten)
	v.ArgumentRequiredCheck(path+".Directions", p.Directions)
	v.ArgumentRequiredCheck(path+".QuantityDescription", p.QuantityDescription)
	if p.MaximumRepeats < 0 {
		v.AddValidationMessage(path+".MaximumRepeats", strconv.Itoa(p.MaximumRepeats), "must not be negative")
	}
	if p.DateTimePrescriptionExpires != nil && p.DateTimePrescriptionWritten != nil &&
		p.DateTimePrescriptionExpires.Before(p.DateTimePrescriptionWritten) {
		v.AddValidationMessage(path+".DateTimePrescriptionExpires", p.DateTimePrescriptionExpires.String(), "expiry is before the prescription was written")
	}
	validation.Validate(v, path+".MinimumIntervalBetweenRepeats", p.MinimumIntervalBetweenRepeats)
	validation.Validate(v, path+".PBSItemCode", p.PBSItemCode)
}

// DispenseItem records one supply of a prescribed medicine.
type DispenseItem struct {
	DispenseItemIdentifier     *Identifier      `xml:",omitempty"`
	PrescriptionItemIdentifier *Identifier      `xml:",omitempty"`
	Medicine                   *CodableText     `xml:",omitempty"`
	DateTimeOfDispenseEvent    *ISO8601DateTime `xml:",omitempty"`
	QuantityDescription        string           `xml:",omitempty"`
	LabelInstruction           string           `xml:",omitempty"`
	NumberOfThisDispense       int
	MaximumNumberOfRepeats     int
	PBSItemCode                *CodableText `xml:",omitempty"`
	Brand                      string       `xml:",omitempty"`
	Comment                    string       `xml:",omitempty"`
}

// NewDispenseItem returns the first dispense of prescription item rx.
func NewDispenseItem(rx *Identifier) *DispenseItem {
	return &DispenseItem{
		DispenseItemIdentifier:     NewUUIDIdentifier(),
		PrescriptionItemIdentifier: rx,
		NumberOfThisDispense:       1,
	}
}

// RepeatsRemaining returns the number of supplies still available after
// this one.
func (d *DispenseItem) RepeatsRemaining() int {
	if n := d.MaximumNumberOfRepeats + 1 - d.NumberOfThisDispense; n > 0 {
		return n
	}
	return 0
}

// Validate requires both item identifiers, the medicine, the dispense time and
// quantity, and a dispense number of at least 1.
func (d *DispenseItem) Validate(path string, v *validation.Builder) {
	if v.ArgumentRequiredCheck(path+".DispenseItemIdentifier", d.DispenseItemIdentifier) {
		d.DispenseItemIdentifier.Validate(path+".DispenseItemIdentifier", v)
	}
	if v.ArgumentRequiredCheck(path+".PrescriptionItemIdentifier", d.PrescriptionItemIdentifier) {
		d.PrescriptionItemIdentifier.Validate(path+".PrescriptionItemIdentifier", v)
	}
	if v.ArgumentRequiredCheck(path+".Medicine", d.Medicine) {
		d.Medicine.Validate(path+".Medicine", v)
	}
	v.ArgumentRequiredCheck(path+".DateTimeOfDispenseEvent", d.DateTimeOfDispenseEvent)
	v.ArgumentRequiredCheck(path+".QuantityDescription", d.QuantityDescription)
	if d.NumberOfThisDispense < 1 {
		v.AddValidationMessage(path+".NumberOfThisDispense", strconv.Itoa(d.NumberOfThisDispense), "must be at least 1")
	}
	if d.MaximumNumberOfRepeats < 0 {
		v.AddValidationMessage(path+".MaximumNumberOfRepeats", strconv.Itoa(d.MaximumNumberOfRepeats), "must not be negative")
	}
	validation.Validate(v, path+".PBSItemCode", d.PBSItemCode)
}

// Observation is a clinical measurement recorded with a prescription, such
// as body weight.
type Observation struct {
	ObservationName       *CodableText     `xml:",omitempty"`
	Value                 *Quantity        `xml:",omitempty"`
	DateTimeOfObservation *ISO8601DateTime `xml:",omitempty"`
}

// Validate reports the required fields of the observation missing under path.
func (o *Observation) Validate(path string, v *validation.Builder) {
	if v.ArgumentRequiredCheck(path+".ObservationName", o.ObservationName) {
		o.ObservationName.Validate(path+".ObservationName", v)
	}
	if v.ArgumentRequiredCheck(path+".Value", o.Value) {
		o.Value.Validate(path+".Value", v)
	}
	v.ArgumentRequiredCheck(path+".DateTimeOfObservation", o.DateTimeOfObservation)
}

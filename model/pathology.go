package model

import (
	"github.com/gofhir/cda/validation"
	"github.com/gofhir/cda/vocab"
)

// TestResult is one pathology test with its individual result values.
type TestResult struct {
	TestResultName       *CodableText          `xml:",omitempty"`
	DiagnosticService    *CodableText          `xml:",omitempty"`
	Status               vocab.ResultStatus    `xml:",omitempty"`
	ObservationDateTime  *ISO8601DateTime      `xml:",omitempty"`
	ReportingPathologist *ReportingPathologist `xml:",omitempty"`
	Results              []ResultValue         `xml:"Result,omitempty"`
	Specimens            []Specimen            `xml:"Specimen,omitempty"`
	Conclusion           string                `xml:",omitempty"`
	TestComment          string                `xml:",omitempty"`
}

// NewTestResult returns a test result named name.
func NewTestResult(name *CodableText) *TestResult {
	return &TestResult{TestResultName: name}
}

// Validate reports the required fields of the test result missing under path.
func (t *TestResult) Validate(path string, v *validation.Builder) {
	if v.ArgumentRequiredCheck(path+".TestResultName", t.TestResultName) {
		t.TestResultName.Validate(path+".TestResultName", v)
	}
	if v.ArgumentRequiredCheck(path+".DiagnosticService", t.DiagnosticService) {
		t.DiagnosticService.Validate(path+".DiagnosticService", v)
	}
	v.ArgumentRequiredCheck(path+".Status", t.Status)
	v.ArgumentRequiredCheck(path+".ObservationDateTime", t.ObservationDateTime)
	if v.ArgumentRequiredCheck(path+".ReportingPathologist", t.ReportingPathologist) {
		t.ReportingPathologist.Validate(path+".ReportingPathologist", v)
	}
	validation.RequireEach(v, path+".Results", ptrs(t.Results), 1)
	validation.ValidateEach(v, path+".Specimens", ptrs(t.Specimens))
}

// ResultValue is a single measured or coded result. Exactly one of
// Quantity, CodedValue or Text is set.
type ResultValue struct {
	Name            *CodableText         `xml:",omitempty"`
	Quantity        *Quantity            `xml:",omitempty"`
	CodedValue      *CodableText         `xml:",omitempty"`
	Text            string               `xml:",omitempty"`
	Interpretation  vocab.Interpretation `xml:",omitempty"`
	ReferenceRanges []ReferenceRange     `xml:"ReferenceRange,omitempty"`
	Comment         string               `xml:",omitempty"`
}

// Validate requires a name and exactly one value. Reference ranges must use the
// units of a quantity value.
func (r *ResultValue) Validate(path string, v *validation.Builder) {
	if v.ArgumentRequiredCheck(path+".Name", r.Name) {
		r.Name.Validate(path+".Name", v)
	}
	v.ChoiceCheck(path, []string{"Quantity", "CodedValue", "Text"}, r.Quantity, r.CodedValue, r.Text)
	validation.Validate(v, path+".Quantity", r.Quantity)
	validation.Validate(v, path+".CodedValue", r.CodedValue)
	for i := range r.ReferenceRanges {
		rr := &r.ReferenceRanges[i]
		rp := validation.Index(path+".ReferenceRanges", i)
		rr.Validate(rp, v)
		if r.Quantity != nil && !rr.sameUnits(r.Quantity.Units) {
			v.AddValidationMessage(rp, r.Quantity.Units, "reference range units differ from the result units")
		}
	}
}

// ReferenceRange is the normal range a quantity result is compared with.
type ReferenceRange struct {
	Meaning *CodableText `xml:",omitempty"`
	Low     *Quantity    `xml:",omitempty"`
	High    *Quantity    `xml:",omitempty"`
}

// NewReferenceRange returns the range [low, high].
func NewReferenceRange(low, high *Quantity) *ReferenceRange {
	return &ReferenceRange{Low: low, High: high}
}

// Contains reports whether q lies inside the range.
func (r *ReferenceRange) Contains(q *Quantity) bool {
	if q == nil {
		return false
	}
	if r.Low != nil && q.Value.LessThan(r.Low.Value) {
		return false
	}
	if r.High != nil && q.Value.GreaterThan(r.High.Value) {
		return false
	}
	return true
}

func (r *ReferenceRange) sameUnits(units string) bool {
	return (r.Low == nil || r.Low.Units == units) && (r.High == nil || r.High.Units == units)
}

// Validate requires a low or high value, with low not above high.
func (r *ReferenceRange) Validate(path string, v *validation.Builder) {
	if r.Low == nil && r.High == nil {
		v.AddValidationMessage(path, "", "a reference range needs a low or high value")
		return
	}
	validation.Validate(v, path+".Low", r.Low)
	validation.Validate(v, path+".High", r.High)
	if r.Low != nil && r.High != nil && r.Low.Value.GreaterThan(r.High.Value) {
		v.AddValidationMessage(path+".High", r.High.String(), "high must not be below low")
	}
	validation.Validate(v, path+".Meaning", r.Meaning)
}

// Specimen is the sample a test was performed on.
type Specimen struct {
	SpecimenType        *CodableText     `xml:",omitempty"`
	AnatomicalSite      *CodableText     `xml:",omitempty"`
	CollectionProcedure *CodableText     `xml:",omitempty"`
	CollectionDateTime  *ISO8601DateTime `xml:",omitempty"`
	Identifier          *Identifier      `xml:",omitempty"`
}

// Validate reports the required fields of the specimen missing under path.
func (s *Specimen) Validate(path string, v *validation.Builder) {
	if v.ArgumentRequiredCheck(path+".SpecimenType", s.SpecimenType) {
		s.SpecimenType.Validate(path+".SpecimenType", v)
	}
	v.ArgumentRequiredCheck(path+".CollectionDateTime", s.CollectionDateTime)
	validation.Validate(v, path+".AnatomicalSite", s.AnatomicalSite)
	validation.Validate(v, path+".CollectionProcedure", s.CollectionProcedure)
	validation.Validate(v, path+".Identifier", s.Identifier)
}

package model

import (
	"github.com/shopspring/decimal"

	cda "github.com/gofhir/cda"
	"github.com/gofhir/cda/validation"
)

// Quantity is a decimal amount with UCUM units.
type Quantity struct {
	Value decimal.Decimal
	Units string `xml:",omitempty"`
}

// NewQuantity returns value in units.
func NewQuantity(value decimal.Decimal, units string) *Quantity {
	return &Quantity{Value: value, Units: units}
}

// ParseQuantity parses a decimal value such as "72.5".
func ParseQuantity(value, units string) (*Quantity, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return nil, cda.NewArgumentError("value", value, "is not a decimal")
	}
	return &Quantity{Value: d, Units: units}, nil
}

// String renders the quantity, e.g. "72.5 kg".
func (q *Quantity) String() string {
	if q.Units == "" || q.Units == "1" {
		return q.Value.String()
	}
	return q.Value.String() + " " + q.Units
}

// Validate requires units.
func (q *Quantity) Validate(path string, v *validation.Builder) {
	v.ArgumentRequiredCheck(path+".Units", q.Units)
}

// Interval is a time range described by bounds, a center or a width.
type Interval struct {
	Low    *ISO8601DateTime `xml:",omitempty"`
	High   *ISO8601DateTime `xml:",omitempty"`
	Center *ISO8601DateTime `xml:",omitempty"`
	Width  *Quantity        `xml:",omitempty"`
}

// NewInterval returns the range [low, high]. Either bound may be nil.
func NewInterval(low, high *ISO8601DateTime) *Interval {
	return &Interval{Low: low, High: high}
}

// NewWidthInterval returns a duration such as 3 months.
func NewWidthInterval(value int64, units string) *Interval {
	return &Interval{Width: NewQuantity(decimal.NewFromInt(value), units)}
}

// Validate requires at least one of low, high, center or width, and high not before low.
func (i *Interval) Validate(path string, v *validation.Builder) {
	if i.Low == nil && i.High == nil && i.Center == nil && i.Width == nil {
		v.AddValidationMessage(path, "", "an interval needs a low, high, center or width")
		return
	}
	if i.Center != nil && (i.Low != nil || i.High != nil) {
		v.AddValidationMessage(path+".Center", i.Center.String(), "center cannot be combined with low or high")
	}
	if i.Low != nil && i.High != nil && i.Low.After(i.High) {
		v.AddValidationMessage(path+".High", i.High.String(), "high must not be before low")
	}
	validation.Validate(v, path+".Width", i.Width)
}

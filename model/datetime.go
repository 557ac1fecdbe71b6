package model

import (
	"strings"
	"time"

	cda "github.com/gofhir/cda"
)

// Precision is how much of an ISO8601DateTime is significant.
type Precision int

const (
	PrecisionSecond Precision = iota
	PrecisionMinute
	PrecisionDay
	PrecisionMonth
	PrecisionYear
)

var precisionLayouts = map[Precision]string{
	PrecisionSecond: "20060102150405-0700",
	PrecisionMinute: "200601021504-0700",
	PrecisionDay:    "20060102",
	PrecisionMonth:  "200601",
	PrecisionYear:   "2006",
}

// ISO8601DateTime is a point in time with a precision, written in the HL7
// TS form (e.g. "20240131093000+1000" or "19630524").
type ISO8601DateTime struct {
	Time      time.Time
	Precision Precision
}

// NewISO8601DateTime returns t at the given precision.
func NewISO8601DateTime(t time.Time, p Precision) *ISO8601DateTime {
	return &ISO8601DateTime{Time: t, Precision: p}
}

// DateTime returns t at second precision.
func DateTime(t time.Time) *ISO8601DateTime {
	return NewISO8601DateTime(t, PrecisionSecond)
}

// Date returns a day-precision date.
func Date(year int, month time.Month, day int) *ISO8601DateTime {
	return NewISO8601DateTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC), PrecisionDay)
}

// IsZero reports whether no time is set.
func (d ISO8601DateTime) IsZero() bool {
	return d.Time.IsZero()
}

// Before reports whether d is before o.
func (d *ISO8601DateTime) Before(o *ISO8601DateTime) bool {
	return d.Time.Before(o.Time)
}

// After reports whether d is after o.
func (d *ISO8601DateTime) After(o *ISO8601DateTime) bool {
	return d.Time.After(o.Time)
}

// String returns the HL7 TS form.
func (d ISO8601DateTime) String() string {
	layout, ok := precisionLayouts[d.Precision]
	if !ok {
		layout = precisionLayouts[PrecisionSecond]
	}
	return d.Time.Format(layout)
}

// MarshalText implements encoding.TextMarshaler.
func (d ISO8601DateTime) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The precision is
// taken from the length of the value.
func (d *ISO8601DateTime) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	t, p, err := ParseISO8601DateTime(s)
	if err != nil {
		return err
	}
	d.Time = t
	d.Precision = p
	return nil
}

// ParseISO8601DateTime parses an HL7 TS value. Fractional seconds are
// accepted and dropped.
func ParseISO8601DateTime(s string) (time.Time, Precision, error) {
	digits, zone := s, ""
	if i := strings.IndexAny(s, "+-"); i >= 0 {
		digits, zone = s[:i], s[i:]
	}
	if i := strings.IndexByte(digits, '.'); i >= 0 {
		digits = digits[:i]
	}

	var p Precision
	switch len(digits) {
	case 4:
		p = PrecisionYear
	case 6:
		p = PrecisionMonth
	case 8:
		p = PrecisionDay
	case 12:
		p = PrecisionMinute
	case 14:
		p = PrecisionSecond
	default:
		return time.Time{}, 0, cda.NewArgumentError("datetime", s, "is not an HL7 TS value")
	}

	layout := precisionLayouts[p]
	value := digits
	switch {
	case p == PrecisionMinute || p == PrecisionSecond:
		if zone == "" {
			layout = strings.TrimSuffix(layout, "-0700")
		} else {
			value += zone
		}
	case zone != "":
		return time.Time{}, 0, cda.NewArgumentError("datetime", s, "a time zone needs a time of day")
	}

	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, 0, cda.NewArgumentError("datetime", s, "%v", err)
	}
	if zone != "" {
		_, off := t.Zone()
		if off == 0 {
			t = t.UTC()
		} else {
			t = t.In(time.FixedZone("", off))
		}
	}
	return t, p, nil
}

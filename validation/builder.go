// Package validation collects path-qualified required-field messages while
// a document graph is traversed depth-first.
package validation

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	cda "github.com/gofhir/cda"
)

// Validatable is implemented by every model object. Validate checks the
// object's own required fields and delegates to its children, prefixing
// every message with path.
type Validatable interface {
	Validate(path string, v *Builder)
}

// Builder accumulates validation issues.
// A Builder is not safe for concurrent use.
type Builder struct {
	issues []cda.Issue
	phase  string
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// NewPhaseBuilder creates a Builder that tags every issue with phase.
func NewPhaseBuilder(phase string) *Builder {
	return &Builder{phase: phase}
}

// ArgumentRequiredCheck records a "required" error at path when value is
// empty and reports whether value was present.
func (b *Builder) ArgumentRequiredCheck(path string, value any) bool {
	if IsEmpty(value) {
		b.add(cda.Error(cda.IssueTypeRequired).
			At(path).
			Diagnostics("is required").
			Build())
		return false
	}
	return true
}

// RangeCheck records an error when count is outside [min, max] and reports
// whether it was in range. A max below zero means unbounded.
func (b *Builder) RangeCheck(path string, count, min, max int) bool {
	if count >= min && (max < 0 || count <= max) {
		return true
	}
	var msg string
	switch {
	case max < 0:
		msg = fmt.Sprintf("must contain at least %d item(s), found %d", min, count)
	case min == max:
		msg = fmt.Sprintf("must contain exactly %d item(s), found %d", min, count)
	default:
		msg = fmt.Sprintf("must contain between %d and %d item(s), found %d", min, max, count)
	}
	b.add(cda.Error(cda.IssueTypeCardinality).At(path).Diagnostics(msg).Build())
	return false
}

// ChoiceCheck records an error unless exactly one of values is present.
func (b *Builder) ChoiceCheck(path string, names []string, values ...any) bool {
	present := 0
	for _, v := range values {
		if !IsEmpty(v) {
			present++
		}
	}
	if present == 1 {
		return true
	}
	msg := "exactly one of " + strings.Join(names, ", ") + " must be provided"
	b.add(cda.Error(cda.IssueTypeBusinessRule).At(path).Diagnostics(msg).Build())
	return false
}

// AddValidationMessage records an error for an invalid value at path.
func (b *Builder) AddValidationMessage(path, value, message string) {
	b.add(cda.Error(cda.IssueTypeValue).At(path).Value(value).Diagnostics(message).Build())
}

// AddWarning records a warning at path.
func (b *Builder) AddWarning(path, message string) {
	b.add(cda.Warning(cda.IssueTypeValue).At(path).Diagnostics(message).Build())
}

// AddIssue records a pre-built issue.
func (b *Builder) AddIssue(issue cda.Issue) {
	b.add(issue)
}

func (b *Builder) add(issue cda.Issue) {
	if issue.Phase == "" {
		issue.Phase = b.phase
	}
	b.issues = append(b.issues, issue)
}

// Issues returns every recorded issue in the order found.
func (b *Builder) Issues() []cda.Issue {
	return b.issues
}

// Messages returns every issue rendered as "path: message".
func (b *Builder) Messages() []string {
	out := make([]string, len(b.issues))
	for i, issue := range b.issues {
		out[i] = issue.Path + ": " + issue.Diagnostics
	}
	return out
}

// HasErrors reports whether any error was recorded.
func (b *Builder) HasErrors() bool {
	for _, issue := range b.issues {
		if issue.IsError() {
			return true
		}
	}
	return false
}

// Err returns a *cda.ValidationError for the recorded errors, or nil.
func (b *Builder) Err(dt cda.DocumentType) error {
	if ve := cda.NewValidationError(dt, b.issues); ve != nil {
		return ve
	}
	return nil
}

// Validate runs item.Validate when item is present. It does not record a
// message for a missing item.
func Validate(v *Builder, path string, item Validatable) {
	if !IsEmpty(item) {
		item.Validate(path, v)
	}
}

// ValidateEach validates every element of items at path[i].
func ValidateEach[T Validatable](v *Builder, path string, items []T) {
	for i, item := range items {
		Validate(v, Index(path, i), item)
	}
}

// RequireEach checks that items has at least min entries and validates each.
func RequireEach[T Validatable](v *Builder, path string, items []T, min int) {
	if min > 0 && len(items) == 0 {
		v.ArgumentRequiredCheck(path, items)
		return
	}
	if v.RangeCheck(path, len(items), min, -1) {
		ValidateEach(v, path, items)
	}
}

// IsEmpty reports whether value counts as absent: nil, a nil pointer or
// interface, a blank string, an empty slice or map, a zero time, or a zero
// struct.
func IsEmpty(value any) bool {
	if value == nil {
		return true
	}
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v) == ""
	case time.Time:
		return v.IsZero()
	case interface{ IsZero() bool }:
		rv := reflect.ValueOf(value)
		if rv.Kind() == reflect.Ptr && rv.IsNil() {
			return true
		}
		return v.IsZero()
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	case reflect.Slice, reflect.Map:
		return rv.Len() == 0
	case reflect.String:
		return strings.TrimSpace(rv.String()) == ""
	case reflect.Struct:
		return rv.IsZero()
	}
	return false
}

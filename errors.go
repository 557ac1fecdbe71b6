package cda

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ValidationError aggregates the error issues found while validating a
// document. Generation is aborted when one is returned.
type ValidationError struct {
	DocumentType DocumentType
	Issues       []Issue
}

// Error lists every message, one per line.
func (e *ValidationError) Error() string {
	var b strings.Builder
	if e.DocumentType != "" {
		fmt.Fprintf(&b, "%s validation failed with %d error(s)", e.DocumentType, len(e.Issues))
	} else {
		fmt.Fprintf(&b, "validation failed with %d error(s)", len(e.Issues))
	}
	for _, issue := range e.Issues {
		b.WriteString("\n  ")
		b.WriteString(issue.String())
	}
	return b.String()
}

// Paths returns the path of every issue in order.
func (e *ValidationError) Paths() []string {
	paths := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		paths = append(paths, issue.Path)
	}
	return paths
}

// NewValidationError builds a ValidationError from the error issues in
// issues. It returns nil when none of them are errors.
func NewValidationError(dt DocumentType, issues []Issue) *ValidationError {
	var errs []Issue
	for _, issue := range issues {
		if issue.IsError() {
			errs = append(errs, issue)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{DocumentType: dt, Issues: errs}
}

// AsValidationError unwraps err into a *ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// ArgumentError reports a malformed argument to a constructor or helper,
// for example a Medicare number of the wrong length.
type ArgumentError struct {
	Param   string
	Value   string
	Message string
}

func (e *ArgumentError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid argument %s: %s", e.Param, e.Message)
	}
	return fmt.Sprintf("invalid argument %s %q: %s", e.Param, e.Value, e.Message)
}

// NewArgumentError returns an *ArgumentError.
func NewArgumentError(param, value, format string, args ...any) error {
	return &ArgumentError{Param: param, Value: value, Message: fmt.Sprintf(format, args...)}
}

// IsArgumentError reports whether err wraps an *ArgumentError.
func IsArgumentError(err error) bool {
	var ae *ArgumentError
	return errors.As(err, &ae)
}

package phase

import (
	"github.com/pkg/errors"

	cda "github.com/gofhir/cda"
)

// Phase names, also used as the Issue.Phase of every issue a phase reports.
const (
	NameRequired    = "required"
	NameIdentifiers = "identifiers"
	NameTerminology = "terminology"
	NameConstraints = "constraints"
)

// ErrorIssue creates an error issue.
func ErrorIssue(code cda.IssueType, diagnostics, path, phase string) cda.Issue {
	return cda.Error(code).Diagnostics(diagnostics).At(path).Phase(phase).Build()
}

// WarningIssue creates a warning issue.
func WarningIssue(code cda.IssueType, diagnostics, path, phase string) cda.Issue {
	return cda.Warning(code).Diagnostics(diagnostics).At(path).Phase(phase).Build()
}

// ProcessingIssue reports that a phase could not complete a check.
func ProcessingIssue(err error, path, phase string) cda.Issue {
	return WarningIssue(cda.IssueTypeProcessing, err.Error(), path, phase)
}

// argumentMessage returns the message of an ArgumentError without the
// parameter prefix.
func argumentMessage(err error) string {
	var ae *cda.ArgumentError
	if errors.As(err, &ae) {
		return ae.Message
	}
	return err.Error()
}

package cda

import "strings"

// IssueSeverity grades an Issue. Only fatal and error issues block
// generation.
type IssueSeverity string

const (
	SeverityFatal       IssueSeverity = "fatal"
	SeverityError       IssueSeverity = "error"
	SeverityWarning     IssueSeverity = "warning"
	SeverityInformation IssueSeverity = "information"
)

// IssueType says what kind of rule an Issue breaks.
type IssueType string

const (
	IssueTypeRequired     IssueType = "required"      // mandatory property missing
	IssueTypeCardinality  IssueType = "cardinality"   // too few or too many entries
	IssueTypeValue        IssueType = "value"         // value out of range or not allowed
	IssueTypeIdentifier   IssueType = "identifier"    // malformed HPI, Medicare or DVA number
	IssueTypeCodeInvalid  IssueType = "code-invalid"  // code unknown to its code system
	IssueTypeInvariant    IssueType = "invariant"     // document-level rule broken
	IssueTypeBusinessRule IssueType = "business-rule" // forbidden combination of values
	IssueTypeProcessing   IssueType = "processing"    // the validator itself failed
	IssueTypeTimeout      IssueType = "timeout"       // a phase ran out of time
)

// Issue is one validation finding. Path is the dotted object path from the
// document root, with list positions in brackets, e.g.
// "SCSContext.Author.Participant.PersonOrOrganisation.PersonName[0]".
type Issue struct {
	Severity    IssueSeverity `json:"severity"`
	Code        IssueType     `json:"code"`
	Diagnostics string        `json:"diagnostics,omitempty"`
	Path        string        `json:"path,omitempty"`

	// Value is the offending value as text, if any.
	Value string `json:"value,omitempty"`

	// Phase names the validation step that reported the issue.
	Phase string `json:"phase,omitempty"`

	// RuleKey names the broken invariant, e.g. "erx-1".
	RuleKey string `json:"ruleKey,omitempty"`
}

// IsError reports whether the issue blocks generation.
func (i Issue) IsError() bool {
	switch i.Severity {
	case SeverityError, SeverityFatal:
		return true
	}
	return false
}

// IsWarning reports whether the issue is a warning.
func (i Issue) IsWarning() bool { return i.Severity == SeverityWarning }

// String formats the issue as "severity: path: diagnostics".
func (i Issue) String() string {
	parts := make([]string, 0, 3)
	parts = append(parts, string(i.Severity))
	if i.Path != "" {
		parts = append(parts, i.Path)
	}
	parts = append(parts, i.Diagnostics)
	return strings.Join(parts, ": ")
}

// IssueBuilder assembles an Issue field by field:
//
//	cda.Error(cda.IssueTypeRequired).Diagnostics("is required").At(path).Build()
type IssueBuilder struct {
	issue Issue
}

// NewIssue starts an issue of the given severity and type.
func NewIssue(severity IssueSeverity, code IssueType) *IssueBuilder {
	return &IssueBuilder{issue: Issue{Severity: severity, Code: code}}
}

// Error starts an error issue.
func Error(code IssueType) *IssueBuilder { return NewIssue(SeverityError, code) }

// Warning starts a warning.
func Warning(code IssueType) *IssueBuilder { return NewIssue(SeverityWarning, code) }

// Info starts an information issue.
func Info(code IssueType) *IssueBuilder { return NewIssue(SeverityInformation, code) }

func (b *IssueBuilder) Diagnostics(msg string) *IssueBuilder {
	b.issue.Diagnostics = msg
	return b
}

func (b *IssueBuilder) At(path string) *IssueBuilder {
	b.issue.Path = path
	return b
}

func (b *IssueBuilder) Value(v string) *IssueBuilder {
	b.issue.Value = v
	return b
}

func (b *IssueBuilder) Phase(phase string) *IssueBuilder {
	b.issue.Phase = phase
	return b
}

func (b *IssueBuilder) Rule(key string) *IssueBuilder {
	b.issue.RuleKey = key
	return b
}

// Build returns a copy of the assembled issue.
func (b *IssueBuilder) Build() Issue {
	return b.issue
}

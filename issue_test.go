package cda

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIssue_Severity(t *testing.T) {
	tests := []struct {
		severity IssueSeverity
		isError  bool
		warning  bool
	}{
		{SeverityFatal, true, false},
		{SeverityError, true, false},
		{SeverityWarning, false, true},
		{SeverityInformation, false, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			issue := Issue{Severity: tt.severity}
			assert.Equal(t, tt.isError, issue.IsError())
			assert.Equal(t, tt.warning, issue.IsWarning())
		})
	}
}

func TestIssue_String(t *testing.T) {
	assert.Equal(t, "error: is required",
		Issue{Severity: SeverityError, Diagnostics: "is required"}.String())
	assert.Equal(t, "error: CDAContext.SetID: is required",
		Issue{Severity: SeverityError, Diagnostics: "is required", Path: "CDAContext.SetID"}.String())
}

func TestIssueBuilder(t *testing.T) {
	path := "SCSContext.SubjectOfCare.Participant.Entitlements[0].ID.Extension"
	issue := Error(IssueTypeIdentifier).
		Diagnostics("Medicare number check digit mismatch").
		At(path).
		Value("2123456781").
		Phase("identifiers").
		Build()

	assert.Equal(t, Issue{
		Severity:    SeverityError,
		Code:        IssueTypeIdentifier,
		Diagnostics: "Medicare number check digit mismatch",
		Path:        path,
		Value:       "2123456781",
		Phase:       "identifiers",
	}, issue)

	w := Warning(IssueTypeCodeInvalid).Rule("disp-1").Build()
	assert.True(t, w.IsWarning())
	assert.Equal(t, "disp-1", w.RuleKey)
	assert.Equal(t, SeverityInformation, Info(IssueTypeValue).Build().Severity)
}

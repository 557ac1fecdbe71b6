package cda

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	issues := []Issue{
		Error(IssueTypeRequired).At("CDAContext.SetID").Diagnostics("is required").Build(),
		Warning(IssueTypeCodeInvalid).At("SCSContent.Medications[0].Code").Diagnostics("display mismatch").Build(),
		Error(IssueTypeRequired).At("CDAContext.Custodian").Diagnostics("is required").Build(),
	}

	ve := NewValidationError(EReferral, issues)
	require.NotNil(t, ve)
	assert.Len(t, ve.Issues, 2)
	assert.Equal(t, []string{"CDAContext.SetID", "CDAContext.Custodian"}, ve.Paths())
	assert.Contains(t, ve.Error(), "EReferral validation failed with 2 error(s)")
	assert.Contains(t, ve.Error(), "error: CDAContext.SetID: is required")

	assert.Nil(t, NewValidationError(EReferral, issues[1:2]))
}

func TestAsValidationError(t *testing.T) {
	ve := NewValidationError("", []Issue{Error(IssueTypeRequired).At("CDAContext").Build()})
	wrapped := errors.Wrap(ve, "generate")

	got, ok := AsValidationError(wrapped)
	require.True(t, ok)
	assert.Same(t, ve, got)
	assert.Contains(t, ve.Error(), "validation failed with 1 error(s)")

	_, ok = AsValidationError(errors.New("boom"))
	assert.False(t, ok)
}

func TestArgumentError(t *testing.T) {
	err := NewArgumentError("number", "12345", "must be 10 or 11 digits")
	assert.EqualError(t, err, `invalid argument number "12345": must be 10 or 11 digits`)
	assert.True(t, IsArgumentError(errors.Wrap(err, "medicare")))
	assert.False(t, IsArgumentError(errors.New("x")))

	err = NewArgumentError("type", "", "unsupported identifier type")
	assert.EqualError(t, err, "invalid argument type: unsupported identifier type")
}

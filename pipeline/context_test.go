package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cda "github.com/gofhir/cda"
	"github.com/gofhir/cda/document"
	"github.com/gofhir/cda/model"
)

func TestContext_Pool(t *testing.T) {
	c := AcquireContext()
	c.SetDocument(document.NewDispenseRecord())
	c.Result = cda.NewResult()
	c.MaxErrors = 3
	c.Release()

	c = AcquireContext()
	defer c.Release()
	assert.Nil(t, c.Document)
	assert.Empty(t, c.DocumentType)
	assert.Nil(t, c.Result)
	assert.Zero(t, c.MaxErrors)
}

func TestContext_DocumentJSON(t *testing.T) {
	doc := document.NewEReferral()
	doc.CDAContext = model.NewCDAContext()
	c := NewContext(doc)

	first, err := c.DocumentJSON()
	require.NoError(t, err)
	assert.Contains(t, string(first), `"CDAContext"`)
	assert.NotContains(t, string(first), `"DocumentStatus"`)

	// computed once
	doc.DocumentStatus = "F"
	second, err := c.DocumentJSON()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	c.Reset()
	c.SetDocument(doc)
	third, err := c.DocumentJSON()
	require.NoError(t, err)
	assert.Contains(t, string(third), `"DocumentStatus":"F"`)
}

func TestContext_ShouldStop(t *testing.T) {
	c := newContext()
	c.Result = cda.NewResult()
	assert.False(t, c.ShouldStop())

	c.MaxErrors = 2
	c.AddIssue(cda.Error(cda.IssueTypeRequired).Build())
	assert.False(t, c.ShouldStop())
	c.AddIssue(cda.Error(cda.IssueTypeRequired).Build())
	assert.True(t, c.ShouldStop())
}

func TestContext_AddIssueWithoutResult(t *testing.T) {
	c := newContext()
	assert.NotPanics(t, func() {
		c.AddIssue(cda.Error(cda.IssueTypeRequired).Build())
	})
}

func TestContext_NilRelease(t *testing.T) {
	var c *Context
	assert.NotPanics(t, c.Release)
}

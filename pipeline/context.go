// Package pipeline runs validation phases over a single document.
package pipeline

import (
	"sync"

	cda "github.com/gofhir/cda"
	"github.com/gofhir/cda/document"
	"github.com/gofhir/cda/service"
)

// Context holds the state of one document validation. It is passed to
// every phase and accumulates the result.
//
// Contexts are pooled. Use AcquireContext and Release.
type Context struct {
	// Document is the document being validated.
	Document document.Document

	// DocumentType is Document.DocumentType(), cached.
	DocumentType cda.DocumentType

	// Result accumulates validation issues.
	Result *cda.Result

	// Services provides terminology and constraint evaluation.
	Services *service.Services

	// MaxErrors lets a phase stop early once this many errors have been
	// recorded. Zero means no limit.
	MaxErrors int

	jsonOnce sync.Once
	json     []byte
	jsonErr  error
}

var contextPool = sync.Pool{
	New: func() any {
		return &Context{}
	},
}

// AcquireContext gets a Context from the pool.
func AcquireContext() *Context {
	c := contextPool.Get().(*Context)
	c.Reset()
	return c
}

// Release returns the Context to the pool. The Result is not released.
func (c *Context) Release() {
	if c == nil {
		return
	}
	contextPool.Put(c)
}

// Reset clears the context for reuse.
func (c *Context) Reset() {
	c.Document = nil
	c.DocumentType = ""
	c.Result = nil
	c.Services = nil
	c.MaxErrors = 0
	c.jsonOnce = sync.Once{}
	c.json = nil
	c.jsonErr = nil
}

// NewContext creates a non-pooled context for doc.
func NewContext(doc document.Document) *Context {
	c := &Context{}
	c.SetDocument(doc)
	return c
}

// SetDocument sets the document under validation.
func (c *Context) SetDocument(doc document.Document) {
	c.Document = doc
	if doc != nil {
		c.DocumentType = doc.DocumentType()
	}
}

// DocumentJSON returns the pruned JSON form of the document, computed once.
func (c *Context) DocumentJSON() ([]byte, error) {
	c.jsonOnce.Do(func() {
		c.json, c.jsonErr = service.DocumentJSON(c.Document)
	})
	return c.json, c.jsonErr
}

// AddIssue adds an issue to the result.
func (c *Context) AddIssue(issue cda.Issue) {
	if c.Result != nil {
		c.Result.AddIssue(issue)
	}
}

// ShouldStop reports whether MaxErrors errors have been recorded.
func (c *Context) ShouldStop() bool {
	if c.MaxErrors <= 0 || c.Result == nil {
		return false
	}
	return c.Result.ErrorCount() >= c.MaxErrors
}

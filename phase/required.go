package phase

import (
	"context"

	cda "github.com/gofhir/cda"
	"github.com/gofhir/cda/pipeline"
	"github.com/gofhir/cda/validation"
)

// RequiredPhase runs the document's own Validate: mandatory properties,
// list cardinality, choices and per-type business rules.
type RequiredPhase struct{}

// NewRequiredPhase creates the required-properties phase.
func NewRequiredPhase() *RequiredPhase {
	return &RequiredPhase{}
}

// Name returns the phase name.
func (p *RequiredPhase) Name() string {
	return NameRequired
}

// Validate walks the document depth first and returns every missing or
// invalid property in visit order.
func (p *RequiredPhase) Validate(ctx context.Context, pctx *pipeline.Context) []cda.Issue {
	if ctx.Err() != nil || pctx.Document == nil {
		return nil
	}
	v := validation.NewPhaseBuilder(NameRequired)
	pctx.Document.Validate(v)
	return v.Issues()
}

package phase

import (
	"context"

	cda "github.com/gofhir/cda"
	"github.com/gofhir/cda/document"
	"github.com/gofhir/cda/pipeline"
	"github.com/gofhir/cda/service"
)

// ConstraintsPhase evaluates the FHIRPath invariants registered for the
// document type against the document's JSON form.
type ConstraintsPhase struct {
	evaluator service.ConstraintEvaluator
}

// NewConstraintsPhase creates a constraints phase. A nil evaluator falls
// back to the context services; without either the phase does nothing.
func NewConstraintsPhase(evaluator service.ConstraintEvaluator) *ConstraintsPhase {
	return &ConstraintsPhase{evaluator: evaluator}
}

// Name returns the phase name.
func (p *ConstraintsPhase) Name() string {
	return NameConstraints
}

// Validate evaluates the invariants of the document type in order.
func (p *ConstraintsPhase) Validate(ctx context.Context, pctx *pipeline.Context) []cda.Issue {
	evaluator := p.evaluator
	if evaluator == nil && pctx.Services != nil {
		evaluator = pctx.Services.Constraints
	}
	invariants := document.InvariantsFor(pctx.DocumentType)
	if evaluator == nil || len(invariants) == 0 {
		return nil
	}

	data, err := pctx.DocumentJSON()
	if err != nil {
		return []cda.Issue{ProcessingIssue(err, "", NameConstraints)}
	}

	var issues []cda.Issue
	for _, inv := range invariants {
		if ctx.Err() != nil {
			return issues
		}
		ok, err := evaluator.Evaluate(ctx, inv.Expression, data)
		if err != nil {
			if ctx.Err() != nil {
				return issues
			}
			issues = append(issues, cda.Warning(cda.IssueTypeProcessing).
				Diagnostics(err.Error()).
				Rule(inv.Key).
				Phase(NameConstraints).
				Build())
			continue
		}
		if !ok {
			issues = append(issues, cda.NewIssue(inv.Severity, cda.IssueTypeInvariant).
				Diagnostics(inv.Human).
				Rule(inv.Key).
				Phase(NameConstraints).
				Build())
		}
	}
	return issues
}

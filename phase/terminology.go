package phase

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	cda "github.com/gofhir/cda"
	"github.com/gofhir/cda/model"
	"github.com/gofhir/cda/pipeline"
	"github.com/gofhir/cda/service"
	"github.com/gofhir/cda/validation"
	"github.com/gofhir/cda/vocab"
	"github.com/gofhir/cda/walker"
)

// TerminologyPhase checks coded values. Vocabulary-typed properties must
// hold a code of their vocabulary; CodableText values are checked with the
// code validator when it has content for their code system.
type TerminologyPhase struct {
	validator service.CodeValidator
}

// NewTerminologyPhase creates a terminology phase. A nil validator falls
// back to the context services and then to the default registry.
func NewTerminologyPhase(validator service.CodeValidator) *TerminologyPhase {
	return &TerminologyPhase{validator: validator}
}

// Name returns the phase name.
func (p *TerminologyPhase) Name() string {
	return NameTerminology
}

type validVocab interface {
	vocab.Coded
	IsValid() bool
}

// Validate checks every coded value reachable from the document.
func (p *TerminologyPhase) Validate(ctx context.Context, pctx *pipeline.Context) []cda.Issue {
	if pctx.Document == nil {
		return nil
	}
	cv := p.codeValidator(pctx)

	var issues []cda.Issue
	err := walker.Walk(ctx, pctx.Document, func(n *walker.Node) error {
		switch v := n.Value.(type) {
		case *model.CodableText:
			issues = append(issues, p.checkCodableText(ctx, cv, v, n.Path)...)
			return walker.SkipChildren
		case validVocab:
			if !v.IsValid() {
				issues = append(issues, cda.Error(cda.IssueTypeCodeInvalid).
					Diagnostics(fmt.Sprintf("%q is not a %s code", v.Code(), v.CodeSystem().Name)).
					At(n.Path).
					Value(v.Code()).
					Phase(NameTerminology).
					Build())
			}
		}
		return nil
	})
	if err != nil && ctx.Err() == nil {
		issues = append(issues, ProcessingIssue(err, "", NameTerminology))
	}
	return issues
}

func (p *TerminologyPhase) codeValidator(pctx *pipeline.Context) service.CodeValidator {
	if p.validator != nil {
		return p.validator
	}
	if pctx.Services != nil && pctx.Services.Terminology != nil {
		return pctx.Services.Terminology
	}
	return service.NewRegistryValidator(nil)
}

func (p *TerminologyPhase) checkCodableText(ctx context.Context, cv service.CodeValidator, c *model.CodableText, path string) []cda.Issue {
	var issues []cda.Issue
	if c.Code != "" && c.CodeSystem != "" {
		issues = append(issues, p.checkCode(ctx, cv, c, path)...)
	}
	for i := range c.Translations {
		issues = append(issues, p.checkCodableText(ctx, cv, &c.Translations[i], validation.Index(path+".Translations", i))...)
	}
	return issues
}

func (p *TerminologyPhase) checkCode(ctx context.Context, cv service.CodeValidator, c *model.CodableText, path string) []cda.Issue {
	res, err := cv.ValidateCode(ctx, c.CodeSystem, c.Code, c.DisplayName)
	if errors.Is(err, service.ErrNotSupported) {
		return nil
	}
	if err != nil {
		return []cda.Issue{ProcessingIssue(err, path, NameTerminology)}
	}
	if res == nil {
		return nil
	}
	if !res.Valid {
		msg := res.Message
		if msg == "" {
			msg = "code " + c.Code + " is not valid in " + c.CodeSystem
		}
		return []cda.Issue{cda.Error(cda.IssueTypeCodeInvalid).
			Diagnostics(msg).
			At(path + ".Code").
			Value(c.Code).
			Phase(NameTerminology).
			Build()}
	}
	if res.Message != "" {
		return []cda.Issue{cda.Warning(cda.IssueTypeCodeInvalid).
			Diagnostics(res.Message).
			At(path + ".DisplayName").
			Value(c.DisplayName).
			Phase(NameTerminology).
			Build()}
	}
	return nil
}

package phase

import (
	"context"

	cda "github.com/gofhir/cda"
	"github.com/gofhir/cda/model"
	"github.com/gofhir/cda/pipeline"
	"github.com/gofhir/cda/vocab"
	"github.com/gofhir/cda/walker"
)

// IdentifiersPhase checks the numbers carried by identifiers and
// entitlements: healthcare identifier prefixes and Luhn check digits,
// Medicare check digits, DVA file number format, prescriber and pharmacy
// approval number format.
type IdentifiersPhase struct{}

// NewIdentifiersPhase creates the identifier phase.
func NewIdentifiersPhase() *IdentifiersPhase {
	return &IdentifiersPhase{}
}

// Name returns the phase name.
func (p *IdentifiersPhase) Name() string {
	return NameIdentifiers
}

// Validate checks every identifier reachable from the document.
func (p *IdentifiersPhase) Validate(ctx context.Context, pctx *pipeline.Context) []cda.Issue {
	if pctx.Document == nil {
		return nil
	}
	var issues []cda.Issue
	err := walker.Walk(ctx, pctx.Document, func(n *walker.Node) error {
		switch v := n.Value.(type) {
		case *model.Identifier:
			issues = append(issues, checkIdentifier(v, n.Path)...)
			return walker.SkipChildren
		case *model.Entitlement:
			if issue, ok := checkEntitlementType(v, n.Path); !ok {
				issues = append(issues, issue)
			}
		}
		return nil
	})
	if err != nil && ctx.Err() == nil {
		issues = append(issues, ProcessingIssue(err, "", NameIdentifiers))
	}
	return issues
}

func checkIdentifier(id *model.Identifier, path string) []cda.Issue {
	if t, number, ok := id.HealthIdentifier(); ok {
		if err := model.CheckHealthIdentifier(t, number); err != nil {
			return []cda.Issue{cda.Error(cda.IssueTypeIdentifier).
				Diagnostics(identifierLabel(t) + " " + argumentMessage(err)).
				At(path + ".Root").
				Value(number).
				Phase(NameIdentifiers).
				Build()}
		}
		return nil
	}

	var check func(string) error
	switch id.Root {
	case model.MedicareCardOID:
		check = model.CheckMedicareNumber
	case model.DVAFileNumberOID:
		check = model.CheckDVANumber
	case model.MedicarePrescriberNumberOID:
		check = model.CheckPrescriberNumber
	case model.PharmacyApprovalNumberOID:
		check = model.CheckPharmacyApprovalNumber
	default:
		return nil
	}
	if err := check(id.Extension); err != nil {
		return []cda.Issue{cda.Error(cda.IssueTypeIdentifier).
			Diagnostics(argumentMessage(err)).
			At(path + ".Extension").
			Value(id.Extension).
			Phase(NameIdentifiers).
			Build()}
	}
	return nil
}

func identifierLabel(t vocab.HealthIdentifierType) string {
	if t == "" {
		return "healthcare identifier"
	}
	return string(t)
}

// entitlementRoots lists the identifier root each entitlement type must be
// issued under. Types not listed accept any root.
var entitlementRoots = map[vocab.EntitlementType]string{
	vocab.EntitlementMedicareBenefits:            model.MedicareCardOID,
	vocab.EntitlementRepatriationGold:            model.DVAFileNumberOID,
	vocab.EntitlementRepatriationWhite:           model.DVAFileNumberOID,
	vocab.EntitlementRepatriationOrange:          model.DVAFileNumberOID,
	vocab.EntitlementMedicarePrescriberNumber:    model.MedicarePrescriberNumberOID,
	vocab.EntitlementMedicarePharmacyApprovalNum: model.PharmacyApprovalNumberOID,
}

func checkEntitlementType(e *model.Entitlement, path string) (cda.Issue, bool) {
	root, ok := entitlementRoots[e.Type]
	if !ok || e.ID == nil || e.ID.Root == "" || e.ID.Root == root {
		return cda.Issue{}, true
	}
	return cda.Error(cda.IssueTypeBusinessRule).
		Diagnostics("identifier is not a " + e.Type.DisplayName() + " number").
		At(path + ".ID.Root").
		Value(e.ID.Root).
		Phase(NameIdentifiers).
		Build(), false
}

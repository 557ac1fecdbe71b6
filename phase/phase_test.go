package phase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cda "github.com/gofhir/cda"
	"github.com/gofhir/cda/document"
	"github.com/gofhir/cda/model"
	"github.com/gofhir/cda/pipeline"
	"github.com/gofhir/cda/vocab"
)

func run(t *testing.T, p pipeline.Phase, doc document.Document) []cda.Issue {
	t.Helper()
	return p.Validate(context.Background(), pipeline.NewContext(doc))
}

func paths(issues []cda.Issue) []string {
	out := make([]string, len(issues))
	for i, issue := range issues {
		out[i] = issue.Path
	}
	return out
}

func prescriptionFor(soc *model.SubjectOfCare) *document.EPrescription {
	doc := document.NewEPrescription()
	doc.SCSContext.SubjectOfCare = soc
	return doc
}

func TestRequiredPhase(t *testing.T) {
	issues := run(t, NewRequiredPhase(), document.NewDispenseRecord())
	require.NotEmpty(t, issues)
	assert.Equal(t, "DocumentCreationTime", issues[0].Path)
	for _, issue := range issues {
		assert.Equal(t, NameRequired, issue.Phase)
		assert.True(t, issue.IsError(), issue.String())
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Empty(t, NewRequiredPhase().Validate(ctx, pipeline.NewContext(document.NewDispenseRecord())))
}

func TestIdentifiersPhase(t *testing.T) {
	dva, err := model.NewDVANumber("NX123456")
	require.NoError(t, err)

	soc := model.NewSubjectOfCare()
	soc.Participant = &model.Participant{
		Person: &model.Person{
			Identifiers: []model.Identifier{
				{Root: vocab.HealthIdentifierQualifier + "8003608166690504"},
				{Root: vocab.HealthIdentifierQualifier + "8003608166690503"},
				{Root: vocab.HealthIdentifierQualifier + "8003638166690500"},
			},
		},
		Entitlements: []model.Entitlement{
			{ID: &model.Identifier{Root: model.MedicareCardOID, Extension: "2123456781"}, Type: vocab.EntitlementMedicareBenefits},
			{ID: dva, Type: vocab.EntitlementMedicareBenefits},
			{ID: &model.Identifier{Root: model.MedicareCardOID, Extension: "2123456701"}, Type: vocab.EntitlementMedicareBenefits},
		},
	}

	issues := run(t, NewIdentifiersPhase(), prescriptionFor(soc))
	assert.Equal(t, []string{
		"SCSContext.SubjectOfCare.Participant.Person.Identifiers[0].Root",
		"SCSContext.SubjectOfCare.Participant.Person.Identifiers[2].Root",
		"SCSContext.SubjectOfCare.Participant.Entitlements[0].ID.Extension",
		"SCSContext.SubjectOfCare.Participant.Entitlements[1].ID.Root",
	}, paths(issues))

	assert.Equal(t, cda.IssueTypeIdentifier, issues[0].Code)
	assert.Equal(t, "IHI check digit is incorrect", issues[0].Diagnostics)
	assert.Equal(t, "8003608166690504", issues[0].Value)
	assert.Equal(t, cda.IssueTypeIdentifier, issues[1].Code)
	assert.Equal(t, "healthcare identifier has unknown issuer prefix 800363", issues[1].Diagnostics)
	assert.Equal(t, "8003638166690500", issues[1].Value)
	assert.Equal(t, "check digit is incorrect", issues[2].Diagnostics)
	assert.Equal(t, cda.IssueTypeBusinessRule, issues[3].Code)
	for _, issue := range issues {
		assert.Equal(t, NameIdentifiers, issue.Phase)
	}
}

func TestIdentifiersPhase_ValidNumbers(t *testing.T) {
	prescriber, err := model.NewPrescriberNumberEntitlement("1234567")
	require.NoError(t, err)
	pharmacy, err := model.NewPharmacyApprovalEntitlement("12345A")
	require.NoError(t, err)
	medicare, err := model.NewMedicareEntitlement("39876543511")
	require.NoError(t, err)

	soc := model.NewSubjectOfCare()
	soc.Participant = &model.Participant{
		Entitlements: []model.Entitlement{*prescriber, *pharmacy, *medicare},
	}
	assert.Empty(t, run(t, NewIdentifiersPhase(), prescriptionFor(soc)))
}

func TestTerminologyPhase(t *testing.T) {
	soc := model.NewSubjectOfCare()
	soc.Participant = &model.Participant{Person: &model.Person{Sex: vocab.Sex("Q")}}
	doc := prescriptionFor(soc)

	item := doc.SCSContent.PrescriptionItem
	item.Medicine = model.SNOMED("123456789", "unchecked medicine")
	male := model.NewCodableTextFromVocab(vocab.SexMale)
	male.DisplayName = "Man"
	unknown := model.NewCodableTextFromVocab(vocab.SexFemale)
	unknown.Code = "Z"
	item.PBSItemCode = male
	item.PBSItemCode.Translations = []model.CodableText{*unknown}

	issues := run(t, NewTerminologyPhase(nil), doc)
	require.Len(t, issues, 3)

	byPath := map[string]cda.Issue{}
	for _, issue := range issues {
		byPath[issue.Path] = issue
		assert.Equal(t, NameTerminology, issue.Phase)
	}

	sex := byPath["SCSContext.SubjectOfCare.Participant.Person.Sex"]
	assert.True(t, sex.IsError())
	assert.Equal(t, "Q", sex.Value)

	display := byPath["SCSContent.PrescriptionItem.PBSItemCode.DisplayName"]
	assert.True(t, display.IsWarning())

	code := byPath["SCSContent.PrescriptionItem.PBSItemCode.Translations[0].Code"]
	assert.True(t, code.IsError())
	assert.Equal(t, cda.IssueTypeCodeInvalid, code.Code)
}

type fakeEvaluator struct {
	results map[string]bool
	err     error
	seen    []string
}

func (f *fakeEvaluator) Evaluate(_ context.Context, expression string, _ []byte) (bool, error) {
	f.seen = append(f.seen, expression)
	if f.err != nil {
		return false, f.err
	}
	return f.results[expression], nil
}

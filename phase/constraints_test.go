package phase

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cda "github.com/gofhir/cda"
	"github.com/gofhir/cda/document"
	"github.com/gofhir/cda/model"
	"github.com/gofhir/cda/pipeline"
	"github.com/gofhir/cda/service"
	"github.com/gofhir/cda/vocab"
)

func TestConstraintsPhase_Fake(t *testing.T) {
	ev := &fakeEvaluator{results: map[string]bool{}}
	issues := run(t, NewConstraintsPhase(ev), document.NewDispenseRecord())

	require.Len(t, issues, 1)
	assert.Equal(t, "disp-1", issues[0].RuleKey)
	assert.Equal(t, cda.IssueTypeInvariant, issues[0].Code)
	assert.True(t, issues[0].IsError())
	assert.Len(t, ev.seen, 1)

	ev.err = errors.New("boom")
	issues = run(t, NewConstraintsPhase(ev), document.NewDispenseRecord())
	require.Len(t, issues, 1)
	assert.Equal(t, cda.IssueTypeProcessing, issues[0].Code)
	assert.True(t, issues[0].IsWarning())
}

func TestConstraintsPhase_NoEvaluator(t *testing.T) {
	assert.Empty(t, run(t, NewConstraintsPhase(nil), document.NewDispenseRecord()))

	pctx := pipeline.NewContext(document.NewDispenseRecord())
	pctx.Services = service.NewServices().WithConstraints(&fakeEvaluator{})
	assert.Len(t, NewConstraintsPhase(nil).Validate(context.Background(), pctx), 1)
}

func TestConstraintsPhase_PBSEntitlement(t *testing.T) {
	ev := service.NewFHIRPathEvaluator(16, nil)
	phase := NewConstraintsPhase(ev)

	soc := model.NewSubjectOfCare()
	soc.Participant = &model.Participant{}
	doc := prescriptionFor(soc)
	doc.SCSContent.PrescriptionItem.PBSItemCode = model.NewCodableText("1234X", vocab.PBS.OID, vocab.PBS.Name, "Amoxicillin")

	issues := run(t, phase, doc)
	require.Len(t, issues, 1)
	assert.Equal(t, "erx-1", issues[0].RuleKey)

	medicare, err := model.NewMedicareEntitlement("2123456701")
	require.NoError(t, err)
	soc.Participant.Entitlements = []model.Entitlement{*medicare}
	assert.Empty(t, run(t, phase, doc))
}

func TestConstraintsPhase_DispenseCount(t *testing.T) {
	phase := NewConstraintsPhase(service.NewFHIRPathEvaluator(16, nil))

	doc := document.NewDispenseRecord()
	doc.SCSContent.DispenseItem = &model.DispenseItem{NumberOfThisDispense: 3, MaximumNumberOfRepeats: 1}
	issues := run(t, phase, doc)
	require.Len(t, issues, 1)
	assert.Equal(t, "disp-1", issues[0].RuleKey)

	doc.SCSContent.DispenseItem.MaximumNumberOfRepeats = 2
	assert.Empty(t, run(t, phase, doc))
}

func TestConstraintsPhase_DeceasedReferral(t *testing.T) {
	phase := NewConstraintsPhase(service.NewFHIRPathEvaluator(16, nil))

	doc := document.NewEReferral()
	soc := model.NewSubjectOfCare()
	soc.Participant = &model.Participant{Person: &model.Person{DateOfDeath: model.Date(2024, time.March, 1)}}
	doc.SCSContext.SubjectOfCare = soc

	issues := run(t, phase, doc)
	require.Len(t, issues, 1)
	assert.Equal(t, "ref-1", issues[0].RuleKey)
	assert.True(t, issues[0].IsWarning())
}

func TestConstraintsPhase_SpecialistResponse(t *testing.T) {
	phase := NewConstraintsPhase(service.NewFHIRPathEvaluator(16, nil))

	doc := document.NewSpecialistLetter()
	issues := run(t, phase, doc)
	require.Len(t, issues, 1)
	assert.Equal(t, "spl-1", issues[0].RuleKey)
	assert.True(t, issues[0].IsError())

	doc.SCSContent.ResponseDetails.ResponseNarrative = "Stable angina, no intervention required."
	assert.Empty(t, run(t, phase, doc))

	doc.SCSContent.ResponseDetails.ResponseNarrative = ""
	doc.SCSContent.ResponseDetails.Diagnoses = []model.CodableText{*model.SNOMED("194828000", "Angina")}
	assert.Empty(t, run(t, phase, doc))
}

func TestConstraintsPhase_DiedInHospital(t *testing.T) {
	phase := NewConstraintsPhase(service.NewFHIRPathEvaluator(16, nil))

	doc := document.NewDischargeSummary()
	soc := model.NewSubjectOfCare()
	soc.Participant = &model.Participant{Person: &model.Person{}}
	doc.SCSContext.SubjectOfCare = soc

	doc.SCSContent.Encounter.SeparationMode = vocab.SeparationAcuteHospital
	assert.Empty(t, run(t, phase, doc))

	doc.SCSContent.Encounter.SeparationMode = vocab.SeparationDied
	issues := run(t, phase, doc)
	require.Len(t, issues, 1)
	assert.Equal(t, "dis-1", issues[0].RuleKey)

	soc.Participant.Person.DateOfDeath = model.Date(2024, time.March, 1)
	assert.Empty(t, run(t, phase, doc))
}

func TestConstraintsPhase_FinalPathologyReport(t *testing.T) {
	phase := NewConstraintsPhase(service.NewFHIRPathEvaluator(16, nil))

	result := model.NewTestResult(model.NewOriginalText("Full blood count"))
	result.Status = vocab.ResultStatusPreliminary

	doc := document.NewPathologyResultReport()
	doc.DocumentStatus = vocab.DocumentStatusInterim
	doc.SCSContent.TestResults = []model.TestResult{*result}
	assert.Empty(t, run(t, phase, doc), "interim reports may carry preliminary results")

	doc.DocumentStatus = vocab.DocumentStatusFinal
	issues := run(t, phase, doc)
	require.Len(t, issues, 1)
	assert.Equal(t, "path-1", issues[0].RuleKey)

	doc.SCSContent.TestResults[0].Status = vocab.ResultStatusCorrection
	assert.Empty(t, run(t, phase, doc))
}

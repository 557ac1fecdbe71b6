package engine

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cda "github.com/gofhir/cda"
	"github.com/gofhir/cda/document"
	"github.com/gofhir/cda/model"
	"github.com/gofhir/cda/sample"
	"github.com/gofhir/cda/service"
	"github.com/gofhir/cda/vocab"
)

var refTime = time.Date(2024, time.August, 20, 14, 0, 0, 0, time.UTC)

func samples() *sample.Generator {
	return sample.New(21).WithTime(refTime)
}

func deceasedReferral(t *testing.T) *document.EReferral {
	t.Helper()
	doc, err := samples().Document(cda.EReferral)
	require.NoError(t, err)
	d := doc.(*document.EReferral)
	person := d.SCSContext.SubjectOfCare.Participant.Person
	person.DateOfDeath = model.Date(2024, time.August, 1)
	person.SourceOfDeathNotification = vocab.DeathNotificationHealthcareProvider
	return d
}

func TestNew(t *testing.T) {
	g := New()
	require.NotNil(t, g.Metrics())
	require.NotNil(t, g.Options())
	assert.Equal(t, 4, g.pipe.PhaseCount())

	fast := New(cda.FastOptions()...)
	assert.Equal(t, 1, fast.pipe.PhaseCount())

	opts := New(cda.WithMaxErrors(50), cda.WithParallelPhases(false)).Options()
	assert.Equal(t, 50, opts.MaxErrors)
	assert.False(t, opts.ParallelPhases)
	assert.NoError(t, g.Close())
}

func TestValidate_Samples(t *testing.T) {
	g := New()
	for _, doc := range samples().All() {
		result, err := g.Validate(context.Background(), doc)
		require.NoError(t, err)
		assert.True(t, result.Valid, "%s: %v", doc.DocumentType(), result.Issues)
		assert.Empty(t, result.Issues)
		assert.Equal(t, doc.DocumentType(), result.DocumentType)
		result.Release()
	}
	assert.Equal(t, uint64(len(cda.DocumentTypes())), g.Metrics().ValidationsValid())
}

func TestValidate_NilDocument(t *testing.T) {
	_, err := New().Validate(context.Background(), nil)
	var argErr *cda.ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "doc", argErr.Param)
}

func TestValidate_EmptyDocument(t *testing.T) {
	result, err := New(cda.WithPooling(false)).Validate(context.Background(), document.NewEPrescription())
	require.NoError(t, err)
	assert.False(t, result.Valid)

	var paths []string
	for _, issue := range result.Errors() {
		paths = append(paths, issue.Path)
	}
	assert.Contains(t, paths, "DocumentCreationTime")
	assert.Contains(t, paths, "CDAContext.DocumentID")
	assert.Contains(t, paths, "SCSContext.Prescriber")
	assert.Contains(t, paths, "SCSContent.PrescriptionItem.Medicine")
}

func TestValidate_StrictMode(t *testing.T) {
	doc := deceasedReferral(t)

	lenient, err := New().Validate(context.Background(), doc)
	require.NoError(t, err)
	assert.True(t, lenient.Valid)
	require.Len(t, lenient.Warnings(), 1)
	assert.Equal(t, "ref-1", lenient.Warnings()[0].RuleKey)

	strict, err := New(cda.StrictOptions()...).Validate(context.Background(), doc)
	require.NoError(t, err)
	assert.False(t, strict.Valid)
	assert.Equal(t, 1, strict.ErrorCount())
	assert.Zero(t, strict.WarningCount())
}

func TestValidate_MaxErrors(t *testing.T) {
	result, err := New(cda.WithMaxErrors(3)).Validate(context.Background(), document.NewDischargeSummary())
	require.NoError(t, err)
	assert.Equal(t, 3, result.ErrorCount())
}

// displayMismatch accepts every code but flags its display name.
type displayMismatch struct{}

func (displayMismatch) ValidateCode(_ context.Context, _, _, display string) (*vocab.ValidateCodeResult, error) {
	return &vocab.ValidateCodeResult{Known: true, Valid: true, Message: "display " + display + " does not match"}, nil
}

func TestValidate_StrictModeMaxErrors(t *testing.T) {
	doc, err := samples().Document(cda.PathologyResultReport)
	require.NoError(t, err)

	lenient := New(cda.WithPooling(false), cda.WithMaxErrors(2))
	lenient.SetCodeValidator(displayMismatch{})
	result, err := lenient.Validate(context.Background(), doc)
	require.NoError(t, err)
	require.Greater(t, result.WarningCount(), 2)
	assert.Zero(t, result.ErrorCount())

	strict := New(cda.WithPooling(false), cda.WithMaxErrors(2), cda.WithStrictMode(true))
	strict.SetCodeValidator(displayMismatch{})
	result, err = strict.Validate(context.Background(), doc)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, 2, result.ErrorCount())
	assert.Zero(t, result.WarningCount())
}

var _ service.CodeValidator = displayMismatch{}

func TestGenerate(t *testing.T) {
	g := New()
	doc, err := samples().Document(cda.PathologyResultReport)
	require.NoError(t, err)

	out, err := g.Generate(context.Background(), doc)
	require.NoError(t, err)
	assert.Contains(t, string(out), "<ClinicalDocument xmlns=\"urn:hl7-org:v3\">")
	assert.Contains(t, string(out), "11526-1")
	assert.Equal(t, uint64(1), g.Metrics().DocumentsGenerated())
}

func TestGenerate_Rejected(t *testing.T) {
	g := New()
	doc := document.NewEReferral()
	doc.DocumentStatus = vocab.DocumentStatusFinal

	out, err := g.Generate(context.Background(), doc)
	assert.Nil(t, out)
	verr, ok := cda.AsValidationError(err)
	require.True(t, ok, "got %v", err)
	assert.Equal(t, cda.EReferral, verr.DocumentType)
	assert.Contains(t, verr.Paths(), "SCSContext.Author")
	assert.Contains(t, verr.Paths(), "SCSContent.ReferralDetail.ReferralDateTime")
	assert.NotContains(t, verr.Paths(), "DocumentStatus")
	assert.True(t, strings.Contains(err.Error(), "SCSContext.SubjectOfCare"))
	assert.Equal(t, uint64(1), g.Metrics().DocumentsRejected())

	_, err = New(cda.StrictOptions()...).Generate(context.Background(), deceasedReferral(t))
	verr, ok = cda.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"ref-1"}, []string{verr.Issues[0].RuleKey})
}

func TestGenerate_WithoutNarrative(t *testing.T) {
	doc, err := samples().Document(cda.DispenseRecord)
	require.NoError(t, err)

	out, err := New(cda.WithNarrative(false)).Generate(context.Background(), doc)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<text>")
}

func TestValidateBatch(t *testing.T) {
	docs := samples().All()
	docs = append(docs, document.NewEReferral())

	res := New(cda.WithWorkerCount(3)).ValidateBatch(context.Background(), docs)
	require.Len(t, res.Results, len(docs))
	assert.Equal(t, len(docs), res.TotalJobs)
	assert.Equal(t, len(docs)-1, res.ValidCount())
	assert.True(t, res.HasErrors())
	for i, r := range res.Results {
		require.NotNil(t, r.Result)
		assert.Equal(t, docs[i].DocumentType(), r.Result.DocumentType)
	}
	assert.False(t, res.Results[len(docs)-1].Result.Valid)
}

func TestGenerateAll(t *testing.T) {
	docs := samples().All()
	docs = append(docs, document.NewSpecialistLetter())

	g := New(cda.WithWorkerCount(2), cda.WithPooling(false))
	results := g.GenerateAll(context.Background(), docs)

	require.Len(t, results, len(docs))
	for i, r := range results[:len(docs)-1] {
		require.NoError(t, r.Error, docs[i].DocumentType())
		assert.Equal(t, i, r.Index)
		assert.Contains(t, string(r.Output), "<ClinicalDocument")
		assert.True(t, r.Result.Valid)
	}

	last := results[len(docs)-1]
	_, ok := cda.AsValidationError(last.Error)
	assert.True(t, ok)
	assert.Nil(t, last.Output)
	assert.EqualValues(t, len(docs)-1, g.Metrics().DocumentsGenerated())
	assert.EqualValues(t, 1, g.Metrics().DocumentsRejected())
}

func TestValidate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	doc, err := samples().Document(cda.SpecialistLetter)
	require.NoError(t, err)
	result, err := New().Validate(ctx, doc)
	require.NoError(t, err)
	require.NotEmpty(t, result.Issues)
	assert.Equal(t, cda.IssueTypeTimeout, result.Issues[0].Code)
}

func BenchmarkValidate(b *testing.B) {
	g := New()
	doc, err := samples().Document(cda.DischargeSummary)
	require.NoError(b, err)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result, _ := g.Validate(ctx, doc)
		result.Release()
	}
}

func BenchmarkGenerate(b *testing.B) {
	g := New()
	doc, err := samples().Document(cda.EPrescription)
	require.NoError(b, err)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.Generate(ctx, doc); err != nil {
			b.Fatal(err)
		}
	}
}

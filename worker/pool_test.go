package worker

import (
	"context"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cda "github.com/gofhir/cda"
	"github.com/gofhir/cda/document"
)

// mockValidator reports one error for every e-Referral.
type mockValidator struct {
	calls atomic.Int32
	delay time.Duration
	err   error
}

func (m *mockValidator) Validate(ctx context.Context, doc document.Document) (*cda.Result, error) {
	m.calls.Add(1)
	if m.delay > 0 {
		time.Sleep(m.delay)
	}
	if m.err != nil {
		return nil, m.err
	}
	r := cda.NewResult()
	r.DocumentType = doc.DocumentType()
	if doc.DocumentType() == cda.EReferral {
		r.AddError(cda.IssueTypeRequired, "is required", "SCSContext.Author")
	}
	return r, nil
}

func docs(n int) []document.Document {
	out := make([]document.Document, n)
	for i := range out {
		if i%2 == 0 {
			out[i] = document.NewEReferral()
		} else {
			out[i] = document.NewDispenseRecord()
		}
	}
	return out
}

func (m *mockValidator) generate(ctx context.Context, doc document.Document) (*cda.Result, []byte, error) {
	r, err := m.Validate(ctx, doc)
	if err != nil {
		return nil, nil, err
	}
	if rerr := r.Err(); rerr != nil {
		return r, nil, rerr
	}
	return r, []byte(doc.DocumentType()), nil
}

func TestPool_SubmitAndDrain(t *testing.T) {
	v := &mockValidator{}
	pool := NewPool(context.Background(), v.generate, 3)

	input := docs(6)
	go func() {
		defer pool.Close()
		for i, doc := range input {
			assert.NoError(t, pool.Submit(Job{ID: strconv.Itoa(i), Index: i, Document: doc}))
		}
	}()

	seen := make(map[int]*JobResult)
	for r := range pool.Results() {
		seen[r.Index] = r
	}
	require.Len(t, seen, 6)
	for i, r := range seen {
		assert.Equal(t, strconv.Itoa(i), r.Result.JobID)
		if input[i].DocumentType() == cda.EReferral {
			assert.Error(t, r.Error)
			assert.Nil(t, r.Output)
		} else {
			assert.NoError(t, r.Error)
			assert.Equal(t, "DispenseRecord", string(r.Output))
		}
	}

	stats := pool.Stats()
	assert.Equal(t, 3, stats.Workers)
	assert.EqualValues(t, 6, stats.JobsSubmitted)
	assert.EqualValues(t, 6, stats.JobsCompleted)
	assert.EqualValues(t, 3, stats.JobsFailed)
	assert.Zero(t, stats.Busy)
	assert.EqualValues(t, 6, v.calls.Load())
}

func TestPool_Closed(t *testing.T) {
	pool := NewPool(context.Background(), (&mockValidator{}).generate, 2)
	pool.Close()
	pool.Close()

	assert.ErrorIs(t, pool.Submit(Job{ID: "late", Document: document.NewEReferral()}), ErrPoolClosed)
	_, open := <-pool.Results()
	assert.False(t, open)
}

func TestRun_Order(t *testing.T) {
	input := docs(7)
	results := Run(context.Background(), (&mockValidator{delay: time.Millisecond}).generate, 3, input)

	require.Len(t, results, 7)
	for i, r := range results {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, input[i].DocumentType(), r.Result.DocumentType)
	}
}

func TestRun_NilTask(t *testing.T) {
	results := Run(context.Background(), nil, 1, docs(2))
	require.Len(t, results, 2)
	for _, r := range results {
		assert.ErrorIs(t, r.Error, ErrNoTask)
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	v := &mockValidator{}
	results := Run(ctx, v.generate, 2, docs(4))
	require.Len(t, results, 4)
	for _, r := range results {
		assert.ErrorIs(t, r.Error, context.Canceled)
	}
	assert.EqualValues(t, 0, v.calls.Load())
}

func TestBatchValidator_Order(t *testing.T) {
	v := &mockValidator{}
	bv := NewBatchValidator(v.Validate, 4)

	input := docs(9)
	batch := bv.ValidateBatch(context.Background(), input)

	require.Len(t, batch.Results, 9)
	assert.Equal(t, 9, batch.CompletedJobs)
	for i, r := range batch.Results {
		require.NoError(t, r.Error)
		assert.Equal(t, i, r.Index)
		assert.Equal(t, strconv.Itoa(i), r.Result.JobID)
		assert.Equal(t, input[i].DocumentType(), r.Result.DocumentType)
	}
	assert.Equal(t, 5, batch.ErrorCount())
}

func TestBatchValidator_Empty(t *testing.T) {
	batch := NewBatchValidator((&mockValidator{}).Validate, 0).ValidateBatch(context.Background(), nil)
	assert.Empty(t, batch.Results)
	assert.False(t, batch.HasErrors())
}

func TestBatchValidator_Errors(t *testing.T) {
	v := &mockValidator{err: errors.New("unsupported document")}
	batch := NewBatchValidator(v.Validate, 2).ValidateBatch(context.Background(), docs(3))
	assert.Equal(t, 3, batch.FailedJobs)
	assert.True(t, batch.HasErrors())
}

func TestBatchValidator_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	v := &mockValidator{}
	batch := NewBatchValidator(v.Validate, 2).ValidateBatch(ctx, docs(5))
	require.Len(t, batch.Results, 5)
	for _, r := range batch.Results {
		assert.ErrorIs(t, r.Error, context.Canceled)
	}
	assert.EqualValues(t, 0, v.calls.Load())
}

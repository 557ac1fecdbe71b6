package worker

import (
	"context"
	"runtime"
	"sync"
	"time"

	cda "github.com/gofhir/cda"
	"github.com/gofhir/cda/document"
)

// BatchValidatorFunc validates a single document.
type BatchValidatorFunc func(ctx context.Context, doc document.Document) (*cda.Result, error)

// BatchValidator validates slices of documents with a bounded number of
// goroutines and returns the results in input order.
type BatchValidator struct {
	validator BatchValidatorFunc
	workers   int
}

// NewBatchValidator creates a batch validator.
// If workers <= 0, it defaults to runtime.NumCPU().
func NewBatchValidator(validateFunc BatchValidatorFunc, workers int) *BatchValidator {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &BatchValidator{validator: validateFunc, workers: workers}
}

// ValidateBatch validates docs. Results[i] always belongs to docs[i];
// documents not reached before ctx is cancelled carry ctx.Err().
func (bv *BatchValidator) ValidateBatch(ctx context.Context, docs []document.Document) *BatchResult {
	start := time.Now()
	results := make([]*JobResult, len(docs))

	if len(docs) <= 2 || bv.workers == 1 {
		for i, doc := range docs {
			results[i] = bv.run(ctx, i, doc)
		}
	} else {
		bv.runParallel(ctx, docs, results)
	}

	batch := &BatchResult{
		Results:       results,
		TotalJobs:     len(docs),
		TotalDuration: time.Since(start),
	}
	for _, r := range results {
		if r.Error != nil {
			batch.FailedJobs++
		}
		if r.Result != nil || r.Error != nil {
			batch.CompletedJobs++
		}
	}
	return batch
}

func (bv *BatchValidator) runParallel(ctx context.Context, docs []document.Document, results []*JobResult) {
	numWorkers := bv.workers
	if numWorkers > len(docs) {
		numWorkers = len(docs)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = bv.run(ctx, i, docs[i])
			}
		}()
	}

	for i := range docs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
}

func (bv *BatchValidator) run(ctx context.Context, i int, doc document.Document) *JobResult {
	start := time.Now()
	r := &JobResult{ID: jobID(i), Index: i}
	if err := ctx.Err(); err != nil {
		r.Error = err
		return r
	}
	if bv.validator == nil {
		r.Error = ErrNoTask
		return r
	}
	r.Result, r.Error = bv.validator(ctx, doc)
	if r.Result != nil {
		r.Result.JobID = r.ID
	}
	r.Duration = time.Since(start)
	return r
}

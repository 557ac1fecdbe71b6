package worker

import (
	"strconv"
	"time"

	cda "github.com/gofhir/cda"
	"github.com/gofhir/cda/document"
)

// Job is a document to be validated by a worker.
type Job struct {
	// ID correlates the job with its result. It is copied to Result.JobID.
	ID string

	// Index is the position of the document in its batch.
	Index int

	Document document.Document
}

func jobID(i int) string {
	return strconv.Itoa(i)
}

// JobResult is the outcome of one job.
type JobResult struct {
	ID string

	Index int

	Result *cda.Result

	// Output is the rendered document, set only by generation tasks.
	Output []byte

	// Error is set when the document could not be validated at all.
	Error error

	Duration time.Duration
}

// BatchResult aggregates the results of a batch.
type BatchResult struct {
	Results []*JobResult

	TotalJobs     int
	CompletedJobs int
	FailedJobs    int

	TotalDuration time.Duration
}

// HasErrors returns true if any job failed or reported validation errors.
func (br *BatchResult) HasErrors() bool {
	for _, r := range br.Results {
		if r == nil {
			continue
		}
		if r.Error != nil {
			return true
		}
		if r.Result != nil && r.Result.HasErrors() {
			return true
		}
	}
	return false
}

// ErrorCount returns the number of validation errors across all results.
func (br *BatchResult) ErrorCount() int {
	count := 0
	for _, r := range br.Results {
		if r != nil && r.Result != nil {
			count += r.Result.ErrorCount()
		}
	}
	return count
}

// ValidCount returns the number of documents that validated without errors.
func (br *BatchResult) ValidCount() int {
	count := 0
	for _, r := range br.Results {
		if r != nil && r.Error == nil && r.Result != nil && r.Result.Valid {
			count++
		}
	}
	return count
}

package cda

import (
	"fmt"
	"strings"
	"sync"
)

// Result holds the issues found while validating one document. Results
// from AcquireResult go back to the pool with Release.
type Result struct {
	// Valid is false once any error or fatal issue has been added.
	Valid bool `json:"valid"`

	Issues []Issue `json:"issues,omitempty"`

	// JobID correlates the result with a batch job.
	JobID string `json:"jobId,omitempty"`

	DocumentType DocumentType `json:"documentType,omitempty"`

	mu sync.Mutex
}

const (
	pooledIssueCap = 32
	maxPooledCap   = 1024
)

var resultPool = sync.Pool{
	New: func() any {
		return &Result{Issues: make([]Issue, 0, pooledIssueCap)}
	},
}

// AcquireResult takes an empty, valid Result from the pool.
func AcquireResult() *Result {
	r := resultPool.Get().(*Result)
	r.Reset()
	return r
}

// NewResult creates a Result outside the pool.
func NewResult() *Result {
	return &Result{Valid: true, Issues: make([]Issue, 0, 8)}
}

// Release returns r to the pool. r must not be used afterwards.
func (r *Result) Release() {
	if r == nil || cap(r.Issues) > maxPooledCap {
		return
	}
	resultPool.Put(r)
}

// Reset empties r for reuse.
func (r *Result) Reset() {
	r.mu.Lock()
	r.Valid = true
	r.Issues = r.Issues[:0]
	r.JobID = ""
	r.DocumentType = ""
	r.mu.Unlock()
}

// AddIssue appends issue. Safe for concurrent use.
func (r *Result) AddIssue(issue Issue) {
	r.mu.Lock()
	r.Issues = append(r.Issues, issue)
	r.Valid = r.Valid && !issue.IsError()
	r.mu.Unlock()
}

// AddIssues appends issues in order. Safe for concurrent use.
func (r *Result) AddIssues(issues []Issue) {
	if len(issues) == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, issue := range issues {
		r.Issues = append(r.Issues, issue)
		r.Valid = r.Valid && !issue.IsError()
	}
}

// AddError adds an error at path.
func (r *Result) AddError(code IssueType, diagnostics, path string) {
	r.AddIssue(Error(code).Diagnostics(diagnostics).At(path).Build())
}

// AddWarning adds a warning at path.
func (r *Result) AddWarning(code IssueType, diagnostics, path string) {
	r.AddIssue(Warning(code).Diagnostics(diagnostics).At(path).Build())
}

func (r *Result) count(match func(Issue) bool) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, issue := range r.Issues {
		if match(issue) {
			n++
		}
	}
	return n
}

func (r *Result) filter(match func(Issue) bool) []Issue {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Issue
	for _, issue := range r.Issues {
		if match(issue) {
			out = append(out, issue)
		}
	}
	return out
}

// HasErrors reports whether any error or fatal issue was added.
func (r *Result) HasErrors() bool {
	return r.ErrorCount() > 0
}

// ErrorCount returns the number of error and fatal issues.
func (r *Result) ErrorCount() int {
	return r.count(Issue.IsError)
}

// WarningCount returns the number of warnings.
func (r *Result) WarningCount() int {
	return r.count(Issue.IsWarning)
}

// Errors returns the error and fatal issues.
func (r *Result) Errors() []Issue {
	return r.filter(Issue.IsError)
}

// Warnings returns the warnings.
func (r *Result) Warnings() []Issue {
	return r.filter(Issue.IsWarning)
}

// IssuesAt returns the issues located at path or below it, so
// "SCSContext.Author" matches "SCSContext.Author.Participant" but not
// "SCSContext.AuthorRole".
func (r *Result) IssuesAt(path string) []Issue {
	return r.filter(func(issue Issue) bool {
		if !strings.HasPrefix(issue.Path, path) {
			return false
		}
		rest := issue.Path[len(path):]
		return rest == "" || rest[0] == '.' || rest[0] == '['
	})
}

// Err returns a *ValidationError carrying the error issues, or nil when
// there are none.
func (r *Result) Err() error {
	if ve := NewValidationError(r.DocumentType, r.Errors()); ve != nil {
		return ve
	}
	return nil
}

// Escalate turns every warning into an error.
func (r *Result) Escalate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.Issues {
		if r.Issues[i].IsWarning() {
			r.Issues[i].Severity = SeverityError
			r.Valid = false
		}
	}
}

// LimitErrors drops error issues after the first max, keeping every
// warning and information issue. A max of zero or less keeps everything.
func (r *Result) LimitErrors(max int) {
	if max <= 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.Issues[:0]
	errs := 0
	for _, issue := range r.Issues {
		if issue.IsError() {
			if errs == max {
				continue
			}
			errs++
		}
		kept = append(kept, issue)
	}
	r.Issues = kept
}

// Summary returns a one-line count of errors and warnings.
func (r *Result) Summary() string {
	status := "valid"
	if r.HasErrors() {
		status = "invalid"
	}
	name := "document"
	if r.DocumentType != "" {
		name = string(r.DocumentType)
	}
	return fmt.Sprintf("%s is %s: %d error(s), %d warning(s)", name, status, r.ErrorCount(), r.WarningCount())
}

// Merge appends the issues of other.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	other.mu.Lock()
	issues := append([]Issue(nil), other.Issues...)
	other.mu.Unlock()
	r.AddIssues(issues)
}

// Clone copies r outside the pool.
func (r *Result) Clone() *Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	return &Result{
		Valid:        r.Valid,
		Issues:       append(make([]Issue, 0, len(r.Issues)), r.Issues...),
		JobID:        r.JobID,
		DocumentType: r.DocumentType,
	}
}

package worker

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	cda "github.com/gofhir/cda"
	"github.com/gofhir/cda/document"
)

var (
	// ErrNoTask is reported for every job of a pool built without a task.
	ErrNoTask = errors.New("no task configured")

	// ErrPoolClosed is returned by Submit after Close.
	ErrPoolClosed = errors.New("pool is closed")
)

// Task validates one document and, when it is valid, produces its output.
// A rejected document returns its result together with a non-nil error.
type Task func(ctx context.Context, doc document.Document) (*cda.Result, []byte, error)

// Pool runs a fixed number of workers that apply a Task to submitted jobs.
// Results arrive in completion order; use JobResult.Index to restore the
// submission order. Submit and Close must be called from one goroutine
// while another drains Results.
type Pool struct {
	task    Task
	workers int
	ctx     context.Context

	jobs    chan Job
	results chan *JobResult
	wg      sync.WaitGroup
	closed  atomic.Bool

	submitted atomic.Uint64
	completed atomic.Uint64
	failed    atomic.Uint64
	busy      atomic.Int64
}

// NewPool starts workers bound to ctx. If workers <= 0 it defaults to
// runtime.NumCPU().
func NewPool(ctx context.Context, task Task, workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	p := &Pool{
		task:    task,
		workers: workers,
		ctx:     ctx,
		jobs:    make(chan Job, workers),
		results: make(chan *JobResult, workers),
	}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.work()
	}
	go func() {
		p.wg.Wait()
		close(p.results)
	}()
	return p
}

// Submit queues job, blocking while every worker is busy.
func (p *Pool) Submit(job Job) error {
	if p.closed.Load() {
		return ErrPoolClosed
	}
	select {
	case <-p.ctx.Done():
		return p.ctx.Err()
	case p.jobs <- job:
		p.submitted.Add(1)
		return nil
	}
}

// Results is closed once the pool is closed and every queued job is done.
func (p *Pool) Results() <-chan *JobResult {
	return p.results
}

// Close stops accepting jobs. Queued jobs still run.
func (p *Pool) Close() {
	if !p.closed.Swap(true) {
		close(p.jobs)
	}
}

// PoolStats contains pool statistics.
type PoolStats struct {
	Workers       int
	JobsSubmitted uint64
	JobsCompleted uint64
	JobsFailed    uint64
	Busy          int64
}

// Stats returns current pool statistics.
func (p *Pool) Stats() PoolStats {
	return PoolStats{
		Workers:       p.workers,
		JobsSubmitted: p.submitted.Load(),
		JobsCompleted: p.completed.Load(),
		JobsFailed:    p.failed.Load(),
		Busy:          p.busy.Load(),
	}
}

func (p *Pool) work() {
	defer p.wg.Done()
	for job := range p.jobs {
		p.busy.Add(1)
		r := p.process(job)
		p.busy.Add(-1)

		p.completed.Add(1)
		if r.Error != nil {
			p.failed.Add(1)
		}
		// Results must be drained even after ctx is done, or Close never
		// finishes.
		p.results <- r
	}
}

func (p *Pool) process(job Job) *JobResult {
	start := time.Now()
	r := &JobResult{ID: job.ID, Index: job.Index}
	switch {
	case p.ctx.Err() != nil:
		r.Error = p.ctx.Err()
	case p.task == nil:
		r.Error = ErrNoTask
	default:
		r.Result, r.Output, r.Error = p.task(p.ctx, job.Document)
		if r.Result != nil {
			r.Result.JobID = job.ID
		}
	}
	r.Duration = time.Since(start)
	return r
}

// Run submits docs to a new pool and returns one result per document in
// input order. Documents not submitted before ctx is done carry ctx.Err().
func Run(ctx context.Context, task Task, workers int, docs []document.Document) []*JobResult {
	p := NewPool(ctx, task, workers)
	go func() {
		defer p.Close()
		for i, doc := range docs {
			if p.Submit(Job{ID: jobID(i), Index: i, Document: doc}) != nil {
				return
			}
		}
	}()

	out := make([]*JobResult, len(docs))
	for r := range p.Results() {
		out[r.Index] = r
	}
	for i := range out {
		if out[i] == nil {
			err := ctx.Err()
			if err == nil {
				err = ErrPoolClosed
			}
			out[i] = &JobResult{ID: jobID(i), Index: i, Error: err}
		}
	}
	return out
}

package pipeline

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"

	cda "github.com/gofhir/cda"
)

// Pipeline runs registered phases in priority groups. Groups run in order;
// phases within a group may run in parallel.
type Pipeline struct {
	phases  []*PhaseConfig
	groups  []*PhaseGroup
	metrics *cda.Metrics
	options *PipelineOptions

	mu sync.RWMutex
}

// PipelineOptions tunes how groups are executed.
type PipelineOptions struct {
	// ParallelExecution lets phases of one group run concurrently.
	ParallelExecution bool

	// PhaseTimeout bounds each phase; zero disables it.
	PhaseTimeout time.Duration

	// MaxErrors stops before the next phase once this many errors exist,
	// and truncates the result to that many. Zero means unlimited.
	MaxErrors int

	CollectMetrics bool

	// FailFast skips remaining phases after the first error.
	FailFast bool
}

// DefaultPipelineOptions runs groups in parallel and records metrics.
func DefaultPipelineOptions() *PipelineOptions {
	return &PipelineOptions{
		ParallelExecution: true,
		CollectMetrics:    true,
	}
}

// NewPipeline creates a new validation pipeline.
func NewPipeline(opts *PipelineOptions) *Pipeline {
	if opts == nil {
		opts = DefaultPipelineOptions()
	}
	return &Pipeline{
		metrics: cda.NewMetrics(),
		options: opts,
	}
}

// PhaseOption adjusts a registration.
type PhaseOption func(*PhaseConfig)

// WithPriority moves the phase to another group.
func WithPriority(priority PhasePriority) PhaseOption {
	return func(c *PhaseConfig) { c.Priority = priority }
}

// WithParallel allows or forbids running the phase next to its group.
func WithParallel(parallel bool) PhaseOption {
	return func(c *PhaseConfig) { c.Parallel = parallel }
}

// WithRequired keeps the phase enabled regardless of Disable.
func WithRequired(required bool) PhaseOption {
	return func(c *PhaseConfig) { c.Required = required }
}

// Register adds a phase, or replaces the one registered under id. Priority
// and parallelism default to the placement StandardGroups gives id.
func (p *Pipeline) Register(id PhaseID, phase Phase, opts ...PhaseOption) {
	priority, parallel := standardPlacement(id)
	config := &PhaseConfig{
		ID:       id,
		Phase:    phase,
		Priority: priority,
		Parallel: parallel,
		Enabled:  true,
	}
	for _, opt := range opts {
		opt(config)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	replaced := false
	for i, existing := range p.phases {
		if existing.ID == id {
			p.phases[i] = config
			replaced = true
			break
		}
	}
	if !replaced {
		p.phases = append(p.phases, config)
	}
	p.rebuildGroups()
}

// Enable turns a registered phase back on.
func (p *Pipeline) Enable(id PhaseID) {
	p.setEnabled(id, true)
}

// Disable turns a phase off unless it is required.
func (p *Pipeline) Disable(id PhaseID) {
	p.setEnabled(id, false)
}

func (p *Pipeline) setEnabled(id PhaseID, enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, cfg := range p.phases {
		if cfg.ID == id && (enabled || !cfg.Required) {
			cfg.Enabled = enabled
		}
	}
	p.rebuildGroups()
}

func (p *Pipeline) enabled() []*PhaseConfig {
	var out []*PhaseConfig
	for _, cfg := range p.phases {
		if cfg.Enabled {
			out = append(out, cfg)
		}
	}
	return out
}

// rebuildGroups must be called with mu held.
func (p *Pipeline) rebuildGroups() {
	enabled := p.enabled()
	if len(enabled) == 0 {
		p.groups = nil
		return
	}

	sorted := append([]*PhaseConfig(nil), enabled...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority < sorted[j].Priority
	})

	p.groups = nil
	var current *PhaseGroup
	for _, cfg := range sorted {
		if current == nil || current.Priority != cfg.Priority {
			current = &PhaseGroup{Priority: cfg.Priority, Parallel: p.options.ParallelExecution}
			p.groups = append(p.groups, current)
		}
		current.Phases = append(current.Phases, cfg)
		current.Parallel = current.Parallel && cfg.Parallel
	}
}

// Execute runs the pipeline over pctx.Document and returns pctx.Result.
func (p *Pipeline) Execute(ctx context.Context, pctx *Context) *cda.Result {
	start := time.Now()

	if pctx.Result == nil {
		pctx.Result = cda.AcquireResult()
	}
	pctx.Result.DocumentType = pctx.DocumentType

	p.mu.RLock()
	groups := p.groups
	p.mu.RUnlock()

	for _, group := range groups {
		if err := ctx.Err(); err != nil {
			pctx.AddIssue(cda.Warning(cda.IssueTypeTimeout).
				Diagnostics("validation cancelled: " + err.Error()).
				Build())
			break
		}
		if p.stop(pctx) {
			break
		}
		p.runGroup(ctx, pctx, group)
	}

	// Phases report a whole batch at once, so a single phase can overshoot
	// the limit.
	pctx.Result.LimitErrors(p.options.MaxErrors)

	if p.options.CollectMetrics && p.metrics != nil {
		p.metrics.RecordValidation(pctx.DocumentType, time.Since(start), pctx.Result.Valid)
		for _, issue := range pctx.Result.Issues {
			p.metrics.RecordIssue(issue.Severity)
		}
	}

	return pctx.Result
}

func (p *Pipeline) stop(pctx *Context) bool {
	if pctx.ShouldStop() {
		return true
	}
	errs := pctx.Result.ErrorCount()
	if p.options.MaxErrors > 0 && errs >= p.options.MaxErrors {
		return true
	}
	return p.options.FailFast && errs > 0
}

// runGroup runs the phases of group, concurrently when the group allows
// it. Issues are added in registration order either way.
func (p *Pipeline) runGroup(ctx context.Context, pctx *Context, group *PhaseGroup) {
	if !group.Parallel || len(group.Phases) < 2 {
		for _, cfg := range group.Phases {
			if ctx.Err() != nil || p.stop(pctx) {
				return
			}
			pctx.Result.AddIssues(p.runPhase(ctx, pctx, cfg))
		}
		return
	}

	found := make([][]cda.Issue, len(group.Phases))
	var wg sync.WaitGroup
	wg.Add(len(group.Phases))
	for i := range group.Phases {
		go func(i int) {
			defer wg.Done()
			found[i] = p.runPhase(ctx, pctx, group.Phases[i])
		}(i)
	}
	wg.Wait()
	for _, issues := range found {
		pctx.Result.AddIssues(issues)
	}
}

// runPhase runs one phase under the phase timeout and records its timing.
func (p *Pipeline) runPhase(ctx context.Context, pctx *Context, cfg *PhaseConfig) []cda.Issue {
	runCtx, cancel := ctx, context.CancelFunc(func() {})
	if p.options.PhaseTimeout > 0 {
		runCtx, cancel = context.WithTimeout(ctx, p.options.PhaseTimeout)
	}
	defer cancel()

	start := time.Now()
	issues := cfg.Phase.Validate(runCtx, pctx)
	duration := time.Since(start)

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
		issues = append(issues, cda.Warning(cda.IssueTypeTimeout).
			Diagnostics("phase timed out after "+p.options.PhaseTimeout.String()).
			Phase(cfg.Phase.Name()).
			Build())
	}

	if p.options.CollectMetrics && p.metrics != nil {
		p.metrics.RecordPhase(cfg.Phase.Name(), duration, len(issues))
	}
	return issues
}

// Metrics returns the collector phases and validations are recorded in.
func (p *Pipeline) Metrics() *cda.Metrics { return p.metrics }

// SetMetrics shares m with the pipeline, typically the generator's own.
func (p *Pipeline) SetMetrics(m *cda.Metrics) { p.metrics = m }

// PhaseCount returns the number of enabled phases.
func (p *Pipeline) PhaseCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.enabled())
}

// GroupCount returns the number of execution groups.
func (p *Pipeline) GroupCount() int {
	return len(p.Groups())
}

// Groups returns a copy of the execution groups in run order.
func (p *Pipeline) Groups() []*PhaseGroup {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]*PhaseGroup(nil), p.groups...)
}

package cda

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Metrics counts validations, generated documents and issues. The hot
// counters are atomic; timings and per-key tables share one mutex.
type Metrics struct {
	generated atomic.Uint64
	rejected  atomic.Uint64

	cacheHits   atomic.Uint64
	cacheMisses atomic.Uint64

	issues [3]atomic.Uint64 // errors, warnings, information

	mu      sync.Mutex
	overall timing
	valid   uint64
	byType  map[DocumentType]*typeStats
	phases  map[string]*phaseStats
}

type timing struct {
	count    uint64
	total    time.Duration
	min, max time.Duration
}

func (t *timing) add(d time.Duration) {
	if t.count == 0 || d < t.min {
		t.min = d
	}
	if d > t.max {
		t.max = d
	}
	t.count++
	t.total += d
}

func (t *timing) avg() time.Duration {
	if t.count == 0 {
		return 0
	}
	return t.total / time.Duration(t.count) //nolint:gosec // small counts
}

type typeStats struct {
	validated uint64
	valid     uint64
}

type phaseStats struct {
	timing
	issues uint64
}

const (
	issueErrors = iota
	issueWarnings
	issueInfos
)

// NewMetrics creates an empty Metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		byType: make(map[DocumentType]*typeStats),
		phases: make(map[string]*phaseStats),
	}
}

// RecordValidation records one pipeline run over a document of type dt.
func (m *Metrics) RecordValidation(dt DocumentType, duration time.Duration, valid bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.overall.add(duration)
	if valid {
		m.valid++
	}
	if dt == "" {
		return
	}
	ts := m.byType[dt]
	if ts == nil {
		ts = &typeStats{}
		m.byType[dt] = ts
	}
	ts.validated++
	if valid {
		ts.valid++
	}
}

// RecordGeneration records whether a document was rendered or rejected.
func (m *Metrics) RecordGeneration(ok bool) {
	if ok {
		m.generated.Add(1)
		return
	}
	m.rejected.Add(1)
}

// RecordCacheHit records a compiled invariant cache hit.
func (m *Metrics) RecordCacheHit() { m.cacheHits.Add(1) }

// RecordCacheMiss records a compiled invariant cache miss.
func (m *Metrics) RecordCacheMiss() { m.cacheMisses.Add(1) }

// RecordIssue counts one issue by severity.
func (m *Metrics) RecordIssue(severity IssueSeverity) {
	switch severity {
	case SeverityError, SeverityFatal:
		m.issues[issueErrors].Add(1)
	case SeverityWarning:
		m.issues[issueWarnings].Add(1)
	case SeverityInformation:
		m.issues[issueInfos].Add(1)
	}
}

// RecordPhase records one run of the named phase.
func (m *Metrics) RecordPhase(phaseName string, duration time.Duration, issuesFound int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ps := m.phases[phaseName]
	if ps == nil {
		ps = &phaseStats{}
		m.phases[phaseName] = ps
	}
	ps.add(duration)
	ps.issues += uint64(issuesFound) //nolint:gosec // counts are non-negative
}

// ValidationsTotal returns the number of validations.
func (m *Metrics) ValidationsTotal() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.overall.count
}

// ValidationsValid returns the number of validations without errors.
func (m *Metrics) ValidationsValid() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.valid
}

// ValidationsByType returns the number of validations of documents of type dt.
func (m *Metrics) ValidationsByType(dt DocumentType) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ts := m.byType[dt]; ts != nil {
		return ts.validated
	}
	return 0
}

// ValidationRate returns the fraction of validations without errors.
func (m *Metrics) ValidationRate() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return ratio(m.valid, m.overall.count)
}

// AverageValidationTime returns the mean validation duration.
func (m *Metrics) AverageValidationTime() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.overall.avg()
}

// MinValidationTime returns the shortest validation duration.
func (m *Metrics) MinValidationTime() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.overall.min
}

// MaxValidationTime returns the longest validation duration.
func (m *Metrics) MaxValidationTime() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.overall.max
}

// DocumentsGenerated returns the number of documents rendered.
func (m *Metrics) DocumentsGenerated() uint64 { return m.generated.Load() }

// DocumentsRejected returns the number of documents that failed validation
// when generated.
func (m *Metrics) DocumentsRejected() uint64 { return m.rejected.Load() }

// CacheHits returns the compiled invariant cache hits.
func (m *Metrics) CacheHits() uint64 { return m.cacheHits.Load() }

// CacheMisses returns the compiled invariant cache misses.
func (m *Metrics) CacheMisses() uint64 { return m.cacheMisses.Load() }

// CacheHitRate returns the fraction of cache lookups that hit.
func (m *Metrics) CacheHitRate() float64 {
	hits := m.cacheHits.Load()
	return ratio(hits, hits+m.cacheMisses.Load())
}

// ErrorsTotal returns the number of error and fatal issues.
func (m *Metrics) ErrorsTotal() uint64 { return m.issues[issueErrors].Load() }

// WarningsTotal returns the number of warnings.
func (m *Metrics) WarningsTotal() uint64 { return m.issues[issueWarnings].Load() }

// InfosTotal returns the number of information issues.
func (m *Metrics) InfosTotal() uint64 { return m.issues[issueInfos].Load() }

func ratio(n, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total)
}

// PhaseStats summarises the runs of one validation phase.
type PhaseStats struct {
	Name        string        `json:"name"`
	Invocations uint64        `json:"invocations"`
	TotalTime   time.Duration `json:"total_time_ns"`
	AvgTime     time.Duration `json:"avg_time_ns"`
	IssuesFound uint64        `json:"issues_found"`
}

func (ps *phaseStats) export(name string) PhaseStats {
	return PhaseStats{
		Name:        name,
		Invocations: ps.count,
		TotalTime:   ps.total,
		AvgTime:     ps.avg(),
		IssuesFound: ps.issues,
	}
}

// PhaseStats returns the statistics of the named phase.
func (m *Metrics) PhaseStats(phaseName string) (PhaseStats, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ps := m.phases[phaseName]
	if ps == nil {
		return PhaseStats{Name: phaseName}, false
	}
	return ps.export(phaseName), true
}

// AllPhaseStats returns the statistics of every phase ordered by name.
func (m *Metrics) AllPhaseStats() []PhaseStats {
	m.mu.Lock()
	out := make([]PhaseStats, 0, len(m.phases))
	for name, ps := range m.phases {
		out = append(out, ps.export(name))
	}
	m.mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// TypeStats counts the validations of one document type.
type TypeStats struct {
	Validated uint64 `json:"validated"`
	Valid     uint64 `json:"valid"`
}

// Snapshot is a point-in-time copy of all metrics.
type Snapshot struct {
	Timestamp time.Time `json:"timestamp"`

	ValidationsTotal uint64  `json:"validations_total"`
	ValidationsValid uint64  `json:"validations_valid"`
	ValidationRate   float64 `json:"validation_rate"`

	AvgValidationTime time.Duration `json:"avg_validation_time_ns"`
	MinValidationTime time.Duration `json:"min_validation_time_ns"`
	MaxValidationTime time.Duration `json:"max_validation_time_ns"`

	DocumentsGenerated uint64 `json:"documents_generated"`
	DocumentsRejected  uint64 `json:"documents_rejected"`

	CacheHits    uint64  `json:"cache_hits"`
	CacheMisses  uint64  `json:"cache_misses"`
	CacheHitRate float64 `json:"cache_hit_rate"`

	ErrorsTotal   uint64 `json:"errors_total"`
	WarningsTotal uint64 `json:"warnings_total"`
	InfosTotal    uint64 `json:"infos_total"`

	ByType map[DocumentType]TypeStats `json:"by_type,omitempty"`
	Phases []PhaseStats               `json:"phases,omitempty"`
}

// Snapshot copies all metrics.
func (m *Metrics) Snapshot() Snapshot {
	m.mu.Lock()
	s := Snapshot{
		Timestamp:         time.Now(),
		ValidationsTotal:  m.overall.count,
		ValidationsValid:  m.valid,
		ValidationRate:    ratio(m.valid, m.overall.count),
		AvgValidationTime: m.overall.avg(),
		MinValidationTime: m.overall.min,
		MaxValidationTime: m.overall.max,
		ByType:            make(map[DocumentType]TypeStats, len(m.byType)),
	}
	for dt, ts := range m.byType {
		s.ByType[dt] = TypeStats{Validated: ts.validated, Valid: ts.valid}
	}
	m.mu.Unlock()

	s.DocumentsGenerated = m.DocumentsGenerated()
	s.DocumentsRejected = m.DocumentsRejected()
	s.CacheHits = m.CacheHits()
	s.CacheMisses = m.CacheMisses()
	s.CacheHitRate = m.CacheHitRate()
	s.ErrorsTotal = m.ErrorsTotal()
	s.WarningsTotal = m.WarningsTotal()
	s.InfosTotal = m.InfosTotal()
	s.Phases = m.AllPhaseStats()
	return s
}

// Fields returns the headline counters as structured log fields.
func (m *Metrics) Fields() map[string]interface{} {
	s := m.Snapshot()
	return map[string]interface{}{
		"validations_total":   s.ValidationsTotal,
		"validations_valid":   s.ValidationsValid,
		"documents_generated": s.DocumentsGenerated,
		"documents_rejected":  s.DocumentsRejected,
		"errors_total":        s.ErrorsTotal,
		"warnings_total":      s.WarningsTotal,
		"cache_hit_rate":      s.CacheHitRate,
	}
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.generated.Store(0)
	m.rejected.Store(0)
	m.cacheHits.Store(0)
	m.cacheMisses.Store(0)
	for i := range m.issues {
		m.issues[i].Store(0)
	}

	m.mu.Lock()
	m.overall = timing{}
	m.valid = 0
	m.byType = make(map[DocumentType]*typeStats)
	m.phases = make(map[string]*phaseStats)
	m.mu.Unlock()
}

package cda

import (
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
)

// Option changes one setting of a Generator.
type Option func(*Options)

// Options are the settings of a Generator. Build them with NewOptions
// rather than by hand so the defaults apply.
type Options struct {
	// Optional phases. Required-field checks always run.
	ValidateTerminology bool
	ValidateConstraints bool
	ValidateIdentifiers bool

	// StrictMode turns warnings into errors, so they block generation.
	StrictMode bool

	// MaxErrors caps the errors reported per document; zero is unlimited.
	MaxErrors int

	ParallelPhases bool
	WorkerCount    int
	PhaseTimeout   time.Duration

	// EnablePooling hands out pooled results that callers must Release.
	EnablePooling bool

	ExpressionCacheSize int

	GenerateNarrative bool

	Logger logrus.FieldLogger
}

const defaultExpressionCacheSize = 256

// DefaultOptions enables every phase, with pooling, parallel phases and
// narrative on.
func DefaultOptions() *Options {
	return &Options{
		ValidateTerminology: true,
		ValidateConstraints: true,
		ValidateIdentifiers: true,
		ParallelPhases:      true,
		WorkerCount:         runtime.NumCPU(),
		EnablePooling:       true,
		ExpressionCacheSize: defaultExpressionCacheSize,
		GenerateNarrative:   true,
	}
}

// NewOptions applies opts in order over DefaultOptions.
func NewOptions(opts ...Option) *Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// WithTerminology toggles checking coded values against the code system registry.
func WithTerminology(enable bool) Option {
	return func(o *Options) { o.ValidateTerminology = enable }
}

// WithConstraints toggles the per-document-type invariants.
func WithConstraints(enable bool) Option {
	return func(o *Options) { o.ValidateConstraints = enable }
}

// WithIdentifierChecks toggles check-digit validation of HPI-I, HPI-O,
// Medicare and DVA numbers.
func WithIdentifierChecks(enable bool) Option {
	return func(o *Options) { o.ValidateIdentifiers = enable }
}

// WithStrictMode makes warnings block generation by reporting them as errors.
func WithStrictMode(enable bool) Option {
	return func(o *Options) { o.StrictMode = enable }
}

// WithMaxErrors caps the errors reported per document; zero is unlimited.
func WithMaxErrors(max int) Option {
	return func(o *Options) { o.MaxErrors = max }
}

// WithParallelPhases toggles running the phases of one group concurrently.
func WithParallelPhases(enable bool) Option {
	return func(o *Options) { o.ParallelPhases = enable }
}

// WithWorkerCount sizes the batch worker pool. Non-positive counts are
// ignored.
func WithWorkerCount(count int) Option {
	return func(o *Options) {
		if count > 0 {
			o.WorkerCount = count
		}
	}
}

// WithPhaseTimeout bounds each phase; zero disables the bound.
func WithPhaseTimeout(timeout time.Duration) Option {
	return func(o *Options) { o.PhaseTimeout = timeout }
}

// WithPooling toggles pooled results. Pooled results must be released by the caller.
func WithPooling(enable bool) Option {
	return func(o *Options) { o.EnablePooling = enable }
}

// WithExpressionCache sizes the compiled invariant cache. Non-positive
// sizes are ignored.
func WithExpressionCache(size int) Option {
	return func(o *Options) {
		if size > 0 {
			o.ExpressionCacheSize = size
		}
	}
}

// WithNarrative toggles the human-readable section text in rendered CDA.
func WithNarrative(enable bool) Option {
	return func(o *Options) { o.GenerateNarrative = enable }
}

// WithLogger sets the logger; nil selects the package logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) { o.Logger = l }
}

// FastOptions leaves only the required-field checks.
func FastOptions() []Option {
	return []Option{
		WithConstraints(false),
		WithTerminology(false),
		WithIdentifierChecks(false),
	}
}

// StrictOptions runs every phase and fails on warnings.
func StrictOptions() []Option {
	return []Option{
		WithConstraints(true),
		WithTerminology(true),
		WithIdentifierChecks(true),
		WithStrictMode(true),
	}
}

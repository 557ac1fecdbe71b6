// Package engine validates documents and generates CDA XML from them.
package engine

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	cda "github.com/gofhir/cda"
	"github.com/gofhir/cda/document"
	"github.com/gofhir/cda/phase"
	"github.com/gofhir/cda/pipeline"
	"github.com/gofhir/cda/pkg/logger"
	"github.com/gofhir/cda/render"
	"github.com/gofhir/cda/service"
	"github.com/gofhir/cda/worker"
)

// Generator coordinates validation phases and CDA rendering.
type Generator struct {
	options  *cda.Options
	services *service.Services

	pipe     *pipeline.Pipeline
	renderer *render.Renderer
	batch    *worker.BatchValidator

	metrics *cda.Metrics
	log     logrus.FieldLogger
}

// New creates a Generator with the given options.
func New(opts ...cda.Option) *Generator {
	options := cda.NewOptions(opts...)

	g := &Generator{
		options:  options,
		metrics:  cda.NewMetrics(),
		renderer: render.NewRenderer(options.GenerateNarrative),
	}
	if options.Logger != nil {
		g.log = logger.For(options.Logger, "engine")
	} else {
		g.log = logger.Component("engine")
	}

	g.services = service.NewServices().
		WithTerminology(service.NewCachingCodeValidator(service.NewRegistryValidator(nil), options.ExpressionCacheSize)).
		WithConstraints(service.NewFHIRPathEvaluator(options.ExpressionCacheSize, g.metrics))

	g.buildPipeline()
	g.batch = worker.NewBatchValidator(g.Validate, options.WorkerCount)
	return g
}

// buildPipeline constructs the validation pipeline based on options.
func (g *Generator) buildPipeline() {
	g.pipe = pipeline.NewPipeline(&pipeline.PipelineOptions{
		ParallelExecution: g.options.ParallelPhases,
		MaxErrors:         g.options.MaxErrors,
		FailFast:          g.options.MaxErrors == 1,
		PhaseTimeout:      g.options.PhaseTimeout,
		CollectMetrics:    true,
	})
	g.pipe.SetMetrics(g.metrics)

	g.pipe.Register(pipeline.PhaseIDRequired, phase.NewRequiredPhase(), pipeline.WithRequired(true))
	g.pipe.Register(pipeline.PhaseIDIdentifiers, phase.NewIdentifiersPhase())
	g.pipe.Register(pipeline.PhaseIDTerminology, phase.NewTerminologyPhase(g.services.Terminology))
	g.pipe.Register(pipeline.PhaseIDConstraints, pipeline.When(
		phase.NewConstraintsPhase(g.services.Constraints),
		func(pctx *pipeline.Context) bool {
			return len(document.InvariantsFor(pctx.DocumentType)) > 0
		}))

	if !g.options.ValidateIdentifiers {
		g.pipe.Disable(pipeline.PhaseIDIdentifiers)
	}
	if !g.options.ValidateTerminology || g.services.Terminology == nil {
		g.pipe.Disable(pipeline.PhaseIDTerminology)
	}
	if !g.options.ValidateConstraints || g.services.Constraints == nil {
		g.pipe.Disable(pipeline.PhaseIDConstraints)
	}

	g.log.WithField("phases", g.pipe.PhaseCount()).Debug("pipeline built")
}

// SetCodeValidator replaces the terminology service.
func (g *Generator) SetCodeValidator(v service.CodeValidator) {
	g.services.Terminology = v
	g.buildPipeline()
}

// SetConstraintEvaluator replaces the invariant evaluator.
func (g *Generator) SetConstraintEvaluator(e service.ConstraintEvaluator) {
	g.services.Constraints = e
	g.buildPipeline()
}

// Validate runs every enabled phase over doc. The error is non-nil only
// when doc is nil; validation failures are reported in the result.
func (g *Generator) Validate(ctx context.Context, doc document.Document) (*cda.Result, error) {
	if doc == nil {
		return nil, cda.NewArgumentError("doc", "", "is required")
	}

	pctx := pipeline.AcquireContext()
	defer pctx.Release()

	pctx.SetDocument(doc)
	pctx.Services = g.services
	pctx.MaxErrors = g.options.MaxErrors
	if g.options.EnablePooling {
		pctx.Result = cda.AcquireResult()
	} else {
		pctx.Result = cda.NewResult()
	}

	result := g.pipe.Execute(ctx, pctx)
	if g.options.StrictMode {
		result.Escalate()
		result.LimitErrors(g.options.MaxErrors)
	}

	g.log.WithFields(logrus.Fields{
		"documentType": doc.DocumentType(),
		"valid":        result.Valid,
		"errors":       result.ErrorCount(),
		"warnings":     result.WarningCount(),
	}).Debug("document validated")
	return result, nil
}

// Generate validates doc and renders it as CDA XML. When validation finds
// any error the document is not rendered and the error is a
// *cda.ValidationError listing every error issue.
func (g *Generator) Generate(ctx context.Context, doc document.Document) ([]byte, error) {
	result, out, err := g.generate(ctx, doc)
	if result != nil && g.options.EnablePooling {
		result.Release()
	}
	return out, err
}

// GenerateAll generates docs concurrently. Results are in input order and
// carry the validation result; Output is nil for rejected documents.
func (g *Generator) GenerateAll(ctx context.Context, docs []document.Document) []*worker.JobResult {
	start := time.Now()
	results := worker.Run(ctx, g.generate, g.options.WorkerCount, docs)

	rejected := 0
	for _, r := range results {
		if r.Error != nil {
			rejected++
		}
	}
	g.log.WithFields(logrus.Fields{
		"documents": len(docs),
		"rejected":  rejected,
		"duration":  time.Since(start),
	}).Info("batch generated")
	return results
}

// generate returns the validation result along with the output. The caller
// owns the result.
func (g *Generator) generate(ctx context.Context, doc document.Document) (*cda.Result, []byte, error) {
	start := time.Now()
	result, err := g.Validate(ctx, doc)
	if err != nil {
		return nil, nil, err
	}

	log := g.log.WithField("documentType", doc.DocumentType())
	if err := result.Err(); err != nil {
		g.metrics.RecordGeneration(false)
		log.WithField("errors", result.ErrorCount()).Warn("document rejected")
		return result, nil, err
	}

	out, err := g.renderer.Render(doc)
	if err != nil {
		g.metrics.RecordGeneration(false)
		return result, nil, err
	}
	g.metrics.RecordGeneration(true)
	log.WithFields(logrus.Fields{
		"bytes":    len(out),
		"duration": time.Since(start),
	}).Info("document generated")
	return result, out, nil
}

// ValidateBatch validates docs concurrently. Results are in input order.
func (g *Generator) ValidateBatch(ctx context.Context, docs []document.Document) *worker.BatchResult {
	res := g.batch.ValidateBatch(ctx, docs)
	g.log.WithFields(logrus.Fields{
		"documents": res.TotalJobs,
		"valid":     res.ValidCount(),
		"failed":    res.FailedJobs,
		"duration":  res.TotalDuration,
	}).Info("batch validated")
	return res
}

// Metrics returns the generator's metrics.
func (g *Generator) Metrics() *cda.Metrics {
	return g.metrics
}

// Options returns the generator's options.
func (g *Generator) Options() *cda.Options {
	return g.options
}

// Close releases resources held by the generator.
func (g *Generator) Close() error {
	g.log.WithFields(g.metrics.Fields()).Debug("generator closed")
	return nil
}

package service

import (
	"context"

	"github.com/gofhir/fhirpath"
	"github.com/gofhir/fhirpath/types"
	"github.com/pkg/errors"

	cda "github.com/gofhir/cda"
	"github.com/gofhir/cda/cache"
)

// FHIRPathEvaluator evaluates invariants with the fhirpath package.
// Compiled expressions are kept in an LRU cache.
type FHIRPathEvaluator struct {
	cache   *cache.Cache[string, *fhirpath.Expression]
	metrics *cda.Metrics
}

// NewFHIRPathEvaluator creates an evaluator caching up to cacheSize
// compiled expressions. metrics may be nil.
func NewFHIRPathEvaluator(cacheSize int, metrics *cda.Metrics) *FHIRPathEvaluator {
	return &FHIRPathEvaluator{
		cache:   cache.New[string, *fhirpath.Expression](cacheSize),
		metrics: metrics,
	}
}

// Evaluate compiles expression (or reuses the cached form) and evaluates it
// against document. An empty result counts as false, a single boolean as
// its value and any other non-empty result as true.
func (e *FHIRPathEvaluator) Evaluate(ctx context.Context, expression string, document []byte) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	compiled, hit, err := e.cache.GetOrLoad(expression, func() (*fhirpath.Expression, error) {
		return fhirpath.Compile(expression)
	})
	if e.metrics != nil {
		if hit {
			e.metrics.RecordCacheHit()
		} else {
			e.metrics.RecordCacheMiss()
		}
	}
	if err != nil {
		return false, errors.Wrapf(err, "compile %q", expression)
	}

	result, err := compiled.Evaluate(document)
	if err != nil {
		return false, errors.Wrapf(err, "evaluate %q", expression)
	}
	return toBool(result), nil
}

func toBool(result types.Collection) bool {
	if result.Empty() {
		return false
	}
	if len(result) == 1 {
		if b, ok := result[0].(types.Boolean); ok {
			return b.Bool()
		}
	}
	return true
}

// CacheStats returns statistics of the expression cache.
func (e *FHIRPathEvaluator) CacheStats() cache.Stats {
	return e.cache.Stats()
}

var _ ConstraintEvaluator = (*FHIRPathEvaluator)(nil)

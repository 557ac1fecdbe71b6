package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/gofhir/cda/cache"
	"github.com/gofhir/cda/vocab"
)

// ErrNotSupported is returned when a validator cannot answer for a code system.
var ErrNotSupported = errors.New("operation not supported")

// TerminologyChain tries each validator in order until one can answer.
type TerminologyChain struct {
	validators []CodeValidator
}

// NewTerminologyChain creates a chain over validators.
func NewTerminologyChain(validators ...CodeValidator) *TerminologyChain {
	return &TerminologyChain{validators: validators}
}

// ValidateCode returns the first definitive answer. When no validator can
// answer it returns the last partial result with ErrNotSupported.
func (c *TerminologyChain) ValidateCode(ctx context.Context, system, code, display string) (*vocab.ValidateCodeResult, error) {
	var last *vocab.ValidateCodeResult
	for _, v := range c.validators {
		res, err := v.ValidateCode(ctx, system, code, display)
		if err == nil {
			return res, nil
		}
		if !errors.Is(err, ErrNotSupported) {
			return nil, err
		}
		if res != nil {
			last = res
		}
	}
	return last, ErrNotSupported
}

// Add appends a validator to the chain.
func (c *TerminologyChain) Add(v CodeValidator) {
	c.validators = append(c.validators, v)
}

// CachingCodeValidator remembers definitive answers of the wrapped validator.
type CachingCodeValidator struct {
	next  CodeValidator
	cache *cache.Cache[string, *vocab.ValidateCodeResult]
}

// NewCachingCodeValidator wraps next with an LRU cache of size entries.
func NewCachingCodeValidator(next CodeValidator, size int) *CachingCodeValidator {
	return &CachingCodeValidator{next: next, cache: cache.New[string, *vocab.ValidateCodeResult](size)}
}

// ValidateCode checks the cache first, then calls the wrapped validator.
func (c *CachingCodeValidator) ValidateCode(ctx context.Context, system, code, display string) (*vocab.ValidateCodeResult, error) {
	key := system + "|" + code + "|" + display
	if res, ok := c.cache.Get(key); ok {
		return res, nil
	}
	res, err := c.next.ValidateCode(ctx, system, code, display)
	if err != nil {
		return res, err
	}
	c.cache.Set(key, res)
	return res, nil
}

// Stats returns the cache statistics.
func (c *CachingCodeValidator) Stats() cache.Stats {
	return c.cache.Stats()
}

// Services aggregates the services used by the validation phases.
type Services struct {
	Terminology CodeValidator
	Constraints ConstraintEvaluator
}

// NewServices returns services backed by the default vocabulary registry
// and no constraint evaluator.
func NewServices() *Services {
	return &Services{Terminology: NewRegistryValidator(nil)}
}

// WithTerminology sets the terminology service.
func (s *Services) WithTerminology(t CodeValidator) *Services {
	s.Terminology = t
	return s
}

// WithConstraints sets the constraint evaluator.
func (s *Services) WithConstraints(c ConstraintEvaluator) *Services {
	s.Constraints = c
	return s
}

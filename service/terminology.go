package service

import (
	"context"

	"github.com/gofhir/cda/vocab"
)

// CodeValidator checks a coded value against a code system.
type CodeValidator interface {
	ValidateCode(ctx context.Context, system, code, display string) (*vocab.ValidateCodeResult, error)
}

// ConstraintEvaluator evaluates a document invariant against the JSON form
// of a document. It returns true when the invariant holds.
type ConstraintEvaluator interface {
	Evaluate(ctx context.Context, expression string, document []byte) (bool, error)
}

// RegistryValidator answers ValidateCode from a vocab.Registry.
type RegistryValidator struct {
	registry *vocab.Registry
}

// NewRegistryValidator wraps r. A nil registry uses vocab.Default().
func NewRegistryValidator(r *vocab.Registry) *RegistryValidator {
	if r == nil {
		r = vocab.Default()
	}
	return &RegistryValidator{registry: r}
}

// ValidateCode returns ErrNotSupported for code systems the registry has no
// content for, so a chain can fall through to the next validator.
func (v *RegistryValidator) ValidateCode(_ context.Context, system, code, display string) (*vocab.ValidateCodeResult, error) {
	res := v.registry.ValidateCode(system, code, display)
	if !res.Known {
		return &res, ErrNotSupported
	}
	return &res, nil
}

// Registry returns the wrapped registry.
func (v *RegistryValidator) Registry() *vocab.Registry {
	return v.registry
}

var _ CodeValidator = (*RegistryValidator)(nil)

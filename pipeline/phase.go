package pipeline

import (
	"context"

	cda "github.com/gofhir/cda"
)

// Phase is one validation step. Phases must be safe for concurrent use and
// keep per-document state in the Context.
type Phase interface {
	Name() string

	// Validate checks pctx.Document and returns the issues found.
	Validate(ctx context.Context, pctx *Context) []cda.Issue
}

// PhaseID identifies a registered phase.
type PhaseID string

const (
	PhaseIDRequired    PhaseID = "required"
	PhaseIDIdentifiers PhaseID = "identifiers"
	PhaseIDTerminology PhaseID = "terminology"
	PhaseIDConstraints PhaseID = "constraints"
)

// PhasePriority orders phases. Lower values run first; phases with equal
// priority form a group.
type PhasePriority int

const (
	PriorityFirst  PhasePriority = 100
	PriorityNormal PhasePriority = 500
	PriorityLate   PhasePriority = 800
)

// PhaseConfig is the registration of a phase.
type PhaseConfig struct {
	ID       PhaseID
	Phase    Phase
	Priority PhasePriority

	// Parallel lets the phase run alongside others of its group.
	Parallel bool

	// Required phases cannot be disabled.
	Required bool

	Enabled bool
}

// When wraps phase so it only runs for documents accepted by cond.
func When(phase Phase, cond func(*Context) bool) Phase {
	return &conditional{Phase: phase, cond: cond}
}

type conditional struct {
	Phase
	cond func(*Context) bool
}

func (c *conditional) Validate(ctx context.Context, pctx *Context) []cda.Issue {
	if c.cond != nil && !c.cond(pctx) {
		return nil
	}
	return c.Phase.Validate(ctx, pctx)
}

// Package cda models the NEHTA CDA clinical document family and the
// results of validating it.
//
// Documents are plain structs built in the document and model packages.
// Before a document is rendered, every mandatory property is checked and
// each problem is reported as an Issue keyed by its object path, such as
// "CDAContext.SetID" or "SCSContext.Referees[0].Participant".
//
// # Quick Start
//
//	import (
//	    cda "github.com/gofhir/cda"
//	    "github.com/gofhir/cda/engine"
//	)
//
//	g := engine.New(cda.WithStrictMode(true))
//	out, err := g.Generate(ctx, referral)
//	if verr, ok := cda.AsValidationError(err); ok {
//	    for _, issue := range verr.Issues {
//	        fmt.Println(issue)
//	    }
//	}
//
// # Validation Phases
//
//   - Required: mandatory properties and list cardinality (always on)
//   - Identifiers: IHI, HPI-I, HPI-O, Medicare and DVA check digits
//   - Terminology: coded values against the vocabulary registry
//   - Constraints: per-document FHIRPath invariants
//
// Phases run through a pipeline that honours max-errors, fail-fast and a
// per-phase timeout. Batches of documents are validated by a worker pool.
//
// # Functional Options
//
//	g := engine.New(
//	    cda.WithTerminology(true),
//	    cda.WithParallelPhases(true),
//	    cda.WithWorkerCount(runtime.NumCPU()),
//	    cda.WithMaxErrors(100),
//	)
package cda

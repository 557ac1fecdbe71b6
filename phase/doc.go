// Package phase provides the validation phases run by the generator:
//   - required: mandatory properties, cardinality and choices
//   - identifiers: check digits of healthcare identifiers, Medicare, DVA,
//     prescriber and pharmacy approval numbers
//   - terminology: coded values against the vocabulary registry
//   - constraints: document-level FHIRPath invariants
//
// Phases implement pipeline.Phase and are registered with a Pipeline.
package phase

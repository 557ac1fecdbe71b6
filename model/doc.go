// Package model holds the value objects and participations CDA documents
// are assembled from.
//
// Objects are created with the New* factories, populated field by field and
// validated through their Validate methods, which record path-qualified
// messages on a validation.Builder. Factories that take identifier numbers
// reject malformed input immediately with a *cda.ArgumentError.
package model

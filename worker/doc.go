// Package worker validates and generates batches of documents in parallel.
//
// BatchValidator validates a slice and returns results in input order:
//
//	batch := worker.NewBatchValidator(g.Validate, 4).ValidateBatch(ctx, docs)
//
// Pool applies a Task to jobs as they are submitted; Run wraps it for a
// slice of documents.
package worker

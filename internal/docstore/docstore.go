// Package docstore is the abstract key-value document store behind every
// persisted collection. Each collection is one JSON array stored whole under
// a fixed key; every writer loads the entire document, mutates it in memory,
// and writes the entire document back.
//
// There is deliberately no locking, versioning, or optimistic-concurrency
// check: two logically concurrent writers performing read-modify-write on
// the same key silently lose one writer's update (last-write-wins at the
// granularity of the whole collection). That contract is part of the
// product's persistence model and is covered by tests; do not "fix" it here.
package docstore

import "context"

// Store reads and writes whole documents by key.
type Store interface {
	// Load returns the raw document and whether the key exists.
	Load(ctx context.Context, key string) ([]byte, bool, error)
	// Save replaces the document under key wholesale.
	Save(ctx context.Context, key string, doc []byte) error
	// Delete removes the document under key. Missing keys are a no-op.
	Delete(ctx context.Context, key string) error
}

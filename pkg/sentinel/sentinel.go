package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and repositories return
// these (optionally wrapped) so services can translate them into domain errors.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: record does not exist in the collection
// - ErrConflict: record already exists (duplicate key)
// - ErrInvalidState: record in wrong state for the requested transition
// - ErrMalformed: stored document could not be parsed
// - ErrUnavailable: the collection store cannot be read or written
//
// For validation errors (bad input, missing fields), use pkg/domainerrors directly.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
	ErrMalformed    = errors.New("malformed document")
	ErrUnavailable  = errors.New("unavailable")
)

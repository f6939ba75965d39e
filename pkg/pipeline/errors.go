package pipeline

import "errors"

// Sentinel errors for the commit-sequence failure taxonomy in spec.md
// §7. Each is a small closed named kind, wrapped with fmt.Errorf("...:
// %w", ...) at the call site so errors.Is keeps working once additional
// context is attached — the same convention as the teacher's
// pkg/api.ProblemDetail error set, adapted from HTTP status kinds to
// commit-sequence step kinds.
var (
	// ErrStreamClientAbort marks an inbound stream that closed or
	// errored mid-read; the ingestion task for that stream exits.
	ErrStreamClientAbort = errors.New("pipeline: inbound stream aborted")

	// ErrSignerBadMetadata marks metadata that failed JSON parsing at
	// the sign step.
	ErrSignerBadMetadata = errors.New("pipeline: metadata not parseable JSON")

	// ErrStoreWriteFailed marks a persistence failure at the store step.
	ErrStoreWriteFailed = errors.New("pipeline: receipt store write failed")
)

package logclient

import "errors"

// Sentinel errors matching the Log.* taxonomy in spec.md §7. Wrap with
// fmt.Errorf("...: %w", ErrX) at call sites so errors.Is keeps working
// after additional context is attached.
var (
	// ErrUnavailable is returned on transport failure to the log backend.
	ErrUnavailable = errors.New("logclient: log unavailable")
	// ErrRejected is returned when a QueueLeaf response lacks a queued leaf.
	ErrRejected = errors.New("logclient: leaf rejected")
	// ErrMalformed is returned when a response cannot be decoded per its
	// documented wire shape (e.g. a truncated signed root).
	ErrMalformed = errors.New("logclient: malformed response")
	// ErrNoProof is returned when the backend has no inclusion proof for
	// the requested leaf index / tree size pair.
	ErrNoProof = errors.New("logclient: no inclusion proof")
)

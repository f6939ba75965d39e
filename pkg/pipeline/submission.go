package pipeline

import (
	"context"

	"github.com/google/uuid"
)

// submission is one item accepted from an inbound stream, queued for
// the batcher.
type submission struct {
	id       string
	hash     [32]byte
	metadata []byte
	ctx      context.Context

	// resultCh carries the outcome of this submission's commit sequence
	// back to the goroutine that accepted it, resolving spec.md §9 Open
	// Question 4: one ReceiptResponse is emitted per accepted submission,
	// correlated to its originating request by this channel rather than
	// by a shared sequence number.
	resultCh chan Result
}

// newSubmissionID generates a correlation id for log lines spanning a
// submission's six-step commit sequence, following the teacher's
// request-id convention (pkg/auth/requestid.go) adapted from per-HTTP-request
// to per-submission scope.
func newSubmissionID() string {
	return uuid.NewString()
}

// Result is the outcome of one submission's commit sequence.
type Result struct {
	Receipt   []byte
	LeafIndex int64
	Err       error
}

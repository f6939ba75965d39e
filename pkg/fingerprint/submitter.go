package fingerprint

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/abrarahmad1510/ChainAudit-LLMs/pkg/receiptpb"
)

// ErrSubmitterClosed is returned by Submit once the Submitter's stream
// has been closed.
var ErrSubmitterClosed = errors.New("fingerprint: submitter closed")

// Submitter pushes Fingerprints to C4 over a single long-lived
// SubmitHash stream, mirroring the single-connection, per-call client
// shape the teacher's kernel SDK uses (sdk/go/client/client.go) adapted
// to a bidirectional gRPC stream instead of one-shot HTTP requests.
//
// A Submitter is safe for concurrent use: Submit serializes sends and
// correlates each with its response under a single mutex, since a gRPC
// client stream permits only one Send and one Recv in flight at a time.
type Submitter struct {
	mu     sync.Mutex
	stream receiptpb.Auditor_SubmitHashClient
	closed bool
}

// NewSubmitter opens a SubmitHash stream against client.
func NewSubmitter(ctx context.Context, client receiptpb.AuditorClient) (*Submitter, error) {
	stream, err := client.SubmitHash(ctx)
	if err != nil {
		return nil, fmt.Errorf("fingerprint: open submit stream: %w", err)
	}
	return &Submitter{stream: stream}, nil
}

// Submit sends fp and blocks for its corresponding ReceiptResponse.
// Callers own Fingerprint lifecycle boundaries (one Submit call per
// completed request/response pair); Submit does not retry.
func (s *Submitter) Submit(fp Fingerprint) (*receiptpb.ReceiptResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrSubmitterClosed
	}

	if err := s.stream.Send(&receiptpb.HashSubmission{
		Hash:     fp.Hash[:],
		Metadata: fp.Metadata,
	}); err != nil {
		return nil, fmt.Errorf("fingerprint: send submission: %w", err)
	}

	resp, err := s.stream.Recv()
	if err != nil {
		return nil, fmt.Errorf("fingerprint: receive receipt: %w", err)
	}
	return resp, nil
}

// Close ends the submit stream. Submit returns ErrSubmitterClosed after
// Close has run.
func (s *Submitter) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.stream.CloseSend()
}

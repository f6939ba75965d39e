package fingerprint

import (
	"bytes"
	"context"
	"testing"

	"github.com/abrarahmad1510/ChainAudit-LLMs/pkg/receiptpb"
)

// TestBuilder_HeaderAllowlist covers spec.md §4.1: only allow-listed
// headers, case-folded, survive into the fingerprint context.
func TestBuilder_HeaderAllowlist(t *testing.T) {
	b := NewBuilder()
	b.OnRequestHeaders(map[string]string{
		"X-Model-Id":     "gpt-x",
		"X-Adapter-IDs":  "a1,a2",
		"Authorization":  "Bearer secret",
		"X-Request-Hash": "should-not-appear",
	})

	if len(b.headers) != 2 {
		t.Fatalf("expected 2 allow-listed headers, got %d: %v", len(b.headers), b.headers)
	}
	if b.headers["x-model-id"] != "gpt-x" {
		t.Errorf("expected x-model-id to survive lower-cased, got %q", b.headers["x-model-id"])
	}
	if _, ok := b.headers["authorization"]; ok {
		t.Error("authorization header must not survive the allow-list filter")
	}
}

// TestBuilder_DuplicateHeaderLastWriteWins covers the equal-value
// duplicate-key suppression requirement: later header events for the
// same allow-listed key overwrite earlier ones.
func TestBuilder_DuplicateHeaderLastWriteWins(t *testing.T) {
	b := NewBuilder()
	b.OnRequestHeaders(map[string]string{"x-model-id": "first"})
	b.OnRequestHeaders(map[string]string{"x-model-id": "second"})

	if got := b.headers["x-model-id"]; got != "second" {
		t.Errorf("expected last write to win, got %q", got)
	}
}

// TestBuilder_FinishProducesDeterministicHash covers S1/S2: the same
// request_headers/response_text/timestamp_ns content always produces
// the same leaf hash and canonical metadata, regardless of header
// insertion order.
func TestBuilder_FinishProducesDeterministicHash(t *testing.T) {
	b1 := NewBuilder()
	b1.OnRequestHeaders(map[string]string{"x-model-id": "gpt-x"})
	b1.OnRequestHeaders(map[string]string{"x-prompt-template-id": "tmpl-1"})
	b1.OnResponseChunk([]byte("hello "))
	b1.OnResponseChunk([]byte("world"))
	fp1, err := b1.Finish(1000)
	if err != nil {
		t.Fatalf("Finish failed: %v", err)
	}

	b2 := NewBuilder()
	b2.OnRequestHeaders(map[string]string{"x-prompt-template-id": "tmpl-1"})
	b2.OnRequestHeaders(map[string]string{"x-model-id": "gpt-x"})
	b2.OnResponseChunk([]byte("hello world"))
	fp2, err := b2.Finish(1000)
	if err != nil {
		t.Fatalf("Finish failed: %v", err)
	}

	if fp1.Hash != fp2.Hash {
		t.Error("expected identical fingerprints for equivalent content regardless of header arrival order")
	}
	if !bytes.Equal(fp1.Metadata, fp2.Metadata) {
		t.Error("expected identical canonical metadata")
	}
}

// TestBuilder_FinishTwiceFails covers the single-use Builder lifecycle.
func TestBuilder_FinishTwiceFails(t *testing.T) {
	b := NewBuilder()
	if _, err := b.Finish(1); err != nil {
		t.Fatalf("first Finish failed: %v", err)
	}
	if _, err := b.Finish(2); err != ErrAlreadyFinished {
		t.Errorf("expected ErrAlreadyFinished on second call, got %v", err)
	}
}

// TestBuilder_InvalidUTF8Replaced covers the lossy-decoding tradeoff
// documented for non-text response bodies.
func TestBuilder_InvalidUTF8Replaced(t *testing.T) {
	b := NewBuilder()
	b.OnResponseChunk([]byte{0xff, 0xfe, 'o', 'k'})
	fp, err := b.Finish(1)
	if err != nil {
		t.Fatalf("Finish failed: %v", err)
	}
	if len(fp.Metadata) == 0 {
		t.Error("expected non-empty canonical metadata even for invalid UTF-8 input")
	}
}

// fakeSubmitStream is a minimal receiptpb.Auditor_SubmitHashClient double
// correlating one Send with one queued Recv response.
type fakeSubmitStream struct {
	sent   []*receiptpb.HashSubmission
	resps  []*receiptpb.ReceiptResponse
	errs   []error
	closed bool
}

func (f *fakeSubmitStream) Send(m *receiptpb.HashSubmission) error {
	f.sent = append(f.sent, m)
	return nil
}

func (f *fakeSubmitStream) Recv() (*receiptpb.ReceiptResponse, error) {
	if len(f.resps) == 0 {
		return nil, context.Canceled
	}
	resp := f.resps[0]
	err := f.errs[0]
	f.resps = f.resps[1:]
	f.errs = f.errs[1:]
	return resp, err
}

func (f *fakeSubmitStream) CloseSend() error {
	f.closed = true
	return nil
}

// TestSubmitter_SubmitRoundTrip exercises the Submitter against a fake
// stream directly (bypassing the AuditorClient interface, whose
// grpc.CallOption variadic can't be satisfied without pulling in the
// real grpc package in this unit test).
func TestSubmitter_SubmitRoundTrip(t *testing.T) {
	stream := &fakeSubmitStream{
		resps: []*receiptpb.ReceiptResponse{{Receipt: []byte("receipt-1"), LeafIndex: 5}},
		errs:  []error{nil},
	}
	s := &Submitter{stream: stream}

	fp := Fingerprint{Metadata: []byte(`{}`)}
	resp, err := s.Submit(fp)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if resp.LeafIndex != 5 {
		t.Errorf("expected leaf_index 5, got %d", resp.LeafIndex)
	}
	if len(stream.sent) != 1 {
		t.Fatalf("expected 1 sent submission, got %d", len(stream.sent))
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if !stream.closed {
		t.Error("expected CloseSend to have been called")
	}
	if _, err := s.Submit(fp); err != ErrSubmitterClosed {
		t.Errorf("expected ErrSubmitterClosed after Close, got %v", err)
	}
}

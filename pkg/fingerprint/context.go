package fingerprint

import (
	"errors"

	"github.com/abrarahmad1510/ChainAudit-LLMs/pkg/canonicalize"
	"lukechampine.com/blake3"
)

// ErrAlreadyFinished is returned when Finish is called more than once on
// the same Builder.
var ErrAlreadyFinished = errors.New("fingerprint: builder already finished")

// fingerprintContext is the JSON object canonicalised and hashed to
// produce a leaf, per spec.md §3. Field order here is irrelevant —
// canonicalize.JCS sorts keys recursively regardless of struct field
// order or map iteration order.
type fingerprintContext struct {
	RequestHeaders map[string]string `json:"request_headers"`
	ResponseText   string            `json:"response_text"`
	TimestampNS    uint64            `json:"timestamp_ns"`
}

// Fingerprint is C1's output: the 32-byte leaf hash plus the canonical
// JSON metadata blob that produced it, ready for submission to C4.
type Fingerprint struct {
	Hash     [32]byte
	Metadata []byte
}

// buildFingerprint canonicalises ctx per RFC 8785 and hashes the result
// with BLAKE3, per spec.md §3.
func buildFingerprint(ctx fingerprintContext) (Fingerprint, error) {
	canonical, err := canonicalize.JCS(ctx)
	if err != nil {
		return Fingerprint{}, err
	}

	sum := blake3.Sum256(canonical)

	return Fingerprint{
		Hash:     sum,
		Metadata: canonical,
	}, nil
}

// Package fingerprint implements C1: the in-proxy construction of the
// 32-byte leaf value the audit pipeline records for each inference
// request/response pair.
//
// A Builder has gateway-filter lifecycle semantics: construct one per
// stream, feed it header and body events as they arrive, and call Finish
// once the response completes. It never talks to the network itself —
// callers wire its output to a Submitter (see submitter.go).
package fingerprint

import (
	"strings"
	"unicode/utf8"
)

// Builder accumulates the allow-listed request headers and the response
// body for a single request/response pair. It is not safe for concurrent
// use — one Builder per stream, as the gateway filter model assumes.
type Builder struct {
	headers  map[string]string
	body     []byte
	finished bool
}

// NewBuilder returns a Builder ready to receive header and body events.
func NewBuilder() *Builder {
	return &Builder{headers: make(map[string]string, len(allowedHeaders))}
}

// OnRequestHeaders records the allow-listed subset of the given headers.
// Safe to call multiple times (e.g. trailers); later values for the same
// key overwrite earlier ones, matching the "equal-value duplicate key
// suppression" requirement in spec.md §4.1 — since request_headers is
// modeled as a Go map, the arrival order of distinct keys never affects
// the result.
func (b *Builder) OnRequestHeaders(headers map[string]string) {
	for k, v := range headers {
		lower := strings.ToLower(k)
		if IsAllowedHeader(lower) {
			b.headers[lower] = v
		}
	}
}

// OnResponseChunk appends a chunk of the response body. The gateway, not
// this Builder, is responsible for bounding total size.
func (b *Builder) OnResponseChunk(chunk []byte) {
	b.body = append(b.body, chunk...)
}

// Finish builds the leaf hash and metadata blob for the accumulated
// request/response pair. timestampNS is nanoseconds since the Unix epoch
// at the moment the response completed, per spec.md §3. Finish may be
// called only once per Builder.
func (b *Builder) Finish(timestampNS uint64) (Fingerprint, error) {
	if b.finished {
		return Fingerprint{}, ErrAlreadyFinished
	}
	b.finished = true

	responseText := toValidUTF8(b.body)

	ctx := fingerprintContext{
		RequestHeaders: b.headers,
		ResponseText:   responseText,
		TimestampNS:    timestampNS,
	}

	return buildFingerprint(ctx)
}

// toValidUTF8 lossily decodes data as UTF-8, replacing invalid sequences —
// this is the "not suitable for content-integrity over non-text
// responses" tradeoff documented in spec.md §4.1 and §9.
func toValidUTF8(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	return strings.ToValidUTF8(string(data), "�")
}

// Package receiptpb holds the wire messages for the ingress Auditor
// service and the transparency-log client RPCs. Ordinarily these would
// be protoc-generated from the .proto files in this package directory;
// here they are hand-written Go structs carried over a JSON grpc codec
// (see codec.go) instead of fabricating generated-code internals we
// have no protoc toolchain to produce honestly — see DESIGN.md.
package receiptpb

// HashSubmission is one item on the SubmitHash client stream.
type HashSubmission struct {
	Hash     []byte `json:"hash"`
	Metadata []byte `json:"metadata"`
}

// ReceiptRequest is the GetReceipt unary request.
type ReceiptRequest struct {
	LeafHash []byte `json:"leaf_hash"`
}

// ReceiptResponse is emitted on the SubmitHash response stream and
// returned by GetReceipt.
type ReceiptResponse struct {
	Receipt   []byte `json:"receipt"`
	LeafIndex uint64 `json:"leaf_index"`
}

// QueueLeafRequest is the QueueLeaf RPC request against the transparency
// log backend.
type QueueLeafRequest struct {
	LogID     string `json:"log_id"`
	LeafValue []byte `json:"leaf_value"`
}

// QueueLeafResponse is the QueueLeaf RPC response.
type QueueLeafResponse struct {
	Queued    bool  `json:"queued"`
	LeafIndex int64 `json:"leaf_index"`
	HasIndex  bool  `json:"has_index"`
}

// GetLatestSignedLogRootRequest requests the current signed root.
type GetLatestSignedLogRootRequest struct {
	LogID string `json:"log_id"`
}

// GetLatestSignedLogRootResponse carries the length-prefixed binary root
// encoding described in spec.md §3.
type GetLatestSignedLogRootResponse struct {
	SignedLogRoot []byte `json:"signed_log_root"`
}

// GetInclusionProofRequest requests sibling hashes for a leaf at a given
// tree size.
type GetInclusionProofRequest struct {
	LogID     string `json:"log_id"`
	LeafIndex int64  `json:"leaf_index"`
	TreeSize  int64  `json:"tree_size"`
}

// GetInclusionProofResponse carries the ordered sibling hashes.
type GetInclusionProofResponse struct {
	Found  bool     `json:"found"`
	Hashes [][]byte `json:"hashes"`
}

package signer

import "encoding/json"

// Receipt is the canonical on-wire artifact described in spec.md §3.
type Receipt struct {
	LeafHash       string          `json:"leaf_hash"`
	LeafIndex      int64           `json:"leaf_index"`
	RootHash       string          `json:"root_hash"`
	InclusionProof []string        `json:"inclusion_proof"`
	Timestamp      string          `json:"timestamp"`
	Metadata       json.RawMessage `json:"metadata"`
	Signature      string          `json:"signature"`
	PublicKey      string          `json:"public_key"`
}

// Marshal serialises the receipt with the standard (non-canonical)
// library encoder — the signature already binds the fields that matter
// (see receiptfmt.BindingString); the receipt's own JSON framing need not be canonical.
func (r Receipt) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

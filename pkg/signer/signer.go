// Package signer implements C3: produces the canonical signed receipt
// binding a leaf, its index, the tree root, and a timestamp.
//
// The Ed25519 keypair is generated fresh when the Signer is constructed
// and never persisted — this is a known, documented limitation (spec.md
// §3, §9 Open Question 3): receipts become unverifiable if the process
// restarts, since public_key changes with it. Production deployments
// need a persistent (ideally Sigstore-issued) key; config.Config already
// reserves fields for that future.
package signer

import (
	"crypto/ed25519"
	cryptorand "crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/abrarahmad1510/ChainAudit-LLMs/pkg/receiptfmt"
)

// ErrBadMetadata is returned when the metadata blob is not valid UTF-8 JSON.
var ErrBadMetadata = errors.New("signer: metadata is not valid JSON")

// Signer holds a process-ephemeral Ed25519 keypair and produces signed
// receipts. A Signer is safe for concurrent use — Sign performs no
// mutation of shared state beyond reading the immutable keypair.
type Signer struct {
	priv ed25519.PrivateKey
	pub  ed25519.PublicKey
	now  func() time.Time
}

// New generates a fresh Ed25519 keypair and returns a ready Signer.
func New() (*Signer, error) {
	pub, priv, err := ed25519.GenerateKey(cryptorand.Reader)
	if err != nil {
		return nil, fmt.Errorf("signer: generate key: %w", err)
	}
	return &Signer{priv: priv, pub: pub, now: time.Now}, nil
}

// PublicKey returns the raw 32-byte Ed25519 public key.
func (s *Signer) PublicKey() ed25519.PublicKey {
	return append(ed25519.PublicKey(nil), s.pub...)
}

// Sign produces the receipt JSON for one committed submission, per
// spec.md §3 and §4.3. metadata must be valid UTF-8 JSON; it is echoed
// into the receipt verbatim (and is not part of the signed binding).
func (s *Signer) Sign(leafHash []byte, leafIndex int64, rootHash []byte, proof [][]byte, metadata []byte) ([]byte, error) {
	var probe json.RawMessage
	if err := json.Unmarshal(metadata, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadMetadata, err)
	}

	timestamp := s.now().UTC().Format(time.RFC3339)

	binding := receiptfmt.BindingString(leafHash, rootHash, leafIndex, timestamp)
	sig := ed25519.Sign(s.priv, []byte(binding))

	hexProof := make([]string, len(proof))
	for i, sib := range proof {
		hexProof[i] = hex.EncodeToString(sib)
	}

	receipt := Receipt{
		LeafHash:       hex.EncodeToString(leafHash),
		LeafIndex:      leafIndex,
		RootHash:       hex.EncodeToString(rootHash),
		InclusionProof: hexProof,
		Timestamp:      timestamp,
		Metadata:       json.RawMessage(metadata),
		Signature:      base64.StdEncoding.EncodeToString(sig),
		PublicKey:      base64.StdEncoding.EncodeToString(s.pub),
	}

	return receipt.Marshal()
}

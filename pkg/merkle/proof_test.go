package merkle

import (
	"testing"

	"lukechampine.com/blake3"
)

// TestReconstruct_S4 pins the S4 inclusion-proof scenario: leaf = H0, one
// sibling s1, root = BLAKE3(H0||s1).
func TestReconstruct_S4(t *testing.T) {
	h0 := blake3.Sum256([]byte("leaf-zero"))
	s1 := blake3.Sum256([]byte("sibling-one"))

	want := hashPair(h0, s1)

	got := Reconstruct(h0, [][32]byte{s1})
	if got != want {
		t.Errorf("reconstructed root mismatch: got %x, want %x", got, want)
	}
}

func TestReconstruct_EmptyProof(t *testing.T) {
	h0 := blake3.Sum256([]byte("leaf-zero"))
	got := Reconstruct(h0, nil)
	if got != h0 {
		t.Errorf("empty proof should leave leaf hash unchanged: got %x, want %x", got, h0)
	}
}

// TestReconstruct_TamperedSibling covers invariant 5: altering any byte of
// the proof yields a different reconstructed root.
func TestReconstruct_TamperedSibling(t *testing.T) {
	h0 := blake3.Sum256([]byte("leaf-zero"))
	s1 := blake3.Sum256([]byte("sibling-one"))

	root := Reconstruct(h0, [][32]byte{s1})

	tampered := s1
	tampered[0] ^= 0xFF
	tamperedRoot := Reconstruct(h0, [][32]byte{tampered})

	if root == tamperedRoot {
		t.Error("tampering the sibling hash should change the reconstructed root")
	}
}

func TestReconstruct_MultiLevel(t *testing.T) {
	h0 := blake3.Sum256([]byte("leaf"))
	s1 := blake3.Sum256([]byte("s1"))
	s2 := blake3.Sum256([]byte("s2"))

	step1 := hashPair(h0, s1)
	want := hashPair(step1, s2)

	got := Reconstruct(h0, [][32]byte{s1, s2})
	if got != want {
		t.Errorf("multi-level reconstruction mismatch: got %x, want %x", got, want)
	}
}

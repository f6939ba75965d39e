package logclient

import (
	"encoding/binary"
	"fmt"
)

// SignedRoot is the decoded signed tree root, per spec.md §3.
type SignedRoot struct {
	RootHash []byte
	TreeSize int64
}

// minRootHeaderLen is the fixed prefix: 2 bytes version + 8 bytes tree
// size + 1 byte hash length.
const minRootHeaderLen = 11

// decodeSignedRoot parses the length-prefixed binary encoding described
// in spec.md §3: 2 bytes version, 8 bytes big-endian tree_size, 1 byte
// hash_len, hash_len bytes root_hash.
func decodeSignedRoot(data []byte) (SignedRoot, error) {
	if len(data) < minRootHeaderLen {
		return SignedRoot{}, fmt.Errorf("%w: signed root shorter than %d bytes (got %d)", ErrMalformed, minRootHeaderLen, len(data))
	}

	treeSize := int64(binary.BigEndian.Uint64(data[2:10]))
	hashLen := int(data[10])

	if len(data) < minRootHeaderLen+hashLen {
		return SignedRoot{}, fmt.Errorf("%w: signed root shorter than %d+%d bytes (got %d)", ErrMalformed, minRootHeaderLen, hashLen, len(data))
	}

	rootHash := make([]byte, hashLen)
	copy(rootHash, data[minRootHeaderLen:minRootHeaderLen+hashLen])

	return SignedRoot{RootHash: rootHash, TreeSize: treeSize}, nil
}

// Package receiptfmt holds the receipt wire-format primitives shared by
// the signer (C3) and the verifier (C5): the exact signed binding string
// construction. Both sides must agree on this byte-for-byte, so it lives
// in one place rather than being duplicated — it is a pure, deterministic
// formatter, not a trust dependency between the two components.
package receiptfmt

import (
	"encoding/hex"
	"fmt"
	"strconv"
)

// BindingString builds the ASCII string Ed25519 signs and verifies, per
// spec.md §3:
//
//	hex(leaf_hash) ":" dec(leaf_index) ":" hex(root_hash) ":" timestamp
//
// No trailing newline, no surrounding quotes. metadata and
// inclusion_proof are deliberately excluded from this string.
func BindingString(leafHash, rootHash []byte, leafIndex int64, timestamp string) string {
	return fmt.Sprintf("%s:%s:%s:%s",
		hex.EncodeToString(leafHash),
		strconv.FormatInt(leafIndex, 10),
		hex.EncodeToString(rootHash),
		timestamp,
	)
}

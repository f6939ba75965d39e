// Package logclient implements C2: a thin wrapper over the transparency
// log backend's three RPCs (QueueLeaf, GetLatestSignedLogRoot,
// GetInclusionProof). It holds a single transport channel and clones
// per-call, mirroring the trillian client.LogClient shape — calls are
// independent and the client imposes no ordering between queue and root
// fetch (spec.md §4.2, §5).
package logclient

import (
	"context"
	"fmt"

	"github.com/abrarahmad1510/ChainAudit-LLMs/pkg/receiptpb"
)

// Client wraps a transparency-log gRPC client for a single log.
type Client struct {
	rpc   receiptpb.TransparencyLogClient
	logID string
}

// New returns a Client bound to the given log id.
func New(rpc receiptpb.TransparencyLogClient, logID string) *Client {
	return &Client{rpc: rpc, logID: logID}
}

// Queue submits leaf to the log and returns its assigned index.
func (c *Client) Queue(ctx context.Context, leaf [32]byte) (int64, error) {
	resp, err := c.rpc.QueueLeaf(ctx, &receiptpb.QueueLeafRequest{
		LogID:     c.logID,
		LeafValue: leaf[:],
	})
	if err != nil {
		return 0, fmt.Errorf("%w: QueueLeaf: %v", ErrUnavailable, err)
	}
	if !resp.Queued {
		return 0, fmt.Errorf("%w: leaf not queued", ErrRejected)
	}
	if !resp.HasIndex {
		return 0, fmt.Errorf("%w: queued leaf has no index", ErrMalformed)
	}
	return resp.LeafIndex, nil
}

// CurrentRoot fetches and decodes the latest signed tree root.
func (c *Client) CurrentRoot(ctx context.Context) (SignedRoot, error) {
	resp, err := c.rpc.GetLatestSignedLogRoot(ctx, &receiptpb.GetLatestSignedLogRootRequest{
		LogID: c.logID,
	})
	if err != nil {
		return SignedRoot{}, fmt.Errorf("%w: GetLatestSignedLogRoot: %v", ErrUnavailable, err)
	}
	return decodeSignedRoot(resp.SignedLogRoot)
}

// InclusionProof returns the ordered sibling hashes from leafIndex to the
// root at treeSize.
func (c *Client) InclusionProof(ctx context.Context, leafIndex, treeSize int64) ([][]byte, error) {
	resp, err := c.rpc.GetInclusionProof(ctx, &receiptpb.GetInclusionProofRequest{
		LogID:     c.logID,
		LeafIndex: leafIndex,
		TreeSize:  treeSize,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: GetInclusionProof: %v", ErrUnavailable, err)
	}
	if !resp.Found {
		return nil, fmt.Errorf("%w: leaf_index=%d tree_size=%d", ErrNoProof, leafIndex, treeSize)
	}
	return resp.Hashes, nil
}

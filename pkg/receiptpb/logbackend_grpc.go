package receiptpb

import (
	"context"

	"google.golang.org/grpc"
)

// TransparencyLogClient is the client API the log backend exposes to C2,
// per spec.md §4.2. Only a client is defined here — the backend itself
// is an external collaborator, out of scope for this module.
type TransparencyLogClient interface {
	QueueLeaf(ctx context.Context, in *QueueLeafRequest, opts ...grpc.CallOption) (*QueueLeafResponse, error)
	GetLatestSignedLogRoot(ctx context.Context, in *GetLatestSignedLogRootRequest, opts ...grpc.CallOption) (*GetLatestSignedLogRootResponse, error)
	GetInclusionProof(ctx context.Context, in *GetInclusionProofRequest, opts ...grpc.CallOption) (*GetInclusionProofResponse, error)
}

type transparencyLogClient struct {
	cc grpc.ClientConnInterface
}

// NewTransparencyLogClient constructs a client bound to cc.
func NewTransparencyLogClient(cc grpc.ClientConnInterface) TransparencyLogClient {
	return &transparencyLogClient{cc: cc}
}

func (c *transparencyLogClient) QueueLeaf(ctx context.Context, in *QueueLeafRequest, opts ...grpc.CallOption) (*QueueLeafResponse, error) {
	out := new(QueueLeafResponse)
	if err := c.cc.Invoke(ctx, "/receiptpb.TransparencyLog/QueueLeaf", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *transparencyLogClient) GetLatestSignedLogRoot(ctx context.Context, in *GetLatestSignedLogRootRequest, opts ...grpc.CallOption) (*GetLatestSignedLogRootResponse, error) {
	out := new(GetLatestSignedLogRootResponse)
	if err := c.cc.Invoke(ctx, "/receiptpb.TransparencyLog/GetLatestSignedLogRoot", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *transparencyLogClient) GetInclusionProof(ctx context.Context, in *GetInclusionProofRequest, opts ...grpc.CallOption) (*GetInclusionProofResponse, error) {
	out := new(GetInclusionProofResponse)
	if err := c.cc.Invoke(ctx, "/receiptpb.TransparencyLog/GetInclusionProof", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

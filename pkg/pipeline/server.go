package pipeline

import (
	"context"
	"errors"
	"io"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/abrarahmad1510/ChainAudit-LLMs/pkg/receiptpb"
	"github.com/abrarahmad1510/ChainAudit-LLMs/pkg/store"
)

// Server adapts Pipeline to receiptpb.AuditorServer, the ingress gRPC
// surface spec.md §6 describes.
type Server struct {
	pipeline *Pipeline
}

// NewServer wraps a Pipeline as a gRPC service implementation.
func NewServer(p *Pipeline) *Server {
	return &Server{pipeline: p}
}

var _ receiptpb.AuditorServer = (*Server)(nil)

// SubmitHash reads HashSubmissions off the client stream, enqueues each
// for the batcher, and writes back one ReceiptResponse per accepted
// submission once its commit sequence completes — spec.md §9 Open
// Question 4. A submission whose commit sequence fails ends the stream
// with a codes.Internal error instead of a response, so responses stay
// aligned one-to-one with submissions. Closing the request stream ends
// this handler; in-flight batch processing for already-enqueued items is
// not cancelled.
func (s *Server) SubmitHash(stream receiptpb.Auditor_SubmitHashServer) error {
	ctx := stream.Context()

	for {
		req, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if len(req.Hash) != 32 {
			return status.Error(codes.InvalidArgument, "hash must be 32 bytes")
		}
		var hash [32]byte
		copy(hash[:], req.Hash)

		resultCh := s.pipeline.enqueue(ctx, hash, req.Metadata)
		result := <-resultCh
		if result.Err != nil {
			return status.Errorf(codes.Internal, "commit sequence failed: %v", result.Err)
		}

		if err := stream.Send(&receiptpb.ReceiptResponse{
			Receipt:   result.Receipt,
			LeafIndex: uint64(result.LeafIndex),
		}); err != nil {
			return err
		}
	}
}

// GetReceipt returns the most recent receipt stored for the requested
// leaf hash, or codes.NotFound if none exists (Store.NotFound, spec.md §7).
func (s *Server) GetReceipt(ctx context.Context, req *receiptpb.ReceiptRequest) (*receiptpb.ReceiptResponse, error) {
	rec, err := s.pipeline.store.GetByLeafHash(ctx, req.LeafHash)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "receipt not found")
		}
		return nil, status.Errorf(codes.Internal, "get receipt: %v", err)
	}
	return &receiptpb.ReceiptResponse{
		Receipt:   rec.ReceiptJWT,
		LeafIndex: uint64(rec.LeafIndex),
	}, nil
}

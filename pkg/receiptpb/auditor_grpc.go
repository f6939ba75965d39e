package receiptpb

import (
	"context"

	"google.golang.org/grpc"
)

// AuditorClient is the client API for the Auditor service.
type AuditorClient interface {
	SubmitHash(ctx context.Context, opts ...grpc.CallOption) (Auditor_SubmitHashClient, error)
	GetReceipt(ctx context.Context, in *ReceiptRequest, opts ...grpc.CallOption) (*ReceiptResponse, error)
}

type auditorClient struct {
	cc grpc.ClientConnInterface
}

// NewAuditorClient constructs a client bound to cc. Callers should dial
// with grpc.WithDefaultCallOptions(grpc.CallContentSubtype(CodecName)) so
// this client's calls use the JSON codec registered in codec.go.
func NewAuditorClient(cc grpc.ClientConnInterface) AuditorClient {
	return &auditorClient{cc: cc}
}

func (c *auditorClient) SubmitHash(ctx context.Context, opts ...grpc.CallOption) (Auditor_SubmitHashClient, error) {
	stream, err := c.cc.NewStream(ctx, &auditorSubmitHashStreamDesc, "/receiptpb.Auditor/SubmitHash", opts...)
	if err != nil {
		return nil, err
	}
	return &auditorSubmitHashClient{stream}, nil
}

func (c *auditorClient) GetReceipt(ctx context.Context, in *ReceiptRequest, opts ...grpc.CallOption) (*ReceiptResponse, error) {
	out := new(ReceiptResponse)
	if err := c.cc.Invoke(ctx, "/receiptpb.Auditor/GetReceipt", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// Auditor_SubmitHashClient is the bidirectional stream handle a caller
// drives from the client side.
type Auditor_SubmitHashClient interface {
	Send(*HashSubmission) error
	Recv() (*ReceiptResponse, error)
	CloseSend() error
}

type auditorSubmitHashClient struct {
	grpc.ClientStream
}

func (x *auditorSubmitHashClient) Send(m *HashSubmission) error {
	return x.ClientStream.SendMsg(m)
}

func (x *auditorSubmitHashClient) Recv() (*ReceiptResponse, error) {
	m := new(ReceiptResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// AuditorServer is the server API for the Auditor service.
type AuditorServer interface {
	SubmitHash(Auditor_SubmitHashServer) error
	GetReceipt(context.Context, *ReceiptRequest) (*ReceiptResponse, error)
}

// Auditor_SubmitHashServer is the bidirectional stream handle the service
// implementation drives from the server side.
type Auditor_SubmitHashServer interface {
	Send(*ReceiptResponse) error
	Recv() (*HashSubmission, error)
	grpc.ServerStream
}

type auditorSubmitHashServer struct {
	grpc.ServerStream
}

func (x *auditorSubmitHashServer) Send(m *ReceiptResponse) error {
	return x.ServerStream.SendMsg(m)
}

func (x *auditorSubmitHashServer) Recv() (*HashSubmission, error) {
	m := new(HashSubmission)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

var auditorSubmitHashStreamDesc = grpc.StreamDesc{
	StreamName:    "SubmitHash",
	Handler:       _Auditor_SubmitHash_Handler,
	ServerStreams: true,
	ClientStreams: true,
}

func _Auditor_SubmitHash_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(AuditorServer).SubmitHash(&auditorSubmitHashServer{stream})
}

func _Auditor_GetReceipt_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReceiptRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuditorServer).GetReceipt(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/receiptpb.Auditor/GetReceipt",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AuditorServer).GetReceipt(ctx, req.(*ReceiptRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// AuditorServiceDesc is the grpc.ServiceDesc for the Auditor service,
// registered via grpc.Server.RegisterService.
var AuditorServiceDesc = grpc.ServiceDesc{
	ServiceName: "receiptpb.Auditor",
	HandlerType: (*AuditorServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetReceipt",
			Handler:    _Auditor_GetReceipt_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		auditorSubmitHashStreamDesc,
	},
	Metadata: "receiptpb/auditor.proto",
}

// RegisterAuditorServer registers srv with s.
func RegisterAuditorServer(s grpc.ServiceRegistrar, srv AuditorServer) {
	s.RegisterService(&AuditorServiceDesc, srv)
}

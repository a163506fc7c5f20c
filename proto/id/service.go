package id

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	ServiceName = "id.IDService"

	GenerateIDMethod       = "/id.IDService/GenerateID"
	GenerateBatchIDsMethod = "/id.IDService/GenerateBatchIDs"
	ValidateIDMethod       = "/id.IDService/ValidateID"
	ParseIDMethod          = "/id.IDService/ParseID"
	ListKindsMethod        = "/id.IDService/ListKinds"
)

// IDServiceServer is the server API for IDService.
type IDServiceServer interface {
	GenerateID(context.Context, *GenerateIDRequest) (*GenerateIDResponse, error)
	GenerateBatchIDs(context.Context, *GenerateBatchIDsRequest) (*GenerateBatchIDsResponse, error)
	ValidateID(context.Context, *ValidateIDRequest) (*ValidateIDResponse, error)
	ParseID(context.Context, *ParseIDRequest) (*ParseIDResponse, error)
	ListKinds(context.Context, *ListKindsRequest) (*ListKindsResponse, error)
}

// UnimplementedIDServiceServer can be embedded to have forward compatible
// implementations.
type UnimplementedIDServiceServer struct{}

func (UnimplementedIDServiceServer) GenerateID(context.Context, *GenerateIDRequest) (*GenerateIDResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GenerateID not implemented")
}

func (UnimplementedIDServiceServer) GenerateBatchIDs(context.Context, *GenerateBatchIDsRequest) (*GenerateBatchIDsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GenerateBatchIDs not implemented")
}

func (UnimplementedIDServiceServer) ValidateID(context.Context, *ValidateIDRequest) (*ValidateIDResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ValidateID not implemented")
}

func (UnimplementedIDServiceServer) ParseID(context.Context, *ParseIDRequest) (*ParseIDResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ParseID not implemented")
}

func (UnimplementedIDServiceServer) ListKinds(context.Context, *ListKindsRequest) (*ListKindsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListKinds not implemented")
}

// RegisterIDServiceServer registers srv with s.
func RegisterIDServiceServer(s grpc.ServiceRegistrar, srv IDServiceServer) {
	s.RegisterService(&IDServiceDesc, srv)
}

// unary builds a method handler for a request type Req.
func unary[Req any](method string, call func(IDServiceServer, context.Context, *Req) (interface{}, error)) func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(IDServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(IDServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// IDServiceDesc is the grpc.ServiceDesc for IDService.
var IDServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*IDServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GenerateID",
			Handler: unary(GenerateIDMethod, func(s IDServiceServer, ctx context.Context, in *GenerateIDRequest) (interface{}, error) {
				return s.GenerateID(ctx, in)
			}),
		},
		{
			MethodName: "GenerateBatchIDs",
			Handler: unary(GenerateBatchIDsMethod, func(s IDServiceServer, ctx context.Context, in *GenerateBatchIDsRequest) (interface{}, error) {
				return s.GenerateBatchIDs(ctx, in)
			}),
		},
		{
			MethodName: "ValidateID",
			Handler: unary(ValidateIDMethod, func(s IDServiceServer, ctx context.Context, in *ValidateIDRequest) (interface{}, error) {
				return s.ValidateID(ctx, in)
			}),
		},
		{
			MethodName: "ParseID",
			Handler: unary(ParseIDMethod, func(s IDServiceServer, ctx context.Context, in *ParseIDRequest) (interface{}, error) {
				return s.ParseID(ctx, in)
			}),
		},
		{
			MethodName: "ListKinds",
			Handler: unary(ListKindsMethod, func(s IDServiceServer, ctx context.Context, in *ListKindsRequest) (interface{}, error) {
				return s.ListKinds(ctx, in)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "id.proto",
}

// IDServiceClient is the client API for IDService.
type IDServiceClient interface {
	GenerateID(ctx context.Context, in *GenerateIDRequest, opts ...grpc.CallOption) (*GenerateIDResponse, error)
	GenerateBatchIDs(ctx context.Context, in *GenerateBatchIDsRequest, opts ...grpc.CallOption) (*GenerateBatchIDsResponse, error)
	ValidateID(ctx context.Context, in *ValidateIDRequest, opts ...grpc.CallOption) (*ValidateIDResponse, error)
	ParseID(ctx context.Context, in *ParseIDRequest, opts ...grpc.CallOption) (*ParseIDResponse, error)
	ListKinds(ctx context.Context, in *ListKindsRequest, opts ...grpc.CallOption) (*ListKindsResponse, error)
}

type idServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewIDServiceClient(cc grpc.ClientConnInterface) IDServiceClient {
	return &idServiceClient{cc: cc}
}

func (c *idServiceClient) invoke(ctx context.Context, method string, in, out interface{}, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, opts...)
}

func (c *idServiceClient) GenerateID(ctx context.Context, in *GenerateIDRequest, opts ...grpc.CallOption) (*GenerateIDResponse, error) {
	out := new(GenerateIDResponse)
	if err := c.invoke(ctx, GenerateIDMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *idServiceClient) GenerateBatchIDs(ctx context.Context, in *GenerateBatchIDsRequest, opts ...grpc.CallOption) (*GenerateBatchIDsResponse, error) {
	out := new(GenerateBatchIDsResponse)
	if err := c.invoke(ctx, GenerateBatchIDsMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *idServiceClient) ValidateID(ctx context.Context, in *ValidateIDRequest, opts ...grpc.CallOption) (*ValidateIDResponse, error) {
	out := new(ValidateIDResponse)
	if err := c.invoke(ctx, ValidateIDMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *idServiceClient) ParseID(ctx context.Context, in *ParseIDRequest, opts ...grpc.CallOption) (*ParseIDResponse, error) {
	out := new(ParseIDResponse)
	if err := c.invoke(ctx, ParseIDMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *idServiceClient) ListKinds(ctx context.Context, in *ListKindsRequest, opts ...grpc.CallOption) (*ListKindsResponse, error) {
	out := new(ListKindsResponse)
	if err := c.invoke(ctx, ListKindsMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

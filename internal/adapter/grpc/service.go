package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified name of the portfolio gRPC service
const ServiceName = "portfolio.v1.PortfolioService"

// Full method names
const (
	ListHoldingsMethod   = "/" + ServiceName + "/ListHoldings"
	GetAllocationMethod  = "/" + ServiceName + "/GetAllocation"
	GetPerformanceMethod = "/" + ServiceName + "/GetPerformance"
	GetSummaryMethod     = "/" + ServiceName + "/GetSummary"
)

// PortfolioServiceServer is the server API for the portfolio service.
// Requests are empty; every response is a google.protobuf.Struct carrying
// the same field names as the HTTP API, with decimals as strings.
type PortfolioServiceServer interface {
	ListHoldings(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	GetAllocation(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	GetPerformance(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	GetSummary(context.Context, *emptypb.Empty) (*structpb.Struct, error)
}

type unaryCall func(PortfolioServiceServer, context.Context, *emptypb.Empty) (*structpb.Struct, error)

func methodHandler(fullMethod string, call unaryCall) func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(emptypb.Empty)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(PortfolioServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(PortfolioServiceServer), ctx, req.(*emptypb.Empty))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// PortfolioServiceDesc describes the portfolio service for grpc.Server.RegisterService
var PortfolioServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PortfolioServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListHoldings", Handler: methodHandler(ListHoldingsMethod, PortfolioServiceServer.ListHoldings)},
		{MethodName: "GetAllocation", Handler: methodHandler(GetAllocationMethod, PortfolioServiceServer.GetAllocation)},
		{MethodName: "GetPerformance", Handler: methodHandler(GetPerformanceMethod, PortfolioServiceServer.GetPerformance)},
		{MethodName: "GetSummary", Handler: methodHandler(GetSummaryMethod, PortfolioServiceServer.GetSummary)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "portfolio/v1/portfolio.proto",
}

// RegisterPortfolioServiceServer registers srv on s
func RegisterPortfolioServiceServer(s grpc.ServiceRegistrar, srv PortfolioServiceServer) {
	s.RegisterService(&PortfolioServiceDesc, srv)
}

// PortfolioClient calls the portfolio service over a client connection
type PortfolioClient struct {
	cc grpc.ClientConnInterface
}

// NewPortfolioClient creates a new PortfolioClient instance
func NewPortfolioClient(cc grpc.ClientConnInterface) *PortfolioClient {
	return &PortfolioClient{cc: cc}
}

func (c *PortfolioClient) ListHoldings(ctx context.Context, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ListHoldingsMethod, opts...)
}

func (c *PortfolioClient) GetAllocation(ctx context.Context, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GetAllocationMethod, opts...)
}

func (c *PortfolioClient) GetPerformance(ctx context.Context, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GetPerformanceMethod, opts...)
}

func (c *PortfolioClient) GetSummary(ctx context.Context, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GetSummaryMethod, opts...)
}

func (c *PortfolioClient) invoke(ctx context.Context, method string, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, &emptypb.Empty{}, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

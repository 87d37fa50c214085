package grpcserver

import (
	"context"

	"google.golang.org/genproto/googleapis/api/httpbody"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "envpage.v1.PageService"

const (
	GetEnvFullMethod       = "/" + ServiceName + "/GetEnv"
	RenderPageFullMethod   = "/" + ServiceName + "/RenderPage"
	RenderScriptFullMethod = "/" + ServiceName + "/RenderScript"
)

// PageServiceServer is the server API for envpage.v1.PageService.
// All messages are well-known protobuf types, so no generated code is needed.
type PageServiceServer interface {
	// GetEnv returns {"TEST_ENV_VALUE": "..."}.
	GetEnv(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	// RenderPage returns the HTML document.
	RenderPage(context.Context, *emptypb.Empty) (*httpbody.HttpBody, error)
	// RenderScript returns the window.__ENV__ injection script.
	RenderScript(context.Context, *emptypb.Empty) (*httpbody.HttpBody, error)
}

// ServiceDesc describes envpage.v1.PageService for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PageServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetEnv", Handler: getEnvHandler},
		{MethodName: "RenderPage", Handler: renderPageHandler},
		{MethodName: "RenderScript", Handler: renderScriptHandler},
	},
	Streams: []grpc.StreamDesc{},
}

func getEnvHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PageServiceServer).GetEnv(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GetEnvFullMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PageServiceServer).GetEnv(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func renderPageHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PageServiceServer).RenderPage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: RenderPageFullMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PageServiceServer).RenderPage(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func renderScriptHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PageServiceServer).RenderScript(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: RenderScriptFullMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PageServiceServer).RenderScript(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// Client is a thin client for envpage.v1.PageService.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient wraps an existing connection.
func NewClient(cc grpc.ClientConnInterface) *Client { return &Client{cc: cc} }

func (c *Client) GetEnv(ctx context.Context, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GetEnvFullMethod, &emptypb.Empty{}, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) RenderPage(ctx context.Context, opts ...grpc.CallOption) (*httpbody.HttpBody, error) {
	out := new(httpbody.HttpBody)
	if err := c.cc.Invoke(ctx, RenderPageFullMethod, &emptypb.Empty{}, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) RenderScript(ctx context.Context, opts ...grpc.CallOption) (*httpbody.HttpBody, error) {
	out := new(httpbody.HttpBody)
	if err := c.cc.Invoke(ctx, RenderScriptFullMethod, &emptypb.Empty{}, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

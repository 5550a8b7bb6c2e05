// Package catalogv1 declares the omnipos.catalog.v1 gRPC services. Payloads are
// google.protobuf.Struct documents carrying the same JSON shapes as the HTTP API.
package catalogv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	AttributeServiceName = "omnipos.catalog.v1.AttributeService"
	CategoryServiceName  = "omnipos.catalog.v1.CategoryService"

	FindAttributesFullMethod  = "/" + AttributeServiceName + "/FindAttributes"
	GetCategoryTreeFullMethod = "/" + CategoryServiceName + "/GetCategoryTree"
)

type AttributeServiceServer interface {
	FindAttributes(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

type CategoryServiceServer interface {
	GetCategoryTree(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

func RegisterAttributeServiceServer(s grpc.ServiceRegistrar, srv AttributeServiceServer) {
	s.RegisterService(&AttributeServiceDesc, srv)
}

func RegisterCategoryServiceServer(s grpc.ServiceRegistrar, srv CategoryServiceServer) {
	s.RegisterService(&CategoryServiceDesc, srv)
}

var AttributeServiceDesc = grpc.ServiceDesc{
	ServiceName: AttributeServiceName,
	HandlerType: (*AttributeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "FindAttributes",
			Handler:    findAttributesHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "omnipos/catalog/v1/catalog.proto",
}

var CategoryServiceDesc = grpc.ServiceDesc{
	ServiceName: CategoryServiceName,
	HandlerType: (*CategoryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetCategoryTree",
			Handler:    getCategoryTreeHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "omnipos/catalog/v1/catalog.proto",
}

func findAttributesHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AttributeServiceServer).FindAttributes(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FindAttributesFullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AttributeServiceServer).FindAttributes(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func getCategoryTreeHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CategoryServiceServer).GetCategoryTree(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GetCategoryTreeFullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CategoryServiceServer).GetCategoryTree(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

type AttributeServiceClient interface {
	FindAttributes(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type CategoryServiceClient interface {
	GetCategoryTree(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type attributeServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAttributeServiceClient(cc grpc.ClientConnInterface) AttributeServiceClient {
	return &attributeServiceClient{cc: cc}
}

func (c *attributeServiceClient) FindAttributes(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FindAttributesFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type categoryServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCategoryServiceClient(cc grpc.ClientConnInterface) CategoryServiceClient {
	return &categoryServiceClient{cc: cc}
}

func (c *categoryServiceClient) GetCategoryTree(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GetCategoryTreeFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

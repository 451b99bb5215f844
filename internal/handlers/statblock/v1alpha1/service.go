package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "statblock.api.v1alpha1.ImporterService"

// Full method names
const (
	MethodImportMonster   = "/" + ServiceName + "/ImportMonster"
	MethodParseMaliceText = "/" + ServiceName + "/ParseMaliceText"
	MethodGetMonster      = "/" + ServiceName + "/GetMonster"
	MethodRollAbility     = "/" + ServiceName + "/RollAbility"
	MethodGetRollHistory  = "/" + ServiceName + "/GetRollHistory"
	MethodListMonsters    = "/" + ServiceName + "/ListMonsters"
	MethodDeleteMonster   = "/" + ServiceName + "/DeleteMonster"
)

// ImporterServiceServer is the server API for the importer service. Messages
// are well-known protobuf types so no generated contract is needed.
type ImporterServiceServer interface {
	ImportMonster(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ParseMaliceText(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetMonster(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error)
	RollAbility(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetRollHistory(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error)
	ListMonsters(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	DeleteMonster(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error)
}

// RegisterImporterServiceServer registers the importer service with a gRPC server
func RegisterImporterServiceServer(s grpc.ServiceRegistrar, srv ImporterServiceServer) {
	s.RegisterService(&ImporterServiceDesc, srv)
}

// ImporterServiceDesc describes the importer service for grpc.Server
var ImporterServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ImporterServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ImportMonster",
			Handler: unary(MethodImportMonster, newStruct, func(srv ImporterServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
				return srv.ImportMonster(ctx, req)
			}),
		},
		{
			MethodName: "ParseMaliceText",
			Handler: unary(MethodParseMaliceText, newStruct, func(srv ImporterServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
				return srv.ParseMaliceText(ctx, req)
			}),
		},
		{
			MethodName: "GetMonster",
			Handler: unary(MethodGetMonster, newString, func(srv ImporterServiceServer, ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
				return srv.GetMonster(ctx, req)
			}),
		},
		{
			MethodName: "RollAbility",
			Handler: unary(MethodRollAbility, newStruct, func(srv ImporterServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
				return srv.RollAbility(ctx, req)
			}),
		},
		{
			MethodName: "GetRollHistory",
			Handler: unary(MethodGetRollHistory, newString, func(srv ImporterServiceServer, ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
				return srv.GetRollHistory(ctx, req)
			}),
		},
		{
			MethodName: "ListMonsters",
			Handler: unary(MethodListMonsters, newStruct, func(srv ImporterServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
				return srv.ListMonsters(ctx, req)
			}),
		},
		{
			MethodName: "DeleteMonster",
			Handler: unary(MethodDeleteMonster, newString, func(srv ImporterServiceServer, ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
				return srv.DeleteMonster(ctx, req)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "statblock/api/v1alpha1/importer.proto",
}

func newStruct() *structpb.Struct        { return &structpb.Struct{} }
func newString() *wrapperspb.StringValue { return &wrapperspb.StringValue{} }

// unary adapts a typed method to the grpc.MethodDesc handler shape
func unary[Req proto.Message](
	fullMethod string,
	newReq func() Req,
	call func(ImporterServiceServer, context.Context, Req) (*structpb.Struct, error),
) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := newReq()
		if err := dec(in); err != nil {
			return nil, err
		}
		server := srv.(ImporterServiceServer)
		if interceptor == nil {
			return call(server, ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(server, ctx, req.(Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ImporterServiceClient is the client API for the importer service
type ImporterServiceClient interface {
	ImportMonster(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ParseMaliceText(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetMonster(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	RollAbility(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetRollHistory(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListMonsters(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	DeleteMonster(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type importerServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewImporterServiceClient creates a client over an existing connection
func NewImporterServiceClient(cc grpc.ClientConnInterface) ImporterServiceClient {
	return &importerServiceClient{cc: cc}
}

func (c *importerServiceClient) ImportMonster(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, MethodImportMonster, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *importerServiceClient) ParseMaliceText(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, MethodParseMaliceText, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *importerServiceClient) GetMonster(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, MethodGetMonster, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *importerServiceClient) RollAbility(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, MethodRollAbility, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *importerServiceClient) GetRollHistory(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, MethodGetRollHistory, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *importerServiceClient) ListMonsters(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, MethodListMonsters, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *importerServiceClient) DeleteMonster(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, MethodDeleteMonster, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

package reliquaryv1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// ReliquaryServiceClient is the client API for ReliquaryService
type ReliquaryServiceClient interface {
	StartSession(ctx context.Context, in *StartSessionRequest, opts ...grpc.CallOption) (*StartSessionResponse, error)
	ApplyEvent(ctx context.Context, in *ApplyEventRequest, opts ...grpc.CallOption) (*ApplyEventResponse, error)
	ListEffects(ctx context.Context, in *ListEffectsRequest, opts ...grpc.CallOption) (*ListEffectsResponse, error)
	GetEffect(ctx context.Context, in *GetEffectRequest, opts ...grpc.CallOption) (*GetEffectResponse, error)
	ListEligible(ctx context.Context, in *ListEligibleRequest, opts ...grpc.CallOption) (*ListEligibleResponse, error)
	CheckValidity(ctx context.Context, in *CheckValidityRequest, opts ...grpc.CallOption) (*CheckValidityResponse, error)
	ResolveOrder(ctx context.Context, in *ResolveOrderRequest, opts ...grpc.CallOption) (*ResolveOrderResponse, error)
	ResolveAsset(ctx context.Context, in *ResolveAssetRequest, opts ...grpc.CallOption) (*ResolveAssetResponse, error)
}

type reliquaryServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewReliquaryServiceClient creates a client that sends every call with the JSON codec
func NewReliquaryServiceClient(cc grpc.ClientConnInterface) ReliquaryServiceClient {
	return &reliquaryServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reliquaryServiceClient) StartSession(ctx context.Context, in *StartSessionRequest, opts ...grpc.CallOption) (*StartSessionResponse, error) {
	return invoke[StartSessionResponse](ctx, c.cc, MethodStartSession, in, opts)
}

func (c *reliquaryServiceClient) ApplyEvent(ctx context.Context, in *ApplyEventRequest, opts ...grpc.CallOption) (*ApplyEventResponse, error) {
	return invoke[ApplyEventResponse](ctx, c.cc, MethodApplyEvent, in, opts)
}

func (c *reliquaryServiceClient) ListEffects(ctx context.Context, in *ListEffectsRequest, opts ...grpc.CallOption) (*ListEffectsResponse, error) {
	return invoke[ListEffectsResponse](ctx, c.cc, MethodListEffects, in, opts)
}

func (c *reliquaryServiceClient) GetEffect(ctx context.Context, in *GetEffectRequest, opts ...grpc.CallOption) (*GetEffectResponse, error) {
	return invoke[GetEffectResponse](ctx, c.cc, MethodGetEffect, in, opts)
}

func (c *reliquaryServiceClient) ListEligible(ctx context.Context, in *ListEligibleRequest, opts ...grpc.CallOption) (*ListEligibleResponse, error) {
	return invoke[ListEligibleResponse](ctx, c.cc, MethodListEligible, in, opts)
}

func (c *reliquaryServiceClient) CheckValidity(ctx context.Context, in *CheckValidityRequest, opts ...grpc.CallOption) (*CheckValidityResponse, error) {
	return invoke[CheckValidityResponse](ctx, c.cc, MethodCheckValidity, in, opts)
}

func (c *reliquaryServiceClient) ResolveOrder(ctx context.Context, in *ResolveOrderRequest, opts ...grpc.CallOption) (*ResolveOrderResponse, error) {
	return invoke[ResolveOrderResponse](ctx, c.cc, MethodResolveOrder, in, opts)
}

func (c *reliquaryServiceClient) ResolveAsset(ctx context.Context, in *ResolveAssetRequest, opts ...grpc.CallOption) (*ResolveAssetResponse, error) {
	return invoke[ResolveAssetResponse](ctx, c.cc, MethodResolveAsset, in, opts)
}

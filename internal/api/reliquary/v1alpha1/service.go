package reliquaryv1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "reliquary.api.v1alpha1.ReliquaryService"

// Method names
const (
	MethodStartSession  = "StartSession"
	MethodApplyEvent    = "ApplyEvent"
	MethodListEffects   = "ListEffects"
	MethodGetEffect     = "GetEffect"
	MethodListEligible  = "ListEligible"
	MethodCheckValidity = "CheckValidity"
	MethodResolveOrder  = "ResolveOrder"
	MethodResolveAsset  = "ResolveAsset"
)

// FullMethod returns the /service/method path of a method
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// ReliquaryServiceServer is the server API for ReliquaryService
type ReliquaryServiceServer interface {
	StartSession(context.Context, *StartSessionRequest) (*StartSessionResponse, error)
	ApplyEvent(context.Context, *ApplyEventRequest) (*ApplyEventResponse, error)
	ListEffects(context.Context, *ListEffectsRequest) (*ListEffectsResponse, error)
	GetEffect(context.Context, *GetEffectRequest) (*GetEffectResponse, error)
	ListEligible(context.Context, *ListEligibleRequest) (*ListEligibleResponse, error)
	CheckValidity(context.Context, *CheckValidityRequest) (*CheckValidityResponse, error)
	ResolveOrder(context.Context, *ResolveOrderRequest) (*ResolveOrderResponse, error)
	ResolveAsset(context.Context, *ResolveAssetRequest) (*ResolveAssetResponse, error)
}

// UnimplementedReliquaryServiceServer can be embedded for forward compatibility
type UnimplementedReliquaryServiceServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

// StartSession is not implemented
func (UnimplementedReliquaryServiceServer) StartSession(context.Context, *StartSessionRequest) (*StartSessionResponse, error) {
	return nil, unimplemented(MethodStartSession)
}

// ApplyEvent is not implemented
func (UnimplementedReliquaryServiceServer) ApplyEvent(context.Context, *ApplyEventRequest) (*ApplyEventResponse, error) {
	return nil, unimplemented(MethodApplyEvent)
}

// ListEffects is not implemented
func (UnimplementedReliquaryServiceServer) ListEffects(context.Context, *ListEffectsRequest) (*ListEffectsResponse, error) {
	return nil, unimplemented(MethodListEffects)
}

// GetEffect is not implemented
func (UnimplementedReliquaryServiceServer) GetEffect(context.Context, *GetEffectRequest) (*GetEffectResponse, error) {
	return nil, unimplemented(MethodGetEffect)
}

// ListEligible is not implemented
func (UnimplementedReliquaryServiceServer) ListEligible(context.Context, *ListEligibleRequest) (*ListEligibleResponse, error) {
	return nil, unimplemented(MethodListEligible)
}

// CheckValidity is not implemented
func (UnimplementedReliquaryServiceServer) CheckValidity(context.Context, *CheckValidityRequest) (*CheckValidityResponse, error) {
	return nil, unimplemented(MethodCheckValidity)
}

// ResolveOrder is not implemented
func (UnimplementedReliquaryServiceServer) ResolveOrder(context.Context, *ResolveOrderRequest) (*ResolveOrderResponse, error) {
	return nil, unimplemented(MethodResolveOrder)
}

// ResolveAsset is not implemented
func (UnimplementedReliquaryServiceServer) ResolveAsset(context.Context, *ResolveAssetRequest) (*ResolveAssetResponse, error) {
	return nil, unimplemented(MethodResolveAsset)
}

func unary[Req, Resp any](
	method string,
	call func(ReliquaryServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			server := srv.(ReliquaryServiceServer)
			handler := func(ctx context.Context, req any) (any, error) {
				resp, err := call(server, ctx, req.(*Req))
				if err != nil {
					return nil, err
				}
				return resp, nil
			}
			if interceptor == nil {
				return handler(ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(method),
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ServiceDesc is the grpc.ServiceDesc for ReliquaryService
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ReliquaryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(MethodStartSession, ReliquaryServiceServer.StartSession),
		unary(MethodApplyEvent, ReliquaryServiceServer.ApplyEvent),
		unary(MethodListEffects, ReliquaryServiceServer.ListEffects),
		unary(MethodGetEffect, ReliquaryServiceServer.GetEffect),
		unary(MethodListEligible, ReliquaryServiceServer.ListEligible),
		unary(MethodCheckValidity, ReliquaryServiceServer.CheckValidity),
		unary(MethodResolveOrder, ReliquaryServiceServer.ResolveOrder),
		unary(MethodResolveAsset, ReliquaryServiceServer.ResolveAsset),
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterReliquaryServiceServer registers the service on a gRPC server
func RegisterReliquaryServiceServer(s grpc.ServiceRegistrar, srv ReliquaryServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

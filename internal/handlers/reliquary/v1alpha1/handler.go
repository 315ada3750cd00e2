// Package v1alpha1 handles the reliquary grpc service interface
package v1alpha1

import (
	"context"

	reliquaryv1alpha1 "github.com/KirkDiggler/reliquary-api/internal/api/reliquary/v1alpha1"
	"github.com/KirkDiggler/reliquary-api/internal/entities/reliquary"
	"github.com/KirkDiggler/reliquary-api/internal/errors"
	"github.com/KirkDiggler/reliquary-api/internal/orchestrators/composer"
)

// HandlerConfig holds dependencies for the reliquary handler
type HandlerConfig struct {
	ComposerService composer.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.ComposerService == nil {
		return errors.InvalidArgument("composer service is required")
	}
	return nil
}

// Handler implements the reliquary gRPC service
type Handler struct {
	reliquaryv1alpha1.UnimplementedReliquaryServiceServer
	composerService composer.Service
}

// NewHandler creates a new reliquary handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		composerService: cfg.ComposerService,
	}, nil
}

// StartSession creates a new session with its initial view
func (h *Handler) StartSession(
	ctx context.Context,
	req *reliquaryv1alpha1.StartSessionRequest,
) (*reliquaryv1alpha1.StartSessionResponse, error) {
	output, err := h.composerService.StartSession(ctx, &composer.StartSessionInput{
		TypeChoice:  reliquary.TypeChoice(req.TypeChoice),
		ColorMode:   reliquary.ColorMode(req.ColorMode),
		ShowIllegal: req.ShowIllegal,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &reliquaryv1alpha1.StartSessionResponse{
		SessionID: output.SessionID,
		StartedAt: output.StartedAt.Unix(),
		State:     convertStateToProto(output.State),
		View:      convertViewToProto(output.View),
	}, nil
}

// ApplyEvent applies one user action to the caller's session state
func (h *Handler) ApplyEvent(
	ctx context.Context,
	req *reliquaryv1alpha1.ApplyEventRequest,
) (*reliquaryv1alpha1.ApplyEventResponse, error) {
	if req.Event == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("event is required"))
	}
	if req.Event.Kind == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("event kind is required"))
	}
	if req.State != nil {
		if len(req.State.Slots) > reliquary.SlotCount {
			return nil, errors.ToGRPCError(
				errors.InvalidArgumentf("at most %d slots allowed", reliquary.SlotCount).
					WithMeta("slot_count", len(req.State.Slots)))
		}
		if len(req.State.Categories) > reliquary.SlotCount {
			return nil, errors.ToGRPCError(
				errors.InvalidArgumentf("at most %d categories allowed", reliquary.SlotCount).
					WithMeta("category_count", len(req.State.Categories)))
		}
	}

	output, err := h.composerService.ApplyEvent(ctx, &composer.ApplyEventInput{
		SessionID: req.SessionID,
		State:     convertStateFromProto(req.State),
		Event:     convertEventFromProto(req.Event),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &reliquaryv1alpha1.ApplyEventResponse{
		State: convertStateToProto(output.State),
		View:  convertViewToProto(output.View),
	}, nil
}

// ListEffects returns the filtered catalog
func (h *Handler) ListEffects(
	ctx context.Context,
	req *reliquaryv1alpha1.ListEffectsRequest,
) (*reliquaryv1alpha1.ListEffectsResponse, error) {
	output, err := h.composerService.ListEffects(ctx, &composer.ListEffectsInput{
		TypeChoice: reliquary.TypeChoice(req.TypeChoice),
		Category:   req.Category,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &reliquaryv1alpha1.ListEffectsResponse{
		Effects:    convertEffectsToProto(output.Effects),
		Categories: output.Categories,
		Total:      int32(output.Total),
	}, nil
}

// GetEffect returns one effect
func (h *Handler) GetEffect(
	ctx context.Context,
	req *reliquaryv1alpha1.GetEffectRequest,
) (*reliquaryv1alpha1.GetEffectResponse, error) {
	if req.EffectID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("effect_id is required"))
	}

	output, err := h.composerService.GetEffect(ctx, &composer.GetEffectInput{
		EffectID: req.EffectID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	effect := convertEffectToProto(output.Effect)
	effect.IconURL = output.IconURL

	return &reliquaryv1alpha1.GetEffectResponse{
		Effect: effect,
	}, nil
}

// ListEligible returns one slot's options for a selection
func (h *Handler) ListEligible(
	ctx context.Context,
	req *reliquaryv1alpha1.ListEligibleRequest,
) (*reliquaryv1alpha1.ListEligibleResponse, error) {
	if len(req.Slots) > reliquary.SlotCount {
		return nil, errors.ToGRPCError(
			errors.InvalidArgumentf("at most %d slots allowed", reliquary.SlotCount))
	}

	output, err := h.composerService.ListEligible(ctx, &composer.ListEligibleInput{
		TypeChoice:  reliquary.TypeChoice(req.TypeChoice),
		Selection:   reliquary.NewSelection(req.Slots...),
		Slot:        int(req.Slot),
		Category:    req.Category,
		ShowIllegal: req.ShowIllegal,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &reliquaryv1alpha1.ListEligibleResponse{
		Locked:                  output.Locked,
		BlockedCompatibilityIDs: output.Blocked,
		EligibleCount:           int32(len(output.Eligible)),
		Options:                 convertEffectsToProto(output.Options),
	}, nil
}

// CheckValidity reports whether the effects can share a relic
func (h *Handler) CheckValidity(
	ctx context.Context,
	req *reliquaryv1alpha1.CheckValidityRequest,
) (*reliquaryv1alpha1.CheckValidityResponse, error) {
	output, err := h.composerService.CheckValidity(ctx, &composer.CheckValidityInput{
		EffectIDs: req.EffectIDs,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &reliquaryv1alpha1.CheckValidityResponse{
		Validity:   string(output.Validity),
		Collisions: output.Collisions,
	}, nil
}

// ResolveOrder returns the canonical roll order of three effects
func (h *Handler) ResolveOrder(
	ctx context.Context,
	req *reliquaryv1alpha1.ResolveOrderRequest,
) (*reliquaryv1alpha1.ResolveOrderResponse, error) {
	output, err := h.composerService.ResolveOrder(ctx, &composer.ResolveOrderInput{
		EffectIDs: req.EffectIDs,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &reliquaryv1alpha1.ResolveOrderResponse{
		Order: &reliquaryv1alpha1.OrderResolution{
			InOrder: output.InOrder,
			Sorted:  convertEffectsToProto(output.Sorted),
			Moved:   output.Moved[:],
		},
	}, nil
}

// ResolveAsset returns the relic image for a type, color and stage
func (h *Handler) ResolveAsset(
	ctx context.Context,
	req *reliquaryv1alpha1.ResolveAssetRequest,
) (*reliquaryv1alpha1.ResolveAssetResponse, error) {
	output, err := h.composerService.ResolveAsset(ctx, &composer.ResolveAssetInput{
		TypeChoice: reliquary.TypeChoice(req.TypeChoice),
		Color:      reliquary.Color(req.Color),
		Stage:      int(req.Stage),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &reliquaryv1alpha1.ResolveAssetResponse{
		Asset: &reliquaryv1alpha1.Asset{
			Path:     output.Asset.Path,
			URL:      output.Asset.URL,
			Fallback: output.Asset.Fallback,
		},
	}, nil
}

// Package composer implements the relic selection controller: a pure reducer
// over caller-held session state plus read-only catalog queries.
package composer

//go:generate mockgen -destination=mock/mock_service.go -package=composermock github.com/KirkDiggler/reliquary-api/internal/orchestrators/composer Service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/reliquary-api/internal/assets"
	"github.com/KirkDiggler/reliquary-api/internal/catalog"
	"github.com/KirkDiggler/reliquary-api/internal/engine"
	"github.com/KirkDiggler/reliquary-api/internal/entities/reliquary"
	"github.com/KirkDiggler/reliquary-api/internal/errors"
	"github.com/KirkDiggler/reliquary-api/internal/pkg/clock"
	"github.com/KirkDiggler/reliquary-api/internal/pkg/idgen"
)

const (
	// EventSlotCleared is published once per slot emptied by the cascade
	EventSlotCleared = "reliquary.slot_cleared"

	// SessionEntityType is the rpg-toolkit entity type of a session
	SessionEntityType = "reliquary_session"

	// ContextKeySlot holds the cleared slot number on a slot_cleared event
	ContextKeySlot = "slot"
)

// Service defines the relic composition operations
type Service interface {
	// Session flow
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)
	ApplyEvent(ctx context.Context, input *ApplyEventInput) (*ApplyEventOutput, error)

	// Catalog queries
	ListEffects(ctx context.Context, input *ListEffectsInput) (*ListEffectsOutput, error)
	GetEffect(ctx context.Context, input *GetEffectInput) (*GetEffectOutput, error)

	// Rule checks, usable without a session
	ListEligible(ctx context.Context, input *ListEligibleInput) (*ListEligibleOutput, error)
	CheckValidity(ctx context.Context, input *CheckValidityInput) (*CheckValidityOutput, error)
	ResolveOrder(ctx context.Context, input *ResolveOrderInput) (*ResolveOrderOutput, error)
	ResolveAsset(ctx context.Context, input *ResolveAssetInput) (*ResolveAssetOutput, error)
}

// Config holds the dependencies for the composer orchestrator
type Config struct {
	Catalog     *catalog.Catalog
	DiceRoller  dice.Roller
	EventBus    events.EventBus
	IDGenerator idgen.Generator
	Clock       clock.Clock
	Assets      *assets.Resolver

	// TypeHinter is optional
	TypeHinter TypeHinter
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.DiceRoller == nil {
		vb.RequiredField("DiceRoller")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.Assets == nil {
		vb.RequiredField("Assets")
	}

	return vb.Build()
}

type orchestrator struct {
	catalog  *catalog.Catalog
	roller   dice.Roller
	eventBus events.EventBus
	idGen    idgen.Generator
	clock    clock.Clock
	assets   *assets.Resolver
	hinter   TypeHinter
}

// NewOrchestrator creates a new composer orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		catalog:  cfg.Catalog,
		roller:   cfg.DiceRoller,
		eventBus: cfg.EventBus,
		idGen:    cfg.IDGenerator,
		clock:    cfg.Clock,
		assets:   cfg.Assets,
		hinter:   cfg.TypeHinter,
	}

	o.eventBus.SubscribeFunc(EventSlotCleared, 100, logSlotCleared)

	return o, nil
}

func (o *orchestrator) deps() Deps {
	return Deps{
		Roller: o.roller,
		Hinter: o.hinter,
		Assets: o.assets,
	}
}

// StartSession creates a session id and renders the initial view
func (o *orchestrator) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	state := DefaultState()
	if input.TypeChoice != "" {
		state.TypeChoice = reliquary.ParseTypeChoice(string(input.TypeChoice))
	}
	if input.ColorMode != "" {
		mode, ok := reliquary.ParseColorMode(string(input.ColorMode))
		if !ok {
			return nil, errors.InvalidArgumentf("unknown color mode %q", input.ColorMode)
		}
		state.ColorMode = mode
	}
	state.ShowIllegal = input.ShowIllegal

	res, err := Reduce(o.catalog, state, Event{Kind: EventInit}, o.deps())
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize session")
	}

	sessionID := o.idGen.Generate()
	slog.InfoContext(ctx, "session started",
		"session_id", sessionID,
		"type_choice", res.State.TypeChoice,
		"color", res.View.Color)

	return &StartSessionOutput{
		SessionID: sessionID,
		StartedAt: o.clock.Now(),
		State:     res.State,
		View:      res.View,
	}, nil
}

// ApplyEvent validates the event against the catalog and runs the reducer
func (o *orchestrator) ApplyEvent(ctx context.Context, input *ApplyEventInput) (*ApplyEventOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ev, err := o.validateEvent(input.Event)
	if err != nil {
		return nil, err
	}

	res, err := Reduce(o.catalog, input.State, ev, o.deps())
	if err != nil {
		return nil, errors.Wrap(err, "failed to apply event").WithMeta("event", string(ev.Kind))
	}

	o.publishCleared(ctx, input.SessionID, res.Cleared)

	slog.DebugContext(ctx, "event applied",
		"session_id", input.SessionID,
		"event", ev.Kind,
		"stage", res.View.Stage,
		"validity", res.View.Validity,
		"rerolled", res.Rerolled)

	return &ApplyEventOutput{
		State: res.State,
		View:  res.View,
	}, nil
}

func (o *orchestrator) validateEvent(ev Event) (Event, error) {
	switch ev.Kind {
	case EventTypeChange:
		ev.TypeChoice = reliquary.ParseTypeChoice(string(ev.TypeChoice))
	case EventColorChange:
		mode, ok := reliquary.ParseColorMode(string(ev.ColorMode))
		if !ok {
			return ev, errors.InvalidArgumentf("unknown color mode %q", ev.ColorMode).
				WithMeta("color_mode", string(ev.ColorMode))
		}
		ev.ColorMode = mode
	case EventCategoryChange:
		if !reliquary.ValidSlot(ev.Slot) {
			return ev, errors.InvalidArgumentf("slot must be 1-%d", reliquary.SlotCount).WithMeta("slot", ev.Slot)
		}
	case EventEffectChange:
		if !reliquary.ValidSlot(ev.Slot) {
			return ev, errors.InvalidArgumentf("slot must be 1-%d", reliquary.SlotCount).WithMeta("slot", ev.Slot)
		}
		ev.EffectID = strings.TrimSpace(ev.EffectID)
		if ev.EffectID != "" {
			if _, ok := o.catalog.Get(ev.EffectID); !ok {
				return ev, errors.NotFoundf("effect %s not found", ev.EffectID).WithMeta("effect_id", ev.EffectID)
			}
		}
	case EventInit, EventIllegalToggle, EventStartOver:
	default:
		return ev, errors.InvalidArgumentf("unknown event kind %q", ev.Kind)
	}
	return ev, nil
}

func (o *orchestrator) publishCleared(ctx context.Context, sessionID string, cleared []ClearedSlot) {
	session := &sessionEntity{id: sessionID}
	for _, c := range cleared {
		var source *reliquary.Effect
		if e, ok := o.catalog.Get(c.EffectID); ok {
			source = e
		} else {
			source = &reliquary.Effect{ID: c.EffectID}
		}

		event := events.NewGameEvent(EventSlotCleared, source, session)
		event.Context().Set(ContextKeySlot, c.Slot)
		if err := o.eventBus.Publish(ctx, event); err != nil {
			slog.WarnContext(ctx, "failed to publish slot cleared event",
				"session_id", sessionID,
				"slot", c.Slot,
				"error", err)
		}
	}
}

func logSlotCleared(ctx context.Context, event events.Event) error {
	slot, _ := event.Context().Get(ContextKeySlot)
	slog.InfoContext(ctx, "slot cleared by cascade",
		"session_id", event.Target().GetID(),
		"effect_id", event.Source().GetID(),
		"slot", slot)
	return nil
}

// ListEffects returns the type and category filtered catalog
func (o *orchestrator) ListEffects(_ context.Context, input *ListEffectsInput) (*ListEffectsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	choice := reliquary.ParseTypeChoice(string(input.TypeChoice))
	base := engine.FilterByRelicType(o.catalog.Effects(), choice)

	return &ListEffectsOutput{
		Effects:    engine.FilterByCategory(base, input.Category),
		Categories: engine.Categories(base),
		Total:      o.catalog.Len(),
	}, nil
}

// GetEffect returns one catalog record
func (o *orchestrator) GetEffect(_ context.Context, input *GetEffectInput) (*GetEffectOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	id := strings.TrimSpace(input.EffectID)
	if id == "" {
		return nil, errors.InvalidArgument("effect ID is required")
	}

	e, ok := o.catalog.Get(id)
	if !ok {
		return nil, errors.NotFoundf("effect %s not found", id).WithMeta("effect_id", id)
	}

	return &GetEffectOutput{
		Effect:  e,
		IconURL: o.assets.Icon(e.StatusIconID),
	}, nil
}

// ListEligible computes one slot's options for an arbitrary selection
func (o *orchestrator) ListEligible(_ context.Context, input *ListEligibleInput) (*ListEligibleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !reliquary.ValidSlot(input.Slot) {
		return nil, errors.InvalidArgumentf("slot must be 1-%d", reliquary.SlotCount).WithMeta("slot", input.Slot)
	}
	for _, id := range input.Selection.IDs() {
		if _, ok := o.catalog.Get(id); !ok {
			return nil, errors.NotFoundf("effect %s not found", id).WithMeta("effect_id", id)
		}
	}

	opts := engine.OptionsForSlot(
		o.catalog.Effects(),
		reliquary.ParseTypeChoice(string(input.TypeChoice)),
		o.catalog.Resolve(input.Selection),
		input.Slot,
		input.Category,
		input.ShowIllegal,
	)

	return &ListEligibleOutput{
		Locked:   opts.Locked,
		Blocked:  opts.Blocked,
		Eligible: opts.Eligible,
		Options:  opts.Options,
	}, nil
}

// CheckValidity reports whether one to three effects can share a relic
func (o *orchestrator) CheckValidity(_ context.Context, input *CheckValidityInput) (*CheckValidityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if len(input.EffectIDs) == 0 || len(input.EffectIDs) > reliquary.SlotCount {
		return nil, errors.InvalidArgumentf("expected 1-%d effect ids, got %d", reliquary.SlotCount, len(input.EffectIDs))
	}

	selected, err := o.catalog.Lookup(input.EffectIDs...)
	if err != nil {
		return nil, err
	}

	return &CheckValidityOutput{
		Validity:   engine.ComputeValidity(selected),
		Collisions: engine.Collisions(selected),
	}, nil
}

// ResolveOrder returns the canonical roll order of a full selection
func (o *orchestrator) ResolveOrder(_ context.Context, input *ResolveOrderInput) (*ResolveOrderOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if len(input.EffectIDs) != reliquary.SlotCount {
		return nil, errors.InvalidArgumentf("expected %d effect ids, got %d", reliquary.SlotCount, len(input.EffectIDs))
	}

	selected, err := o.catalog.Lookup(input.EffectIDs...)
	if err != nil {
		return nil, err
	}

	res := engine.ResolveOrder(selected[0], selected[1], selected[2])
	out := &ResolveOrderOutput{
		InOrder: res.InOrder,
		Sorted:  res.Sorted,
		Moved:   res.Moved,
	}
	if res.InOrder {
		out.Sorted = selected
	}
	return out, nil
}

// ResolveAsset maps a type, color and stage to a relic image
func (o *orchestrator) ResolveAsset(_ context.Context, input *ResolveAssetInput) (*ResolveAssetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Stage < 0 || input.Stage > reliquary.SlotCount {
		return nil, errors.InvalidArgumentf("stage must be 0-%d", reliquary.SlotCount).WithMeta("stage", input.Stage)
	}

	var color reliquary.Color
	if input.Stage > 0 {
		mode, ok := reliquary.ParseColorMode(string(input.Color))
		if !ok || mode == reliquary.ColorModeRandom {
			return nil, errors.InvalidArgumentf("a concrete color is required for stage %d", input.Stage).
				WithMeta("color", string(input.Color))
		}
		color = reliquary.Color(mode)
	}

	choice := reliquary.ParseTypeChoice(string(input.TypeChoice))
	return &ResolveAssetOutput{
		Asset: o.assets.Relic(choice, color, input.Stage),
	}, nil
}

// sessionEntity lets a session be the target of toolkit events
type sessionEntity struct {
	id string
}

func (s *sessionEntity) GetID() string   { return s.id }
func (s *sessionEntity) GetType() string { return SessionEntityType }

package composer

import (
	"fmt"
	"slices"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/reliquary-api/internal/assets"
	"github.com/KirkDiggler/reliquary-api/internal/catalog"
	"github.com/KirkDiggler/reliquary-api/internal/engine"
	"github.com/KirkDiggler/reliquary-api/internal/entities/reliquary"
	"github.com/KirkDiggler/reliquary-api/internal/errors"
)

// TypeHinter maps an effect to the relic type it is curated for
type TypeHinter interface {
	HintType(effectID string) (reliquary.TypeChoice, bool)
}

// StaticHints is a TypeHinter backed by a fixed map
type StaticHints map[string]reliquary.TypeChoice

// HintType implements TypeHinter
func (h StaticHints) HintType(effectID string) (reliquary.TypeChoice, bool) {
	t, ok := h[effectID]
	return t, ok && t.IsConcrete()
}

// Deps are the collaborators of the reducer. Hinter and Assets are optional.
type Deps struct {
	Roller dice.Roller
	Hinter TypeHinter
	Assets *assets.Resolver
}

// Result is the outcome of one reduction
type Result struct {
	State    SessionState
	View     *View
	Cleared  []ClearedSlot
	Rerolled bool
}

// DefaultState is the state of a fresh session
func DefaultState() SessionState {
	return SessionState{
		TypeChoice: reliquary.TypeChoiceAll,
		ColorMode:  reliquary.ColorModeRandom,
	}
}

// normalized canonicalizes a state sent back by the caller. An unknown color
// mode is rejected; a random color outside the palette is dropped so the
// next reduction draws a fresh one.
func (s SessionState) normalized() (SessionState, error) {
	s.TypeChoice = reliquary.ParseTypeChoice(string(s.TypeChoice))

	if s.ColorMode == "" {
		s.ColorMode = reliquary.ColorModeRandom
	} else {
		mode, ok := reliquary.ParseColorMode(string(s.ColorMode))
		if !ok {
			return s, errors.InvalidArgumentf("unknown color mode %q", s.ColorMode).
				WithMeta("color_mode", string(s.ColorMode))
		}
		s.ColorMode = mode
	}

	if !slices.Contains(reliquary.Colors, s.RandomColor) {
		s.RandomColor = ""
	}

	for i := range s.Categories {
		s.Categories[i] = strings.TrimSpace(s.Categories[i])
	}
	return s, nil
}

// EffectiveColor is the fixed color, or the drawn one in Random mode
func (s SessionState) EffectiveColor() reliquary.Color {
	if s.ColorMode == reliquary.ColorModeRandom {
		return s.RandomColor
	}
	return reliquary.Color(s.ColorMode)
}

// Reduce applies one event to the prior state, runs the cascade and builds
// the view. It has no side effects beyond drawing from the roller.
func Reduce(cat *catalog.Catalog, prior SessionState, ev Event, deps Deps) (*Result, error) {
	if cat == nil {
		return nil, errors.InvalidArgument("catalog is required")
	}
	if deps.Roller == nil {
		return nil, errors.InvalidArgument("roller is required")
	}

	prior, err := prior.normalized()
	if err != nil {
		return nil, err
	}
	state, err := apply(prior, ev, deps.Hinter)
	if err != nil {
		return nil, err
	}

	var cleared []ClearedSlot
	state.Selection, cleared = cascade(cat, state)

	rerolled := false
	if shouldReroll(prior, state, ev) {
		c, err := drawColor(deps.Roller)
		if err != nil {
			return nil, err
		}
		state.RandomColor = c
		rerolled = true
	}

	return &Result{
		State:    state,
		View:     buildView(cat, state, cleared, deps.Assets),
		Cleared:  cleared,
		Rerolled: rerolled,
	}, nil
}

func apply(state SessionState, ev Event, hinter TypeHinter) (SessionState, error) {
	switch ev.Kind {
	case EventInit:
	case EventTypeChange:
		state.TypeChoice = ev.TypeChoice
		if state.TypeChoice == "" {
			state.TypeChoice = reliquary.TypeChoiceAll
		}
	case EventColorChange:
		mode, ok := reliquary.ParseColorMode(string(ev.ColorMode))
		if !ok {
			return state, errors.InvalidArgumentf("unknown color mode %q", ev.ColorMode)
		}
		state.ColorMode = mode
	case EventIllegalToggle:
		state.ShowIllegal = ev.ShowIllegal
	case EventCategoryChange:
		if !reliquary.ValidSlot(ev.Slot) {
			return state, errors.InvalidArgumentf("slot must be 1-%d, got %d", reliquary.SlotCount, ev.Slot)
		}
		state.Categories[ev.Slot-1] = strings.TrimSpace(ev.Category)
	case EventEffectChange:
		if !reliquary.ValidSlot(ev.Slot) {
			return state, errors.InvalidArgumentf("slot must be 1-%d, got %d", reliquary.SlotCount, ev.Slot)
		}
		id := strings.TrimSpace(ev.EffectID)
		state.Selection = state.Selection.With(ev.Slot, id)
		if ev.Slot == 1 && id != "" && state.TypeChoice == reliquary.TypeChoiceAll && hinter != nil {
			if t, ok := hinter.HintType(id); ok {
				state.TypeChoice = t
			}
		}
	case EventStartOver:
		state.Selection = reliquary.NewSelection()
		state.Categories = [reliquary.SlotCount]string{}
	default:
		return state, errors.InvalidArgumentf("unknown event kind %q", ev.Kind)
	}
	return state, nil
}

// cascade re-evaluates the slots left to right. A slot whose value is no
// longer among its options is cleared together with every slot to its right.
func cascade(cat *catalog.Catalog, state SessionState) (reliquary.Selection, []ClearedSlot) {
	sel := state.Selection
	effects := cat.Effects()
	var cleared []ClearedSlot

	for slot := 1; slot <= reliquary.SlotCount; slot++ {
		id := sel.Get(slot)
		if id == "" {
			continue
		}

		opts := engine.OptionsForSlot(effects, state.TypeChoice, cat.Resolve(sel), slot,
			state.Categories[slot-1], state.ShowIllegal)
		if opts.Contains(id) {
			continue
		}

		for s := slot; s <= reliquary.SlotCount; s++ {
			if sel.Filled(s) {
				cleared = append(cleared, ClearedSlot{Slot: s, EffectID: sel.Get(s)})
			}
		}
		sel = sel.ClearFrom(slot)
		break
	}

	return sel, cleared
}

func shouldReroll(prior, next SessionState, ev Event) bool {
	if next.ColorMode != reliquary.ColorModeRandom {
		return false
	}
	if ev.Kind == EventInit || next.RandomColor == "" {
		return true
	}
	if ev.Kind == EventColorChange {
		return false
	}
	return prior != next
}

func drawColor(roller dice.Roller) (reliquary.Color, error) {
	n, err := roller.Roll(len(reliquary.Colors))
	if err != nil {
		return "", errors.Wrap(err, "failed to draw random color")
	}
	if n < 1 || n > len(reliquary.Colors) {
		return "", errors.Internalf("roller returned %d for a d%d", n, len(reliquary.Colors))
	}
	return reliquary.Colors[n-1], nil
}

func buildView(cat *catalog.Catalog, state SessionState, cleared []ClearedSlot, resolver *assets.Resolver) *View {
	if resolver == nil {
		resolver = defaultResolver
	}

	effects := cat.Effects()
	selected := cat.Resolve(state.Selection)
	stage := state.Selection.Stage()
	active := state.Selection.ActiveSlot()

	v := &View{
		CategoryOptions: engine.Categories(engine.FilterByRelicType(effects, state.TypeChoice)),
		EffectCount:     cat.Len(),
		Stage:           stage,
		ActiveSlot:      active,
		Color:           state.EffectiveColor(),
		Status:          statusLine(cat.Len(), stage),
		Cleared:         cleared,
	}

	for slot := 1; slot <= reliquary.SlotCount; slot++ {
		opts := engine.OptionsForSlot(effects, state.TypeChoice, selected, slot,
			state.Categories[slot-1], state.ShowIllegal)
		sv := SlotView{
			Slot:     slot,
			Locked:   opts.Locked,
			Category: state.Categories[slot-1],
			Blocked:  opts.Blocked,
			Options:  opts.Options,
			Selected: selected[slot-1],
		}
		if sv.Selected != nil {
			sv.IconURL = resolver.Icon(sv.Selected.StatusIconID)
		}
		v.Slots[slot-1] = sv
	}
	v.ActiveOptionCount = len(v.Slots[active-1].Options)

	filled := make([]*reliquary.Effect, 0, reliquary.SlotCount)
	for _, e := range selected {
		if e != nil {
			filled = append(filled, e)
		}
	}
	if len(filled) == 0 {
		v.Validity = reliquary.ValidityNone
	} else {
		v.Validity = engine.ComputeValidity(filled)
		v.Collisions = engine.Collisions(filled)
	}

	if len(filled) == reliquary.SlotCount {
		res := engine.ResolveOrder(selected[0], selected[1], selected[2])
		if !res.InOrder {
			v.Order = &res
		}
	}

	v.Asset = resolver.Relic(state.TypeChoice, v.Color, stage)
	return v
}

func statusLine(total, stage int) string {
	switch stage {
	case 0:
		return fmt.Sprintf("Loaded %d effects. Pick Effect 1 to begin.", total)
	case 1:
		return "Effect 1 selected. Choose Effect 2."
	case 2:
		return "Effects 1 & 2 selected. Choose Effect 3."
	default:
		return "All 3 effects selected."
	}
}

// CountLine is the available-options hint shown under the active slot
func CountLine(v *View) string {
	return fmt.Sprintf("(%d Effects Available based on current selections)", v.ActiveOptionCount)
}

var defaultResolver = &assets.Resolver{}

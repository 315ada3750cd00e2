package v1alpha1

import (
	reliquaryv1alpha1 "github.com/KirkDiggler/reliquary-api/internal/api/reliquary/v1alpha1"
	"github.com/KirkDiggler/reliquary-api/internal/engine"
	"github.com/KirkDiggler/reliquary-api/internal/entities/reliquary"
	"github.com/KirkDiggler/reliquary-api/internal/orchestrators/composer"
)

func convertEffectToProto(e *reliquary.Effect) *reliquaryv1alpha1.Effect {
	if e == nil {
		return nil
	}

	return &reliquaryv1alpha1.Effect{
		EffectID:        e.ID,
		Label:           e.Label(),
		Description:     e.Description,
		RelicType:       string(e.RelicType),
		Category:        e.Category,
		CompatibilityID: e.CompatibilityID,
		StatusIconID:    e.StatusIconID,
		RollOrder:       e.RollOrder,
	}
}

func convertEffectsToProto(effects []*reliquary.Effect) []*reliquaryv1alpha1.Effect {
	out := make([]*reliquaryv1alpha1.Effect, 0, len(effects))
	for _, e := range effects {
		out = append(out, convertEffectToProto(e))
	}
	return out
}

func convertStateToProto(s composer.SessionState) *reliquaryv1alpha1.SessionState {
	return &reliquaryv1alpha1.SessionState{
		TypeChoice:  string(s.TypeChoice),
		ColorMode:   string(s.ColorMode),
		RandomColor: string(s.RandomColor),
		ShowIllegal: s.ShowIllegal,
		Categories:  s.Categories[:],
		Slots:       s.Selection.Slots[:],
	}
}

// convertStateFromProto tolerates a nil state, which decodes to the zero
// session and is normalized by the reducer
func convertStateFromProto(s *reliquaryv1alpha1.SessionState) composer.SessionState {
	if s == nil {
		return composer.SessionState{}
	}

	state := composer.SessionState{
		TypeChoice:  reliquary.TypeChoice(s.TypeChoice),
		ColorMode:   reliquary.ColorMode(s.ColorMode),
		RandomColor: reliquary.Color(s.RandomColor),
		ShowIllegal: s.ShowIllegal,
		Selection:   reliquary.NewSelection(s.Slots...),
	}
	copy(state.Categories[:], s.Categories)
	return state
}

func convertEventFromProto(e *reliquaryv1alpha1.Event) composer.Event {
	return composer.Event{
		Kind:        composer.EventKind(e.Kind),
		Slot:        int(e.Slot),
		TypeChoice:  reliquary.TypeChoice(e.TypeChoice),
		ColorMode:   reliquary.ColorMode(e.ColorMode),
		ShowIllegal: e.ShowIllegal,
		Category:    e.Category,
		EffectID:    e.EffectID,
	}
}

func convertOrderToProto(o *engine.OrderResolution) *reliquaryv1alpha1.OrderResolution {
	if o == nil {
		return nil
	}
	return &reliquaryv1alpha1.OrderResolution{
		InOrder: o.InOrder,
		Sorted:  convertEffectsToProto(o.Sorted),
		Moved:   o.Moved[:],
	}
}

func convertViewToProto(v *composer.View) *reliquaryv1alpha1.View {
	if v == nil {
		return nil
	}

	slots := make([]*reliquaryv1alpha1.SlotView, 0, len(v.Slots))
	for _, sv := range v.Slots {
		selected := convertEffectToProto(sv.Selected)
		if selected != nil {
			selected.IconURL = sv.IconURL
		}
		slots = append(slots, &reliquaryv1alpha1.SlotView{
			Slot:                    int32(sv.Slot),
			Locked:                  sv.Locked,
			Category:                sv.Category,
			BlockedCompatibilityIDs: sv.Blocked,
			Options:                 convertEffectsToProto(sv.Options),
			Selected:                selected,
		})
	}

	cleared := make([]*reliquaryv1alpha1.ClearedSlot, 0, len(v.Cleared))
	for _, c := range v.Cleared {
		cleared = append(cleared, &reliquaryv1alpha1.ClearedSlot{
			Slot:     int32(c.Slot),
			EffectID: c.EffectID,
		})
	}

	return &reliquaryv1alpha1.View{
		Slots:             slots,
		CategoryOptions:   v.CategoryOptions,
		EffectCount:       int32(v.EffectCount),
		Stage:             int32(v.Stage),
		ActiveSlot:        int32(v.ActiveSlot),
		ActiveOptionCount: int32(v.ActiveOptionCount),
		CountLine:         composer.CountLine(v),
		Validity:          string(v.Validity),
		Collisions:        v.Collisions,
		Order:             convertOrderToProto(v.Order),
		Asset: &reliquaryv1alpha1.Asset{
			Path:     v.Asset.Path,
			URL:      v.Asset.URL,
			Fallback: v.Asset.Fallback,
		},
		Color:   string(v.Color),
		Status:  v.Status,
		Cleared: cleared,
	}
}

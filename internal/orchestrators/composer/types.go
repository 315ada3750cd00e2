package composer

import (
	"time"

	"github.com/KirkDiggler/reliquary-api/internal/assets"
	"github.com/KirkDiggler/reliquary-api/internal/engine"
	"github.com/KirkDiggler/reliquary-api/internal/entities/reliquary"
)

// SessionState is everything the caller holds between events
type SessionState struct {
	TypeChoice  reliquary.TypeChoice        `json:"type_choice"`
	ColorMode   reliquary.ColorMode         `json:"color_mode"`
	RandomColor reliquary.Color             `json:"random_color,omitempty"`
	ShowIllegal bool                        `json:"show_illegal"`
	Categories  [reliquary.SlotCount]string `json:"categories"`
	Selection   reliquary.Selection         `json:"selection"`
}

// EventKind names a user action
type EventKind string

// Event kinds
const (
	EventInit           EventKind = "init"
	EventTypeChange     EventKind = "type_change"
	EventColorChange    EventKind = "color_change"
	EventIllegalToggle  EventKind = "illegal_toggle"
	EventCategoryChange EventKind = "category_change"
	EventEffectChange   EventKind = "effect_change"
	EventStartOver      EventKind = "start_over"
)

// Event is one user action. Only the fields of its kind are read.
type Event struct {
	Kind        EventKind
	Slot        int
	TypeChoice  reliquary.TypeChoice
	ColorMode   reliquary.ColorMode
	ShowIllegal bool
	Category    string
	EffectID    string
}

// ClearedSlot is a slot emptied by the cascade
type ClearedSlot struct {
	Slot     int    `json:"slot"`
	EffectID string `json:"effect_id"`
}

// SlotView is the rendered state of one slot
type SlotView struct {
	Slot     int                 `json:"slot"`
	Locked   bool                `json:"locked"`
	Category string              `json:"category,omitempty"`
	Blocked  []string            `json:"blocked_compatibility_ids"`
	Options  []*reliquary.Effect `json:"options"`
	Selected *reliquary.Effect   `json:"selected,omitempty"`
	IconURL  string              `json:"icon_url,omitempty"`
}

// View is what a renderer needs after an event
type View struct {
	Slots             [reliquary.SlotCount]SlotView `json:"slots"`
	CategoryOptions   []string                      `json:"category_options"`
	EffectCount       int                           `json:"effect_count"`
	Stage             int                           `json:"stage"`
	ActiveSlot        int                           `json:"active_slot"`
	ActiveOptionCount int                           `json:"active_option_count"`
	Validity          reliquary.Validity            `json:"validity"`
	Collisions        []string                      `json:"collisions,omitempty"`
	// Order is set only when all slots are filled and out of roll order
	Order   *engine.OrderResolution `json:"order,omitempty"`
	Asset   assets.Asset            `json:"asset"`
	Color   reliquary.Color         `json:"color"`
	Status  string                  `json:"status"`
	Cleared []ClearedSlot           `json:"cleared,omitempty"`
}

// StartSessionInput seeds a session. Empty fields take the defaults
// (type All, color Random).
type StartSessionInput struct {
	TypeChoice  reliquary.TypeChoice
	ColorMode   reliquary.ColorMode
	ShowIllegal bool
}

// StartSessionOutput is the initial state and view
type StartSessionOutput struct {
	SessionID string
	StartedAt time.Time
	State     SessionState
	View      *View
}

// ApplyEventInput carries the caller's state and the event to apply
type ApplyEventInput struct {
	SessionID string
	State     SessionState
	Event     Event
}

// ApplyEventOutput is the new state and view
type ApplyEventOutput struct {
	State SessionState
	View  *View
}

// ListEffectsInput filters the catalog
type ListEffectsInput struct {
	TypeChoice reliquary.TypeChoice
	Category   string
}

// ListEffectsOutput is the filtered catalog and the category options for the type
type ListEffectsOutput struct {
	Effects    []*reliquary.Effect
	Categories []string
	Total      int
}

// GetEffectInput names one effect
type GetEffectInput struct {
	EffectID string
}

// GetEffectOutput is one effect with its icon
type GetEffectOutput struct {
	Effect  *reliquary.Effect
	IconURL string
}

// ListEligibleInput asks for one slot's options given a selection
type ListEligibleInput struct {
	TypeChoice  reliquary.TypeChoice
	Selection   reliquary.Selection
	Slot        int
	Category    string
	ShowIllegal bool
}

// ListEligibleOutput is the slot's options
type ListEligibleOutput struct {
	Locked   bool
	Blocked  []string
	Eligible []*reliquary.Effect
	Options  []*reliquary.Effect
}

// CheckValidityInput holds one to three effect ids
type CheckValidityInput struct {
	EffectIDs []string
}

// CheckValidityOutput reports validity and the colliding groups
type CheckValidityOutput struct {
	Validity   reliquary.Validity
	Collisions []string
}

// ResolveOrderInput holds exactly three effect ids in slot order
type ResolveOrderInput struct {
	EffectIDs []string
}

// ResolveOrderOutput is the canonical ordering
type ResolveOrderOutput struct {
	InOrder bool
	Sorted  []*reliquary.Effect
	Moved   [reliquary.SlotCount]bool
}

// ResolveAssetInput names a relic image
type ResolveAssetInput struct {
	TypeChoice reliquary.TypeChoice
	Color      reliquary.Color
	Stage      int
}

// ResolveAssetOutput is the resolved image
type ResolveAssetOutput struct {
	Asset assets.Asset
}

// Package reliquaryv1alpha1 defines the wire contract of the reliquary gRPC
// service: request and response messages, the JSON codec they travel in and
// the service descriptor.
package reliquaryv1alpha1

// Effect is a catalog record as sent to clients
type Effect struct {
	EffectID        string `json:"effect_id"`
	Label           string `json:"label"`
	Description     string `json:"description,omitempty"`
	RelicType       string `json:"relic_type,omitempty"`
	Category        string `json:"category,omitempty"`
	CompatibilityID string `json:"compatibility_id,omitempty"`
	StatusIconID    string `json:"status_icon_id,omitempty"`
	RollOrder       *int   `json:"roll_order,omitempty"`
	IconURL         string `json:"icon_url,omitempty"`
}

// SessionState is the caller-held session record
type SessionState struct {
	TypeChoice  string   `json:"type_choice,omitempty"`
	ColorMode   string   `json:"color_mode,omitempty"`
	RandomColor string   `json:"random_color,omitempty"`
	ShowIllegal bool     `json:"show_illegal,omitempty"`
	Categories  []string `json:"categories,omitempty"`
	Slots       []string `json:"slots,omitempty"`
}

// Event is one user action
type Event struct {
	Kind        string `json:"kind"`
	Slot        int32  `json:"slot,omitempty"`
	TypeChoice  string `json:"type_choice,omitempty"`
	ColorMode   string `json:"color_mode,omitempty"`
	ShowIllegal bool   `json:"show_illegal,omitempty"`
	Category    string `json:"category,omitempty"`
	EffectID    string `json:"effect_id,omitempty"`
}

// SlotView is one rendered slot
type SlotView struct {
	Slot                    int32     `json:"slot"`
	Locked                  bool      `json:"locked"`
	Category                string    `json:"category,omitempty"`
	BlockedCompatibilityIDs []string  `json:"blocked_compatibility_ids,omitempty"`
	Options                 []*Effect `json:"options"`
	Selected                *Effect   `json:"selected,omitempty"`
}

// OrderResolution is the canonical order of a full selection
type OrderResolution struct {
	InOrder bool      `json:"in_order"`
	Sorted  []*Effect `json:"sorted,omitempty"`
	Moved   []bool    `json:"moved,omitempty"`
}

// Asset is a resolved image
type Asset struct {
	Path     string `json:"path"`
	URL      string `json:"url"`
	Fallback bool   `json:"fallback,omitempty"`
}

// ClearedSlot is a slot emptied by the cascade
type ClearedSlot struct {
	Slot     int32  `json:"slot"`
	EffectID string `json:"effect_id"`
}

// View is everything a renderer needs after an event
type View struct {
	Slots             []*SlotView      `json:"slots"`
	CategoryOptions   []string         `json:"category_options"`
	EffectCount       int32            `json:"effect_count"`
	Stage             int32            `json:"stage"`
	ActiveSlot        int32            `json:"active_slot"`
	ActiveOptionCount int32            `json:"active_option_count"`
	CountLine         string           `json:"count_line"`
	Validity          string           `json:"validity"`
	Collisions        []string         `json:"collisions,omitempty"`
	Order             *OrderResolution `json:"order,omitempty"`
	Asset             *Asset           `json:"asset"`
	Color             string           `json:"color"`
	Status            string           `json:"status"`
	Cleared           []*ClearedSlot   `json:"cleared,omitempty"`
}

// StartSessionRequest seeds a new session
type StartSessionRequest struct {
	TypeChoice  string `json:"type_choice,omitempty"`
	ColorMode   string `json:"color_mode,omitempty"`
	ShowIllegal bool   `json:"show_illegal,omitempty"`
}

// StartSessionResponse is the initial state and view
type StartSessionResponse struct {
	SessionID string        `json:"session_id"`
	StartedAt int64         `json:"started_at"`
	State     *SessionState `json:"state"`
	View      *View         `json:"view"`
}

// ApplyEventRequest carries the session state and one event
type ApplyEventRequest struct {
	SessionID string        `json:"session_id,omitempty"`
	State     *SessionState `json:"state"`
	Event     *Event        `json:"event"`
}

// ApplyEventResponse is the new state and view
type ApplyEventResponse struct {
	State *SessionState `json:"state"`
	View  *View         `json:"view"`
}

// ListEffectsRequest filters the catalog
type ListEffectsRequest struct {
	TypeChoice string `json:"type_choice,omitempty"`
	Category   string `json:"category,omitempty"`
}

// ListEffectsResponse is the filtered catalog
type ListEffectsResponse struct {
	Effects    []*Effect `json:"effects"`
	Categories []string  `json:"categories"`
	Total      int32     `json:"total"`
}

// GetEffectRequest names one effect
type GetEffectRequest struct {
	EffectID string `json:"effect_id"`
}

// GetEffectResponse is one effect
type GetEffectResponse struct {
	Effect *Effect `json:"effect"`
}

// ListEligibleRequest asks for one slot's options
type ListEligibleRequest struct {
	TypeChoice  string   `json:"type_choice,omitempty"`
	Slots       []string `json:"slots,omitempty"`
	Slot        int32    `json:"slot"`
	Category    string   `json:"category,omitempty"`
	ShowIllegal bool     `json:"show_illegal,omitempty"`
}

// ListEligibleResponse is the slot's options
type ListEligibleResponse struct {
	Locked                  bool      `json:"locked"`
	BlockedCompatibilityIDs []string  `json:"blocked_compatibility_ids,omitempty"`
	EligibleCount           int32     `json:"eligible_count"`
	Options                 []*Effect `json:"options"`
}

// CheckValidityRequest holds one to three effect ids
type CheckValidityRequest struct {
	EffectIDs []string `json:"effect_ids"`
}

// CheckValidityResponse reports the validity
type CheckValidityResponse struct {
	Validity   string   `json:"validity"`
	Collisions []string `json:"collisions,omitempty"`
}

// ResolveOrderRequest holds three effect ids in slot order
type ResolveOrderRequest struct {
	EffectIDs []string `json:"effect_ids"`
}

// ResolveOrderResponse is the canonical order
type ResolveOrderResponse struct {
	Order *OrderResolution `json:"order"`
}

// ResolveAssetRequest names a relic image
type ResolveAssetRequest struct {
	TypeChoice string `json:"type_choice,omitempty"`
	Color      string `json:"color,omitempty"`
	Stage      int32  `json:"stage"`
}

// ResolveAssetResponse is the resolved image
type ResolveAssetResponse struct {
	Asset *Asset `json:"asset"`
}

// Package reliquary holds the value types of the relic composer: catalog
// effects, relic types, colors and the three-slot selection.
package reliquary

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityType is the rpg-toolkit entity type reported by effects
const EntityType = "reliquary_effect"

// Effect is one immutable catalog record
type Effect struct {
	ID              string
	Description     string
	RelicType       RelicType
	Category        string
	CompatibilityID string
	StatusIconID    string
	// RollOrder is nil when the record has no usable roll order
	RollOrder *int
}

// Label returns the display text, falling back to a placeholder built from the id
func (e *Effect) Label() string {
	if e.Description != "" {
		return e.Description
	}
	return fmt.Sprintf("(Effect %s)", e.ID)
}

// Order returns the roll order used for canonical sorting.
// Records without one sort last.
func (e *Effect) Order() int {
	if e == nil || e.RollOrder == nil {
		return math.MaxInt
	}
	return *e.RollOrder
}

// HasCompatibilityGroup reports whether the effect belongs to an exclusion group
func (e *Effect) HasCompatibilityGroup() bool {
	return e.CompatibilityID != ""
}

// GetID implements core.Entity
func (e *Effect) GetID() string {
	return e.ID
}

// GetType implements core.Entity
func (e *Effect) GetType() string {
	return EntityType
}

var _ core.Entity = (*Effect)(nil)

// effectJSON is the canonical wire shape written back out
type effectJSON struct {
	EffectID        string `json:"effectId"`
	Description     string `json:"description,omitempty"`
	RelicType       string `json:"relicType,omitempty"`
	EffectCategory  string `json:"effectCategory,omitempty"`
	CompatibilityID string `json:"compatibilityId,omitempty"`
	StatusIconID    string `json:"statusIconId,omitempty"`
	RollOrder       *int   `json:"rollOrder,omitempty"`
}

// MarshalJSON writes the canonical field names
func (e *Effect) MarshalJSON() ([]byte, error) {
	return json.Marshal(effectJSON{
		EffectID:        e.ID,
		Description:     e.Description,
		RelicType:       string(e.RelicType),
		EffectCategory:  e.Category,
		CompatibilityID: e.CompatibilityID,
		StatusIconID:    e.StatusIconID,
		RollOrder:       e.RollOrder,
	})
}

// UnmarshalJSON accepts both the canonical field names and the original
// data file names (EffectID, EffectDescription, ...). Ids may be numbers.
func (e *Effect) UnmarshalJSON(data []byte) error {
	var fields map[string]any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&fields); err != nil {
		return err
	}

	decoded, err := EffectFromFields(fields)
	if err != nil {
		return err
	}
	*e = *decoded
	return nil
}

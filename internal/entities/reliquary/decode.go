package reliquary

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Field aliases, canonical name first. Lookups are case-insensitive.
var (
	fieldEffectID        = []string{"effectId", "EffectID", "id"}
	fieldDescription     = []string{"description", "EffectDescription"}
	fieldRelicType       = []string{"relicType", "RelicType"}
	fieldCategory        = []string{"effectCategory", "EffectCategory", "category"}
	fieldCompatibilityID = []string{"compatibilityId", "CompatibilityID"}
	fieldStatusIconID    = []string{"statusIconId", "StatusIconID"}
	fieldRollOrder       = []string{"rollOrder", "RollOrder"}
)

// EffectFromFields builds an Effect from a loosely typed record, as produced
// by JSON (with UseNumber), TOML or a database row. Missing optional fields
// take their defaults; only a missing effect id is an error.
func EffectFromFields(fields map[string]any) (*Effect, error) {
	lookup := make(map[string]any, len(fields))
	for k, v := range fields {
		lookup[strings.ToLower(k)] = v
	}

	get := func(aliases []string) any {
		for _, a := range aliases {
			if v, ok := lookup[strings.ToLower(a)]; ok && v != nil {
				return v
			}
		}
		return nil
	}

	id := scalarString(get(fieldEffectID))
	if id == "" {
		return nil, fmt.Errorf("effect record is missing an effect id")
	}

	return &Effect{
		ID:              id,
		Description:     scalarString(get(fieldDescription)),
		RelicType:       ParseRelicType(scalarString(get(fieldRelicType))),
		Category:        scalarString(get(fieldCategory)),
		CompatibilityID: scalarString(get(fieldCompatibilityID)),
		StatusIconID:    scalarString(get(fieldStatusIconID)),
		RollOrder:       ParseRollOrder(get(fieldRollOrder)),
	}, nil
}

// ParseRollOrder converts a loosely typed roll order to an integer.
// Returns nil for missing or non-numeric values.
func ParseRollOrder(v any) *int {
	var n int
	switch t := v.(type) {
	case nil:
		return nil
	case int:
		n = t
	case int32:
		n = int(t)
	case int64:
		n = int(t)
	case float64:
		return orderFromFloat(t)
	case json.Number:
		return parseOrderString(t.String())
	case string:
		return parseOrderString(t)
	default:
		return nil
	}
	return &n
}

func parseOrderString(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return &n
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return orderFromFloat(f)
}

// orderFromFloat truncates f, saturating at the int range so huge orders
// still sort last and huge negative ones first
func orderFromFloat(f float64) *int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	var n int
	switch {
	case f >= float64(math.MaxInt):
		n = math.MaxInt
	case f <= float64(math.MinInt):
		n = math.MinInt
	default:
		n = int(f)
	}
	return &n
}

// scalarString renders ids and labels that may arrive as strings or numbers
func scalarString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

// Package engine implements the relic composition rules: relic type and
// category filtering, slot eligibility, selection validity and canonical
// roll ordering. Every function is pure and safe for concurrent use.
package engine

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/reliquary-api/internal/entities/reliquary"
)

// FilterByRelicType keeps the effects a relic of the chosen type may carry.
// Both-type effects are always kept; an unrecognized choice filters nothing.
func FilterByRelicType(effects []*reliquary.Effect, choice reliquary.TypeChoice) []*reliquary.Effect {
	out := make([]*reliquary.Effect, 0, len(effects))
	for _, e := range effects {
		if MatchesRelicType(e, choice) {
			out = append(out, e)
		}
	}
	return out
}

// MatchesRelicType reports whether a single effect passes the relic type filter
func MatchesRelicType(e *reliquary.Effect, choice reliquary.TypeChoice) bool {
	switch choice {
	case reliquary.TypeChoiceStandard:
		return e.RelicType == reliquary.RelicTypeStandard || e.RelicType == reliquary.RelicTypeBoth
	case reliquary.TypeChoiceDepthOfNight:
		return e.RelicType == reliquary.RelicTypeDepthOfNight || e.RelicType == reliquary.RelicTypeBoth
	case reliquary.TypeChoiceBoth:
		return e.RelicType == reliquary.RelicTypeBoth
	default:
		return true
	}
}

// FilterByCategory keeps effects whose category equals the trimmed choice.
// An empty choice means all categories and returns the input unchanged.
func FilterByCategory(effects []*reliquary.Effect, category string) []*reliquary.Effect {
	category = strings.TrimSpace(category)
	if category == "" {
		return effects
	}

	out := make([]*reliquary.Effect, 0, len(effects))
	for _, e := range effects {
		if strings.TrimSpace(e.Category) == category {
			out = append(out, e)
		}
	}
	return out
}

// Categories returns the distinct non-empty categories of the given effects
// in locale-aware ascending order. Callers pass the relic type filtered list
// and recompute whenever the type changes.
func Categories(effects []*reliquary.Effect) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, e := range effects {
		c := strings.TrimSpace(e.Category)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}

	collate.New(language.English).SortStrings(out)
	return out
}

package engine

import (
	"sort"

	"github.com/KirkDiggler/reliquary-api/internal/entities/reliquary"
)

// OrderResolution is the canonical ordering check of a full selection
type OrderResolution struct {
	InOrder bool
	// Sorted is nil when the selection is already in order
	Sorted []*reliquary.Effect
	// Moved flags, per original slot, whether a different effect sits there after sorting
	Moved [reliquary.SlotCount]bool
}

// ResolveOrder checks whether three effects are in ascending roll order and,
// when they are not, computes the stable sorted arrangement. Effects without
// a numeric roll order sort last; ties keep their original slot order.
func ResolveOrder(a, b, c *reliquary.Effect) OrderResolution {
	original := []*reliquary.Effect{a, b, c}

	if a.Order() <= b.Order() && b.Order() <= c.Order() {
		return OrderResolution{InOrder: true}
	}

	sorted := make([]*reliquary.Effect, len(original))
	copy(sorted, original)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order() < sorted[j].Order()
	})

	res := OrderResolution{Sorted: sorted}
	for i := range original {
		res.Moved[i] = original[i].ID != sorted[i].ID
	}
	return res
}

package engine

import "github.com/KirkDiggler/reliquary-api/internal/entities/reliquary"

// ComputeValidity reports whether two of the selected effects share a
// compatibility group. Nil entries (empty slots) are skipped. Fewer than two
// grouped effects is trivially valid.
func ComputeValidity(selected []*reliquary.Effect) reliquary.Validity {
	seen := NewIDSet()
	for _, e := range selected {
		if e == nil || !e.HasCompatibilityGroup() {
			continue
		}
		if seen.Has(e.CompatibilityID) {
			return reliquary.ValidityInvalid
		}
		seen.Add(e.CompatibilityID)
	}
	return reliquary.ValidityValid
}

// Collisions returns the compatibility groups that appear more than once
func Collisions(selected []*reliquary.Effect) []string {
	seen := NewIDSet()
	dup := NewIDSet()
	for _, e := range selected {
		if e == nil || !e.HasCompatibilityGroup() {
			continue
		}
		if seen.Has(e.CompatibilityID) {
			dup.Add(e.CompatibilityID)
		}
		seen.Add(e.CompatibilityID)
	}
	return dup.Sorted()
}

package testutils

import (
	"github.com/KirkDiggler/reliquary-api/internal/entities/reliquary"
)

// Fixture effect ids
const (
	EffectVigorA     = "1"
	EffectVigorB     = "2"
	EffectOpenStrike = "3"
	EffectNightWard  = "4"
	EffectLoose      = "5"
	EffectNoOrder    = "6"
)

// Order returns a pointer to a roll order value
func Order(n int) *int {
	return &n
}

// CreateTestCatalog returns a small catalog exercising every rule:
// two Standard effects sharing compatibility group A, a groupless Both
// effect, a Depth Of Night effect in group B, an effect of unknown type
// and one without a roll order.
func CreateTestCatalog() []*reliquary.Effect {
	return []*reliquary.Effect{
		{
			ID:              EffectVigorA,
			Description:     "Vigor +1",
			RelicType:       reliquary.RelicTypeStandard,
			Category:        "Stats",
			CompatibilityID: "A",
			StatusIconID:    "101",
			RollOrder:       Order(1),
		},
		{
			ID:              EffectVigorB,
			Description:     "Vigor +2",
			RelicType:       reliquary.RelicTypeStandard,
			Category:        "Stats",
			CompatibilityID: "A",
			RollOrder:       Order(2),
		},
		{
			ID:        EffectOpenStrike,
			RelicType: reliquary.RelicTypeBoth,
			Category:  "Attack",
			RollOrder: Order(1),
		},
		{
			ID:              EffectNightWard,
			Description:     "Night ward",
			RelicType:       reliquary.RelicTypeDepthOfNight,
			Category:        "Defense",
			CompatibilityID: "B",
			RollOrder:       Order(5),
		},
		{
			ID:        EffectLoose,
			RelicType: reliquary.RelicTypeUnknown,
			Category:  "Attack",
			RollOrder: Order(3),
		},
		{
			ID:        EffectNoOrder,
			RelicType: reliquary.RelicTypeBoth,
			Category:  "Utility",
		},
	}
}

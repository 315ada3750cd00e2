package reliquary

import "strings"

// RelicType is the relic family an effect may appear on
type RelicType string

// Relic types carried by catalog records
const (
	RelicTypeStandard     RelicType = "Standard"
	RelicTypeDepthOfNight RelicType = "DepthOfNight"
	RelicTypeBoth         RelicType = "Both"
	RelicTypeUnknown      RelicType = ""
)

// ParseRelicType normalizes a catalog relic type. "Depth Of Night" and
// "DepthOfNight" are the same family; anything unrecognized is Unknown.
func ParseRelicType(s string) RelicType {
	switch squash(s) {
	case "standard":
		return RelicTypeStandard
	case "depthofnight":
		return RelicTypeDepthOfNight
	case "both":
		return RelicTypeBoth
	default:
		return RelicTypeUnknown
	}
}

// TypeChoice is the relic type picked by the user, including the browse-only wildcard
type TypeChoice string

// Relic type choices
const (
	TypeChoiceStandard     TypeChoice = "Standard"
	TypeChoiceDepthOfNight TypeChoice = "DepthOfNight"
	TypeChoiceBoth         TypeChoice = "Both"
	TypeChoiceAll          TypeChoice = "All"
)

// ParseTypeChoice parses a user supplied relic type choice. Unrecognized
// values mean "no restriction".
func ParseTypeChoice(s string) TypeChoice {
	switch squash(s) {
	case "standard":
		return TypeChoiceStandard
	case "depthofnight":
		return TypeChoiceDepthOfNight
	case "both":
		return TypeChoiceBoth
	default:
		return TypeChoiceAll
	}
}

// IsConcrete reports whether the choice names a renderable relic type
func (c TypeChoice) IsConcrete() bool {
	return c == TypeChoiceStandard || c == TypeChoiceDepthOfNight || c == TypeChoiceBoth
}

// Color is a relic color
type Color string

// Relic colors
const (
	ColorRed    Color = "Red"
	ColorBlue   Color = "Blue"
	ColorYellow Color = "Yellow"
	ColorGreen  Color = "Green"
)

// Colors is the fixed set random colors are drawn from
var Colors = []Color{ColorRed, ColorBlue, ColorYellow, ColorGreen}

// ColorMode is either a fixed color or Random
type ColorMode string

// ColorModeRandom draws a new color whenever the composition changes
const ColorModeRandom ColorMode = "Random"

// ParseColorMode parses a color mode, case-insensitively.
// Returns false for anything that is neither a known color nor Random.
func ParseColorMode(s string) (ColorMode, bool) {
	v := squash(s)
	if v == "random" {
		return ColorModeRandom, true
	}
	for _, c := range Colors {
		if strings.ToLower(string(c)) == v {
			return ColorMode(c), true
		}
	}
	return "", false
}

// SizeTier is the relic image size, driven by how many slots are filled
type SizeTier string

// Size tiers
const (
	SizeTierNone   SizeTier = ""
	SizeTierSmall  SizeTier = "small"
	SizeTierMedium SizeTier = "medium"
	SizeTierLarge  SizeTier = "large"
)

// SizeTierForStage maps a stage (0-3) to a size tier
func SizeTierForStage(stage int) SizeTier {
	switch {
	case stage <= 0:
		return SizeTierNone
	case stage == 1:
		return SizeTierSmall
	case stage == 2:
		return SizeTierMedium
	default:
		return SizeTierLarge
	}
}

// Validity is the legality of a selection
type Validity string

// Validity states. ValidityNone is reported when nothing is selected yet.
const (
	ValidityNone    Validity = "none"
	ValidityValid   Validity = "valid"
	ValidityInvalid Validity = "invalid"
)

func squash(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}

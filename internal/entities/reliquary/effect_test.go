package reliquary_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/reliquary-api/internal/entities/reliquary"
)

type EffectTestSuite struct {
	suite.Suite
}

func TestEffectSuite(t *testing.T) {
	suite.Run(t, new(EffectTestSuite))
}

func (s *EffectTestSuite) TestUnmarshal_OriginalFieldNames() {
	raw := `{
		"EffectID": 7001,
		"EffectDescription": "Improved Fire Attack Power",
		"RelicType": "Depth Of Night",
		"EffectCategory": " Attack ",
		"CompatibilityID": 120,
		"StatusIconID": "fire_up",
		"RollOrder": "4"
	}`

	var e reliquary.Effect
	s.Require().NoError(json.Unmarshal([]byte(raw), &e))

	s.Equal("7001", e.ID)
	s.Equal("Improved Fire Attack Power", e.Description)
	s.Equal(reliquary.RelicTypeDepthOfNight, e.RelicType)
	s.Equal("Attack", e.Category)
	s.Equal("120", e.CompatibilityID)
	s.Equal("fire_up", e.StatusIconID)
	s.Equal(4, e.Order())
}

func (s *EffectTestSuite) TestUnmarshal_CanonicalFieldNames() {
	raw := `{"effectId":"a1","relicType":"Both","compatibilityId":null,"rollOrder":2}`

	var e reliquary.Effect
	s.Require().NoError(json.Unmarshal([]byte(raw), &e))

	s.Equal("a1", e.ID)
	s.Equal(reliquary.RelicTypeBoth, e.RelicType)
	s.False(e.HasCompatibilityGroup())
	s.Equal(2, e.Order())
}

func (s *EffectTestSuite) TestUnmarshal_MissingID() {
	var e reliquary.Effect
	err := json.Unmarshal([]byte(`{"EffectDescription":"orphan"}`), &e)
	s.Error(err)
	s.Contains(err.Error(), "missing an effect id")
}

func (s *EffectTestSuite) TestRollOrderDefaults() {
	testCases := []struct {
		name     string
		value    any
		expected int
	}{
		{name: "missing", value: nil, expected: math.MaxInt},
		{name: "non-numeric string", value: "soon", expected: math.MaxInt},
		{name: "empty string", value: "  ", expected: math.MaxInt},
		{name: "numeric string", value: " 12 ", expected: 12},
		{name: "json number", value: json.Number("3"), expected: 3},
		{name: "float", value: float64(5), expected: 5},
		{name: "int64 from toml", value: int64(9), expected: 9},
		{name: "bool is not numeric", value: true, expected: math.MaxInt},
		{name: "huge numeric string", value: "99999999999999999999", expected: math.MaxInt},
		{name: "huge negative string", value: "-99999999999999999999", expected: math.MinInt},
		{name: "huge json number", value: json.Number("1e30"), expected: math.MaxInt},
		{name: "huge float", value: 1e300, expected: math.MaxInt},
		{name: "huge negative float", value: -1e300, expected: math.MinInt},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			e := &reliquary.Effect{ID: "x", RollOrder: reliquary.ParseRollOrder(tc.value)}
			s.Equal(tc.expected, e.Order())
		})
	}
}

func (s *EffectTestSuite) TestUnmarshal_HugeRollOrderSortsLast() {
	var huge, small reliquary.Effect
	s.Require().NoError(json.Unmarshal([]byte(`{"effectId":"b","rollOrder":"99999999999999999999"}`), &huge))
	s.Require().NoError(json.Unmarshal([]byte(`{"effectId":"a","rollOrder":5}`), &small))

	s.Equal(math.MaxInt, huge.Order())
	s.Equal(5, small.Order())
	s.Greater(huge.Order(), small.Order())
}

func (s *EffectTestSuite) TestLabelPlaceholder() {
	s.Equal("(Effect 42)", (&reliquary.Effect{ID: "42"}).Label())
	s.Equal("Vigor", (&reliquary.Effect{ID: "42", Description: "Vigor"}).Label())
}

func (s *EffectTestSuite) TestMarshalRoundTripKeepsCanonicalNames() {
	order := 1
	e := &reliquary.Effect{
		ID:              "9",
		RelicType:       reliquary.RelicTypeStandard,
		CompatibilityID: "A",
		RollOrder:       &order,
	}

	data, err := json.Marshal(e)
	s.Require().NoError(err)
	s.JSONEq(`{"effectId":"9","relicType":"Standard","compatibilityId":"A","rollOrder":1}`, string(data))
}

func (s *EffectTestSuite) TestParseTypeChoice() {
	s.Equal(reliquary.TypeChoiceDepthOfNight, reliquary.ParseTypeChoice("Depth Of Night"))
	s.Equal(reliquary.TypeChoiceStandard, reliquary.ParseTypeChoice("standard"))
	s.Equal(reliquary.TypeChoiceBoth, reliquary.ParseTypeChoice("Both"))
	s.Equal(reliquary.TypeChoiceAll, reliquary.ParseTypeChoice("whatever"))
	s.False(reliquary.TypeChoiceAll.IsConcrete())
}

func (s *EffectTestSuite) TestParseColorMode() {
	mode, ok := reliquary.ParseColorMode("random")
	s.True(ok)
	s.Equal(reliquary.ColorModeRandom, mode)

	mode, ok = reliquary.ParseColorMode("GREEN")
	s.True(ok)
	s.Equal(reliquary.ColorMode(reliquary.ColorGreen), mode)

	_, ok = reliquary.ParseColorMode("purple")
	s.False(ok)
}

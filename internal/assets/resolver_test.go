package assets_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/reliquary-api/internal/assets"
	"github.com/KirkDiggler/reliquary-api/internal/entities/reliquary"
)

func TestRelicImage(t *testing.T) {
	testCases := []struct {
		name   string
		choice reliquary.TypeChoice
		color  reliquary.Color
		stage  int
		want   string
	}{
		{name: "standard default", choice: reliquary.TypeChoiceStandard, stage: 0, want: "relics/default/standard.png"},
		{name: "depth default", choice: reliquary.TypeChoiceDepthOfNight, color: reliquary.ColorRed, stage: 0, want: "relics/default/depth_of_night.png"},
		{name: "all uses standard", choice: reliquary.TypeChoiceAll, color: reliquary.ColorBlue, stage: 1, want: "relics/standard/small/blue.png"},
		{name: "both uses standard", choice: reliquary.TypeChoiceBoth, color: reliquary.ColorGreen, stage: 2, want: "relics/standard/medium/green.png"},
		{name: "depth large", choice: reliquary.TypeChoiceDepthOfNight, color: reliquary.ColorYellow, stage: 3, want: "relics/depth/large/yellow.png"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, assets.RelicImage(tc.choice, tc.color, tc.stage))
		})
	}
}

func TestResolver_BaseURL(t *testing.T) {
	r, err := assets.NewResolver(&assets.Config{BaseURL: "https://cdn.example.com/static/"})
	require.NoError(t, err)

	a := r.Relic(reliquary.TypeChoiceStandard, reliquary.ColorRed, 1)
	assert.Equal(t, "relics/standard/small/red.png", a.Path)
	assert.Equal(t, "https://cdn.example.com/static/relics/standard/small/red.png", a.URL)
	assert.False(t, a.Fallback)

	assert.Equal(t, "https://cdn.example.com/static/icons/reliquary/1234.png", r.Icon("1234"))
	assert.Equal(t, "", r.Icon(""))
}

func TestResolver_FallbackWhenMissing(t *testing.T) {
	fsys := fstest.MapFS{
		"relics/depth/small/red.png":        {Data: []byte("png")},
		"relics/default/depth_of_night.png": {Data: []byte("png")},
	}
	r, err := assets.NewResolver(&assets.Config{FS: fsys})
	require.NoError(t, err)

	a := r.Relic(reliquary.TypeChoiceDepthOfNight, reliquary.ColorRed, 1)
	assert.Equal(t, "relics/depth/small/red.png", a.Path)
	assert.False(t, a.Fallback)

	a = r.Relic(reliquary.TypeChoiceDepthOfNight, reliquary.ColorBlue, 2)
	assert.Equal(t, "relics/default/depth_of_night.png", a.Path)
	assert.True(t, a.Fallback)

	a = r.Relic(reliquary.TypeChoiceDepthOfNight, reliquary.ColorBlue, 0)
	assert.False(t, a.Fallback)
}

func TestNewResolver_NilConfig(t *testing.T) {
	_, err := assets.NewResolver(nil)
	assert.Error(t, err)
}

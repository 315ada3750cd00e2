// Package assets maps a relic type, color and stage to image paths
package assets

import (
	"io/fs"
	"net/url"
	"path"
	"strings"

	"github.com/KirkDiggler/reliquary-api/internal/entities/reliquary"
	"github.com/KirkDiggler/reliquary-api/internal/errors"
)

// Image path layout relative to the asset root
const (
	DefaultStandardImage = "relics/default/standard.png"
	DefaultDepthImage    = "relics/default/depth_of_night.png"
	iconDir              = "icons/reliquary"
)

// Asset is a resolved image reference
type Asset struct {
	// Path is relative to the asset root
	Path string
	// URL is Path joined under the configured base, or Path when no base is set
	URL string
	// Fallback is set when the colored image was missing and the type default was used
	Fallback bool
}

// Config contains configuration for the resolver
type Config struct {
	// BaseURL is an optional URL or path prefix
	BaseURL string
	// FS is optional; when set, missing colored images fall back to the default
	FS fs.FS
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL != "" {
		if _, err := url.Parse(cfg.BaseURL); err != nil {
			return errors.InvalidArgumentf("invalid asset base url: %v", err)
		}
	}
	return nil
}

// Resolver resolves relic and icon images
type Resolver struct {
	base string
	fsys fs.FS
}

// NewResolver creates a resolver
func NewResolver(cfg *Config) (*Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Resolver{
		base: strings.TrimRight(cfg.BaseURL, "/"),
		fsys: cfg.FS,
	}, nil
}

// DefaultImage is the stage 0 image for a relic type choice.
// Only DepthOfNight uses the depth images.
func DefaultImage(choice reliquary.TypeChoice) string {
	if choice == reliquary.TypeChoiceDepthOfNight {
		return DefaultDepthImage
	}
	return DefaultStandardImage
}

// RelicImage is the relative path of the colored image for a stage 1-3.
// Stage 0 returns the type default.
func RelicImage(choice reliquary.TypeChoice, color reliquary.Color, stage int) string {
	tier := reliquary.SizeTierForStage(stage)
	if tier == reliquary.SizeTierNone || color == "" {
		return DefaultImage(choice)
	}

	family := "standard"
	if choice == reliquary.TypeChoiceDepthOfNight {
		family = "depth"
	}
	return path.Join("relics", family, string(tier), strings.ToLower(string(color))+".png")
}

// Relic resolves the relic image
func (r *Resolver) Relic(choice reliquary.TypeChoice, color reliquary.Color, stage int) Asset {
	p := RelicImage(choice, color, stage)
	fallback := false

	if r.fsys != nil && stage > 0 {
		if _, err := fs.Stat(r.fsys, p); err != nil {
			p = DefaultImage(choice)
			fallback = true
		}
	}

	return Asset{Path: p, URL: r.join(p), Fallback: fallback}
}

// Icon resolves a status icon; empty when the effect has no icon id
func (r *Resolver) Icon(statusIconID string) string {
	statusIconID = strings.TrimSpace(statusIconID)
	if statusIconID == "" {
		return ""
	}
	return r.join(path.Join(iconDir, statusIconID+".png"))
}

func (r *Resolver) join(p string) string {
	if r.base == "" {
		return p
	}
	return r.base + "/" + p
}

package catalog

//go:generate mockgen -destination=mock/mock_source.go -package=catalogmock github.com/KirkDiggler/reliquary-api/internal/catalog Source

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/KirkDiggler/reliquary-api/internal/entities/reliquary"
	"github.com/KirkDiggler/reliquary-api/internal/errors"
)

// Source reads the raw effect records from wherever the catalog lives
type Source interface {
	// Fetch reads every record once.
	// Returns errors.Unavailable when the source cannot be reached
	// Returns errors.DataLoss when the data cannot be decoded
	Fetch(ctx context.Context) ([]*reliquary.Effect, error)
}

// Load fetches from the source and builds the catalog. Any failure is fatal
// for the caller; no partial catalog is ever returned.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	if src == nil {
		return nil, errors.InvalidArgument("catalog source is required")
	}

	effects, err := src.Fetch(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog")
	}

	c, err := New(effects)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build catalog")
	}

	slog.InfoContext(ctx, "catalog loaded", "effect_count", c.Len())
	return c, nil
}

// FileSource reads a JSON or TOML catalog from disk
type FileSource struct {
	Path string
}

// Fetch implements Source. Files ending in .toml are decoded as TOML,
// everything else as JSON.
func (f *FileSource) Fetch(ctx context.Context) ([]*reliquary.Effect, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "catalog read canceled")
	}
	if strings.TrimSpace(f.Path) == "" {
		return nil, errors.InvalidArgument("catalog path is required")
	}

	file, err := os.Open(filepath.Clean(f.Path))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to open catalog file").
			WithMeta("path", f.Path)
	}
	defer func() {
		_ = file.Close() // nolint:errcheck // read-only handle
	}()

	if strings.EqualFold(filepath.Ext(f.Path), ".toml") {
		return DecodeTOML(file)
	}
	return DecodeJSON(file)
}

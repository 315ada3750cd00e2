// Package effects provides persistent storage for the effect catalog
package effects

import (
	"context"

	"github.com/KirkDiggler/reliquary-api/internal/entities/reliquary"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=effectsmock github.com/KirkDiggler/reliquary-api/internal/repositories/effects Repository

// ListInput contains parameters for reading the stored catalog
type ListInput struct{}

// ListOutput contains the stored effects in catalog order
type ListOutput struct {
	Effects []*reliquary.Effect
}

// ReplaceInput contains the full catalog to store
type ReplaceInput struct {
	Effects []*reliquary.Effect
}

// ReplaceOutput reports how many records were written
type ReplaceOutput struct {
	Count int
}

// Repository defines the storage operations for a catalog. The catalog is
// written whole and read whole; there is no per-effect update.
type Repository interface {
	// List returns every stored effect.
	// Returns errors.NotFound when no catalog has been stored
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Replace swaps the stored catalog for the given effects
	Replace(ctx context.Context, input ReplaceInput) (*ReplaceOutput, error)
}

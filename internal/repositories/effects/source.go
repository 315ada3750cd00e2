package effects

import (
	"context"

	"github.com/KirkDiggler/reliquary-api/internal/catalog"
	"github.com/KirkDiggler/reliquary-api/internal/entities/reliquary"
	"github.com/KirkDiggler/reliquary-api/internal/errors"
)

type repositorySource struct {
	repo Repository
}

// AsSource exposes a repository as a catalog source
func AsSource(repo Repository) catalog.Source {
	return &repositorySource{repo: repo}
}

func (s *repositorySource) Fetch(ctx context.Context) ([]*reliquary.Effect, error) {
	out, err := s.repo.List(ctx, ListInput{})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "stored catalog is missing")
		}
		return nil, err
	}
	return out.Effects, nil
}

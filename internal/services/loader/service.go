// Package loader opens catalog sources by URI and moves catalogs between them.
//
// Supported source URIs:
//
//	reliquary.json, file:///data/reliquary.toml   local JSON or TOML file
//	https://host/reliquary.json                   remote JSON document
//	redis://host:6379/reliquary:catalog:effects   JSON array under a Redis key
//	sqlite:///var/lib/reliquary/catalog.db        effects table in SQLite
package loader

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/KirkDiggler/reliquary-api/internal/catalog"
	"github.com/KirkDiggler/reliquary-api/internal/clients/remote"
	"github.com/KirkDiggler/reliquary-api/internal/errors"
	redisclient "github.com/KirkDiggler/reliquary-api/internal/redis"
	"github.com/KirkDiggler/reliquary-api/internal/repositories/effects"
)

// Service loads and imports effect catalogs
type Service interface {
	// Load reads the catalog once from the source URI.
	// Any failure is fatal; no partial catalog is returned.
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)

	// Import copies a catalog from one URI into a writable store (redis or sqlite)
	Import(ctx context.Context, input *ImportInput) (*ImportOutput, error)
}

// LoadInput names the source to read
type LoadInput struct {
	Source string
}

// LoadOutput holds the validated catalog
type LoadOutput struct {
	Catalog *catalog.Catalog
}

// ImportInput names the source and the writable target
type ImportInput struct {
	Source string
	Target string
}

// ImportOutput reports how many effects were written
type ImportOutput struct {
	Count int
}

// Config contains configuration for the loader
type Config struct {
	// Timeout bounds a single load (optional, defaults to 30 seconds)
	Timeout time.Duration
	// RedisOptions are passed to redis sources and targets (optional)
	RedisOptions *redisclient.Options
}

// Validate validates the Config and sets defaults
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Timeout < 0 {
		return errors.InvalidArgument("timeout cannot be negative")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return nil
}

type service struct {
	timeout      time.Duration
	redisOptions *redisclient.Options
}

// New creates a loader service
func New(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &service{
		timeout:      cfg.Timeout,
		redisOptions: cfg.RedisOptions,
	}, nil
}

func (s *service) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	src, closer, err := s.openSource(ctx, input.Source)
	if err != nil {
		return nil, err
	}
	defer closeQuietly(ctx, closer)

	c, err := catalog.Load(ctx, src)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog").WithMeta("source", redact(input.Source))
	}

	return &LoadOutput{Catalog: c}, nil
}

func (s *service) Import(ctx context.Context, input *ImportInput) (*ImportOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	loaded, err := s.Load(ctx, &LoadInput{Source: input.Source})
	if err != nil {
		return nil, err
	}

	repo, closer, err := s.openRepository(ctx, input.Target)
	if err != nil {
		return nil, err
	}
	defer closeQuietly(ctx, closer)

	out, err := repo.Replace(ctx, effects.ReplaceInput{Effects: loaded.Catalog.Effects()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store catalog").WithMeta("target", redact(input.Target))
	}

	slog.InfoContext(ctx, "catalog imported",
		"source", redact(input.Source),
		"target", redact(input.Target),
		"effect_count", out.Count)

	return &ImportOutput{Count: out.Count}, nil
}

func (s *service) openSource(ctx context.Context, uri string) (catalog.Source, io.Closer, error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return nil, nil, errors.InvalidArgument("catalog source is required")
	}

	scheme, rest := splitScheme(uri)
	switch scheme {
	case "", "file":
		return &catalog.FileSource{Path: rest}, nil, nil
	case "http", "https":
		src, err := remote.New(&remote.Config{URL: uri, HTTPTimeout: s.timeout})
		return src, nil, err
	case "redis", "sqlite":
		repo, closer, err := s.openRepository(ctx, uri)
		if err != nil {
			return nil, nil, err
		}
		return effects.AsSource(repo), closer, nil
	default:
		return nil, nil, errors.InvalidArgumentf("unsupported catalog scheme %q", scheme).
			WithMeta("source", redact(uri))
	}
}

// redisOptionsFor layers the uri's userinfo over the configured options
func (s *service) redisOptionsFor(u *url.URL) *redisclient.Options {
	var opts redisclient.Options
	if s.redisOptions != nil {
		opts = *s.redisOptions
	}
	if u.User != nil {
		opts.Username = u.User.Username()
		opts.Password, _ = u.User.Password()
	}
	return &opts
}

func (s *service) openRepository(ctx context.Context, uri string) (effects.Repository, io.Closer, error) {
	scheme, rest := splitScheme(strings.TrimSpace(uri))
	switch scheme {
	case "redis":
		u, err := url.Parse(uri)
		if err != nil || u.Host == "" {
			return nil, nil, errors.InvalidArgumentf("invalid redis uri %q", redact(uri))
		}
		client, err := redisclient.NewClient(u.Host, s.redisOptionsFor(u))
		if err != nil {
			return nil, nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to create redis client")
		}
		repo, err := effects.NewRedis(&effects.RedisConfig{
			Client: client,
			Key:    strings.TrimPrefix(u.Path, "/"),
		})
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return repo, client, nil
	case "sqlite":
		repo, err := effects.NewSQLite(ctx, &effects.SQLiteConfig{Path: rest})
		if err != nil {
			return nil, nil, err
		}
		return repo, repo, nil
	default:
		return nil, nil, errors.InvalidArgumentf("catalog target must be redis:// or sqlite://, got %q", redact(uri))
	}
}

// splitScheme returns the lowercased scheme and the remainder after "://".
// A bare path has no scheme.
func splitScheme(uri string) (string, string) {
	i := strings.Index(uri, "://")
	if i <= 0 {
		return "", uri
	}
	return strings.ToLower(uri[:i]), uri[i+3:]
}

// redact strips credentials from a URI before it is logged
func redact(uri string) string {
	u, err := url.Parse(uri)
	if err != nil || u.User == nil {
		return uri
	}
	return u.Redacted()
}

func closeQuietly(ctx context.Context, c io.Closer) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		slog.WarnContext(ctx, "failed to close catalog store", "error", err)
	}
}

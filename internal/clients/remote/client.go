// Package remote is the HTTP client for a hosted effect catalog
package remote

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/KirkDiggler/reliquary-api/internal/catalog"
	"github.com/KirkDiggler/reliquary-api/internal/entities/reliquary"
	"github.com/KirkDiggler/reliquary-api/internal/errors"
)

// Config contains configuration options for the remote catalog client
type Config struct {
	// URL of the catalog document (JSON)
	URL string
	// HTTPTimeout for the request (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// HTTPClient overrides the default client (optional)
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("url", cfg.URL, vb)
	if err := vb.Build(); err != nil {
		return err
	}

	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	return nil
}

type client struct {
	url        string
	httpClient *http.Client
}

// New creates a catalog source that fetches the catalog over HTTP
func New(cfg *Config) (catalog.Source, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.HTTPTimeout,
		}
	}

	return &client{
		url:        cfg.URL,
		httpClient: httpClient,
	}, nil
}

// Fetch implements catalog.Source. Any non-2xx status is Unavailable.
func (c *client) Fetch(ctx context.Context) ([]*reliquary.Effect, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid catalog url").
			WithMeta("url", c.url)
	}
	req.Header.Set("Accept", "application/json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to fetch catalog").
			WithMeta("url", c.url)
	}
	defer func() {
		_ = resp.Body.Close() // nolint:errcheck // response already consumed
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Unavailablef("catalog host returned %d", resp.StatusCode).
			WithMeta("url", c.url).
			WithMeta("status", resp.StatusCode)
	}

	effects, err := catalog.DecodeJSON(resp.Body)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "fetched remote catalog", "url", c.url, "record_count", len(effects))
	return effects, nil
}

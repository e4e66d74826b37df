// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package remote queries the api-ninjas animals API for records missing
// from the local dataset.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/pdiddy/bestiary/internal/httputil"
	"github.com/pdiddy/bestiary/pkg/types"
)

// animalsBase is the animals search endpoint. Declared as a var so tests can
// substitute an httptest server.
var animalsBase = "https://api.api-ninjas.com/v1/animals"

// PlaceholderKeys are credential values shipped in templates; they are
// treated the same as no credential at all.
var PlaceholderKeys = []string{
	"YOUR_API_KEY_HERE",
	"MISSING_API_KEY_OR_DOTENV_NOT_LOADED",
}

const (
	defaultRateLimit = 1
	defaultBurst     = 3
	defaultUserAgent = "bestiary/dev"
)

// Client searches the animals API by name.
type Client struct {
	client    *http.Client
	baseURL   string
	apiKey    string
	userAgent string
	limiter   *rate.Limiter
	logger    *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client built from the config.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.client = c }
}

// WithLogger attaches a logger; the default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(cl *Client) { cl.logger = l }
}

// NewClient builds a Client from cfg. Zero values fall back to defaults.
func NewClient(cfg types.RemoteConfig, opts ...Option) *Client {
	limit := cfg.RateLimit
	if limit <= 0 {
		limit = defaultRateLimit
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = defaultBurst
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = animalsBase
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}

	c := &Client{
		client:    httputil.NewClient(cfg.HTTPConfig),
		baseURL:   baseURL,
		apiKey:    strings.TrimSpace(cfg.APIKey),
		userAgent: ua,
		limiter:   rate.NewLimiter(rate.Limit(limit), burst),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckCredential reports a *types.ConfigError when the API key is empty or
// still a placeholder.
func (c *Client) CheckCredential() error {
	if c.apiKey == "" {
		return &types.ConfigError{Setting: "api key", Reason: "no API key configured"}
	}
	for _, p := range PlaceholderKeys {
		if c.apiKey == p {
			return &types.ConfigError{Setting: "api key", Reason: "API key is still the placeholder value"}
		}
	}
	return nil
}

// Search returns the API's records for query in the order the API sent
// them. An empty slice with a nil error means the API knows no such
// animal. The credential is checked before any request is made.
func (c *Client) Search(ctx context.Context, query string) ([]types.RemoteRecord, error) {
	if err := c.CheckCredential(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("empty animals query")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &types.NetworkError{URL: c.baseURL, Err: err}
	}

	reqURL := c.baseURL + "?" + url.Values{"name": {query}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("querying animals API", zap.String("query", query))

	resp, err := httputil.Do(ctx, c.client, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var records []types.RemoteRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, &types.NetworkError{URL: c.baseURL, Err: fmt.Errorf("parsing animals response: %w", err)}
	}

	c.logger.Debug("animals API responded", zap.String("query", query), zap.Int("results", len(records)))
	if records == nil {
		records = []types.RemoteRecord{}
	}
	return records, nil
}

package firefly

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"

	"github.com/khmm12/firefly-exporter/internal/ports"
)

const (
	apiPrefix   = "/api/v1"
	contentType = "application/vnd.api+json"

	maxBodySize = 16 << 20
)

type Client struct {
	logger  *slog.Logger
	baseURL *url.URL
	http    *http.Client
	limiter *rate.Limiter
}

type Option func(*options)

type options struct {
	wrapTransport []func(http.RoundTripper) http.RoundTripper
}

// WithTransportWrapper decorates the transport used for every API request,
// e.g. with metrics instrumentation.
func WithTransportWrapper(wrap func(http.RoundTripper) http.RoundTripper) Option {
	return func(o *options) {
		o.wrapTransport = append(o.wrapTransport, wrap)
	}
}

func New(logger *slog.Logger, cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	baseURL, err := parseBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("firefly: failed to parse base url: %w", err)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{
		InsecureSkipVerify: !cfg.VerifyTLS, //nolint:gosec // user-configured
	}

	var rt http.RoundTripper = &bearerRoundTripper{
		base:      transport,
		token:     cfg.Token,
		userAgent: cfg.UserAgent,
	}

	for _, wrap := range o.wrapTransport {
		rt = wrap(rt)
	}

	limit := rate.Inf
	burst := 0
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
		burst = max(1, int(cfg.RateLimit))
	}

	return &Client{
		logger:  logger,
		baseURL: baseURL,
		http: &http.Client{
			Transport: rt,
			Timeout:   cfg.Timeout,
		},
		limiter: rate.NewLimiter(limit, burst),
	}, nil
}

// BaseURL returns the normalized installation URL the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// fetch issues a GET against endpoint and decodes the JSON body into out.
// Non-2xx responses are decoded like any other document; only a body that is
// not JSON is rejected.
func (c *Client) fetch(ctx context.Context, endpoint string, query url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &ports.TransportError{Endpoint: endpoint, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpointURL(endpoint, query), nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", endpoint, err)
	}

	req.Header.Set("Accept", contentType)

	c.logger.DebugContext(ctx, "Fetching firefly resource", slog.String("endpoint", endpoint), slog.String("query", query.Encode()))

	resp, err := c.http.Do(req)
	if err != nil {
		return &ports.TransportError{Endpoint: endpoint, Err: err}
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return &ports.TransportError{Endpoint: endpoint, Err: fmt.Errorf("failed to read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.WarnContext(ctx, "Unexpected firefly response status",
			slog.String("endpoint", endpoint),
			slog.Int("status", resp.StatusCode),
		)
	}

	if !json.Valid(body) {
		return &ports.MalformedResponseError{
			Endpoint: endpoint,
			Reason:   fmt.Sprintf("body is not JSON (status %d)", resp.StatusCode),
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &ports.MalformedResponseError{Endpoint: endpoint, Reason: "unexpected document shape", Err: err}
	}

	return nil
}

func (c *Client) endpointURL(endpoint string, query url.Values) string {
	u := c.baseURL.JoinPath(apiPrefix, endpoint)
	u.RawQuery = query.Encode()

	return u.String()
}

type bearerRoundTripper struct {
	base      http.RoundTripper
	token     string
	userAgent string
}

func (t *bearerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+t.token)

	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}

	return t.base.RoundTrip(req)
}

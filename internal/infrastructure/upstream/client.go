// Package upstream contains the REST clients for the restaurant backend API.
// The backend is the system of record for every resource; these clients hold
// no state beyond the connection itself. No call is retried — failures
// surface immediately to the calling action.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/rs/zerolog"

	"github.com/comandero/dashboard-gateway/internal/api/metrics"
	"github.com/comandero/dashboard-gateway/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// Client is the shared HTTP transport for all resource clients: base URL
// resolution, JSON codec, bearer token injection, and typed error mapping. A
// 401 maps to domain.ErrUnauthorized so the top-level error handler — not
// this layer — can decide about session teardown and redirects.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	log        zerolog.Logger
}

// New creates a Client for the given absolute base URL.
func New(baseURL string, timeout time.Duration, log zerolog.Logger) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse upstream url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("upstream url must be absolute")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    parsed,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}, nil
}

// Ping reports whether the backend answers HTTP at all. Any status code
// counts as reachable; readiness cares about connectivity, not auth.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL.String(), nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// request describes one upstream call.
type request struct {
	method   string
	path     string
	query    url.Values
	token    string
	body     any
	resource string // metrics label
	// enveloped marks endpoints that wrap their payload in a
	// {success, message, data} envelope. The backend is inconsistent about
	// this; each call site declares the shape its endpoint uses.
	enveloped bool
}

// envelope is the wrapper some endpoints put around their payload.
type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) do(ctx context.Context, r request, out any) error {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, r.path)
	if len(r.query) > 0 {
		endpoint.RawQuery = r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("%s %s: encode body: %w", r.method, r.path, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, endpoint.String(), body)
	if err != nil {
		return fmt.Errorf("%s %s: %w", r.method, r.path, err)
	}
	req.Header.Set("Accept", "application/json")
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(r.resource, "error").Inc()
		return fmt.Errorf("%s %s: %w", r.method, r.path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		metrics.UpstreamRequestsTotal.WithLabelValues(r.resource, "unauthorized").Inc()
		return fmt.Errorf("%s %s: %w", r.method, r.path, domain.ErrUnauthorized)
	case resp.StatusCode == http.StatusForbidden:
		metrics.UpstreamRequestsTotal.WithLabelValues(r.resource, "forbidden").Inc()
		return fmt.Errorf("%s %s: %w", r.method, r.path, domain.ErrForbidden)
	case resp.StatusCode == http.StatusNotFound:
		metrics.UpstreamRequestsTotal.WithLabelValues(r.resource, "not_found").Inc()
		return fmt.Errorf("%s %s: %w", r.method, r.path, domain.ErrNotFound)
	case resp.StatusCode >= http.StatusMultipleChoices:
		metrics.UpstreamRequestsTotal.WithLabelValues(r.resource, "error").Inc()
		raw, _ := io.ReadAll(resp.Body)
		c.log.Error().
			Str("method", r.method).
			Str("path", r.path).
			Int("status", resp.StatusCode).
			Str("body", string(raw)).
			Msg("upstream request failed")
		return fmt.Errorf("%s %s: %s: %w", r.method, r.path, resp.Status, domain.ErrUpstream)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(r.resource, "ok").Inc()

	if out == nil {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read body: %w", r.method, r.path, err)
	}
	if r.enveloped {
		var env envelope
		if err := json.Unmarshal(data, &env); err != nil {
			return fmt.Errorf("%s %s: decode envelope: %w", r.method, r.path, err)
		}
		if env.Success != nil && !*env.Success {
			return fmt.Errorf("%s %s: %s: %w", r.method, r.path, env.Message, domain.ErrUpstream)
		}
		data = env.Data
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", r.method, r.path, err)
	}
	return nil
}

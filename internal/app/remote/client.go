// Package remote is the typed client for the fest REST API, the portal's
// sole data dependency. Every entity is owned and mutated by the API; the
// portal only holds the decoded per-request copies these methods return.
//
// Authentication is a bearer token: Bearer derives a client that attaches
// the token to each request. Failures carry the server's own message when
// one is provided (see APIError) so screens can surface it verbatim.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Client talks to the fest API at a configured base URL. The zero value is
// not usable; construct with New.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
	token   string
}

// New returns a client for the API at baseURL. The default http.Client is
// used when httpClient is nil; no client-side timeout is configured, the
// transport's defaults apply.
func New(baseURL string, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		log:     logger,
	}
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Close releases idle connections held by the underlying HTTP client.
func (c *Client) Close() { c.http.CloseIdleConnections() }

// Bearer returns a derived client that sends the given token on every
// request. The receiver is not modified.
func (c *Client) Bearer(token string) *Client {
	derived := *c
	derived.token = token
	return &derived
}

// do issues one request and decodes the JSON response into out (when out is
// non-nil). Non-2xx responses become *APIError. Nothing is retried; a failed
// call is terminal for the triggering action.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("fest API request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// Ping verifies the API is reachable. Used by the health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	return c.get(ctx, "/events/", new(json.RawMessage))
}

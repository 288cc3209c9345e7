// Package client is the resource service consumed by the storefront and
// admin views: one method per backend operation, each returning a typed
// value with the endpoint's response envelope already unwrapped.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
)

// TokenSource supplies the bearer token for mutating calls. It is read
// at call time, never cached, so a logout between calls takes effect
// immediately.
type TokenSource interface {
	Token() string
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// New builds a client against baseURL. httpClient may be nil to use
// http.DefaultClient; callers wanting request timeouts pass their own.
// tokens may be nil for a read-only client.
func New(baseURL string, httpClient *http.Client, tokens TokenSource) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: baseURL,
		http:    httpClient,
		tokens:  tokens,
	}
}

// APIError is a non-2xx backend response.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Status, e.Body)
}

func (c *Client) token() string {
	if c.tokens == nil {
		return ""
	}
	return c.tokens.Token()
}

// doJSON issues the request and decodes a 2xx response into out (out may
// be nil to discard the body). Non-2xx responses are logged and returned
// as an *APIError wrapped with the operation's fixed message.
func (c *Client) doJSON(ctx context.Context, op, method, path string, body io.Reader, contentType string, authed bool, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+c.token())
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		raw, _ := io.ReadAll(res.Body)
		apiErr := &APIError{Status: res.StatusCode, Body: string(bytes.TrimSpace(raw))}
		log.Printf("%s failed: %v", op, apiErr)
		return fmt.Errorf("%s: %w", op, apiErr)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, op, path string, out any) error {
	return c.doJSON(ctx, op, http.MethodGet, path, nil, "", false, out)
}

func (c *Client) putJSON(ctx context.Context, op, path string, payload, out any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return c.doJSON(ctx, op, http.MethodPut, path, bytes.NewReader(raw), "application/json", true, out)
}

// Package apiclient is the one place that talks to the Peminjaman Barang
// backend. It owns the base origin, bearer-token attachment and the decoding
// of the backend's response envelopes, so the rest of the console never sees
// a raw HTTP response.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const basePath = "/api"

type Client struct {
	origin string
	http   *http.Client
	token  string
}

func New(origin string) *Client {
	return &Client{
		origin: strings.TrimRight(origin, "/"),
		http:   &http.Client{Timeout: 10 * time.Second},
	}
}

// WithToken returns a client that sends the given bearer token on every
// call. An empty token means no Authorization header at all.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

// APIError is a rejection from the backend, carrying the server-supplied
// message when one could be decoded.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend: %d %s", e.Status, e.Message)
}

// Message extracts the backend message from err, falling back to the given
// default for transport errors and unreadable bodies.
func Message(err error, fallback string) string {
	if apiErr, ok := err.(*APIError); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// StatusOf returns the backend HTTP status behind err, or fallback.
func StatusOf(err error, fallback int) int {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.Status
	}
	return fallback
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.origin+basePath+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("backend request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("backend response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var msg struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(raw, &msg)
		return &APIError{Status: resp.StatusCode, Message: msg.Message}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode backend response: %w", err)
		}
	}
	return nil
}

// listEnvelope absorbs the backend's inconsistent list envelopes: every list
// endpoint nests records under "data" except the user list, which uses
// "user". Normalized here so no screen code ever branches on it.
type listEnvelope[T any] struct {
	Data []T `json:"data"`
	User []T `json:"user"`
}

func (e listEnvelope[T]) records() []T {
	if e.Data != nil {
		return e.Data
	}
	return e.User
}

func list[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var env listEnvelope[T]
	if err := c.do(ctx, http.MethodGet, path, nil, &env); err != nil {
		return nil, err
	}
	return env.records(), nil
}

// Package api is the client for the contracts backend. Every request carries
// the session's bearer token, when there is one, and a fresh X-Request-ID.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrUnauthorized matches any *Error with a 401 status.
var ErrUnauthorized = errors.New("unauthorized")

// TokenSource supplies the bearer token for outgoing requests.
type TokenSource interface {
	Token() string
}

// Error is a non-2xx answer from the backend.
type Error struct {
	StatusCode int
	Message    string
	Detail     string
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}

	if e.Detail != "" {
		return fmt.Sprintf("api: %d %s (%s)", e.StatusCode, msg, e.Detail)
	}

	return fmt.Sprintf("api: %d %s", e.StatusCode, msg)
}

func (e *Error) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

// Message returns the backend's error text for err, or fallback when the
// backend sent none.
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}

	return fallback
}

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

type bearerTransport struct {
	base   http.RoundTripper
	tokens TokenSource
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	if t.tokens != nil {
		if token := t.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	if req.Header.Get("X-Request-ID") == "" {
		req.Header.Set("X-Request-ID", uuid.NewString())
	}

	return t.base.RoundTrip(req)
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client for the backend at baseURL. A zero timeout waits for
// the backend indefinitely.
func New(baseURL string, tokens TokenSource, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: &bearerTransport{base: http.DefaultTransport, tokens: tokens},
		},
	}
}

func (c *Client) url(path string) string {
	return c.baseURL + path
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader

	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}

		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &Error{StatusCode: resp.StatusCode}

	var body ErrorBody
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&body); err == nil {
		apiErr.Message = body.Error
		apiErr.Detail = body.Detail
	}

	return apiErr
}

// Health reports whether the backend answers.
func (c *Client) Health(ctx context.Context) error {
	var out struct {
		OK bool `json:"ok"`
	}

	if err := c.doJSON(ctx, http.MethodGet, "/health", nil, &out); err != nil {
		return err
	}

	if !out.OK {
		return errors.New("backend reported not ok")
	}

	return nil
}

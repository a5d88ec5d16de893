// Package api dispatches requests to the flower-store backend and exposes
// one thin client per backend resource. The dispatch layer attaches base
// URL, JSON headers and the session's bearer token, and normalizes every
// failure into either a transport error or an *APIError; it never retries
// and never caches.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/flicky/flowerstore-client/internal/session"
)

// ErrNotAuthenticated is the precondition failure raised before any network
// call when an operation requires a token and the session has none.
var ErrNotAuthenticated = errors.New("not authenticated")

// APIError is a server-rejected request: non-2xx status plus whatever error
// payload the server sent. Recovery is the caller's decision.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	msg := e.message()
	if msg == "" {
		return fmt.Sprintf("server returned %d", e.StatusCode)
	}
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, msg)
}

func (e *APIError) message() string {
	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal([]byte(e.Body), &payload) == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(e.Body)
}

type Client struct {
	baseURL string
	http    *http.Client
	session *session.Store
	log     *slog.Logger
}

func New(baseURL string, timeout time.Duration, sess *session.Store, log *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		session: sess,
		log:     log,
	}
}

func (c *Client) requireToken() error {
	if c.session.Token() == "" {
		return ErrNotAuthenticated
	}
	return nil
}

// send issues one JSON request. A nil body sends no payload; a non-nil out
// receives the decoded response body. When authed is set the bearer token is
// attached if present; an empty token still lets the call proceed and the
// server reject it.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, body, out any, authed bool) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.requestURL(path, query), reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req, authed)

	return c.roundTrip(req, out)
}

// sendMultipart issues one multipart/form-data request, letting the writer
// set the boundary in the content type. Profile update is the only caller.
func (c *Client) sendMultipart(ctx context.Context, method, path string, form io.Reader, contentType string, out any, authed bool) error {
	req, err := http.NewRequestWithContext(ctx, method, c.requestURL(path, nil), form)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", contentType)
	c.authorize(req, authed)

	return c.roundTrip(req, out)
}

func (c *Client) requestURL(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *Client) authorize(req *http.Request, authed bool) {
	if !authed {
		return
	}
	if tok := c.session.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
}

func (c *Client) roundTrip(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("request failed", "method", req.Method, "url", req.URL.String(), "error", err)
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Debug("server rejected request",
			"method", req.Method, "url", req.URL.String(),
			"status", resp.StatusCode, "body", string(data))
		return &APIError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Package client talks to the diary REST API on behalf of the CLI. It signs
// requests with the Gatekeeper's session and rotates the access token when it
// is about to expire.
package client

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
	"time"

	"github.com/heartmarshall/emotion-diary/internal/domain"
	"github.com/heartmarshall/emotion-diary/internal/session"
	"github.com/heartmarshall/emotion-diary/internal/transport/rest"
)

const (
	refreshSkew      = time.Minute
	maxResponseBytes = 4 << 20
)

// Client is a REST API client bound to a Gatekeeper.
type Client struct {
	baseURL    string
	httpClient *http.Client
	gate       *session.Gatekeeper
	log        *slog.Logger
	now        func() time.Time
}

// New creates a Client for the API at baseURL.
func New(baseURL string, gate *session.Gatekeeper, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		gate:       gate,
		log:        logger.With("component", "client"),
		now:        time.Now,
	}
}

type call struct {
	method string
	path   string
	query  url.Values
	body   any
	out    any
	authed bool
}

// do performs c and decodes the answer into c.out. Authenticated calls that
// come back 401 are retried once after a token refresh.
func (c *Client) do(ctx context.Context, req call) error {
	var payload []byte
	if req.body != nil {
		var err error
		if payload, err = json.Marshal(req.body); err != nil {
			return fmt.Errorf("client: encode %s %s: %w", req.method, req.path, err)
		}
	}

	if !req.authed {
		return c.send(ctx, req, payload, "")
	}

	s, err := c.authorize(ctx)
	if err != nil {
		return err
	}
	err = c.send(ctx, req, payload, s.AccessToken)
	if !errors.Is(err, domain.ErrUnauthenticated) {
		return err
	}

	c.log.DebugContext(ctx, "access token rejected, refreshing", slog.String("path", req.path))
	if s, err = c.refresh(ctx, s); err != nil {
		return err
	}
	return c.send(ctx, req, payload, s.AccessToken)
}

func (c *Client) send(ctx context.Context, req call, payload []byte, token string) error {
	target := c.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return fmt.Errorf("client: create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	start := c.now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("client: %s %s: %w", req.method, req.path, err)
	}
	defer resp.Body.Close()

	c.log.DebugContext(ctx, "api response",
		slog.String("method", req.method),
		slog.String("path", req.path),
		slog.Int("status", resp.StatusCode),
		slog.String("request_id", resp.Header.Get("X-Request-Id")),
		slog.Duration("elapsed", c.now().Sub(start)))

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("client: read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var apiErr rest.ErrorResponse
		_ = json.Unmarshal(raw, &apiErr)
		return rest.ErrorFromResponse(resp.StatusCode, apiErr)
	}

	if req.out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, req.out); err != nil {
		return fmt.Errorf("client: decode %s %s: %w", req.method, req.path, err)
	}
	return nil
}

// authorize returns a session whose access token is not about to expire.
func (c *Client) authorize(ctx context.Context) (*session.Session, error) {
	s, err := c.gate.Require()
	if err != nil {
		return nil, err
	}
	if !s.ExpiresWithin(c.now(), refreshSkew) {
		return s, nil
	}
	return c.refresh(ctx, s)
}

// refresh rotates the tokens of s. A rejected refresh token ends the session.
func (c *Client) refresh(ctx context.Context, s *session.Session) (*session.Session, error) {
	var resp rest.AuthResponse
	err := c.send(ctx, call{
		method: http.MethodPost,
		path:   "/auth/refresh",
		out:    &resp,
	}, mustJSON(rest.RefreshRequest{RefreshToken: s.RefreshToken}), "")
	if err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) || errors.Is(err, domain.ErrNotFound) {
			if signOutErr := c.gate.SignOut(); signOutErr != nil {
				c.log.WarnContext(ctx, "clear session", slog.String("error", signOutErr.Error()))
			}
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}

	next := toSession(resp)
	if err := c.gate.Refresh(next); err != nil {
		return nil, err
	}
	return next, nil
}

func toSession(resp rest.AuthResponse) *session.Session {
	return &session.Session{
		UserID:       resp.User.ID,
		Email:        resp.User.Email,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    resp.ExpiresAt,
	}
}

func mustJSON(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

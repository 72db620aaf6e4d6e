// Package function calls a remote analyze function over HTTP.
package function

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/emotion-diary/internal/domain"
	"github.com/heartmarshall/emotion-diary/pkg/ctxutil"
)

const maxResponseBytes = 1 << 20

// Client posts analyze requests to a feedback function endpoint on behalf of
// the caller. The caller's access token is forwarded as a bearer credential.
type Client struct {
	url        string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client for the endpoint at url.
func NewClient(url string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "function"),
	}
}

// Analyze sends req and returns the function's answer. Transport and
// malformed-response failures wrap domain.ErrAnalysis; a well-formed
// success=false answer wraps domain.ErrAnalysisRejected.
func (c *Client) Analyze(ctx context.Context, req domain.AnalyzeRequest) (*domain.AnalyzeResult, error) {
	token := ctxutil.AccessTokenFromCtx(ctx)
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}

	body, err := json.Marshal(NewRequest(req))
	if err != nil {
		return nil, fmt.Errorf("function: encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("function: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)
	if id := ctxutil.RequestIDFromCtx(ctx); id != "" {
		httpReq.Header.Set("X-Request-Id", id)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.ErrorContext(ctx, "function request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("function: %w: %w", domain.ErrAnalysis, err)
	}
	defer resp.Body.Close()

	c.log.DebugContext(ctx, "function response",
		slog.Int("status", resp.StatusCode),
		slog.Bool("reanalyze", req.IsReanalyze),
		slog.Duration("elapsed", time.Since(start)))

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return nil, domain.ErrUnauthenticated
	case http.StatusNotFound:
		if req.IsReanalyze {
			return nil, domain.ErrNotFound
		}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("function: %w: read body: %w", domain.ErrAnalysis, err)
	}

	var payload Response
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("function: %w: status %d: decode: %w", domain.ErrAnalysis, resp.StatusCode, err)
	}

	if !payload.Success {
		reason := payload.Error
		if reason == "" {
			reason = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("function: %w: %s", domain.ErrAnalysisRejected, reason)
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("function: %w: unexpected status %d", domain.ErrAnalysis, resp.StatusCode)
	}

	return payload.toResult()
}

func (r Response) toResult() (*domain.AnalyzeResult, error) {
	result := &domain.AnalyzeResult{
		Feedback: r.Feedback,
		Message:  r.Message,
	}
	if r.Diary != nil {
		d, err := r.Diary.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("function: %w: %w", domain.ErrAnalysis, err)
		}
		result.Diary = d
		if result.Feedback == "" && d.Feedback != nil {
			result.Feedback = *d.Feedback
		}
	}
	if result.Feedback == "" {
		return nil, fmt.Errorf("function: %w: %w", domain.ErrAnalysis, errEmptyFeedback)
	}
	return result, nil
}

var errEmptyFeedback = errors.New("response carries no feedback")

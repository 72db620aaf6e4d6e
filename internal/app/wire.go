package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/emotion-diary/internal/adapter/provider/feedback/function"
	"github.com/heartmarshall/emotion-diary/internal/adapter/provider/llm/anthropic"
	"github.com/heartmarshall/emotion-diary/internal/adapter/provider/llm/canned"
	"github.com/heartmarshall/emotion-diary/internal/config"
	"github.com/heartmarshall/emotion-diary/internal/domain"
	authsvc "github.com/heartmarshall/emotion-diary/internal/service/auth"
	"github.com/heartmarshall/emotion-diary/internal/service/diary"
	"github.com/heartmarshall/emotion-diary/internal/transport/middleware"
	"github.com/heartmarshall/emotion-diary/internal/transport/rest"
)

type generator interface {
	Generate(ctx context.Context, content string) (string, error)
}

type analyzer interface {
	Analyze(ctx context.Context, req domain.AnalyzeRequest) (*domain.AnalyzeResult, error)
}

// newGenerator picks the feedback generator named by cfg.Provider.
// Validate has already rejected unknown providers.
func newGenerator(cfg config.FeedbackConfig, logger *slog.Logger) generator {
	if cfg.Provider == "anthropic" {
		return anthropic.New(anthropic.Config{
			APIKey:    cfg.AnthropicAPIKey,
			Model:     cfg.Model,
			MaxTokens: cfg.MaxTokens,
			Timeout:   cfg.Timeout,
		}, logger)
	}
	return canned.New()
}

// newAnalyzer returns the analyze function used by the diary controller:
// a remote function when FunctionURL is set, otherwise the in-process one.
func newAnalyzer(cfg config.FeedbackConfig, local analyzer, logger *slog.Logger) analyzer {
	if cfg.FunctionURL != "" {
		return function.NewClient(cfg.FunctionURL, cfg.Timeout, logger)
	}
	return local
}

// describeAnalyzer names the analyzer for the health report.
func describeAnalyzer(cfg config.FeedbackConfig) string {
	if cfg.FunctionURL != "" {
		return "function"
	}
	return cfg.Provider
}

type dbPinger interface {
	Ping(ctx context.Context) error
}

type handlerDeps struct {
	db       dbPinger
	auth     *authsvc.Service
	diary    *diary.Service
	function analyzer
}

// newHandler builds the HTTP handler and returns a func that releases its
// background resources.
func newHandler(cfg *config.Config, logger *slog.Logger, deps handlerDeps) (http.Handler, func()) {
	opts := rest.RouterOptions{
		Global: []middleware.Middleware{
			middleware.RequestID(),
			middleware.Logger(logger),
			middleware.Recovery(logger),
			middleware.CORS(cfg.CORS),
			middleware.Auth(deps.auth),
		},
	}

	stop := func() {}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.Rate, cfg.RateLimit.Burst, time.Minute)
		opts.Credentials = append(opts.Credentials, limiter.Limit())
		stop = limiter.Stop
	}

	handler := rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(deps.db, BuildVersion(), describeAnalyzer(cfg.Feedback)),
		Auth:     rest.NewAuthHandler(deps.auth, logger),
		Diary:    rest.NewDiaryHandler(deps.diary, logger),
		Function: rest.NewFunctionHandler(deps.function, logger),
	}, opts)

	return handler, stop
}

package rest

import (
	"net/http"

	"github.com/heartmarshall/emotion-diary/internal/transport/middleware"
)

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Health   *HealthHandler
	Auth     *AuthHandler
	Diary    *DiaryHandler
	Function *FunctionHandler
}

// RouterOptions holds the middleware applied by NewRouter.
type RouterOptions struct {
	// Global wraps every route, outermost first.
	Global []middleware.Middleware
	// Credentials wraps register and login, typically a rate limiter.
	Credentials []middleware.Middleware
}

// NewRouter builds the API handler.
func NewRouter(h Handlers, opts RouterOptions) http.Handler {
	mux := http.NewServeMux()
	creds := middleware.Chain(opts.Credentials...)
	authed := middleware.RequireAuth

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.Handle("POST /auth/register", creds(http.HandlerFunc(h.Auth.Register)))
	mux.Handle("POST /auth/login", creds(http.HandlerFunc(h.Auth.Login)))
	mux.HandleFunc("POST /auth/refresh", h.Auth.Refresh)
	mux.Handle("POST /auth/logout", authed(http.HandlerFunc(h.Auth.Logout)))
	mux.Handle("GET /auth/me", authed(http.HandlerFunc(h.Auth.Me)))
	mux.Handle("POST /auth/password", authed(http.HandlerFunc(h.Auth.ChangePassword)))

	mux.Handle("POST /diaries", authed(http.HandlerFunc(h.Diary.Create)))
	mux.Handle("GET /diaries", authed(http.HandlerFunc(h.Diary.List)))
	mux.Handle("GET /diaries/date/{date}", authed(http.HandlerFunc(h.Diary.ListByDate)))
	mux.Handle("GET /diaries/{id}", authed(http.HandlerFunc(h.Diary.Get)))
	mux.Handle("PUT /diaries/{id}", authed(http.HandlerFunc(h.Diary.Update)))
	mux.Handle("POST /diaries/{id}/reanalyze", authed(http.HandlerFunc(h.Diary.Reanalyze)))
	mux.Handle("DELETE /diaries/{id}", authed(http.HandlerFunc(h.Diary.Delete)))
	mux.Handle("GET /calendar", authed(http.HandlerFunc(h.Diary.Calendar)))

	mux.Handle("POST /functions/v1/analyze", authed(http.HandlerFunc(h.Function.Analyze)))

	return middleware.Chain(opts.Global...)(mux)
}

package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/emotion-diary/internal/adapter/postgres"
	diaryrepo "github.com/heartmarshall/emotion-diary/internal/adapter/postgres/diary"
	tokenrepo "github.com/heartmarshall/emotion-diary/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/emotion-diary/internal/adapter/postgres/user"
	"github.com/heartmarshall/emotion-diary/internal/auth"
	"github.com/heartmarshall/emotion-diary/internal/config"
	authsvc "github.com/heartmarshall/emotion-diary/internal/service/auth"
	"github.com/heartmarshall/emotion-diary/internal/service/diary"
	"github.com/heartmarshall/emotion-diary/internal/service/feedback"
	"github.com/heartmarshall/emotion-diary/migrations"
)

// Run is the server entry point. It loads configuration, connects to the
// database, applies migrations, wires services and serves HTTP until ctx is
// cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("timezone", cfg.Diary.Location.String()),
		slog.String("feedback_provider", cfg.Feedback.Provider),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		applied, err := postgres.Migrate(ctx, pool, migrations.FS)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", applied))
	}

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	diaries := diaryrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, users, tokens, tx, jwtManager, cfg.Auth)

	feedbackService := feedback.NewService(logger, diaries, newGenerator(cfg.Feedback, logger), cfg.Diary)
	diaryService := diary.NewService(logger, diaries, newAnalyzer(cfg.Feedback, feedbackService, logger), cfg.Diary)

	handler, stop := newHandler(cfg, logger, handlerDeps{
		db:       pool,
		auth:     authService,
		diary:    diaryService,
		function: feedbackService,
	})
	defer stop()

	srv := newServer(cfg.Server, handler)
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	return serve(ctx, srv, ln, cfg.Server.ShutdownTimeout, logger)
}

// newServer builds the HTTP server. Request contexts derive from the
// default background base, so a shutdown signal does not cancel requests
// already in flight; Shutdown drains them instead.
func newServer(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// serve runs srv on ln until ctx is done, then shuts it down within timeout.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, timeout time.Duration, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}

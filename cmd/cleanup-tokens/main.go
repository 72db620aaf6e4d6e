// Command cleanup-tokens deletes expired and revoked refresh tokens.
//
// Usage:
//
//	cleanup-tokens
//
// Uses the same configuration as the server; DATABASE_DSN and
// AUTH_JWT_SECRET must be set.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/heartmarshall/emotion-diary/internal/adapter/postgres"
	tokenrepo "github.com/heartmarshall/emotion-diary/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/emotion-diary/internal/adapter/postgres/user"
	"github.com/heartmarshall/emotion-diary/internal/app"
	"github.com/heartmarshall/emotion-diary/internal/auth"
	"github.com/heartmarshall/emotion-diary/internal/config"
	authsvc "github.com/heartmarshall/emotion-diary/internal/service/auth"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	svc := authsvc.NewService(logger,
		userrepo.New(pool),
		tokenrepo.New(pool),
		postgres.NewTxManager(pool),
		auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		cfg.Auth,
	)

	count, err := svc.CleanupExpiredTokens(ctx)
	if err != nil {
		log.Fatalf("cleanup tokens: %v", err)
	}

	fmt.Printf("Deleted %d expired/revoked refresh tokens.\n", count)
}

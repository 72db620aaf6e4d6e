// Package token implements the RefreshToken repository using PostgreSQL.
package token

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/emotion-diary/internal/adapter/postgres"
	"github.com/heartmarshall/emotion-diary/internal/domain"
)

const table = "refresh_tokens"

var columns = []string{"id", "user_id", "token_hash", "expires_at", "created_at", "revoked_at"}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides refresh-token persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new token repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new refresh token and returns the stored row.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.RefreshToken, error) {
	query := psql.Insert(table).
		Columns("user_id", "token_hash", "expires_at").
		Values(userID, tokenHash, expiresAt).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	return r.one(ctx, query, userID)
}

// GetByHash returns an active (non-revoked, non-expired) refresh token by its hash.
// Returns domain.ErrNotFound if the token does not exist, is revoked, or is expired.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	return r.one(ctx, activeByHash(tokenHash), "")
}

// RevokeByID revokes a specific refresh token. Revoking twice is not an error.
func (r *Repo) RevokeByID(ctx context.Context, id uuid.UUID) error {
	_, err := r.exec(ctx, revoke().Where(sq.Eq{"id": id}), id)
	return err
}

// RevokeAllByUser revokes all active refresh tokens for the given user.
func (r *Repo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	_, err := r.exec(ctx, revoke().Where(sq.Eq{"user_id": userID}), userID)
	return err
}

// DeleteExpired removes all expired or revoked tokens and returns how many were deleted.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	query := psql.Delete(table).
		Where(sq.Or{
			sq.Expr("expires_at <= now()"),
			sq.NotEq{"revoked_at": nil},
		})

	n, err := r.exec(ctx, query, "")
	return int(n), err
}

func activeByHash(tokenHash string) sq.SelectBuilder {
	return psql.Select(columns...).
		From(table).
		Where(sq.Eq{"token_hash": tokenHash, "revoked_at": nil}).
		Where(sq.Expr("expires_at > now()"))
}

func revoke() sq.UpdateBuilder {
	return psql.Update(table).
		Set("revoked_at", sq.Expr("now()")).
		Where(sq.Eq{"revoked_at": nil})
}

func (r *Repo) one(ctx context.Context, query sq.Sqlizer, key any) (*domain.RefreshToken, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build refresh_token query: %w", err)
	}

	t, err := scanToken(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", key)
	}
	return t, nil
}

func (r *Repo) exec(ctx context.Context, query sq.Sqlizer, key any) (int64, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build refresh_token query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sqlStr, args...)
	if err != nil {
		return 0, postgres.MapError(err, "refresh_token", key)
	}
	return tag.RowsAffected(), nil
}

func scanToken(row pgx.Row) (*domain.RefreshToken, error) {
	var t domain.RefreshToken
	if err := row.Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt, &t.RevokedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

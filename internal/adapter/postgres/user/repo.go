// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/emotion-diary/internal/adapter/postgres"
	"github.com/heartmarshall/emotion-diary/internal/domain"
)

const table = "users"

var columns = []string{"id", "email", "password_hash", "created_at", "updated_at"}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"id": id})

	return r.one(ctx, query, id)
}

// GetByEmail returns a user by email address, case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := psql.Select(columns...).
		From(table).
		Where(sq.Expr("lower(email) = lower(?)", strings.TrimSpace(email)))

	return r.one(ctx, query, email)
}

// Create inserts a new user. Returns domain.ErrAlreadyExists on a taken email.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	id := u.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query := psql.Insert(table).
		Columns("id", "email", "password_hash").
		Values(id, u.Email, u.PasswordHash).
		Suffix(returning())

	return r.one(ctx, query, u.Email)
}

// UpdatePassword replaces the password hash of the given user.
func (r *Repo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) (*domain.User, error) {
	query := psql.Update(table).
		Set("password_hash", passwordHash).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning())

	return r.one(ctx, query, id)
}

func (r *Repo) one(ctx context.Context, query sq.Sqlizer, key any) (*domain.User, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user query: %w", err)
	}

	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", key)
	}
	return u, nil
}

func returning() string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

// Package diary implements the diary entry repository using PostgreSQL.
// Every query is scoped to the owning user.
package diary

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/golang-sql/civil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/emotion-diary/internal/adapter/postgres"
	"github.com/heartmarshall/emotion-diary/internal/domain"
)

const table = "diaries"

var columns = []string{"id", "user_id", "content", "ai_feedback", "target_date", "created_at", "updated_at"}

// psql renders $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides diary persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new diary repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a diary by primary key.
// Returns domain.ErrNotFound if it does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Diary, error) {
	query := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"id": id, "user_id": userID})

	return r.getOne(ctx, query, id)
}

// ListByUser returns all diaries of a user, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Diary, error) {
	query := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC")

	return r.list(ctx, query)
}

// ListByUserAndDate returns the diaries belonging to one calendar day, newest first.
// Rows without target_date are matched on the date of created_at in loc.
func (r *Repo) ListByUserAndDate(ctx context.Context, userID uuid.UUID, date civil.Date, loc *time.Location) ([]*domain.Diary, error) {
	query := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Expr(effectiveDateExpr+" = ?", zoneName(loc), toPgDate(&date))).
		OrderBy("created_at DESC", "id DESC")

	return r.list(ctx, query)
}

// ListByUserInRange returns diaries whose effective date falls in [from, to], newest first.
func (r *Repo) ListByUserInRange(ctx context.Context, userID uuid.UUID, from, to civil.Date, loc *time.Location) ([]*domain.Diary, error) {
	tz := zoneName(loc)
	query := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Expr(effectiveDateExpr+" BETWEEN ? AND ?", tz, toPgDate(&from), toPgDate(&to))).
		OrderBy("created_at DESC", "id DESC")

	return r.list(ctx, query)
}

// effectiveDateExpr takes one argument: the IANA zone name.
const effectiveDateExpr = "COALESCE(target_date, (created_at AT TIME ZONE ?)::date)"

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new diary for userID and returns the stored row.
// A nil d.ID is replaced with a fresh UUID.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, d *domain.Diary) (*domain.Diary, error) {
	id := d.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query := psql.Insert(table).
		Columns("id", "user_id", "content", "ai_feedback", "target_date").
		Values(id, userID, d.Content, d.Feedback, toPgDate(d.TargetDate)).
		Suffix(returning())

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert diary: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	created, err := scanDiary(q.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, postgres.MapError(err, "diary", id)
	}
	return created, nil
}

// Update applies patch to the diary and refreshes updated_at.
// Returns domain.ErrNotFound if the diary does not exist or belongs to another user.
func (r *Repo) Update(ctx context.Context, userID, id uuid.UUID, patch domain.DiaryPatch) (*domain.Diary, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, userID, id)
	}

	query := psql.Update(table).
		Set("updated_at", sq.Expr("GREATEST(now(), updated_at)")).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix(returning())
	if patch.Content != nil {
		query = query.Set("content", *patch.Content)
	}
	if patch.Feedback != nil {
		query = query.Set("ai_feedback", *patch.Feedback)
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update diary: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	updated, err := scanDiary(q.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, postgres.MapError(err, "diary", id)
	}
	return updated, nil
}

// Delete removes a diary permanently.
// Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	sqlStr, args, err := psql.Delete(table).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete diary: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sqlStr, args...)
	if err != nil {
		return postgres.MapError(err, "diary", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("diary %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) getOne(ctx context.Context, query sq.SelectBuilder, id uuid.UUID) (*domain.Diary, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select diary: %w", err)
	}

	d, err := scanDiary(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, postgres.MapError(err, "diary", id)
	}
	return d, nil
}

func (r *Repo) list(ctx context.Context, query sq.SelectBuilder) ([]*domain.Diary, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list diaries: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list diaries: %w", err)
	}
	defer rows.Close()

	diaries := make([]*domain.Diary, 0)
	for rows.Next() {
		d, err := scanDiary(rows)
		if err != nil {
			return nil, fmt.Errorf("scan diary: %w", err)
		}
		diaries = append(diaries, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list diaries: %w", err)
	}

	return diaries, nil
}

func returning() string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func scanDiary(row pgx.Row) (*domain.Diary, error) {
	var (
		d      domain.Diary
		target pgtype.Date
	)
	if err := row.Scan(&d.ID, &d.UserID, &d.Content, &d.Feedback, &target, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	d.TargetDate = fromPgDate(target)
	return &d, nil
}

// toPgDate converts a civil date to pgtype.Date (nil → NULL).
func toPgDate(d *civil.Date) pgtype.Date {
	if d == nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: d.In(time.UTC), Valid: true}
}

func fromPgDate(d pgtype.Date) *civil.Date {
	if !d.Valid {
		return nil
	}
	cd := civil.DateOf(d.Time)
	return &cd
}

func zoneName(loc *time.Location) string {
	if loc == nil {
		return "UTC"
	}
	return loc.String()
}

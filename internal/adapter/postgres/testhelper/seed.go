package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/emotion-diary/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a throwaway password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "diarist-" + uniqueSuffix() + "@example.com",
		PasswordHash: "$2a$04$seeded.hash.not.for.login",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedDiary inserts a diary row directly. A nil targetDate produces a legacy
// row that relies on created_at for its calendar day.
func SeedDiary(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, content string, targetDate *civil.Date, createdAt time.Time) domain.Diary {
	t.Helper()

	createdAt = createdAt.UTC().Truncate(time.Microsecond)
	d := domain.Diary{
		ID:         uuid.New(),
		UserID:     userID,
		Content:    content,
		TargetDate: targetDate,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}

	var target *time.Time
	if targetDate != nil {
		tt := targetDate.In(time.UTC)
		target = &tt
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO diaries (id, user_id, content, target_date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		d.ID, d.UserID, d.Content, target, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDiary insert diary: %v", err)
	}

	return d
}

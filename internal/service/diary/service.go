// Package diary drives the lifecycle of diary entries: submission with
// analysis, reanalysis, edits, deletion and the read side used by the list,
// day and calendar views.
package diary

import (
	"context"
	"log/slog"
	"time"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"

	"github.com/heartmarshall/emotion-diary/internal/config"
	"github.com/heartmarshall/emotion-diary/internal/domain"
)

// diaryRepo defines the diary repository interface needed by the service.
type diaryRepo interface {
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Diary, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Diary, error)
	ListByUserAndDate(ctx context.Context, userID uuid.UUID, date civil.Date, loc *time.Location) ([]*domain.Diary, error)
	ListByUserInRange(ctx context.Context, userID uuid.UUID, from, to civil.Date, loc *time.Location) ([]*domain.Diary, error)
	Update(ctx context.Context, userID, id uuid.UUID, patch domain.DiaryPatch) (*domain.Diary, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// requestor is the feedback function: it stores new entries with feedback
// and produces fresh feedback for existing ones.
type requestor interface {
	Analyze(ctx context.Context, req domain.AnalyzeRequest) (*domain.AnalyzeResult, error)
}

// Service implements the diary lifecycle.
type Service struct {
	log      *slog.Logger
	diaries  diaryRepo
	analyzer requestor
	loc      *time.Location
	maxLen   int
	now      func() time.Time
}

// NewService creates a diary Service.
func NewService(logger *slog.Logger, diaries diaryRepo, analyzer requestor, cfg config.DiaryConfig) *Service {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		log:      logger.With("service", "diary"),
		diaries:  diaries,
		analyzer: analyzer,
		loc:      loc,
		maxLen:   cfg.MaxContentLen,
		now:      time.Now,
	}
}

// Location returns the zone used to resolve "today" and legacy dates.
func (s *Service) Location() *time.Location { return s.loc }

// Outcome is the result of a lifecycle operation.
type Outcome struct {
	Diary    *domain.Diary
	Feedback string
	Message  string
	State    domain.DiaryState
}

func (s *Service) transition(ctx context.Context, id uuid.UUID, from, to domain.DiaryState) {
	attrs := []any{
		slog.String("from", from.String()),
		slog.String("to", to.String()),
	}
	if id != uuid.Nil {
		attrs = append(attrs, slog.String("diary_id", id.String()))
	}
	if to == domain.DiaryStateFailed {
		s.log.WarnContext(ctx, "diary state", attrs...)
		return
	}
	s.log.DebugContext(ctx, "diary state", attrs...)
}

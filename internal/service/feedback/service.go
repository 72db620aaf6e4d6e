// Package feedback is the analyze function: it stores new entries and
// produces emotional feedback for diary content.
package feedback

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/emotion-diary/internal/config"
	"github.com/heartmarshall/emotion-diary/internal/domain"
	"github.com/heartmarshall/emotion-diary/pkg/ctxutil"
)

const (
	msgSaved      = "일기가 성공적으로 저장되었습니다!"
	msgReanalyzed = "감정 분석이 완료되었습니다!"
)

// diaryRepo defines the diary repository interface needed by the function.
type diaryRepo interface {
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Diary, error)
	Create(ctx context.Context, userID uuid.UUID, d *domain.Diary) (*domain.Diary, error)
}

// generator produces feedback text for diary content.
type generator interface {
	Generate(ctx context.Context, content string) (string, error)
}

// Service implements the analyze function in-process.
type Service struct {
	log     *slog.Logger
	diaries diaryRepo
	gen     generator
	loc     *time.Location
	maxLen  int
	now     func() time.Time
}

// NewService creates a feedback Service.
func NewService(logger *slog.Logger, diaries diaryRepo, gen generator, cfg config.DiaryConfig) *Service {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		log:     logger.With("service", "feedback"),
		diaries: diaries,
		gen:     gen,
		loc:     loc,
		maxLen:  cfg.MaxContentLen,
		now:     time.Now,
	}
}

// Analyze handles both function modes. Without IsReanalyze it generates
// feedback, stores a new entry for the target date and returns it. With
// IsReanalyze it returns fresh feedback for an owned entry without storing
// anything.
func (s *Service) Analyze(ctx context.Context, req domain.AnalyzeRequest) (*domain.AnalyzeResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}

	content, err := domain.NormalizeContent(req.Content, s.maxLen)
	if err != nil {
		return nil, err
	}

	if req.IsReanalyze {
		return s.reanalyze(ctx, userID, req.DiaryID, content)
	}
	return s.create(ctx, userID, content, req)
}

func (s *Service) create(ctx context.Context, userID uuid.UUID, content string, req domain.AnalyzeRequest) (*domain.AnalyzeResult, error) {
	target, err := domain.ResolveTargetDate(req.TargetDate, s.now(), s.loc)
	if err != nil {
		return nil, err
	}

	text, err := s.generate(ctx, content)
	if err != nil {
		return nil, err
	}

	d, err := s.diaries.Create(ctx, userID, &domain.Diary{
		Content:    content,
		Feedback:   &text,
		TargetDate: &target,
	})
	if err != nil {
		return nil, fmt.Errorf("feedback.Analyze create: %w", err)
	}

	s.log.InfoContext(ctx, "diary created",
		slog.String("user_id", userID.String()),
		slog.String("diary_id", d.ID.String()),
		slog.String("target_date", target.String()))

	return &domain.AnalyzeResult{Feedback: text, Message: msgSaved, Diary: d}, nil
}

func (s *Service) reanalyze(ctx context.Context, userID uuid.UUID, id *uuid.UUID, content string) (*domain.AnalyzeResult, error) {
	if id == nil || *id == uuid.Nil {
		return nil, domain.NewValidationError("diaryId", "required for reanalysis")
	}

	if _, err := s.diaries.GetByID(ctx, userID, *id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("feedback.Analyze get diary: %w", err)
	}

	text, err := s.generate(ctx, content)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "diary reanalyzed",
		slog.String("user_id", userID.String()),
		slog.String("diary_id", id.String()))

	return &domain.AnalyzeResult{Feedback: text, Message: msgReanalyzed}, nil
}

func (s *Service) generate(ctx context.Context, content string) (string, error) {
	text, err := s.gen.Generate(ctx, content)
	if err != nil {
		s.log.ErrorContext(ctx, "feedback generation failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("feedback.Analyze: %w: %w", domain.ErrAnalysis, err)
	}
	if text == "" {
		return "", fmt.Errorf("feedback.Analyze: %w: empty feedback", domain.ErrAnalysis)
	}
	return text, nil
}

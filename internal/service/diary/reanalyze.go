package diary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/emotion-diary/internal/domain"
	"github.com/heartmarshall/emotion-diary/pkg/ctxutil"
)

// Reanalyze requests fresh feedback for an existing entry and replaces the
// stored feedback. The entry's dates are not touched.
func (s *Service) Reanalyze(ctx context.Context, input ReanalyzeInput) (*Outcome, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.diaries.GetByID(ctx, userID, input.ID)
	if err != nil {
		return nil, wrapStore("diary.Reanalyze", err)
	}

	content := current.Content
	if input.Content != nil {
		if content, err = domain.NormalizeContent(*input.Content, s.maxLen); err != nil {
			return nil, err
		}
	}

	s.transition(ctx, input.ID, domain.DiaryStatePersisted, domain.DiaryStateReanalyzing)

	out, err := s.refreshFeedback(ctx, userID, input.ID, content, domain.DiaryStateReanalyzing)
	if err != nil {
		return nil, fmt.Errorf("diary.Reanalyze: %w", err)
	}

	s.log.InfoContext(ctx, "diary reanalyzed",
		slog.String("user_id", userID.String()),
		slog.String("diary_id", input.ID.String()))
	return out, nil
}

// Edit replaces an entry's content and re-runs analysis on it. If analysis
// fails the new content stays stored and the error is returned.
func (s *Service) Edit(ctx context.Context, input EditInput) (*Outcome, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	content, err := domain.NormalizeContent(input.Content, s.maxLen)
	if err != nil {
		return nil, err
	}

	s.transition(ctx, input.ID, domain.DiaryStatePersisted, domain.DiaryStateEditing)

	if _, err := s.diaries.Update(ctx, userID, input.ID, domain.DiaryPatch{Content: &content}); err != nil {
		s.transition(ctx, input.ID, domain.DiaryStateEditing, domain.DiaryStateFailed)
		return nil, wrapStore("diary.Edit", err)
	}

	s.transition(ctx, input.ID, domain.DiaryStateEditing, domain.DiaryStateSubmitting)

	out, err := s.refreshFeedback(ctx, userID, input.ID, content, domain.DiaryStateSubmitting)
	if err != nil {
		return nil, fmt.Errorf("diary.Edit: content saved: %w", err)
	}

	s.log.InfoContext(ctx, "diary edited",
		slog.String("user_id", userID.String()),
		slog.String("diary_id", input.ID.String()))
	return out, nil
}

// refreshFeedback asks for feedback on content and stores it on the entry.
func (s *Service) refreshFeedback(ctx context.Context, userID, id uuid.UUID, content string, from domain.DiaryState) (*Outcome, error) {
	res, err := s.analyzer.Analyze(ctx, domain.AnalyzeRequest{
		Content:     content,
		DiaryID:     &id,
		IsReanalyze: true,
	})
	if err != nil {
		s.transition(ctx, id, from, domain.DiaryStateFailed)
		return nil, err
	}

	feedback := res.Feedback
	updated, err := s.diaries.Update(ctx, userID, id, domain.DiaryPatch{Feedback: &feedback})
	if err != nil {
		s.transition(ctx, id, from, domain.DiaryStateFailed)
		return nil, wrapStore("store feedback", err)
	}

	s.transition(ctx, id, from, domain.DiaryStatePersisted)
	return &Outcome{
		Diary:    updated,
		Feedback: feedback,
		Message:  res.Message,
		State:    domain.DiaryStatePersisted,
	}, nil
}

// wrapStore keeps ErrNotFound unwrapped for callers and adds context to
// everything else.
func wrapStore(op string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

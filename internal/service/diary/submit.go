package diary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/emotion-diary/internal/domain"
	"github.com/heartmarshall/emotion-diary/pkg/ctxutil"
)

// SubmitNew validates a draft and hands it to the feedback function, which
// stores it together with its feedback. Empty content and dates after today
// are rejected before any call is made; "today" is taken from the clock at
// submission time.
func (s *Service) SubmitNew(ctx context.Context, input SubmitInput) (*Outcome, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}

	content, err := domain.NormalizeContent(input.Content, s.maxLen)
	if err != nil {
		return nil, err
	}

	target, err := domain.ResolveTargetDate(input.TargetDate, s.now(), s.loc)
	if err != nil {
		return nil, err
	}

	s.transition(ctx, uuid.Nil, domain.DiaryStateDraft, domain.DiaryStateSubmitting)

	res, err := s.analyzer.Analyze(ctx, domain.AnalyzeRequest{
		Content:    content,
		TargetDate: &target,
	})
	if err != nil {
		s.transition(ctx, uuid.Nil, domain.DiaryStateSubmitting, domain.DiaryStateFailed)
		return nil, fmt.Errorf("diary.SubmitNew: %w", err)
	}
	if res.Diary == nil || res.Diary.ID == uuid.Nil {
		s.transition(ctx, uuid.Nil, domain.DiaryStateSubmitting, domain.DiaryStateFailed)
		return nil, fmt.Errorf("diary.SubmitNew: %w: no entry returned", domain.ErrAnalysis)
	}

	s.transition(ctx, res.Diary.ID, domain.DiaryStateSubmitting, domain.DiaryStatePersisted)
	s.log.InfoContext(ctx, "diary submitted",
		slog.String("user_id", userID.String()),
		slog.String("diary_id", res.Diary.ID.String()),
		slog.String("target_date", target.String()))

	return &Outcome{
		Diary:    res.Diary,
		Feedback: res.Feedback,
		Message:  res.Message,
		State:    domain.DiaryStatePersisted,
	}, nil
}

package diary

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/emotion-diary/internal/domain"
	"github.com/heartmarshall/emotion-diary/pkg/ctxutil"
)

// Delete removes an entry permanently. It refuses unless the caller confirmed.
func (s *Service) Delete(ctx context.Context, input DeleteInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthenticated
	}
	if err := input.Validate(); err != nil {
		return err
	}

	s.transition(ctx, input.ID, domain.DiaryStatePersisted, domain.DiaryStateDeleting)

	if err := s.diaries.Delete(ctx, userID, input.ID); err != nil {
		s.transition(ctx, input.ID, domain.DiaryStateDeleting, domain.DiaryStateFailed)
		return wrapStore("diary.Delete", err)
	}

	s.transition(ctx, input.ID, domain.DiaryStateDeleting, domain.DiaryStateDeleted)
	s.log.InfoContext(ctx, "diary deleted",
		slog.String("user_id", userID.String()),
		slog.String("diary_id", input.ID.String()))
	return nil
}
